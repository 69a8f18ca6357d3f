// Code generated by ent, DO NOT EDIT.

package botdeployment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldOrgID, v))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldRecordingID, v))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldBotID, v))
}

// ScheduledJoinTime applies equality check predicate on the "scheduled_join_time" field. It's identical to ScheduledJoinTimeEQ.
func ScheduledJoinTime(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldScheduledJoinTime, v))
}

// ActualJoinTime applies equality check predicate on the "actual_join_time" field. It's identical to ActualJoinTimeEQ.
func ActualJoinTime(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldActualJoinTime, v))
}

// LeaveTime applies equality check predicate on the "leave_time" field. It's identical to LeaveTimeEQ.
func LeaveTime(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldLeaveTime, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldErrorMessage, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldOrgID, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldRecordingID, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldBotID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusHistoryIsNil applies the IsNil predicate on the "status_history" field.
func StatusHistoryIsNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIsNull(FieldStatusHistory))
}

// StatusHistoryNotNil applies the NotNil predicate on the "status_history" field.
func StatusHistoryNotNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotNull(FieldStatusHistory))
}

// ScheduledJoinTimeEQ applies the EQ predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldScheduledJoinTime, v))
}

// ScheduledJoinTimeNEQ applies the NEQ predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeNEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldScheduledJoinTime, v))
}

// ScheduledJoinTimeIn applies the In predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldScheduledJoinTime, vs...))
}

// ScheduledJoinTimeNotIn applies the NotIn predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeNotIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldScheduledJoinTime, vs...))
}

// ScheduledJoinTimeGT applies the GT predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeGT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldScheduledJoinTime, v))
}

// ScheduledJoinTimeGTE applies the GTE predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeGTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldScheduledJoinTime, v))
}

// ScheduledJoinTimeLT applies the LT predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeLT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldScheduledJoinTime, v))
}

// ScheduledJoinTimeLTE applies the LTE predicate on the "scheduled_join_time" field.
func ScheduledJoinTimeLTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldScheduledJoinTime, v))
}

// ActualJoinTimeEQ applies the EQ predicate on the "actual_join_time" field.
func ActualJoinTimeEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldActualJoinTime, v))
}

// ActualJoinTimeNEQ applies the NEQ predicate on the "actual_join_time" field.
func ActualJoinTimeNEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldActualJoinTime, v))
}

// ActualJoinTimeIn applies the In predicate on the "actual_join_time" field.
func ActualJoinTimeIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldActualJoinTime, vs...))
}

// ActualJoinTimeNotIn applies the NotIn predicate on the "actual_join_time" field.
func ActualJoinTimeNotIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldActualJoinTime, vs...))
}

// ActualJoinTimeGT applies the GT predicate on the "actual_join_time" field.
func ActualJoinTimeGT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldActualJoinTime, v))
}

// ActualJoinTimeGTE applies the GTE predicate on the "actual_join_time" field.
func ActualJoinTimeGTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldActualJoinTime, v))
}

// ActualJoinTimeLT applies the LT predicate on the "actual_join_time" field.
func ActualJoinTimeLT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldActualJoinTime, v))
}

// ActualJoinTimeLTE applies the LTE predicate on the "actual_join_time" field.
func ActualJoinTimeLTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldActualJoinTime, v))
}

// ActualJoinTimeIsNil applies the IsNil predicate on the "actual_join_time" field.
func ActualJoinTimeIsNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIsNull(FieldActualJoinTime))
}

// ActualJoinTimeNotNil applies the NotNil predicate on the "actual_join_time" field.
func ActualJoinTimeNotNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotNull(FieldActualJoinTime))
}

// LeaveTimeEQ applies the EQ predicate on the "leave_time" field.
func LeaveTimeEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldLeaveTime, v))
}

// LeaveTimeNEQ applies the NEQ predicate on the "leave_time" field.
func LeaveTimeNEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldLeaveTime, v))
}

// LeaveTimeIn applies the In predicate on the "leave_time" field.
func LeaveTimeIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldLeaveTime, vs...))
}

// LeaveTimeNotIn applies the NotIn predicate on the "leave_time" field.
func LeaveTimeNotIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldLeaveTime, vs...))
}

// LeaveTimeGT applies the GT predicate on the "leave_time" field.
func LeaveTimeGT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldLeaveTime, v))
}

// LeaveTimeGTE applies the GTE predicate on the "leave_time" field.
func LeaveTimeGTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldLeaveTime, v))
}

// LeaveTimeLT applies the LT predicate on the "leave_time" field.
func LeaveTimeLT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldLeaveTime, v))
}

// LeaveTimeLTE applies the LTE predicate on the "leave_time" field.
func LeaveTimeLTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldLeaveTime, v))
}

// LeaveTimeIsNil applies the IsNil predicate on the "leave_time" field.
func LeaveTimeIsNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIsNull(FieldLeaveTime))
}

// LeaveTimeNotNil applies the NotNil predicate on the "leave_time" field.
func LeaveTimeNotNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotNull(FieldLeaveTime))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldContainsFold(FieldErrorMessage, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BotDeployment {
	return predicate.BotDeployment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRecording applies the HasEdge predicate on the "recording" edge.
func HasRecording() predicate.BotDeployment {
	return predicate.BotDeployment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RecordingTable, RecordingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingWith applies the HasEdge predicate on the "recording" edge with a given conditions (other predicates).
func HasRecordingWith(preds ...predicate.Recording) predicate.BotDeployment {
	return predicate.BotDeployment(func(s *sql.Selector) {
		step := newRecordingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotDeployment) predicate.BotDeployment {
	return predicate.BotDeployment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotDeployment) predicate.BotDeployment {
	return predicate.BotDeployment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotDeployment) predicate.BotDeployment {
	return predicate.BotDeployment(sql.NotPredicates(p))
}
