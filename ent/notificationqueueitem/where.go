// Code generated by ent, DO NOT EDIT.

package notificationqueueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldUserID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldOrgID, v))
}

// NotificationType applies equality check predicate on the "notification_type" field. It's identical to NotificationTypeEQ.
func NotificationType(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldNotificationType, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldScheduledFor, v))
}

// OptimalSendTime applies equality check predicate on the "optimal_send_time" field. It's identical to OptimalSendTimeEQ.
func OptimalSendTime(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldOptimalSendTime, v))
}

// NextAllowedAt applies equality check predicate on the "next_allowed_at" field. It's identical to NextAllowedAtEQ.
func NextAllowedAt(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldNextAllowedAt, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldAttemptCount, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// LockedBy applies equality check predicate on the "locked_by" field. It's identical to LockedByEQ.
func LockedBy(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLockedBy, v))
}

// LockedAt applies equality check predicate on the "locked_at" field. It's identical to LockedAtEQ.
func LockedAt(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLockedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLastError, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldSentAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldUserID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldOrgID, v))
}

// NotificationTypeEQ applies the EQ predicate on the "notification_type" field.
func NotificationTypeEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldNotificationType, v))
}

// NotificationTypeNEQ applies the NEQ predicate on the "notification_type" field.
func NotificationTypeNEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldNotificationType, v))
}

// NotificationTypeIn applies the In predicate on the "notification_type" field.
func NotificationTypeIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldNotificationType, vs...))
}

// NotificationTypeNotIn applies the NotIn predicate on the "notification_type" field.
func NotificationTypeNotIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldNotificationType, vs...))
}

// NotificationTypeGT applies the GT predicate on the "notification_type" field.
func NotificationTypeGT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldNotificationType, v))
}

// NotificationTypeGTE applies the GTE predicate on the "notification_type" field.
func NotificationTypeGTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldNotificationType, v))
}

// NotificationTypeLT applies the LT predicate on the "notification_type" field.
func NotificationTypeLT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldNotificationType, v))
}

// NotificationTypeLTE applies the LTE predicate on the "notification_type" field.
func NotificationTypeLTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldNotificationType, v))
}

// NotificationTypeContains applies the Contains predicate on the "notification_type" field.
func NotificationTypeContains(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContains(FieldNotificationType, v))
}

// NotificationTypeHasPrefix applies the HasPrefix predicate on the "notification_type" field.
func NotificationTypeHasPrefix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasPrefix(FieldNotificationType, v))
}

// NotificationTypeHasSuffix applies the HasSuffix predicate on the "notification_type" field.
func NotificationTypeHasSuffix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasSuffix(FieldNotificationType, v))
}

// NotificationTypeEqualFold applies the EqualFold predicate on the "notification_type" field.
func NotificationTypeEqualFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldNotificationType, v))
}

// NotificationTypeContainsFold applies the ContainsFold predicate on the "notification_type" field.
func NotificationTypeContainsFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldNotificationType, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldChannel, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldPriority, vs...))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldScheduledFor, v))
}

// OptimalSendTimeEQ applies the EQ predicate on the "optimal_send_time" field.
func OptimalSendTimeEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldOptimalSendTime, v))
}

// OptimalSendTimeNEQ applies the NEQ predicate on the "optimal_send_time" field.
func OptimalSendTimeNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldOptimalSendTime, v))
}

// OptimalSendTimeIn applies the In predicate on the "optimal_send_time" field.
func OptimalSendTimeIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldOptimalSendTime, vs...))
}

// OptimalSendTimeNotIn applies the NotIn predicate on the "optimal_send_time" field.
func OptimalSendTimeNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldOptimalSendTime, vs...))
}

// OptimalSendTimeGT applies the GT predicate on the "optimal_send_time" field.
func OptimalSendTimeGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldOptimalSendTime, v))
}

// OptimalSendTimeGTE applies the GTE predicate on the "optimal_send_time" field.
func OptimalSendTimeGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldOptimalSendTime, v))
}

// OptimalSendTimeLT applies the LT predicate on the "optimal_send_time" field.
func OptimalSendTimeLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldOptimalSendTime, v))
}

// OptimalSendTimeLTE applies the LTE predicate on the "optimal_send_time" field.
func OptimalSendTimeLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldOptimalSendTime, v))
}

// OptimalSendTimeIsNil applies the IsNil predicate on the "optimal_send_time" field.
func OptimalSendTimeIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldOptimalSendTime))
}

// OptimalSendTimeNotNil applies the NotNil predicate on the "optimal_send_time" field.
func OptimalSendTimeNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldOptimalSendTime))
}

// NextAllowedAtEQ applies the EQ predicate on the "next_allowed_at" field.
func NextAllowedAtEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldNextAllowedAt, v))
}

// NextAllowedAtNEQ applies the NEQ predicate on the "next_allowed_at" field.
func NextAllowedAtNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldNextAllowedAt, v))
}

// NextAllowedAtIn applies the In predicate on the "next_allowed_at" field.
func NextAllowedAtIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldNextAllowedAt, vs...))
}

// NextAllowedAtNotIn applies the NotIn predicate on the "next_allowed_at" field.
func NextAllowedAtNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldNextAllowedAt, vs...))
}

// NextAllowedAtGT applies the GT predicate on the "next_allowed_at" field.
func NextAllowedAtGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldNextAllowedAt, v))
}

// NextAllowedAtGTE applies the GTE predicate on the "next_allowed_at" field.
func NextAllowedAtGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldNextAllowedAt, v))
}

// NextAllowedAtLT applies the LT predicate on the "next_allowed_at" field.
func NextAllowedAtLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldNextAllowedAt, v))
}

// NextAllowedAtLTE applies the LTE predicate on the "next_allowed_at" field.
func NextAllowedAtLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldNextAllowedAt, v))
}

// NextAllowedAtIsNil applies the IsNil predicate on the "next_allowed_at" field.
func NextAllowedAtIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldNextAllowedAt))
}

// NextAllowedAtNotNil applies the NotNil predicate on the "next_allowed_at" field.
func NextAllowedAtNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldNextAllowedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldAttemptCount, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldMaxAttempts, v))
}

// LockedByEQ applies the EQ predicate on the "locked_by" field.
func LockedByEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLockedBy, v))
}

// LockedByNEQ applies the NEQ predicate on the "locked_by" field.
func LockedByNEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldLockedBy, v))
}

// LockedByIn applies the In predicate on the "locked_by" field.
func LockedByIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldLockedBy, vs...))
}

// LockedByNotIn applies the NotIn predicate on the "locked_by" field.
func LockedByNotIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldLockedBy, vs...))
}

// LockedByGT applies the GT predicate on the "locked_by" field.
func LockedByGT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldLockedBy, v))
}

// LockedByGTE applies the GTE predicate on the "locked_by" field.
func LockedByGTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldLockedBy, v))
}

// LockedByLT applies the LT predicate on the "locked_by" field.
func LockedByLT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldLockedBy, v))
}

// LockedByLTE applies the LTE predicate on the "locked_by" field.
func LockedByLTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldLockedBy, v))
}

// LockedByContains applies the Contains predicate on the "locked_by" field.
func LockedByContains(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContains(FieldLockedBy, v))
}

// LockedByHasPrefix applies the HasPrefix predicate on the "locked_by" field.
func LockedByHasPrefix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasPrefix(FieldLockedBy, v))
}

// LockedByHasSuffix applies the HasSuffix predicate on the "locked_by" field.
func LockedByHasSuffix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasSuffix(FieldLockedBy, v))
}

// LockedByIsNil applies the IsNil predicate on the "locked_by" field.
func LockedByIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldLockedBy))
}

// LockedByNotNil applies the NotNil predicate on the "locked_by" field.
func LockedByNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldLockedBy))
}

// LockedByEqualFold applies the EqualFold predicate on the "locked_by" field.
func LockedByEqualFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldLockedBy, v))
}

// LockedByContainsFold applies the ContainsFold predicate on the "locked_by" field.
func LockedByContainsFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldLockedBy, v))
}

// LockedAtEQ applies the EQ predicate on the "locked_at" field.
func LockedAtEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLockedAt, v))
}

// LockedAtNEQ applies the NEQ predicate on the "locked_at" field.
func LockedAtNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldLockedAt, v))
}

// LockedAtIn applies the In predicate on the "locked_at" field.
func LockedAtIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldLockedAt, vs...))
}

// LockedAtNotIn applies the NotIn predicate on the "locked_at" field.
func LockedAtNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldLockedAt, vs...))
}

// LockedAtGT applies the GT predicate on the "locked_at" field.
func LockedAtGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldLockedAt, v))
}

// LockedAtGTE applies the GTE predicate on the "locked_at" field.
func LockedAtGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldLockedAt, v))
}

// LockedAtLT applies the LT predicate on the "locked_at" field.
func LockedAtLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldLockedAt, v))
}

// LockedAtLTE applies the LTE predicate on the "locked_at" field.
func LockedAtLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldLockedAt, v))
}

// LockedAtIsNil applies the IsNil predicate on the "locked_at" field.
func LockedAtIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldLockedAt))
}

// LockedAtNotNil applies the NotNil predicate on the "locked_at" field.
func LockedAtNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldLockedAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldContainsFold(FieldLastError, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotNull(FieldSentAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationQueueItem) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationQueueItem) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationQueueItem) predicate.NotificationQueueItem {
	return predicate.NotificationQueueItem(sql.NotPredicates(p))
}
