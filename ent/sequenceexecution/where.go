// Code generated by ent, DO NOT EDIT.

package sequenceexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldOrgID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldUserID, v))
}

// SequenceKey applies equality check predicate on the "sequence_key" field. It's identical to SequenceKeyEQ.
func SequenceKey(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldSequenceKey, v))
}

// FailedStepIndex applies equality check predicate on the "failed_step_index" field. It's identical to FailedStepIndexEQ.
func FailedStepIndex(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldFailedStepIndex, v))
}

// IsSimulation applies equality check predicate on the "is_simulation" field. It's identical to IsSimulationEQ.
func IsSimulation(v bool) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldIsSimulation, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContainsFold(FieldOrgID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContainsFold(FieldUserID, v))
}

// SequenceKeyEQ applies the EQ predicate on the "sequence_key" field.
func SequenceKeyEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldSequenceKey, v))
}

// SequenceKeyNEQ applies the NEQ predicate on the "sequence_key" field.
func SequenceKeyNEQ(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldSequenceKey, v))
}

// SequenceKeyIn applies the In predicate on the "sequence_key" field.
func SequenceKeyIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldSequenceKey, vs...))
}

// SequenceKeyNotIn applies the NotIn predicate on the "sequence_key" field.
func SequenceKeyNotIn(vs ...string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldSequenceKey, vs...))
}

// SequenceKeyGT applies the GT predicate on the "sequence_key" field.
func SequenceKeyGT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldSequenceKey, v))
}

// SequenceKeyGTE applies the GTE predicate on the "sequence_key" field.
func SequenceKeyGTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldSequenceKey, v))
}

// SequenceKeyLT applies the LT predicate on the "sequence_key" field.
func SequenceKeyLT(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldSequenceKey, v))
}

// SequenceKeyLTE applies the LTE predicate on the "sequence_key" field.
func SequenceKeyLTE(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldSequenceKey, v))
}

// SequenceKeyContains applies the Contains predicate on the "sequence_key" field.
func SequenceKeyContains(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContains(FieldSequenceKey, v))
}

// SequenceKeyHasPrefix applies the HasPrefix predicate on the "sequence_key" field.
func SequenceKeyHasPrefix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasPrefix(FieldSequenceKey, v))
}

// SequenceKeyHasSuffix applies the HasSuffix predicate on the "sequence_key" field.
func SequenceKeyHasSuffix(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldHasSuffix(FieldSequenceKey, v))
}

// SequenceKeyEqualFold applies the EqualFold predicate on the "sequence_key" field.
func SequenceKeyEqualFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEqualFold(FieldSequenceKey, v))
}

// SequenceKeyContainsFold applies the ContainsFold predicate on the "sequence_key" field.
func SequenceKeyContainsFold(v string) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldContainsFold(FieldSequenceKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// InputTriggerIsNil applies the IsNil predicate on the "input_trigger" field.
func InputTriggerIsNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIsNull(FieldInputTrigger))
}

// InputTriggerNotNil applies the NotNil predicate on the "input_trigger" field.
func InputTriggerNotNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotNull(FieldInputTrigger))
}

// InputContextIsNil applies the IsNil predicate on the "input_context" field.
func InputContextIsNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIsNull(FieldInputContext))
}

// InputContextNotNil applies the NotNil predicate on the "input_context" field.
func InputContextNotNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotNull(FieldInputContext))
}

// StepResultsIsNil applies the IsNil predicate on the "step_results" field.
func StepResultsIsNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIsNull(FieldStepResults))
}

// StepResultsNotNil applies the NotNil predicate on the "step_results" field.
func StepResultsNotNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotNull(FieldStepResults))
}

// FailedStepIndexEQ applies the EQ predicate on the "failed_step_index" field.
func FailedStepIndexEQ(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldFailedStepIndex, v))
}

// FailedStepIndexNEQ applies the NEQ predicate on the "failed_step_index" field.
func FailedStepIndexNEQ(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldFailedStepIndex, v))
}

// FailedStepIndexIn applies the In predicate on the "failed_step_index" field.
func FailedStepIndexIn(vs ...int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldFailedStepIndex, vs...))
}

// FailedStepIndexNotIn applies the NotIn predicate on the "failed_step_index" field.
func FailedStepIndexNotIn(vs ...int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldFailedStepIndex, vs...))
}

// FailedStepIndexGT applies the GT predicate on the "failed_step_index" field.
func FailedStepIndexGT(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldFailedStepIndex, v))
}

// FailedStepIndexGTE applies the GTE predicate on the "failed_step_index" field.
func FailedStepIndexGTE(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldFailedStepIndex, v))
}

// FailedStepIndexLT applies the LT predicate on the "failed_step_index" field.
func FailedStepIndexLT(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldFailedStepIndex, v))
}

// FailedStepIndexLTE applies the LTE predicate on the "failed_step_index" field.
func FailedStepIndexLTE(v int) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldFailedStepIndex, v))
}

// FailedStepIndexIsNil applies the IsNil predicate on the "failed_step_index" field.
func FailedStepIndexIsNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIsNull(FieldFailedStepIndex))
}

// FailedStepIndexNotNil applies the NotNil predicate on the "failed_step_index" field.
func FailedStepIndexNotNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotNull(FieldFailedStepIndex))
}

// IsSimulationEQ applies the EQ predicate on the "is_simulation" field.
func IsSimulationEQ(v bool) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldIsSimulation, v))
}

// IsSimulationNEQ applies the NEQ predicate on the "is_simulation" field.
func IsSimulationNEQ(v bool) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldIsSimulation, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SequenceExecution) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SequenceExecution) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SequenceExecution) predicate.SequenceExecution {
	return predicate.SequenceExecution(sql.NotPredicates(p))
}
