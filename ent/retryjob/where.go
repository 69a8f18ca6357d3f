// Code generated by ent, DO NOT EDIT.

package retryjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldContainsFold(FieldID, id))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldJobType, v))
}

// TargetEntityRef applies equality check predicate on the "target_entity_ref" field. It's identical to TargetEntityRefEQ.
func TargetEntityRef(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldTargetEntityRef, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldNextAttemptAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldMaxAttempts, v))
}

// BackoffBaseSeconds applies equality check predicate on the "backoff_base_seconds" field. It's identical to BackoffBaseSecondsEQ.
func BackoffBaseSeconds(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldBackoffBaseSeconds, v))
}

// BackoffCapSeconds applies equality check predicate on the "backoff_cap_seconds" field. It's identical to BackoffCapSecondsEQ.
func BackoffCapSeconds(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldBackoffCapSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldCreatedAt, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldContainsFold(FieldJobType, v))
}

// TargetEntityRefEQ applies the EQ predicate on the "target_entity_ref" field.
func TargetEntityRefEQ(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldTargetEntityRef, v))
}

// TargetEntityRefNEQ applies the NEQ predicate on the "target_entity_ref" field.
func TargetEntityRefNEQ(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldTargetEntityRef, v))
}

// TargetEntityRefIn applies the In predicate on the "target_entity_ref" field.
func TargetEntityRefIn(vs ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldTargetEntityRef, vs...))
}

// TargetEntityRefNotIn applies the NotIn predicate on the "target_entity_ref" field.
func TargetEntityRefNotIn(vs ...string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldTargetEntityRef, vs...))
}

// TargetEntityRefGT applies the GT predicate on the "target_entity_ref" field.
func TargetEntityRefGT(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldTargetEntityRef, v))
}

// TargetEntityRefGTE applies the GTE predicate on the "target_entity_ref" field.
func TargetEntityRefGTE(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldTargetEntityRef, v))
}

// TargetEntityRefLT applies the LT predicate on the "target_entity_ref" field.
func TargetEntityRefLT(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldTargetEntityRef, v))
}

// TargetEntityRefLTE applies the LTE predicate on the "target_entity_ref" field.
func TargetEntityRefLTE(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldTargetEntityRef, v))
}

// TargetEntityRefContains applies the Contains predicate on the "target_entity_ref" field.
func TargetEntityRefContains(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldContains(FieldTargetEntityRef, v))
}

// TargetEntityRefHasPrefix applies the HasPrefix predicate on the "target_entity_ref" field.
func TargetEntityRefHasPrefix(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldHasPrefix(FieldTargetEntityRef, v))
}

// TargetEntityRefHasSuffix applies the HasSuffix predicate on the "target_entity_ref" field.
func TargetEntityRefHasSuffix(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldHasSuffix(FieldTargetEntityRef, v))
}

// TargetEntityRefEqualFold applies the EqualFold predicate on the "target_entity_ref" field.
func TargetEntityRefEqualFold(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEqualFold(FieldTargetEntityRef, v))
}

// TargetEntityRefContainsFold applies the ContainsFold predicate on the "target_entity_ref" field.
func TargetEntityRefContainsFold(v string) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldContainsFold(FieldTargetEntityRef, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldNextAttemptAt, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldMaxAttempts, v))
}

// BackoffBaseSecondsEQ applies the EQ predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldBackoffBaseSeconds, v))
}

// BackoffBaseSecondsNEQ applies the NEQ predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsNEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldBackoffBaseSeconds, v))
}

// BackoffBaseSecondsIn applies the In predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldBackoffBaseSeconds, vs...))
}

// BackoffBaseSecondsNotIn applies the NotIn predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsNotIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldBackoffBaseSeconds, vs...))
}

// BackoffBaseSecondsGT applies the GT predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsGT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldBackoffBaseSeconds, v))
}

// BackoffBaseSecondsGTE applies the GTE predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsGTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldBackoffBaseSeconds, v))
}

// BackoffBaseSecondsLT applies the LT predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsLT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldBackoffBaseSeconds, v))
}

// BackoffBaseSecondsLTE applies the LTE predicate on the "backoff_base_seconds" field.
func BackoffBaseSecondsLTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldBackoffBaseSeconds, v))
}

// BackoffCapSecondsEQ applies the EQ predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldBackoffCapSeconds, v))
}

// BackoffCapSecondsNEQ applies the NEQ predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsNEQ(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldBackoffCapSeconds, v))
}

// BackoffCapSecondsIn applies the In predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldBackoffCapSeconds, vs...))
}

// BackoffCapSecondsNotIn applies the NotIn predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsNotIn(vs ...int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldBackoffCapSeconds, vs...))
}

// BackoffCapSecondsGT applies the GT predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsGT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldBackoffCapSeconds, v))
}

// BackoffCapSecondsGTE applies the GTE predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsGTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldBackoffCapSeconds, v))
}

// BackoffCapSecondsLT applies the LT predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsLT(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldBackoffCapSeconds, v))
}

// BackoffCapSecondsLTE applies the LTE predicate on the "backoff_cap_seconds" field.
func BackoffCapSecondsLTE(v int) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldBackoffCapSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RetryJob {
	return predicate.RetryJob(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RetryJob) predicate.RetryJob {
	return predicate.RetryJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RetryJob) predicate.RetryJob {
	return predicate.RetryJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RetryJob) predicate.RetryJob {
	return predicate.RetryJob(sql.NotPredicates(p))
}
