// Code generated by ent, DO NOT EDIT.

package usermetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldUserID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldOrgID, v))
}

// LastAppActiveAt applies equality check predicate on the "last_app_active_at" field. It's identical to LastAppActiveAtEQ.
func LastAppActiveAt(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastAppActiveAt, v))
}

// LastSlackActiveAt applies equality check predicate on the "last_slack_active_at" field. It's identical to LastSlackActiveAtEQ.
func LastSlackActiveAt(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastSlackActiveAt, v))
}

// NotificationFatigueLevel applies equality check predicate on the "notification_fatigue_level" field. It's identical to NotificationFatigueLevelEQ.
func NotificationFatigueLevel(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldNotificationFatigueLevel, v))
}

// OverallEngagementScore applies equality check predicate on the "overall_engagement_score" field. It's identical to OverallEngagementScoreEQ.
func OverallEngagementScore(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldOverallEngagementScore, v))
}

// NotificationsSinceLastFeedback applies equality check predicate on the "notifications_since_last_feedback" field. It's identical to NotificationsSinceLastFeedbackEQ.
func NotificationsSinceLastFeedback(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldNotificationsSinceLastFeedback, v))
}

// LastFeedbackRequestedAt applies equality check predicate on the "last_feedback_requested_at" field. It's identical to LastFeedbackRequestedAtEQ.
func LastFeedbackRequestedAt(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastFeedbackRequestedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldContainsFold(FieldUserID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldContainsFold(FieldOrgID, v))
}

// LastAppActiveAtEQ applies the EQ predicate on the "last_app_active_at" field.
func LastAppActiveAtEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastAppActiveAt, v))
}

// LastAppActiveAtNEQ applies the NEQ predicate on the "last_app_active_at" field.
func LastAppActiveAtNEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldLastAppActiveAt, v))
}

// LastAppActiveAtIn applies the In predicate on the "last_app_active_at" field.
func LastAppActiveAtIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldLastAppActiveAt, vs...))
}

// LastAppActiveAtNotIn applies the NotIn predicate on the "last_app_active_at" field.
func LastAppActiveAtNotIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldLastAppActiveAt, vs...))
}

// LastAppActiveAtGT applies the GT predicate on the "last_app_active_at" field.
func LastAppActiveAtGT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldLastAppActiveAt, v))
}

// LastAppActiveAtGTE applies the GTE predicate on the "last_app_active_at" field.
func LastAppActiveAtGTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldLastAppActiveAt, v))
}

// LastAppActiveAtLT applies the LT predicate on the "last_app_active_at" field.
func LastAppActiveAtLT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldLastAppActiveAt, v))
}

// LastAppActiveAtLTE applies the LTE predicate on the "last_app_active_at" field.
func LastAppActiveAtLTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldLastAppActiveAt, v))
}

// LastAppActiveAtIsNil applies the IsNil predicate on the "last_app_active_at" field.
func LastAppActiveAtIsNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIsNull(FieldLastAppActiveAt))
}

// LastAppActiveAtNotNil applies the NotNil predicate on the "last_app_active_at" field.
func LastAppActiveAtNotNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotNull(FieldLastAppActiveAt))
}

// LastSlackActiveAtEQ applies the EQ predicate on the "last_slack_active_at" field.
func LastSlackActiveAtEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtNEQ applies the NEQ predicate on the "last_slack_active_at" field.
func LastSlackActiveAtNEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtIn applies the In predicate on the "last_slack_active_at" field.
func LastSlackActiveAtIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldLastSlackActiveAt, vs...))
}

// LastSlackActiveAtNotIn applies the NotIn predicate on the "last_slack_active_at" field.
func LastSlackActiveAtNotIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldLastSlackActiveAt, vs...))
}

// LastSlackActiveAtGT applies the GT predicate on the "last_slack_active_at" field.
func LastSlackActiveAtGT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtGTE applies the GTE predicate on the "last_slack_active_at" field.
func LastSlackActiveAtGTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtLT applies the LT predicate on the "last_slack_active_at" field.
func LastSlackActiveAtLT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtLTE applies the LTE predicate on the "last_slack_active_at" field.
func LastSlackActiveAtLTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldLastSlackActiveAt, v))
}

// LastSlackActiveAtIsNil applies the IsNil predicate on the "last_slack_active_at" field.
func LastSlackActiveAtIsNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIsNull(FieldLastSlackActiveAt))
}

// LastSlackActiveAtNotNil applies the NotNil predicate on the "last_slack_active_at" field.
func LastSlackActiveAtNotNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotNull(FieldLastSlackActiveAt))
}

// PreferredNotificationFrequencyEQ applies the EQ predicate on the "preferred_notification_frequency" field.
func PreferredNotificationFrequencyEQ(v PreferredNotificationFrequency) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldPreferredNotificationFrequency, v))
}

// PreferredNotificationFrequencyNEQ applies the NEQ predicate on the "preferred_notification_frequency" field.
func PreferredNotificationFrequencyNEQ(v PreferredNotificationFrequency) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldPreferredNotificationFrequency, v))
}

// PreferredNotificationFrequencyIn applies the In predicate on the "preferred_notification_frequency" field.
func PreferredNotificationFrequencyIn(vs ...PreferredNotificationFrequency) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldPreferredNotificationFrequency, vs...))
}

// PreferredNotificationFrequencyNotIn applies the NotIn predicate on the "preferred_notification_frequency" field.
func PreferredNotificationFrequencyNotIn(vs ...PreferredNotificationFrequency) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldPreferredNotificationFrequency, vs...))
}

// NotificationFatigueLevelEQ applies the EQ predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldNotificationFatigueLevel, v))
}

// NotificationFatigueLevelNEQ applies the NEQ predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelNEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldNotificationFatigueLevel, v))
}

// NotificationFatigueLevelIn applies the In predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldNotificationFatigueLevel, vs...))
}

// NotificationFatigueLevelNotIn applies the NotIn predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelNotIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldNotificationFatigueLevel, vs...))
}

// NotificationFatigueLevelGT applies the GT predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelGT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldNotificationFatigueLevel, v))
}

// NotificationFatigueLevelGTE applies the GTE predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelGTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldNotificationFatigueLevel, v))
}

// NotificationFatigueLevelLT applies the LT predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelLT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldNotificationFatigueLevel, v))
}

// NotificationFatigueLevelLTE applies the LTE predicate on the "notification_fatigue_level" field.
func NotificationFatigueLevelLTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldNotificationFatigueLevel, v))
}

// OverallEngagementScoreEQ applies the EQ predicate on the "overall_engagement_score" field.
func OverallEngagementScoreEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldOverallEngagementScore, v))
}

// OverallEngagementScoreNEQ applies the NEQ predicate on the "overall_engagement_score" field.
func OverallEngagementScoreNEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldOverallEngagementScore, v))
}

// OverallEngagementScoreIn applies the In predicate on the "overall_engagement_score" field.
func OverallEngagementScoreIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldOverallEngagementScore, vs...))
}

// OverallEngagementScoreNotIn applies the NotIn predicate on the "overall_engagement_score" field.
func OverallEngagementScoreNotIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldOverallEngagementScore, vs...))
}

// OverallEngagementScoreGT applies the GT predicate on the "overall_engagement_score" field.
func OverallEngagementScoreGT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldOverallEngagementScore, v))
}

// OverallEngagementScoreGTE applies the GTE predicate on the "overall_engagement_score" field.
func OverallEngagementScoreGTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldOverallEngagementScore, v))
}

// OverallEngagementScoreLT applies the LT predicate on the "overall_engagement_score" field.
func OverallEngagementScoreLT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldOverallEngagementScore, v))
}

// OverallEngagementScoreLTE applies the LTE predicate on the "overall_engagement_score" field.
func OverallEngagementScoreLTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldOverallEngagementScore, v))
}

// NotificationsSinceLastFeedbackEQ applies the EQ predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldNotificationsSinceLastFeedback, v))
}

// NotificationsSinceLastFeedbackNEQ applies the NEQ predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackNEQ(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldNotificationsSinceLastFeedback, v))
}

// NotificationsSinceLastFeedbackIn applies the In predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldNotificationsSinceLastFeedback, vs...))
}

// NotificationsSinceLastFeedbackNotIn applies the NotIn predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackNotIn(vs ...int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldNotificationsSinceLastFeedback, vs...))
}

// NotificationsSinceLastFeedbackGT applies the GT predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackGT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldNotificationsSinceLastFeedback, v))
}

// NotificationsSinceLastFeedbackGTE applies the GTE predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackGTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldNotificationsSinceLastFeedback, v))
}

// NotificationsSinceLastFeedbackLT applies the LT predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackLT(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldNotificationsSinceLastFeedback, v))
}

// NotificationsSinceLastFeedbackLTE applies the LTE predicate on the "notifications_since_last_feedback" field.
func NotificationsSinceLastFeedbackLTE(v int) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldNotificationsSinceLastFeedback, v))
}

// LastFeedbackRequestedAtEQ applies the EQ predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtNEQ applies the NEQ predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtNEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtIn applies the In predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldLastFeedbackRequestedAt, vs...))
}

// LastFeedbackRequestedAtNotIn applies the NotIn predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtNotIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldLastFeedbackRequestedAt, vs...))
}

// LastFeedbackRequestedAtGT applies the GT predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtGT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtGTE applies the GTE predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtGTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtLT applies the LT predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtLT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtLTE applies the LTE predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtLTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldLastFeedbackRequestedAt, v))
}

// LastFeedbackRequestedAtIsNil applies the IsNil predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtIsNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIsNull(FieldLastFeedbackRequestedAt))
}

// LastFeedbackRequestedAtNotNil applies the NotNil predicate on the "last_feedback_requested_at" field.
func LastFeedbackRequestedAtNotNil() predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotNull(FieldLastFeedbackRequestedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserMetrics {
	return predicate.UserMetrics(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserMetrics) predicate.UserMetrics {
	return predicate.UserMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserMetrics) predicate.UserMetrics {
	return predicate.UserMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserMetrics) predicate.UserMetrics {
	return predicate.UserMetrics(sql.NotPredicates(p))
}
