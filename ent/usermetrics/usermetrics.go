// Code generated by ent, DO NOT EDIT.

package usermetrics

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usermetrics type in the database.
	Label = "user_metrics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "metrics_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldLastAppActiveAt holds the string denoting the last_app_active_at field in the database.
	FieldLastAppActiveAt = "last_app_active_at"
	// FieldLastSlackActiveAt holds the string denoting the last_slack_active_at field in the database.
	FieldLastSlackActiveAt = "last_slack_active_at"
	// FieldPreferredNotificationFrequency holds the string denoting the preferred_notification_frequency field in the database.
	FieldPreferredNotificationFrequency = "preferred_notification_frequency"
	// FieldNotificationFatigueLevel holds the string denoting the notification_fatigue_level field in the database.
	FieldNotificationFatigueLevel = "notification_fatigue_level"
	// FieldOverallEngagementScore holds the string denoting the overall_engagement_score field in the database.
	FieldOverallEngagementScore = "overall_engagement_score"
	// FieldNotificationsSinceLastFeedback holds the string denoting the notifications_since_last_feedback field in the database.
	FieldNotificationsSinceLastFeedback = "notifications_since_last_feedback"
	// FieldLastFeedbackRequestedAt holds the string denoting the last_feedback_requested_at field in the database.
	FieldLastFeedbackRequestedAt = "last_feedback_requested_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the usermetrics in the database.
	Table = "user_metrics"
)

// Columns holds all SQL columns for usermetrics fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldOrgID,
	FieldLastAppActiveAt,
	FieldLastSlackActiveAt,
	FieldPreferredNotificationFrequency,
	FieldNotificationFatigueLevel,
	FieldOverallEngagementScore,
	FieldNotificationsSinceLastFeedback,
	FieldLastFeedbackRequestedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNotificationFatigueLevel holds the default value on creation for the "notification_fatigue_level" field.
	DefaultNotificationFatigueLevel int
	// DefaultOverallEngagementScore holds the default value on creation for the "overall_engagement_score" field.
	DefaultOverallEngagementScore int
	// DefaultNotificationsSinceLastFeedback holds the default value on creation for the "notifications_since_last_feedback" field.
	DefaultNotificationsSinceLastFeedback int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PreferredNotificationFrequency defines the type for the "preferred_notification_frequency" enum field.
type PreferredNotificationFrequency string

// PreferredNotificationFrequencyModerate is the default value of the PreferredNotificationFrequency enum.
const DefaultPreferredNotificationFrequency = PreferredNotificationFrequencyModerate

// PreferredNotificationFrequency values.
const (
	PreferredNotificationFrequencyLow      PreferredNotificationFrequency = "low"
	PreferredNotificationFrequencyModerate PreferredNotificationFrequency = "moderate"
	PreferredNotificationFrequencyHigh     PreferredNotificationFrequency = "high"
)

func (pnf PreferredNotificationFrequency) String() string {
	return string(pnf)
}

// PreferredNotificationFrequencyValidator is a validator for the "preferred_notification_frequency" field enum values. It is called by the builders before save.
func PreferredNotificationFrequencyValidator(pnf PreferredNotificationFrequency) error {
	switch pnf {
	case PreferredNotificationFrequencyLow, PreferredNotificationFrequencyModerate, PreferredNotificationFrequencyHigh:
		return nil
	default:
		return fmt.Errorf("usermetrics: invalid enum value for preferred_notification_frequency field: %q", pnf)
	}
}

// OrderOption defines the ordering options for the UserMetrics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByLastAppActiveAt orders the results by the last_app_active_at field.
func ByLastAppActiveAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAppActiveAt, opts...).ToFunc()
}

// ByLastSlackActiveAt orders the results by the last_slack_active_at field.
func ByLastSlackActiveAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSlackActiveAt, opts...).ToFunc()
}

// ByPreferredNotificationFrequency orders the results by the preferred_notification_frequency field.
func ByPreferredNotificationFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredNotificationFrequency, opts...).ToFunc()
}

// ByNotificationFatigueLevel orders the results by the notification_fatigue_level field.
func ByNotificationFatigueLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationFatigueLevel, opts...).ToFunc()
}

// ByOverallEngagementScore orders the results by the overall_engagement_score field.
func ByOverallEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallEngagementScore, opts...).ToFunc()
}

// ByNotificationsSinceLastFeedback orders the results by the notifications_since_last_feedback field.
func ByNotificationsSinceLastFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationsSinceLastFeedback, opts...).ToFunc()
}

// ByLastFeedbackRequestedAt orders the results by the last_feedback_requested_at field.
func ByLastFeedbackRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFeedbackRequestedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
