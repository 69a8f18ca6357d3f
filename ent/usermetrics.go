// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/usermetrics"
)

// UserMetrics is the model entity for the UserMetrics schema.
type UserMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// LastAppActiveAt holds the value of the "last_app_active_at" field.
	LastAppActiveAt *time.Time `json:"last_app_active_at,omitempty"`
	// LastSlackActiveAt holds the value of the "last_slack_active_at" field.
	LastSlackActiveAt *time.Time `json:"last_slack_active_at,omitempty"`
	// PreferredNotificationFrequency holds the value of the "preferred_notification_frequency" field.
	PreferredNotificationFrequency usermetrics.PreferredNotificationFrequency `json:"preferred_notification_frequency,omitempty"`
	// 0-100; raised by negative feedback, lowers send rate
	NotificationFatigueLevel int `json:"notification_fatigue_level,omitempty"`
	// 0-100
	OverallEngagementScore int `json:"overall_engagement_score,omitempty"`
	// NotificationsSinceLastFeedback holds the value of the "notifications_since_last_feedback" field.
	NotificationsSinceLastFeedback int `json:"notifications_since_last_feedback,omitempty"`
	// LastFeedbackRequestedAt holds the value of the "last_feedback_requested_at" field.
	LastFeedbackRequestedAt *time.Time `json:"last_feedback_requested_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usermetrics.FieldNotificationFatigueLevel, usermetrics.FieldOverallEngagementScore, usermetrics.FieldNotificationsSinceLastFeedback:
			values[i] = new(sql.NullInt64)
		case usermetrics.FieldID, usermetrics.FieldUserID, usermetrics.FieldOrgID, usermetrics.FieldPreferredNotificationFrequency:
			values[i] = new(sql.NullString)
		case usermetrics.FieldLastAppActiveAt, usermetrics.FieldLastSlackActiveAt, usermetrics.FieldLastFeedbackRequestedAt, usermetrics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserMetrics fields.
func (_m *UserMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usermetrics.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usermetrics.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usermetrics.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case usermetrics.FieldLastAppActiveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_app_active_at", values[i])
			} else if value.Valid {
				_m.LastAppActiveAt = new(time.Time)
				*_m.LastAppActiveAt = value.Time
			}
		case usermetrics.FieldLastSlackActiveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_slack_active_at", values[i])
			} else if value.Valid {
				_m.LastSlackActiveAt = new(time.Time)
				*_m.LastSlackActiveAt = value.Time
			}
		case usermetrics.FieldPreferredNotificationFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_notification_frequency", values[i])
			} else if value.Valid {
				_m.PreferredNotificationFrequency = usermetrics.PreferredNotificationFrequency(value.String)
			}
		case usermetrics.FieldNotificationFatigueLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field notification_fatigue_level", values[i])
			} else if value.Valid {
				_m.NotificationFatigueLevel = int(value.Int64)
			}
		case usermetrics.FieldOverallEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_engagement_score", values[i])
			} else if value.Valid {
				_m.OverallEngagementScore = int(value.Int64)
			}
		case usermetrics.FieldNotificationsSinceLastFeedback:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field notifications_since_last_feedback", values[i])
			} else if value.Valid {
				_m.NotificationsSinceLastFeedback = int(value.Int64)
			}
		case usermetrics.FieldLastFeedbackRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_feedback_requested_at", values[i])
			} else if value.Valid {
				_m.LastFeedbackRequestedAt = new(time.Time)
				*_m.LastFeedbackRequestedAt = value.Time
			}
		case usermetrics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *UserMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserMetrics.
// Note that you need to call UserMetrics.Unwrap() before calling this method if this UserMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserMetrics) Update() *UserMetricsUpdateOne {
	return NewUserMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserMetrics) Unwrap() *UserMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("UserMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	if v := _m.LastAppActiveAt; v != nil {
		builder.WriteString("last_app_active_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSlackActiveAt; v != nil {
		builder.WriteString("last_slack_active_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("preferred_notification_frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredNotificationFrequency))
	builder.WriteString(", ")
	builder.WriteString("notification_fatigue_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationFatigueLevel))
	builder.WriteString(", ")
	builder.WriteString("overall_engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallEngagementScore))
	builder.WriteString(", ")
	builder.WriteString("notifications_since_last_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationsSinceLastFeedback))
	builder.WriteString(", ")
	if v := _m.LastFeedbackRequestedAt; v != nil {
		builder.WriteString("last_feedback_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserMetricsSlice is a parsable slice of UserMetrics.
type UserMetricsSlice []*UserMetrics
