// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
)

// NotificationInteraction is the model entity for the NotificationInteraction schema.
type NotificationInteraction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// NotificationType holds the value of the "notification_type" field.
	NotificationType string `json:"notification_type,omitempty"`
	// Priority the send went out at (after any downgrade); frequency caps count per bucket
	Priority string `json:"priority,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt time.Time `json:"delivered_at,omitempty"`
	// Channel that performed the delivery
	DeliveredVia string `json:"delivered_via,omitempty"`
	// OpenedAt holds the value of the "opened_at" field.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// ClickedAt holds the value of the "clicked_at" field.
	ClickedAt *time.Time `json:"clicked_at,omitempty"`
	// DismissedAt holds the value of the "dismissed_at" field.
	DismissedAt  *time.Time `json:"dismissed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationInteraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationinteraction.FieldID, notificationinteraction.FieldUserID, notificationinteraction.FieldOrgID, notificationinteraction.FieldNotificationType, notificationinteraction.FieldPriority, notificationinteraction.FieldDeliveredVia:
			values[i] = new(sql.NullString)
		case notificationinteraction.FieldDeliveredAt, notificationinteraction.FieldOpenedAt, notificationinteraction.FieldClickedAt, notificationinteraction.FieldDismissedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationInteraction fields.
func (_m *NotificationInteraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationinteraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationinteraction.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case notificationinteraction.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case notificationinteraction.FieldNotificationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_type", values[i])
			} else if value.Valid {
				_m.NotificationType = value.String
			}
		case notificationinteraction.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case notificationinteraction.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = value.Time
			}
		case notificationinteraction.FieldDeliveredVia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_via", values[i])
			} else if value.Valid {
				_m.DeliveredVia = value.String
			}
		case notificationinteraction.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case notificationinteraction.FieldClickedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field clicked_at", values[i])
			} else if value.Valid {
				_m.ClickedAt = new(time.Time)
				*_m.ClickedAt = value.Time
			}
		case notificationinteraction.FieldDismissedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dismissed_at", values[i])
			} else if value.Valid {
				_m.DismissedAt = new(time.Time)
				*_m.DismissedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationInteraction.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationInteraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationInteraction.
// Note that you need to call NotificationInteraction.Unwrap() before calling this method if this NotificationInteraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationInteraction) Update() *NotificationInteractionUpdateOne {
	return NewNotificationInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationInteraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationInteraction) Unwrap() *NotificationInteraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationInteraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationInteraction) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationInteraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("notification_type=")
	builder.WriteString(_m.NotificationType)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("delivered_at=")
	builder.WriteString(_m.DeliveredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("delivered_via=")
	builder.WriteString(_m.DeliveredVia)
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClickedAt; v != nil {
		builder.WriteString("clicked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DismissedAt; v != nil {
		builder.WriteString("dismissed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NotificationInteractions is a parsable slice of NotificationInteraction.
type NotificationInteractions []*NotificationInteraction
