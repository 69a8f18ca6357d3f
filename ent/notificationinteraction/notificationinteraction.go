// Code generated by ent, DO NOT EDIT.

package notificationinteraction

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notificationinteraction type in the database.
	Label = "notification_interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "interaction_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldNotificationType holds the string denoting the notification_type field in the database.
	FieldNotificationType = "notification_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldDeliveredVia holds the string denoting the delivered_via field in the database.
	FieldDeliveredVia = "delivered_via"
	// FieldOpenedAt holds the string denoting the opened_at field in the database.
	FieldOpenedAt = "opened_at"
	// FieldClickedAt holds the string denoting the clicked_at field in the database.
	FieldClickedAt = "clicked_at"
	// FieldDismissedAt holds the string denoting the dismissed_at field in the database.
	FieldDismissedAt = "dismissed_at"
	// Table holds the table name of the notificationinteraction in the database.
	Table = "notification_interactions"
)

// Columns holds all SQL columns for notificationinteraction fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldOrgID,
	FieldNotificationType,
	FieldPriority,
	FieldDeliveredAt,
	FieldDeliveredVia,
	FieldOpenedAt,
	FieldClickedAt,
	FieldDismissedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
)

// OrderOption defines the ordering options for the NotificationInteraction queries.
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

// ByNotificationType orders the results by the notification_type field.
func ByNotificationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByDeliveredVia orders the results by the delivered_via field.
func ByDeliveredVia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredVia, opts...).ToFunc()
}

// ByOpenedAt orders the results by the opened_at field.
func ByOpenedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenedAt, opts...).ToFunc()
}

// ByClickedAt orders the results by the clicked_at field.
func ByClickedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickedAt, opts...).ToFunc()
}

// ByDismissedAt orders the results by the dismissed_at field.
func ByDismissedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDismissedAt, opts...).ToFunc()
}
