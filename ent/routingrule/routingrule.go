// Code generated by ent, DO NOT EDIT.

package routingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the routingrule type in the database.
	Label = "routing_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldTestMode holds the string denoting the test_mode field in the database.
	FieldTestMode = "test_mode"
	// FieldMatchLevel holds the string denoting the match_level field in the database.
	FieldMatchLevel = "match_level"
	// FieldMatchEnvironment holds the string denoting the match_environment field in the database.
	FieldMatchEnvironment = "match_environment"
	// FieldMatchReleasePattern holds the string denoting the match_release_pattern field in the database.
	FieldMatchReleasePattern = "match_release_pattern"
	// FieldMatchTitlePattern holds the string denoting the match_title_pattern field in the database.
	FieldMatchTitlePattern = "match_title_pattern"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the routingrule in the database.
	Table = "routing_rules"
)

// Columns holds all SQL columns for routingrule fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldName,
	FieldPriority,
	FieldEnabled,
	FieldTestMode,
	FieldMatchLevel,
	FieldMatchEnvironment,
	FieldMatchReleasePattern,
	FieldMatchTitlePattern,
	FieldTarget,
	FieldCreatedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultTestMode holds the default value on creation for the "test_mode" field.
	DefaultTestMode bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the RoutingRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByTestMode orders the results by the test_mode field.
func ByTestMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestMode, opts...).ToFunc()
}

// ByMatchLevel orders the results by the match_level field.
func ByMatchLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchLevel, opts...).ToFunc()
}

// ByMatchEnvironment orders the results by the match_environment field.
func ByMatchEnvironment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchEnvironment, opts...).ToFunc()
}

// ByMatchReleasePattern orders the results by the match_release_pattern field.
func ByMatchReleasePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchReleasePattern, opts...).ToFunc()
}

// ByMatchTitlePattern orders the results by the match_title_pattern field.
func ByMatchTitlePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchTitlePattern, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
