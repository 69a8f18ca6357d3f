// Code generated by ent, DO NOT EDIT.

package recordingrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recordingrule type in the database.
	Label = "recording_rule"
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
	// FieldTitleExcludeKeywords holds the string denoting the title_exclude_keywords field in the database.
	FieldTitleExcludeKeywords = "title_exclude_keywords"
	// FieldTitleIncludeKeywords holds the string denoting the title_include_keywords field in the database.
	FieldTitleIncludeKeywords = "title_include_keywords"
	// FieldMinAttendees holds the string denoting the min_attendees field in the database.
	FieldMinAttendees = "min_attendees"
	// FieldMaxAttendees holds the string denoting the max_attendees field in the database.
	FieldMaxAttendees = "max_attendees"
	// FieldDomainMode holds the string denoting the domain_mode field in the database.
	FieldDomainMode = "domain_mode"
	// FieldSpecificDomains holds the string denoting the specific_domains field in the database.
	FieldSpecificDomains = "specific_domains"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the recordingrule in the database.
	Table = "recording_rules"
)

// Columns holds all SQL columns for recordingrule fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldName,
	FieldPriority,
	FieldEnabled,
	FieldTestMode,
	FieldTitleExcludeKeywords,
	FieldTitleIncludeKeywords,
	FieldMinAttendees,
	FieldMaxAttendees,
	FieldDomainMode,
	FieldSpecificDomains,
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

// DomainMode defines the type for the "domain_mode" enum field.
type DomainMode string

// DomainModeAll is the default value of the DomainMode enum.
const DefaultDomainMode = DomainModeAll

// DomainMode values.
const (
	DomainModeExternalOnly    DomainMode = "external_only"
	DomainModeInternalOnly    DomainMode = "internal_only"
	DomainModeSpecificDomains DomainMode = "specific_domains"
	DomainModeAll             DomainMode = "all"
)

func (dm DomainMode) String() string {
	return string(dm)
}

// DomainModeValidator is a validator for the "domain_mode" field enum values. It is called by the builders before save.
func DomainModeValidator(dm DomainMode) error {
	switch dm {
	case DomainModeExternalOnly, DomainModeInternalOnly, DomainModeSpecificDomains, DomainModeAll:
		return nil
	default:
		return fmt.Errorf("recordingrule: invalid enum value for domain_mode field: %q", dm)
	}
}

// OrderOption defines the ordering options for the RecordingRule queries.
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

// ByMinAttendees orders the results by the min_attendees field.
func ByMinAttendees(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAttendees, opts...).ToFunc()
}

// ByMaxAttendees orders the results by the max_attendees field.
func ByMaxAttendees(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttendees, opts...).ToFunc()
}

// ByDomainMode orders the results by the domain_mode field.
func ByDomainMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
