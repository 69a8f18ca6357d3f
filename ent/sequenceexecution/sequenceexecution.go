// Code generated by ent, DO NOT EDIT.

package sequenceexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sequenceexecution type in the database.
	Label = "sequence_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSequenceKey holds the string denoting the sequence_key field in the database.
	FieldSequenceKey = "sequence_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputTrigger holds the string denoting the input_trigger field in the database.
	FieldInputTrigger = "input_trigger"
	// FieldInputContext holds the string denoting the input_context field in the database.
	FieldInputContext = "input_context"
	// FieldStepResults holds the string denoting the step_results field in the database.
	FieldStepResults = "step_results"
	// FieldFailedStepIndex holds the string denoting the failed_step_index field in the database.
	FieldFailedStepIndex = "failed_step_index"
	// FieldIsSimulation holds the string denoting the is_simulation field in the database.
	FieldIsSimulation = "is_simulation"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the sequenceexecution in the database.
	Table = "sequence_executions"
)

// Columns holds all SQL columns for sequenceexecution fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldUserID,
	FieldSequenceKey,
	FieldStatus,
	FieldInputTrigger,
	FieldInputContext,
	FieldStepResults,
	FieldFailedStepIndex,
	FieldIsSimulation,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultIsSimulation holds the default value on creation for the "is_simulation" field.
	DefaultIsSimulation bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("sequenceexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SequenceExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySequenceKey orders the results by the sequence_key field.
func BySequenceKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailedStepIndex orders the results by the failed_step_index field.
func ByFailedStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedStepIndex, opts...).ToFunc()
}

// ByIsSimulation orders the results by the is_simulation field.
func ByIsSimulation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSimulation, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
