// Code generated by ent, DO NOT EDIT.

package botdeployment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the botdeployment type in the database.
	Label = "bot_deployment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "deployment_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldRecordingID holds the string denoting the recording_id field in the database.
	FieldRecordingID = "recording_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusHistory holds the string denoting the status_history field in the database.
	FieldStatusHistory = "status_history"
	// FieldScheduledJoinTime holds the string denoting the scheduled_join_time field in the database.
	FieldScheduledJoinTime = "scheduled_join_time"
	// FieldActualJoinTime holds the string denoting the actual_join_time field in the database.
	FieldActualJoinTime = "actual_join_time"
	// FieldLeaveTime holds the string denoting the leave_time field in the database.
	FieldLeaveTime = "leave_time"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRecording holds the string denoting the recording edge name in mutations.
	EdgeRecording = "recording"
	// RecordingFieldID holds the string denoting the ID field of the Recording.
	RecordingFieldID = "recording_id"
	// Table holds the table name of the botdeployment in the database.
	Table = "bot_deployments"
	// RecordingTable is the table that holds the recording relation/edge.
	RecordingTable = "bot_deployments"
	// RecordingInverseTable is the table name for the Recording entity.
	// It exists in this package in order to avoid circular dependency with the "recording" package.
	RecordingInverseTable = "recordings"
	// RecordingColumn is the table column denoting the recording relation/edge.
	RecordingColumn = "recording_id"
)

// Columns holds all SQL columns for botdeployment fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldRecordingID,
	FieldBotID,
	FieldStatus,
	FieldStatusHistory,
	FieldScheduledJoinTime,
	FieldActualJoinTime,
	FieldLeaveTime,
	FieldErrorCode,
	FieldErrorMessage,
	FieldVersion,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled Status = "scheduled"
	StatusJoining   Status = "joining"
	StatusInMeeting Status = "in_meeting"
	StatusLeaving   Status = "leaving"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusJoining, StatusInMeeting, StatusLeaving, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("botdeployment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BotDeployment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByRecordingID orders the results by the recording_id field.
func ByRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScheduledJoinTime orders the results by the scheduled_join_time field.
func ByScheduledJoinTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledJoinTime, opts...).ToFunc()
}

// ByActualJoinTime orders the results by the actual_join_time field.
func ByActualJoinTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualJoinTime, opts...).ToFunc()
}

// ByLeaveTime orders the results by the leave_time field.
func ByLeaveTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaveTime, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRecordingField orders the results by recording field.
func ByRecordingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordingStep(), sql.OrderByField(field, opts...))
	}
}
func newRecordingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordingInverseTable, RecordingFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RecordingTable, RecordingColumn),
	)
}
