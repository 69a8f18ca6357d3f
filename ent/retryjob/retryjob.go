// Code generated by ent, DO NOT EDIT.

package retryjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the retryjob type in the database.
	Label = "retry_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldTargetEntityRef holds the string denoting the target_entity_ref field in the database.
	FieldTargetEntityRef = "target_entity_ref"
	// FieldNextAttemptAt holds the string denoting the next_attempt_at field in the database.
	FieldNextAttemptAt = "next_attempt_at"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldBackoffBaseSeconds holds the string denoting the backoff_base_seconds field in the database.
	FieldBackoffBaseSeconds = "backoff_base_seconds"
	// FieldBackoffCapSeconds holds the string denoting the backoff_cap_seconds field in the database.
	FieldBackoffCapSeconds = "backoff_cap_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the retryjob in the database.
	Table = "retry_jobs"
)

// Columns holds all SQL columns for retryjob fields.
var Columns = []string{
	FieldID,
	FieldJobType,
	FieldTargetEntityRef,
	FieldNextAttemptAt,
	FieldAttempts,
	FieldMaxAttempts,
	FieldBackoffBaseSeconds,
	FieldBackoffCapSeconds,
	FieldCreatedAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultBackoffBaseSeconds holds the default value on creation for the "backoff_base_seconds" field.
	DefaultBackoffBaseSeconds int
	// DefaultBackoffCapSeconds holds the default value on creation for the "backoff_cap_seconds" field.
	DefaultBackoffCapSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RetryJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByTargetEntityRef orders the results by the target_entity_ref field.
func ByTargetEntityRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetEntityRef, opts...).ToFunc()
}

// ByNextAttemptAt orders the results by the next_attempt_at field.
func ByNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAttemptAt, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByBackoffBaseSeconds orders the results by the backoff_base_seconds field.
func ByBackoffBaseSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackoffBaseSeconds, opts...).ToFunc()
}

// ByBackoffCapSeconds orders the results by the backoff_cap_seconds field.
func ByBackoffCapSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackoffCapSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
