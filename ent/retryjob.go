// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/retryjob"
)

// RetryJob is the model entity for the RetryJob schema.
type RetryJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// e.g., 'transcript_fetch'
	JobType string `json:"job_type,omitempty"`
	// Id of the row this job retries, e.g. a recording id
	TargetEntityRef string `json:"target_entity_ref,omitempty"`
	// NextAttemptAt holds the value of the "next_attempt_at" field.
	NextAttemptAt time.Time `json:"next_attempt_at,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// BackoffBaseSeconds holds the value of the "backoff_base_seconds" field.
	BackoffBaseSeconds int `json:"backoff_base_seconds,omitempty"`
	// BackoffCapSeconds holds the value of the "backoff_cap_seconds" field.
	BackoffCapSeconds int `json:"backoff_cap_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RetryJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case retryjob.FieldAttempts, retryjob.FieldMaxAttempts, retryjob.FieldBackoffBaseSeconds, retryjob.FieldBackoffCapSeconds:
			values[i] = new(sql.NullInt64)
		case retryjob.FieldID, retryjob.FieldJobType, retryjob.FieldTargetEntityRef:
			values[i] = new(sql.NullString)
		case retryjob.FieldNextAttemptAt, retryjob.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RetryJob fields.
func (_m *RetryJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case retryjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case retryjob.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case retryjob.FieldTargetEntityRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_entity_ref", values[i])
			} else if value.Valid {
				_m.TargetEntityRef = value.String
			}
		case retryjob.FieldNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_attempt_at", values[i])
			} else if value.Valid {
				_m.NextAttemptAt = value.Time
			}
		case retryjob.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case retryjob.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case retryjob.FieldBackoffBaseSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backoff_base_seconds", values[i])
			} else if value.Valid {
				_m.BackoffBaseSeconds = int(value.Int64)
			}
		case retryjob.FieldBackoffCapSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backoff_cap_seconds", values[i])
			} else if value.Valid {
				_m.BackoffCapSeconds = int(value.Int64)
			}
		case retryjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RetryJob.
// This includes values selected through modifiers, order, etc.
func (_m *RetryJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RetryJob.
// Note that you need to call RetryJob.Unwrap() before calling this method if this RetryJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RetryJob) Update() *RetryJobUpdateOne {
	return NewRetryJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RetryJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RetryJob) Unwrap() *RetryJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RetryJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RetryJob) String() string {
	var builder strings.Builder
	builder.WriteString("RetryJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("target_entity_ref=")
	builder.WriteString(_m.TargetEntityRef)
	builder.WriteString(", ")
	builder.WriteString("next_attempt_at=")
	builder.WriteString(_m.NextAttemptAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("backoff_base_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackoffBaseSeconds))
	builder.WriteString(", ")
	builder.WriteString("backoff_cap_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackoffCapSeconds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RetryJobs is a parsable slice of RetryJob.
type RetryJobs []*RetryJob
