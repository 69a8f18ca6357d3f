// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
)

// SequenceExecution is the model entity for the SequenceExecution schema.
type SequenceExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Key into the sequence registry (YAML-defined)
	SequenceKey string `json:"sequence_key,omitempty"`
	// Status holds the value of the "status" field.
	Status sequenceexecution.Status `json:"status,omitempty"`
	// Event payload that started the run (e.g. recording facts)
	InputTrigger map[string]interface{} `json:"input_trigger,omitempty"`
	// Caller-supplied parameters
	InputContext map[string]interface{} `json:"input_context,omitempty"`
	// StepResults holds the value of the "step_results" field.
	StepResults []map[string]interface{} `json:"step_results,omitempty"`
	// FailedStepIndex holds the value of the "failed_step_index" field.
	FailedStepIndex *int `json:"failed_step_index,omitempty"`
	// IsSimulation holds the value of the "is_simulation" field.
	IsSimulation bool `json:"is_simulation,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SequenceExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sequenceexecution.FieldInputTrigger, sequenceexecution.FieldInputContext, sequenceexecution.FieldStepResults:
			values[i] = new([]byte)
		case sequenceexecution.FieldIsSimulation:
			values[i] = new(sql.NullBool)
		case sequenceexecution.FieldFailedStepIndex:
			values[i] = new(sql.NullInt64)
		case sequenceexecution.FieldID, sequenceexecution.FieldOrgID, sequenceexecution.FieldUserID, sequenceexecution.FieldSequenceKey, sequenceexecution.FieldStatus:
			values[i] = new(sql.NullString)
		case sequenceexecution.FieldStartedAt, sequenceexecution.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SequenceExecution fields.
func (_m *SequenceExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sequenceexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sequenceexecution.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case sequenceexecution.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sequenceexecution.FieldSequenceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_key", values[i])
			} else if value.Valid {
				_m.SequenceKey = value.String
			}
		case sequenceexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sequenceexecution.Status(value.String)
			}
		case sequenceexecution.FieldInputTrigger:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_trigger", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputTrigger); err != nil {
					return fmt.Errorf("unmarshal field input_trigger: %w", err)
				}
			}
		case sequenceexecution.FieldInputContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputContext); err != nil {
					return fmt.Errorf("unmarshal field input_context: %w", err)
				}
			}
		case sequenceexecution.FieldStepResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepResults); err != nil {
					return fmt.Errorf("unmarshal field step_results: %w", err)
				}
			}
		case sequenceexecution.FieldFailedStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_step_index", values[i])
			} else if value.Valid {
				_m.FailedStepIndex = new(int)
				*_m.FailedStepIndex = int(value.Int64)
			}
		case sequenceexecution.FieldIsSimulation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_simulation", values[i])
			} else if value.Valid {
				_m.IsSimulation = value.Bool
			}
		case sequenceexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case sequenceexecution.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SequenceExecution.
// This includes values selected through modifiers, order, etc.
func (_m *SequenceExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SequenceExecution.
// Note that you need to call SequenceExecution.Unwrap() before calling this method if this SequenceExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SequenceExecution) Update() *SequenceExecutionUpdateOne {
	return NewSequenceExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SequenceExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SequenceExecution) Unwrap() *SequenceExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SequenceExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SequenceExecution) String() string {
	var builder strings.Builder
	builder.WriteString("SequenceExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("sequence_key=")
	builder.WriteString(_m.SequenceKey)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input_trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTrigger))
	builder.WriteString(", ")
	builder.WriteString("input_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputContext))
	builder.WriteString(", ")
	builder.WriteString("step_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepResults))
	builder.WriteString(", ")
	if v := _m.FailedStepIndex; v != nil {
		builder.WriteString("failed_step_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_simulation=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSimulation))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SequenceExecutions is a parsable slice of SequenceExecution.
type SequenceExecutions []*SequenceExecution
