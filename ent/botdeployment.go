// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/recording"
)

// BotDeployment is the model entity for the BotDeployment schema.
type BotDeployment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// RecordingID holds the value of the "recording_id" field.
	RecordingID string `json:"recording_id,omitempty"`
	// Provider-assigned bot id; reverse-lookup key for tenant resolution
	BotID string `json:"bot_id,omitempty"`
	// Status holds the value of the "status" field.
	Status botdeployment.Status `json:"status,omitempty"`
	// Ordered {status, timestamp, detail?} entries; append-only
	StatusHistory []map[string]interface{} `json:"status_history,omitempty"`
	// ScheduledJoinTime holds the value of the "scheduled_join_time" field.
	ScheduledJoinTime time.Time `json:"scheduled_join_time,omitempty"`
	// ActualJoinTime holds the value of the "actual_join_time" field.
	ActualJoinTime *time.Time `json:"actual_join_time,omitempty"`
	// LeaveTime holds the value of the "leave_time" field.
	LeaveTime *time.Time `json:"leave_time,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotDeploymentQuery when eager-loading is set.
	Edges        BotDeploymentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotDeploymentEdges holds the relations/edges for other nodes in the graph.
type BotDeploymentEdges struct {
	// Recording holds the value of the recording edge.
	Recording *Recording `json:"recording,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordingOrErr returns the Recording value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BotDeploymentEdges) RecordingOrErr() (*Recording, error) {
	if e.Recording != nil {
		return e.Recording, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recording.Label}
	}
	return nil, &NotLoadedError{edge: "recording"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BotDeployment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case botdeployment.FieldStatusHistory:
			values[i] = new([]byte)
		case botdeployment.FieldVersion:
			values[i] = new(sql.NullInt64)
		case botdeployment.FieldID, botdeployment.FieldOrgID, botdeployment.FieldRecordingID, botdeployment.FieldBotID, botdeployment.FieldStatus, botdeployment.FieldErrorCode, botdeployment.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case botdeployment.FieldScheduledJoinTime, botdeployment.FieldActualJoinTime, botdeployment.FieldLeaveTime, botdeployment.FieldCreatedAt, botdeployment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BotDeployment fields.
func (_m *BotDeployment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case botdeployment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case botdeployment.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case botdeployment.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = value.String
			}
		case botdeployment.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = value.String
			}
		case botdeployment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = botdeployment.Status(value.String)
			}
		case botdeployment.FieldStatusHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusHistory); err != nil {
					return fmt.Errorf("unmarshal field status_history: %w", err)
				}
			}
		case botdeployment.FieldScheduledJoinTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_join_time", values[i])
			} else if value.Valid {
				_m.ScheduledJoinTime = value.Time
			}
		case botdeployment.FieldActualJoinTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field actual_join_time", values[i])
			} else if value.Valid {
				_m.ActualJoinTime = new(time.Time)
				*_m.ActualJoinTime = value.Time
			}
		case botdeployment.FieldLeaveTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field leave_time", values[i])
			} else if value.Valid {
				_m.LeaveTime = new(time.Time)
				*_m.LeaveTime = value.Time
			}
		case botdeployment.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case botdeployment.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case botdeployment.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case botdeployment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case botdeployment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BotDeployment.
// This includes values selected through modifiers, order, etc.
func (_m *BotDeployment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecording queries the "recording" edge of the BotDeployment entity.
func (_m *BotDeployment) QueryRecording() *RecordingQuery {
	return NewBotDeploymentClient(_m.config).QueryRecording(_m)
}

// Update returns a builder for updating this BotDeployment.
// Note that you need to call BotDeployment.Unwrap() before calling this method if this BotDeployment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BotDeployment) Update() *BotDeploymentUpdateOne {
	return NewBotDeploymentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BotDeployment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BotDeployment) Unwrap() *BotDeployment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BotDeployment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BotDeployment) String() string {
	var builder strings.Builder
	builder.WriteString("BotDeployment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("recording_id=")
	builder.WriteString(_m.RecordingID)
	builder.WriteString(", ")
	builder.WriteString("bot_id=")
	builder.WriteString(_m.BotID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusHistory))
	builder.WriteString(", ")
	builder.WriteString("scheduled_join_time=")
	builder.WriteString(_m.ScheduledJoinTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ActualJoinTime; v != nil {
		builder.WriteString("actual_join_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LeaveTime; v != nil {
		builder.WriteString("leave_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BotDeployments is a parsable slice of BotDeployment.
type BotDeployments []*BotDeployment
