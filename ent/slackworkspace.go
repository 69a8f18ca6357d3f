// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/slackworkspace"
)

// SlackWorkspace is the model entity for the SlackWorkspace schema.
type SlackWorkspace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// Slack workspace (team) id
	TeamID string `json:"team_id,omitempty"`
	// BotToken holds the value of the "bot_token" field.
	BotToken string `json:"-"`
	// DefaultChannelID holds the value of the "default_channel_id" field.
	DefaultChannelID *string `json:"default_channel_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlackWorkspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slackworkspace.FieldID, slackworkspace.FieldOrgID, slackworkspace.FieldTeamID, slackworkspace.FieldBotToken, slackworkspace.FieldDefaultChannelID:
			values[i] = new(sql.NullString)
		case slackworkspace.FieldCreatedAt, slackworkspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlackWorkspace fields.
func (_m *SlackWorkspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slackworkspace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case slackworkspace.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case slackworkspace.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case slackworkspace.FieldBotToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_token", values[i])
			} else if value.Valid {
				_m.BotToken = value.String
			}
		case slackworkspace.FieldDefaultChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_channel_id", values[i])
			} else if value.Valid {
				_m.DefaultChannelID = new(string)
				*_m.DefaultChannelID = value.String
			}
		case slackworkspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slackworkspace.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SlackWorkspace.
// This includes values selected through modifiers, order, etc.
func (_m *SlackWorkspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SlackWorkspace.
// Note that you need to call SlackWorkspace.Unwrap() before calling this method if this SlackWorkspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SlackWorkspace) Update() *SlackWorkspaceUpdateOne {
	return NewSlackWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SlackWorkspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SlackWorkspace) Unwrap() *SlackWorkspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SlackWorkspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SlackWorkspace) String() string {
	var builder strings.Builder
	builder.WriteString("SlackWorkspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("bot_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.DefaultChannelID; v != nil {
		builder.WriteString("default_channel_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SlackWorkspaces is a parsable slice of SlackWorkspace.
type SlackWorkspaces []*SlackWorkspace
