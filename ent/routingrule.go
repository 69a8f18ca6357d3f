// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/routingrule"
)

// RoutingRule is the model entity for the RoutingRule schema.
type RoutingRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// TestMode holds the value of the "test_mode" field.
	TestMode bool `json:"test_mode,omitempty"`
	// e.g., 'error', 'fatal'
	MatchLevel *string `json:"match_level,omitempty"`
	// MatchEnvironment holds the value of the "match_environment" field.
	MatchEnvironment *string `json:"match_environment,omitempty"`
	// MatchReleasePattern holds the value of the "match_release_pattern" field.
	MatchReleasePattern *string `json:"match_release_pattern,omitempty"`
	// MatchTitlePattern holds the value of the "match_title_pattern" field.
	MatchTitlePattern *string `json:"match_title_pattern,omitempty"`
	// Target holds the value of the "target" field.
	Target map[string]interface{} `json:"target,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutingRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routingrule.FieldTarget:
			values[i] = new([]byte)
		case routingrule.FieldEnabled, routingrule.FieldTestMode:
			values[i] = new(sql.NullBool)
		case routingrule.FieldPriority:
			values[i] = new(sql.NullInt64)
		case routingrule.FieldID, routingrule.FieldOrgID, routingrule.FieldName, routingrule.FieldMatchLevel, routingrule.FieldMatchEnvironment, routingrule.FieldMatchReleasePattern, routingrule.FieldMatchTitlePattern:
			values[i] = new(sql.NullString)
		case routingrule.FieldCreatedAt, routingrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutingRule fields.
func (_m *RoutingRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routingrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case routingrule.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case routingrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case routingrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case routingrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case routingrule.FieldTestMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field test_mode", values[i])
			} else if value.Valid {
				_m.TestMode = value.Bool
			}
		case routingrule.FieldMatchLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_level", values[i])
			} else if value.Valid {
				_m.MatchLevel = new(string)
				*_m.MatchLevel = value.String
			}
		case routingrule.FieldMatchEnvironment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_environment", values[i])
			} else if value.Valid {
				_m.MatchEnvironment = new(string)
				*_m.MatchEnvironment = value.String
			}
		case routingrule.FieldMatchReleasePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_release_pattern", values[i])
			} else if value.Valid {
				_m.MatchReleasePattern = new(string)
				*_m.MatchReleasePattern = value.String
			}
		case routingrule.FieldMatchTitlePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_title_pattern", values[i])
			} else if value.Valid {
				_m.MatchTitlePattern = new(string)
				*_m.MatchTitlePattern = value.String
			}
		case routingrule.FieldTarget:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Target); err != nil {
					return fmt.Errorf("unmarshal field target: %w", err)
				}
			}
		case routingrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case routingrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RoutingRule.
// This includes values selected through modifiers, order, etc.
func (_m *RoutingRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoutingRule.
// Note that you need to call RoutingRule.Unwrap() before calling this method if this RoutingRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutingRule) Update() *RoutingRuleUpdateOne {
	return NewRoutingRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutingRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutingRule) Unwrap() *RoutingRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutingRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutingRule) String() string {
	var builder strings.Builder
	builder.WriteString("RoutingRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("test_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestMode))
	builder.WriteString(", ")
	if v := _m.MatchLevel; v != nil {
		builder.WriteString("match_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MatchEnvironment; v != nil {
		builder.WriteString("match_environment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MatchReleasePattern; v != nil {
		builder.WriteString("match_release_pattern=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MatchTitlePattern; v != nil {
		builder.WriteString("match_title_pattern=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(fmt.Sprintf("%v", _m.Target))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutingRules is a parsable slice of RoutingRule.
type RoutingRules []*RoutingRule
