// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/recordingrule"
)

// RecordingRule is the model entity for the RecordingRule schema.
type RecordingRule struct {
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
	// Matches are logged but produce no side effect
	TestMode bool `json:"test_mode,omitempty"`
	// TitleExcludeKeywords holds the value of the "title_exclude_keywords" field.
	TitleExcludeKeywords []string `json:"title_exclude_keywords,omitempty"`
	// TitleIncludeKeywords holds the value of the "title_include_keywords" field.
	TitleIncludeKeywords []string `json:"title_include_keywords,omitempty"`
	// MinAttendees holds the value of the "min_attendees" field.
	MinAttendees *int `json:"min_attendees,omitempty"`
	// MaxAttendees holds the value of the "max_attendees" field.
	MaxAttendees *int `json:"max_attendees,omitempty"`
	// DomainMode holds the value of the "domain_mode" field.
	DomainMode recordingrule.DomainMode `json:"domain_mode,omitempty"`
	// SpecificDomains holds the value of the "specific_domains" field.
	SpecificDomains []string `json:"specific_domains,omitempty"`
	// Target holds the value of the "target" field.
	Target map[string]interface{} `json:"target,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecordingRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recordingrule.FieldTitleExcludeKeywords, recordingrule.FieldTitleIncludeKeywords, recordingrule.FieldSpecificDomains, recordingrule.FieldTarget:
			values[i] = new([]byte)
		case recordingrule.FieldEnabled, recordingrule.FieldTestMode:
			values[i] = new(sql.NullBool)
		case recordingrule.FieldPriority, recordingrule.FieldMinAttendees, recordingrule.FieldMaxAttendees:
			values[i] = new(sql.NullInt64)
		case recordingrule.FieldID, recordingrule.FieldOrgID, recordingrule.FieldName, recordingrule.FieldDomainMode:
			values[i] = new(sql.NullString)
		case recordingrule.FieldCreatedAt, recordingrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecordingRule fields.
func (_m *RecordingRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recordingrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recordingrule.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case recordingrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recordingrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case recordingrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case recordingrule.FieldTestMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field test_mode", values[i])
			} else if value.Valid {
				_m.TestMode = value.Bool
			}
		case recordingrule.FieldTitleExcludeKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field title_exclude_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TitleExcludeKeywords); err != nil {
					return fmt.Errorf("unmarshal field title_exclude_keywords: %w", err)
				}
			}
		case recordingrule.FieldTitleIncludeKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field title_include_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TitleIncludeKeywords); err != nil {
					return fmt.Errorf("unmarshal field title_include_keywords: %w", err)
				}
			}
		case recordingrule.FieldMinAttendees:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_attendees", values[i])
			} else if value.Valid {
				_m.MinAttendees = new(int)
				*_m.MinAttendees = int(value.Int64)
			}
		case recordingrule.FieldMaxAttendees:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attendees", values[i])
			} else if value.Valid {
				_m.MaxAttendees = new(int)
				*_m.MaxAttendees = int(value.Int64)
			}
		case recordingrule.FieldDomainMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_mode", values[i])
			} else if value.Valid {
				_m.DomainMode = recordingrule.DomainMode(value.String)
			}
		case recordingrule.FieldSpecificDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specific_domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecificDomains); err != nil {
					return fmt.Errorf("unmarshal field specific_domains: %w", err)
				}
			}
		case recordingrule.FieldTarget:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Target); err != nil {
					return fmt.Errorf("unmarshal field target: %w", err)
				}
			}
		case recordingrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recordingrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RecordingRule.
// This includes values selected through modifiers, order, etc.
func (_m *RecordingRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecordingRule.
// Note that you need to call RecordingRule.Unwrap() before calling this method if this RecordingRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecordingRule) Update() *RecordingRuleUpdateOne {
	return NewRecordingRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecordingRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecordingRule) Unwrap() *RecordingRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecordingRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecordingRule) String() string {
	var builder strings.Builder
	builder.WriteString("RecordingRule(")
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
	builder.WriteString("title_exclude_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitleExcludeKeywords))
	builder.WriteString(", ")
	builder.WriteString("title_include_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitleIncludeKeywords))
	builder.WriteString(", ")
	if v := _m.MinAttendees; v != nil {
		builder.WriteString("min_attendees=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxAttendees; v != nil {
		builder.WriteString("max_attendees=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("domain_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainMode))
	builder.WriteString(", ")
	builder.WriteString("specific_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecificDomains))
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

// RecordingRules is a parsable slice of RecordingRule.
type RecordingRules []*RecordingRule
