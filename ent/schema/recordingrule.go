package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecordingRule holds the schema definition for the RecordingRule entity.
// Declarative "should this meeting be recorded?" predicate. Rules in the
// same org are evaluated priority-descending; first match wins.
type RecordingRule struct {
	ent.Schema
}

// Fields of the RecordingRule.
func (RecordingRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("name"),

		field.Int("priority").
			Default(0),
		field.Bool("enabled").
			Default(true),
		field.Bool("test_mode").
			Default(false).
			Comment("Matches are logged but produce no side effect"),

		// Predicates; empty/zero values mean "not constrained"
		field.JSON("title_exclude_keywords", []string{}).
			Optional(),
		field.JSON("title_include_keywords", []string{}).
			Optional(),
		field.Int("min_attendees").
			Optional().
			Nillable(),
		field.Int("max_attendees").
			Optional().
			Nillable(),
		field.Enum("domain_mode").
			Values("external_only", "internal_only", "specific_domains", "all").
			Default("all"),
		field.JSON("specific_domains", []string{}).
			Optional(),

		// Applied when the rule matches: project id, priority, owner
		field.JSON("target", map[string]interface{}{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RecordingRule.
func (RecordingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "enabled", "priority"),
	}
}
