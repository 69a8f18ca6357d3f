package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutingRule holds the schema definition for the RoutingRule entity.
// Routes inbound error events (Sentry bridge) to a ticket project. Rules
// are evaluated priority-ascending; first match wins.
type RoutingRule struct {
	ent.Schema
}

// Fields of the RoutingRule.
func (RoutingRule) Fields() []ent.Field {
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
			Default(false),

		// Predicates; regex patterns are compiled once per rule load
		field.String("match_level").
			Optional().
			Nillable().
			Comment("e.g., 'error', 'fatal'"),
		field.String("match_environment").
			Optional().
			Nillable(),
		field.String("match_release_pattern").
			Optional().
			Nillable(),
		field.String("match_title_pattern").
			Optional().
			Nillable(),

		// Applied when the rule matches: project_id, ticket_priority, assignee
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

// Indexes of the RoutingRule.
func (RoutingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "enabled", "priority"),
	}
}
