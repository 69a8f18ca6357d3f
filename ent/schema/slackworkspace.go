package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlackWorkspace holds the schema definition for the SlackWorkspace entity.
// Per-tenant Slack installation; bot tokens live here, not in config.
type SlackWorkspace struct {
	ent.Schema
}

// Fields of the SlackWorkspace.
func (SlackWorkspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workspace_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Unique().
			Immutable(),
		field.String("team_id").
			Comment("Slack workspace (team) id"),

		field.String("bot_token").
			Sensitive(),
		field.String("default_channel_id").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SlackWorkspace.
func (SlackWorkspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
