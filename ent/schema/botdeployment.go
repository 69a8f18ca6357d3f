package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BotDeployment holds the schema definition for the BotDeployment entity.
// One recorder bot joining one meeting. Status transitions are driven only
// by provider webhooks; status_history is append-only and terminal states
// (completed, failed, cancelled) have no outgoing transitions.
type BotDeployment struct {
	ent.Schema
}

// Fields of the BotDeployment.
func (BotDeployment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deployment_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("recording_id").
			Immutable(),
		field.String("bot_id").
			Unique().
			Comment("Provider-assigned bot id; reverse-lookup key for tenant resolution"),

		field.Enum("status").
			Values("scheduled", "joining", "in_meeting", "leaving", "completed", "failed", "cancelled").
			Default("scheduled"),
		field.JSON("status_history", []map[string]interface{}{}).
			Optional().
			Comment("Ordered {status, timestamp, detail?} entries; append-only"),

		field.Time("scheduled_join_time"),
		field.Time("actual_join_time").
			Optional().
			Nillable(),
		field.Time("leave_time").
			Optional().
			Nillable(),

		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		// Optimistic concurrency for read-then-append history writes
		field.Int("version").
			Default(1),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BotDeployment.
func (BotDeployment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("bot_deployment").
			Field("recording_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BotDeployment.
func (BotDeployment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("org_id", "created_at"),
	}
}
