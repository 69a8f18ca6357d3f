package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserMetrics holds the schema definition for the UserMetrics entity.
// Per-user engagement and notification-fatigue state, one row per
// (user, org).
type UserMetrics struct {
	ent.Schema
}

// Fields of the UserMetrics.
func (UserMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("metrics_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("org_id").
			Immutable(),

		field.Time("last_app_active_at").
			Optional().
			Nillable(),
		field.Time("last_slack_active_at").
			Optional().
			Nillable(),

		field.Enum("preferred_notification_frequency").
			Values("low", "moderate", "high").
			Default("moderate"),
		field.Int("notification_fatigue_level").
			Default(0).
			Comment("0-100; raised by negative feedback, lowers send rate"),
		field.Int("overall_engagement_score").
			Default(50).
			Comment("0-100"),

		field.Int("notifications_since_last_feedback").
			Default(0),
		field.Time("last_feedback_requested_at").
			Optional().
			Nillable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserMetrics.
func (UserMetrics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "org_id").
			Unique(),
	}
}

// Annotations of the UserMetrics.
func (UserMetrics) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_metrics"},
	}
}
