package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationInteraction holds the schema definition for the
// NotificationInteraction entity. One row per delivered notification;
// open/click/dismiss timestamps feed engagement scoring and fatigue.
type NotificationInteraction struct {
	ent.Schema
}

// Fields of the NotificationInteraction.
func (NotificationInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("notification_type").
			Immutable(),
		field.String("priority").
			Default("normal").
			Immutable().
			Comment("Priority the send went out at (after any downgrade); frequency caps count per bucket"),

		field.Time("delivered_at").
			Immutable(),
		field.String("delivered_via").
			Immutable().
			Comment("Channel that performed the delivery"),

		field.Time("opened_at").
			Optional().
			Nillable(),
		field.Time("clicked_at").
			Optional().
			Nillable(),
		field.Time("dismissed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the NotificationInteraction.
func (NotificationInteraction) Indexes() []ent.Index {
	return []ent.Index{
		// Cooldown and frequency lookups scan recent deliveries per user
		index.Fields("user_id", "delivered_at"),
		index.Fields("org_id", "delivered_at"),
	}
}
