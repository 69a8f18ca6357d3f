package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationQueueItem holds the schema definition for the
// NotificationQueueItem entity. Rows are claimed by workers via conditional
// update; a processing row whose locked_at is older than the stale threshold
// is reclaimable by any worker.
type NotificationQueueItem struct {
	ent.Schema
}

// Fields of the NotificationQueueItem.
func (NotificationQueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("org_id").
			Immutable(),

		field.String("notification_type").
			Comment("e.g., 'meeting_ready', 'deal_alert', 'feedback_request'"),
		field.Enum("channel").
			Values("slack_dm", "slack_channel", "email", "in_app"),
		field.Enum("priority").
			Values("urgent", "high", "normal", "low").
			Default("normal"),
		field.JSON("payload", map[string]interface{}{}),

		// Scheduling
		field.Time("scheduled_for").
			Comment("Earliest allowed send time"),
		field.Time("optimal_send_time").
			Optional().
			Nillable(),
		field.Time("next_allowed_at").
			Optional().
			Nillable().
			Comment("Set when delayed by a frequency gate"),

		// Delivery lifecycle
		field.Enum("status").
			Values("pending", "processing", "sent", "failed", "cancelled", "delayed").
			Default("pending"),
		field.Int("attempt_count").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Worker/pod identity holding the claim"),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable().
			Comment("Truncated to 200 chars; HTML bodies replaced"),

		field.Time("sent_at").
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

// Indexes of the NotificationQueueItem.
func (NotificationQueueItem) Indexes() []ent.Index {
	return []ent.Index{
		// Worker scan: pending items due now, priority then schedule order
		index.Fields("status", "scheduled_for"),
		index.Fields("status", "next_allowed_at"),
		// Stale-claim reclamation
		index.Fields("status", "locked_at"),
		// Frequency accounting per user
		index.Fields("user_id", "status", "sent_at"),
		index.Fields("org_id", "created_at"),
	}
}
