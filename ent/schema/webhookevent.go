package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Append-only log of every inbound webhook delivery; the
// (source, external_event_id) pair is the idempotency key.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),

		// Delivery identity
		field.String("source").
			Immutable().
			Comment("e.g., 'meeting_recorder', 'meetings', 'stripe', 'sentry'"),
		field.String("event_type").
			Comment("Source-specific discriminator (type/event/topic field)"),
		field.String("external_event_id").
			Optional().
			Nillable().
			Comment("Provider-assigned delivery id; null when the source sends none"),

		// Tenant scope (resolved after verification for account-scoped sources)
		field.String("org_id").
			Optional().
			Nillable(),

		// Raw delivery, headers masked before persistence
		field.JSON("payload", map[string]interface{}{}),
		field.JSON("headers", map[string]interface{}{}).
			Optional(),

		// Processing lifecycle
		field.Enum("status").
			Values("received", "processing", "processed", "failed", "ignored").
			Default("received"),
		field.String("error_message").
			Optional().
			Nillable(),

		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency key: unique only when the source supplies a delivery id
		index.Fields("source", "external_event_id").
			Unique().
			Annotations(entsql.IndexWhere("external_event_id IS NOT NULL")),
		index.Fields("status", "received_at"),
		index.Fields("org_id", "received_at"),
	}
}
