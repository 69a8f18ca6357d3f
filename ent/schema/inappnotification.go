package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InAppNotification holds the schema definition for the InAppNotification
// entity. Target table of the in_app channel driver; delivery success is
// the row insert.
type InAppNotification struct {
	ent.Schema
}

// Fields of the InAppNotification.
func (InAppNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("notification_type").
			Immutable(),

		field.String("title"),
		field.String("body").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),

		field.Time("read_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the InAppNotification.
func (InAppNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "read_at"),
	}
}
