package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RetryJob holds the schema definition for the RetryJob entity.
// Generic deferred-retry record owned by the subsystem that enqueued it
// (e.g., transcript fetches); cleared when the target succeeds.
type RetryJob struct {
	ent.Schema
}

// Fields of the RetryJob.
func (RetryJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("job_type").
			Immutable().
			Comment("e.g., 'transcript_fetch'"),
		field.String("target_entity_ref").
			Immutable().
			Comment("Id of the row this job retries, e.g. a recording id"),

		field.Time("next_attempt_at"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.Int("backoff_base_seconds").
			Default(60),
		field.Int("backoff_cap_seconds").
			Default(3600),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RetryJob.
func (RetryJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_type", "target_entity_ref").
			Unique(),
		index.Fields("next_attempt_at"),
	}
}
