package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SequenceExecution holds the schema definition for the SequenceExecution
// entity. step_results is append-only and persisted after every step so a
// crash loses no completed work; failed_step_index is set iff status=failed.
type SequenceExecution struct {
	ent.Schema
}

// Fields of the SequenceExecution.
func (SequenceExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("sequence_key").
			Immutable().
			Comment("Key into the sequence registry (YAML-defined)"),

		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.JSON("input_trigger", map[string]interface{}{}).
			Optional().
			Comment("Event payload that started the run (e.g. recording facts)"),
		field.JSON("input_context", map[string]interface{}{}).
			Optional().
			Comment("Caller-supplied parameters"),
		field.JSON("step_results", []map[string]interface{}{}).
			Optional(),
		field.Int("failed_step_index").
			Optional().
			Nillable(),
		field.Bool("is_simulation").
			Default(false).
			Immutable(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SequenceExecution.
func (SequenceExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "sequence_key", "started_at"),
		index.Fields("org_id", "status"),
	}
}
