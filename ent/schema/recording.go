package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recording holds the schema definition for the Recording entity.
// One meeting recording: bot lifecycle feeds its status, post-processing
// workers fill media storage and transcript fields.
type Recording struct {
	ent.Schema
}

// Fields of the Recording.
func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recording_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owning user (meeting organizer)"),

		// Meeting identity
		field.String("meeting_platform").
			Comment("e.g., 'zoom', 'google_meet', 'teams'"),
		field.String("meeting_url"),
		field.String("calendar_event_id").
			Optional().
			Nillable().
			Comment("Weak reference; the calendar row may be deleted independently"),
		field.String("provider_recording_id").
			Optional().
			Nillable().
			Comment("Recorder-side id used for media and transcript fetches"),

		// Overall status
		field.Enum("status").
			Values("pending", "bot_joining", "recording", "processing", "ready", "failed").
			Default("pending"),

		// Media storage. Once media_upload_status=complete, url and path are
		// set and never cleared.
		field.String("media_storage_url").
			Optional().
			Nillable().
			Comment("Presigned GET URL, 7-day expiry"),
		field.String("media_storage_path").
			Optional().
			Nillable().
			Comment("Canonical object-store key"),
		field.Enum("media_upload_status").
			Values("not_started", "pending", "in_progress", "complete", "failed").
			Default("not_started"),
		field.Int("media_upload_retry_count").
			Default(0),
		field.Time("media_upload_last_retry_at").
			Optional().
			Nillable(),
		field.String("media_content_type").
			Optional().
			Nillable(),

		// Transcript
		field.JSON("transcript", map[string]interface{}{}).
			Optional(),
		field.Int("transcript_fetch_attempts").
			Default(0).
			Comment("Incremented before each fetch so crashes still count"),
		field.Time("last_transcript_fetch_at").
			Optional().
			Nillable(),

		field.String("error_message").
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

// Edges of the Recording.
func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("bot_deployment", BotDeployment.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Recording.
func (Recording) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("org_id", "user_id"),
		// Media upload worker scan: pending or retryable-failed, FIFO
		index.Fields("media_upload_status", "created_at"),
		index.Fields("provider_recording_id"),
	}
}
