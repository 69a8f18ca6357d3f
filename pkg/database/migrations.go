package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search over recording transcripts
// and webhook payloads, which Ent schema annotations cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for transcript full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_recordings_transcript_gin
		ON recordings USING gin(to_tsvector('english', COALESCE(transcript->>'text', '')))`)
	if err != nil {
		return fmt.Errorf("failed to create transcript GIN index: %w", err)
	}

	// GIN index for webhook payload lookups (admin diagnostics)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_webhook_events_payload_gin
		ON webhook_events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create webhook payload GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent's schema DSL cannot express.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// The feedback loop queues at most one live feedback prompt per user;
	// concurrent worker ticks that both see feedback as due race to this
	// index instead of double-queuing.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS notificationqueueitem_user_feedback_live
		ON notification_queue_items (user_id)
		WHERE notification_type = 'feedback_request' AND status IN ('pending', 'delayed', 'processing')`)
	if err != nil {
		return fmt.Errorf("failed to create feedback prompt index: %w", err)
	}

	return nil
}
