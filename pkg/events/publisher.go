package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher broadcasts nudge events via pg_notify. Nothing is persisted:
// the payloads exist only to wake listeners, and every consumer re-reads
// its source-of-truth tables on receipt.
//
// Each public method accepts a typed payload struct (see payloads.go),
// stamps the routing fields, and routes to the channel for that event
// family. pg_notify fires when the statement's transaction commits, so a
// publish that races a rollback never reaches listeners.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishWebhookProcessed broadcasts a webhook.processed event.
func (p *Publisher) PublishWebhookProcessed(ctx context.Context, payload WebhookProcessedPayload) error {
	payload.Type = EventTypeWebhookProcessed
	stampTimestamp(&payload.BasePayload)
	return p.notify(ctx, ChannelWebhooks, payload)
}

// PublishRecordingStatus broadcasts a recording.status event.
func (p *Publisher) PublishRecordingStatus(ctx context.Context, payload RecordingStatusPayload) error {
	payload.Type = EventTypeRecordingStatus
	stampTimestamp(&payload.BasePayload)
	return p.notify(ctx, ChannelRecordings, payload)
}

// PublishNotificationEnqueued broadcasts a notification.enqueued event.
func (p *Publisher) PublishNotificationEnqueued(ctx context.Context, payload NotificationEnqueuedPayload) error {
	payload.Type = EventTypeNotificationEnqueued
	stampTimestamp(&payload.BasePayload)
	return p.notify(ctx, ChannelNotifications, payload)
}

// notify marshals the payload and broadcasts it on the channel.
func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}

	notifyPayload, err := truncateIfNeeded(string(data))
	if err != nil {
		return err
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// stampTimestamp fills in Timestamp when the caller left it empty.
func stampTimestamp(b *BasePayload) {
	if b.Timestamp == "" {
		b.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields. Nudge payloads are tiny
// in practice; the guard keeps an oversized one from failing the
// publish outright.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload keeps only the routing fields a consumer needs
// to know what kind of activity woke it. Consumers re-query their tables
// anyway, so nothing else is required.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type  string `json:"type"`
		OrgID string `json:"org_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":      routing.Type,
		"org_id":    routing.OrgID,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
