package events

// BasePayload carries the routing fields every event shares. The
// publisher stamps Type and Timestamp; callers fill the rest.
type BasePayload struct {
	Type      string `json:"type"`
	OrgID     string `json:"org_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// WebhookProcessedPayload is published after a webhook event row and its
// handler side effects have committed.
type WebhookProcessedPayload struct {
	BasePayload
	WebhookEventID string `json:"webhook_event_id"`
	Source         string `json:"source"`     // calendar, meeting_bot, crm, billing
	EventType      string `json:"event_type"` // provider discriminator, e.g. bot.status_change
}

// RecordingStatusPayload is published on every recording status
// transition. Workers key off Status: "completed" means media and
// transcript are worth fetching now.
type RecordingStatusPayload struct {
	BasePayload
	RecordingID    string `json:"recording_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
}

// NotificationEnqueuedPayload is published when a queue item is created
// or promoted from delayed back to pending.
type NotificationEnqueuedPayload struct {
	BasePayload
	NotificationID string `json:"notification_id"`
	Priority       string `json:"priority"`
	ScheduledFor   string `json:"scheduled_for,omitempty"` // RFC3339
}
