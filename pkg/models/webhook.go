// Package models contains request/response models and business domain types.
package models

import (
	"fmt"
	"time"

	"github.com/stridehq/cadenza/ent"
)

// Webhook payloads arrive as untyped JSON and vary across provider API
// generations. The normalizers below accept the permissive input and
// emit one strict struct per source; everything downstream works with
// the strict types only.

// RecordWebhookEventRequest contains fields for logging an inbound delivery
type RecordWebhookEventRequest struct {
	Source          string                 `json:"source"`
	EventType       string                 `json:"event_type"`
	ExternalEventID *string                `json:"external_event_id,omitempty"`
	OrgID           *string                `json:"org_id,omitempty"`
	Payload         map[string]interface{} `json:"payload"`
	Headers         map[string]interface{} `json:"headers,omitempty"`
}

// WebhookEventFilters contains filtering options for listing webhook events
type WebhookEventFilters struct {
	Source        string     `json:"source,omitempty"`
	Status        string     `json:"status,omitempty"`
	OrgID         string     `json:"org_id,omitempty"`
	ReceivedAfter *time.Time `json:"received_after,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// WebhookEventListResponse contains a paginated webhook event list
type WebhookEventListResponse struct {
	Events     []*ent.WebhookEvent `json:"events"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// RecorderEvent is the normalized meeting-recorder webhook payload.
type RecorderEvent struct {
	Kind        string // discriminator ("bot.status_change", "recording.done", ...)
	EventID     string // provider event id, used for deduplication
	BotID       string
	Status      string // provider status code, mapped by the lifecycle state machine
	Detail      string
	RecordingID string // provider-side recording id
	MediaURL    string
	ContentType string
	OccurredAt  time.Time
}

// NormalizeRecorderEvent decodes a meeting-recorder webhook body. The
// discriminator lives under "event" on newer payloads and "type" on
// older ones.
func NormalizeRecorderEvent(payload map[string]interface{}) (*RecorderEvent, error) {
	kind := firstString(payload, "event", "type")
	if kind == "" {
		return nil, fmt.Errorf("recorder payload missing event discriminator")
	}

	evt := &RecorderEvent{
		Kind:    kind,
		EventID: firstString(payload, "event_id", "id"),
	}

	data := asMap(payload["data"])
	evt.BotID = firstString(data, "bot_id")
	evt.Detail = firstString(data, "sub_code", "detail")

	if status := asMap(data["status"]); status != nil {
		evt.Status = firstString(status, "code")
		if evt.Detail == "" {
			evt.Detail = firstString(status, "sub_code", "message")
		}
		evt.OccurredAt = epochTime(status["created_at"])
	} else {
		evt.Status = firstString(data, "status")
	}

	if rec := asMap(data["recording"]); rec != nil {
		evt.RecordingID = firstString(rec, "id")
		evt.MediaURL = firstString(rec, "media_url", "video_url")
		evt.ContentType = firstString(rec, "content_type")
	} else {
		evt.RecordingID = firstString(data, "recording_id")
		evt.MediaURL = firstString(data, "media_url")
		evt.ContentType = firstString(data, "content_type")
	}

	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = epochTime(payload["created_at"])
	}

	return evt, nil
}

// Contact is a meeting participant from the meetings provider.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// ActionItem is a follow-up extracted by the meetings provider.
type ActionItem struct {
	Description   string `json:"description"`
	AssigneeEmail string `json:"assignee_email,omitempty"`
}

// MeetingSummary is the normalized meetings-provider webhook payload.
type MeetingSummary struct {
	Topic           string // discriminator
	EventID         string
	MeetingTitle    string
	RecordingID     string
	CalendarEventID string
	RecordedBy      string // email of the meeting owner
	Transcript      string
	Summary         string
	ActionItems     []ActionItem
	Contacts        []Contact
	DealAmount      float64
	DealCurrency    string
}

// NormalizeMeetingSummary decodes a meetings webhook body. Two payload
// generations are in the wild: the current one uses "contacts" and
// "currency", the legacy one "keyContacts" and "currencyCode". Both
// are accepted; the current spelling wins when both are present.
func NormalizeMeetingSummary(payload map[string]interface{}) (*MeetingSummary, error) {
	topic := firstString(payload, "topic")
	if topic == "" {
		return nil, fmt.Errorf("meetings payload missing topic discriminator")
	}

	summary := &MeetingSummary{
		Topic:           topic,
		EventID:         firstString(payload, "event_id", "id"),
		MeetingTitle:    firstString(payload, "meeting_title", "title"),
		RecordingID:     firstString(payload, "recording_id"),
		CalendarEventID: firstString(payload, "calendar_event_id"),
		RecordedBy:      firstString(payload, "recorded_by", "owner_email"),
		Transcript:      firstString(payload, "transcript"),
		Summary:         firstString(payload, "summary"),
	}

	for _, raw := range asSlice(payload["action_items"]) {
		item := asMap(raw)
		if item == nil {
			continue
		}
		summary.ActionItems = append(summary.ActionItems, ActionItem{
			Description:   firstString(item, "description", "text"),
			AssigneeEmail: firstString(item, "assignee_email", "assignee"),
		})
	}

	contacts := asSlice(payload["contacts"])
	if contacts == nil {
		contacts = asSlice(payload["keyContacts"])
	}
	for _, raw := range contacts {
		c := asMap(raw)
		if c == nil {
			continue
		}
		summary.Contacts = append(summary.Contacts, Contact{
			Name:  firstString(c, "name"),
			Email: firstString(c, "email"),
			Role:  firstString(c, "role"),
		})
	}

	if deal := asMap(payload["deal"]); deal != nil {
		summary.DealAmount = asFloat(deal["amount"])
		summary.DealCurrency = firstString(deal, "currency", "currencyCode")
	}

	return summary, nil
}

// StripeEvent is the normalized billing webhook payload.
type StripeEvent struct {
	EventID        string // "evt_..." id, used for deduplication
	Type           string // discriminator ("customer.subscription.updated", ...)
	ObjectID       string
	CustomerID     string
	SubscriptionID string
	Status         string
	PriceID        string
	OrgID          string // tenant stamp from the object's metadata
}

// NormalizeStripeEvent decodes a billing webhook body.
func NormalizeStripeEvent(payload map[string]interface{}) (*StripeEvent, error) {
	eventType := firstString(payload, "type")
	if eventType == "" {
		return nil, fmt.Errorf("billing payload missing type discriminator")
	}

	evt := &StripeEvent{
		EventID: firstString(payload, "id"),
		Type:    eventType,
	}

	object := asMap(asMap(payload["data"])["object"])
	if object != nil {
		evt.ObjectID = firstString(object, "id")
		evt.CustomerID = firstString(object, "customer")
		evt.SubscriptionID = firstString(object, "subscription")
		evt.Status = firstString(object, "status")
		evt.OrgID = firstString(asMap(object["metadata"]), "org_id")
		if items := asMap(object["items"]); items != nil {
			if data := asSlice(items["data"]); len(data) > 0 {
				if price := asMap(asMap(data[0])["price"]); price != nil {
					evt.PriceID = firstString(price, "id")
				}
			}
		}
	}

	return evt, nil
}

// SentryEvent is the normalized error-monitoring webhook payload, the
// input to error-to-ticket routing rules.
type SentryEvent struct {
	EventID       string
	Project       string
	Environment   string
	Release       string
	Level         string
	Title         string
	ExceptionType string
	ExceptionMsg  string
	URL           string
}

// NormalizeSentryEvent decodes an error-monitoring webhook body.
func NormalizeSentryEvent(payload map[string]interface{}) (*SentryEvent, error) {
	eventID := firstString(payload, "event_id", "id")
	if eventID == "" {
		return nil, fmt.Errorf("sentry payload missing event_id")
	}

	evt := &SentryEvent{
		EventID:     eventID,
		Project:     firstString(payload, "project", "project_slug"),
		Environment: firstString(payload, "environment"),
		Release:     firstString(payload, "release"),
		Level:       firstString(payload, "level"),
		Title:       firstString(payload, "title", "message"),
		URL:         firstString(payload, "url", "web_url"),
	}

	if exc := asMap(payload["exception"]); exc != nil {
		evt.ExceptionType = firstString(exc, "type")
		evt.ExceptionMsg = firstString(exc, "value")
	}

	return evt, nil
}

// ────────────────────────────────────────────────────────────
// Permissive decoding helpers
// ────────────────────────────────────────────────────────────

// firstString returns the first non-empty string value among keys.
func firstString(m map[string]interface{}, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// asSlice accepts both decoded-JSON slices and the []map shape our own
// ToMap helpers produce, so stored payloads read back identically whether
// or not they crossed a JSON boundary.
func asSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []map[string]interface{}:
		out := make([]interface{}, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out
	}
	return nil
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// epochTime converts a JSON number of epoch seconds (or an RFC3339
// string) into a time. Zero time when absent or unreadable.
func epochTime(v interface{}) time.Time {
	switch t := v.(type) {
	case float64:
		if t <= 0 {
			return time.Time{}
		}
		return time.Unix(int64(t), 0).UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}
		}
		return parsed.UTC()
	}
	return time.Time{}
}
