package models

import (
	"time"

	"github.com/stridehq/cadenza/ent"
)

// NotificationField is a label/value pair rendered in the notification
// body (Slack section fields, in-app detail rows).
type NotificationField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NotificationAction is a button attached to a notification.
type NotificationAction struct {
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
	Value string `json:"value,omitempty"`
}

// NotificationPayload is the channel-independent notification content.
// Channel drivers render it into their own format and enforce their
// own length limits.
type NotificationPayload struct {
	Title     string               `json:"title"`
	Text      string               `json:"text"`
	Fields    []NotificationField  `json:"fields,omitempty"`
	Actions   []NotificationAction `json:"actions,omitempty"`
	ChannelID string               `json:"channel_id,omitempty"` // slack_channel driver target
	LinkURL   string               `json:"link_url,omitempty"`   // deep link into the dashboard
}

// ToMap converts the payload for JSON column storage.
func (p *NotificationPayload) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"title": p.Title,
		"text":  p.Text,
	}
	if p.ChannelID != "" {
		m["channel_id"] = p.ChannelID
	}
	if p.LinkURL != "" {
		m["link_url"] = p.LinkURL
	}
	if len(p.Fields) > 0 {
		fields := make([]map[string]interface{}, 0, len(p.Fields))
		for _, f := range p.Fields {
			fields = append(fields, map[string]interface{}{"label": f.Label, "value": f.Value})
		}
		m["fields"] = fields
	}
	if len(p.Actions) > 0 {
		actions := make([]map[string]interface{}, 0, len(p.Actions))
		for _, a := range p.Actions {
			entry := map[string]interface{}{"text": a.Text}
			if a.URL != "" {
				entry["url"] = a.URL
			}
			if a.Value != "" {
				entry["value"] = a.Value
			}
			actions = append(actions, entry)
		}
		m["actions"] = actions
	}
	return m
}

// PayloadFromMap restores a NotificationPayload from a JSON column.
// Unknown keys are ignored; missing keys leave zero values.
func PayloadFromMap(m map[string]interface{}) *NotificationPayload {
	p := &NotificationPayload{
		Title:     firstString(m, "title"),
		Text:      firstString(m, "text"),
		ChannelID: firstString(m, "channel_id"),
		LinkURL:   firstString(m, "link_url"),
	}
	for _, raw := range asSlice(m["fields"]) {
		f := asMap(raw)
		if f == nil {
			continue
		}
		p.Fields = append(p.Fields, NotificationField{
			Label: firstString(f, "label"),
			Value: firstString(f, "value"),
		})
	}
	for _, raw := range asSlice(m["actions"]) {
		a := asMap(raw)
		if a == nil {
			continue
		}
		p.Actions = append(p.Actions, NotificationAction{
			Text:  firstString(a, "text"),
			URL:   firstString(a, "url"),
			Value: firstString(a, "value"),
		})
	}
	return p
}

// EnqueueNotificationRequest contains fields for queueing a notification
type EnqueueNotificationRequest struct {
	UserID           string               `json:"user_id"`
	OrgID            string               `json:"org_id"`
	NotificationType string               `json:"notification_type"`
	Channel          string               `json:"channel"`
	Priority         string               `json:"priority"`
	Payload          *NotificationPayload `json:"payload"`
	ScheduledFor     *time.Time           `json:"scheduled_for,omitempty"`
	OptimalSendTime  *time.Time           `json:"optimal_send_time,omitempty"`
}

// NotificationFilters contains filtering options for listing queue items
type NotificationFilters struct {
	UserID string `json:"user_id,omitempty"`
	OrgID  string `json:"org_id,omitempty"`
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// NotificationListResponse contains a paginated queue item list
type NotificationListResponse struct {
	Items      []*ent.NotificationQueueItem `json:"items"`
	TotalCount int                          `json:"total_count"`
	Limit      int                          `json:"limit"`
	Offset     int                          `json:"offset"`
}

// FeedbackRequest records a user's response to a feedback prompt.
// Response is one of "more", "less", "helpful", "not_helpful".
type FeedbackRequest struct {
	UserID   string `json:"user_id"`
	OrgID    string `json:"org_id"`
	Response string `json:"response"`
}

// InteractionRequest marks engagement on a delivered notification.
type InteractionRequest struct {
	InteractionID string `json:"interaction_id"`
	Kind          string `json:"kind"` // "opened", "clicked", "dismissed"
}
