package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecorderEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr string
		check   func(t *testing.T, evt *RecorderEvent)
	}{
		{
			name:    "missing discriminator returns error",
			payload: map[string]interface{}{"data": map[string]interface{}{"bot_id": "bot_1"}},
			wantErr: "missing event discriminator",
		},
		{
			name: "nested status and recording objects",
			payload: map[string]interface{}{
				"event":    "bot.status_change",
				"event_id": "evt_123",
				"data": map[string]interface{}{
					"bot_id": "bot_1",
					"status": map[string]interface{}{
						"code":       "in_call_recording",
						"sub_code":   "joined_waiting_room",
						"created_at": float64(1756100000),
					},
					"recording": map[string]interface{}{
						"id":           "rec_9",
						"media_url":    "https://cdn.example.com/rec_9.mp4",
						"content_type": "video/mp4",
					},
				},
			},
			check: func(t *testing.T, evt *RecorderEvent) {
				assert.Equal(t, "bot.status_change", evt.Kind)
				assert.Equal(t, "evt_123", evt.EventID)
				assert.Equal(t, "bot_1", evt.BotID)
				assert.Equal(t, "in_call_recording", evt.Status)
				assert.Equal(t, "joined_waiting_room", evt.Detail)
				assert.Equal(t, "rec_9", evt.RecordingID)
				assert.Equal(t, "https://cdn.example.com/rec_9.mp4", evt.MediaURL)
				assert.Equal(t, "video/mp4", evt.ContentType)
				assert.Equal(t, time.Unix(1756100000, 0).UTC(), evt.OccurredAt)
			},
		},
		{
			name: "flat legacy shape with type discriminator",
			payload: map[string]interface{}{
				"type":       "recording.done",
				"id":         "evt_456",
				"created_at": float64(1756100100),
				"data": map[string]interface{}{
					"bot_id":       "bot_2",
					"status":       "done",
					"recording_id": "rec_10",
					"media_url":    "https://cdn.example.com/rec_10.mp4",
					"content_type": "video/mp4",
				},
			},
			check: func(t *testing.T, evt *RecorderEvent) {
				assert.Equal(t, "recording.done", evt.Kind)
				assert.Equal(t, "evt_456", evt.EventID)
				assert.Equal(t, "done", evt.Status)
				assert.Equal(t, "rec_10", evt.RecordingID)
				assert.Equal(t, time.Unix(1756100100, 0).UTC(), evt.OccurredAt)
			},
		},
		{
			name: "video_url fallback for media",
			payload: map[string]interface{}{
				"event": "recording.done",
				"data": map[string]interface{}{
					"bot_id": "bot_3",
					"recording": map[string]interface{}{
						"id":        "rec_11",
						"video_url": "https://cdn.example.com/rec_11.mp4",
					},
				},
			},
			check: func(t *testing.T, evt *RecorderEvent) {
				assert.Equal(t, "https://cdn.example.com/rec_11.mp4", evt.MediaURL)
			},
		},
		{
			name: "status message used when no sub_code present",
			payload: map[string]interface{}{
				"event": "bot.status_change",
				"data": map[string]interface{}{
					"bot_id": "bot_4",
					"status": map[string]interface{}{
						"code":    "fatal",
						"message": "kicked from call",
					},
				},
			},
			check: func(t *testing.T, evt *RecorderEvent) {
				assert.Equal(t, "fatal", evt.Status)
				assert.Equal(t, "kicked from call", evt.Detail)
				assert.True(t, evt.OccurredAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := NormalizeRecorderEvent(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, evt)
			if tt.check != nil {
				tt.check(t, evt)
			}
		})
	}
}

func TestNormalizeMeetingSummary(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr string
		check   func(t *testing.T, s *MeetingSummary)
	}{
		{
			name:    "missing topic returns error",
			payload: map[string]interface{}{"meeting_title": "Q3 kickoff"},
			wantErr: "missing topic discriminator",
		},
		{
			name: "current field names",
			payload: map[string]interface{}{
				"topic":             "meeting.summary_ready",
				"event_id":          "evt_m1",
				"meeting_title":     "Q3 kickoff",
				"recording_id":      "rec_1",
				"calendar_event_id": "cal_1",
				"recorded_by":       "ae@stride.example",
				"transcript":        "full transcript text",
				"summary":           "short summary",
				"action_items": []interface{}{
					map[string]interface{}{"description": "Send pricing", "assignee_email": "ae@stride.example"},
				},
				"contacts": []interface{}{
					map[string]interface{}{"name": "Dana Reyes", "email": "dana@buyer.example", "role": "champion"},
				},
				"deal": map[string]interface{}{"amount": float64(48000), "currency": "USD"},
			},
			check: func(t *testing.T, s *MeetingSummary) {
				assert.Equal(t, "meeting.summary_ready", s.Topic)
				assert.Equal(t, "Q3 kickoff", s.MeetingTitle)
				assert.Equal(t, "ae@stride.example", s.RecordedBy)
				require.Len(t, s.ActionItems, 1)
				assert.Equal(t, "Send pricing", s.ActionItems[0].Description)
				require.Len(t, s.Contacts, 1)
				assert.Equal(t, "dana@buyer.example", s.Contacts[0].Email)
				assert.Equal(t, "champion", s.Contacts[0].Role)
				assert.Equal(t, float64(48000), s.DealAmount)
				assert.Equal(t, "USD", s.DealCurrency)
			},
		},
		{
			name: "legacy keyContacts and currencyCode still decode",
			payload: map[string]interface{}{
				"topic": "meeting.summary_ready",
				"id":    "evt_m2",
				"title": "Renewal sync",
				"keyContacts": []interface{}{
					map[string]interface{}{"name": "Ola Berg", "email": "ola@buyer.example"},
				},
				"deal": map[string]interface{}{"amount": float64(12000), "currencyCode": "EUR"},
				"action_items": []interface{}{
					map[string]interface{}{"text": "Book renewal call", "assignee": "csm@stride.example"},
				},
				"owner_email": "csm@stride.example",
			},
			check: func(t *testing.T, s *MeetingSummary) {
				assert.Equal(t, "evt_m2", s.EventID)
				assert.Equal(t, "Renewal sync", s.MeetingTitle)
				assert.Equal(t, "csm@stride.example", s.RecordedBy)
				require.Len(t, s.Contacts, 1)
				assert.Equal(t, "ola@buyer.example", s.Contacts[0].Email)
				assert.Equal(t, "EUR", s.DealCurrency)
				require.Len(t, s.ActionItems, 1)
				assert.Equal(t, "Book renewal call", s.ActionItems[0].Description)
				assert.Equal(t, "csm@stride.example", s.ActionItems[0].AssigneeEmail)
			},
		},
		{
			name: "current names win when both present",
			payload: map[string]interface{}{
				"topic": "meeting.summary_ready",
				"contacts": []interface{}{
					map[string]interface{}{"name": "Current", "email": "current@buyer.example"},
				},
				"keyContacts": []interface{}{
					map[string]interface{}{"name": "Legacy", "email": "legacy@buyer.example"},
				},
				"deal": map[string]interface{}{"currency": "USD", "currencyCode": "EUR"},
			},
			check: func(t *testing.T, s *MeetingSummary) {
				require.Len(t, s.Contacts, 1)
				assert.Equal(t, "current@buyer.example", s.Contacts[0].Email)
				assert.Equal(t, "USD", s.DealCurrency)
			},
		},
		{
			name: "malformed list entries skipped",
			payload: map[string]interface{}{
				"topic":        "meeting.summary_ready",
				"contacts":     []interface{}{"not-a-map", map[string]interface{}{"email": "ok@buyer.example"}},
				"action_items": []interface{}{float64(42)},
			},
			check: func(t *testing.T, s *MeetingSummary) {
				require.Len(t, s.Contacts, 1)
				assert.Equal(t, "ok@buyer.example", s.Contacts[0].Email)
				assert.Empty(t, s.ActionItems)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NormalizeMeetingSummary(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestNormalizeStripeEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr string
		check   func(t *testing.T, evt *StripeEvent)
	}{
		{
			name:    "missing type returns error",
			payload: map[string]interface{}{"id": "evt_1"},
			wantErr: "missing type discriminator",
		},
		{
			name: "subscription update with nested price",
			payload: map[string]interface{}{
				"id":   "evt_sub_1",
				"type": "customer.subscription.updated",
				"data": map[string]interface{}{
					"object": map[string]interface{}{
						"id":       "sub_1",
						"customer": "cus_1",
						"status":   "active",
						"metadata": map[string]interface{}{"org_id": "org-42"},
						"items": map[string]interface{}{
							"data": []interface{}{
								map[string]interface{}{
									"price": map[string]interface{}{"id": "price_pro_monthly"},
								},
							},
						},
					},
				},
			},
			check: func(t *testing.T, evt *StripeEvent) {
				assert.Equal(t, "evt_sub_1", evt.EventID)
				assert.Equal(t, "customer.subscription.updated", evt.Type)
				assert.Equal(t, "sub_1", evt.ObjectID)
				assert.Equal(t, "cus_1", evt.CustomerID)
				assert.Equal(t, "active", evt.Status)
				assert.Equal(t, "price_pro_monthly", evt.PriceID)
				assert.Equal(t, "org-42", evt.OrgID)
			},
		},
		{
			name: "invoice payment failure references subscription",
			payload: map[string]interface{}{
				"id":   "evt_inv_1",
				"type": "invoice.payment_failed",
				"data": map[string]interface{}{
					"object": map[string]interface{}{
						"id":           "in_1",
						"customer":     "cus_2",
						"subscription": "sub_2",
						"status":       "open",
					},
				},
			},
			check: func(t *testing.T, evt *StripeEvent) {
				assert.Equal(t, "in_1", evt.ObjectID)
				assert.Equal(t, "sub_2", evt.SubscriptionID)
				assert.Empty(t, evt.PriceID)
			},
		},
		{
			name:    "missing data object tolerated",
			payload: map[string]interface{}{"id": "evt_min", "type": "customer.created"},
			check: func(t *testing.T, evt *StripeEvent) {
				assert.Equal(t, "customer.created", evt.Type)
				assert.Empty(t, evt.ObjectID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := NormalizeStripeEvent(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, evt)
			if tt.check != nil {
				tt.check(t, evt)
			}
		})
	}
}

func TestNormalizeSentryEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr string
		check   func(t *testing.T, evt *SentryEvent)
	}{
		{
			name:    "missing event_id returns error",
			payload: map[string]interface{}{"title": "NullPointerException"},
			wantErr: "missing event_id",
		},
		{
			name: "full payload with exception",
			payload: map[string]interface{}{
				"event_id":    "a1b2c3",
				"project":     "web-app",
				"environment": "production",
				"release":     "2026.08.20",
				"level":       "error",
				"title":       "TypeError: cannot read properties",
				"url":         "https://sentry.example.com/issues/42",
				"exception": map[string]interface{}{
					"type":  "TypeError",
					"value": "cannot read properties of undefined",
				},
			},
			check: func(t *testing.T, evt *SentryEvent) {
				assert.Equal(t, "a1b2c3", evt.EventID)
				assert.Equal(t, "web-app", evt.Project)
				assert.Equal(t, "production", evt.Environment)
				assert.Equal(t, "TypeError", evt.ExceptionType)
				assert.Equal(t, "cannot read properties of undefined", evt.ExceptionMsg)
			},
		},
		{
			name: "alternate field names",
			payload: map[string]interface{}{
				"id":           "d4e5f6",
				"project_slug": "ingest-worker",
				"message":      "connection reset by peer",
				"web_url":      "https://sentry.example.com/issues/43",
			},
			check: func(t *testing.T, evt *SentryEvent) {
				assert.Equal(t, "d4e5f6", evt.EventID)
				assert.Equal(t, "ingest-worker", evt.Project)
				assert.Equal(t, "connection reset by peer", evt.Title)
				assert.Equal(t, "https://sentry.example.com/issues/43", evt.URL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := NormalizeSentryEvent(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, evt)
			if tt.check != nil {
				tt.check(t, evt)
			}
		})
	}
}
