package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationPayloadRoundTrip(t *testing.T) {
	p := &NotificationPayload{
		Title:     "Meeting recorded",
		Text:      "Q3 kickoff with Buyer Inc is ready",
		ChannelID: "C012345",
		LinkURL:   "https://app.stride.example/recordings/rec_1",
		Fields: []NotificationField{
			{Label: "Duration", Value: "42 min"},
			{Label: "Attendees", Value: "5"},
		},
		Actions: []NotificationAction{
			{Text: "Open recording", URL: "https://app.stride.example/recordings/rec_1"},
			{Text: "Dismiss", Value: "dismiss:rec_1"},
		},
	}

	restored := PayloadFromMap(p.ToMap())
	assert.Equal(t, p, restored)
}

func TestPayloadFromMapDecodedJSON(t *testing.T) {
	// Shape produced by json.Unmarshal of a stored payload column.
	m := map[string]interface{}{
		"title": "Feedback requested",
		"text":  "How are these notifications working for you?",
		"actions": []interface{}{
			map[string]interface{}{"text": "More like this", "value": "feedback:more"},
			map[string]interface{}{"text": "Less please", "value": "feedback:less"},
			"garbage-entry",
		},
	}

	p := PayloadFromMap(m)
	assert.Equal(t, "Feedback requested", p.Title)
	assert.Empty(t, p.ChannelID)
	require.Len(t, p.Actions, 2)
	assert.Equal(t, "feedback:more", p.Actions[0].Value)
	assert.Empty(t, p.Fields)
}

func TestPayloadToMapOmitsEmpty(t *testing.T) {
	m := (&NotificationPayload{Title: "t", Text: "x"}).ToMap()
	assert.NotContains(t, m, "channel_id")
	assert.NotContains(t, m, "link_url")
	assert.NotContains(t, m, "fields")
	assert.NotContains(t, m, "actions")
}
