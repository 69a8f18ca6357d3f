package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestStampTimestamp(t *testing.T) {
	t.Run("fills empty timestamp", func(t *testing.T) {
		b := BasePayload{Type: EventTypeWebhookProcessed}
		stampTimestamp(&b)

		require.NotEmpty(t, b.Timestamp)
		_, err := time.Parse(time.RFC3339Nano, b.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("preserves caller timestamp", func(t *testing.T) {
		b := BasePayload{Timestamp: "2026-04-01T09:30:00Z"}
		stampTimestamp(&b)
		assert.Equal(t, "2026-04-01T09:30:00Z", b.Timestamp)
	})
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RecordingStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeRecordingStatus,
				OrgID: "org-123",
			},
			RecordingID: "rec-1",
			Status:      "completed",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeRecordingStatus)
		assert.Contains(t, result, "rec-1")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload down to routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(WebhookProcessedPayload{
			BasePayload: BasePayload{
				Type:  EventTypeWebhookProcessed,
				OrgID: "org-789",
			},
			WebhookEventID: "evt-456",
			EventType:      strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Less(t, len(result), 8000)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, EventTypeWebhookProcessed)
		assert.Contains(t, result, "org-789")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed-field overhead first so the test doesn't flip
		// when fields are added to the payload struct.
		base, _ := json.Marshal(WebhookProcessedPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		payload, _ := json.Marshal(WebhookProcessedPayload{
			BasePayload: BasePayload{Type: "t"},
			EventType:   strings.Repeat("b", 7900-len(base)-20),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}
