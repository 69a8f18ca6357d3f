package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/test/util"
)

// busTestEnv wires a real publisher, listener, and hub against a real
// PostgreSQL database (testcontainers locally, service container in CI).
type busTestEnv struct {
	publisher *Publisher
	hub       *Hub
	listener  *NotifyListener
}

func setupBusTest(t *testing.T) *busTestEnv {
	t.Helper()

	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	hub := NewHub()

	// The listener needs the base connection string (no schema
	// search_path): NOTIFY/LISTEN is database-level, not schema-level.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), hub)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	for _, ch := range []string{ChannelWebhooks, ChannelRecordings, ChannelNotifications} {
		require.NoError(t, listener.Subscribe(ctx, ch))
		require.True(t, listener.isListening(ch))
	}

	return &busTestEnv{
		publisher: NewPublisher(db),
		hub:       hub,
		listener:  listener,
	}
}

// awaitNudge reads nudges until one satisfies the predicate. The test
// database is shared, so nudges from concurrently running packages can
// appear on the same channel and must be skipped, not failed on.
func awaitNudge(t *testing.T, ch <-chan Nudge, match func(Nudge) bool) Nudge {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case nudge := <-ch:
			if match(nudge) {
				return nudge
			}
		case <-deadline:
			t.Fatal("timed out waiting for a matching nudge")
			return Nudge{}
		}
	}
}

func TestIntegration_WebhookNudgeDelivery(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	ch, cancel := env.hub.Subscribe(ChannelWebhooks)
	defer cancel()

	orgID := uuid.New().String()
	require.NoError(t, env.publisher.PublishWebhookProcessed(ctx, WebhookProcessedPayload{
		BasePayload:    BasePayload{OrgID: orgID},
		WebhookEventID: "evt-int-1",
		Source:         "calendar",
		EventType:      "event.updated",
	}))

	nudge := awaitNudge(t, ch, func(n Nudge) bool {
		var p WebhookProcessedPayload
		return json.Unmarshal(n.Payload, &p) == nil && p.OrgID == orgID
	})

	assert.Equal(t, ChannelWebhooks, nudge.Channel)
	assert.Equal(t, EventTypeWebhookProcessed, nudge.Type)

	var payload WebhookProcessedPayload
	require.NoError(t, json.Unmarshal(nudge.Payload, &payload))
	assert.Equal(t, EventTypeWebhookProcessed, payload.Type, "publisher should stamp the type")
	assert.Equal(t, "evt-int-1", payload.WebhookEventID)
	assert.Equal(t, "calendar", payload.Source)
	assert.NotEmpty(t, payload.Timestamp, "publisher should stamp the timestamp")
}

func TestIntegration_RecordingStatusDelivery(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	ch, cancel := env.hub.Subscribe(ChannelRecordings)
	defer cancel()

	orgID := uuid.New().String()
	require.NoError(t, env.publisher.PublishRecordingStatus(ctx, RecordingStatusPayload{
		BasePayload:    BasePayload{OrgID: orgID},
		RecordingID:    "rec-int-1",
		Status:         "completed",
		PreviousStatus: "leaving",
	}))

	nudge := awaitNudge(t, ch, func(n Nudge) bool {
		var p RecordingStatusPayload
		return json.Unmarshal(n.Payload, &p) == nil && p.OrgID == orgID
	})

	var payload RecordingStatusPayload
	require.NoError(t, json.Unmarshal(nudge.Payload, &payload))
	assert.Equal(t, "rec-int-1", payload.RecordingID)
	assert.Equal(t, "completed", payload.Status)
	assert.Equal(t, "leaving", payload.PreviousStatus)
}

func TestIntegration_NotificationNudgeWakesLateSubscriberOnNextPublish(t *testing.T) {
	// Nudges are transient: a subscriber that joins after a publish sees
	// nothing until the next one. This is the designed trade-off — the
	// worker's own timer tick covers anything published while it was
	// away.
	env := setupBusTest(t)
	ctx := context.Background()

	missedOrg := uuid.New().String()
	require.NoError(t, env.publisher.PublishNotificationEnqueued(ctx, NotificationEnqueuedPayload{
		BasePayload:    BasePayload{OrgID: missedOrg},
		NotificationID: "n-missed",
		Priority:       "urgent",
	}))

	ch, cancel := env.hub.Subscribe(ChannelNotifications)
	defer cancel()

	seenOrg := uuid.New().String()
	require.NoError(t, env.publisher.PublishNotificationEnqueued(ctx, NotificationEnqueuedPayload{
		BasePayload:    BasePayload{OrgID: seenOrg},
		NotificationID: "n-seen",
		Priority:       "high",
	}))

	nudge := awaitNudge(t, ch, func(n Nudge) bool {
		var p NotificationEnqueuedPayload
		return json.Unmarshal(n.Payload, &p) == nil && p.OrgID == seenOrg
	})

	var payload NotificationEnqueuedPayload
	require.NoError(t, json.Unmarshal(nudge.Payload, &payload))
	assert.Equal(t, "n-seen", payload.NotificationID)
	assert.Equal(t, "high", payload.Priority)
}

func TestIntegration_UnsubscribeStopsDelivery(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	require.NoError(t, env.listener.Unsubscribe(ctx, ChannelWebhooks))
	assert.False(t, env.listener.isListening(ChannelWebhooks))

	ch, cancel := env.hub.Subscribe(ChannelWebhooks)
	defer cancel()

	require.NoError(t, env.publisher.PublishWebhookProcessed(ctx, WebhookProcessedPayload{
		BasePayload:    BasePayload{OrgID: uuid.New().String()},
		WebhookEventID: "evt-unsub",
	}))

	// Give delivery a moment; nothing should arrive on an UNLISTENed
	// channel from this pod's listener.
	select {
	case nudge := <-ch:
		var p WebhookProcessedPayload
		if json.Unmarshal(nudge.Payload, &p) == nil && p.WebhookEventID == "evt-unsub" {
			t.Fatal("received a nudge after UNLISTEN")
		}
	case <-time.After(500 * time.Millisecond):
	}
}
