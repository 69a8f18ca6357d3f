package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribeAndDispatch(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(ChannelRecordings)
	defer cancel()

	hub.Dispatch(ChannelRecordings, []byte(`{"type":"recording.status","recording_id":"rec-1"}`))

	select {
	case nudge := <-ch:
		assert.Equal(t, ChannelRecordings, nudge.Channel)
		assert.Equal(t, EventTypeRecordingStatus, nudge.Type)
		assert.Contains(t, string(nudge.Payload), "rec-1")
	default:
		t.Fatal("expected a pending nudge")
	}
}

func TestHubDispatchWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	// No subscribers on the channel — must not panic or block.
	hub.Dispatch(ChannelWebhooks, []byte(`{"type":"webhook.processed"}`))
	assert.Equal(t, 0, hub.SubscriberCount(ChannelWebhooks))
}

func TestHubCoalescesBursts(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(ChannelNotifications)
	defer cancel()

	hub.Dispatch(ChannelNotifications, []byte(`{"type":"notification.enqueued","notification_id":"n-1"}`))
	hub.Dispatch(ChannelNotifications, []byte(`{"type":"notification.enqueued","notification_id":"n-2"}`))
	hub.Dispatch(ChannelNotifications, []byte(`{"type":"notification.enqueued","notification_id":"n-3"}`))

	// The subscriber was not reading during the burst, so exactly one
	// nudge (the first) is pending.
	require.Len(t, ch, 1)
	nudge := <-ch
	assert.Contains(t, string(nudge.Payload), "n-1")
	assert.Empty(t, ch)
}

func TestHubFansOutToAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe(ChannelWebhooks)
	defer cancel1()
	ch2, cancel2 := hub.Subscribe(ChannelWebhooks)
	defer cancel2()

	assert.Equal(t, 2, hub.SubscriberCount(ChannelWebhooks))

	hub.Dispatch(ChannelWebhooks, []byte(`{"type":"webhook.processed","source":"calendar"}`))

	require.Len(t, ch1, 1)
	require.Len(t, ch2, 1)
	assert.Equal(t, EventTypeWebhookProcessed, (<-ch1).Type)
	assert.Equal(t, EventTypeWebhookProcessed, (<-ch2).Type)
}

func TestHubCancelRemovesWaiter(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(ChannelRecordings)
	cancel()

	assert.Equal(t, 0, hub.SubscriberCount(ChannelRecordings))

	hub.Dispatch(ChannelRecordings, []byte(`{"type":"recording.status"}`))
	assert.Empty(t, ch)

	// Cancelling twice is harmless.
	cancel()
}

func TestHubMalformedPayloadStillDelivers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(ChannelWebhooks)
	defer cancel()

	hub.Dispatch(ChannelWebhooks, []byte("not json"))

	require.Len(t, ch, 1)
	nudge := <-ch
	assert.Empty(t, nudge.Type)
	assert.Equal(t, []byte("not json"), nudge.Payload)
}
