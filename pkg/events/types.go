// Package events is the cross-pod nudge bus built on PostgreSQL
// NOTIFY/LISTEN. Publishers fire a notification after a domain write,
// each pod's listener picks it up on a dedicated connection, and the
// in-process Hub fans it out to subscribed workers so they wake ahead
// of their next timer tick.
//
// Delivery is advisory. A dropped notification costs latency, never
// correctness: every worker re-scans its queue tables on its own
// schedule regardless of nudges, and the Hub coalesces bursts into a
// single wakeup per subscriber.
package events

// Notification channels. One channel per worker family keeps the LISTEN
// registrations static for the life of the pod.
const (
	// ChannelWebhooks carries webhook ingest activity.
	ChannelWebhooks = "cadenza_webhooks"

	// ChannelRecordings carries recording lifecycle activity. The media
	// and transcript workers listen here so a freshly completed meeting
	// is fetched without waiting for the next cron tick.
	ChannelRecordings = "cadenza_recordings"

	// ChannelNotifications carries notification queue activity. The
	// dispatch worker listens here so urgent items go out promptly.
	ChannelNotifications = "cadenza_notifications"
)

// Event types carried on the channels.
const (
	EventTypeWebhookProcessed     = "webhook.processed"
	EventTypeRecordingStatus      = "recording.status"
	EventTypeNotificationEnqueued = "notification.enqueued"
)
