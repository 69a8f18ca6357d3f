package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/models"
)

// TestWebhookRejectsBadDeliveries covers the verification edge of the
// ingest pipeline: failed verification answers 401 and leaves no trace
// in the delivery log.
func TestWebhookRejectsBadDeliveries(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	body := mustJSON(t, map[string]any{
		"event":    "bot.status_change",
		"event_id": "evt-reject-1",
		"data":     map[string]any{"bot_id": "bot-x", "status": map[string]any{"code": "in_call_recording"}},
	})

	t.Run("wrong secret", func(t *testing.T) {
		status, resp := app.postWebhook("/webhooks/meeting-recorder",
			recorderHeaders("whsec-not-ours", time.Now(), body), body)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "unauthorized", resp["kind"])
	})

	t.Run("stale timestamp", func(t *testing.T) {
		status, _ := app.postWebhook("/webhooks/meeting-recorder",
			recorderHeaders(testRecorderSecret, time.Now().Add(-301*time.Second), body), body)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("missing signature header", func(t *testing.T) {
		status, _ := app.postWebhook("/webhooks/meeting-recorder",
			map[string]string{"svix-timestamp": "1700000000"}, body)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("tampered body", func(t *testing.T) {
		headers := recorderHeaders(testRecorderSecret, time.Now(), body)
		tampered := append([]byte{}, body...)
		tampered[len(tampered)-2] = '!'
		status, _ := app.postWebhook("/webhooks/meeting-recorder", headers, tampered)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	count, err := app.Ent.WebhookEvent.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count, "rejected deliveries must not create event rows")
}

// TestWebhookReplayIsDeduplicated replays the same delivery id and
// expects a 200 acknowledgement pointing at the original row, with no
// second row written.
func TestWebhookReplayIsDeduplicated(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	payload := map[string]any{
		"event":    "some.future.event",
		"event_id": "evt-replay-1",
		"data":     map[string]any{"bot_id": "bot-replay"},
	}

	status, first := app.postRecorderEvent("?org=org-replay", payload)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ignored", first["status"])
	require.Equal(t, "unhandled event type: some.future.event", first["reason"])
	eventID := getString(t, first, "event_id")

	status, second := app.postRecorderEvent("?org=org-replay", payload)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, second["deduplicated"])
	require.Equal(t, eventID, second["event_id"], "replay must acknowledge the original row")

	count, err := app.Ent.WebhookEvent.Query().
		Where(webhookevent.SourceEQ("meeting_recorder")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// TestRecorderWebhookUnresolvedTenant delivers a valid event that maps
// to no known bot, recording, or org token. The delivery is kept as
// ignored and the provider gets a 401 with a configuration hint.
func TestRecorderWebhookUnresolvedTenant(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	status, resp := app.postRecorderEvent("", map[string]any{
		"event":    "bot.status_change",
		"event_id": "evt-orphan-1",
		"data":     map[string]any{"bot_id": "bot-orphan", "status": map[string]any{"code": "in_call_recording"}},
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Contains(t, resp["error"], "include an org token")

	row, err := app.Ent.WebhookEvent.Query().
		Where(webhookevent.SourceEQ("meeting_recorder")).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, webhookevent.StatusIgnored, row.Status)
	require.NotNil(t, row.ErrorMessage)
	require.Equal(t, "no tenant resolved", *row.ErrorMessage)
}

// TestStripeWebhookLifecycle exercises the billing source end to end:
// Stripe's t=...,v1=... signature scheme, tenant resolution from
// subscription metadata, and the recognized/unhandled event split.
func TestStripeWebhookLifecycle(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	subscriptionUpdated := map[string]any{
		"id":   "evt_sub_1",
		"type": "customer.subscription.updated",
		"data": map[string]any{
			"object": map[string]any{
				"id":       "sub_1",
				"customer": "cus_1",
				"status":   "active",
				"metadata": map[string]any{"org_id": "org-billing"},
			},
		},
	}

	status, resp := app.postStripeEvent("", subscriptionUpdated)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	row, err := app.Ent.WebhookEvent.Get(ctx, getString(t, resp, "event_id"))
	require.NoError(t, err)
	require.Equal(t, "stripe", row.Source)
	require.Equal(t, "customer.subscription.updated", row.EventType)
	require.Equal(t, webhookevent.StatusProcessed, row.Status)
	require.NotNil(t, row.OrgID)
	require.Equal(t, "org-billing", *row.OrgID)

	t.Run("unrecognized event type is ignored", func(t *testing.T) {
		status, resp := app.postStripeEvent("", map[string]any{
			"id":   "evt_other_1",
			"type": "invoice.created",
			"data": map[string]any{"object": map[string]any{
				"id":       "in_1",
				"metadata": map[string]any{"org_id": "org-billing"},
			}},
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ignored", resp["status"])
		require.Equal(t, "unhandled event type: invoice.created", resp["reason"])
	})

	t.Run("missing tenant metadata rejects", func(t *testing.T) {
		status, resp := app.postStripeEvent("", map[string]any{
			"id":   "evt_no_org_1",
			"type": "customer.subscription.deleted",
			"data": map[string]any{"object": map[string]any{"id": "sub_2"}},
		})
		require.Equal(t, http.StatusUnauthorized, status)
		require.Contains(t, resp["error"], "org_id")
	})
}

// TestSentryWebhookRoutesErrors seeds an org with members and a routing
// rule, then delivers an error event through the bridge. A match should
// alert the org's highest-ranked member in-app with the ticket target.
func TestSentryWebhookRoutesErrors(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	orgID := "org-sentry"

	app.upsertMember(orgID, "user-dev", "member", "dev@sentry.test", "")
	app.upsertMember(orgID, "user-lead", "admin", "lead@sentry.test", "")
	app.createRoutingRule(models.CreateRoutingRuleRequest{
		OrgID:            orgID,
		Name:             "production errors",
		Priority:         10,
		MatchLevel:       "error",
		MatchEnvironment: "production",
		Target:           &models.TicketTarget{ProjectID: "PLAT", Priority: "high"},
	})

	status, resp := app.postSentryEvent("?org="+orgID, map[string]any{
		"event_id":    "sentry-evt-1",
		"project":     "api",
		"environment": "production",
		"release":     "1.42.0",
		"level":       "error",
		"title":       "connection refused: db-primary:5432",
		"url":         "https://errors.example.com/issues/9001",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", resp["status"])

	item, err := app.Ent.NotificationQueueItem.Query().
		Where(notificationqueueitem.OrgIDEQ(orgID)).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, "user-lead", item.UserID, "alert goes to the highest-ranked member")
	require.Equal(t, "error_ticket", item.NotificationType)
	require.Equal(t, notificationqueueitem.ChannelInApp, item.Channel)
	require.Equal(t, notificationqueueitem.PriorityHigh, item.Priority)
	require.Equal(t, "Error routed to PLAT", item.Payload["title"])
	require.Equal(t, "connection refused: db-primary:5432", item.Payload["text"])

	t.Run("unmatched level is dropped", func(t *testing.T) {
		status, resp := app.postSentryEvent("?org="+orgID, map[string]any{
			"event_id":    "sentry-evt-2",
			"project":     "api",
			"environment": "production",
			"level":       "info",
			"title":       "deploy finished",
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ignored", resp["status"])
		require.Equal(t, "no routing rule matched", resp["reason"])
	})

	t.Run("test mode rule claims without alerting", func(t *testing.T) {
		app.createRoutingRule(models.CreateRoutingRuleRequest{
			OrgID:      orgID,
			Name:       "staging dry run",
			Priority:   5,
			TestMode:   true,
			MatchLevel: "warning",
			Target:     &models.TicketTarget{ProjectID: "OPS", Priority: "low"},
		})

		status, resp := app.postSentryEvent("?org="+orgID, map[string]any{
			"event_id": "sentry-evt-3",
			"project":  "api",
			"level":    "warning",
			"title":    "slow query",
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ok", resp["status"])

		count, err := app.Ent.NotificationQueueItem.Query().
			Where(notificationqueueitem.OrgIDEQ(orgID)).
			Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count, "test-mode match must not enqueue an alert")
	})
}

// TestMeetingsWebhookSignatureScheme verifies the meetings source uses
// the shared X-Webhook-* scheme and ignores topics outside its map.
func TestMeetingsWebhookSignatureScheme(t *testing.T) {
	app := NewTestApp(t)

	payload := map[string]any{
		"topic":    "meeting.renamed",
		"event_id": "meet-evt-1",
		"title":    "Renamed sync",
	}
	body := mustJSON(t, payload)

	status, _ := app.postWebhook("/webhooks/meetings",
		recorderHeaders(testMeetingsSecret, time.Now(), body), body)
	require.Equal(t, http.StatusUnauthorized, status,
		"svix-style headers must not satisfy the shared scheme")

	status, resp := app.postMeetingsEvent("?org=org-meet", payload)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ignored", resp["status"])
	require.Equal(t, "unhandled topic: meeting.renamed", resp["reason"])
}
