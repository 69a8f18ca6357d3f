package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/ent/webhookevent"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/signing"
)

// seedDeployment creates a recording with a scheduled bot deployment,
// bypassing rule evaluation.
func (env *testEnv) seedDeployment(t *testing.T, orgID string) (recID, botID string) {
	t.Helper()
	ctx := context.Background()

	rec, err := env.recordings.Create(ctx, models.CreateRecordingRequest{
		OrgID:           orgID,
		UserID:          "user-1",
		MeetingPlatform: "zoom",
		MeetingURL:      "https://zoom.us/j/" + uuid.New().String()[:8],
	})
	require.NoError(t, err)

	botID = "bot-" + uuid.New().String()
	_, err = env.deployments.Create(ctx, models.CreateBotDeploymentRequest{
		OrgID:             orgID,
		RecordingID:       rec.ID,
		BotID:             botID,
		ScheduledJoinTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return rec.ID, botID
}

func marshalPayload(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return raw
}

func recorderStatusPayload(eventID, botID, status string) map[string]any {
	return map[string]any{
		"event":    "bot.status_change",
		"event_id": eventID,
		"data": map[string]any{
			"bot_id": botID,
			"status": map[string]any{
				"code":       status,
				"created_at": float64(time.Now().Unix()),
			},
		},
	}
}

func TestRecorderWebhookRejections(t *testing.T) {
	env := newTestEnv(t, nil)
	raw := marshalPayload(t, recorderStatusPayload("evt-rej-1", "bot-x", "joining"))

	t.Run("missing signature", func(t *testing.T) {
		w := env.post(t, "/webhooks/meeting-recorder", raw)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "unauthorized", body["kind"])
		assert.Contains(t, body["error"], "signature verification failed")
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder("wrong-secret", raw))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signature over a different body", func(t *testing.T) {
		other := marshalPayload(t, recorderStatusPayload("evt-rej-2", "bot-y", "joining"))
		w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, other))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		ts := strconv.FormatInt(time.Now().Add(-6*time.Minute).Unix(), 10)
		mac := signing.Sign(testRecorderSecret, []byte(ts+":"+string(raw)))

		w := env.post(t, "/webhooks/meeting-recorder", raw, func(req *http.Request) {
			req.Header.Set("svix-timestamp", ts)
			req.Header.Set("svix-signature", "v1="+mac)
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("alternate signature header is accepted", func(t *testing.T) {
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		mac := signing.Sign(testRecorderSecret, []byte(ts+":"+string(raw)))

		w := env.post(t, "/webhooks/meeting-recorder?org=org-alt", raw, func(req *http.Request) {
			req.Header.Set("svix-timestamp", ts)
			req.Header.Set("x-provider-signature", "v1="+mac)
		})
		// Signature passes; the unknown bot is the handler's problem.
		assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := []byte(`{"event": "bot.status_change",`)
		w := env.post(t, "/webhooks/meeting-recorder", bad, signedRecorder(testRecorderSecret, bad))

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "not valid JSON")
	})

	t.Run("missing event discriminator", func(t *testing.T) {
		bad := marshalPayload(t, map[string]any{"data": map[string]any{}})
		w := env.post(t, "/webhooks/meeting-recorder", bad, signedRecorder(testRecorderSecret, bad))

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "missing event discriminator")
	})

	t.Run("oversized body", func(t *testing.T) {
		huge := make([]byte, maxWebhookBody+1)
		for i := range huge {
			huge[i] = 'a'
		}
		w := env.post(t, "/webhooks/meeting-recorder", huge, signedRecorder(testRecorderSecret, huge))

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "exceeds")
	})
}

func TestRecorderWebhookUnconfiguredSecret(t *testing.T) {
	cfg := testConfig()
	cfg.App.MeetingRecorderWebhookSecret = ""
	env := newTestEnv(t, cfg)

	raw := marshalPayload(t, recorderStatusPayload("evt-nosecret", "bot-x", "joining"))
	w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder("anything", raw))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "not configured for this source")
}

func TestRecorderWebhook(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	t.Run("status change drives the deployment", func(t *testing.T) {
		_, botID := env.seedDeployment(t, "org-rec")

		raw := marshalPayload(t, recorderStatusPayload("evt-live-1", botID, "in_call_recording"))
		w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, raw))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])

		dep, err := env.deployments.GetByBotID(ctx, botID)
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusInMeeting, dep.Status)

		row, err := env.webhookEvents.Get(ctx, body["event_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusProcessed, row.Status)
		require.NotNil(t, row.OrgID)
		assert.Equal(t, "org-rec", *row.OrgID)
	})

	t.Run("replayed delivery is acknowledged without reprocessing", func(t *testing.T) {
		_, botID := env.seedDeployment(t, "org-rec")

		raw := marshalPayload(t, recorderStatusPayload("evt-dup", botID, "joining"))
		first := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, raw))
		require.Equal(t, http.StatusOK, first.Code)

		second := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, raw))
		require.Equal(t, http.StatusOK, second.Code)
		body := decodeBody(t, second)
		assert.Equal(t, true, body["deduplicated"])
		assert.Equal(t, decodeBody(t, first)["event_id"], body["event_id"])
	})

	t.Run("terminal deployment acknowledges late events as ignored", func(t *testing.T) {
		_, botID := env.seedDeployment(t, "org-rec")

		done := marshalPayload(t, recorderStatusPayload("evt-term-1", botID, "done"))
		w := env.post(t, "/webhooks/meeting-recorder", done, signedRecorder(testRecorderSecret, done))
		require.Equal(t, http.StatusOK, w.Code)

		late := marshalPayload(t, recorderStatusPayload("evt-term-2", botID, "joining"))
		w = env.post(t, "/webhooks/meeting-recorder", late, signedRecorder(testRecorderSecret, late))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ignored", body["status"])
		assert.Equal(t, "deployment already in a terminal state", body["reason"])
	})

	t.Run("unknown provider status is reported not failed", func(t *testing.T) {
		_, botID := env.seedDeployment(t, "org-rec")

		raw := marshalPayload(t, recorderStatusPayload("evt-odd", botID, "celebrating"))
		w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ignored", body["status"])
		assert.Equal(t, "unhandled bot status: celebrating", body["reason"])
	})

	t.Run("unhandled event kind is ignored", func(t *testing.T) {
		raw := marshalPayload(t, map[string]any{
			"event":    "bot.birthday",
			"event_id": "evt-kind",
			"data":     map[string]any{"bot_id": "bot-any"},
		})
		w := env.post(t, "/webhooks/meeting-recorder?org=org-rec", raw, signedRecorder(testRecorderSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ignored", body["status"])
		assert.Equal(t, "unhandled event type: bot.birthday", body["reason"])
	})

	t.Run("unresolved tenant is rejected and the row kept", func(t *testing.T) {
		raw := marshalPayload(t, recorderStatusPayload("evt-orphan", "bot-never-seen", "joining"))
		w := env.post(t, "/webhooks/meeting-recorder", raw, signedRecorder(testRecorderSecret, raw))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "no tenant for this delivery")

		row, err := env.webhookEvents.GetByExternalID(ctx, "meeting_recorder", "evt-orphan")
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusIgnored, row.Status)
	})
}

func TestMeetingsWebhook(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	env.seedMember(t, "org-meet", "seller", "member")

	summaryPayload := func(eventID, topic string) map[string]any {
		return map[string]any{
			"topic":         topic,
			"id":            eventID,
			"meeting_title": "Acme discovery",
			"recorded_by":   "seller@example.com",
			"transcript":    "we discussed pricing",
			"summary":       "good call",
			"contacts": []any{
				map[string]any{"name": "Pat", "email": "pat@acme.com", "role": "buyer"},
			},
		}
	}

	t.Run("summary starts the follow-up sequence for the owner", func(t *testing.T) {
		raw := marshalPayload(t, summaryPayload("meet-evt-1", "meeting.summary"))
		w := env.post(t, "/webhooks/meetings", raw, signedShared(testMeetingsSecret, raw))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "ok", decodeBody(t, w)["status"])

		resp, err := env.executions.List(ctx, models.SequenceExecutionFilters{
			OrgID:       "org-meet",
			SequenceKey: "meeting_followup",
		})
		require.NoError(t, err)
		require.Len(t, resp.Executions, 1)
		exec := resp.Executions[0]
		assert.Equal(t, "seller", exec.UserID)
		assert.Equal(t, "we discussed pricing", exec.InputTrigger["transcript"])
		assert.Equal(t, "pat@acme.com", exec.InputContext["recipient_email"])

		// The template-only sequence finishes in the background.
		require.Eventually(t, func() bool {
			got, err := env.executions.Get(ctx, exec.ID)
			return err == nil && got.Status == sequenceexecution.StatusCompleted
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("no-show starts the reschedule sequence", func(t *testing.T) {
		raw := marshalPayload(t, summaryPayload("meet-evt-2", "meeting.no_show"))
		w := env.post(t, "/webhooks/meetings", raw, signedShared(testMeetingsSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)

		resp, err := env.executions.List(ctx, models.SequenceExecutionFilters{
			OrgID:       "org-meet",
			SequenceKey: "no_show_followup",
		})
		require.NoError(t, err)
		require.Len(t, resp.Executions, 1)

		require.Eventually(t, func() bool {
			got, err := env.executions.Get(ctx, resp.Executions[0].ID)
			return err == nil && got.Status == sequenceexecution.StatusCompleted
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("org token without a resolvable user is ignored", func(t *testing.T) {
		payload := summaryPayload("meet-evt-3", "meeting.summary")
		payload["recorded_by"] = "stranger@example.com"
		raw := marshalPayload(t, payload)

		w := env.post(t, "/webhooks/meetings?org=org-meet", raw, signedShared(testMeetingsSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ignored", body["status"])
		assert.Equal(t, "no user resolved for follow-up sequence", body["reason"])
	})

	t.Run("unhandled topic is ignored", func(t *testing.T) {
		raw := marshalPayload(t, summaryPayload("meet-evt-4", "meeting.started"))
		w := env.post(t, "/webhooks/meetings", raw, signedShared(testMeetingsSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "unhandled topic: meeting.started", body["reason"])
	})

	t.Run("unknown tenant is rejected", func(t *testing.T) {
		payload := summaryPayload("meet-evt-5", "meeting.summary")
		payload["recorded_by"] = "nobody@nowhere.example"
		raw := marshalPayload(t, payload)

		w := env.post(t, "/webhooks/meetings", raw, signedShared(testMeetingsSecret, raw))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStripeWebhook(t *testing.T) {
	env := newTestEnv(t, nil)

	subscriptionPayload := func(eventID, eventType string) map[string]any {
		return map[string]any{
			"id":   eventID,
			"type": eventType,
			"data": map[string]any{
				"object": map[string]any{
					"id":       "sub_123",
					"customer": "cus_456",
					"status":   "active",
					"metadata": map[string]any{"org_id": "org-billing"},
				},
			},
		}
	}

	t.Run("subscription lifecycle is recorded", func(t *testing.T) {
		raw := marshalPayload(t, subscriptionPayload("stripe-evt-1", "customer.subscription.updated"))
		w := env.post(t, "/webhooks/stripe", raw, signedStripe(testStripeSecret, raw))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])

		row, err := env.webhookEvents.Get(context.Background(), body["event_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, webhookevent.StatusProcessed, row.Status)
		require.NotNil(t, row.OrgID)
		assert.Equal(t, "org-billing", *row.OrgID)
	})

	t.Run("unrecognized type is ignored", func(t *testing.T) {
		raw := marshalPayload(t, subscriptionPayload("stripe-evt-2", "charge.refunded"))
		w := env.post(t, "/webhooks/stripe", raw, signedStripe(testStripeSecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "unhandled event type: charge.refunded", body["reason"])
	})

	t.Run("missing org metadata is rejected", func(t *testing.T) {
		payload := subscriptionPayload("stripe-evt-3", "customer.subscription.updated")
		payload["data"].(map[string]any)["object"].(map[string]any)["metadata"] = map[string]any{}
		raw := marshalPayload(t, payload)

		w := env.post(t, "/webhooks/stripe", raw, signedStripe(testStripeSecret, raw))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "stamp org_id into the subscription metadata")
	})

	t.Run("stripe scheme signature is required", func(t *testing.T) {
		raw := marshalPayload(t, subscriptionPayload("stripe-evt-4", "customer.subscription.updated"))
		w := env.post(t, "/webhooks/stripe", raw, signedShared(testStripeSecret, raw))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSentryWebhook(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	errorPayload := func(eventID, level string) map[string]any {
		return map[string]any{
			"event_id":    eventID,
			"org_id":      "org-errors",
			"project":     "storefront",
			"environment": "production",
			"release":     "storefront@1.4.2",
			"level":       level,
			"title":       "TypeError: cart is undefined",
			"url":         "https://sentry.example.com/issues/1",
		}
	}

	t.Run("no routing rule matched is ignored", func(t *testing.T) {
		raw := marshalPayload(t, errorPayload("sentry-evt-0", "error"))
		w := env.post(t, "/webhooks/sentry-bridge", raw, signedShared(testSentrySecret, raw))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "no routing rule matched", body["reason"])
	})

	t.Run("routed error alerts the best-ranked member", func(t *testing.T) {
		env.seedMember(t, "org-errors", "eng-member", "member")
		env.seedMember(t, "org-errors", "eng-owner", "owner")

		_, err := env.rules.CreateRoutingRule(ctx, models.CreateRoutingRuleRequest{
			OrgID:      "org-errors",
			Name:       "production errors",
			Priority:   10,
			MatchLevel: "error",
			Target:     &models.TicketTarget{ProjectID: "proj-infra", Priority: "high"},
		})
		require.NoError(t, err)

		raw := marshalPayload(t, errorPayload("sentry-evt-1", "error"))
		w := env.post(t, "/webhooks/sentry-bridge", raw, signedShared(testSentrySecret, raw))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "ok", decodeBody(t, w)["status"])

		resp, err := env.notifications.List(ctx, models.NotificationFilters{OrgID: "org-errors"})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		item := resp.Items[0]
		assert.Equal(t, "eng-owner", item.UserID)
		assert.Equal(t, "error_ticket", item.NotificationType)
	})

	t.Run("level mismatch falls through the rule", func(t *testing.T) {
		raw := marshalPayload(t, errorPayload("sentry-evt-2", "warning"))
		w := env.post(t, "/webhooks/sentry-bridge", raw, signedShared(testSentrySecret, raw))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no routing rule matched", decodeBody(t, w)["reason"])
	})
}
