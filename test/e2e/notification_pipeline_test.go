package e2e

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
)

// clearDeliveryLedger removes a user's interaction rows so the
// frequency gate reopens. Tests use it between deliveries that would
// otherwise sit out a cooldown.
func clearDeliveryLedger(t *testing.T, app *TestApp, userID string) {
	t.Helper()
	_, err := app.Ent.NotificationInteraction.Delete().
		Where(notificationinteraction.UserIDEQ(userID)).
		Exec(context.Background())
	require.NoError(t, err)
}

// TestInAppDeliveryAndInboxFlow pushes a notification through the queue
// into the in-app feed and exercises the read/engagement surface.
func TestInAppDeliveryAndInboxFlow(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-inbox"
	userID := "user-inbox"
	app.upsertMember(orgID, userID, "member", "inbox@cadenza.test", "")

	itemID := app.enqueueNotification(models.EnqueueNotificationRequest{
		UserID:           userID,
		OrgID:            orgID,
		NotificationType: "deal_alert",
		Channel:          "in_app",
		Priority:         "normal",
		Payload: &models.NotificationPayload{
			Title:   "Deal moved to negotiation",
			Text:    "Acme Corp moved stages after the pricing call.",
			LinkURL: "https://dashboard.cadenza.test/deals/42",
		},
	})

	tick := app.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, tick, "claimed"))
	require.Equal(t, 1, cronStat(t, tick, "sent"))

	row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, notificationqueueitem.StatusSent, row.Status)
	require.NotNil(t, row.SentAt)

	var inbox map[string]any
	status := app.getJSONAs(userID, "/api/v1/inbox", &inbox)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(1), inbox["total_count"])
	require.Equal(t, float64(1), inbox["unread_count"])

	items, ok := inbox["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	entry := items[0].(map[string]any)
	require.Equal(t, "Deal moved to negotiation", entry["title"])
	require.Equal(t, "deal_alert", entry["notification_type"])
	require.Nil(t, entry["read_at"])

	t.Run("service role reads any feed but must name it", func(t *testing.T) {
		status, _ := app.doRequest(http.MethodGet, "/api/v1/inbox", serviceHeaders(), nil)
		require.Equal(t, http.StatusBadRequest, status)

		var viaService map[string]any
		status = app.getJSON("/api/v1/inbox?user_id="+userID, &viaService)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, float64(1), viaService["unread_count"])
	})

	t.Run("users cannot read each other's feeds", func(t *testing.T) {
		status, _ := app.doRequest(http.MethodGet, "/api/v1/inbox?user_id="+userID,
			userHeaders("user-nosy"), nil)
		require.Equal(t, http.StatusForbidden, status)
	})

	// The send left a delivery ledger row; engagement marks land on it.
	interaction, err := app.Ent.NotificationInteraction.Query().
		Where(notificationinteraction.UserIDEQ(userID)).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, "in_app", interaction.DeliveredVia)
	require.Equal(t, "normal", interaction.Priority)

	t.Run("clicked implies opened", func(t *testing.T) {
		var engagement map[string]any
		status := app.postJSONAs(userID, "/api/v1/notifications/interactions",
			models.InteractionRequest{InteractionID: interaction.ID, Kind: "clicked"}, &engagement)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, engagement["clicked_at"])
		require.NotNil(t, engagement["opened_at"])
	})

	t.Run("engagement is owner-only", func(t *testing.T) {
		status, _ := app.doRequest(http.MethodPost, "/api/v1/notifications/interactions",
			userHeaders("user-nosy"),
			mustJSON(t, models.InteractionRequest{InteractionID: interaction.ID, Kind: "opened"}))
		require.Equal(t, http.StatusForbidden, status)
	})

	entryID := getString(t, entry, "id")
	var read map[string]any
	status = app.postJSONAs(userID, "/api/v1/inbox/"+entryID+"/read", nil, &read)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, read["read_at"])

	status = app.getJSONAs(userID, "/api/v1/inbox?unread_only=true", &inbox)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(0), inbox["unread_count"])
	require.Empty(t, inbox["items"])

	t.Run("read-all clears the badge", func(t *testing.T) {
		for i, title := range []string{"Weekly digest", "New teammate joined"} {
			clearDeliveryLedger(t, app, userID)
			app.enqueueNotification(models.EnqueueNotificationRequest{
				UserID:           userID,
				OrgID:            orgID,
				NotificationType: "digest",
				Channel:          "in_app",
				Priority:         "normal",
				Payload:          &models.NotificationPayload{Title: title, Text: "…"},
			})
			tick := app.cronTick("notifications")
			require.Equal(t, 1, cronStat(t, tick, "sent"), "delivery %d", i+1)
		}

		var marked map[string]any
		status := app.postJSONAs(userID, "/api/v1/inbox/read-all", nil, &marked)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, float64(2), marked["marked_read"])

		status = app.getJSONAs(userID, "/api/v1/inbox", &inbox)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, float64(0), inbox["unread_count"])
		require.Equal(t, float64(3), inbox["total_count"])
	})
}

// TestSlackDMDelivery drives the slack_dm channel through the stored
// workspace installation, including the retry path on API failures.
func TestSlackDMDelivery(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		// Failed attempts become due again immediately.
		cfg.Notifications.RetryBackoff = 0
	}))
	ctx := context.Background()

	orgID := "org-slack"
	app.linkSlackWorkspace(orgID, "T0E2E", "xoxb-e2e-token")
	app.upsertMember(orgID, "user-dm", "member", "dm@slack.test", "U0DM")

	app.enqueueNotification(models.EnqueueNotificationRequest{
		UserID:           "user-dm",
		OrgID:            orgID,
		NotificationType: "deal_alert",
		Channel:          "slack_dm",
		Priority:         "high",
		Payload: &models.NotificationPayload{
			Title:   "Contract signed",
			Text:    "Acme Corp signed the order form.",
			LinkURL: "https://dashboard.cadenza.test/deals/42",
		},
	})

	tick := app.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, tick, "sent"))

	dms := app.Slack.DMs()
	require.Len(t, dms, 1)
	require.Equal(t, "xoxb-e2e-token", dms[0].BotToken, "client must use the workspace's stored token")
	require.Equal(t, "U0DM", dms[0].UserID)
	require.Equal(t, "Acme Corp signed the order form.", dms[0].Text)
	require.NotEmpty(t, dms[0].Blocks)

	interaction, err := app.Ent.NotificationInteraction.Query().
		Where(notificationinteraction.UserIDEQ("user-dm")).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, "slack_dm", interaction.DeliveredVia)

	t.Run("api failure is charged and retried", func(t *testing.T) {
		app.upsertMember(orgID, "user-dm2", "member", "dm2@slack.test", "U0D2")
		app.Slack.Fail(errors.New("slack: rate_limited"))

		itemID := app.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           "user-dm2",
			OrgID:            orgID,
			NotificationType: "deal_alert",
			Channel:          "slack_dm",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Hello", Text: "First try."},
		})

		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "retried"))

		row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusPending, row.Status)
		require.Equal(t, 1, row.AttemptCount)
		require.NotNil(t, row.LastError)
		require.Contains(t, *row.LastError, "rate_limited")

		app.Slack.Fail(nil)
		tick = app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "sent"))

		row, err = app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusSent, row.Status)
	})

	t.Run("missing slack link fails the attempt", func(t *testing.T) {
		app.upsertMember(orgID, "user-nolink", "member", "nolink@slack.test", "")

		itemID := app.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           "user-nolink",
			OrgID:            orgID,
			NotificationType: "deal_alert",
			Channel:          "slack_dm",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Hello", Text: "No account."},
		})

		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "retried"))

		row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.NotNil(t, row.LastError)
		require.Contains(t, *row.LastError, "no linked Slack account")
	})
}

// TestFrequencyGate seeds delivery history and checks each gate
// outcome: a cap hit that downgrades into a quieter bucket, a hard
// delay with the reopen time, the urgent bypass, and fatigue-scaled
// cooldowns.
func TestFrequencyGate(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	orgID := "org-gate"

	enqueue := func(t *testing.T, userID, priority string) string {
		t.Helper()
		return app.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           userID,
			OrgID:            orgID,
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         priority,
			Payload:          &models.NotificationPayload{Title: "Gate check", Text: "…"},
		})
	}

	t.Run("daily cap downgrades into a quieter bucket", func(t *testing.T) {
		userID := "user-cap"
		app.upsertMember(orgID, userID, "member", "cap@gate.test", "")

		// Eight normal-priority sends today, none in the last hour: the
		// moderate daily cap (8) is spent, the hourly one is not.
		for i := 0; i < 8; i++ {
			app.deliveredInteraction(orgID, userID, "deal_alert", "normal",
				time.Now().Add(-time.Duration(2+i)*time.Hour))
		}

		itemID := enqueue(t, userID, "normal")
		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "downgraded"))
		require.Equal(t, 1, cronStat(t, tick, "sent"))
		require.Zero(t, cronStat(t, tick, "delayed"))

		row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusSent, row.Status)
		require.Equal(t, notificationqueueitem.PriorityLow, row.Priority)

		// The ledger records the bucket the send actually used.
		sent, err := app.Ent.NotificationInteraction.Query().
			Where(
				notificationinteraction.UserIDEQ(userID),
				notificationinteraction.PriorityEQ("low"),
			).
			Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, sent)
	})

	t.Run("hourly cap with a hot cooldown delays", func(t *testing.T) {
		userID := "user-delay"
		app.upsertMember(orgID, userID, "member", "delay@gate.test", "")

		// Two normal sends inside the hour: hourly cap (2) spent, and the
		// last delivery 10 minutes ago keeps the low-bucket cooldown hot,
		// so the downgrade recheck is blocked too.
		app.deliveredInteraction(orgID, userID, "deal_alert", "normal", time.Now().Add(-20*time.Minute))
		app.deliveredInteraction(orgID, userID, "deal_alert", "normal", time.Now().Add(-10*time.Minute))

		itemID := enqueue(t, userID, "normal")
		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "delayed"))
		require.Zero(t, cronStat(t, tick, "downgraded"))
		require.Zero(t, cronStat(t, tick, "sent"))

		row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusDelayed, row.Status)
		require.Equal(t, notificationqueueitem.PriorityNormal, row.Priority, "a blocked downgrade does not stick")
		require.NotNil(t, row.NextAllowedAt)

		// Low cooldown is 60m and the last delivery was 10m ago, so the
		// gate reopens about 50 minutes out.
		require.WithinDuration(t, time.Now().Add(50*time.Minute), *row.NextAllowedAt, 2*time.Minute)

		t.Run("promoted once the gate reopens", func(t *testing.T) {
			clearDeliveryLedger(t, app, userID)
			err := app.Ent.NotificationQueueItem.UpdateOneID(itemID).
				SetNextAllowedAt(time.Now().Add(-time.Second)).
				Exec(ctx)
			require.NoError(t, err)

			tick := app.cronTick("notifications")
			require.Equal(t, 1, cronStat(t, tick, "promoted"))
			require.Equal(t, 1, cronStat(t, tick, "sent"))
		})
	})

	t.Run("urgent bypasses the hourly cap", func(t *testing.T) {
		userID := "user-urgent"
		app.upsertMember(orgID, userID, "member", "urgent@gate.test", "")

		app.deliveredInteraction(orgID, userID, "deal_alert", "normal", time.Now().Add(-50*time.Minute))
		app.deliveredInteraction(orgID, userID, "deal_alert", "normal", time.Now().Add(-6*time.Minute))

		urgentID := enqueue(t, userID, "urgent")
		normalID := enqueue(t, userID, "normal")

		tick := app.cronTick("notifications")
		require.Equal(t, 2, cronStat(t, tick, "claimed"))
		require.Equal(t, 1, cronStat(t, tick, "sent"))
		require.Equal(t, 1, cronStat(t, tick, "delayed"))

		urgent, err := app.Ent.NotificationQueueItem.Get(ctx, urgentID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusSent, urgent.Status,
			"urgent ignores the hourly cap and its 5m cooldown has elapsed")

		normal, err := app.Ent.NotificationQueueItem.Get(ctx, normalID)
		require.NoError(t, err)
		require.Equal(t, notificationqueueitem.StatusDelayed, normal.Status)
	})

	t.Run("fatigue stretches cooldowns", func(t *testing.T) {
		userID := "user-tired"
		app.upsertMember(orgID, userID, "member", "tired@gate.test", "")

		metrics, err := app.UserMetrics.GetOrCreate(ctx, userID, orgID)
		require.NoError(t, err)
		err = app.Ent.UserMetrics.UpdateOneID(metrics.ID).
			SetNotificationFatigueLevel(40). // 2x multiplier band
			Exec(ctx)
		require.NoError(t, err)

		// One delivery 45m ago: under the hourly cap, but the doubled
		// normal cooldown (60m) is still hot, and so is the doubled low
		// cooldown (120m) on the downgrade recheck.
		app.deliveredInteraction(orgID, userID, "deal_alert", "normal", time.Now().Add(-45*time.Minute))

		itemID := enqueue(t, userID, "normal")
		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "delayed"))

		row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
		require.NoError(t, err)
		require.NotNil(t, row.NextAllowedAt)
		require.WithinDuration(t, time.Now().Add(75*time.Minute), *row.NextAllowedAt, 2*time.Minute)
	})
}

// TestOptimalSendTimeDeferral checks producer-supplied optimal send
// times hold deliveries back without burning attempts, and never hold
// urgent items.
func TestOptimalSendTimeDeferral(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-defer"
	app.upsertMember(orgID, "user-defer", "member", "defer@cadenza.test", "")

	optimal := time.Now().Add(45 * time.Minute)
	itemID := app.enqueueNotification(models.EnqueueNotificationRequest{
		UserID:           "user-defer",
		OrgID:            orgID,
		NotificationType: "digest",
		Channel:          "in_app",
		Priority:         "normal",
		Payload:          &models.NotificationPayload{Title: "Morning digest", Text: "…"},
		OptimalSendTime:  &optimal,
	})

	tick := app.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, tick, "deferred"))
	require.Zero(t, cronStat(t, tick, "sent"))

	row, err := app.Ent.NotificationQueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, notificationqueueitem.StatusPending, row.Status)
	require.Zero(t, row.AttemptCount, "a deferral is not an attempt")
	require.WithinDuration(t, optimal, row.ScheduledFor, time.Second)

	// No longer due, so the next tick does not even claim it.
	tick = app.cronTick("notifications")
	require.Zero(t, cronStat(t, tick, "claimed"))

	t.Run("urgent ignores the optimal window", func(t *testing.T) {
		later := time.Now().Add(2 * time.Hour)
		app.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           "user-defer",
			OrgID:            orgID,
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "urgent",
			Payload:          &models.NotificationPayload{Title: "Champion went dark", Text: "…"},
			OptimalSendTime:  &later,
		})

		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "sent"))
		require.Zero(t, cronStat(t, tick, "deferred"))
	})
}

// TestFeedbackLoop walks the volume-tuning loop: enough deliveries
// trigger one feedback prompt, and a "less" answer quiets the user's
// preferred frequency and raises fatigue.
func TestFeedbackLoop(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	orgID := "org-fb"
	userID := "user-fb"
	app.upsertMember(orgID, userID, "member", "fb@cadenza.test", "")

	metrics, err := app.UserMetrics.GetOrCreate(ctx, userID, orgID)
	require.NoError(t, err)
	err = app.Ent.UserMetrics.UpdateOneID(metrics.ID).
		SetNotificationsSinceLastFeedback(9).
		Exec(ctx)
	require.NoError(t, err)

	enqueueAlert := func() {
		app.enqueueNotification(models.EnqueueNotificationRequest{
			UserID:           userID,
			OrgID:            orgID,
			NotificationType: "deal_alert",
			Channel:          "in_app",
			Priority:         "normal",
			Payload:          &models.NotificationPayload{Title: "Deal update", Text: "…"},
		})
	}

	// Tenth delivery crosses the threshold; the worker queues the prompt.
	enqueueAlert()
	tick := app.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, tick, "sent"))

	prompt, err := app.Ent.NotificationQueueItem.Query().
		Where(
			notificationqueueitem.UserIDEQ(userID),
			notificationqueueitem.NotificationTypeEQ("feedback_request"),
		).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, notificationqueueitem.ChannelInApp, prompt.Channel)
	require.Equal(t, notificationqueueitem.PriorityLow, prompt.Priority)

	fresh, err := app.UserMetrics.Get(ctx, userID, orgID)
	require.NoError(t, err)
	require.Zero(t, fresh.NotificationsSinceLastFeedback, "prompt resets the counter")
	require.NotNil(t, fresh.LastFeedbackRequestedAt)

	// Deliver the prompt itself.
	clearDeliveryLedger(t, app, userID)
	tick = app.cronTick("notifications")
	require.Equal(t, 1, cronStat(t, tick, "sent"))

	var inbox map[string]any
	status := app.getJSONAs(userID, "/api/v1/inbox", &inbox)
	require.Equal(t, http.StatusOK, status)
	items := inbox["items"].([]any)
	require.Len(t, items, 2)
	require.Equal(t, "How are we doing on notifications?", items[0].(map[string]any)["title"],
		"feed is newest-first")

	// The user asks for less.
	var adjusted map[string]any
	status = app.postJSONAs(userID, "/api/v1/notifications/feedback",
		models.FeedbackRequest{OrgID: orgID, Response: "less"}, &adjusted)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "low", adjusted["preferred_notification_frequency"])
	require.Equal(t, float64(30), adjusted["notification_fatigue_level"])

	t.Run("prompt does not repeat within the interval", func(t *testing.T) {
		err := app.Ent.UserMetrics.UpdateOneID(metrics.ID).
			SetNotificationsSinceLastFeedback(9).
			Exec(ctx)
		require.NoError(t, err)
		clearDeliveryLedger(t, app, userID)

		enqueueAlert()
		tick := app.cronTick("notifications")
		require.Equal(t, 1, cronStat(t, tick, "sent"))

		prompts, err := app.Ent.NotificationQueueItem.Query().
			Where(
				notificationqueueitem.UserIDEQ(userID),
				notificationqueueitem.NotificationTypeEQ("feedback_request"),
			).
			Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, prompts, "a recent request suppresses the next one")
	})

	t.Run("invalid response is rejected", func(t *testing.T) {
		status, _ := app.doRequest(http.MethodPost, "/api/v1/notifications/feedback",
			userHeaders(userID),
			mustJSON(t, models.FeedbackRequest{OrgID: orgID, Response: "shrug"}))
		require.Equal(t, http.StatusBadRequest, status)
	})
}
