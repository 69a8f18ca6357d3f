package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
)

func enqueueBody(userID, orgID string) map[string]any {
	return map[string]any{
		"user_id":           userID,
		"org_id":            orgID,
		"notification_type": "meeting_ready",
		"channel":           "in_app",
		"priority":          "normal",
		"payload": map[string]any{
			"title": "Recording ready",
			"text":  "Acme discovery is processed",
		},
	}
}

func TestEnqueueNotification(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-n", "user-n", "member")

	t.Run("service role enqueues", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications", enqueueBody("user-n", "org-n"), asService)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, "user-n", body["user_id"])
	})

	t.Run("users cannot enqueue", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications", enqueueBody("user-n", "org-n"), asUser("user-n"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing payload is rejected", func(t *testing.T) {
		body := enqueueBody("user-n", "org-n")
		delete(body, "payload")

		w := env.request(t, http.MethodPost, "/api/v1/notifications", body, asService)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid channel is rejected", func(t *testing.T) {
		body := enqueueBody("user-n", "org-n")
		body["channel"] = "carrier_pigeon"

		w := env.request(t, http.MethodPost, "/api/v1/notifications", body, asService)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "channel")
	})
}

func TestListNotifications(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-n", "user-n", "member")

	for i := 0; i < 3; i++ {
		w := env.request(t, http.MethodPost, "/api/v1/notifications", enqueueBody("user-n", "org-n"), asService)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("member lists the org queue", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/notifications?org_id=org-n", nil, asUser("user-n"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 3, body["total_count"])
	})

	t.Run("status filter narrows the list", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/notifications?org_id=org-n&status=sent", nil, asUser("user-n"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 0, body["total_count"])
	})
}

func TestNotificationFeedback(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-n", "user-n", "member")

	t.Run("user adjusts their own fatigue score", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications/feedback", map[string]any{
			"org_id":   "org-n",
			"response": "less",
		}, asUser("user-n"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "user-n", body["user_id"])
	})

	t.Run("answering for another user is forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications/feedback", map[string]any{
			"user_id":  "someone-else",
			"org_id":   "org-n",
			"response": "less",
		}, asUser("user-n"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service role answers on behalf of a user", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications/feedback", map[string]any{
			"user_id":  "user-n",
			"org_id":   "org-n",
			"response": "helpful",
		}, asService)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func seedInteraction(t *testing.T, env *testEnv, userID string) *ent.NotificationInteraction {
	t.Helper()
	interaction, err := env.db.NotificationInteraction.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID("org-n").
		SetNotificationType("meeting_ready").
		SetDeliveredAt(time.Now()).
		SetDeliveredVia("in_app").
		Save(context.Background())
	require.NoError(t, err)
	return interaction
}

func TestNotificationInteraction(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-n", "user-n", "member")

	t.Run("user marks their own engagement", func(t *testing.T) {
		row := seedInteraction(t, env, "user-n")

		w := env.request(t, http.MethodPost, "/api/v1/notifications/interactions", map[string]any{
			"interaction_id": row.ID,
			"kind":           "clicked",
		}, asUser("user-n"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.NotNil(t, body["clicked_at"])
	})

	t.Run("another user's interaction is off limits", func(t *testing.T) {
		row := seedInteraction(t, env, "user-n")

		w := env.request(t, http.MethodPost, "/api/v1/notifications/interactions", map[string]any{
			"interaction_id": row.ID,
			"kind":           "opened",
		}, asUser("somebody-else"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown interaction is 404", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/notifications/interactions", map[string]any{
			"interaction_id": "nope",
			"kind":           "opened",
		}, asService)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInbox(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	seed := func(t *testing.T, userID, title string) *ent.InAppNotification {
		t.Helper()
		row, err := env.inapp.Insert(ctx, userID, "org-n", "meeting_ready", title, "body", nil)
		require.NoError(t, err)
		return row
	}

	t.Run("user reads their own feed with the unread badge", func(t *testing.T) {
		seed(t, "inbox-user", "first")
		seed(t, "inbox-user", "second")

		w := env.request(t, http.MethodGet, "/api/v1/inbox", nil, asUser("inbox-user"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 2, body["total_count"])
		assert.EqualValues(t, 2, body["unread_count"])
	})

	t.Run("reading another user's feed is forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/inbox?user_id=inbox-user", nil, asUser("snoop"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service role must name a user", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/inbox", nil, asService)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = env.request(t, http.MethodGet, "/api/v1/inbox?user_id=inbox-user", nil, asService)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mark read clears the badge for one entry", func(t *testing.T) {
		row := seed(t, "reader", "unread entry")

		w := env.request(t, http.MethodPost, "/api/v1/inbox/"+row.ID+"/read", nil, asUser("reader"))
		require.Equal(t, http.StatusOK, w.Code)

		unread, err := env.inapp.CountUnread(ctx, "reader")
		require.NoError(t, err)
		assert.Equal(t, 0, unread)
	})

	t.Run("marking someone else's entry is forbidden", func(t *testing.T) {
		row := seed(t, "owner-user", "private")

		w := env.request(t, http.MethodPost, "/api/v1/inbox/"+row.ID+"/read", nil, asUser("snoop"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("read-all sweeps the caller's feed", func(t *testing.T) {
		seed(t, "sweeper", "one")
		seed(t, "sweeper", "two")
		seed(t, "sweeper", "three")

		w := env.request(t, http.MethodPost, "/api/v1/inbox/read-all", nil, asUser("sweeper"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 3, body["marked_read"])

		unread, err := env.inapp.CountUnread(ctx, "sweeper")
		require.NoError(t, err)
		assert.Equal(t, 0, unread)
	})
}
