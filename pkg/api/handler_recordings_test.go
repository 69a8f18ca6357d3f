package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/models"
)

func scheduleBody(orgID string, attendees ...string) map[string]any {
	list := make([]any, 0, len(attendees)+1)
	list = append(list, map[string]any{"email": "me@stride.io"})
	for _, a := range attendees {
		list = append(list, map[string]any{"email": a})
	}
	return map[string]any{
		"org_id":  orgID,
		"user_id": "seller-1",
		"meeting": map[string]any{
			"calendar_event_id": "cal-" + orgID,
			"title":             "Acme discovery",
			"meeting_url":       "https://zoom.us/j/987",
			"platform":          "zoom",
			"start_time":        time.Now().Add(2 * time.Hour).Format(time.RFC3339),
			"organizer_email":   "me@stride.io",
			"org_domain":        "stride.io",
			"attendees":         list,
		},
	}
}

func TestScheduleRecording(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.rules.CreateRecordingRule(ctx, models.CreateRecordingRuleRequest{
		OrgID:      "org-sched",
		Name:       "external calls",
		Priority:   5,
		DomainMode: "external_only",
		Target:     &models.RecordingTarget{ProjectID: "proj-1", Priority: "high"},
	})
	require.NoError(t, err)

	t.Run("matching rule deploys a bot", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/recordings",
			scheduleBody("org-sched", "pat@acme.com"), asService)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, true, body["scheduled"])
		assert.NotNil(t, body["recording"])
		assert.NotNil(t, body["deployment"])
		assert.Equal(t, 1, env.bots.deployCount())
	})

	t.Run("internal meeting is skipped with the reason", func(t *testing.T) {
		payload := scheduleBody("org-sched", "colleague@stride.io")
		payload["meeting"].(map[string]any)["calendar_event_id"] = "cal-internal"

		w := env.request(t, http.MethodPost, "/api/v1/recordings", payload, asService)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["scheduled"])
		assert.NotEmpty(t, body["skip_reason"])
	})

	t.Run("missing meeting is a bad request", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/recordings", map[string]any{
			"org_id": "org-sched",
		}, asService)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "meeting is required", decodeBody(t, w)["error"])
	})

	t.Run("members can schedule for their org", func(t *testing.T) {
		env.seedMember(t, "org-sched", "seller-1", "member")
		payload := scheduleBody("org-sched", "kim@globex.com")
		payload["meeting"].(map[string]any)["calendar_event_id"] = "cal-member"
		delete(payload, "user_id")

		w := env.request(t, http.MethodPost, "/api/v1/recordings", payload, asUser("seller-1"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestListRecordings(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-list", "viewer", "member")
	env.seedDeployment(t, "org-list")
	env.seedDeployment(t, "org-list")

	t.Run("lists the org", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-list", nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 2, body["total_count"])
	})

	t.Run("status filter", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-list&status=completed", nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["total_count"])
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings?org_id=org-list&limit=1", nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 2, body["total_count"])
		assert.Len(t, body["recordings"], 1)
	})
}

func TestGetRecording(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-get", "viewer", "member")
	recID, _ := env.seedDeployment(t, "org-get")

	t.Run("returns the recording with its deployment", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings/"+recID, nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, recID, body["id"])
		// Media never finished uploading, so no playback link.
		assert.Nil(t, body["playback_url"])
	})

	t.Run("outsiders are forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings/"+recID, nil, asUser("outsider"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/recordings/missing", nil, asService)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCancelRecording(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-cancel", "seller", "member")

	t.Run("cancels the recording and the bot", func(t *testing.T) {
		recID, botID := env.seedDeployment(t, "org-cancel")

		w := env.request(t, http.MethodPost, "/api/v1/recordings/"+recID+"/cancel", nil, asUser("seller"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "cancelled", body["status"])
		assert.Contains(t, env.bots.cancelledIDs(), botID)
	})

	t.Run("cancelling twice is a conflict", func(t *testing.T) {
		recID, _ := env.seedDeployment(t, "org-cancel")

		first := env.request(t, http.MethodPost, "/api/v1/recordings/"+recID+"/cancel", nil, asUser("seller"))
		require.Equal(t, http.StatusOK, first.Code)

		second := env.request(t, http.MethodPost, "/api/v1/recordings/"+recID+"/cancel", nil, asUser("seller"))
		assert.Equal(t, http.StatusConflict, second.Code)
	})
}
