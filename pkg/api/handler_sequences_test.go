package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/models"
)

func sequenceBody(orgID, userID, key string) map[string]any {
	return map[string]any{
		"org_id":       orgID,
		"user_id":      userID,
		"sequence_key": key,
		"trigger": map[string]any{
			"meeting_title": "Globex renewal",
			"summary":       "agreed on a two-year term",
		},
		"context": map[string]any{"recipient_email": "kim@globex.com"},
	}
}

func TestRunSequenceSimulation(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("runs inline and returns the step results", func(t *testing.T) {
		payload := sequenceBody("org-sim", "runner", "meeting_followup")
		payload["is_simulation"] = true

		w := env.request(t, http.MethodPost, "/api/v1/sequences", payload, asService)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, "completed", body["status"])
		assert.Equal(t, true, body["is_simulation"])

		results, ok := body["step_results"].([]any)
		require.True(t, ok, "step_results missing: %v", body)
		require.Len(t, results, 1)
		step := results[0].(map[string]any)
		assert.Equal(t, "draft_followup_template", step["key"])
		assert.Equal(t, "success", step["status"])
		data := step["data"].(map[string]any)
		assert.Contains(t, data["body"], "agreed on a two-year term")
	})

	t.Run("step failure surfaces in the finished run", func(t *testing.T) {
		payload := sequenceBody("org-sim", "runner", "meeting_followup")
		payload["is_simulation"] = true
		payload["trigger"] = map[string]any{"meeting_title": "No recap available"}

		w := env.request(t, http.MethodPost, "/api/v1/sequences", payload, asService)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "failed", body["status"])
		assert.EqualValues(t, 0, body["failed_step_index"])

		results := body["step_results"].([]any)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].(map[string]any)["error"], "summary is required")
	})
}

func TestRunSequenceLive(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	env.seedMember(t, "org-live", "runner", "member")

	payload := sequenceBody("org-live", "", "meeting_followup")
	delete(payload, "user_id")

	w := env.request(t, http.MethodPost, "/api/v1/sequences", payload, asUser("runner"))

	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "runner", body["user_id"])
	executionID := body["id"].(string)

	require.Eventually(t, func() bool {
		got, err := env.executions.Get(ctx, executionID)
		return err == nil && got.Status == sequenceexecution.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)

	finished, err := env.executions.Get(ctx, executionID)
	require.NoError(t, err)
	assert.False(t, finished.IsSimulation)
	require.Len(t, finished.StepResults, 1)
	assert.Equal(t, "success", finished.StepResults[0]["status"])
}

func TestRunSequenceUnknownKey(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	w := env.request(t, http.MethodPost, "/api/v1/sequences",
		sequenceBody("org-unknown", "runner", "does_not_exist"), asService)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["kind"])

	// The key check runs before the row is written.
	resp, err := env.executions.List(ctx, models.SequenceExecutionFilters{OrgID: "org-unknown"})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalCount)
}

func TestListSequenceExecutions(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-seql", "viewer", "member")

	for _, key := range []string{"meeting_followup", "meeting_followup", "no_show_followup"} {
		payload := sequenceBody("org-seql", "viewer", key)
		payload["is_simulation"] = true
		w := env.request(t, http.MethodPost, "/api/v1/sequences", payload, asService)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	t.Run("lists the org", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/sequences?org_id=org-seql", nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 3, body["total_count"])
	})

	t.Run("filters by sequence key and status", func(t *testing.T) {
		w := env.request(t, http.MethodGet,
			"/api/v1/sequences?org_id=org-seql&sequence_key=no_show_followup&status=completed", nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["total_count"])
	})

	t.Run("non-members cannot list", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/sequences?org_id=org-seql", nil, asUser("outsider"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetSequenceExecution(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedMember(t, "org-seqg", "viewer", "member")

	payload := sequenceBody("org-seqg", "viewer", "meeting_followup")
	payload["is_simulation"] = true
	created := env.request(t, http.MethodPost, "/api/v1/sequences", payload, asService)
	require.Equal(t, http.StatusOK, created.Code)
	executionID := decodeBody(t, created)["id"].(string)

	t.Run("members read their org's executions", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/sequences/"+executionID, nil, asUser("viewer"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, executionID, body["id"])
		assert.Equal(t, "completed", body["status"])
	})

	t.Run("outsiders are forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/sequences/"+executionID, nil, asUser("outsider"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/sequences/missing", nil, asService)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
