package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepResultRoundTrip(t *testing.T) {
	started := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	finished := started.Add(3 * time.Second)

	results := []StepResult{
		{
			Order:      1,
			Key:        "summarize_meeting",
			Status:     StepStatusSuccess,
			Data:       map[string]any{"summary": "short recap"},
			StartedAt:  started,
			FinishedAt: finished,
		},
		{
			Order:        2,
			Key:          "draft_followup_email",
			Status:       StepStatusSuccess,
			Data:         map[string]any{"body": "canned text"},
			UsedFallback: true,
			FallbackKey:  "draft_followup_template",
			StartedAt:    finished,
			FinishedAt:   finished.Add(time.Second),
		},
		{
			Order:      3,
			Key:        "send_followup_email",
			Status:     StepStatusFailed,
			Error:      "mailer rejected recipient",
			Simulated:  true,
			StartedAt:  finished,
			FinishedAt: finished,
		},
	}

	restored := StepResultsFromMaps(StepResultMaps(results))
	require.Len(t, restored, 3)
	assert.Equal(t, results, restored)
}

func TestStepResultToMapOmitsZeroFields(t *testing.T) {
	m := StepResult{Order: 1, Key: "summarize_meeting", Status: StepStatusSuccess}.ToMap()

	assert.NotContains(t, m, "data")
	assert.NotContains(t, m, "error")
	assert.NotContains(t, m, "used_fallback")
	assert.NotContains(t, m, "fallback_key")
	assert.NotContains(t, m, "simulated")
	assert.Contains(t, m, "started_at")
}

func TestStepResultFromMapAfterJSONDecode(t *testing.T) {
	// JSON decoding turns numbers into float64 and timestamps into strings.
	m := map[string]any{
		"order":       float64(4),
		"key":         "create_crm_tasks",
		"status":      "needs_confirmation",
		"data":        map[string]any{"preview": map[string]any{"task_count": float64(2)}},
		"started_at":  "2026-08-20T14:00:00.5Z",
		"finished_at": "2026-08-20T14:00:01Z",
	}

	r := StepResultFromMap(m)
	assert.Equal(t, 4, r.Order)
	assert.Equal(t, "create_crm_tasks", r.Key)
	assert.Equal(t, StepStatusNeedsConfirmation, r.Status)
	assert.False(t, r.Succeeded())
	assert.Equal(t, time.Date(2026, 8, 20, 14, 0, 0, 500000000, time.UTC), r.StartedAt)
	require.NotNil(t, r.Data)
	assert.Contains(t, r.Data, "preview")
}

func TestStepResultFromMapToleratesMissingFields(t *testing.T) {
	r := StepResultFromMap(map[string]any{"key": "notify_owner"})
	assert.Equal(t, 0, r.Order)
	assert.Equal(t, "notify_owner", r.Key)
	assert.Empty(t, r.Status)
	assert.Nil(t, r.Data)
	assert.True(t, r.StartedAt.IsZero())
}
