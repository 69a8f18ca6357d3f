package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func startTestExecution(t *testing.T, service *SequenceExecutionService, sequenceKey string) string {
	t.Helper()

	execution, err := service.Create(context.Background(), models.EnqueueSequenceRequest{
		OrgID:       "org-1",
		UserID:      "user-1",
		SequenceKey: sequenceKey,
		Context:     map[string]any{"recording_id": "rec-1"},
	})
	require.NoError(t, err)
	return execution.ID
}

func TestSequenceExecutionService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSequenceExecutionService(client.Client)
	ctx := context.Background()

	t.Run("opens a running row", func(t *testing.T) {
		execution, err := service.Create(ctx, models.EnqueueSequenceRequest{
			OrgID:       "org-1",
			UserID:      "user-1",
			SequenceKey: "meeting_followup",
			Context:     map[string]any{"recording_id": "rec-9"},
		})
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusRunning, execution.Status)
		assert.False(t, execution.IsSimulation)
		assert.Nil(t, execution.FinishedAt)
		assert.Equal(t, "rec-9", execution.InputContext["recording_id"])
	})

	t.Run("simulation flag carries through", func(t *testing.T) {
		execution, err := service.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-1", UserID: "user-1", SequenceKey: "meeting_followup",
			IsSimulation: true,
		})
		require.NoError(t, err)
		assert.True(t, execution.IsSimulation)
	})

	t.Run("validates the enqueue", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Create(ctx, models.EnqueueSequenceRequest{
			OrgID: "org-1", UserID: "user-1",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "sequence_key", validErr.Field)
	})
}

func TestSequenceExecutionService_StepResults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSequenceExecutionService(client.Client)
	ctx := context.Background()

	now := time.Now()
	step := func(order int, key string, status models.StepStatus) models.StepResult {
		return models.StepResult{
			Order:      order,
			Key:        key,
			Status:     status,
			StartedAt:  now,
			FinishedAt: now.Add(time.Second),
		}
	}

	t.Run("results accumulate step by step", func(t *testing.T) {
		id := startTestExecution(t, service, "meeting_followup")

		results := []models.StepResult{step(0, "fetch_transcript", models.StepStatusSuccess)}
		execution, err := service.AppendStepResult(ctx, id, results)
		require.NoError(t, err)
		require.Len(t, execution.StepResults, 1)

		results = append(results, step(1, "summarize", models.StepStatusSuccess))
		execution, err = service.AppendStepResult(ctx, id, results)
		require.NoError(t, err)
		require.Len(t, execution.StepResults, 2)
		assert.Equal(t, "summarize", execution.StepResults[1]["key"])

		// Still running until the runtime closes it.
		assert.Equal(t, sequenceexecution.StatusRunning, execution.Status)
	})

	t.Run("complete closes the row", func(t *testing.T) {
		id := startTestExecution(t, service, "meeting_followup")

		results := []models.StepResult{
			step(0, "fetch_transcript", models.StepStatusSuccess),
			step(1, "summarize", models.StepStatusSuccess),
		}
		execution, err := service.Complete(ctx, id, results)
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusCompleted, execution.Status)
		require.NotNil(t, execution.FinishedAt)
		assert.Nil(t, execution.FailedStepIndex)
	})

	t.Run("fail records where the run stopped", func(t *testing.T) {
		id := startTestExecution(t, service, "meeting_followup")

		results := []models.StepResult{
			step(0, "fetch_transcript", models.StepStatusSuccess),
			step(1, "summarize", models.StepStatusFailed),
		}
		execution, err := service.Fail(ctx, id, 1, results)
		require.NoError(t, err)

		assert.Equal(t, sequenceexecution.StatusFailed, execution.Status)
		require.NotNil(t, execution.FailedStepIndex)
		assert.Equal(t, 1, *execution.FailedStepIndex)
		require.NotNil(t, execution.FinishedAt)
	})
}

func TestSequenceExecutionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSequenceExecutionService(client.Client)
	ctx := context.Background()

	followup := startTestExecution(t, service, "meeting_followup")
	startTestExecution(t, service, "meeting_followup")
	digest := startTestExecution(t, service, "weekly_digest")
	_, err := service.Complete(ctx, digest, nil)
	require.NoError(t, err)

	t.Run("filter by sequence key", func(t *testing.T) {
		resp, err := service.List(ctx, models.SequenceExecutionFilters{SequenceKey: "meeting_followup"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filter by status", func(t *testing.T) {
		resp, err := service.List(ctx, models.SequenceExecutionFilters{Status: "completed"})
		require.NoError(t, err)
		require.Len(t, resp.Executions, 1)
		assert.Equal(t, digest, resp.Executions[0].ID)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.List(ctx, models.SequenceExecutionFilters{Status: "exploded"})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})

	t.Run("stale running detection", func(t *testing.T) {
		stale, err := service.FindStaleRunning(ctx, 0)
		require.NoError(t, err)
		require.Len(t, stale, 2)
		assert.Equal(t, followup, stale[0].ID)

		stale, err = service.FindStaleRunning(ctx, time.Hour)
		require.NoError(t, err)
		assert.Empty(t, stale)
	})
}

func TestSequenceExecutionService_DeleteOldExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSequenceExecutionService(client.Client)
	ctx := context.Background()

	old := time.Now().Add(-120 * 24 * time.Hour)
	aged := func(status sequenceexecution.Status) {
		create := client.Client.SequenceExecution.Create().
			SetID(uuid.New().String()).
			SetOrgID("org-1").
			SetUserID("user-1").
			SetSequenceKey("meeting_followup").
			SetStatus(status).
			SetStartedAt(old)
		if status != sequenceexecution.StatusRunning {
			create = create.SetFinishedAt(old.Add(time.Minute))
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}

	aged(sequenceexecution.StatusCompleted)
	aged(sequenceexecution.StatusFailed)
	aged(sequenceexecution.StatusRunning)
	startTestExecution(t, service, "meeting_followup")

	deleted, err := service.DeleteOldExecutions(90)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// The aged running row survives for the stale sweep to handle.
	stale, err := service.FindStaleRunning(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, stale, 1)
}
