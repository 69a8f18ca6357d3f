package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestBotDeploymentService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	t.Run("creates scheduled deployment with seeded history", func(t *testing.T) {
		recording := createTestRecording(t, client.Client, "org-1", "user-1")

		deployment, err := service.Create(ctx, models.CreateBotDeploymentRequest{
			OrgID:             "org-1",
			RecordingID:       recording.ID,
			BotID:             "bot-create-1",
			ScheduledJoinTime: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, botdeployment.StatusScheduled, deployment.Status)
		assert.Equal(t, 1, deployment.Version)
		require.Len(t, deployment.StatusHistory, 1)
		assert.Equal(t, "scheduled", deployment.StatusHistory[0]["status"])
		assert.NotEmpty(t, deployment.StatusHistory[0]["timestamp"])
	})

	t.Run("rejects duplicate bot id", func(t *testing.T) {
		first := createTestRecording(t, client.Client, "org-1", "user-1")
		second := createTestRecording(t, client.Client, "org-1", "user-1")

		_, err := service.Create(ctx, models.CreateBotDeploymentRequest{
			OrgID:             "org-1",
			RecordingID:       first.ID,
			BotID:             "bot-dup",
			ScheduledJoinTime: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		_, err = service.Create(ctx, models.CreateBotDeploymentRequest{
			OrgID:             "org-1",
			RecordingID:       second.ID,
			BotID:             "bot-dup",
			ScheduledJoinTime: time.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects second deployment for the same recording", func(t *testing.T) {
		recording := createTestRecording(t, client.Client, "org-1", "user-1")
		createTestDeploymentFor(t, service, recording, "bot-one-per-rec-a")

		_, err := service.Create(ctx, models.CreateBotDeploymentRequest{
			OrgID:             "org-1",
			RecordingID:       recording.ID,
			BotID:             "bot-one-per-rec-b",
			ScheduledJoinTime: time.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestBotDeploymentService_AppendStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	newDeployment := func(t *testing.T, botID string) string {
		recording := createTestRecording(t, client.Client, "org-1", "user-1")
		deployment := createTestDeploymentFor(t, service, recording, botID)
		return deployment.ID
	}

	t.Run("appends transitions and bumps version", func(t *testing.T) {
		id := newDeployment(t, "bot-append-1")

		deployment, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "joining"})
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusJoining, deployment.Status)
		assert.Equal(t, 2, deployment.Version)
		require.Len(t, deployment.StatusHistory, 2)
		assert.Equal(t, "joining", deployment.StatusHistory[1]["status"])

		deployment, err = service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "in_meeting"})
		require.NoError(t, err)
		assert.Equal(t, 3, deployment.Version)
		require.NotNil(t, deployment.ActualJoinTime, "first in_meeting stamps the join time")
	})

	t.Run("same status is idempotent", func(t *testing.T) {
		id := newDeployment(t, "bot-append-2")

		first, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "joining"})
		require.NoError(t, err)

		second, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "joining"})
		require.NoError(t, err)
		assert.Equal(t, first.Version, second.Version)
		assert.Len(t, second.StatusHistory, len(first.StatusHistory))
	})

	t.Run("terminal status freezes the deployment", func(t *testing.T) {
		id := newDeployment(t, "bot-append-3")

		_, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "cancelled", Detail: "meeting removed from calendar"})
		require.NoError(t, err)

		_, err = service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "joining"})
		assert.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("failed records error code and message", func(t *testing.T) {
		id := newDeployment(t, "bot-append-4")

		deployment, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{
			Status:    "failed",
			Detail:    "could not join meeting",
			ErrorCode: "join_timeout",
		})
		require.NoError(t, err)
		assert.Equal(t, botdeployment.StatusFailed, deployment.Status)
		require.NotNil(t, deployment.ErrorCode)
		assert.Equal(t, "join_timeout", *deployment.ErrorCode)
		require.NotNil(t, deployment.ErrorMessage)
		assert.Equal(t, "could not join meeting", *deployment.ErrorMessage)
	})

	t.Run("leave stamps the leave time once", func(t *testing.T) {
		id := newDeployment(t, "bot-append-5")

		_, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "in_meeting"})
		require.NoError(t, err)

		leaving, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "leaving"})
		require.NoError(t, err)
		require.NotNil(t, leaving.LeaveTime)
		leaveTime := *leaving.LeaveTime

		completed, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "completed"})
		require.NoError(t, err)
		require.NotNil(t, completed.LeaveTime)
		assert.WithinDuration(t, leaveTime, *completed.LeaveTime, time.Millisecond)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		id := newDeployment(t, "bot-append-6")

		_, err := service.AppendStatus(ctx, id, models.BotStatusChangeRequest{Status: "teleporting"})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})
}

func TestBotDeploymentService_GetByBotID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	recording := createTestRecording(t, client.Client, "org-lookup", "user-1")
	created := createTestDeploymentFor(t, service, recording, "bot-lookup")

	found, err := service.GetByBotID(ctx, "bot-lookup")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "org-lookup", found.OrgID)

	_, err = service.GetByBotID(ctx, "bot-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBotDeploymentService_CountScheduledInMonth(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recording := createTestRecording(t, client.Client, "org-quota", "user-1")
		createTestDeploymentFor(t, service, recording, "bot-quota-"+recording.ID[:8])
	}
	other := createTestRecording(t, client.Client, "org-other", "user-2")
	createTestDeploymentFor(t, service, other, "bot-quota-other")

	count, err := service.CountScheduledInMonth(ctx, "org-quota", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = service.CountScheduledInMonth(ctx, "org-quota", time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, count, "next month starts a fresh quota window")
}

func TestBotDeploymentService_FindStaleActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotDeploymentService(client.Client)
	ctx := context.Background()

	recording := createTestRecording(t, client.Client, "org-stale", "user-1")
	active := createTestDeploymentFor(t, service, recording, "bot-stale-active")

	done := createTestRecording(t, client.Client, "org-stale", "user-1")
	finished := createTestDeploymentFor(t, service, done, "bot-stale-done")
	_, err := service.AppendStatus(ctx, finished.ID, models.BotStatusChangeRequest{Status: "completed"})
	require.NoError(t, err)

	stale, err := service.FindStaleActive(ctx, 0)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, active.ID, stale[0].ID)

	stale, err = service.FindStaleActive(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, stale, "fresh deployments are not stale")
}
