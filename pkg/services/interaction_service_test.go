package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/models"
	testdb "github.com/stridehq/cadenza/test/database"
)

func createTestInteraction(t *testing.T, client *ent.Client, userID string, deliveredAt time.Time) *ent.NotificationInteraction {
	t.Helper()

	interaction, err := client.NotificationInteraction.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID("org-1").
		SetNotificationType("meeting_ready").
		SetDeliveredAt(deliveredAt).
		SetDeliveredVia("slack_dm").
		Save(context.Background())
	require.NoError(t, err)
	return interaction
}

func TestInteractionService_MarkEngagement(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	t.Run("stamps an open once", func(t *testing.T) {
		row := createTestInteraction(t, client.Client, "user-1", time.Now())

		marked, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "opened",
		})
		require.NoError(t, err)
		require.NotNil(t, marked.OpenedAt)
		firstStamp := *marked.OpenedAt

		// A second open does not move the timestamp.
		time.Sleep(10 * time.Millisecond)
		again, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "opened",
		})
		require.NoError(t, err)
		assert.Equal(t, firstStamp, *again.OpenedAt)
	})

	t.Run("click implies open", func(t *testing.T) {
		row := createTestInteraction(t, client.Client, "user-1", time.Now())

		marked, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "clicked",
		})
		require.NoError(t, err)
		require.NotNil(t, marked.ClickedAt)
		require.NotNil(t, marked.OpenedAt)
	})

	t.Run("click after open keeps the earlier open stamp", func(t *testing.T) {
		row := createTestInteraction(t, client.Client, "user-1", time.Now())

		opened, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "opened",
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		clicked, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "clicked",
		})
		require.NoError(t, err)
		assert.Equal(t, *opened.OpenedAt, *clicked.OpenedAt)
		assert.True(t, clicked.ClickedAt.After(*clicked.OpenedAt))
	})

	t.Run("dismiss", func(t *testing.T) {
		row := createTestInteraction(t, client.Client, "user-1", time.Now())

		marked, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "dismissed",
		})
		require.NoError(t, err)
		require.NotNil(t, marked.DismissedAt)
		assert.Nil(t, marked.OpenedAt)
	})

	t.Run("rejects unknown kinds and missing rows", func(t *testing.T) {
		row := createTestInteraction(t, client.Client, "user-1", time.Now())

		var validErr *ValidationError
		_, err := service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: row.ID, Kind: "stared_at",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "kind", validErr.Field)

		_, err = service.MarkEngagement(ctx, models.InteractionRequest{
			InteractionID: uuid.New().String(), Kind: "opened",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInteractionService_Summarize(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	now := time.Now()
	mark := func(id, kind string) {
		_, err := service.MarkEngagement(ctx, models.InteractionRequest{InteractionID: id, Kind: kind})
		require.NoError(t, err)
	}

	// Four deliveries in the window: one opened, one clicked (which also
	// opens), one dismissed, one untouched.
	opened := createTestInteraction(t, client.Client, "sum-user", now.Add(-1*time.Hour))
	clicked := createTestInteraction(t, client.Client, "sum-user", now.Add(-2*time.Hour))
	dismissed := createTestInteraction(t, client.Client, "sum-user", now.Add(-3*time.Hour))
	createTestInteraction(t, client.Client, "sum-user", now.Add(-4*time.Hour))
	mark(opened.ID, "opened")
	mark(clicked.ID, "clicked")
	mark(dismissed.ID, "dismissed")

	// Outside the window and for another user.
	createTestInteraction(t, client.Client, "sum-user", now.Add(-40*24*time.Hour))
	createTestInteraction(t, client.Client, "other-user", now.Add(-1*time.Hour))

	summary, err := service.Summarize(ctx, "sum-user", now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Delivered)
	assert.Equal(t, 2, summary.Opened)
	assert.Equal(t, 1, summary.Clicked)
	assert.Equal(t, 1, summary.Dismissed)
}

func TestInteractionService_ListAndRetention(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	now := time.Now()
	newest := createTestInteraction(t, client.Client, "list-user", now)
	createTestInteraction(t, client.Client, "list-user", now.Add(-1*time.Hour))
	oldest := createTestInteraction(t, client.Client, "list-user", now.Add(-100*24*time.Hour))

	t.Run("list is newest first", func(t *testing.T) {
		rows, err := service.ListForUser(ctx, "list-user", 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, newest.ID, rows[0].ID)
	})

	t.Run("retention drops old deliveries", func(t *testing.T) {
		deleted, err := service.DeleteOldInteractions(ctx, 90)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		_, err = service.Get(ctx, oldest.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
