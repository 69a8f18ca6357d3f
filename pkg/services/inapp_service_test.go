package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/stridehq/cadenza/test/database"
)

func TestInAppService_InsertAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInAppService(client.Client)
	ctx := context.Background()

	t.Run("insert with payload", func(t *testing.T) {
		row, err := service.Insert(ctx, "user-1", "org-1", "meeting_ready",
			"Recording ready", "Your call with Acme is processed.",
			map[string]interface{}{"recording_id": "rec-1"})
		require.NoError(t, err)

		assert.Equal(t, "Recording ready", row.Title)
		require.NotNil(t, row.Body)
		assert.Equal(t, "rec-1", row.Payload["recording_id"])
		assert.Nil(t, row.ReadAt)
	})

	t.Run("body and payload are optional", func(t *testing.T) {
		row, err := service.Insert(ctx, "user-1", "org-1", "digest", "Weekly digest", "", nil)
		require.NoError(t, err)
		assert.Nil(t, row.Body)
		assert.Nil(t, row.Payload)
	})

	t.Run("title is required", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Insert(ctx, "user-1", "org-1", "digest", "", "", nil)
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "title", validErr.Field)
	})

	t.Run("list is newest first and paginated", func(t *testing.T) {
		notifications, total, err := service.ListForUser(ctx, "user-1", false, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Weekly digest", notifications[0].Title)
	})
}

func TestInAppService_ReadTracking(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInAppService(client.Client)
	ctx := context.Background()

	first, err := service.Insert(ctx, "reader", "org-1", "meeting_ready", "One", "", nil)
	require.NoError(t, err)
	_, err = service.Insert(ctx, "reader", "org-1", "meeting_ready", "Two", "", nil)
	require.NoError(t, err)
	_, err = service.Insert(ctx, "reader", "org-1", "meeting_ready", "Three", "", nil)
	require.NoError(t, err)

	t.Run("unread badge count", func(t *testing.T) {
		count, err := service.CountUnread(ctx, "reader")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("mark read keeps the first stamp", func(t *testing.T) {
		read, err := service.MarkRead(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, read.ReadAt)
		stamp := *read.ReadAt

		time.Sleep(10 * time.Millisecond)
		again, err := service.MarkRead(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, stamp, *again.ReadAt)

		count, err := service.CountUnread(ctx, "reader")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unread-only listing excludes read entries", func(t *testing.T) {
		notifications, total, err := service.ListForUser(ctx, "reader", true, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, n := range notifications {
			assert.Nil(t, n.ReadAt)
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		updated, err := service.MarkAllRead(ctx, "reader")
		require.NoError(t, err)
		assert.Equal(t, 2, updated)

		count, err := service.CountUnread(ctx, "reader")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := service.MarkRead(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInAppService_DeleteOldNotifications(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInAppService(client.Client)
	ctx := context.Background()

	old := time.Now().Add(-120 * 24 * time.Hour)

	aged := func(title string, read bool) {
		create := client.Client.InAppNotification.Create().
			SetID(uuid.New().String()).
			SetUserID("keeper").
			SetOrgID("org-1").
			SetNotificationType("digest").
			SetTitle(title).
			SetCreatedAt(old)
		if read {
			create = create.SetReadAt(old.Add(time.Hour))
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}

	aged("old read", true)
	aged("old unread", false)
	_, err := service.Insert(ctx, "keeper", "org-1", "digest", "recent", "", nil)
	require.NoError(t, err)

	deleted, err := service.DeleteOldNotifications(90)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// The unread entry survives regardless of age.
	notifications, total, err := service.ListForUser(ctx, "keeper", false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	titles := make([]string, 0, len(notifications))
	for _, n := range notifications {
		titles = append(titles, n.Title)
	}
	assert.ElementsMatch(t, []string{"old unread", "recent"}, titles)

	_, err = service.DeleteOldNotifications(0)
	assert.Error(t, err)
}
