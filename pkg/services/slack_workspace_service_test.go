package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/stridehq/cadenza/test/database"
)

func TestSlackWorkspaceService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSlackWorkspaceService(client.Client)
	ctx := context.Background()

	t.Run("stores an installation", func(t *testing.T) {
		workspace, err := service.Upsert(ctx, UpsertWorkspaceRequest{
			OrgID:            "org-1",
			TeamID:           "T111",
			BotToken:         "xoxb-token-1",
			DefaultChannelID: "C100",
		})
		require.NoError(t, err)

		assert.Equal(t, "T111", workspace.TeamID)
		require.NotNil(t, workspace.DefaultChannelID)
		assert.Equal(t, "C100", *workspace.DefaultChannelID)
	})

	t.Run("reinstall rotates the token in place", func(t *testing.T) {
		first, err := service.Upsert(ctx, UpsertWorkspaceRequest{
			OrgID: "org-2", TeamID: "T222", BotToken: "xoxb-old",
		})
		require.NoError(t, err)

		second, err := service.Upsert(ctx, UpsertWorkspaceRequest{
			OrgID: "org-2", TeamID: "T222", BotToken: "xoxb-new",
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "xoxb-new", second.BotToken)
	})

	t.Run("validates the installation", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Upsert(ctx, UpsertWorkspaceRequest{
			OrgID: "org-3", TeamID: "T333",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "bot_token", validErr.Field)
	})
}

func TestSlackWorkspaceService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSlackWorkspaceService(client.Client)
	ctx := context.Background()

	created, err := service.Upsert(ctx, UpsertWorkspaceRequest{
		OrgID: "org-look", TeamID: "T900", BotToken: "xoxb-token",
	})
	require.NoError(t, err)

	t.Run("by org", func(t *testing.T) {
		workspace, err := service.GetByOrgID(ctx, "org-look")
		require.NoError(t, err)
		assert.Equal(t, created.ID, workspace.ID)

		_, err = service.GetByOrgID(ctx, "org-none")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by team, for inbound callbacks", func(t *testing.T) {
		workspace, err := service.GetByTeamID(ctx, "T900")
		require.NoError(t, err)
		assert.Equal(t, "org-look", workspace.OrgID)

		_, err = service.GetByTeamID(ctx, "T000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, "org-look"))
		_, err := service.GetByOrgID(ctx, "org-look")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.Delete(ctx, "org-look"), ErrNotFound)
	})
}
