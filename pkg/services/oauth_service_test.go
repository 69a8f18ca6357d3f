package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/pkg/clients"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestOAuthService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOAuthService(client.Client)
	ctx := context.Background()

	expiry := time.Now().Add(time.Hour)

	t.Run("creates a connection", func(t *testing.T) {
		connection, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID:        "org-1",
			Provider:     "hubspot",
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    expiry,
			Scopes:       []string{"crm.objects.contacts.read"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer", connection.TokenType)
		assert.Equal(t, oauthconnection.StatusActive, connection.Status)
		assert.Equal(t, []string{"crm.objects.contacts.read"}, connection.Scopes)
	})

	t.Run("replaces the grant on re-link", func(t *testing.T) {
		first, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-2", Provider: "hubspot",
			AccessToken: "old-access", RefreshToken: "old-refresh",
			ExpiresAt: expiry,
		})
		require.NoError(t, err)

		second, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-2", Provider: "hubspot",
			AccessToken: "new-access", RefreshToken: "new-refresh",
			ExpiresAt: expiry.Add(time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "new-access", second.AccessToken)
		assert.Equal(t, "new-refresh", second.RefreshToken)
	})

	t.Run("validates the grant", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-1", Provider: "hubspot", AccessToken: "a", RefreshToken: "r",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "expires_at", validErr.Field)
	})

	t.Run("list and delete", func(t *testing.T) {
		_, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-3", Provider: "salesforce",
			AccessToken: "a", RefreshToken: "r", ExpiresAt: expiry,
		})
		require.NoError(t, err)
		_, err = service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-3", Provider: "hubspot",
			AccessToken: "a", RefreshToken: "r", ExpiresAt: expiry,
		})
		require.NoError(t, err)

		connections, err := service.ListConnections(ctx, "org-3")
		require.NoError(t, err)
		require.Len(t, connections, 2)
		assert.Equal(t, "hubspot", connections[0].Provider)
		assert.Equal(t, "salesforce", connections[1].Provider)

		require.NoError(t, service.DeleteConnection(ctx, "org-3", "hubspot"))
		_, err = service.GetConnection(ctx, "org-3", "hubspot")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOAuthService_TokenStore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOAuthService(client.Client)
	ctx := context.Background()

	// The service must satisfy the client fabric's token source.
	var _ clients.TokenStore = service

	expiry := time.Now().Add(time.Hour)
	_, err := service.Upsert(ctx, UpsertConnectionRequest{
		OrgID: "org-tok", Provider: "hubspot",
		AccessToken: "access-1", RefreshToken: "refresh-1",
		ExpiresAt: expiry,
	})
	require.NoError(t, err)

	t.Run("token round trip", func(t *testing.T) {
		tok, err := service.Token(ctx, "org-tok", "hubspot")
		require.NoError(t, err)
		assert.Equal(t, "access-1", tok.AccessToken)
		assert.Equal(t, "refresh-1", tok.RefreshToken)
		assert.Equal(t, "Bearer", tok.TokenType)
		assert.WithinDuration(t, expiry, tok.ExpiresAt, time.Second)
	})

	t.Run("unlinked provider", func(t *testing.T) {
		_, err := service.Token(ctx, "org-tok", "salesforce")
		assert.ErrorIs(t, err, clients.ErrNoConnection)
	})

	t.Run("save keeps the refresh token when rotation omits it", func(t *testing.T) {
		err := service.Save(ctx, "org-tok", "hubspot", &clients.Token{
			AccessToken: "access-2",
			ExpiresAt:   expiry.Add(time.Hour),
		})
		require.NoError(t, err)

		tok, err := service.Token(ctx, "org-tok", "hubspot")
		require.NoError(t, err)
		assert.Equal(t, "access-2", tok.AccessToken)
		assert.Equal(t, "refresh-1", tok.RefreshToken)
		assert.Equal(t, "Bearer", tok.TokenType)
	})

	t.Run("reauth_required blocks reads until the next grant", func(t *testing.T) {
		require.NoError(t, service.MarkReauthRequired(ctx, "org-tok", "hubspot"))

		_, err := service.Token(ctx, "org-tok", "hubspot")
		assert.ErrorIs(t, err, clients.ErrReauthRequired)

		// A refreshed save unparks the connection.
		err = service.Save(ctx, "org-tok", "hubspot", &clients.Token{
			AccessToken: "access-3", RefreshToken: "refresh-3",
			ExpiresAt: expiry,
		})
		require.NoError(t, err)

		tok, err := service.Token(ctx, "org-tok", "hubspot")
		require.NoError(t, err)
		assert.Equal(t, "access-3", tok.AccessToken)
	})

	t.Run("a full upsert also clears reauth_required", func(t *testing.T) {
		require.NoError(t, service.MarkReauthRequired(ctx, "org-tok", "hubspot"))

		_, err := service.Upsert(ctx, UpsertConnectionRequest{
			OrgID: "org-tok", Provider: "hubspot",
			AccessToken: "access-4", RefreshToken: "refresh-4",
			ExpiresAt: expiry,
		})
		require.NoError(t, err)

		tok, err := service.Token(ctx, "org-tok", "hubspot")
		require.NoError(t, err)
		assert.Equal(t, "access-4", tok.AccessToken)
	})
}
