package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent/orgmember"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestOrgMemberService_UpsertMember(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrgMemberService(client.Client)
	ctx := context.Background()

	t.Run("creates with the default role", func(t *testing.T) {
		member, err := service.UpsertMember(ctx, UpsertMemberRequest{
			OrgID: "org-1", UserID: "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, orgmember.RoleMember, member.Role)
		assert.Nil(t, member.SlackUserID)
	})

	t.Run("re-sync updates role and links slack", func(t *testing.T) {
		first, err := service.UpsertMember(ctx, UpsertMemberRequest{
			OrgID: "org-1", UserID: "user-2",
		})
		require.NoError(t, err)

		second, err := service.UpsertMember(ctx, UpsertMemberRequest{
			OrgID: "org-1", UserID: "user-2",
			Role: "admin", SlackUserID: "U123", Email: "u2@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, orgmember.RoleAdmin, second.Role)
		require.NotNil(t, second.SlackUserID)
		assert.Equal(t, "U123", *second.SlackUserID)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.UpsertMember(ctx, UpsertMemberRequest{
			OrgID: "org-1", UserID: "user-3", Role: "emperor",
		})
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "role", validErr.Field)
	})
}

func TestOrgMemberService_HasRole(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrgMemberService(client.Client)
	ctx := context.Background()

	_, err := service.UpsertMember(ctx, UpsertMemberRequest{
		OrgID: "org-1", UserID: "the-admin", Role: "admin",
	})
	require.NoError(t, err)

	t.Run("admin clears member and admin but not owner", func(t *testing.T) {
		ok, err := service.HasRole(ctx, "org-1", "the-admin", orgmember.RoleMember)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.HasRole(ctx, "org-1", "the-admin", orgmember.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.HasRole(ctx, "org-1", "the-admin", orgmember.RoleOwner)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing membership is false, not an error", func(t *testing.T) {
		ok, err := service.HasRole(ctx, "org-1", "stranger", orgmember.RoleMember)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOrgMemberService_ResolveSlackUserID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrgMemberService(client.Client)
	ctx := context.Background()

	_, err := service.UpsertMember(ctx, UpsertMemberRequest{
		OrgID: "org-1", UserID: "linked", SlackUserID: "U999",
	})
	require.NoError(t, err)
	_, err = service.UpsertMember(ctx, UpsertMemberRequest{
		OrgID: "org-1", UserID: "unlinked",
	})
	require.NoError(t, err)

	slackID, err := service.ResolveSlackUserID(ctx, "org-1", "linked")
	require.NoError(t, err)
	assert.Equal(t, "U999", slackID)

	slackID, err = service.ResolveSlackUserID(ctx, "org-1", "unlinked")
	require.NoError(t, err)
	assert.Empty(t, slackID)

	_, err = service.ResolveSlackUserID(ctx, "org-1", "stranger")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrgMemberService_FindByEmail(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrgMemberService(client.Client)
	ctx := context.Background()

	_, err := service.UpsertMember(ctx, UpsertMemberRequest{
		OrgID: "org-1", UserID: "pat", Email: "pat@stride.io",
	})
	require.NoError(t, err)

	t.Run("matches case-insensitively", func(t *testing.T) {
		member, err := service.FindByEmail(ctx, "PAT@stride.io")
		require.NoError(t, err)
		assert.Equal(t, "org-1", member.OrgID)
		assert.Equal(t, "pat", member.UserID)
	})

	t.Run("newest membership wins across orgs", func(t *testing.T) {
		later, err := client.Client.OrgMember.Create().
			SetID("member-newer").
			SetOrgID("org-2").
			SetUserID("pat").
			SetEmail("pat@stride.io").
			SetCreatedAt(time.Now().Add(time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		member, err := service.FindByEmail(ctx, "pat@stride.io")
		require.NoError(t, err)
		assert.Equal(t, later.ID, member.ID)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := service.FindByEmail(ctx, "nobody@stride.io")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty email is not found", func(t *testing.T) {
		_, err := service.FindByEmail(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrgMemberService_ListAndRemove(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrgMemberService(client.Client)
	ctx := context.Background()

	for _, userID := range []string{"a", "b", "c"} {
		_, err := service.UpsertMember(ctx, UpsertMemberRequest{OrgID: "org-roster", UserID: userID})
		require.NoError(t, err)
	}

	members, err := service.ListMembers(ctx, "org-roster")
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "a", members[0].UserID)

	require.NoError(t, service.RemoveMember(ctx, "org-roster", "b"))
	members, err = service.ListMembers(ctx, "org-roster")
	require.NoError(t, err)
	assert.Len(t, members, 2)

	assert.ErrorIs(t, service.RemoveMember(ctx, "org-roster", "b"), ErrNotFound)
}
