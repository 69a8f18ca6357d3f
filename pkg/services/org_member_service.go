package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/orgmember"
)

// OrgMemberService manages org membership rows. Backs role checks on
// management endpoints and the user→Slack-id resolution the slack_dm
// driver needs.
type OrgMemberService struct {
	client *ent.Client
}

// NewOrgMemberService creates a new OrgMemberService
func NewOrgMemberService(client *ent.Client) *OrgMemberService {
	return &OrgMemberService{client: client}
}

// UpsertMemberRequest carries a membership sync from the identity plane
type UpsertMemberRequest struct {
	OrgID       string `json:"org_id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	SlackUserID string `json:"slack_user_id,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UpsertMember creates or updates the membership row for (org, user)
func (s *OrgMemberService) UpsertMember(httpCtx context.Context, req UpsertMemberRequest) (*ent.OrgMember, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	role := orgmember.RoleMember
	if req.Role != "" {
		role = orgmember.Role(req.Role)
		if err := orgmember.RoleValidator(role); err != nil {
			return nil, NewValidationError("role", fmt.Sprintf("invalid: %q", req.Role))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.getMember(ctx, req.OrgID, req.UserID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if err == nil {
		update := s.client.OrgMember.UpdateOneID(existing.ID).
			SetRole(role)
		if req.SlackUserID != "" {
			update = update.SetSlackUserID(req.SlackUserID)
		}
		if req.Email != "" {
			update = update.SetEmail(req.Email)
		}
		member, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update org member: %w", err)
		}
		return member, nil
	}

	create := s.client.OrgMember.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetUserID(req.UserID).
		SetRole(role)
	if req.SlackUserID != "" {
		create = create.SetSlackUserID(req.SlackUserID)
	}
	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}

	member, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.getMember(ctx, req.OrgID, req.UserID)
		}
		return nil, fmt.Errorf("failed to create org member: %w", err)
	}
	return member, nil
}

// GetMember retrieves the membership row for (org, user)
func (s *OrgMemberService) GetMember(ctx context.Context, orgID, userID string) (*ent.OrgMember, error) {
	return s.getMember(ctx, orgID, userID)
}

func (s *OrgMemberService) getMember(ctx context.Context, orgID, userID string) (*ent.OrgMember, error) {
	member, err := s.client.OrgMember.Query().
		Where(
			orgmember.OrgIDEQ(orgID),
			orgmember.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get org member: %w", err)
	}
	return member, nil
}

// HasRole reports whether the user holds at least the given role in the
// org. Roles rank owner > admin > member; a missing membership is false,
// not an error.
func (s *OrgMemberService) HasRole(ctx context.Context, orgID, userID string, minimum orgmember.Role) (bool, error) {
	member, err := s.getMember(ctx, orgID, userID)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return roleRank(member.Role) >= roleRank(minimum), nil
}

// FindByEmail resolves a membership row from an email address, across
// orgs. Webhook sources that only carry the meeting owner's email use
// this to attribute the event to a tenant. The newest membership wins
// when an address appears in several orgs.
func (s *OrgMemberService) FindByEmail(ctx context.Context, email string) (*ent.OrgMember, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	member, err := s.client.OrgMember.Query().
		Where(orgmember.EmailEqualFold(email)).
		Order(ent.Desc(orgmember.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find org member by email: %w", err)
	}
	return member, nil
}

// ResolveSlackUserID returns the member's linked Slack id, or "" when
// the account is not linked
func (s *OrgMemberService) ResolveSlackUserID(ctx context.Context, orgID, userID string) (string, error) {
	member, err := s.getMember(ctx, orgID, userID)
	if err != nil {
		return "", err
	}
	if member.SlackUserID == nil {
		return "", nil
	}
	return *member.SlackUserID, nil
}

// ListMembers returns an org's members
func (s *OrgMemberService) ListMembers(ctx context.Context, orgID string) ([]*ent.OrgMember, error) {
	members, err := s.client.OrgMember.Query().
		Where(orgmember.OrgIDEQ(orgID)).
		Order(ent.Asc(orgmember.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list org members: %w", err)
	}
	return members, nil
}

// RemoveMember deletes the membership row for (org, user)
func (s *OrgMemberService) RemoveMember(ctx context.Context, orgID, userID string) error {
	member, err := s.getMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if err := s.client.OrgMember.DeleteOneID(member.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove org member: %w", err)
	}
	return nil
}

func roleRank(role orgmember.Role) int {
	switch role {
	case orgmember.RoleOwner:
		return 3
	case orgmember.RoleAdmin:
		return 2
	case orgmember.RoleMember:
		return 1
	default:
		return 0
	}
}
