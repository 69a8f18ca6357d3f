package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/slackworkspace"
)

// SlackWorkspaceService stores per-tenant Slack installations. The
// Slack drivers fetch bot tokens from here at send time; tokens never
// appear in config.
type SlackWorkspaceService struct {
	client *ent.Client
}

// NewSlackWorkspaceService creates a new SlackWorkspaceService
func NewSlackWorkspaceService(client *ent.Client) *SlackWorkspaceService {
	return &SlackWorkspaceService{client: client}
}

// UpsertWorkspaceRequest carries a Slack app installation
type UpsertWorkspaceRequest struct {
	OrgID            string `json:"org_id"`
	TeamID           string `json:"team_id"`
	BotToken         string `json:"bot_token"`
	DefaultChannelID string `json:"default_channel_id,omitempty"`
}

// Upsert stores an installation, replacing any existing one for the org
func (s *SlackWorkspaceService) Upsert(httpCtx context.Context, req UpsertWorkspaceRequest) (*ent.SlackWorkspace, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.TeamID == "" {
		return nil, NewValidationError("team_id", "required")
	}
	if req.BotToken == "" {
		return nil, NewValidationError("bot_token", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.getByOrgID(ctx, req.OrgID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if err == nil {
		update := s.client.SlackWorkspace.UpdateOneID(existing.ID).
			SetTeamID(req.TeamID).
			SetBotToken(req.BotToken)
		if req.DefaultChannelID != "" {
			update = update.SetDefaultChannelID(req.DefaultChannelID)
		}
		workspace, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update slack workspace: %w", err)
		}
		return workspace, nil
	}

	create := s.client.SlackWorkspace.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetTeamID(req.TeamID).
		SetBotToken(req.BotToken)
	if req.DefaultChannelID != "" {
		create = create.SetDefaultChannelID(req.DefaultChannelID)
	}

	workspace, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create slack workspace: %w", err)
	}
	return workspace, nil
}

// GetByOrgID retrieves the org's installation
func (s *SlackWorkspaceService) GetByOrgID(ctx context.Context, orgID string) (*ent.SlackWorkspace, error) {
	return s.getByOrgID(ctx, orgID)
}

func (s *SlackWorkspaceService) getByOrgID(ctx context.Context, orgID string) (*ent.SlackWorkspace, error) {
	workspace, err := s.client.SlackWorkspace.Query().
		Where(slackworkspace.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slack workspace: %w", err)
	}
	return workspace, nil
}

// GetByTeamID reverse-resolves a Slack team id to its installation.
// Used by inbound Slack callbacks, which carry the team, not the org.
func (s *SlackWorkspaceService) GetByTeamID(ctx context.Context, teamID string) (*ent.SlackWorkspace, error) {
	workspace, err := s.client.SlackWorkspace.Query().
		Where(slackworkspace.TeamIDEQ(teamID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slack workspace by team: %w", err)
	}
	return workspace, nil
}

// Delete removes the org's installation
func (s *SlackWorkspaceService) Delete(ctx context.Context, orgID string) error {
	workspace, err := s.getByOrgID(ctx, orgID)
	if err != nil {
		return err
	}
	if err := s.client.SlackWorkspace.DeleteOneID(workspace.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete slack workspace: %w", err)
	}
	return nil
}
