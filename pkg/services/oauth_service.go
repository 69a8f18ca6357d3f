package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/pkg/clients"
)

// OAuthService stores per-tenant OAuth connections and backs the client
// fabric's token source. Token/Save/MarkReauthRequired satisfy
// clients.TokenStore.
type OAuthService struct {
	client *ent.Client
}

// NewOAuthService creates a new OAuthService
func NewOAuthService(client *ent.Client) *OAuthService {
	return &OAuthService{client: client}
}

// UpsertConnectionRequest carries a full token grant from an OAuth
// callback or an admin re-link.
type UpsertConnectionRequest struct {
	OrgID        string    `json:"org_id"`
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scopes       []string  `json:"scopes,omitempty"`
}

// Upsert stores a fresh grant, replacing any existing connection for
// (org, provider) and clearing reauth_required
func (s *OAuthService) Upsert(httpCtx context.Context, req UpsertConnectionRequest) (*ent.OAuthConnection, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if req.AccessToken == "" {
		return nil, NewValidationError("access_token", "required")
	}
	if req.RefreshToken == "" {
		return nil, NewValidationError("refresh_token", "required")
	}
	if req.ExpiresAt.IsZero() {
		return nil, NewValidationError("expires_at", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tokenType := req.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	existing, err := s.getConnection(ctx, req.OrgID, req.Provider)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if err == nil {
		update := s.client.OAuthConnection.UpdateOneID(existing.ID).
			SetAccessToken(req.AccessToken).
			SetRefreshToken(req.RefreshToken).
			SetTokenType(tokenType).
			SetExpiresAt(req.ExpiresAt).
			SetStatus(oauthconnection.StatusActive)
		if len(req.Scopes) > 0 {
			update = update.SetScopes(req.Scopes)
		}
		connection, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update oauth connection: %w", err)
		}
		return connection, nil
	}

	create := s.client.OAuthConnection.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetProvider(req.Provider).
		SetAccessToken(req.AccessToken).
		SetRefreshToken(req.RefreshToken).
		SetTokenType(tokenType).
		SetExpiresAt(req.ExpiresAt)
	if len(req.Scopes) > 0 {
		create = create.SetScopes(req.Scopes)
	}

	connection, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth connection: %w", err)
	}
	return connection, nil
}

// GetConnection retrieves the connection row for (org, provider)
func (s *OAuthService) GetConnection(ctx context.Context, orgID, provider string) (*ent.OAuthConnection, error) {
	return s.getConnection(ctx, orgID, provider)
}

func (s *OAuthService) getConnection(ctx context.Context, orgID, provider string) (*ent.OAuthConnection, error) {
	connection, err := s.client.OAuthConnection.Query().
		Where(
			oauthconnection.OrgIDEQ(orgID),
			oauthconnection.ProviderEQ(provider),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get oauth connection: %w", err)
	}
	return connection, nil
}

// ListConnections returns an org's connections across providers
func (s *OAuthService) ListConnections(ctx context.Context, orgID string) ([]*ent.OAuthConnection, error) {
	connections, err := s.client.OAuthConnection.Query().
		Where(oauthconnection.OrgIDEQ(orgID)).
		Order(ent.Asc(oauthconnection.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list oauth connections: %w", err)
	}
	return connections, nil
}

// DeleteConnection unlinks a provider from an org
func (s *OAuthService) DeleteConnection(ctx context.Context, orgID, provider string) error {
	connection, err := s.getConnection(ctx, orgID, provider)
	if err != nil {
		return err
	}
	if err := s.client.OAuthConnection.DeleteOneID(connection.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete oauth connection: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────
// clients.TokenStore
// ─────────────────────────────────────────────────────────────────────

// Token loads the stored token pair. A connection parked in
// reauth_required returns clients.ErrReauthRequired so callers surface
// the re-link instead of retrying a dead refresh token.
func (s *OAuthService) Token(ctx context.Context, orgID, provider string) (*clients.Token, error) {
	connection, err := s.getConnection(ctx, orgID, provider)
	if err != nil {
		if err == ErrNotFound {
			return nil, clients.ErrNoConnection
		}
		return nil, err
	}
	if connection.Status == oauthconnection.StatusReauthRequired {
		return nil, clients.ErrReauthRequired
	}

	return &clients.Token{
		AccessToken:  connection.AccessToken,
		RefreshToken: connection.RefreshToken,
		TokenType:    connection.TokenType,
		ExpiresAt:    connection.ExpiresAt,
	}, nil
}

// Save persists a refreshed token pair
func (s *OAuthService) Save(ctx context.Context, orgID, provider string, tok *clients.Token) error {
	connection, err := s.getConnection(ctx, orgID, provider)
	if err != nil {
		if err == ErrNotFound {
			return clients.ErrNoConnection
		}
		return err
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = connection.TokenType
	}
	refreshToken := tok.RefreshToken
	if refreshToken == "" {
		// Providers may omit the refresh token on rotation; keep the
		// current one.
		refreshToken = connection.RefreshToken
	}

	err = s.client.OAuthConnection.UpdateOneID(connection.ID).
		SetAccessToken(tok.AccessToken).
		SetRefreshToken(refreshToken).
		SetTokenType(tokenType).
		SetExpiresAt(tok.ExpiresAt).
		SetStatus(oauthconnection.StatusActive).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save refreshed token: %w", err)
	}
	return nil
}

// MarkReauthRequired parks the connection after a failed refresh
func (s *OAuthService) MarkReauthRequired(ctx context.Context, orgID, provider string) error {
	connection, err := s.getConnection(ctx, orgID, provider)
	if err != nil {
		if err == ErrNotFound {
			return clients.ErrNoConnection
		}
		return err
	}

	err = s.client.OAuthConnection.UpdateOneID(connection.ID).
		SetStatus(oauthconnection.StatusReauthRequired).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark connection reauth_required: %w", err)
	}
	return nil
}
