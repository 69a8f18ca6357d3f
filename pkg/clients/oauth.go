package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// refreshSkew refreshes tokens this long before their recorded expiry.
const refreshSkew = 5 * time.Minute

// ErrReauthRequired is terminal: the stored refresh token no longer works
// and the tenant must re-authorize the integration.
var ErrReauthRequired = errors.New("re-authorization required")

// ErrNoConnection means the tenant never linked this provider.
var ErrNoConnection = errors.New("no oauth connection for provider")

// Token is one OAuth access/refresh pair.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

// Expired reports whether the token is within the refresh skew of expiry.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-refreshSkew))
}

// TokenStore loads and persists token pairs. Save must persist the new pair
// atomically.
type TokenStore interface {
	Token(ctx context.Context, orgID, provider string) (*Token, error)
	Save(ctx context.Context, orgID, provider string, tok *Token) error
	MarkReauthRequired(ctx context.Context, orgID, provider string) error
}

// RefreshFunc exchanges a refresh token at the provider's token endpoint.
type RefreshFunc func(ctx context.Context, refreshToken string) (*Token, error)

// TokenSource hands out valid access tokens, refreshing transparently.
// Concurrent refreshes for the same (org, provider) collapse into one
// upstream call.
type TokenSource struct {
	store   TokenStore
	refresh RefreshFunc
	group   singleflight.Group
}

// NewTokenSource creates a token source over the given store and refresher.
func NewTokenSource(store TokenStore, refresh RefreshFunc) *TokenSource {
	if store == nil {
		panic("clients: TokenStore is required")
	}
	if refresh == nil {
		panic("clients: RefreshFunc is required")
	}
	return &TokenSource{store: store, refresh: refresh}
}

// AccessToken returns a currently valid access token for (orgID, provider),
// refreshing first when the stored token is within 5 minutes of expiry.
// A failed refresh parks the connection and returns ErrReauthRequired.
func (ts *TokenSource) AccessToken(ctx context.Context, orgID, provider string) (string, error) {
	tok, err := ts.store.Token(ctx, orgID, provider)
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	if !tok.Expired(time.Now()) {
		return tok.AccessToken, nil
	}

	key := orgID + ":" + provider
	v, err, _ := ts.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have refreshed while
		// we queued.
		cur, err := ts.store.Token(ctx, orgID, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to load token: %w", err)
		}
		if !cur.Expired(time.Now()) {
			return cur.AccessToken, nil
		}

		fresh, err := ts.refresh(ctx, cur.RefreshToken)
		if err != nil {
			if markErr := ts.store.MarkReauthRequired(ctx, orgID, provider); markErr != nil {
				return nil, fmt.Errorf("refresh failed (%v) and parking connection failed: %w", err, markErr)
			}
			return nil, fmt.Errorf("%w: %v", ErrReauthRequired, err)
		}
		if err := ts.store.Save(ctx, orgID, provider, fresh); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
		}
		return fresh.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
