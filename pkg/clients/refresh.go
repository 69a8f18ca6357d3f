package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RefreshGrant returns a RefreshFunc that exchanges refresh tokens at a
// standard OAuth2 token endpoint with the refresh_token grant. Providers
// that omit the rotated refresh token are fine; the store keeps the
// current one when the new pair arrives without it.
func RefreshGrant(httpClient *http.Client, tokenURL, clientID, clientSecret string) RefreshFunc {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return func(ctx context.Context, refreshToken string) (*Token, error) {
		form := url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {refreshToken},
			"client_id":     {clientID},
			"client_secret": {clientSecret},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, fmt.Errorf("failed to build token request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("token endpoint unreachable: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read token response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("token endpoint returned %d", resp.StatusCode)
		}

		var grant struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
			ExpiresIn    int64  `json:"expires_in"`
		}
		if err := json.Unmarshal(body, &grant); err != nil {
			return nil, fmt.Errorf("failed to decode token response: %w", err)
		}
		if grant.AccessToken == "" {
			return nil, fmt.Errorf("token response missing access_token")
		}

		expiresIn := grant.ExpiresIn
		if expiresIn <= 0 {
			// Providers that omit expiry get a conservative one hour.
			expiresIn = 3600
		}
		return &Token{
			AccessToken:  grant.AccessToken,
			RefreshToken: grant.RefreshToken,
			TokenType:    grant.TokenType,
			ExpiresAt:    time.Now().Add(time.Duration(expiresIn) * time.Second),
		}, nil
	}
}
