// Package crm is the OAuth-authenticated ATS/CRM REST client. Entity
// schemas vary per tenant and provider, so records travel as dynamic maps;
// callers pick out the fields they need.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stridehq/cadenza/pkg/clients"
)

// Entity is one CRM record. Field names are provider-defined.
type Entity map[string]interface{}

// SearchQuery narrows a search call. Zero-value fields are omitted from the
// request body.
type SearchQuery struct {
	Query   string                 `json:"query,omitempty"`
	Filters map[string]interface{} `json:"filters,omitempty"`
	Limit   int                    `json:"limit,omitempty"`
}

// Config holds provider settings for one CRM integration.
type Config struct {
	// Provider is the OAuth provider key the tenant linked, e.g.
	// "hubspot" or "greenhouse".
	Provider string
	BaseURL  string
}

// Client executes CRM calls on the shared fabric. Access tokens come from
// the token source; expired tokens refresh transparently before the call,
// and a dead refresh token surfaces as clients.ErrReauthRequired.
type Client struct {
	fabric   *clients.Fabric
	tokens   *clients.TokenSource
	provider string
	baseURL  string
}

// New builds a CRM client for one provider.
func New(fabric *clients.Fabric, tokens *clients.TokenSource, cfg Config) (*Client, error) {
	if fabric == nil {
		return nil, errors.New("fabric is required")
	}
	if tokens == nil {
		return nil, errors.New("token source is required")
	}
	if cfg.Provider == "" {
		return nil, errors.New("provider is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	return &Client{
		fabric:   fabric,
		tokens:   tokens,
		provider: cfg.Provider,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// GetEntity fetches one record by ID.
func (c *Client) GetEntity(ctx context.Context, orgID, entityType, id string) (Entity, error) {
	var out Entity
	path := "/v1/" + url.PathEscape(entityType) + "/" + url.PathEscape(id)
	if err := c.do(ctx, orgID, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEntity creates a record and returns the provider's stored view of
// it (including the assigned ID).
func (c *Client) CreateEntity(ctx context.Context, orgID, entityType string, fields Entity) (Entity, error) {
	if len(fields) == 0 {
		return nil, errors.New("fields are required")
	}
	var out Entity
	path := "/v1/" + url.PathEscape(entityType)
	if err := c.do(ctx, orgID, http.MethodPost, path, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEntity applies a partial update to a record.
func (c *Client) UpdateEntity(ctx context.Context, orgID, entityType, id string, fields Entity) (Entity, error) {
	if len(fields) == 0 {
		return nil, errors.New("fields are required")
	}
	var out Entity
	path := "/v1/" + url.PathEscape(entityType) + "/" + url.PathEscape(id)
	if err := c.do(ctx, orgID, http.MethodPatch, path, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchEntities runs a provider-side search and returns matching records.
func (c *Client) SearchEntities(ctx context.Context, orgID, entityType string, query SearchQuery) ([]Entity, error) {
	var out struct {
		Results []Entity `json:"results"`
	}
	path := "/v1/" + url.PathEscape(entityType) + "/search"
	if err := c.do(ctx, orgID, http.MethodPost, path, query, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// do resolves the tenant's access token, then executes the request on the
// fabric. Token resolution happens outside the retry loop so OAuth
// lifecycle sentinels reach the caller intact.
func (c *Client) do(ctx context.Context, orgID, method, path string, body any, out any) error {
	token, err := c.tokens.AccessToken(ctx, orgID, c.provider)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	return c.fabric.DoJSON(ctx, orgID, func(ctx context.Context) (*http.Request, error) {
		var rd io.Reader
		if payload != nil {
			rd = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	}, out)
}
