// Package mailer hands outbound email to the transactional mail service.
// A 2xx from the service means accepted for delivery; bounce handling is
// the mail provider's problem, not ours.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stridehq/cadenza/pkg/clients"
)

// Config holds the mail service settings.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is the typed mail-service client. Calls run on the shared fabric
// under the tenant's concurrency slot.
type Client struct {
	fabric  *clients.Fabric
	baseURL string
	apiKey  string
}

// New builds a mailer client on the given fabric.
func New(fabric *clients.Fabric, cfg Config) (*Client, error) {
	if fabric == nil {
		return nil, errors.New("fabric is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	return &Client{
		fabric:  fabric,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}, nil
}

// Message is one outbound email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Send submits the message for delivery.
func (c *Client) Send(ctx context.Context, orgID string, msg Message) error {
	if msg.To == "" {
		return errors.New("recipient is required")
	}
	if msg.Subject == "" {
		return errors.New("subject is required")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return c.fabric.DoJSON(ctx, orgID, c.request(http.MethodPost, "/v1/messages", payload), nil)
}

func (c *Client) request(method, path string, payload []byte) clients.RequestBuilder {
	return func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
}
