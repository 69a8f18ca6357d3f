// Package meetingbot talks to the meeting recorder vendor's control plane:
// deploying bots into meetings, cancelling them, and fetching recording
// media and transcripts once the provider has processed them.
package meetingbot

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
	"time"

	"github.com/stridehq/cadenza/pkg/clients"
)

// ErrNotReady is returned by GetTranscript while the provider is still
// processing the meeting. Callers schedule a retry instead of failing.
var ErrNotReady = errors.New("transcript not ready")

// Config holds the vendor API settings.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is the typed recorder control-plane client. All calls run on the
// shared fabric under the tenant's concurrency slot.
type Client struct {
	fabric  *clients.Fabric
	baseURL string
	apiKey  string
}

// New builds a recorder client on the given fabric.
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

// DeployBotRequest asks the vendor to place a recorder bot in a meeting.
type DeployBotRequest struct {
	MeetingURL string
	BotName    string
	// JoinAt schedules the join; zero means join immediately.
	JoinAt time.Time
}

// Bot is the vendor's view of a deployed recorder bot.
type Bot struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	MeetingURL string `json:"meeting_url"`
}

// Recording carries the provider-hosted media URLs for a finished meeting.
// The URLs are short-lived; the media upload worker copies the file into
// our own object storage.
type Recording struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	VideoURL        string `json:"video_url"`
	AudioURL        string `json:"audio_url"`
	ContentType     string `json:"content_type"`
	DurationSeconds int    `json:"duration_seconds"`
}

type deployBotBody struct {
	MeetingURL string `json:"meeting_url"`
	BotName    string `json:"bot_name,omitempty"`
	JoinAt     string `json:"join_at,omitempty"`
}

// DeployBot schedules a recorder bot for the meeting.
func (c *Client) DeployBot(ctx context.Context, orgID string, req DeployBotRequest) (*Bot, error) {
	if req.MeetingURL == "" {
		return nil, errors.New("meeting URL is required")
	}

	body := deployBotBody{
		MeetingURL: req.MeetingURL,
		BotName:    req.BotName,
	}
	if !req.JoinAt.IsZero() {
		body.JoinAt = req.JoinAt.UTC().Format(time.RFC3339)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deploy request: %w", err)
	}

	var bot Bot
	if err := c.fabric.DoJSON(ctx, orgID, c.request(http.MethodPost, "/v1/bots", payload), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// CancelBot removes a scheduled or in-meeting bot. A bot the vendor no
// longer knows about counts as cancelled.
func (c *Client) CancelBot(ctx context.Context, orgID, botID string) error {
	err := c.fabric.DoJSON(ctx, orgID, c.request(http.MethodDelete, "/v1/bots/"+url.PathEscape(botID), nil), nil)
	if isNotFound(err) {
		return nil
	}
	return err
}

// GetRecording fetches the media URLs for the bot's meeting.
func (c *Client) GetRecording(ctx context.Context, orgID, botID string) (*Recording, error) {
	var rec Recording
	path := "/v1/bots/" + url.PathEscape(botID) + "/recording"
	if err := c.fabric.DoJSON(ctx, orgID, c.request(http.MethodGet, path, nil), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetTranscript fetches the structured transcript for the bot's meeting.
// Returns ErrNotReady while the provider is still transcribing.
func (c *Client) GetTranscript(ctx context.Context, orgID, botID string) (map[string]interface{}, error) {
	var transcript map[string]interface{}
	path := "/v1/bots/" + url.PathEscape(botID) + "/transcript"
	err := c.fabric.DoJSON(ctx, orgID, c.request(http.MethodGet, path, nil), &transcript)
	if isNotFound(err) {
		return nil, ErrNotReady
	}
	if err != nil {
		return nil, err
	}
	return transcript, nil
}

func (c *Client) request(method, path string, payload []byte) clients.RequestBuilder {
	return func(ctx context.Context) (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Token "+c.apiKey)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	}
}

func isNotFound(err error) bool {
	var cerr *clients.Error
	return errors.As(err, &cerr) && cerr.Status == http.StatusNotFound
}
