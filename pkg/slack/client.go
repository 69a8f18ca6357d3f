// Package slack delivers notifications through the Slack Web API. Bot
// tokens are per-tenant (stored on SlackWorkspace rows), so callers build
// one Client per workspace rather than holding a process-wide client.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// apiTimeout bounds every Web API call.
const apiTimeout = 10 * time.Second

// Client is a thin wrapper around the slack-go SDK for one workspace.
type Client struct {
	api    *goslack.Client
	logger *slog.Logger
}

// NewClient creates a Slack API client for a workspace bot token.
func NewClient(token string) *Client {
	return &Client{
		api:    goslack.New(token),
		logger: slog.Default().With("component", "slack-client"),
	}
}

// NewClientWithAPIURL creates a Slack API client that targets a custom API
// URL. Useful for testing with a mock server.
func NewClientWithAPIURL(token, apiURL string) *Client {
	return &Client{
		api:    goslack.New(token, goslack.OptionAPIURL(apiURL)),
		logger: slog.Default().With("component", "slack-client"),
	}
}

// PostMessage posts text and blocks to a channel or DM conversation and
// returns the message timestamp for later chat.update calls.
func (c *Client) PostMessage(ctx context.Context, channelID, text string, blocks []goslack.Block) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	opts := messageOptions(text, blocks)
	_, ts, err := c.api.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return ts, nil
}

// UpdateMessage edits a previously posted message in place.
func (c *Client) UpdateMessage(ctx context.Context, channelID, ts, text string, blocks []goslack.Block) error {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	opts := messageOptions(text, blocks)
	if _, _, _, err := c.api.UpdateMessageContext(ctx, channelID, ts, opts...); err != nil {
		return fmt.Errorf("chat.update failed: %w", err)
	}
	return nil
}

// OpenDM opens the direct message conversation with a user, reusing the
// existing one when already open, and returns its channel id.
func (c *Client) OpenDM(ctx context.Context, slackUserID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	channel, _, _, err := c.api.OpenConversationContext(ctx, &goslack.OpenConversationParameters{
		Users:    []string{slackUserID},
		ReturnIM: true,
	})
	if err != nil {
		return "", fmt.Errorf("conversations.open failed: %w", err)
	}
	return channel.ID, nil
}

// SendDM opens the user's DM conversation and posts the message there.
func (c *Client) SendDM(ctx context.Context, slackUserID, text string, blocks []goslack.Block) (string, error) {
	channelID, err := c.OpenDM(ctx, slackUserID)
	if err != nil {
		return "", err
	}
	return c.PostMessage(ctx, channelID, text, blocks)
}

func messageOptions(text string, blocks []goslack.Block) []goslack.MsgOption {
	var opts []goslack.MsgOption
	if text != "" {
		opts = append(opts, goslack.MsgOptionText(Truncate(text, TextLimit), false))
	}
	if len(blocks) > 0 {
		LimitBlocks(blocks)
		opts = append(opts, goslack.MsgOptionBlocks(blocks...))
	}
	return opts
}
