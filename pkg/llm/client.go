// Package llm provides the Anthropic Messages API client behind sequence
// skills. Skills ask for plain-text completions (summaries, drafted emails)
// or structured JSON answers; JSON responses pass through a tolerant
// extractor before strict decoding because models wrap documents in code
// fences and prose.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultMaxTokens caps completion length when the configuration does not
// set one. Skill outputs are short-form (summaries, drafts, extraction
// documents), so the default stays well under model limits.
const DefaultMaxTokens = 4096

// MessagesClient captures the subset of the Anthropic SDK used by the
// client. It is satisfied by *sdk.MessageService so callers can pass either
// a real client or a stub in tests.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Config selects the model and sampling parameters for a client.
type Config struct {
	// APIKey authenticates requests. Required by NewClient; ignored by
	// New, where the messages client is already bound.
	APIKey string

	// Model is the Claude model identifier sent with every request. Use
	// the typed constants from github.com/anthropics/anthropic-sdk-go
	// (for example string(sdk.ModelClaudeSonnet4_5_20250929)) or an
	// identifier from the Anthropic model catalogue.
	Model string

	// MaxTokens caps completion length. Zero or negative means
	// DefaultMaxTokens.
	MaxTokens int

	// Temperature is the sampling temperature. Zero or negative leaves
	// the API default in place.
	Temperature float64
}

// Client issues non-streaming completion requests against the Anthropic
// Messages API.
type Client struct {
	msg       MessagesClient
	model     string
	maxTokens int64
	temp      float64
}

// New builds a client from the provided Anthropic messages client and
// configuration.
func New(msg MessagesClient, cfg Config) (*Client, error) {
	if msg == nil {
		return nil, errors.New("anthropic messages client is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("model identifier is required")
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Client{
		msg:       msg,
		model:     cfg.Model,
		maxTokens: maxTokens,
		temp:      cfg.Temperature,
	}, nil
}

// NewClient constructs a client using the default Anthropic HTTP transport
// authenticated with cfg.APIKey.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(cfg.APIKey))
	return New(&ac.Messages, cfg)
}

// Complete sends one user turn with an optional system prompt and returns
// the concatenated text content of the response.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", errors.New("user prompt is required")
	}

	params := sdk.MessageNewParams{
		MaxTokens: c.maxTokens,
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(user))},
		Model:     sdk.Model(c.model),
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if c.temp > 0 {
		params.Temperature = sdk.Float(c.temp)
	}

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}
	if msg == nil {
		return "", errors.New("anthropic: response message is nil")
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("anthropic: completion contained no text (stop reason %q)", msg.StopReason)
	}

	slog.Debug("LLM completion finished",
		slog.String("model", c.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.String("stop_reason", string(msg.StopReason)))

	return strings.Join(parts, "\n"), nil
}

// CompleteJSON sends a completion request and decodes the answer into out
// through the tolerant JSON extractor. The raw completion text is returned
// in every case; when the answer cannot be parsed as JSON the error wraps
// ErrNotJSON so callers can fall back to treating the raw text as the
// result.
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) (string, error) {
	raw, err := c.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}
	if err := DecodeJSON(raw, out); err != nil {
		return raw, err
	}
	return raw, nil
}
