package llm

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessagesClient struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessagesClient) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func textResponse(blocks ...sdk.ContentBlockUnion) *sdk.Message {
	return &sdk.Message{
		Content:    blocks,
		StopReason: sdk.StopReasonEndTurn,
		Usage:      sdk.Usage{InputTokens: 12, OutputTokens: 7},
	}
}

func TestClientConstruction(t *testing.T) {
	t.Run("requires messages client", func(t *testing.T) {
		_, err := New(nil, Config{Model: "claude-sonnet-4-5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "messages client")
	})

	t.Run("requires model identifier", func(t *testing.T) {
		_, err := New(&stubMessagesClient{}, Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model identifier")
	})

	t.Run("requires api key", func(t *testing.T) {
		_, err := NewClient(Config{Model: "claude-sonnet-4-5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})
}

func TestClientComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("sends model, prompts and sampling parameters", func(t *testing.T) {
		stub := &stubMessagesClient{
			resp: textResponse(sdk.ContentBlockUnion{Type: "text", Text: "All good."}),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5", MaxTokens: 512, Temperature: 0.2})
		require.NoError(t, err)

		text, err := client.Complete(ctx, "You are a concise meeting assistant.", "Summarize the call")
		require.NoError(t, err)
		assert.Equal(t, "All good.", text)

		assert.Equal(t, sdk.Model("claude-sonnet-4-5"), stub.lastParams.Model)
		assert.Equal(t, int64(512), stub.lastParams.MaxTokens)
		require.Len(t, stub.lastParams.System, 1)
		assert.Equal(t, "You are a concise meeting assistant.", stub.lastParams.System[0].Text)
		assert.Len(t, stub.lastParams.Messages, 1)
		assert.Equal(t, sdk.Float(0.2), stub.lastParams.Temperature)
	})

	t.Run("omits system and temperature when unset", func(t *testing.T) {
		stub := &stubMessagesClient{
			resp: textResponse(sdk.ContentBlockUnion{Type: "text", Text: "hi"}),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		_, err = client.Complete(ctx, "", "hello")
		require.NoError(t, err)

		assert.Empty(t, stub.lastParams.System)
		assert.Zero(t, stub.lastParams.Temperature)
		assert.Equal(t, int64(DefaultMaxTokens), stub.lastParams.MaxTokens)
	})

	t.Run("joins multiple text blocks", func(t *testing.T) {
		stub := &stubMessagesClient{
			resp: textResponse(
				sdk.ContentBlockUnion{Type: "text", Text: "part one"},
				sdk.ContentBlockUnion{Type: "text", Text: "part two"},
			),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		text, err := client.Complete(ctx, "", "hello")
		require.NoError(t, err)
		assert.Equal(t, "part one\npart two", text)
	})

	t.Run("rejects empty user prompt", func(t *testing.T) {
		client, err := New(&stubMessagesClient{}, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		_, err = client.Complete(ctx, "system", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user prompt")
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		stub := &stubMessagesClient{err: errors.New("connection reset")}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		_, err = client.Complete(ctx, "", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "anthropic messages.new")
	})

	t.Run("fails when response has no text content", func(t *testing.T) {
		stub := &stubMessagesClient{
			resp: textResponse(sdk.ContentBlockUnion{Type: "tool_use", ID: "tu1"}),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		_, err = client.Complete(ctx, "", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no text")
	})
}

func TestClientCompleteJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes fenced document with trailing commas", func(t *testing.T) {
		raw := "```json\n{\"sentiment\": \"positive\", \"score\": 4,}\n```"
		stub := &stubMessagesClient{
			resp: textResponse(sdk.ContentBlockUnion{Type: "text", Text: raw}),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		var out struct {
			Sentiment string `json:"sentiment"`
			Score     int    `json:"score"`
		}
		got, err := client.CompleteJSON(ctx, "", "score the call", &out)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
		assert.Equal(t, "positive", out.Sentiment)
		assert.Equal(t, 4, out.Score)
	})

	t.Run("returns raw text with ErrNotJSON on prose answers", func(t *testing.T) {
		stub := &stubMessagesClient{
			resp: textResponse(sdk.ContentBlockUnion{Type: "text", Text: "The call went well overall."}),
		}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		var out map[string]interface{}
		got, err := client.CompleteJSON(ctx, "", "score the call", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotJSON)
		assert.Equal(t, "The call went well overall.", got)
	})

	t.Run("transport errors return no raw text", func(t *testing.T) {
		stub := &stubMessagesClient{err: errors.New("boom")}
		client, err := New(stub, Config{Model: "claude-sonnet-4-5"})
		require.NoError(t, err)

		var out map[string]interface{}
		got, err := client.CompleteJSON(ctx, "", "score the call", &out)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotJSON)
		assert.Empty(t, got)
	})
}
