package sequence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/llm"
)

// stubCompleter scripts LLM answers. JSON responses are consumed in
// order, one per CompleteJSON call.
type stubCompleter struct {
	completeText string
	jsonAnswers  []string
	rawText      string
	notJSON      bool
	err          error

	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(_ context.Context, system, user string) (string, error) {
	s.lastSystem, s.lastUser = system, user
	if s.err != nil {
		return "", s.err
	}
	return s.completeText, nil
}

func (s *stubCompleter) CompleteJSON(_ context.Context, system, user string, out any) (string, error) {
	s.lastSystem, s.lastUser = system, user
	if s.err != nil {
		return "", s.err
	}
	if s.notJSON {
		return s.rawText, llm.ErrNotJSON
	}
	if len(s.jsonAnswers) == 0 {
		return "", errors.New("stub has no scripted answer")
	}
	answer := s.jsonAnswers[0]
	s.jsonAnswers = s.jsonAnswers[1:]
	if err := json.Unmarshal([]byte(answer), out); err != nil {
		return "", err
	}
	return answer, nil
}

func TestSummarizeMeeting(t *testing.T) {
	t.Run("summarizes the transcript", func(t *testing.T) {
		stub := &stubCompleter{completeText: "Good call, next step is pricing."}
		skill := &summarizeMeeting{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"transcript":    "We talked about the rollout.",
			"meeting_title": "Acme kickoff",
		}})
		require.NoError(t, err)

		assert.Equal(t, "Good call, next step is pricing.", result.Data["text"])
		assert.Contains(t, stub.lastUser, "Acme kickoff")
		assert.Contains(t, stub.lastUser, "We talked about the rollout.")
	})

	t.Run("requires a transcript", func(t *testing.T) {
		skill := &summarizeMeeting{llm: &stubCompleter{}}
		_, err := skill.Run(context.Background(), Input{Fields: map[string]any{}})
		assert.ErrorContains(t, err, "transcript")
	})

	t.Run("model errors surface", func(t *testing.T) {
		skill := &summarizeMeeting{llm: &stubCompleter{err: errors.New("overloaded")}}
		_, err := skill.Run(context.Background(), Input{Fields: map[string]any{"transcript": "hi"}})
		assert.ErrorContains(t, err, "overloaded")
	})
}

func TestExtractActionItems(t *testing.T) {
	t.Run("parses structured items", func(t *testing.T) {
		stub := &stubCompleter{jsonAnswers: []string{
			`{"items": [{"task": "Send pricing", "owner": "dana", "due_date": "2026-09-01"}]}`,
		}}
		skill := &extractActionItems{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"transcript": "Dana will send pricing by September 1.",
		}})
		require.NoError(t, err)

		items, ok := result.Data["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Send pricing", first["task"])
		assert.Equal(t, "dana", first["owner"])
	})

	t.Run("prose answers fall back to raw text", func(t *testing.T) {
		stub := &stubCompleter{notJSON: true, rawText: "Dana should send pricing."}
		skill := &extractActionItems{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"transcript": "chatter",
		}})
		require.NoError(t, err)

		assert.Empty(t, result.Data["items"])
		assert.Equal(t, "Dana should send pricing.", result.Data["raw_text"])
	})
}

func TestDraftFollowupEmail(t *testing.T) {
	t.Run("drafts from summary and action items", func(t *testing.T) {
		stub := &stubCompleter{jsonAnswers: []string{
			`{"subject": "Next steps from our call", "body": "Hi Dana, ..."}`,
		}}
		skill := &draftFollowupEmail{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"summary": "Good call, pricing next.",
			"action_items": []any{
				map[string]any{"task": "Send pricing", "owner": "dana"},
			},
			"recipient": "dana@acme.test",
		}})
		require.NoError(t, err)

		assert.Equal(t, "Next steps from our call", result.Data["subject"])
		assert.Equal(t, "Hi Dana, ...", result.Data["body"])
		assert.Contains(t, stub.lastUser, "Send pricing (dana)")
		assert.Contains(t, stub.lastUser, "dana@acme.test")
	})

	t.Run("prose answers become the body", func(t *testing.T) {
		stub := &stubCompleter{notJSON: true, rawText: "Thanks for the call today."}
		skill := &draftFollowupEmail{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"summary": "Good call.",
		}})
		require.NoError(t, err)

		assert.Equal(t, "Following up on our meeting", result.Data["subject"])
		assert.Equal(t, "Thanks for the call today.", result.Data["body"])
	})

	t.Run("requires a summary", func(t *testing.T) {
		skill := &draftFollowupEmail{llm: &stubCompleter{}}
		_, err := skill.Run(context.Background(), Input{Fields: map[string]any{}})
		assert.ErrorContains(t, err, "summary")
	})
}

func TestDraftFollowupTemplate(t *testing.T) {
	t.Run("renders without a model", func(t *testing.T) {
		result, err := draftFollowupTemplate{}.Run(context.Background(), Input{Fields: map[string]any{
			"summary": "Good call, pricing next.",
			"action_items": []any{
				map[string]any{"task": "Send pricing", "due_date": "2026-09-01"},
				"book the demo",
			},
		}})
		require.NoError(t, err)

		body, ok := result.Data["body"].(string)
		require.True(t, ok)
		assert.Contains(t, body, "Good call, pricing next.")
		assert.Contains(t, body, "- Send pricing, due 2026-09-01")
		assert.Contains(t, body, "- book the demo")
		assert.Equal(t, "Following up on our meeting", result.Data["subject"])
	})

	t.Run("requires a summary", func(t *testing.T) {
		_, err := draftFollowupTemplate{}.Run(context.Background(), Input{Fields: map[string]any{}})
		assert.ErrorContains(t, err, "summary")
	})
}

func TestDraftRescheduleEmail(t *testing.T) {
	t.Run("drafts a reschedule note", func(t *testing.T) {
		stub := &stubCompleter{jsonAnswers: []string{
			`{"subject": "Shall we find a new time?", "body": "Sorry we missed each other."}`,
		}}
		skill := &draftRescheduleEmail{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"meeting_title": "Acme kickoff",
			"recipient":     "dana@acme.test",
		}})
		require.NoError(t, err)

		assert.Equal(t, "Shall we find a new time?", result.Data["subject"])
		assert.Contains(t, stub.lastUser, "Acme kickoff")
	})

	t.Run("prose answers keep a sane subject", func(t *testing.T) {
		stub := &stubCompleter{notJSON: true, rawText: "Sorry we missed each other."}
		skill := &draftRescheduleEmail{llm: stub}

		result, err := skill.Run(context.Background(), Input{Fields: map[string]any{
			"meeting_title": "Acme kickoff",
		}})
		require.NoError(t, err)

		assert.Equal(t, "Rescheduling Acme kickoff", result.Data["subject"])
		assert.Equal(t, "Sorry we missed each other.", result.Data["body"])
	})
}
