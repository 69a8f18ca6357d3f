package sequence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stridehq/cadenza/pkg/llm"
)

// Completer is the LLM surface skills draft with. *llm.Client
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string, out any) (string, error)
}

// BuiltinSkills returns the stock skill set for the shipped sequences.
// A nil completer leaves the LLM-backed skills registered but failing
// with a configuration error; draft_followup_template keeps working.
func BuiltinSkills(completer Completer) []Handler {
	return []Handler{
		&summarizeMeeting{llm: completer},
		&extractActionItems{llm: completer},
		&draftFollowupEmail{llm: completer},
		draftFollowupTemplate{},
		&draftRescheduleEmail{llm: completer},
	}
}

const (
	summarizeSystem = `You summarize sales meetings for the account owner. Write a tight recap of the transcript: outcome, key points, objections raised, and agreed next steps. Plain text, no preamble.`

	actionItemsSystem = `You extract action items from sales meeting transcripts. Respond with JSON only: {"items": [{"task": "...", "owner": "...", "due_date": "..."}]}. Omit owner and due_date when the transcript does not name them. Respond {"items": []} when there are none.`

	followupSystem = `You draft follow-up emails after sales meetings. Write from the account owner to the prospect: brief, concrete, referencing what was discussed and the agreed next steps. Respond with JSON only: {"subject": "...", "body": "..."}.`

	rescheduleSystem = `You draft short, warm reschedule emails after a prospect missed a meeting. No guilt-tripping; offer to find a new time. Respond with JSON only: {"subject": "...", "body": "..."}.`
)

type summarizeMeeting struct {
	llm Completer
}

func (s *summarizeMeeting) Key() string { return "summarize_meeting" }

func (s *summarizeMeeting) Run(ctx context.Context, in Input) (*Result, error) {
	if s.llm == nil {
		return nil, errors.New("LLM client is not configured")
	}
	transcript := in.String("transcript")
	if transcript == "" {
		return nil, errors.New("transcript is required")
	}

	user := transcript
	if title := in.String("meeting_title"); title != "" {
		user = fmt.Sprintf("Meeting: %s\n\n%s", title, transcript)
	}

	text, err := s.llm.Complete(ctx, summarizeSystem, user)
	if err != nil {
		return nil, fmt.Errorf("summarize meeting: %w", err)
	}
	return &Result{Data: map[string]any{"text": text}}, nil
}

type extractActionItems struct {
	llm Completer
}

func (s *extractActionItems) Key() string { return "extract_action_items" }

func (s *extractActionItems) Run(ctx context.Context, in Input) (*Result, error) {
	if s.llm == nil {
		return nil, errors.New("LLM client is not configured")
	}
	transcript := in.String("transcript")
	if transcript == "" {
		return nil, errors.New("transcript is required")
	}

	user := transcript
	if summary := in.String("summary"); summary != "" {
		user = fmt.Sprintf("Summary:\n%s\n\nTranscript:\n%s", summary, transcript)
	}

	var parsed struct {
		Items []map[string]any `json:"items"`
	}
	raw, err := s.llm.CompleteJSON(ctx, actionItemsSystem, user, &parsed)
	if errors.Is(err, llm.ErrNotJSON) {
		// Keep the model's answer instead of dropping it.
		return &Result{Data: map[string]any{"items": []any{}, "raw_text": raw}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("extract action items: %w", err)
	}

	items := make([]any, len(parsed.Items))
	for i, item := range parsed.Items {
		items[i] = item
	}
	return &Result{Data: map[string]any{"items": items}}, nil
}

type draftFollowupEmail struct {
	llm Completer
}

func (s *draftFollowupEmail) Key() string { return "draft_followup_email" }

func (s *draftFollowupEmail) Run(ctx context.Context, in Input) (*Result, error) {
	if s.llm == nil {
		return nil, errors.New("LLM client is not configured")
	}
	summary := in.String("summary")
	if summary == "" {
		return nil, errors.New("summary is required")
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Meeting summary:\n%s\n", summary)
	if items := in.Slice("action_items"); len(items) > 0 {
		prompt.WriteString("\nAgreed next steps:\n")
		for _, item := range items {
			fmt.Fprintf(&prompt, "- %s\n", renderActionItem(item))
		}
	}
	if recipient := in.String("recipient"); recipient != "" {
		fmt.Fprintf(&prompt, "\nRecipient: %s\n", recipient)
	}

	var draft struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	raw, err := s.llm.CompleteJSON(ctx, followupSystem, prompt.String(), &draft)
	if errors.Is(err, llm.ErrNotJSON) {
		return &Result{Data: map[string]any{"subject": "Following up on our meeting", "body": raw}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draft follow-up email: %w", err)
	}
	return &Result{Data: map[string]any{"subject": draft.Subject, "body": draft.Body}}, nil
}

// draftFollowupTemplate is the deterministic fallback for
// draft_followup_email. It produces a plain templated draft that still
// works when the model is unavailable.
type draftFollowupTemplate struct{}

func (draftFollowupTemplate) Key() string { return "draft_followup_template" }

func (draftFollowupTemplate) Run(_ context.Context, in Input) (*Result, error) {
	summary := in.String("summary")
	if summary == "" {
		return nil, errors.New("summary is required")
	}

	var body strings.Builder
	body.WriteString("Hi,\n\nThanks for your time today. A quick recap:\n\n")
	body.WriteString(summary)
	body.WriteString("\n")
	if items := in.Slice("action_items"); len(items) > 0 {
		body.WriteString("\nNext steps:\n")
		for _, item := range items {
			fmt.Fprintf(&body, "- %s\n", renderActionItem(item))
		}
	}
	body.WriteString("\nLooking forward to it.\n")

	return &Result{Data: map[string]any{
		"subject": "Following up on our meeting",
		"body":    body.String(),
	}}, nil
}

type draftRescheduleEmail struct {
	llm Completer
}

func (s *draftRescheduleEmail) Key() string { return "draft_reschedule_email" }

func (s *draftRescheduleEmail) Run(ctx context.Context, in Input) (*Result, error) {
	if s.llm == nil {
		return nil, errors.New("LLM client is not configured")
	}
	title := in.String("meeting_title")
	if title == "" {
		return nil, errors.New("meeting_title is required")
	}

	prompt := fmt.Sprintf("Missed meeting: %s\n", title)
	if recipient := in.String("recipient"); recipient != "" {
		prompt += fmt.Sprintf("Recipient: %s\n", recipient)
	}

	var draft struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	raw, err := s.llm.CompleteJSON(ctx, rescheduleSystem, prompt, &draft)
	if errors.Is(err, llm.ErrNotJSON) {
		return &Result{Data: map[string]any{"subject": "Rescheduling " + title, "body": raw}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draft reschedule email: %w", err)
	}
	return &Result{Data: map[string]any{"subject": draft.Subject, "body": draft.Body}}, nil
}

// renderActionItem flattens one extracted action item into a bullet
// line. Tolerates both the structured shape and plain strings.
func renderActionItem(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return Stringify(v)
	}
	task, _ := m["task"].(string)
	if task == "" {
		return Stringify(v)
	}
	if owner, ok := m["owner"].(string); ok && owner != "" {
		task += " (" + owner + ")"
	}
	if due, ok := m["due_date"].(string); ok && due != "" {
		task += ", due " + due
	}
	return task
}
