package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
)

func testState() *State {
	return &State{
		Trigger: map[string]any{
			"meeting_title":    "Acme kickoff",
			"duration_minutes": float64(38),
			"attendees": []any{
				map[string]any{"name": "Dana"},
				map[string]any{"name": "Lee"},
			},
		},
		Context: map[string]any{
			"recipient_email": "dana@acme.test",
		},
		Outputs: map[string]any{
			"summary": map[string]any{"text": "Short recap"},
		},
		Execution: map[string]any{"id": "exec-1"},
	}
}

func TestStateLookup(t *testing.T) {
	state := testState()

	tests := []struct {
		name  string
		path  string
		want  any
		found bool
	}{
		{"top-level trigger field", "trigger.meeting_title", "Acme kickoff", true},
		{"array subscript", "trigger.attendees[1].name", "Lee", true},
		{"dotted index", "trigger.attendees.0.name", "Dana", true},
		{"nested output", "outputs.summary.text", "Short recap", true},
		{"execution identity", "execution.id", "exec-1", true},
		{"missing leaf", "trigger.location", nil, false},
		{"unknown root", "bogus.meeting_title", nil, false},
		{"index out of range", "trigger.attendees[5].name", nil, false},
		{"segment into scalar", "trigger.meeting_title.x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := state.Lookup(tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("whole root resolves to the map", func(t *testing.T) {
		got, found := state.Lookup("context")
		require.True(t, found)
		assert.Equal(t, state.Context, got)
	})
}

func TestStateResolveValue(t *testing.T) {
	state := testState()

	t.Run("whole-value reference keeps the type", func(t *testing.T) {
		got, ok := state.ResolveValue("${outputs.summary}")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"text": "Short recap"}, got)
	})

	t.Run("whole-value miss reports unresolved", func(t *testing.T) {
		_, ok := state.ResolveValue("${outputs.missing}")
		assert.False(t, ok)
	})

	t.Run("literal passes through", func(t *testing.T) {
		got, ok := state.ResolveValue("plain text")
		require.True(t, ok)
		assert.Equal(t, "plain text", got)
	})

	t.Run("embedded reference renders as string", func(t *testing.T) {
		got, ok := state.ResolveValue("Reschedule email staged for ${trigger.meeting_title}")
		require.True(t, ok)
		assert.Equal(t, "Reschedule email staged for Acme kickoff", got)
	})

	t.Run("embedded miss renders empty", func(t *testing.T) {
		got, ok := state.ResolveValue("Prep for ${trigger.location}!")
		require.True(t, ok)
		assert.Equal(t, "Prep for !", got)
	})

	t.Run("numbers render without a decimal tail", func(t *testing.T) {
		got, ok := state.ResolveValue("took ${trigger.duration_minutes}m")
		require.True(t, ok)
		assert.Equal(t, "took 38m", got)
	})

	t.Run("whitespace inside the placeholder is tolerated", func(t *testing.T) {
		got, ok := state.ResolveValue("${ trigger.meeting_title }")
		require.True(t, ok)
		assert.Equal(t, "Acme kickoff", got)
	})
}

func TestStateResolveInputs(t *testing.T) {
	state := testState()

	fields := state.ResolveInputs(map[string]string{
		"summary":   "${outputs.summary.text}",
		"recipient": "${context.recipient_email}",
		"missing":   "${context.cc_email}",
		"confirm":   "true",
	})

	assert.Equal(t, "Short recap", fields["summary"])
	assert.Equal(t, "dana@acme.test", fields["recipient"])
	assert.Equal(t, "true", fields["confirm"])
	_, present := fields["missing"]
	assert.False(t, present, "unresolved keys should be omitted")
}

func TestStateReplay(t *testing.T) {
	steps := []*config.StepConfig{
		{Order: 1, SkillKey: "summarize_meeting", OutputKey: "summary"},
		{Order: 2, SkillKey: "extract_action_items", OutputKey: "action_items"},
	}
	results := []models.StepResult{
		{Order: 1, Key: "summarize_meeting", Status: models.StepStatusSuccess, Data: map[string]any{"text": "Recap"}},
	}

	state := &State{Outputs: make(map[string]any)}
	done := state.Replay(steps, results)

	assert.True(t, done[1])
	assert.False(t, done[2])

	got, found := state.Lookup("outputs.summary.text")
	require.True(t, found)
	assert.Equal(t, "Recap", got)

	status, found := state.Lookup("last_result.status")
	require.True(t, found)
	assert.Equal(t, "success", status)
}
