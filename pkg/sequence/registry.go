package sequence

import (
	"context"
	"sort"
)

// Input carries the resolved fields for one step invocation.
type Input struct {
	OrgID  string
	UserID string
	Fields map[string]any

	// DryRun is set when the step is simulated or approval-gated and
	// unconfirmed. Handlers must stage a preview instead of writing.
	DryRun bool
}

// String returns the named field rendered as a string, or "" when
// absent.
func (in Input) String(key string) string {
	v, ok := in.Fields[key]
	if !ok || v == nil {
		return ""
	}
	return Stringify(v)
}

// Map returns the named field as a map, or nil.
func (in Input) Map(key string) map[string]any {
	m, _ := in.Fields[key].(map[string]any)
	return m
}

// Slice returns the named field as a slice, or nil.
func (in Input) Slice(key string) []any {
	s, _ := in.Fields[key].([]any)
	return s
}

// Result is what a handler returns. NeedsConfirmation stages a side
// effect for approval: Preview describes what would be written, and
// nothing has been written yet.
type Result struct {
	Data              map[string]any
	NeedsConfirmation bool
	Preview           map[string]any
}

// Handler executes one step kind. Skills compute, actions write.
type Handler interface {
	Key() string
	Run(ctx context.Context, in Input) (*Result, error)
}

// Registry resolves skill and action keys to handlers. Skills and
// actions are separate namespaces, mirroring the step config split.
type Registry struct {
	skills  map[string]Handler
	actions map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		skills:  make(map[string]Handler),
		actions: make(map[string]Handler),
	}
}

// RegisterSkill adds a skill handler, replacing any previous handler
// with the same key.
func (r *Registry) RegisterSkill(h Handler) {
	r.skills[h.Key()] = h
}

// RegisterAction adds an action handler, replacing any previous
// handler with the same key.
func (r *Registry) RegisterAction(h Handler) {
	r.actions[h.Key()] = h
}

// Skill looks up a skill handler by key.
func (r *Registry) Skill(key string) (Handler, bool) {
	h, ok := r.skills[key]
	return h, ok
}

// Action looks up an action handler by key.
func (r *Registry) Action(key string) (Handler, bool) {
	h, ok := r.actions[key]
	return h, ok
}

// SkillKeys returns the registered skill keys, sorted.
func (r *Registry) SkillKeys() []string {
	keys := make([]string, 0, len(r.skills))
	for k := range r.skills {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ActionKeys returns the registered action keys, sorted.
func (r *Registry) ActionKeys() []string {
	keys := make([]string, 0, len(r.actions))
	for k := range r.actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
