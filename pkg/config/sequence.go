package config

import (
	"fmt"
	"sort"
	"sync"
)

// OnFailure controls what happens when a sequence step fails.
type OnFailure string

const (
	// OnFailureStop aborts the sequence and records the failed step index.
	OnFailureStop OnFailure = "stop"

	// OnFailureContinue logs the failure and proceeds to the next step.
	OnFailureContinue OnFailure = "continue"

	// OnFailureFallback runs the step's fallback skill; if the fallback
	// succeeds the step is recorded as succeeded.
	OnFailureFallback OnFailure = "fallback"
)

// IsValid checks if the failure policy is valid
func (o OnFailure) IsValid() bool {
	switch o {
	case OnFailureStop, OnFailureContinue, OnFailureFallback:
		return true
	}
	return false
}

// SequenceConfig defines an ordered series of skill and action steps.
type SequenceConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Steps to execute in order (required, min 1)
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig defines a single step in a sequence. Exactly one of
// SkillKey and Action must be set: skills are pure or AI computations,
// actions have external side effects.
type StepConfig struct {
	// Order within the sequence. Steps run in ascending order.
	Order int `yaml:"order"`

	// SkillKey names a registered skill to invoke.
	SkillKey string `yaml:"skill_key,omitempty"`

	// Action names a registered side-effecting action to invoke.
	Action string `yaml:"action,omitempty"`

	// InputMapping maps step input fields to literal values or
	// ${path.to.field} references resolved against execution state.
	InputMapping map[string]string `yaml:"input_mapping,omitempty"`

	// OutputKey stores the step result under outputs[OutputKey] for
	// later steps to reference. Empty means the result is only
	// reachable through last_result.
	OutputKey string `yaml:"output_key,omitempty"`

	// OnFailure policy (default: stop)
	OnFailure OnFailure `yaml:"on_failure,omitempty"`

	// FallbackSkillKey names the skill run when OnFailure is fallback.
	FallbackSkillKey string `yaml:"fallback_skill_key,omitempty"`

	// RequiresApproval gates the action behind explicit confirmation.
	// Only meaningful for action steps.
	RequiresApproval bool `yaml:"requires_approval,omitempty"`
}

// IsSkill reports whether the step invokes a skill.
func (s *StepConfig) IsSkill() bool {
	return s.SkillKey != ""
}

// SequenceRegistry stores sequence definitions in memory with thread-safe access
type SequenceRegistry struct {
	sequences map[string]*SequenceConfig
	mu        sync.RWMutex
}

// NewSequenceRegistry creates a new sequence registry
func NewSequenceRegistry(sequences map[string]*SequenceConfig) *SequenceRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*SequenceConfig, len(sequences))
	for k, v := range sequences {
		copied[k] = v
	}
	return &SequenceRegistry{
		sequences: copied,
	}
}

// Get retrieves a sequence definition by key (thread-safe)
func (r *SequenceRegistry) Get(key string) (*SequenceConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq, exists := r.sequences[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSequenceNotFound, key)
	}
	return seq, nil
}

// GetAll returns all sequence definitions (thread-safe, returns copy)
func (r *SequenceRegistry) GetAll() map[string]*SequenceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*SequenceConfig, len(r.sequences))
	for k, v := range r.sequences {
		result[k] = v
	}
	return result
}

// Has checks if a sequence exists in the registry (thread-safe)
func (r *SequenceRegistry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.sequences[key]
	return exists
}

// Keys returns a sorted list of sequence keys (thread-safe)
func (r *SequenceRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.sequences))
	for k := range r.sequences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of sequences in the registry (thread-safe)
func (r *SequenceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sequences)
}
