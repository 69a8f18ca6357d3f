package models

import (
	"time"

	"github.com/stridehq/cadenza/ent"
)

// StepStatus is the recorded outcome of a single sequence step.
type StepStatus string

const (
	StepStatusSuccess           StepStatus = "success"
	StepStatusFailed            StepStatus = "failed"
	StepStatusNeedsConfirmation StepStatus = "needs_confirmation"
)

// StepResult is one entry of an execution's step_results column. Results are
// append-only: the runtime persists the full slice after every step so a
// crash never loses completed work.
type StepResult struct {
	Order        int            `json:"order"`
	Key          string         `json:"key"`
	Status       StepStatus     `json:"status"`
	Data         map[string]any `json:"data,omitempty"`
	Error        string         `json:"error,omitempty"`
	UsedFallback bool           `json:"used_fallback,omitempty"`
	FallbackKey  string         `json:"fallback_key,omitempty"`
	Simulated    bool           `json:"simulated,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// Succeeded reports whether the step completed, directly or via fallback.
func (r StepResult) Succeeded() bool {
	return r.Status == StepStatusSuccess
}

// ToMap converts the result into the generic shape stored in the
// step_results JSON column. Omits zero-valued optional fields so stored
// rows stay compact.
func (r StepResult) ToMap() map[string]any {
	m := map[string]any{
		"order":       r.Order,
		"key":         r.Key,
		"status":      string(r.Status),
		"started_at":  r.StartedAt.UTC().Format(time.RFC3339Nano),
		"finished_at": r.FinishedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.Data != nil {
		m["data"] = r.Data
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	if r.UsedFallback {
		m["used_fallback"] = true
		m["fallback_key"] = r.FallbackKey
	}
	if r.Simulated {
		m["simulated"] = true
	}
	return m
}

// StepResultFromMap rebuilds a StepResult from its stored shape. Tolerant of
// missing fields; numbers may arrive as float64 after a JSON round trip.
func StepResultFromMap(m map[string]any) StepResult {
	r := StepResult{
		Order:       int(asFloat(m["order"])),
		Key:         firstString(m, "key"),
		Status:      StepStatus(firstString(m, "status")),
		Data:        asMap(m["data"]),
		Error:       firstString(m, "error"),
		FallbackKey: firstString(m, "fallback_key"),
	}
	if b, ok := m["used_fallback"].(bool); ok {
		r.UsedFallback = b
	}
	if b, ok := m["simulated"].(bool); ok {
		r.Simulated = b
	}
	r.StartedAt = epochTime(m["started_at"])
	r.FinishedAt = epochTime(m["finished_at"])
	return r
}

// StepResultMaps converts a result slice into the column representation.
func StepResultMaps(results []StepResult) []map[string]any {
	maps := make([]map[string]any, len(results))
	for i, r := range results {
		maps[i] = r.ToMap()
	}
	return maps
}

// StepResultsFromMaps rebuilds results from the column representation.
func StepResultsFromMaps(maps []map[string]any) []StepResult {
	results := make([]StepResult, len(maps))
	for i, m := range maps {
		results[i] = StepResultFromMap(m)
	}
	return results
}

// EnqueueSequenceRequest contains fields for starting a sequence execution.
// Trigger is the event payload that started the run (set by internal
// producers like the recording pipeline); Context carries caller-supplied
// parameters.
type EnqueueSequenceRequest struct {
	OrgID        string         `json:"org_id"`
	UserID       string         `json:"user_id"`
	SequenceKey  string         `json:"sequence_key"`
	Trigger      map[string]any `json:"trigger,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
	IsSimulation bool           `json:"is_simulation,omitempty"`
}

// SequenceExecutionFilters contains filtering options for listing executions
type SequenceExecutionFilters struct {
	OrgID       string     `json:"org_id,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	SequenceKey string     `json:"sequence_key,omitempty"`
	Status      string     `json:"status,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

// SequenceExecutionResponse wraps a SequenceExecution
type SequenceExecutionResponse struct {
	*ent.SequenceExecution
}

// SequenceExecutionListResponse contains a paginated execution list
type SequenceExecutionListResponse struct {
	Executions []*ent.SequenceExecution `json:"executions"`
	TotalCount int                      `json:"total_count"`
	Limit      int                      `json:"limit"`
	Offset     int                      `json:"offset"`
}
