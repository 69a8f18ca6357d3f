package sequence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
)

// State is the blackboard a running sequence resolves step inputs
// against. Trigger carries the event payload that started the run,
// Context the caller-supplied parameters, Outputs the data of steps
// that declared an output_key, LastResult the stored form of the most
// recent step, and Execution identity facts about the run itself.
type State struct {
	Trigger    map[string]any
	Context    map[string]any
	Outputs    map[string]any
	LastResult map[string]any
	Execution  map[string]any
}

// NewState builds the initial state for an execution row.
func NewState(execution *ent.SequenceExecution) *State {
	return &State{
		Trigger: execution.InputTrigger,
		Context: execution.InputContext,
		Outputs: make(map[string]any),
		Execution: map[string]any{
			"id":            execution.ID,
			"org_id":        execution.OrgID,
			"user_id":       execution.UserID,
			"sequence_key":  execution.SequenceKey,
			"is_simulation": execution.IsSimulation,
		},
	}
}

var (
	subscriptRe   = regexp.MustCompile(`\[(\d+)\]`)
	placeholderRe = regexp.MustCompile(`\$\{([^}]+)\}`)
)

// NormalizePath rewrites array subscripts so "items[0].task" walks the
// same way "items.0.task" does.
func NormalizePath(path string) string {
	return subscriptRe.ReplaceAllString(path, ".$1")
}

// Lookup resolves a dotted path against the state. The first segment
// names a root; the rest walk maps and slices. Missing segments,
// unknown roots, and out-of-range indexes all report found=false.
func (s *State) Lookup(path string) (any, bool) {
	segments := strings.Split(NormalizePath(path), ".")
	current, ok := s.root(segments[0])
	if !ok {
		return nil, false
	}
	for _, segment := range segments[1:] {
		switch node := current.(type) {
		case map[string]any:
			current, ok = node[segment]
			if !ok {
				return nil, false
			}
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}
	return current, true
}

func (s *State) root(name string) (any, bool) {
	switch name {
	case "trigger":
		return s.Trigger, true
	case "context":
		return s.Context, true
	case "outputs":
		return s.Outputs, true
	case "last_result":
		return s.LastResult, true
	case "execution":
		return s.Execution, true
	}
	return nil, false
}

// ResolveValue resolves one input_mapping value. A value that is
// exactly one ${path} placeholder keeps the referenced value's type,
// and a missing path reports resolved=false so the caller can omit the
// key. A value with embedded placeholders renders as a string, with
// missing paths becoming empty. Anything else passes through as a
// literal.
func (s *State) ResolveValue(raw string) (any, bool) {
	if m := placeholderRe.FindStringSubmatch(raw); m != nil && m[0] == raw {
		return s.Lookup(strings.TrimSpace(m[1]))
	}
	if !placeholderRe.MatchString(raw) {
		return raw, true
	}
	rendered := placeholderRe.ReplaceAllStringFunc(raw, func(placeholder string) string {
		path := strings.TrimSpace(placeholder[2 : len(placeholder)-1])
		v, ok := s.Lookup(path)
		if !ok || v == nil {
			return ""
		}
		return Stringify(v)
	})
	return rendered, true
}

// ResolveInputs materializes a step's input mapping. Keys whose
// whole-value reference is missing are omitted, so handlers can tell
// "not provided" from empty.
func (s *State) ResolveInputs(mapping map[string]string) map[string]any {
	fields := make(map[string]any, len(mapping))
	for key, raw := range mapping {
		v, ok := s.ResolveValue(raw)
		if !ok {
			continue
		}
		fields[key] = v
	}
	return fields
}

// RecordResult advances the state past a finished step: the step's
// data lands under its output_key and last_result points at the step.
func (s *State) RecordResult(step *config.StepConfig, result models.StepResult) {
	if step.OutputKey != "" {
		s.Outputs[step.OutputKey] = result.Data
	}
	s.LastResult = result.ToMap()
}

// Replay rebuilds outputs and last_result from stored step results so
// a resumed run sees the state the interrupted run had. Returns the
// set of step orders already recorded.
func (s *State) Replay(steps []*config.StepConfig, results []models.StepResult) map[int]bool {
	byOrder := make(map[int]*config.StepConfig, len(steps))
	for _, step := range steps {
		byOrder[step.Order] = step
	}
	done := make(map[int]bool, len(results))
	for _, result := range results {
		done[result.Order] = true
		if step, ok := byOrder[result.Order]; ok {
			s.RecordResult(step, result)
		} else {
			s.LastResult = result.ToMap()
		}
	}
	return done
}

// Stringify renders a state value for embedding in a larger string.
// JSON numbers print without a trailing ".0".
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
