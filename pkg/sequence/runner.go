// Package sequence runs configured skill and action sequences against
// execution state. Progress persists after every step, so a crashed
// run resumes where it stopped instead of repeating completed work.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/models"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// DefaultStepTimeout bounds a single step when RunnerDeps does not
// override it. LLM-backed skills routinely take tens of seconds.
const DefaultStepTimeout = 2 * time.Minute

// RunnerDeps carries the collaborators a Runner needs.
type RunnerDeps struct {
	Executions *services.SequenceExecutionService
	Sequences  *config.SequenceRegistry
	Registry   *Registry

	// StepTimeout bounds one step, LLM call included. Zero means
	// DefaultStepTimeout.
	StepTimeout time.Duration
}

// Runner drives sequence executions step by step.
type Runner struct {
	executions  *services.SequenceExecutionService
	sequences   *config.SequenceRegistry
	registry    *Registry
	stepTimeout time.Duration
}

// NewRunner creates a runner from its dependencies.
func NewRunner(deps RunnerDeps) *Runner {
	timeout := deps.StepTimeout
	if timeout <= 0 {
		timeout = DefaultStepTimeout
	}
	return &Runner{
		executions:  deps.Executions,
		sequences:   deps.Sequences,
		registry:    deps.Registry,
		stepTimeout: timeout,
	}
}

// Start opens an execution row for the request and runs it to a
// terminal state. Unknown sequence keys are rejected before any row is
// written.
func (r *Runner) Start(ctx context.Context, req models.EnqueueSequenceRequest) (*ent.SequenceExecution, error) {
	if _, err := r.sequences.Get(req.SequenceKey); err != nil {
		return nil, err
	}
	execution, err := r.executions.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, execution)
}

// Execute runs an execution to a terminal state. A row that already
// has step results resumes after the last recorded step. Context
// cancellation leaves the row running for the stale sweep to pick up.
func (r *Runner) Execute(ctx context.Context, execution *ent.SequenceExecution) (*ent.SequenceExecution, error) {
	results := models.StepResultsFromMaps(execution.StepResults)

	seq, err := r.sequences.Get(execution.SequenceKey)
	if err != nil {
		if _, failErr := r.executions.Fail(ctx, execution.ID, -1, results); failErr != nil {
			return nil, errors.Join(err, failErr)
		}
		return nil, err
	}

	logger := slog.With(
		"execution_id", execution.ID,
		"sequence_key", execution.SequenceKey,
		"org_id", execution.OrgID,
	)

	steps := sortedSteps(seq)
	state := NewState(execution)
	done := state.Replay(steps, results)
	if len(results) > 0 {
		logger.Info("Resuming sequence execution", "recorded_steps", len(results))
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if done[step.Order] {
			continue
		}

		result, halt := r.runStep(ctx, execution, state, step, logger)
		results = append(results, result)
		state.RecordResult(step, result)
		observability.SequenceSteps.WithLabelValues(string(result.Status)).Inc()

		if _, err := r.executions.AppendStepResult(ctx, execution.ID, results); err != nil {
			return nil, fmt.Errorf("persist step result: %w", err)
		}

		if halt {
			failed, err := r.executions.Fail(ctx, execution.ID, len(results)-1, results)
			if err != nil {
				return nil, err
			}
			logger.Warn("Sequence failed", "step", result.Key, "error", result.Error)
			return failed, nil
		}
	}

	completed, err := r.executions.Complete(ctx, execution.ID, results)
	if err != nil {
		return nil, err
	}
	logger.Info("Sequence completed",
		"steps", len(results),
		"simulation", execution.IsSimulation,
	)
	return completed, nil
}

// runStep executes one step and reports whether the run must stop.
// Failures flow through the step's on_failure policy first.
func (r *Runner) runStep(ctx context.Context, execution *ent.SequenceExecution, state *State, step *config.StepConfig, logger *slog.Logger) (models.StepResult, bool) {
	key := stepKey(step)
	result := models.StepResult{Order: step.Order, Key: key, StartedAt: time.Now().UTC()}
	in := r.buildInput(execution, state, step)

	out, err := r.invoke(ctx, step, key, in)
	if err == nil {
		applyOutcome(&result, execution, step, out)
		result.FinishedAt = time.Now().UTC()
		return result, false
	}

	logger.Warn("Sequence step failed", "step", key, "error", err)

	policy := stepPolicy(step)
	if policy == config.OnFailureFallback {
		fallback, ok := r.registry.Skill(step.FallbackSkillKey)
		var fbOut *Result
		fbErr := fmt.Errorf("unknown skill: %s", step.FallbackSkillKey)
		if ok {
			fbOut, fbErr = r.invokeHandler(ctx, fallback, in)
		}
		if fbErr == nil {
			applyOutcome(&result, execution, step, fbOut)
			result.UsedFallback = true
			result.FallbackKey = step.FallbackSkillKey
			result.FinishedAt = time.Now().UTC()
			logger.Info("Sequence step recovered via fallback", "step", key, "fallback", step.FallbackSkillKey)
			return result, false
		}
		logger.Warn("Sequence fallback failed", "step", key, "fallback", step.FallbackSkillKey, "error", fbErr)
		err = fmt.Errorf("%v; fallback %s: %v", err, step.FallbackSkillKey, fbErr)
	}

	result.Status = models.StepStatusFailed
	result.Error = err.Error()
	result.FinishedAt = time.Now().UTC()
	return result, policy != config.OnFailureContinue
}

// buildInput resolves the step's input mapping and computes the write
// gate. In simulation the confirm input is stripped so a mapped
// confirmation can never reach a handler.
func (r *Runner) buildInput(execution *ent.SequenceExecution, state *State, step *config.StepConfig) Input {
	fields := state.ResolveInputs(step.InputMapping)
	confirmed := confirmGiven(fields)
	if execution.IsSimulation {
		delete(fields, "confirm")
	}

	in := Input{OrgID: execution.OrgID, UserID: execution.UserID, Fields: fields}
	if !step.IsSkill() {
		in.DryRun = execution.IsSimulation || (step.RequiresApproval && !confirmed)
	}
	return in
}

func (r *Runner) invoke(ctx context.Context, step *config.StepConfig, key string, in Input) (*Result, error) {
	var handler Handler
	var ok bool
	if step.IsSkill() {
		handler, ok = r.registry.Skill(key)
		if !ok {
			return nil, fmt.Errorf("unknown skill: %s", key)
		}
	} else {
		handler, ok = r.registry.Action(key)
		if !ok {
			return nil, fmt.Errorf("unknown action: %s", key)
		}
	}
	return r.invokeHandler(ctx, handler, in)
}

func (r *Runner) invokeHandler(ctx context.Context, handler Handler, in Input) (*Result, error) {
	stepCtx, cancel := context.WithTimeout(ctx, r.stepTimeout)
	defer cancel()
	return handler.Run(stepCtx, in)
}

// applyOutcome maps a handler result onto the recorded step. A staged
// side effect stays needs_confirmation in live runs; in simulation it
// normalizes to success with the preview as data.
func applyOutcome(result *models.StepResult, execution *ent.SequenceExecution, step *config.StepConfig, out *Result) {
	result.Status = models.StepStatusSuccess
	if out == nil {
		return
	}
	if out.NeedsConfirmation {
		result.Data = out.Preview
		if execution.IsSimulation {
			result.Simulated = true
			return
		}
		result.Status = models.StepStatusNeedsConfirmation
		return
	}
	result.Data = out.Data
	if !step.IsSkill() && execution.IsSimulation {
		result.Simulated = true
	}
}

func confirmGiven(fields map[string]any) bool {
	switch v := fields["confirm"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

func stepPolicy(step *config.StepConfig) config.OnFailure {
	if step.OnFailure == "" {
		return config.OnFailureStop
	}
	return step.OnFailure
}

func stepKey(step *config.StepConfig) string {
	if step.IsSkill() {
		return step.SkillKey
	}
	return step.Action
}

func sortedSteps(seq *config.SequenceConfig) []*config.StepConfig {
	steps := make([]*config.StepConfig, len(seq.Steps))
	for i := range seq.Steps {
		steps[i] = &seq.Steps[i]
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	return steps
}
