package sequence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/services"
)

// WorkerDeps carries what the resume worker needs.
type WorkerDeps struct {
	Runner     *Runner
	Executions *services.SequenceExecutionService

	// StaleAfter is how old a running execution must be before it is
	// presumed orphaned. Must exceed the worst-case run duration or a
	// live run can be picked up twice.
	StaleAfter time.Duration
}

// Worker re-drives executions whose runner died mid-run. Resumed runs
// skip already-recorded steps, so the sweep is safe to repeat.
type Worker struct {
	runner     *Runner
	executions *services.SequenceExecutionService
	staleAfter time.Duration
}

// NewWorker creates a resume worker.
func NewWorker(deps WorkerDeps) *Worker {
	staleAfter := deps.StaleAfter
	if staleAfter <= 0 {
		staleAfter = 10 * time.Minute
	}
	return &Worker{
		runner:     deps.Runner,
		executions: deps.Executions,
		staleAfter: staleAfter,
	}
}

// Tick finds stale running executions and drives each to a terminal
// state. Returns how many were resumed.
func (w *Worker) Tick(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		observability.WorkerTickDuration.WithLabelValues("sequence_resume").Observe(time.Since(start).Seconds())
	}()

	stale, err := w.executions.FindStaleRunning(ctx, w.staleAfter)
	if err != nil {
		return 0, fmt.Errorf("find stale executions: %w", err)
	}

	resumed := 0
	for _, execution := range stale {
		if err := ctx.Err(); err != nil {
			return resumed, err
		}
		if _, err := w.runner.Execute(ctx, execution); err != nil {
			slog.Error("Failed to resume sequence execution",
				"execution_id", execution.ID,
				"sequence_key", execution.SequenceKey,
				"error", err,
			)
			continue
		}
		resumed++
	}

	if resumed > 0 {
		slog.Info("Resumed stale sequence executions", "count", resumed)
	}
	return resumed, nil
}
