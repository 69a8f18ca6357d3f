// Package workers runs the background loops: each registered runner
// ticks on its own interval and can be woken early by an event-bus
// nudge. The cron endpoints drive the same ticks and stay the
// correctness mechanism; this pool only cuts the latency between them.
package workers

import (
	"context"
	"time"
)

// RunnerStatus reports what a runner is doing right now.
type RunnerStatus string

const (
	RunnerStatusIdle    RunnerStatus = "idle"
	RunnerStatusWorking RunnerStatus = "working"
)

// failureThreshold is how many consecutive tick failures flip the pool
// health check. One flaky tick is routine; three in a row means the
// runner's dependency is down.
const failureThreshold = 3

// Runner is one periodic background loop.
type Runner struct {
	// Name labels logs and health output.
	Name string

	// Interval between ticks.
	Interval time.Duration

	// Channel is the event-bus channel whose nudges wake the runner
	// ahead of its next interval. Empty means timer-only.
	Channel string

	// Tick performs one bounded unit of work.
	Tick func(ctx context.Context) error
}

// RunnerHealth is a point-in-time snapshot of a single runner.
type RunnerHealth struct {
	Name                string       `json:"name"`
	Status              RunnerStatus `json:"status"`
	Ticks               int          `json:"ticks"`
	ConsecutiveFailures int          `json:"consecutive_failures"`
	LastTick            time.Time    `json:"last_tick"`
	LastError           string       `json:"last_error,omitempty"`
}

// PoolHealth contains health information for the whole pool.
type PoolHealth struct {
	IsHealthy bool           `json:"is_healthy"`
	PodID     string         `json:"pod_id"`
	Runners   []RunnerHealth `json:"runners"`
}
