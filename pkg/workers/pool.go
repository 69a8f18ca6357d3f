package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stridehq/cadenza/pkg/events"
)

// Pool owns one goroutine per registered runner. Runners tick once at
// startup, then on their interval, and immediately when a nudge arrives
// on their subscribed channel.
type Pool struct {
	podID   string
	hub     *events.Hub
	runners []*runnerState

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// runnerState wraps a Runner with its health bookkeeping.
type runnerState struct {
	Runner

	mu                  sync.Mutex
	status              RunnerStatus
	ticks               int
	consecutiveFailures int
	lastTick            time.Time
	lastError           string
}

// NewPool creates an empty pool. The hub may be nil; runners then wake
// on their intervals alone.
func NewPool(podID string, hub *events.Hub) *Pool {
	return &Pool{
		podID:  podID,
		hub:    hub,
		stopCh: make(chan struct{}),
	}
}

// Register adds a runner. Must be called before Start.
func (p *Pool) Register(r Runner) {
	if r.Interval <= 0 {
		r.Interval = time.Minute
	}
	p.runners = append(p.runners, &runnerState{Runner: r, status: RunnerStatusIdle})
}

// Start spawns one goroutine per registered runner. It is safe to call
// multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "runners", len(p.runners))

	for _, state := range p.runners {
		p.wg.Add(1)
		go p.run(ctx, state)
	}
}

// Stop signals all runners to stop and waits for them to finish their
// current ticks.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped", "pod_id", p.podID)
}

func (p *Pool) run(ctx context.Context, state *runnerState) {
	defer p.wg.Done()

	log := slog.With("worker", state.Name, "pod_id", p.podID)
	log.Info("Worker started", "interval", state.Interval)

	var nudges <-chan events.Nudge
	if state.Channel != "" && p.hub != nil {
		ch, cancel := p.hub.Subscribe(state.Channel)
		defer cancel()
		nudges = ch
	}

	// First tick runs right away so a fresh pod doesn't sit out a full
	// interval before touching its backlog.
	p.tick(ctx, state, log)

	ticker := time.NewTicker(state.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			log.Info("Worker stopped")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker stopped")
			return
		case <-ticker.C:
		case <-nudges:
		}
		p.tick(ctx, state, log)
	}
}

func (p *Pool) tick(ctx context.Context, state *runnerState, log *slog.Logger) {
	state.begin()
	err := state.Tick(ctx)
	if err != nil && errors.Is(err, context.Canceled) {
		// Shutdown mid-tick, not a runner failure.
		state.finish(nil)
		return
	}
	state.finish(err)
	if err != nil {
		log.Error("Worker tick failed", "error", err)
	}
}

// Health returns the current health status of the pool. A runner that
// failed its last few ticks in a row marks the pool unhealthy.
func (p *Pool) Health() *PoolHealth {
	health := &PoolHealth{
		IsHealthy: len(p.runners) > 0,
		PodID:     p.podID,
	}
	for _, state := range p.runners {
		snapshot := state.health()
		health.Runners = append(health.Runners, snapshot)
		if snapshot.ConsecutiveFailures >= failureThreshold {
			health.IsHealthy = false
		}
	}
	return health
}

func (s *runnerState) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = RunnerStatusWorking
}

func (s *runnerState) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = RunnerStatusIdle
	s.ticks++
	s.lastTick = time.Now()
	if err != nil {
		s.consecutiveFailures++
		s.lastError = err.Error()
		return
	}
	s.consecutiveFailures = 0
	s.lastError = ""
}

func (s *runnerState) health() RunnerHealth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RunnerHealth{
		Name:                s.Name,
		Status:              s.status,
		Ticks:               s.ticks,
		ConsecutiveFailures: s.consecutiveFailures,
		LastTick:            s.lastTick,
		LastError:           s.lastError,
	}
}
