package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/events"
)

func countingRunner(name string, interval time.Duration, count *atomic.Int64) Runner {
	return Runner{
		Name:     name,
		Interval: interval,
		Tick: func(context.Context) error {
			count.Add(1)
			return nil
		},
	}
}

func TestPool_TicksOnInterval(t *testing.T) {
	var count atomic.Int64
	pool := NewPool("pod-test", nil)
	pool.Register(countingRunner("counter", 20*time.Millisecond, &count))

	pool.Start(context.Background())
	defer pool.Stop()

	// Initial tick plus at least two interval ticks.
	require.Eventually(t, func() bool {
		return count.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	require.Len(t, health.Runners, 1)
	assert.Equal(t, "counter", health.Runners[0].Name)
	assert.GreaterOrEqual(t, health.Runners[0].Ticks, 3)
	assert.Zero(t, health.Runners[0].ConsecutiveFailures)
}

func TestPool_NudgeWakesRunnerEarly(t *testing.T) {
	hub := events.NewHub()
	var count atomic.Int64
	pool := NewPool("pod-test", hub)

	runner := countingRunner("nudged", time.Hour, &count)
	runner.Channel = events.ChannelNotifications
	pool.Register(runner)

	pool.Start(context.Background())
	defer pool.Stop()

	// Only the startup tick has happened; the hour interval is never hit.
	require.Eventually(t, func() bool {
		return count.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount(events.ChannelNotifications) == 1
	}, 2*time.Second, 5*time.Millisecond)

	hub.Dispatch(events.ChannelNotifications, []byte(`{"type":"notification.enqueued"}`))

	require.Eventually(t, func() bool {
		return count.Load() == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPool_ConsecutiveFailuresFlipHealth(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)

	pool := NewPool("pod-test", nil)
	pool.Register(Runner{
		Name:     "flaky",
		Interval: 10 * time.Millisecond,
		Tick: func(context.Context) error {
			if failing.Load() {
				return errors.New("dependency down")
			}
			return nil
		},
	})

	pool.Start(context.Background())
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return !pool.Health().IsHealthy
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "dependency down", pool.Health().Runners[0].LastError)

	// One clean tick clears the failure streak.
	failing.Store(false)
	require.Eventually(t, func() bool {
		return pool.Health().IsHealthy
	}, 2*time.Second, 5*time.Millisecond)
	assert.Empty(t, pool.Health().Runners[0].LastError)
}

func TestPool_StartAndStopAreIdempotent(t *testing.T) {
	var count atomic.Int64
	pool := NewPool("pod-test", nil)
	pool.Register(countingRunner("counter", 10*time.Millisecond, &count))

	ctx := context.Background()
	pool.Start(ctx)
	pool.Start(ctx)

	require.Eventually(t, func() bool {
		return count.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.NotPanics(t, func() {
		pool.Stop()
		pool.Stop()
	})
}

func TestPool_ContextCancelStopsRunners(t *testing.T) {
	var count atomic.Int64
	pool := NewPool("pod-test", nil)
	pool.Register(countingRunner("counter", 10*time.Millisecond, &count))

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	require.Eventually(t, func() bool {
		return count.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	// Stop returns only after every runner goroutine exits.
	pool.Stop()
}
