package clients

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultTenantConcurrency is the per-tenant cap on concurrent outbound
// calls. The cap is process-local; fleet-wide concurrency may be higher but
// each instance self-limits.
const DefaultTenantConcurrency = 100

// TenantSlots caps concurrent outbound calls per tenant. Waiters queue FIFO
// and resume as slots free.
type TenantSlots struct {
	mu    sync.Mutex
	max   int64
	slots map[string]*semaphore.Weighted
}

// NewTenantSlots creates a slot pool with the given per-tenant cap.
func NewTenantSlots(max int64) *TenantSlots {
	if max <= 0 {
		max = DefaultTenantConcurrency
	}
	return &TenantSlots{
		max:   max,
		slots: make(map[string]*semaphore.Weighted),
	}
}

// Acquire blocks until a slot for orgID is available or ctx is done. The
// returned release function must be called on every exit path; it is safe to
// call exactly once.
func (s *TenantSlots) Acquire(ctx context.Context, orgID string) (func(), error) {
	sem := s.tenant(orgID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() { sem.Release(1) })
	}, nil
}

// TryAcquire acquires a slot without blocking, reporting success.
func (s *TenantSlots) TryAcquire(orgID string) (func(), bool) {
	sem := s.tenant(orgID)
	if !sem.TryAcquire(1) {
		return nil, false
	}
	var once sync.Once
	return func() {
		once.Do(func() { sem.Release(1) })
	}, true
}

func (s *TenantSlots) tenant(orgID string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()
	sem, ok := s.slots[orgID]
	if !ok {
		sem = semaphore.NewWeighted(s.max)
		s.slots[orgID] = sem
	}
	return sem
}
