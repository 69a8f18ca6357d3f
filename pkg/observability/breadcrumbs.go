package observability

import (
	"context"
	"sync"
	"time"
)

// maxBreadcrumbs bounds the per-request breadcrumb ring.
const maxBreadcrumbs = 20

// Breadcrumb is one step on the path leading to an error.
type Breadcrumb struct {
	Category string         `json:"category"`
	Message  string         `json:"message"`
	At       time.Time      `json:"at"`
	Data     map[string]any `json:"data,omitempty"`
}

// Trail is a bounded ring of the most recent breadcrumbs for one request.
// Once full, new entries overwrite the oldest.
type Trail struct {
	mu     sync.Mutex
	crumbs [maxBreadcrumbs]Breadcrumb
	next   int
	size   int
}

// Add records a breadcrumb.
func (t *Trail) Add(category, message string, data map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.crumbs[t.next] = Breadcrumb{
		Category: category,
		Message:  message,
		At:       time.Now(),
		Data:     data,
	}
	t.next = (t.next + 1) % maxBreadcrumbs
	if t.size < maxBreadcrumbs {
		t.size++
	}
}

// Snapshot returns the recorded breadcrumbs oldest-first.
func (t *Trail) Snapshot() []Breadcrumb {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Breadcrumb, 0, t.size)
	start := t.next - t.size
	if start < 0 {
		start += maxBreadcrumbs
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.crumbs[(start+i)%maxBreadcrumbs])
	}
	return out
}

type trailKey struct{}

// WithTrail attaches a fresh breadcrumb trail to ctx.
func WithTrail(ctx context.Context) (context.Context, *Trail) {
	t := &Trail{}
	return context.WithValue(ctx, trailKey{}, t), t
}

// TrailFrom returns the trail attached to ctx, or nil.
func TrailFrom(ctx context.Context) *Trail {
	t, _ := ctx.Value(trailKey{}).(*Trail)
	return t
}

// AddBreadcrumb records a breadcrumb on the context's trail. Contexts
// without a trail (background workers) drop the crumb silently.
func AddBreadcrumb(ctx context.Context, category, message string, data map[string]any) {
	if t := TrailFrom(ctx); t != nil {
		t.Add(category, message, data)
	}
}
