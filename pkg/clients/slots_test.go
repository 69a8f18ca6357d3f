package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantSlots(t *testing.T) {
	t.Run("caps concurrency per tenant", func(t *testing.T) {
		slots := NewTenantSlots(2)

		r1, ok := slots.TryAcquire("org-1")
		require.True(t, ok)
		r2, ok := slots.TryAcquire("org-1")
		require.True(t, ok)

		_, ok = slots.TryAcquire("org-1")
		assert.False(t, ok, "third slot must be unavailable")

		// Other tenants are unaffected
		r3, ok := slots.TryAcquire("org-2")
		require.True(t, ok)
		r3()

		r1()
		r4, ok := slots.TryAcquire("org-1")
		assert.True(t, ok, "released slot becomes available")
		r4()
		r2()
	})

	t.Run("release is idempotent", func(t *testing.T) {
		slots := NewTenantSlots(1)
		release, err := slots.Acquire(context.Background(), "org-1")
		require.NoError(t, err)
		release()
		release() // second call must not over-release

		_, ok := slots.TryAcquire("org-1")
		assert.True(t, ok)
	})

	t.Run("waiter resumes when a slot frees", func(t *testing.T) {
		slots := NewTenantSlots(1)
		release, err := slots.Acquire(context.Background(), "org-1")
		require.NoError(t, err)

		acquired := make(chan struct{})
		go func() {
			r, err := slots.Acquire(context.Background(), "org-1")
			if err == nil {
				r()
			}
			close(acquired)
		}()

		select {
		case <-acquired:
			t.Fatal("waiter acquired before release")
		case <-time.After(50 * time.Millisecond):
		}

		release()
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("waiter did not resume after release")
		}
	})

	t.Run("cancelled waiter returns error", func(t *testing.T) {
		slots := NewTenantSlots(1)
		release, err := slots.Acquire(context.Background(), "org-1")
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = slots.Acquire(ctx, "org-1")
		assert.Error(t, err)
	})
}
