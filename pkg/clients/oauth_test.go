package clients

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	mu       sync.Mutex
	tok      *Token
	saved    *Token
	reauthed bool
}

func (s *fakeTokenStore) Token(_ context.Context, _, _ string) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.tok
	return &cp, nil
}

func (s *fakeTokenStore) Save(_ context.Context, _, _ string, tok *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	s.saved = tok
	return nil
}

func (s *fakeTokenStore) MarkReauthRequired(_ context.Context, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reauthed = true
	return nil
}

func TestTokenSource(t *testing.T) {
	t.Run("fresh token returned without refresh", func(t *testing.T) {
		store := &fakeTokenStore{tok: &Token{
			AccessToken: "fresh", RefreshToken: "r", ExpiresAt: time.Now().Add(time.Hour),
		}}
		var refreshes atomic.Int32
		ts := NewTokenSource(store, func(ctx context.Context, rt string) (*Token, error) {
			refreshes.Add(1)
			return nil, errors.New("must not be called")
		})

		got, err := ts.AccessToken(context.Background(), "org-1", "fathom")
		require.NoError(t, err)
		assert.Equal(t, "fresh", got)
		assert.Equal(t, int32(0), refreshes.Load())
	})

	t.Run("token within 5 minutes of expiry refreshes", func(t *testing.T) {
		store := &fakeTokenStore{tok: &Token{
			AccessToken: "old", RefreshToken: "refresh-1", ExpiresAt: time.Now().Add(4 * time.Minute),
		}}
		ts := NewTokenSource(store, func(ctx context.Context, rt string) (*Token, error) {
			assert.Equal(t, "refresh-1", rt)
			return &Token{
				AccessToken: "new", RefreshToken: "refresh-2", ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		})

		got, err := ts.AccessToken(context.Background(), "org-1", "fathom")
		require.NoError(t, err)
		assert.Equal(t, "new", got)
		require.NotNil(t, store.saved)
		assert.Equal(t, "refresh-2", store.saved.RefreshToken)
	})

	t.Run("concurrent refreshes collapse into one upstream call", func(t *testing.T) {
		store := &fakeTokenStore{tok: &Token{
			AccessToken: "old", RefreshToken: "r", ExpiresAt: time.Now().Add(-time.Minute),
		}}
		var refreshes atomic.Int32
		ts := NewTokenSource(store, func(ctx context.Context, rt string) (*Token, error) {
			refreshes.Add(1)
			time.Sleep(50 * time.Millisecond)
			return &Token{AccessToken: "new", RefreshToken: "r2", ExpiresAt: time.Now().Add(time.Hour)}, nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := ts.AccessToken(context.Background(), "org-1", "fathom")
				assert.NoError(t, err)
				assert.Equal(t, "new", got)
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), refreshes.Load())
	})

	t.Run("refresh failure parks connection and is terminal", func(t *testing.T) {
		store := &fakeTokenStore{tok: &Token{
			AccessToken: "old", RefreshToken: "dead", ExpiresAt: time.Now().Add(-time.Minute),
		}}
		ts := NewTokenSource(store, func(ctx context.Context, rt string) (*Token, error) {
			return nil, errors.New("invalid_grant")
		})

		_, err := ts.AccessToken(context.Background(), "org-1", "fathom")
		assert.ErrorIs(t, err, ErrReauthRequired)
		assert.True(t, store.reauthed)
	})
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		expiresAt time.Time
		expired   bool
	}{
		{"well before expiry", now.Add(time.Hour), false},
		{"just outside skew", now.Add(5*time.Minute + time.Second), false},
		{"exactly at skew boundary", now.Add(5 * time.Minute), true},
		{"inside skew", now.Add(time.Minute), true},
		{"already expired", now.Add(-time.Minute), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expired, tok.Expired(now))
		})
	}
}
