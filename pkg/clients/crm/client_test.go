package crm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/clients"
)

type staticTokenStore struct {
	tok    *clients.Token
	err    error
	reauth bool
}

func (s *staticTokenStore) Token(_ context.Context, _, _ string) (*clients.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tok, nil
}

func (s *staticTokenStore) Save(_ context.Context, _, _ string, tok *clients.Token) error {
	s.tok = tok
	return nil
}

func (s *staticTokenStore) MarkReauthRequired(_ context.Context, _, _ string) error {
	s.reauth = true
	return nil
}

func testFabric() *clients.Fabric {
	return clients.NewFabric(clients.FabricConfig{
		Timeout: 5 * time.Second,
		Retry: clients.RetryPolicy{
			MaxRetries: 1,
			BaseDelay:  time.Millisecond,
			MaxDelay:   2 * time.Millisecond,
		},
	})
}

func newTestClient(t *testing.T, handler http.Handler, store *staticTokenStore) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := clients.NewTokenSource(store, func(_ context.Context, _ string) (*clients.Token, error) {
		return nil, errors.New("refresh not expected in this test")
	})
	client, err := New(testFabric(), tokens, Config{Provider: "hubspot", BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func freshStore() *staticTokenStore {
	return &staticTokenStore{tok: &clients.Token{
		AccessToken: "at-1",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}
}

func TestGetEntity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/candidates/cand-1", r.URL.Path)
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cand-1", "name": "Ada Lovelace", "stage": "interview"}`))
	}), freshStore())

	entity, err := client.GetEntity(context.Background(), "org-1", "candidates", "cand-1")
	require.NoError(t, err)
	assert.Equal(t, "cand-1", entity["id"])
	assert.Equal(t, "Ada Lovelace", entity["name"])
}

func TestCreateEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("posts fields and returns stored record", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/notes", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Call summary", body["title"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "note-9", "title": "Call summary"}`))
		}), freshStore())

		entity, err := client.CreateEntity(ctx, "org-1", "notes", Entity{"title": "Call summary"})
		require.NoError(t, err)
		assert.Equal(t, "note-9", entity["id"])
	})

	t.Run("requires fields", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}), freshStore())

		_, err := client.CreateEntity(ctx, "org-1", "notes", nil)
		require.Error(t, err)
	})
}

func TestUpdateEntity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/deals/deal-3", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "closed_won", body["stage"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "deal-3", "stage": "closed_won"}`))
	}), freshStore())

	entity, err := client.UpdateEntity(context.Background(), "org-1", "deals", "deal-3", Entity{"stage": "closed_won"})
	require.NoError(t, err)
	assert.Equal(t, "closed_won", entity["stage"])
}

func TestSearchEntities(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contacts/search", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body["query"])
		assert.Equal(t, float64(10), body["limit"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": "c-1"}, {"id": "c-2"}]}`))
	}), freshStore())

	entities, err := client.SearchEntities(context.Background(), "org-1", "contacts", SearchQuery{Query: "acme", Limit: 10})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "c-1", entities[0]["id"])
}

func TestTokenLifecycleErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unlinked provider", func(t *testing.T) {
		store := &staticTokenStore{err: clients.ErrNoConnection}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}), store)

		_, err := client.GetEntity(ctx, "org-1", "candidates", "cand-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, clients.ErrNoConnection)
	})

	t.Run("dead refresh token parks the connection", func(t *testing.T) {
		store := &staticTokenStore{tok: &clients.Token{
			AccessToken:  "at-stale",
			RefreshToken: "rt-dead",
			ExpiresAt:    time.Now().Add(-time.Hour),
		}}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}), store)

		_, err := client.GetEntity(ctx, "org-1", "candidates", "cand-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, clients.ErrReauthRequired)
		assert.True(t, store.reauth)
	})

	t.Run("upstream 401 is auth_failed", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), freshStore())

		_, err := client.GetEntity(ctx, "org-1", "candidates", "cand-1")
		var cerr *clients.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, clients.KindAuthFailed, cerr.Kind)
	})
}
