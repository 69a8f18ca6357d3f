package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/clients"
)

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

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(testFabric(), Config{BaseURL: srv.URL, APIKey: "mail-key"})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("requires fabric", func(t *testing.T) {
		_, err := New(nil, Config{BaseURL: "https://mail.example.com", APIKey: "k"})
		require.Error(t, err)
	})

	t.Run("requires base URL and API key", func(t *testing.T) {
		_, err := New(testFabric(), Config{APIKey: "k"})
		require.Error(t, err)

		_, err = New(testFabric(), Config{BaseURL: "https://mail.example.com"})
		require.Error(t, err)
	})
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("submits the message", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@acme.com", body["to"])
			assert.Equal(t, "Your recording is ready", body["subject"])
			assert.Equal(t, "Watch it here.", body["text"])
			_, present := body["html"]
			assert.False(t, present)

			w.WriteHeader(http.StatusAccepted)
		}))

		err := client.Send(ctx, "org-1", Message{
			To:      "ana@acme.com",
			Subject: "Your recording is ready",
			Text:    "Watch it here.",
		})
		require.NoError(t, err)
	})

	t.Run("requires recipient and subject", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}))

		require.Error(t, client.Send(ctx, "org-1", Message{Subject: "s", Text: "t"}))
		require.Error(t, client.Send(ctx, "org-1", Message{To: "a@b.com", Text: "t"}))
	})

	t.Run("rejections propagate as typed errors", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		err := client.Send(ctx, "org-1", Message{To: "a@b.com", Subject: "s", Text: "t"})
		var cerr *clients.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, clients.KindBadRequest, cerr.Kind)
	})
}
