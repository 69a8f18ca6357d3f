package meetingbot

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

	client, err := New(testFabric(), Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("requires fabric", func(t *testing.T) {
		_, err := New(nil, Config{BaseURL: "https://api.example.com", APIKey: "k"})
		require.Error(t, err)
	})

	t.Run("requires base URL and API key", func(t *testing.T) {
		_, err := New(testFabric(), Config{APIKey: "k"})
		require.Error(t, err)

		_, err = New(testFabric(), Config{BaseURL: "https://api.example.com"})
		require.Error(t, err)
	})
}

func TestDeployBot(t *testing.T) {
	ctx := context.Background()

	t.Run("posts scheduled join request", func(t *testing.T) {
		joinAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/bots", r.URL.Path)
			assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "https://zoom.us/j/123", body["meeting_url"])
			assert.Equal(t, "Cadenza Notetaker", body["bot_name"])
			assert.Equal(t, "2026-03-14T15:00:00Z", body["join_at"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "bot-1", "status": "scheduled", "meeting_url": "https://zoom.us/j/123"}`))
		}))

		bot, err := client.DeployBot(ctx, "org-1", DeployBotRequest{
			MeetingURL: "https://zoom.us/j/123",
			BotName:    "Cadenza Notetaker",
			JoinAt:     joinAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "bot-1", bot.ID)
		assert.Equal(t, "scheduled", bot.Status)
	})

	t.Run("immediate join omits join_at", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, present := body["join_at"]
			assert.False(t, present)

			_, _ = w.Write([]byte(`{"id": "bot-2", "status": "joining"}`))
		}))

		bot, err := client.DeployBot(ctx, "org-1", DeployBotRequest{MeetingURL: "https://meet.example.com/abc"})
		require.NoError(t, err)
		assert.Equal(t, "bot-2", bot.ID)
	})

	t.Run("requires meeting URL", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}))

		_, err := client.DeployBot(ctx, "org-1", DeployBotRequest{})
		require.Error(t, err)
	})
}

func TestCancelBot(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the bot", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/v1/bots/bot-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, client.CancelBot(ctx, "org-1", "bot-1"))
	})

	t.Run("missing bot counts as cancelled", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		require.NoError(t, client.CancelBot(ctx, "org-1", "bot-gone"))
	})

	t.Run("server errors propagate", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		err := client.CancelBot(ctx, "org-1", "bot-1")
		var cerr *clients.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, clients.KindServerError, cerr.Kind)
	})
}

func TestGetRecording(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/bots/bot-1/recording", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "rec-media-1",
			"status": "done",
			"video_url": "https://cdn.example.com/video.mp4?sig=abc",
			"audio_url": "https://cdn.example.com/audio.mp3?sig=def",
			"content_type": "video/mp4",
			"duration_seconds": 1847
		}`))
	}))

	rec, err := client.GetRecording(context.Background(), "org-1", "bot-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-media-1", rec.ID)
	assert.Equal(t, "https://cdn.example.com/video.mp4?sig=abc", rec.VideoURL)
	assert.Equal(t, "https://cdn.example.com/audio.mp3?sig=def", rec.AudioURL)
	assert.Equal(t, "video/mp4", rec.ContentType)
	assert.Equal(t, 1847, rec.DurationSeconds)
}

func TestGetTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("returns transcript payload", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/bots/bot-1/transcript", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"text": "hello world", "segments": [{"speaker": "Ada", "text": "hello world"}]}`))
		}))

		transcript, err := client.GetTranscript(ctx, "org-1", "bot-1")
		require.NoError(t, err)
		assert.Equal(t, "hello world", transcript["text"])
		assert.Len(t, transcript["segments"], 1)
	})

	t.Run("404 means not ready yet", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetTranscript(ctx, "org-1", "bot-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("server errors are not ErrNotReady", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.GetTranscript(ctx, "org-1", "bot-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotReady)
	})
}
