package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient builds a Client against a local mock of the Slack Web API.
// slack-go appends method names to the API URL, hence the trailing slash.
func mockClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithAPIURL("xoxb-test", srv.URL+"/")
}

func TestPostMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("posts text and blocks", func(t *testing.T) {
		client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "/chat.postMessage", r.URL.Path)
			assert.Equal(t, "C042", r.Form.Get("channel"))
			assert.Equal(t, "Recording ready", r.Form.Get("text"))
			assert.Contains(t, r.Form.Get("blocks"), "Acme Corp")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok": true, "channel": "C042", "ts": "1726000000.000100"}`))
		})

		blocks := BuildMessage(MessageInput{Body: "Call with *Acme Corp* processed."})
		ts, err := client.PostMessage(ctx, "C042", "Recording ready", blocks)
		require.NoError(t, err)
		assert.Equal(t, "1726000000.000100", ts)
	})

	t.Run("clamps oversized block text before posting", func(t *testing.T) {
		client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Contains(t, r.Form.Get("blocks"), ellipsis)
			assert.NotContains(t, r.Form.Get("blocks"), strings.Repeat("h", HeaderLimit+1))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok": true, "channel": "C042", "ts": "1726000000.000200"}`))
		})

		blocks := []goslack.Block{
			goslack.NewHeaderBlock(goslack.NewTextBlockObject(goslack.PlainTextType, strings.Repeat("h", HeaderLimit+50), false, false)),
		}
		_, err := client.PostMessage(ctx, "C042", "", blocks)
		require.NoError(t, err)
	})

	t.Run("API errors propagate", func(t *testing.T) {
		client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
		})

		_, err := client.PostMessage(ctx, "C-missing", "hi", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel_not_found")
	})
}

func TestUpdateMessage(t *testing.T) {
	client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/chat.update", r.URL.Path)
		assert.Equal(t, "C042", r.Form.Get("channel"))
		assert.Equal(t, "1726000000.000100", r.Form.Get("ts"))
		assert.Equal(t, "Recording ready (updated)", r.Form.Get("text"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "channel": "C042", "ts": "1726000000.000100"}`))
	})

	err := client.UpdateMessage(context.Background(), "C042", "1726000000.000100", "Recording ready (updated)", nil)
	require.NoError(t, err)
}

func TestOpenDM(t *testing.T) {
	ctx := context.Background()

	t.Run("opens conversation with user", func(t *testing.T) {
		client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/conversations.open", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok": true, "channel": {"id": "D900"}}`))
		})

		channelID, err := client.OpenDM(ctx, "U123")
		require.NoError(t, err)
		assert.Equal(t, "D900", channelID)
	})

	t.Run("user not found propagates", func(t *testing.T) {
		client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok": false, "error": "users_not_found"}`))
		})

		_, err := client.OpenDM(ctx, "U-missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users_not_found")
	})
}

func TestSendDM(t *testing.T) {
	var posted bool
	client := mockClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/conversations.open":
			_, _ = w.Write([]byte(`{"ok": true, "channel": {"id": "D900"}}`))
		case "/chat.postMessage":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "D900", r.Form.Get("channel"))
			posted = true
			_, _ = w.Write([]byte(`{"ok": true, "channel": "D900", "ts": "1726000000.000300"}`))
		default:
			t.Errorf("unexpected API call %s", r.URL.Path)
		}
	})

	ts, err := client.SendDM(context.Background(), "U123", "Your recording is ready", nil)
	require.NoError(t, err)
	assert.Equal(t, "1726000000.000300", ts)
	assert.True(t, posted)
}
