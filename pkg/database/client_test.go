package database

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/test/util"
)

// newTestClient wraps a per-test schema in a Client and applies the
// custom DDL this package owns, the same way NewClient does after
// migrations.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestClientConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)

	// Durations are reported in milliseconds; a nanosecond leak here
	// once rendered the probe unreadable.
	data, err := json.Marshal(health)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	responseTime, ok := body["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1_000_000), "a local ping in ms can never reach this")

	_, ok = body["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
}

// TestTranscriptSearch exercises the expression the transcript GIN index
// is built over. The COALESCE keeps recordings without a transcript out
// of the result set instead of failing the query.
func TestTranscriptSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	pricing, err := client.Recording.Create().
		SetID("rec-fts-1").
		SetOrgID("org-fts").
		SetUserID("user-fts").
		SetMeetingPlatform("zoom").
		SetMeetingURL("https://zoom.example/j/111").
		SetTranscript(map[string]interface{}{
			"text": "Customer raised a pricing objection and asked for the enterprise discount schedule",
		}).
		Save(ctx)
	require.NoError(t, err)

	renewal, err := client.Recording.Create().
		SetID("rec-fts-2").
		SetOrgID("org-fts").
		SetUserID("user-fts").
		SetMeetingPlatform("google_meet").
		SetMeetingURL("https://meet.example/abc").
		SetTranscript(map[string]interface{}{
			"text": "Renewal call covered the rollout timeline and admin training",
		}).
		Save(ctx)
	require.NoError(t, err)

	// No transcript yet: the bot is still in the meeting.
	_, err = client.Recording.Create().
		SetID("rec-fts-3").
		SetOrgID("org-fts").
		SetUserID("user-fts").
		SetMeetingPlatform("zoom").
		SetMeetingURL("https://zoom.example/j/333").
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT recording_id FROM recordings
			WHERE to_tsvector('english', COALESCE(transcript->>'text', '')) @@ to_tsquery('english', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		return ids
	}

	assert.Equal(t, []string{pricing.ID}, search("pricing & objection"))
	assert.Equal(t, []string{renewal.ID}, search("renewal"))
	assert.Empty(t, search("kubernetes"), "no transcript mentions this")
}

// TestFeedbackPromptUniqueIndex checks the partial unique index that
// keeps at most one live feedback prompt per user. Worker ticks racing
// to queue the prompt collide on this index instead of double-queuing.
func TestFeedbackPromptUniqueIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	newPrompt := func(id, userID string) (*ent.NotificationQueueItem, error) {
		return client.NotificationQueueItem.Create().
			SetID(id).
			SetUserID(userID).
			SetOrgID("org-fb").
			SetNotificationType("feedback_request").
			SetChannel(notificationqueueitem.ChannelInApp).
			SetPriority(notificationqueueitem.PriorityLow).
			SetPayload(map[string]interface{}{"title": "How are we doing on notifications?"}).
			SetScheduledFor(time.Now()).
			Save(ctx)
	}

	first, err := newPrompt("fb-1", "user-one")
	require.NoError(t, err)

	_, err = newPrompt("fb-2", "user-one")
	require.Error(t, err, "a second live prompt for the same user must collide")
	assert.True(t, ent.IsConstraintError(err))

	// Another user's prompt is unaffected.
	_, err = newPrompt("fb-3", "user-two")
	require.NoError(t, err)

	// Once the first prompt leaves the live states, the user can be
	// prompted again.
	err = client.NotificationQueueItem.UpdateOneID(first.ID).
		SetStatus(notificationqueueitem.StatusSent).
		SetSentAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	_, err = newPrompt("fb-4", "user-one")
	require.NoError(t, err)

	// A regular notification never touches the index.
	_, err = client.NotificationQueueItem.Create().
		SetID("fb-5").
		SetUserID("user-one").
		SetOrgID("org-fb").
		SetNotificationType("deal_alert").
		SetChannel(notificationqueueitem.ChannelInApp).
		SetPayload(map[string]interface{}{"title": "Deal update"}).
		SetScheduledFor(time.Now()).
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults applied",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "cadenza", cfg.User)
				assert.Equal(t, "cadenza", cfg.Database)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
				assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":               "db.example.com",
				"DB_PORT":               "5433",
				"DB_USER":               "admin",
				"DB_PASSWORD":           "secret",
				"DB_NAME":               "production",
				"DB_SSLMODE":            "require",
				"DB_MAX_OPEN_CONNS":     "50",
				"DB_MAX_IDLE_CONNS":     "20",
				"DB_CONN_MAX_LIFETIME":  "1h",
				"DB_CONN_MAX_IDLE_TIME": "10m",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
				assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_MAX_IDLE_CONNS",
			envVars:     map[string]string{"DB_MAX_IDLE_CONNS": "abc123", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name:        "invalid DB_CONN_MAX_LIFETIME",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "thirty minutes", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "invalid DB_CONN_MAX_IDLE_TIME",
			envVars:     map[string]string{"DB_CONN_MAX_IDLE_TIME": "not_a_duration", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "cadenza",
		Password:     "secret",
		Database:     "cadenza",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing password",
			mutate:  func(cfg *Config) { cfg.Password = "" },
			wantErr: "DB_PASSWORD is required",
		},
		{
			name:    "zero max open conns",
			mutate:  func(cfg *Config) { cfg.MaxOpenConns = 0 },
			wantErr: "DB_MAX_OPEN_CONNS must be positive",
		},
		{
			name:    "negative idle conns",
			mutate:  func(cfg *Config) { cfg.MaxIdleConns = -1 },
			wantErr: "DB_MAX_IDLE_CONNS must not be negative",
		},
		{
			name:    "idle conns exceed max conns",
			mutate:  func(cfg *Config) { cfg.MaxIdleConns = 50 },
			wantErr: "must not exceed DB_MAX_OPEN_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "cadenza",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=secret dbname=cadenza sslmode=require",
		cfg.DSN())
}
