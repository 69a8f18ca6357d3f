package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/sequence"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/signing"
	testdb "github.com/stridehq/cadenza/test/database"
)

const (
	testServiceKey     = "test-service-role-key"
	testCronSecret     = "test-cron-secret"
	testRecorderSecret = "whsec_recorder"
	testMeetingsSecret = "whsec_meetings"
	testStripeSecret   = "whsec_stripe"
	testSentrySecret   = "whsec_sentry"
)

// fakeBotAPI records recorder control-plane calls so schedule and cancel
// handlers run without a provider.
type fakeBotAPI struct {
	mu        sync.Mutex
	deployed  []meetingbot.DeployBotRequest
	cancelled []string
}

func (f *fakeBotAPI) DeployBot(_ context.Context, _ string, req meetingbot.DeployBotRequest) (*meetingbot.Bot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deployed = append(f.deployed, req)
	return &meetingbot.Bot{ID: "bot-" + uuid.New().String(), Status: "scheduled", MeetingURL: req.MeetingURL}, nil
}

func (f *fakeBotAPI) CancelBot(_ context.Context, _, botID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, botID)
	return nil
}

func (f *fakeBotAPI) deployCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deployed)
}

func (f *fakeBotAPI) cancelledIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cancelled...)
}

// testConfig builds a server config with the response cache and rate
// limiter off. Middleware tests switch them back on per server.
func testConfig() *config.Config {
	off := false
	mw := config.DefaultMiddlewareConfig()
	mw.Cache.Enabled = &off
	mw.RateLimit.Enabled = &off

	return &config.Config{
		App: &config.AppConfig{
			Port:                         "8080",
			Environment:                  "test",
			LogLevel:                     "error",
			ServiceRoleKey:               testServiceKey,
			CronSecret:                   testCronSecret,
			MeetingRecorderWebhookSecret: testRecorderSecret,
			MeetingsWebhookSecret:        testMeetingsSecret,
			StripeWebhookSecret:          testStripeSecret,
			SentryWebhookSecret:          testSentrySecret,
		},
		Notifications: config.DefaultNotificationConfig(),
		Recording:     config.DefaultRecordingConfig(),
		Workers:       config.DefaultWorkerConfig(),
		Middleware:    mw,
		Retention:     config.DefaultRetentionConfig(),
		Routing:       config.DefaultRoutingConfig(),
		AllowedOrigins: []string{
			"https://app.example.com",
			"https://*.preview.example.com",
		},
		SequenceRegistry: testSequences(),
	}
}

// testSequences registers the follow-up keys the webhook handlers start,
// each reduced to the pure template skill so no LLM is needed.
func testSequences() *config.SequenceRegistry {
	templateStep := func(summarySource string) []config.StepConfig {
		return []config.StepConfig{
			{
				Order:    1,
				SkillKey: "draft_followup_template",
				InputMapping: map[string]string{
					"summary":       summarySource,
					"meeting_title": "${trigger.meeting_title}",
					"recipient":     "${context.recipient_email}",
				},
				OutputKey: "draft",
				OnFailure: config.OnFailureStop,
			},
		}
	}
	return config.NewSequenceRegistry(map[string]*config.SequenceConfig{
		// The no-show trigger carries no summary, so the draft recaps the
		// meeting title instead.
		"meeting_followup": {Description: "follow-up draft", Steps: templateStep("${trigger.summary}")},
		"no_show_followup": {Description: "reschedule draft", Steps: templateStep("${trigger.meeting_title}")},
	})
}

type testEnv struct {
	server *Server
	cfg    *config.Config
	db     *database.Client

	webhookEvents *services.WebhookEventService
	recordings    *services.RecordingService
	deployments   *services.BotDeploymentService
	members       *services.OrgMemberService
	rules         *services.RuleService
	notifications *services.NotificationService
	inapp         *services.InAppService
	interactions  *services.InteractionService
	metrics       *services.UserMetricsService
	executions    *services.SequenceExecutionService
	warnings      *services.SystemWarningsService

	bots *fakeBotAPI
}

// newTestEnv stands up a server over a fresh test database. A nil cfg
// gets testConfig; mutate deps to swap in workers or Redis, with the
// env's services available for wiring them.
func newTestEnv(t *testing.T, cfg *config.Config, mutate ...func(*testEnv, *Deps)) *testEnv {
	t.Helper()

	if cfg == nil {
		cfg = testConfig()
	}
	client := testdb.NewTestClient(t)

	env := &testEnv{
		cfg:           cfg,
		db:            client,
		webhookEvents: services.NewWebhookEventService(client.Client),
		recordings:    services.NewRecordingService(client.Client),
		deployments:   services.NewBotDeploymentService(client.Client),
		members:       services.NewOrgMemberService(client.Client),
		rules:         services.NewRuleService(client.Client),
		notifications: services.NewNotificationService(client.Client),
		inapp:         services.NewInAppService(client.Client),
		interactions:  services.NewInteractionService(client.Client),
		metrics:       services.NewUserMetricsService(client.Client),
		executions:    services.NewSequenceExecutionService(client.Client),
		warnings:      services.NewSystemWarningsService(),
		bots:          &fakeBotAPI{},
	}

	lifecycle := recording.NewLifecycle(recording.LifecycleDeps{
		Recordings:  env.recordings,
		Deployments: env.deployments,
		RetryJobs:   services.NewRetryJobService(client.Client),
		Rules:       env.rules,
		Bots:        env.bots,
		Config:      cfg.Recording,
	})

	registry := sequence.NewRegistry()
	for _, h := range sequence.BuiltinSkills(nil) {
		registry.RegisterSkill(h)
	}
	for _, h := range sequence.BuiltinActions(nil, nil, env.notifications) {
		registry.RegisterAction(h)
	}
	runner := sequence.NewRunner(sequence.RunnerDeps{
		Executions:  env.executions,
		Sequences:   cfg.SequenceRegistry,
		Registry:    registry,
		StepTimeout: 30 * time.Second,
	})

	deps := Deps{
		WebhookEvents: env.webhookEvents,
		Recordings:    env.recordings,
		Deployments:   env.deployments,
		Members:       env.members,
		Rules:         env.rules,
		Notifications: env.notifications,
		InApp:         env.inapp,
		Interactions:  env.interactions,
		UserMetrics:   env.metrics,
		Executions:    env.executions,
		Warnings:      env.warnings,
		Lifecycle:     lifecycle,
		Runner:        runner,
		Masker:        masking.NewMaskingService(),
	}
	for _, m := range mutate {
		m(env, &deps)
	}

	env.server = NewServer(cfg, client.DB(), deps)
	return env
}

// request drives one request through the full router and middleware
// chain. Options mutate the request before it is served.
func (env *testEnv) request(t *testing.T, method, path string, body any, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(w, req)
	return w
}

// post sends raw bytes without re-marshalling, for webhook deliveries
// whose signature covers the exact body.
func (env *testEnv) post(t *testing.T, path string, raw []byte, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(w, req)
	return w
}

func asService(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+testServiceKey)
}

func asUser(userID string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("X-Forwarded-User", userID)
	}
}

func asCron(req *http.Request) {
	req.Header.Set("X-Cron-Secret", testCronSecret)
}

// signedShared signs a body with the internal v1={hex} scheme used by
// the meetings and sentry sources.
func signedShared(secret string, body []byte) func(*http.Request) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := signing.Sign(secret, []byte(ts+":"+string(body)))
	return func(req *http.Request) {
		req.Header.Set("X-Webhook-Timestamp", ts)
		req.Header.Set("X-Webhook-Signature", "v1="+mac)
	}
}

// signedRecorder signs a body the way the meeting-recorder provider does.
func signedRecorder(secret string, body []byte) func(*http.Request) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := signing.Sign(secret, []byte(ts+":"+string(body)))
	return func(req *http.Request) {
		req.Header.Set("svix-timestamp", ts)
		req.Header.Set("svix-signature", "v1="+mac)
	}
}

// signedStripe signs a body with the t=...,v1=... scheme.
func signedStripe(secret string, body []byte) func(*http.Request) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := signing.Sign(secret, []byte(ts+"."+string(body)))
	return func(req *http.Request) {
		req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%s,v1=%s", ts, mac))
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

// seedMember inserts an org membership row for role checks.
func (env *testEnv) seedMember(t *testing.T, orgID, userID, role string) {
	t.Helper()
	_, err := env.members.UpsertMember(context.Background(), services.UpsertMemberRequest{
		OrgID:  orgID,
		UserID: userID,
		Role:   role,
		Email:  userID + "@example.com",
	})
	require.NoError(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "cadenza", body["service"])
	assert.NotEmpty(t, body["version"])
}

func TestReadyEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, http.MethodGet, "/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ready", body["status"])
	assert.NotNil(t, body["database"])
}

func TestSystemInfo(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("service role sees config stats", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, asService)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "cadenza", body["service"])
		cfg, ok := body["config"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 2, cfg["sequences"])
		assert.Contains(t, cfg["sequence_keys"], "meeting_followup")
	})

	t.Run("user tokens are forbidden", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/v1/system/info", nil, asUser("user-1"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSystemWarnings(t *testing.T) {
	env := newTestEnv(t, nil)
	env.warnings.AddWarning(services.WarningCategoryRateLimiter, "limiter degraded", "", "")

	w := env.request(t, http.MethodGet, "/api/v1/system/warnings", nil, asService)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	warnings, ok := body["warnings"].([]any)
	require.True(t, ok)
	require.Len(t, warnings, 1)
}
