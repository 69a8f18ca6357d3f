// Package e2e boots the whole cadenza stack against a real PostgreSQL
// testcontainer and drives it the way production is driven: signed
// webhook deliveries in, cron ticks for the workers, and the management
// API over HTTP. External providers (meeting recorder, Slack, mail,
// CRM, the LLM, object storage) are replaced by in-memory fakes behind
// the same interfaces the real clients satisfy; the services, workers,
// event bus, and HTTP surface are the production wiring from main.
package e2e

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/api"
	"github.com/stridehq/cadenza/pkg/cleanup"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/notify"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/sequence"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/workers"
	testdb "github.com/stridehq/cadenza/test/database"
	"github.com/stridehq/cadenza/test/util"
)

// Credentials baked into the test configuration. Every request helper
// signs with these.
const (
	testServiceRoleKey = "e2e-service-role-key"
	testCronSecret     = "e2e-cron-secret"
	testRecorderSecret = "whsec-recorder-e2e"
	testMeetingsSecret = "whsec-meetings-e2e"
	testStripeSecret   = "whsec-stripe-e2e"
	testSentrySecret   = "whsec-sentry-e2e"
)

// TestApp is one running cadenza instance plus handles into everything
// a test needs to seed state and observe outcomes.
type TestApp struct {
	t   *testing.T
	cfg *config.Config

	DB  *database.Client
	Ent *ent.Client

	// Provider fakes
	Recorder *FakeRecorderProvider
	Slack    *FakeSlack
	Mail     *FakeMailer
	CRM      *FakeCRM
	LLM      *ScriptedLLM
	Media    *FakeMediaStore

	// Domain services, shared with the server under test
	WebhookEvents *services.WebhookEventService
	Recordings    *services.RecordingService
	Deployments   *services.BotDeploymentService
	Members       *services.OrgMemberService
	Workspaces    *services.SlackWorkspaceService
	Notifications *services.NotificationService
	InApp         *services.InAppService
	Interactions  *services.InteractionService
	UserMetrics   *services.UserMetricsService
	Executions    *services.SequenceExecutionService
	RetryJobs     *services.RetryJobService

	Publisher *events.Publisher
	Hub       *events.Hub

	// BaseURL is the ephemeral listen address, e.g. http://127.0.0.1:41392
	BaseURL string
}

type options struct {
	mutateConfig []func(*config.Config)
	db           *database.Client
	podID        string
	background   bool
}

// Option customizes NewTestApp.
type Option func(*options)

// WithConfig mutates the default test configuration before wiring.
func WithConfig(mutate func(cfg *config.Config)) Option {
	return func(o *options) { o.mutateConfig = append(o.mutateConfig, mutate) }
}

// WithDBClient reuses an existing database client instead of creating a
// fresh schema. Multi-replica tests point several apps at one schema.
func WithDBClient(db *database.Client) Option {
	return func(o *options) { o.db = db }
}

// WithPodID sets the worker identity used for queue claims.
func WithPodID(podID string) Option {
	return func(o *options) { o.podID = podID }
}

// WithBackgroundWorkers starts the worker pool and the pg_notify
// listener, as a deployment without an external scheduler runs. Most
// tests leave this off and drive ticks through the cron endpoints.
func WithBackgroundWorkers() Option {
	return func(o *options) { o.background = true }
}

// NewTestApp wires and starts a full cadenza instance. The wiring
// follows cmd/cadenza/main.go step for step so the tests exercise the
// production object graph. Everything registered here is torn down via
// t.Cleanup in reverse order.
func NewTestApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg := defaultTestConfig()
	for _, mutate := range o.mutateConfig {
		mutate(cfg)
	}
	podID := o.podID
	if podID == "" {
		podID = "e2e-pod"
	}
	cfg.App.PodID = podID

	// 2. Database: a fresh schema on the shared container, unless the
	// test passed its own client
	db := o.db
	if db == nil {
		db = testdb.NewTestClient(t)
	}

	// 3. Domain services
	webhookEvents := services.NewWebhookEventService(db.Client)
	recordings := services.NewRecordingService(db.Client)
	deployments := services.NewBotDeploymentService(db.Client)
	members := services.NewOrgMemberService(db.Client)
	ruleStore := services.NewRuleService(db.Client)
	notifications := services.NewNotificationService(db.Client)
	inapp := services.NewInAppService(db.Client)
	interactions := services.NewInteractionService(db.Client)
	userMetrics := services.NewUserMetricsService(db.Client)
	executions := services.NewSequenceExecutionService(db.Client)
	workspaces := services.NewSlackWorkspaceService(db.Client)
	retryJobs := services.NewRetryJobService(db.Client)
	warnings := services.NewSystemWarningsService()
	masker := masking.NewMaskingService()

	// 4. Boot recovery, same as a restarted pod
	_, err := notifications.ReleaseOwnedBy(ctx, podID)
	require.NoError(t, err)

	// 5. Event bus. The publisher always runs; the LISTEN connection is
	// only opened when the pool is, since nudges have no audience
	// otherwise.
	publisher := events.NewPublisher(db.DB())
	hub := events.NewHub()
	notifications.SetEnqueueNudge(func(ctx context.Context, item *ent.NotificationQueueItem) {
		payload := events.NotificationEnqueuedPayload{
			NotificationID: item.ID,
			Priority:       string(item.Priority),
			ScheduledFor:   item.ScheduledFor.Format(time.RFC3339),
		}
		payload.OrgID = item.OrgID
		_ = publisher.PublishNotificationEnqueued(ctx, payload)
	})

	// 6. Provider fakes
	recorder := NewFakeRecorderProvider()
	slackFake := NewFakeSlack()
	mailFake := NewFakeMailer()
	crmFake := NewFakeCRM()
	llmFake := NewScriptedLLM()
	mediaStore := NewFakeMediaStore()

	// 7. Notification pipeline
	producer := notify.NewNotifier(notifications, members, userMetrics)
	gate := notify.NewGate(notifications, userMetrics, cfg.Notifications)
	dispatcher := notify.NewDispatcher(notify.DispatcherDeps{
		Members:        members,
		Workspaces:     workspaces,
		InApp:          inapp,
		Mailer:         mailFake,
		NewSlackClient: slackFake.Client,
	})
	notifyWorker := notify.NewWorker(notify.WorkerDeps{
		Notifications: notifications,
		Metrics:       userMetrics,
		Gate:          gate,
		Dispatcher:    dispatcher,
		Producer:      producer,
		Masker:        masker,
		WorkerID:      podID,
		Config:        cfg.Notifications,
	})

	// 8. Recording pipeline. The fake recorder stands in for the bot
	// control plane, the media descriptor API, transcript polling, and
	// the download fabric.
	lifecycle := recording.NewLifecycle(recording.LifecycleDeps{
		Recordings:  recordings,
		Deployments: deployments,
		RetryJobs:   retryJobs,
		Rules:       ruleStore,
		Bots:        recorder,
		Publisher:   publisher,
		Config:      cfg.Recording,
	})
	mediaWorker := recording.NewMediaWorker(recording.MediaWorkerDeps{
		Recordings: recordings,
		RetryJobs:  retryJobs,
		Bots:       recorder,
		Store:      mediaStore,
		Fabric:     recorder,
		Masker:     masker,
		Publisher:  publisher,
		Notifier:   producer,
		Config:     cfg.Recording,
	})
	transcriptWorker := recording.NewTranscriptWorker(recordings, retryJobs, recorder, cfg.Recording)

	// 9. Sequence runtime
	registry := sequence.NewRegistry()
	for _, h := range sequence.BuiltinSkills(llmFake) {
		registry.RegisterSkill(h)
	}
	for _, h := range sequence.BuiltinActions(crmFake, mailFake, notifications) {
		registry.RegisterAction(h)
	}
	runner := sequence.NewRunner(sequence.RunnerDeps{
		Executions:  executions,
		Sequences:   cfg.SequenceRegistry,
		Registry:    registry,
		StepTimeout: cfg.Workers.SequenceStepTimeout.Std(),
	})
	seqWorker := sequence.NewWorker(sequence.WorkerDeps{
		Runner:     runner,
		Executions: executions,
		StaleAfter: cfg.Workers.SequenceStaleAfter.Std(),
	})

	// 10. Cleanup service, driven through /cron/cleanup only; its own
	// retention loop stays stopped so sweeps happen when a test asks.
	cleanupSvc := cleanup.NewService(cleanup.Deps{
		Retention:         cfg.Retention,
		Notifications:     cfg.Notifications,
		Recording:         cfg.Recording,
		NotificationQueue: notifications,
		Executions:        executions,
		WebhookEvents:     webhookEvents,
		RetryJobs:         retryJobs,
		Bots:              deployments,
		Lifecycle:         lifecycle,
	})

	// 11. Worker pool, registered like main registers it. Started (with
	// its LISTEN connection) only under WithBackgroundWorkers.
	pool := workers.NewPool(podID, hub)
	pool.Register(workers.Runner{
		Name:     "notifications",
		Interval: cfg.Workers.NotificationInterval.Std(),
		Channel:  events.ChannelNotifications,
		Tick: func(ctx context.Context) error {
			_, err := notifyWorker.Tick(ctx)
			return err
		},
	})
	pool.Register(workers.Runner{
		Name:     "media_uploads",
		Interval: cfg.Workers.MediaUploadInterval.Std(),
		Channel:  events.ChannelRecordings,
		Tick: func(ctx context.Context) error {
			_, err := mediaWorker.Tick(ctx)
			return err
		},
	})
	pool.Register(workers.Runner{
		Name:     "transcripts",
		Interval: cfg.Workers.TranscriptInterval.Std(),
		Channel:  events.ChannelRecordings,
		Tick: func(ctx context.Context) error {
			_, err := transcriptWorker.Tick(ctx)
			return err
		},
	})
	pool.Register(workers.Runner{
		Name:     "sequence_resume",
		Interval: cfg.Workers.SequenceResumeInterval.Std(),
		Tick: func(ctx context.Context) error {
			_, err := seqWorker.Tick(ctx)
			return err
		},
	})

	var listener *events.NotifyListener
	if o.background {
		listener = events.NewNotifyListener(util.GetBaseConnectionString(t), hub)
		require.NoError(t, listener.Start(ctx))
		for _, channel := range []string{events.ChannelRecordings, events.ChannelNotifications} {
			require.NoError(t, listener.Subscribe(ctx, channel))
		}
		pool.Start(ctx)
	}

	// 12. HTTP server on an ephemeral port
	server := api.NewServer(cfg, db.DB(), api.Deps{
		WebhookEvents: webhookEvents,
		Recordings:    recordings,
		Deployments:   deployments,
		Members:       members,
		Rules:         ruleStore,
		Notifications: notifications,
		InApp:         inapp,
		Interactions:  interactions,
		UserMetrics:   userMetrics,
		Executions:    executions,
		Warnings:      warnings,

		Lifecycle: lifecycle,
		Runner:    runner,
		Masker:    masker,
		Storage:   nil, // playback links fall back to stored presigned URLs
		Events:    publisher,

		Pool:             pool,
		NotifyWorker:     notifyWorker,
		MediaWorker:      mediaWorker,
		TranscriptWorker: transcriptWorker,
		SequenceWorker:   seqWorker,
		Cleanup:          cleanupSvc,

		Redis: nil, // rate limiter passes everything through
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		if err := server.StartWithListener(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("test server exited: %v", err)
		}
	}()

	// Teardown in reverse wiring order, before the schema drops.
	t.Cleanup(func() {
		if o.background {
			pool.Stop()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if listener != nil {
			listener.Stop(shutdownCtx)
		}
	})

	return &TestApp{
		t:   t,
		cfg: cfg,

		DB:  db,
		Ent: db.Client,

		Recorder: recorder,
		Slack:    slackFake,
		Mail:     mailFake,
		CRM:      crmFake,
		LLM:      llmFake,
		Media:    mediaStore,

		WebhookEvents: webhookEvents,
		Recordings:    recordings,
		Deployments:   deployments,
		Members:       members,
		Workspaces:    workspaces,
		Notifications: notifications,
		InApp:         inapp,
		Interactions:  interactions,
		UserMetrics:   userMetrics,
		Executions:    executions,
		RetryJobs:     retryJobs,

		Publisher: publisher,
		Hub:       hub,

		BaseURL: "http://" + ln.Addr().String(),
	}
}

// defaultTestConfig builds a config equivalent to a small production
// deployment: all secrets set, built-in sequences registered, default
// tunables everywhere else. Tests adjust it through WithConfig.
func defaultTestConfig() *config.Config {
	app := &config.AppConfig{
		Port:        "0",
		Environment: "test",
		LogLevel:    "error",

		CronSecret:     testCronSecret,
		ServiceRoleKey: testServiceRoleKey,

		MeetingRecorderWebhookSecret: testRecorderSecret,
		MeetingsWebhookSecret:        testMeetingsSecret,
		StripeWebhookSecret:          testStripeSecret,
		SentryWebhookSecret:          testSentrySecret,

		MeetingBotAPIURL: "https://recorder.invalid",
		MediaBucket:      "cadenza-e2e",
		AWSRegion:        "us-east-1",
	}

	builtin := config.GetBuiltinConfig()
	sequences := make(map[string]*config.SequenceConfig, len(builtin.SequenceDefinitions))
	for key := range builtin.SequenceDefinitions {
		def := builtin.SequenceDefinitions[key]
		sequences[key] = &def
	}

	return &config.Config{
		App:              app,
		Notifications:    config.DefaultNotificationConfig(),
		Recording:        config.DefaultRecordingConfig(),
		Workers:          config.DefaultWorkerConfig(),
		Middleware:       config.DefaultMiddlewareConfig(),
		Retention:        config.DefaultRetentionConfig(),
		Routing:          config.DefaultRoutingConfig(),
		DashboardURL:     "https://dashboard.cadenza.test",
		SequenceRegistry: config.NewSequenceRegistry(sequences),
	}
}
