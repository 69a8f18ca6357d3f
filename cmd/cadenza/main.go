// Cadenza orchestration server — ingests signed source webhooks, runs
// the recording and notification pipelines, and serves the management
// API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/pkg/api"
	"github.com/stridehq/cadenza/pkg/cleanup"
	"github.com/stridehq/cadenza/pkg/clients"
	"github.com/stridehq/cadenza/pkg/clients/crm"
	"github.com/stridehq/cadenza/pkg/clients/mailer"
	"github.com/stridehq/cadenza/pkg/clients/meetingbot"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/database"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/llm"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/notify"
	"github.com/stridehq/cadenza/pkg/observability"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/sequence"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/storage"
	"github.com/stridehq/cadenza/pkg/version"
	"github.com/stridehq/cadenza/pkg/workers"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupLogging installs the process-wide slog handler. Development gets
// human-readable text; everything else emits JSON for the log pipeline.
func setupLogging(app *config.AppConfig) {
	var level slog.Level
	switch app.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if app.Environment == "development" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
		return
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	ctx := context.Background()

	// 1. Initialize configuration (.env, environment, cadenza.yaml)
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.App)

	podID := cfg.App.ResolvePodID()
	slog.Info("Starting cadenza",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)
	cfg.App.LogConfig()

	// 2. Initialize database (applies embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	webhookEvents := services.NewWebhookEventService(dbClient.Client)
	recordings := services.NewRecordingService(dbClient.Client)
	deployments := services.NewBotDeploymentService(dbClient.Client)
	members := services.NewOrgMemberService(dbClient.Client)
	ruleStore := services.NewRuleService(dbClient.Client)
	notifications := services.NewNotificationService(dbClient.Client)
	inapp := services.NewInAppService(dbClient.Client)
	interactions := services.NewInteractionService(dbClient.Client)
	userMetrics := services.NewUserMetricsService(dbClient.Client)
	executions := services.NewSequenceExecutionService(dbClient.Client)
	workspaces := services.NewSlackWorkspaceService(dbClient.Client)
	retryJobs := services.NewRetryJobService(dbClient.Client)
	oauthTokens := services.NewOAuthService(dbClient.Client)
	warnings := services.NewSystemWarningsService()
	masker := masking.NewMaskingService()
	slog.Info("Services initialized")

	// 4. Boot recovery: queue claims left behind by a previous run of
	// this pod go back to pending before any worker starts.
	if released, err := notifications.ReleaseOwnedBy(ctx, podID); err != nil {
		// Non-fatal — stale claims also time out via the reclaim pass
		slog.Error("Failed to release orphaned queue claims", "error", err)
	} else if released > 0 {
		slog.Info("Released orphaned queue claims", "count", released, "pod_id", podID)
	}

	// 5. Tracing
	shutdownTracing := observability.InitTracing()
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("Error shutting down tracing", "error", err)
		}
	}()

	// 6. Event bus: pg_notify publisher, in-process hub, and the
	// listener holding the dedicated LISTEN connection
	publisher := events.NewPublisher(dbClient.DB())
	hub := events.NewHub()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	for _, channel := range []string{events.ChannelRecordings, events.ChannelNotifications} {
		if err := notifyListener.Subscribe(ctx, channel); err != nil {
			slog.Error("Failed to LISTEN on nudge channel", "channel", channel, "error", err)
			os.Exit(1)
		}
	}

	// Enqueued notifications nudge the delivery worker so fresh items
	// do not sit out a full timer interval.
	notifications.SetEnqueueNudge(func(ctx context.Context, item *ent.NotificationQueueItem) {
		payload := events.NotificationEnqueuedPayload{
			NotificationID: item.ID,
			Priority:       string(item.Priority),
			ScheduledFor:   item.ScheduledFor.Format(time.RFC3339),
		}
		payload.OrgID = item.OrgID
		if err := publisher.PublishNotificationEnqueued(ctx, payload); err != nil {
			slog.Warn("Notification nudge publish failed", "item_id", item.ID, "error", err)
		}
	})
	slog.Info("Event bus initialized")

	// 7. Redis. A dead Redis is not fatal: the rate limiter fails open
	// and records a system warning.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.App.RedisAddr,
		Password: cfg.App.RedisPassword,
		DB:       cfg.App.RedisDB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable at startup, rate limiting degraded",
			"addr", cfg.App.RedisAddr, "error", err)
	}
	cancelPing()

	// 8. Object storage for recording media. Unavailable storage
	// disables the upload worker; playback falls back to provider URLs.
	store, err := storage.NewClient(ctx, storage.Config{
		Bucket:          cfg.App.MediaBucket,
		Region:          cfg.App.AWSRegion,
		Endpoint:        cfg.App.S3Endpoint,
		AccessKeyID:     cfg.App.S3AccessKeyID,
		SecretAccessKey: cfg.App.S3SecretAccessKey,
	})
	if err != nil {
		slog.Error("Object storage unavailable, media uploads disabled",
			"bucket", cfg.App.MediaBucket, "error", err)
		store = nil
	}

	// 9. Outbound clients. Everything runs on the shared fabric except
	// media downloads, which carry whole recording bodies and get a
	// fabric with a timeout sized for them.
	fabric := clients.NewFabric(clients.FabricConfig{})
	mediaFabric := clients.NewFabric(clients.FabricConfig{Timeout: 10 * time.Minute})

	botClient, err := meetingbot.New(fabric, meetingbot.Config{
		BaseURL: cfg.App.MeetingBotAPIURL,
		APIKey:  cfg.App.MeetingBotAPIKey,
	})
	if err != nil {
		slog.Error("Failed to initialize meeting recorder client", "error", err)
		os.Exit(1)
	}

	var mailClient *mailer.Client
	if cfg.App.MailerAPIURL != "" {
		mailClient, err = mailer.New(fabric, mailer.Config{
			BaseURL: cfg.App.MailerAPIURL,
			APIKey:  cfg.App.MailerAPIKey,
		})
		if err != nil {
			slog.Error("Failed to initialize mailer client", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("Mailer not configured, email channel disabled")
	}

	var llmClient *llm.Client
	if cfg.App.AnthropicAPIKey != "" {
		llmClient, err = llm.NewClient(llm.Config{
			APIKey: cfg.App.AnthropicAPIKey,
			Model:  cfg.App.AnthropicModel,
		})
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("LLM not configured, drafting skills disabled")
	}

	var crmClient *crm.Client
	if cfg.App.CRMBaseURL != "" && cfg.App.CRMTokenURL != "" {
		tokens := clients.NewTokenSource(oauthTokens,
			clients.RefreshGrant(nil, cfg.App.CRMTokenURL, cfg.App.CRMClientID, cfg.App.CRMClientSecret))
		crmClient, err = crm.New(fabric, tokens, crm.Config{
			Provider: cfg.App.CRMProvider,
			BaseURL:  cfg.App.CRMBaseURL,
		})
		if err != nil {
			slog.Error("Failed to initialize CRM client", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("CRM not configured, CRM actions disabled")
	}

	// 10. Notification pipeline
	producer := notify.NewNotifier(notifications, members, userMetrics)
	gate := notify.NewGate(notifications, userMetrics, cfg.Notifications)
	dispatchDeps := notify.DispatcherDeps{
		Members:    members,
		Workspaces: workspaces,
		InApp:      inapp,
	}
	if mailClient != nil {
		dispatchDeps.Mailer = mailClient
	}
	dispatcher := notify.NewDispatcher(dispatchDeps)
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

	// 11. Recording pipeline
	lifecycle := recording.NewLifecycle(recording.LifecycleDeps{
		Recordings:  recordings,
		Deployments: deployments,
		RetryJobs:   retryJobs,
		Rules:       ruleStore,
		Bots:        botClient,
		Publisher:   publisher,
		Config:      cfg.Recording,
	})

	var mediaWorker *recording.MediaWorker
	if store != nil {
		mediaWorker = recording.NewMediaWorker(recording.MediaWorkerDeps{
			Recordings: recordings,
			RetryJobs:  retryJobs,
			Bots:       botClient,
			Store:      store,
			Fabric:     mediaFabric,
			Masker:     masker,
			Publisher:  publisher,
			Notifier:   producer,
			Config:     cfg.Recording,
		})
	}
	transcriptWorker := recording.NewTranscriptWorker(recordings, retryJobs, botClient, cfg.Recording)

	// 12. Sequence runtime
	registry := sequence.NewRegistry()
	var completer sequence.Completer
	if llmClient != nil {
		completer = llmClient
	}
	for _, h := range sequence.BuiltinSkills(completer) {
		registry.RegisterSkill(h)
	}
	var crmDep sequence.CRM
	if crmClient != nil {
		crmDep = crmClient
	}
	var mailDep sequence.Mailer
	if mailClient != nil {
		mailDep = mailClient
	}
	for _, h := range sequence.BuiltinActions(crmDep, mailDep, notifications) {
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

	// 13. Cleanup service (runs its own retention loop)
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
	cleanupSvc.Start(ctx)

	// 14. Worker pool. Cron endpoints drive the same ticks; the pool
	// covers deployments without an external scheduler and reacts to
	// event-bus nudges.
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
	if mediaWorker != nil {
		pool.Register(workers.Runner{
			Name:     "media_uploads",
			Interval: cfg.Workers.MediaUploadInterval.Std(),
			Channel:  events.ChannelRecordings,
			Tick: func(ctx context.Context) error {
				_, err := mediaWorker.Tick(ctx)
				return err
			},
		})
	}
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
	pool.Start(ctx)

	// 15. HTTP server
	apiServer := api.NewServer(cfg, dbClient.DB(), api.Deps{
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
		Storage:   store,
		Events:    publisher,

		Pool:             pool,
		NotifyWorker:     notifyWorker,
		MediaWorker:      mediaWorker,
		TranscriptWorker: transcriptWorker,
		SequenceWorker:   seqWorker,
		Cleanup:          cleanupSvc,

		Redis: redisClient,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.App.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := apiServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	stats := cfg.Stats()
	slog.Info("Cadenza started",
		"pod_id", podID,
		"sequences", stats.Sequences,
		"media_uploads_enabled", mediaWorker != nil)

	// 16. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 17. Graceful shutdown: workers finish their current ticks within
	// the budget, then the HTTP server drains.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Workers.ShutdownTimeout.Std())
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		cleanupSvc.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Workers stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker shutdown timeout exceeded, queue claims will be released on next boot")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := apiServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
