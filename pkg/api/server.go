package api

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/stridehq/cadenza/pkg/cleanup"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/events"
	"github.com/stridehq/cadenza/pkg/masking"
	"github.com/stridehq/cadenza/pkg/notify"
	"github.com/stridehq/cadenza/pkg/recording"
	"github.com/stridehq/cadenza/pkg/rules"
	"github.com/stridehq/cadenza/pkg/sequence"
	"github.com/stridehq/cadenza/pkg/services"
	"github.com/stridehq/cadenza/pkg/storage"
	"github.com/stridehq/cadenza/pkg/workers"
)

// Deps bundles everything the handlers reach for. Workers, the pool,
// Redis, and storage are optional; endpoints that depend on an absent
// one degrade (cron ticks answer 503, media links fall back to the
// provider URL, the rate limiter passes everything).
type Deps struct {
	WebhookEvents *services.WebhookEventService
	Recordings    *services.RecordingService
	Deployments   *services.BotDeploymentService
	Members       *services.OrgMemberService
	Rules         *services.RuleService
	Notifications *services.NotificationService
	InApp         *services.InAppService
	Interactions  *services.InteractionService
	UserMetrics   *services.UserMetricsService
	Executions    *services.SequenceExecutionService
	Warnings      *services.SystemWarningsService

	Lifecycle *recording.Lifecycle
	Runner    *sequence.Runner
	Masker    *masking.MaskingService
	Storage   *storage.Client
	Events    *events.Publisher

	Pool             *workers.Pool
	NotifyWorker     *notify.Worker
	MediaWorker      *recording.MediaWorker
	TranscriptWorker *recording.TranscriptWorker
	SequenceWorker   *sequence.Worker
	Cleanup          *cleanup.Service

	Redis redis.UniversalClient
}

// Server is the HTTP surface: webhook ingest, the management API, the
// cron entry points, and the operational probes.
type Server struct {
	cfg  *config.Config
	db   *sql.DB
	deps Deps

	regexps *rules.RegexpCache
	cache   *responseCache
	limiter *rateLimiter

	engine  *gin.Engine
	httpSrv *http.Server
}

// NewServer builds the router and all middleware. The caller starts it
// with Start and stops it with Shutdown.
func NewServer(cfg *config.Config, db *sql.DB, deps Deps) *Server {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		db:      db,
		deps:    deps,
		regexps: rules.NewRegexpCache(),
	}
	if cfg.Middleware.Cache.IsEnabled() {
		s.cache = newResponseCache(cfg.Middleware.Cache)
	}
	if cfg.Middleware.RateLimit.IsEnabled() {
		s.limiter = newRateLimiter(deps.Redis, deps.Warnings, cfg.Middleware.RateLimit)
	}

	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		requestID(),
		tracing(),
		requestLogger(),
		recovery(),
		securityHeaders(),
		corsMiddleware(s.cfg.AllowedOrigins),
	)

	r.GET("/health", s.handleHealth)
	r.GET("/ready", s.handleReady)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Webhook ingest authenticates per-delivery via source signatures,
	// not via the API auth middleware.
	hooks := r.Group("/webhooks")
	{
		hooks.POST("/meeting-recorder", s.handleRecorderWebhook)
		hooks.POST("/meetings", s.handleMeetingsWebhook)
		hooks.POST("/stripe", s.handleStripeWebhook)
		hooks.POST("/sentry-bridge", s.handleSentryWebhook)
	}

	cron := r.Group("/cron", s.requireCron())
	{
		cron.POST("/notifications", s.handleCronNotifications)
		cron.POST("/media-uploads", s.handleCronMediaUploads)
		cron.POST("/transcripts", s.handleCronTranscripts)
		cron.POST("/sequences", s.handleCronSequences)
		cron.POST("/cleanup", s.handleCronCleanup)
	}

	v1 := r.Group("/api/v1", s.authenticate())
	if s.limiter != nil {
		v1.Use(s.limiter.middleware())
	}
	if s.cache != nil {
		v1.Use(s.cache.middleware())
	}
	{
		v1.POST("/recordings", s.handleScheduleRecording)
		v1.GET("/recordings", s.handleListRecordings)
		v1.GET("/recordings/:id", s.handleGetRecording)
		v1.POST("/recordings/:id/cancel", s.handleCancelRecording)

		v1.POST("/notifications", s.handleEnqueueNotification)
		v1.GET("/notifications", s.handleListNotifications)
		v1.POST("/notifications/feedback", s.handleNotificationFeedback)
		v1.POST("/notifications/interactions", s.handleNotificationInteraction)

		v1.GET("/inbox", s.handleInbox)
		v1.POST("/inbox/:id/read", s.handleMarkInboxRead)
		v1.POST("/inbox/read-all", s.handleMarkInboxAllRead)

		v1.POST("/sequences", s.handleEnqueueSequence)
		v1.GET("/sequences", s.handleListSequences)
		v1.GET("/sequences/:id", s.handleGetSequence)

		v1.POST("/rules/recording", s.handleCreateRecordingRule)
		v1.GET("/rules/recording", s.handleListRecordingRules)
		v1.POST("/rules/recording/:id/enable", s.handleSetRecordingRuleEnabled(true))
		v1.POST("/rules/recording/:id/disable", s.handleSetRecordingRuleEnabled(false))
		v1.DELETE("/rules/recording/:id", s.handleDeleteRecordingRule)

		v1.POST("/rules/routing", s.handleCreateRoutingRule)
		v1.GET("/rules/routing", s.handleListRoutingRules)
		v1.POST("/rules/routing/:id/enable", s.handleSetRoutingRuleEnabled(true))
		v1.POST("/rules/routing/:id/disable", s.handleSetRoutingRuleEnabled(false))
		v1.DELETE("/rules/routing/:id", s.handleDeleteRoutingRule)

		v1.PUT("/members", s.handleUpsertMember)
		v1.GET("/members", s.handleListMembers)
		v1.DELETE("/members/:user_id", s.handleRemoveMember)

		v1.GET("/system/info", s.handleSystemInfo)
		v1.GET("/system/warnings", s.handleSystemWarnings)
	}

	return r
}

// Handler exposes the router, mainly for httptest in package tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr and blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Lets tests bind
// port zero and learn the address before the first request.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
