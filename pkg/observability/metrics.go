// Package observability provides request tracing, breadcrumb trails,
// structured error capture, and Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhooksReceived counts inbound webhook deliveries by source and
	// terminal event-log status.
	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cadenza_webhooks_received_total",
		Help: "Inbound webhook deliveries by source and outcome.",
	}, []string{"source", "outcome"})

	// NotificationOutcomes counts notification deliveries by channel and
	// terminal status.
	NotificationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cadenza_notifications_total",
		Help: "Notification queue outcomes by channel.",
	}, []string{"channel", "outcome"})

	// WorkerTickDuration observes how long each worker tick takes.
	WorkerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cadenza_worker_tick_seconds",
		Help:    "Duration of worker ticks.",
		Buckets: prometheus.DefBuckets,
	}, []string{"worker"})

	// ClientRetries counts external-client retry sleeps by failure kind.
	ClientRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cadenza_client_retries_total",
		Help: "External client retries by failure kind.",
	}, []string{"kind"})

	// RateLimiterFailOpen counts requests allowed because the rate-limit
	// store was unreachable.
	RateLimiterFailOpen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cadenza_rate_limiter_fail_open_total",
		Help: "Requests allowed due to rate-limit store errors.",
	})

	// SequenceSteps counts sequence step outcomes.
	SequenceSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cadenza_sequence_steps_total",
		Help: "Sequence step outcomes.",
	}, []string{"outcome"})
)
