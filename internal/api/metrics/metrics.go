// Package metrics defines and registers all custom Prometheus metrics for the
// PitchBridge API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pitchbridge"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "entrepreneur", "investor", or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Marketplace metrics ───────────────────────────────────────────────────────

// StartupsCreatedTotal counts newly published pitch listings.
// Label:
//   - funding_stage: the stage label supplied by the founder (e.g. "Seed")
var StartupsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "startups_created_total",
		Help:      "Total number of startup pitches created, by funding stage.",
	},
	[]string{"funding_stage"},
)

// InterestsCreatedTotal counts investor interest records created.
var InterestsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interests_created_total",
		Help:      "Total number of investor interest records created.",
	},
)

// ── Notification fan-out metrics ──────────────────────────────────────────────

// NotificationsFanoutTotal counts fan-out attempts.
// Labels:
//   - type: notification type ("interest", "ai-feedback", …)
//   - result: "delivered", "deduped", or "failed"
var NotificationsFanoutTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_fanout_total",
		Help:      "Total number of notification fan-out attempts, by type and result.",
	},
	[]string{"type", "result"},
)

// ── Analysis metrics ──────────────────────────────────────────────────────────

// PitchAnalysesTotal counts pitch analysis runs.
// Label:
//   - result: "ok", "upstream_error", "parse_error", or "error"
var PitchAnalysesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pitch_analyses_total",
		Help:      "Total number of pitch analysis runs, by result.",
	},
	[]string{"result"},
)

// PitchAnalysisDuration measures the end-to-end latency of one analysis run,
// external model call included.
var PitchAnalysisDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pitch_analysis_duration_seconds",
		Help:      "Duration of pitch analysis from request to persisted feedback.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
)
