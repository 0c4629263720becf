// Package metrics defines and registers all custom Prometheus metrics for the
// chore marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "choremarket"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "requester" or "provider"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of live sessions in the store.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live sessions.",
	},
)

// ── Chore metrics ─────────────────────────────────────────────────────────────

// ChoresCreatedTotal counts newly posted chores.
var ChoresCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chores_created_total",
		Help:      "Total number of chores created.",
	},
)

// ChoreTransitionsTotal counts successful lifecycle transitions.
// Label:
//   - to: the status entered ("paid", "assigned", "completed")
var ChoreTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chore_transitions_total",
		Help:      "Total number of successful chore status transitions, by target status.",
	},
	[]string{"to"},
)

// ClaimRejectionsTotal counts claim attempts refused because the chore was not
// in the paid state. Lost claim races land here too; the two are not
// distinguished.
var ClaimRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claim_rejections_total",
		Help:      "Total number of claim attempts rejected because the chore was not claimable.",
	},
)

// ── Admission metrics ─────────────────────────────────────────────────────────

// RequestsThrottledTotal counts requests rejected by the admission controller.
var RequestsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Total number of requests rejected with 429 by the rate limiter.",
	},
)
