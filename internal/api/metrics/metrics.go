// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts completed registrations.
// Label:
//   - role: the role assigned to the new identity ("jobseeker", "employer", "admin")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware.
// The reason label stays server-side; clients only ever see a generic 401.
// Label:
//   - reason: "missing_header", "bad_header", "malformed", "bad_signature", "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsProcessedTotal counts notifications that completed processing.
// Label:
//   - type: "application_received" or "status_changed"
var NotificationsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_processed_total",
		Help:      "Total number of notification events successfully processed.",
	},
	[]string{"type"},
)

// NotificationsErrorsTotal counts notification events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notification events that failed processing.",
	},
	[]string{"reason"},
)

// NotificationsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly posted jobs.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs posted.",
	},
)

// ApplicationsCreatedTotal counts newly submitted applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications submitted.",
	},
)
