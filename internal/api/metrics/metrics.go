// Package metrics defines and registers all custom Prometheus metrics for the
// platform admin API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "platform_admin"

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDecisionsTotal counts gate decisions.
// Labels:
//   - decision: "allow" or "deny"
//   - reason: deny reason ("unauthenticated", "user_not_found",
//     "platform_not_configured", or "client_tenant" for a plain deny; "none"
//     for allows)
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization gate decisions.",
	},
	[]string{"decision", "reason"},
)

// AuthzDuration measures one full gate check including store reads.
var AuthzDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "authz_duration_seconds",
		Help:      "Duration of a single authorization check.",
		Buckets:   prometheus.DefBuckets,
	},
)

// IdentitySourceTotal counts where the gate found the caller's identity.
// Label:
//   - source: "explicit", "header", "body", "session", or "none"
var IdentitySourceTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_source_total",
		Help:      "Total authorization checks by identity extraction source.",
	},
	[]string{"source"},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit entries waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit entries dropped because a worker channel was
// full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped due to backpressure.",
	},
)
