// Package metrics defines and registers all custom Prometheus metrics for
// the MRD admin console. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Backend pass-through metrics ─────────────────────────────────────────────

// BackendRequestsTotal counts calls to the remote MRD API.
// Labels:
//   - operation: logical operation name (e.g. "ca_list", "ca_create")
//   - outcome: "ok" or "error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of calls made to the remote backend API.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures how long one backend call takes end-to-end.
// Label:
//   - operation: logical operation name
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of remote backend API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by result ("success" / "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of live console sessions. Best-effort:
// sessions expired by Redis TTL are only reflected once logout observes them.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Approximate number of live console sessions.",
	},
)
