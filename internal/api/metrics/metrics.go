// Package metrics defines and registers the domain Prometheus metrics of the
// blog API. HTTP request metrics come from the echoprometheus middleware; the
// metrics here are registered with the default registry through promauto and
// exposed by the router at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric the API exports.
const Namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - op: "register" or "login"
//   - result: "success" or a short failure reason (e.g. "duplicate", "bad_password")
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// ImageStoreOpsTotal counts image store calls.
// Labels:
//   - op: "store" or "remove"
//   - result: "ok" or "error"
var ImageStoreOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "image_store_ops_total",
		Help:      "Total number of image store operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages received.",
	},
)
