// Package metrics defines and registers the custom Prometheus metrics for
// the thingful API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thingful"

// AuthAttemptsTotal counts authentication attempts at the middleware gate.
// Labels:
//   - scheme: "basic" or "bearer"
//   - result: "ok", "missing", "malformed", or "unauthorized"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by scheme and result.",
	},
	[]string{"scheme", "result"},
)

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// ReviewsCreatedTotal counts successfully posted reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews posted.",
	},
)

// ThingsCacheTotal counts lookups against the cached things listing.
// Label:
//   - result: "hit" or "miss"
var ThingsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "things_cache_total",
		Help:      "Total number of things-listing cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ObserveHashQueueDepth registers a gauge sampling how many bcrypt jobs are
// waiting for a hasher worker. Call once at startup.
func ObserveHashQueueDepth(depth func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hash_queue_depth",
			Help:      "Current number of bcrypt jobs waiting for a hasher worker.",
		},
		func() float64 { return float64(depth()) },
	)
}
