package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace is the prometheus namespace of every storefront metric.
	Namespace = "storefront"
)

var (
	// BackendRequestDurationSeconds is the latency of calls to the fitness backend, by endpoint and status class.
	BackendRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency in seconds of requests to the fitness backend. Broken down by endpoint and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "status"},
	)
	// CatalogFetchTotal counts catalog fetches by outcome (ready, empty, error).
	CatalogFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "catalog",
			Name:      "fetch_total",
			Help:      "Total number of catalog fetches. Broken down by outcome.",
		},
		[]string{"outcome"},
	)
	// CatalogStaleResponsesTotal counts fetch outcomes discarded because a newer query superseded them.
	CatalogStaleResponsesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "catalog",
			Name:      "stale_responses_total",
			Help:      "Total number of catalog responses discarded as stale.",
		},
	)
	// CacheRequestsTotal counts store lookups by cache name and result (hit, miss).
	CacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Total number of cache lookups. Broken down by cache and result.",
		},
		[]string{"cache", "result"},
	)
)

var registerOnce sync.Once

// Register adds the storefront collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			BackendRequestDurationSeconds,
			CatalogFetchTotal,
			CatalogStaleResponsesTotal,
			CacheRequestsTotal,
		)
	})
}

// StatusClass buckets an HTTP status into "2xx", "4xx", ... or "error" for transport failures.
func StatusClass(status int) string {
	switch {
	case status <= 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	}
	return "5xx"
}
