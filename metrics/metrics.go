package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayDuration tracks every gateway round trip.
	GatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_query_duration_seconds",
			Help:    "Gateway query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"operation", "table", "status"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_lookups_total",
			Help: "Query cache lookups by result",
		},
		[]string{"kind", "result"}, // result: hit, miss, shared
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_invalidations_total",
			Help: "Query cache invalidations by entity kind",
		},
		[]string{"kind"},
	)

	Mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_mutations_total",
			Help: "Repository mutations by kind, operation and outcome",
		},
		[]string{"kind", "operation", "status"},
	)
)

// RecordGateway observes a gateway call. status is "ok" or "error".
func RecordGateway(operation, table string, err error, duration time.Duration) {
	GatewayDuration.WithLabelValues(operation, table, statusLabel(err)).Observe(duration.Seconds())
}

func RecordCacheLookup(kind, result string) {
	CacheLookups.WithLabelValues(kind, result).Inc()
}

func RecordInvalidation(kind string) {
	CacheInvalidations.WithLabelValues(kind).Inc()
}

func RecordMutation(kind, operation string, err error) {
	Mutations.WithLabelValues(kind, operation, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
