package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "farmdash",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Record store adapter calls by entity, operation and outcome.",
		},
		[]string{"entity", "op", "outcome"},
	)

	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "farmdash",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of record store adapter calls.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"entity", "op"},
	)

	swallowedReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "farmdash",
			Subsystem: "store",
			Name:      "swallowed_read_failures_total",
			Help:      "Read failures downgraded to an empty result.",
		},
		[]string{"entity"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "farmdash",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Read-through cache lookups by entity and result.",
		},
		[]string{"entity", "result"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "farmdash",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "farmdash",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		storeOps, storeDuration, swallowedReads, cacheLookups,
		httpRequests, httpDuration,
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveStoreOp records one adapter call.
func ObserveStoreOp(entity, op string, err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	storeOps.WithLabelValues(entity, op, outcome).Inc()
	storeDuration.WithLabelValues(entity, op).Observe(d.Seconds())
}

// SwallowedRead counts a read failure that was turned into an empty result.
func SwallowedRead(entity string) { swallowedReads.WithLabelValues(entity).Inc() }

// CacheLookup counts a cache hit or miss.
func CacheLookup(entity string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(entity, result).Inc()
}

// ObserveHTTP records one handled request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func ObserveHTTP(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
