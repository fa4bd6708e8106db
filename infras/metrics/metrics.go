package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "roost", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "roost", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "roost", Name: "cache_events_total", Help: "Cache hits/misses."},
		[]string{"cache", "event"}, // event: hit|miss
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, CacheEvents)
}

// ObserveHTTP records one served request.
func ObserveHTTP(route, method, status string, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, status).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveCache records a cache hit or miss for the named cache.
func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}
