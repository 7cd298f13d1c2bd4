package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_portal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Client portal operations by outcome
	PortalOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_portal_operations_total",
			Help: "Total number of client portal operations",
		},
		[]string{"operation", "outcome"}, // outcome: success, denied, not_found, invalid, error
	)

	// Catalog aggregate cache lookups
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_portal_cache_lookups_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"key", "result"}, // result: hit, miss, error
	)

	// Engagement events handed to the broker
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_portal_events_published_total",
			Help: "Engagement events published by routing key",
		},
		[]string{"routing_key", "status"}, // status: success, failed
	)
)

// RecordHTTPRequestDuration records one served request
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementPortalOperation counts a portal operation outcome
func IncrementPortalOperation(operation, outcome string) {
	PortalOperations.WithLabelValues(operation, outcome).Inc()
}

// IncrementCacheLookup counts a cache hit, miss or error
func IncrementCacheLookup(key, result string) {
	CacheLookups.WithLabelValues(key, result).Inc()
}

// IncrementEventPublished counts a publish attempt
func IncrementEventPublished(routingKey, status string) {
	EventsPublished.WithLabelValues(routingKey, status).Inc()
}
