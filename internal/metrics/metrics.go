// Package metrics defines the Prometheus collectors exported at /metrics.
// Collectors register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes every API request, labelled by method,
	// chi route pattern, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triplog_http_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// UpstreamRequests counts calls to third-party APIs by service and
	// outcome ("success", "failure", "rejected").
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triplog_upstream_requests_total",
			Help: "Total number of third-party API calls",
		},
		[]string{"service", "outcome"},
	)

	// CircuitBreakerState is 0 when closed, 1 when half-open, 2 when open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "triplog_circuit_breaker_state",
			Help: "Circuit breaker state per upstream service (0=closed, 1=half-open, 2=open)",
		},
		[]string{"service"},
	)

	// DocumentWrites counts whole-document rewrites of the trip collection.
	DocumentWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triplog_document_writes_total",
			Help: "Total number of trip document rewrites by operation",
		},
		[]string{"operation"},
	)

	// TripsStored is the collection size seen on the most recent fetch.
	TripsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "triplog_trips_stored",
			Help: "Number of trips in the document on the most recent fetch",
		},
	)
)
