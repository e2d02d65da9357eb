package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "palmtec_registry"

var (
	// HTTPRequests counts handled requests by route, method and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests handled.",
	}, []string{"method", "route", "code"})

	// HTTPDuration observes request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ProcedureOutcomes counts stored procedure status tokens
	ProcedureOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "procedure_outcomes_total",
		Help:      "Status tokens returned by stored procedures.",
	}, []string{"procedure", "status"})

	// ProcedureFailures counts stored procedure calls that failed at the driver level
	ProcedureFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "procedure_failures_total",
		Help:      "Stored procedure calls that returned a driver error.",
	}, []string{"procedure"})

	// AvailableSerials is the last observed count of approved, unallocated serial numbers
	AvailableSerials = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "available_serial_numbers",
		Help:      "Approved serial numbers not yet allocated.",
	})
)
