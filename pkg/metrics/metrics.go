package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Store metrics
	StoreOperationsTotal *prometheus.CounterVec
	CampaignsInStore     prometheus.Gauge

	// Persistence metrics
	PersistenceOperations *prometheus.CounterVec
	PersistenceDuration   *prometheus.HistogramVec
	PersistenceFailures   *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		StoreOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_store_operations_total",
				Help: "Total number of campaign store operations",
			},
			[]string{"operation"},
		),

		CampaignsInStore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "campaigns_in_store",
				Help: "Number of campaigns currently held in the store",
			},
		),

		PersistenceOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persistence_operations_total",
				Help: "Total number of persistence load/save operations",
			},
			[]string{"operation", "status"},
		),

		PersistenceDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "persistence_operation_duration_seconds",
				Help:    "Persistence operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		PersistenceFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persistence_failures_total",
				Help: "Total number of persistence failures",
			},
			[]string{"operation", "error_type"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Store operation metrics
func (m *Metrics) RecordStoreOperation(operation string) {
	m.StoreOperationsTotal.WithLabelValues(operation).Inc()
}

// Store size gauge
func (m *Metrics) SetCampaignCount(count int) {
	m.CampaignsInStore.Set(float64(count))
}

// Persistence operation metrics
func (m *Metrics) RecordPersistenceOperation(operation, status string, duration time.Duration) {
	m.PersistenceOperations.WithLabelValues(operation, status).Inc()
	m.PersistenceDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Persistence failure metrics
func (m *Metrics) RecordPersistenceFailure(operation, errorType string) {
	m.PersistenceFailures.WithLabelValues(operation, errorType).Inc()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
