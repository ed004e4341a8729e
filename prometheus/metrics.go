package prometheus

import (
	"time"

	"catalog-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Catalog metrics
	CatalogOperationsCounter prometheus.CounterVec
	CatalogSizeGauge         prometheus.Gauge

	// Upload metrics
	UploadAcceptedCounter prometheus.Counter
	UploadRejectedCounter prometheus.CounterVec

	// Store metrics
	StoreOperationDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful admin logins",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of failed admin logins",
		},
	)

	CatalogOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"operation"},
	)

	CatalogSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_products",
			Help: "Current number of products in the catalog",
		},
	)

	UploadAcceptedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_uploads_accepted_total",
			Help: "Total number of accepted image uploads",
		},
	)

	UploadRejectedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_uploads_rejected_total",
			Help: "Total number of rejected image uploads",
		},
		[]string{"reason"},
	)

	StoreOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_store_operation_duration_seconds",
			Help:    "Duration of catalog store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackStoreOperation returns a function that records the duration of a
// catalog store operation
func TrackStoreOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		StoreOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordCatalogOperation increments the counter for catalog operations
func RecordCatalogOperation(operation string) {
	CatalogOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordUploadRejected increments the rejected uploads counter
func RecordUploadRejected(reason string) {
	UploadRejectedCounter.WithLabelValues(reason).Inc()
}

// UpdateCatalogSize updates the product count gauge
func UpdateCatalogSize(count int) {
	CatalogSizeGauge.Set(float64(count))
}
