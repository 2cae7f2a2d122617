// Package metrics provides Prometheus metrics collection for the translation service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TranslationOperationsTotal tracks translation mutations by operation and outcome.
	TranslationOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_operations_total",
			Help: "Total number of translation operations",
		},
		[]string{"operation", "status"},
	)

	// SearchDuration tracks translation search duration by filter type.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "translation_search_duration_seconds",
			Help:    "Translation search duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"filter"},
	)

	// ExportDuration tracks full export duration.
	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_export_duration_seconds",
			Help:    "Translation export duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// ExportedTranslationsTotal tracks how many translation records exports have streamed.
	ExportedTranslationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "translations_exported_total",
			Help: "Total number of translation records streamed by exports",
		},
	)

	// TokensIssuedTotal tracks issued JWTs by client code.
	TokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Total number of JWTs issued",
		},
		[]string{"client_code"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordTranslationOperation records the outcome of a translation mutation.
func RecordTranslationOperation(operation, status string) {
	TranslationOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordSearch records the duration of a search by filter type.
func RecordSearch(filter string, duration time.Duration) {
	SearchDuration.WithLabelValues(filter).Observe(duration.Seconds())
}

// RecordExport records metrics for a completed export.
func RecordExport(duration time.Duration, records int) {
	ExportDuration.Observe(duration.Seconds())
	ExportedTranslationsTotal.Add(float64(records))
}

// RecordTokenIssued records a successfully issued token.
func RecordTokenIssued(clientCode string) {
	TokensIssuedTotal.WithLabelValues(clientCode).Inc()
}
