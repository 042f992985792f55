package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Total HTTP requests partitioned by method, route, and status code
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	messagesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instagram_messages_processed_total",
			Help: "Instagram story replies processed, partitioned by outcome",
		},
		[]string{"outcome"},
	)

	poapClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poap_claims_total",
			Help: "POAP claim attempts, partitioned by result",
		},
		[]string{"result"},
	)

	backfillMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instagram_backfill_messages_total",
			Help: "Messages handled by historical backfill runs, partitioned by result",
		},
		[]string{"result"},
	)
)

// MetricsMiddleware records basic Prometheus HTTP metrics.
// The matched route template is used as the label to keep cardinality low.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

// RecordMessageOutcome counts one processed Instagram message.
func RecordMessageOutcome(outcome string) {
	messagesProcessedTotal.WithLabelValues(outcome).Inc()
}

// RecordClaim counts one POAP claim attempt.
func RecordClaim(success bool) {
	result := "failed"
	if success {
		result = "delivered"
	}
	poapClaimsTotal.WithLabelValues(result).Inc()
}

// RecordBackfillMessage counts one message handled by a backfill run.
func RecordBackfillMessage(result string) {
	backfillMessagesTotal.WithLabelValues(result).Inc()
}
