package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	orderLinesParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_lines_parsed_total",
			Help: "Order document lines parsed, by outcome.",
		},
		[]string{"outcome"},
	)
	reconciliationRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciliation_rows_total",
			Help: "Reconciled order rows, by bucket.",
		},
		[]string{"bucket"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(orderLinesParsed)
	prometheus.MustRegister(reconciliationRows)
}

// RecordRequest records metrics for a finished HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordParsedLines(parsed, skipped int) {
	orderLinesParsed.WithLabelValues("parsed").Add(float64(parsed))
	orderLinesParsed.WithLabelValues("skipped").Add(float64(skipped))
}

func RecordReconciliation(matched, unmatched, missing int) {
	reconciliationRows.WithLabelValues("matched").Add(float64(matched))
	reconciliationRows.WithLabelValues("unmatched").Add(float64(unmatched))
	reconciliationRows.WithLabelValues("missing").Add(float64(missing))
}

// classifyStatus buckets an HTTP status code into a label value.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler returns the Prometheus exposition handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
