package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classifier_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_classifications_total",
			Help: "Total number of classifications by profile label",
		},
		[]string{"source", "profile"},
	)

	ClassificationScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classifier_score",
			Help:    "Distribution of composite scores",
			Buckets: []float64{25, 40, 60, 75, 90, 100},
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classifier_rate_limited_total",
			Help: "Requests rejected by the per-ip rate limiter",
		},
	)
)

// ObserveClassification records one classification made through source
// (api, form or cli).
func ObserveClassification(source, profile string, score float64) {
	ClassificationsTotal.WithLabelValues(source, profile).Inc()
	ClassificationScore.Observe(score)
}
