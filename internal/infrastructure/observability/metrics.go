package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profile_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ProfilePageOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_page_outcomes_total",
			Help: "Profile page loads by outcome",
		},
		[]string{"outcome"},
	)

	ProfileFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_page_fetch_failures_total",
			Help: "Secondary profile page fetches that failed and were replaced by a default",
		},
		[]string{"fetch"},
	)
)
