package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoreCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "score_calculations_total",
			Help: "Total number of completed score calculations by tier",
		},
		[]string{"tier"},
	)

	ScoreValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "score_validation_failures_total",
			Help: "Total number of rejected score forms by error code",
		},
		[]string{"code"},
	)

	ScoreTotals = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "score_total_points",
			Help:    "Distribution of computed total scores",
			Buckets: prometheus.LinearBuckets(0, 10, 9),
		},
	)

	PostCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_cache_lookups_total",
			Help: "Post cache lookups by result",
		},
		[]string{"result"},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected by the per-IP rate limiter by route",
		},
		[]string{"route"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"route", "status"},
	)
)
