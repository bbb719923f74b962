package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase, LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	StarsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsSpent,
			Help: HelpTextStarsSpent,
		},
	)

	StarsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsEarned,
			Help: HelpTextStarsEarned,
		},
	)

	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailed,
			Help: HelpTextAuthFailed,
		},
	)
)
