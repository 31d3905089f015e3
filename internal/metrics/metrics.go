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
	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSignups,
			Help: HelpTextSignups,
		},
	)

	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTasksCompleted,
			Help: HelpTextTasksCompleted,
		},
		[]string{LabelTaskKind},
	)

	SuccessesUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSuccessesUnlocked,
			Help: HelpTextSuccessesUnlocked,
		},
	)

	Evolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvolutions,
			Help: HelpTextEvolutions,
		},
		[]string{LabelStage},
	)

	DailyRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRotations,
			Help: HelpTextDailyRotations,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	TasksArchived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTasksArchived,
			Help: HelpTextTasksArchived,
		},
	)
)
