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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Outcome engine metrics
var (
	SpinsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsResolved,
			Help: HelpTextSpinsResolved,
		},
		[]string{LabelResult},
	)

	WageredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWageredTotal,
			Help: HelpTextWageredTotal,
		},
	)

	PaidOutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePaidOutTotal,
			Help: HelpTextPaidOutTotal,
		},
	)

	// SymbolDraws lets operators watch per-reel uniformity in production
	SymbolDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSymbolDraws,
			Help: HelpTextSymbolDraws,
		},
		[]string{LabelReel, LabelIndex},
	)
)

// Spin controller metrics
var (
	SpinsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsSettled,
			Help: HelpTextSpinsSettled,
		},
		[]string{LabelResult},
	)

	SpinsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsFailed,
			Help: HelpTextSpinsFailed,
		},
		[]string{LabelRefunded},
	)

	SettleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSettleDuration,
			Help:    HelpTextSettleDuration,
			Buckets: SettleDurationBuckets,
		},
	)
)
