package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Spin metric names
const (
	MetricNameSpinsResolved  = "spins_resolved_total"
	MetricNameWageredTotal   = "spin_wagered_total"
	MetricNamePaidOutTotal   = "spin_paid_out_total"
	MetricNameSymbolDraws    = "spin_symbol_draws_total"
	MetricNameSpinsSettled   = "spins_settled_total"
	MetricNameSpinsFailed    = "spins_failed_total"
	MetricNameSettleDuration = "spin_settle_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Spin metric help text
const (
	HelpTextSpinsResolved  = "Total number of spins resolved by the outcome engine"
	HelpTextWageredTotal   = "Total amount wagered on resolved spins"
	HelpTextPaidOutTotal   = "Total amount paid out on resolved spins"
	HelpTextSymbolDraws    = "Number of times each catalog index was drawn, per reel"
	HelpTextSpinsSettled   = "Total number of spins settled by the spin controller"
	HelpTextSpinsFailed    = "Total number of spins that failed on the outcome request"
	HelpTextSettleDuration = "Time from spin start to settlement in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelResult   = "result"
	LabelReel     = "reel"
	LabelIndex    = "index"
	LabelRefunded = "refunded"
)

// Label values
const (
	ResultWin     = "win"
	ResultLoss    = "loss"
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SettleDurationBuckets covers the staggered reel animation, normally 2-4s
var SettleDurationBuckets = []float64{.1, .5, 1, 2, 2.5, 3, 3.5, 4, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
