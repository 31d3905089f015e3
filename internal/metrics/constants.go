package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSignups           = "signups_total"
	MetricNameTasksCompleted    = "tasks_completed_total"
	MetricNameSuccessesUnlocked = "successes_unlocked_total"
	MetricNameEvolutions        = "yol_evolutions_total"
	MetricNameDailyRotations    = "daily_rotations_total"
	MetricNameXPAwarded         = "yol_xp_awarded_total"
	MetricNameTasksArchived     = "daily_tasks_archived_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSignups           = "Total number of accounts created"
	HelpTextTasksCompleted    = "Total number of tasks completed"
	HelpTextSuccessesUnlocked = "Total number of successes completed"
	HelpTextEvolutions        = "Total number of yol evolutions"
	HelpTextDailyRotations    = "Total number of daily task pool rotations"
	HelpTextXPAwarded         = "Total XP awarded to yols"
	HelpTextTasksArchived     = "Total number of stale daily tasks archived"
)

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelTaskKind = "kind"
	LabelStage    = "stage"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
