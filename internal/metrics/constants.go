package metrics

// Metric Names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameCasesOpened = "cases_opened_total"
	MetricNameItemsSold   = "items_sold_total"
	MetricNameStarsSpent  = "stars_spent_total"
	MetricNameStarsEarned = "stars_earned_total"
	MetricNameAuthFailed  = "auth_failures_total"
)

// Metric Help Text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextCasesOpened = "Total number of cases opened"
	HelpTextItemsSold   = "Total number of items sold back"
	HelpTextStarsSpent  = "Total stars spent opening cases"
	HelpTextStarsEarned = "Total stars credited from sales"
	HelpTextAuthFailed  = "Total rejected initData payloads"
)

// Metric Labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelCase   = "case"
	LabelRarity = "rarity"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
