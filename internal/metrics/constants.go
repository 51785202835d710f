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

// Leveling metric names
const (
	MetricNameXPAwarded       = "xp_awarded_total"
	MetricNameXPCapLimited    = "xp_cap_limited_total"
	MetricNameLevelUps        = "level_ups_total"
	MetricNameTierPromotions  = "tier_promotions_total"
	MetricNameLevelLookups    = "level_lookups_total"
	MetricNameDailyResetsDone = "daily_xp_resets_total"
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

// Leveling metric help text
const (
	HelpTextXPAwarded       = "Total XP awarded to learners by source activity"
	HelpTextXPCapLimited    = "Total XP awards trimmed or refused by the daily cap"
	HelpTextLevelUps        = "Total level-ups by the tier reached"
	HelpTextTierPromotions  = "Total tier promotions by the tier reached"
	HelpTextLevelLookups    = "Total XP to level resolutions served"
	HelpTextDailyResetsDone = "Total daily XP resets executed"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSource = "source"
	LabelTier   = "tier"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers 5ms to 10s
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// unmatchedRoute labels requests that did not match any chi route
const unmatchedRoute = "unmatched"
