package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/SkillQuest_Go/internal/domain"
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

// Leveling Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSource},
	)

	XPCapLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPCapLimited,
			Help: HelpTextXPCapLimited,
		},
		[]string{LabelSource},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelTier},
	)

	TierPromotions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTierPromotions,
			Help: HelpTextTierPromotions,
		},
		[]string{LabelTier},
	)

	LevelLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelLookups,
			Help: HelpTextLevelLookups,
		},
	)

	DailyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResetsDone,
			Help: HelpTextDailyResetsDone,
		},
	)
)

// RecordAward records the counters for one XP award
func RecordAward(result *domain.XPAwardResult) {
	if result == nil {
		return
	}

	XPAwarded.WithLabelValues(result.Activity).Add(float64(result.XPGained))
	if result.CapLimited {
		XPCapLimited.WithLabelValues(result.Activity).Inc()
	}

	if result.LevelInfo == nil {
		return
	}
	tier := string(result.LevelInfo.Tier)
	if result.LeveledUp {
		LevelUps.WithLabelValues(tier).Inc()
	}
	if result.TierChanged {
		TierPromotions.WithLabelValues(tier).Inc()
	}
}
