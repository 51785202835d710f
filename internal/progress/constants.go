package progress

import "time"

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion invalidates cached progress when the cached shape changes
	CacheSchemaVersion = "1.0"
)

// ActivityAdminGrant is the activity recorded for administrative XP grants
const ActivityAdminGrant = "admin_grant"

// Log Messages
const (
	LogMsgAwardedXP          = "Awarded XP"
	LogMsgLevelUp            = "Learner leveled up"
	LogMsgTierPromotion      = "Learner reached a new tier"
	LogMsgDailyCapReached    = "Daily XP cap reached"
	LogMsgBypassingDailyCap  = "Bypassing daily XP cap"
	LogMsgDailyXPReset       = "Daily XP counters reset"
	LogMsgServiceShutdown    = "Progress service shutting down..."
	LogMsgServiceShutdownEnd = "Progress service shutdown complete"
)
