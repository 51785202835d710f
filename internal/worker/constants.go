package worker

import "time"

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting      = "Daily XP reset starting"
	LogMsgDailyResetCompleted     = "Daily XP reset completed"
	LogMsgDailyResetFailed        = "Daily XP reset failed"
	LogMsgDailyResetStandby       = "Daily XP reset standby"
	LogMsgDailyResetApproach      = "Daily XP reset scheduled"
	LogMsgDailyResetManualTrigger = "Daily XP reset manually triggered"
)

// ============================================================================
// Scheduling
// ============================================================================

const (
	// standbyThreshold switches from the coarse timer to the exact one
	standbyThreshold = 1 * time.Hour
	// standbyLead is how long before the reset the coarse timer wakes up
	standbyLead = 45 * time.Minute
	// earlyFireTolerance reschedules timers that fire this far ahead of midnight
	earlyFireTolerance = 10 * time.Second
)
