package domain

import (
	"time"

	"github.com/google/uuid"
)

// Learner tracks a learner's accumulated XP
type Learner struct {
	LearnerID     string     `json:"learner_id"`
	DisplayName   string     `json:"display_name"`
	TotalXP       int64      `json:"total_xp"`
	CurrentLevel  int        `json:"current_level"`
	XPGainedToday int64      `json:"xp_gained_today"`
	LastXPGain    *time.Time `json:"last_xp_gain,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// XPMetadata represents structured metadata for XP gain events
type XPMetadata struct {
	CourseID  string                 `json:"course_id,omitempty"`
	LessonID  string                 `json:"lesson_id,omitempty"`
	ProblemID string                 `json:"problem_id,omitempty"`
	QuizScore float64                `json:"quiz_score,omitempty"`
	Reason    string                 `json:"reason,omitempty"`
	Extras    map[string]interface{} `json:"extras,omitempty"`
}

// XPEvent records an XP gain event for auditing
type XPEvent struct {
	ID         uuid.UUID  `json:"id"`
	LearnerID  string     `json:"learner_id"`
	Activity   string     `json:"activity"` // "lesson_completed", "problem_solved", "admin_grant"
	XPAmount   int64      `json:"xp_amount"`
	Metadata   XPMetadata `json:"metadata"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// XPAwardRequest asks for XP for a completed learning activity
type XPAwardRequest struct {
	LearnerID   string
	DisplayName string
	Activity    string
	Quantity    int
	Metadata    XPMetadata
}

// XPAwardResult contains the outcome of awarding XP
type XPAwardResult struct {
	LearnerID   string     `json:"learner_id"`
	Activity    string     `json:"activity"`
	XPGained    int64      `json:"xp_gained"`
	NewXP       int64      `json:"new_xp"`
	OldLevel    int        `json:"old_level"`
	NewLevel    int        `json:"new_level"`
	LeveledUp   bool       `json:"leveled_up"`
	TierChanged bool       `json:"tier_changed"`
	CapLimited  bool       `json:"cap_limited"`
	LevelInfo   *LevelInfo `json:"level_info"`
}

// LearnerProgress combines a learner's XP with their resolved level for API responses
type LearnerProgress struct {
	LearnerID           string      `json:"learner_id"`
	DisplayName         string      `json:"display_name,omitempty"`
	TotalXP             int64       `json:"total_xp"`
	XPGainedToday       int64       `json:"xp_gained_today"`
	Level               *LevelInfo  `json:"level"`
	Progress            *XPProgress `json:"progress"`
	TierProgressPercent float64     `json:"tier_progress_percent"`
}

// LeaderboardEntry is one ranked row of the XP leaderboard
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	LearnerID   string  `json:"learner_id"`
	DisplayName string  `json:"display_name,omitempty"`
	TotalXP     int64   `json:"total_xp"`
	Level       int     `json:"level"`
	Title       string  `json:"title"`
	Tier        TierKey `json:"tier"`
	TierIcon    string  `json:"tier_icon"`
}
