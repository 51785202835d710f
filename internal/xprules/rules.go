package xprules

import (
	"fmt"

	"github.com/osse101/SkillQuest_Go/internal/domain"
)

// Activity keys awarded by the learning front end
const (
	ActivityLessonCompleted = "lesson_completed"
	ActivityQuizPassed      = "quiz_passed"
	ActivityProblemSolved   = "problem_solved"
	ActivityCourseCompleted = "course_completed"
	ActivityDailyStreak     = "daily_streak"
)

// DefaultDailyCap is the per-learner daily XP cap used when no rules file is configured
const DefaultDailyCap = 5000

// Activity is the XP rule for one learning activity
type Activity struct {
	Key         string `yaml:"key" json:"key"`
	XP          int64  `yaml:"xp" json:"xp"`
	BypassCap   bool   `yaml:"bypass_cap" json:"bypass_cap"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Rules maps learning activities to XP awards
type Rules struct {
	Version    int        `yaml:"version" json:"version"`
	DailyCap   int64      `yaml:"daily_cap" json:"daily_cap"`
	Activities []Activity `yaml:"activities" json:"activities"`

	byKey map[string]Activity
}

// DefaultRules returns the built-in rule set
func DefaultRules() *Rules {
	r := &Rules{
		Version:  1,
		DailyCap: DefaultDailyCap,
		Activities: []Activity{
			{Key: ActivityLessonCompleted, XP: 50, Description: "Finished a lesson"},
			{Key: ActivityQuizPassed, XP: 100, Description: "Passed a quiz"},
			{Key: ActivityProblemSolved, XP: 150, Description: "Solved a practice problem"},
			{Key: ActivityCourseCompleted, XP: 1000, BypassCap: true, Description: "Completed a whole course"},
			{Key: ActivityDailyStreak, XP: 25, Description: "Kept the daily streak alive"},
		},
	}
	r.index()
	return r
}

func (r *Rules) index() {
	r.byKey = make(map[string]Activity, len(r.Activities))
	for _, a := range r.Activities {
		r.byKey[a.Key] = a
	}
}

// Activity looks up the rule for an activity key
func (r *Rules) Activity(key string) (Activity, bool) {
	a, ok := r.byKey[key]
	return a, ok
}

// XPFor returns the XP earned for performing an activity quantity times
func (r *Rules) XPFor(activity string, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1, got %d", domain.ErrInvalidInput, quantity)
	}
	a, ok := r.byKey[activity]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownActivity, activity)
	}
	return a.XP * int64(quantity), nil
}

// validate enforces what the schema cannot: unique activity keys
func (r *Rules) validate() error {
	seen := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		if seen[a.Key] {
			return fmt.Errorf("%w: duplicate activity %q", domain.ErrInvalidXPRules, a.Key)
		}
		seen[a.Key] = true
	}
	return nil
}
