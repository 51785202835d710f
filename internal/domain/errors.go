package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Argument errors
	ErrMsgInvalidArgument = "invalid argument"

	// Learner errors
	ErrMsgLearnerNotFound = "learner not found"

	// XP errors
	ErrMsgUnknownActivity = "unknown activity"
	ErrMsgDailyCapReached = "daily XP cap reached"
	ErrMsgInvalidXPRules  = "invalid XP rules"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidArgument is returned by the leveling engine for negative XP or a level outside 1..100
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// Learner errors
	ErrLearnerNotFound = errors.New(ErrMsgLearnerNotFound)

	// XP errors
	ErrUnknownActivity = errors.New(ErrMsgUnknownActivity)
	ErrDailyCapReached = errors.New(ErrMsgDailyCapReached)
	ErrInvalidXPRules  = errors.New(ErrMsgInvalidXPRules)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
