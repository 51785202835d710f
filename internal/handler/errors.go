package handler

// User-facing error messages. Internal error details are never exposed.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Request shape messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgNotAnInteger          = "%s must be a whole number"

	// Leveling messages
	ErrMsgInvalidArgumentError = "XP must be zero or more and levels must be between 1 and 100"
	ErrMsgInvalidLimit         = "Invalid limit parameter"

	// Learner messages
	ErrMsgLearnerNotFoundError = "Learner not found"
	ErrMsgUnknownActivityError = "Unknown learning activity"
	ErrMsgDailyCapReachedError = "Daily XP cap reached. Come back tomorrow!"

	// Admin messages
	ErrMsgResetDailyXPFailed = "Failed to reset daily XP"
)

// Success messages
const (
	MsgXPGrantedSuccess    = "XP granted successfully"
	MsgDailyXPResetSuccess = "Daily XP reset completed"
)
