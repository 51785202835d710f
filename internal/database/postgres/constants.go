package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is raised when an xp event references a missing learner
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Learner Operations
const (
	ErrMsgFailedToGetLearner          = "failed to get learner"
	ErrMsgFailedToEnsureLearnerRow    = "failed to ensure learner row"
	ErrMsgFailedToGetLearnerForUpdate = "failed to get learner for update"
	ErrMsgFailedToUpdateLearner       = "failed to update learner"
	ErrMsgFailedToQueryTopLearners    = "failed to query top learners"
	ErrMsgFailedToScanLearner         = "failed to scan learner"
	ErrMsgRowIteration                = "row iteration error"
)

// Error Messages - XP Operations
const (
	ErrMsgFailedToRecordXPEvent   = "failed to record XP event"
	ErrMsgFailedToMarshalMetadata = "failed to marshal metadata"
	ErrMsgFailedToResetDailyXP    = "failed to reset daily XP"
)

// Log Messages
const (
	LogMsgResetDailyXP = "Reset daily XP"
)
