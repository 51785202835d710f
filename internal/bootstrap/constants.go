package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSkillQuest  = "Starting SkillQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgDatabaseReady       = "Database ready"
	LogMsgLoadingXPRules      = "Loading XP rules..."
	LogMsgXPRulesLoaded       = "XP rules loaded"
)

// Startup error messages
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrateDatabase = "failed to migrate database"
	ErrMsgFailedLoadXPRules     = "failed to load XP rules"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Daily reset worker shutdown failed"

	ServiceNameProgress = "progress"

	// Service name is prepended
	LogMsgServiceShutdownFailed = " service shutdown failed"
)

// Environments that log source locations
var sourceLoggingEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
}
