package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/SkillQuest_Go/internal/config"
	"github.com/osse101/SkillQuest_Go/internal/logger"
)

// SetupLogger installs the application logger writing to w
func SetupLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		sourceLoggingEnvironments[cfg.Environment],
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingSkillQuest,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"reset_timezone", cfg.DailyResetLocation.String())
}
