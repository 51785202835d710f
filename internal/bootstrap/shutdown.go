package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SkillQuest_Go/internal/progress"
)

// Stopper is an HTTP server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server           Stopper
	ProgressService  progress.Service
	DailyResetWorker Shutdownable
}

// Shutdownable releases background work
type Shutdownable interface {
	Shutdown(context.Context) error
}

// GracefulShutdown stops the HTTP server first, then the reset worker, then services.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DailyResetWorker != nil {
		if err := components.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.ProgressService != nil {
		shutdownService(ctx, ServiceNameProgress, components.ProgressService)
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service Shutdownable) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
