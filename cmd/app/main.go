package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SkillQuest_Go/internal/bootstrap"
	"github.com/osse101/SkillQuest_Go/internal/config"
	"github.com/osse101/SkillQuest_Go/internal/leveling"
	"github.com/osse101/SkillQuest_Go/internal/progress"
	"github.com/osse101/SkillQuest_Go/internal/server"
	"github.com/osse101/SkillQuest_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		slog.Error("Database setup failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	rules, err := bootstrap.LoadXPRules(cfg)
	if err != nil {
		slog.Error("XP rules setup failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	levels := leveling.Default()

	progressService := progress.NewService(repos.Progress, rules, levels, progress.Options{
		CacheSize:     cfg.CacheSize,
		CacheTTL:      cfg.CacheTTL,
		ResetLocation: cfg.DailyResetLocation,
	})

	resetWorker := worker.NewDailyResetWorker(progressService, cfg.DailyResetLocation)
	resetWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
	}, dbPool, levels, progressService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		ProgressService:  progressService,
		DailyResetWorker: resetWorker,
	})
}
