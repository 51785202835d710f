package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SkillQuest_Go/internal/config"
	"github.com/osse101/SkillQuest_Go/internal/database"
	"github.com/osse101/SkillQuest_Go/internal/database/postgres"
	"github.com/osse101/SkillQuest_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Progress repository.Progress
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Progress: postgres.NewProgressRepository(dbPool),
	}
}

// ConnectDatabase opens the connection pool and brings the schema up to date.
// The caller owns the returned pool.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	slog.Info(LogMsgDatabaseReady, "schema_version", version, "max_conns", cfg.DBMaxConns)
	return pool, nil
}
