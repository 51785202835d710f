package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/SkillQuest_Go/internal/database"
)

// startTestDatabase starts a disposable PostgreSQL container and applies migrations.
// Returns a nil pool when Docker is unavailable.
func startTestDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func(), err error) {
	terminate = func() {}

	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in startTestDatabase: %v\n", r)
			pool, err = nil, nil
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, terminate, nil
	}
	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, terminate, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err = database.NewPool(ctx, connStr, database.PoolOptions{MaxConns: 10})
	if err != nil {
		return nil, terminate, err
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, terminate, err
	}

	return pool, terminate, nil
}
