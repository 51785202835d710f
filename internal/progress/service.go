package progress

import (
	"context"
	"time"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/repository"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

// LevelEngine resolves XP totals to levels and tiers
type LevelEngine interface {
	LevelForXP(currentXP int64) (*domain.LevelInfo, error)
	XPToNextLevel(currentXP int64) (*domain.XPProgress, error)
	TierProgressPercent(level int) (float64, error)
}

// Service defines the learner progress business logic
type Service interface {
	// XP operations
	AwardXP(ctx context.Context, req domain.XPAwardRequest) (*domain.XPAwardResult, error)
	GrantXP(ctx context.Context, learnerID string, amount int64, reason string) (*domain.XPAwardResult, error)

	// Read operations
	GetProgress(ctx context.Context, learnerID string) (*domain.LearnerProgress, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Rules() *xprules.Rules

	// Daily reset operations
	ResetDailyXP(ctx context.Context) (int64, error)

	Shutdown(ctx context.Context) error
}

// Options tunes the progress service
type Options struct {
	CacheSize int
	CacheTTL  time.Duration

	// ResetLocation is the time zone whose midnight starts a new XP day. Defaults to UTC.
	ResetLocation *time.Location

	// Now overrides the clock in tests
	Now func() time.Time
}

type service struct {
	repo   repository.Progress
	rules  *xprules.Rules
	engine LevelEngine
	cache  *progressCache
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new progress service
func NewService(repo repository.Progress, rules *xprules.Rules, engine LevelEngine, opts Options) Service {
	if rules == nil {
		rules = xprules.DefaultRules()
	}
	loc := opts.ResetLocation
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:   repo,
		rules:  rules,
		engine: engine,
		cache:  newProgressCache(opts.CacheSize, opts.CacheTTL),
		loc:    loc,
		now:    now,
	}
}

func (s *service) Rules() *xprules.Rules {
	return s.rules
}

// Shutdown drops cached progress
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgServiceShutdown)

	s.cache.Clear()

	log.Info(LogMsgServiceShutdownEnd)
	return nil
}
