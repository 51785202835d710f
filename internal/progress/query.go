package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/metrics"
)

// GetProgress returns a learner's XP resolved to level, next level and tier progress
func (s *service) GetProgress(ctx context.Context, learnerID string) (*domain.LearnerProgress, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, fmt.Errorf("learner id is required: %w", domain.ErrInvalidInput)
	}

	if cached, ok := s.cache.Get(learnerID); ok {
		return cached, nil
	}

	learner, err := s.repo.GetLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get learner: %w", err)
	}
	if learner == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, domain.ErrLearnerNotFound)
	}

	p, err := s.buildProgress(learner)
	if err != nil {
		return nil, err
	}

	s.cache.Set(learnerID, p)
	return p, nil
}

func (s *service) buildProgress(learner *domain.Learner) (*domain.LearnerProgress, error) {
	info, err := s.engine.LevelForXP(learner.TotalXP)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve level: %w", err)
	}
	metrics.LevelLookups.Inc()

	next, err := s.engine.XPToNextLevel(learner.TotalXP)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve next level: %w", err)
	}

	pct, err := s.engine.TierProgressPercent(info.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tier progress: %w", err)
	}

	return &domain.LearnerProgress{
		LearnerID:           learner.LearnerID,
		DisplayName:         learner.DisplayName,
		TotalXP:             learner.TotalXP,
		XPGainedToday:       learner.XPGainedToday,
		Level:               info,
		Progress:            next,
		TierProgressPercent: pct,
	}, nil
}

// GetLeaderboard ranks learners by total XP. A zero limit means DefaultLeaderboardLimit.
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d, got %d: %w", MaxLeaderboardLimit, limit, domain.ErrInvalidInput)
	}

	learners, err := s.repo.GetTopLearners(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(learners))
	for i, l := range learners {
		info, err := s.engine.LevelForXP(l.TotalXP)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve level for %s: %w", l.LearnerID, err)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			LearnerID:   l.LearnerID,
			DisplayName: l.DisplayName,
			TotalXP:     l.TotalXP,
			Level:       info.Level,
			Title:       info.Title,
			Tier:        info.Tier,
			TierIcon:    info.TierInfo.Icon,
		})
	}
	metrics.LevelLookups.Add(float64(len(entries)))

	return entries, nil
}
