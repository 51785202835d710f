package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/metrics"
	"github.com/osse101/SkillQuest_Go/internal/repository"
)

// xpGrant is one resolved XP change ready to be applied
type xpGrant struct {
	learnerID   string
	displayName string
	activity    string
	amount      int64
	bypassCap   bool
	metadata    domain.XPMetadata
}

// AwardXP awards XP for a learning activity, honouring the daily cap
func (s *service) AwardXP(ctx context.Context, req domain.XPAwardRequest) (*domain.XPAwardResult, error) {
	learnerID := strings.TrimSpace(req.LearnerID)
	if learnerID == "" {
		return nil, fmt.Errorf("learner id is required: %w", domain.ErrInvalidInput)
	}

	amount, err := s.rules.XPFor(req.Activity, req.Quantity)
	if err != nil {
		return nil, err
	}
	rule, _ := s.rules.Activity(req.Activity)

	return s.apply(ctx, xpGrant{
		learnerID:   learnerID,
		displayName: strings.TrimSpace(req.DisplayName),
		activity:    rule.Key,
		amount:      amount,
		bypassCap:   rule.BypassCap,
		metadata:    req.Metadata,
	})
}

// GrantXP adds raw XP outside the activity rules; grants bypass the daily cap
func (s *service) GrantXP(ctx context.Context, learnerID string, amount int64, reason string) (*domain.XPAwardResult, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, fmt.Errorf("learner id is required: %w", domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("grant amount must be positive, got %d: %w", amount, domain.ErrInvalidInput)
	}

	return s.apply(ctx, xpGrant{
		learnerID: learnerID,
		activity:  ActivityAdminGrant,
		amount:    amount,
		bypassCap: true,
		metadata:  domain.XPMetadata{Reason: reason},
	})
}

func (s *service) apply(ctx context.Context, g xpGrant) (*domain.XPAwardResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginProgressTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin progress transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	learner, err := tx.GetOrCreateLearnerForUpdate(ctx, g.learnerID, g.displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to load learner: %w", err)
	}

	now := s.now()
	if learner.LastXPGain != nil && !s.sameXPDay(*learner.LastXPGain, now) {
		learner.XPGainedToday = 0
	}

	amount, capLimited, err := s.applyDailyCap(ctx, learner, g)
	if err != nil {
		return nil, err
	}

	oldInfo, err := s.engine.LevelForXP(learner.TotalXP)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current level: %w", err)
	}

	newXP := learner.TotalXP + amount
	newInfo, err := s.engine.LevelForXP(newXP)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve new level: %w", err)
	}

	learner.TotalXP = newXP
	learner.CurrentLevel = newInfo.Level
	learner.XPGainedToday += amount
	learner.LastXPGain = &now
	if g.displayName != "" {
		learner.DisplayName = g.displayName
	}

	if err := tx.UpdateLearner(ctx, learner); err != nil {
		return nil, fmt.Errorf("failed to update learner: %w", err)
	}

	event := &domain.XPEvent{
		ID:         uuid.New(),
		LearnerID:  g.learnerID,
		Activity:   g.activity,
		XPAmount:   amount,
		Metadata:   g.metadata,
		RecordedAt: now,
	}
	if err := tx.RecordXPEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record XP event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit XP award: %w", err)
	}

	s.cache.Invalidate(g.learnerID)

	result := &domain.XPAwardResult{
		LearnerID:   g.learnerID,
		Activity:    g.activity,
		XPGained:    amount,
		NewXP:       newXP,
		OldLevel:    oldInfo.Level,
		NewLevel:    newInfo.Level,
		LeveledUp:   newInfo.Level > oldInfo.Level,
		TierChanged: newInfo.Tier != oldInfo.Tier,
		CapLimited:  capLimited,
		LevelInfo:   newInfo,
	}

	log.Info(LogMsgAwardedXP,
		"learner_id", g.learnerID, "activity", g.activity, "xp", amount,
		"total_xp", newXP, "level", newInfo.Level, "leveled_up", result.LeveledUp)
	if result.LeveledUp {
		log.Info(LogMsgLevelUp,
			"learner_id", g.learnerID, "old_level", oldInfo.Level, "new_level", newInfo.Level, "title", newInfo.Title)
	}
	if result.TierChanged {
		log.Info(LogMsgTierPromotion,
			"learner_id", g.learnerID, "old_tier", oldInfo.Tier, "new_tier", newInfo.Tier)
	}
	metrics.RecordAward(result)

	return result, nil
}

// applyDailyCap trims the award to what is left of today's cap.
// Returns ErrDailyCapReached when nothing is left.
func (s *service) applyDailyCap(ctx context.Context, learner *domain.Learner, g xpGrant) (int64, bool, error) {
	if g.bypassCap {
		logger.FromContext(ctx).Debug(LogMsgBypassingDailyCap,
			"learner_id", g.learnerID, "activity", g.activity, "xp", g.amount)
		return g.amount, false, nil
	}

	dailyCap := s.rules.DailyCap
	if dailyCap <= 0 || learner.XPGainedToday+g.amount <= dailyCap {
		return g.amount, false, nil
	}

	remaining := dailyCap - learner.XPGainedToday
	if remaining <= 0 {
		logger.FromContext(ctx).Info(LogMsgDailyCapReached, "learner_id", g.learnerID, "activity", g.activity)
		metrics.XPCapLimited.WithLabelValues(g.activity).Inc()
		return 0, true, fmt.Errorf("learner %s earned %d XP today: %w", g.learnerID, learner.XPGainedToday, domain.ErrDailyCapReached)
	}
	return remaining, true, nil
}

// sameXPDay reports whether two instants fall on the same calendar day in the reset zone
func (s *service) sameXPDay(a, b time.Time) bool {
	ay, am, ad := a.In(s.loc).Date()
	by, bm, bd := b.In(s.loc).Date()
	return ay == by && am == bm && ad == bd
}

// ResetDailyXP clears every learner's daily XP counter
func (s *service) ResetDailyXP(ctx context.Context) (int64, error) {
	affected, err := s.repo.ResetDailyXP(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily XP: %w", err)
	}

	s.cache.Clear()
	metrics.DailyResets.Inc()
	logger.FromContext(ctx).Info(LogMsgDailyXPReset, "learners_reset", affected)
	return affected, nil
}
