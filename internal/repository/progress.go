package repository

import (
	"context"
	"errors"

	"github.com/osse101/SkillQuest_Go/internal/domain"
)

// ErrTxClosed is returned when rolling back a transaction that already committed
var ErrTxClosed = errors.New("transaction already closed")

// Progress defines the data access interface for learner XP
type Progress interface {
	// GetLearner returns nil, nil when the learner has no progress yet
	GetLearner(ctx context.Context, learnerID string) (*domain.Learner, error)
	GetTopLearners(ctx context.Context, limit int) ([]domain.Learner, error)
	ResetDailyXP(ctx context.Context) (int64, error)

	BeginProgressTx(ctx context.Context) (ProgressTx, error)
}

// ProgressTx groups the read-modify-write of an XP award
type ProgressTx interface {
	// GetOrCreateLearnerForUpdate creates the learner row if needed and locks it
	GetOrCreateLearnerForUpdate(ctx context.Context, learnerID, displayName string) (*domain.Learner, error)
	UpdateLearner(ctx context.Context, learner *domain.Learner) error
	RecordXPEvent(ctx context.Context, event *domain.XPEvent) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
