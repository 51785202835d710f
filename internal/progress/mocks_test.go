package progress

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/repository"
)

// MockRepository is a testify mock of repository.Progress
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetLearner(ctx context.Context, learnerID string) (*domain.Learner, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Learner), args.Error(1)
}

func (m *MockRepository) GetTopLearners(ctx context.Context, limit int) ([]domain.Learner, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Learner), args.Error(1)
}

func (m *MockRepository) ResetDailyXP(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) BeginProgressTx(ctx context.Context) (repository.ProgressTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ProgressTx), args.Error(1)
}

// MockTx is a testify mock of repository.ProgressTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetOrCreateLearnerForUpdate(ctx context.Context, learnerID, displayName string) (*domain.Learner, error) {
	args := m.Called(ctx, learnerID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Learner), args.Error(1)
}

func (m *MockTx) UpdateLearner(ctx context.Context, learner *domain.Learner) error {
	args := m.Called(ctx, learner)
	return args.Error(0)
}

func (m *MockTx) RecordXPEvent(ctx context.Context, event *domain.XPEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
