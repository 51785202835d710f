package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

// MockProgressService mocks progress.Service
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) AwardXP(ctx context.Context, req domain.XPAwardRequest) (*domain.XPAwardResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPAwardResult), args.Error(1)
}

func (m *MockProgressService) GrantXP(ctx context.Context, learnerID string, amount int64, reason string) (*domain.XPAwardResult, error) {
	args := m.Called(ctx, learnerID, amount, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPAwardResult), args.Error(1)
}

func (m *MockProgressService) GetProgress(ctx context.Context, learnerID string) (*domain.LearnerProgress, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearnerProgress), args.Error(1)
}

func (m *MockProgressService) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockProgressService) Rules() *xprules.Rules {
	args := m.Called()
	return args.Get(0).(*xprules.Rules)
}

func (m *MockProgressService) ResetDailyXP(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
