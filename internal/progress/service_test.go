package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/leveling"
	"github.com/osse101/SkillQuest_Go/internal/repository"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository) Service {
	return NewService(repo, xprules.DefaultRules(), leveling.NewTable(), Options{
		CacheSize: 10,
		CacheTTL:  time.Minute,
		Now:       func() time.Time { return fixedNow },
	})
}

// expectTx wires a transaction that hands out learner and expects a successful commit
func expectTx(repo *MockRepository, learner *domain.Learner) *MockTx {
	tx := new(MockTx)
	repo.On("BeginProgressTx", mock.Anything).Return(tx, nil)
	tx.On("GetOrCreateLearnerForUpdate", mock.Anything, learner.LearnerID, mock.Anything).Return(learner, nil)
	tx.On("UpdateLearner", mock.Anything, mock.Anything).Return(nil)
	tx.On("RecordXPEvent", mock.Anything, mock.Anything).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(repository.ErrTxClosed)
	return tx
}

func TestAwardXP_Basic(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	learner := &domain.Learner{LearnerID: "ada", TotalXP: 2400}
	tx := expectTx(repo, learner)

	result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
		LearnerID: "ada",
		Activity:  xprules.ActivityLessonCompleted,
		Quantity:  1,
		Metadata:  domain.XPMetadata{LessonID: "loops-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50), result.XPGained)
	assert.Equal(t, int64(2450), result.NewXP)
	assert.Equal(t, 2, result.OldLevel)
	assert.Equal(t, 2, result.NewLevel)
	assert.False(t, result.LeveledUp)
	assert.False(t, result.TierChanged)
	assert.False(t, result.CapLimited)
	assert.Equal(t, domain.TierBronze, result.LevelInfo.Tier)

	assert.Equal(t, int64(2450), learner.TotalXP)
	assert.Equal(t, int64(50), learner.XPGainedToday)
	assert.Equal(t, 2, learner.CurrentLevel)
	require.NotNil(t, learner.LastXPGain)
	assert.Equal(t, fixedNow, *learner.LastXPGain)

	tx.AssertCalled(t, "RecordXPEvent", mock.Anything, mock.MatchedBy(func(e *domain.XPEvent) bool {
		return e.LearnerID == "ada" && e.XPAmount == 50 && e.Activity == xprules.ActivityLessonCompleted &&
			e.Metadata.LessonID == "loops-1"
	}))
	tx.AssertCalled(t, "Commit", mock.Anything)
}

func TestAwardXP_LevelUpAndTierChange(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	// 8950 is level 8; +150 crosses 9000 (level 9) but stays bronze
	learner := &domain.Learner{LearnerID: "ada", TotalXP: 8950}
	expectTx(repo, learner)

	result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
		LearnerID: "ada", Activity: xprules.ActivityProblemSolved, Quantity: 1,
	})
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)
	assert.False(t, result.TierChanged)
	assert.Equal(t, 8, result.OldLevel)
	assert.Equal(t, 9, result.NewLevel)

	// 10000 is still level 9; the course award reaches 11000, the first silver level
	repo2 := new(MockRepository)
	svc2 := newTestService(repo2)
	learner2 := &domain.Learner{LearnerID: "bob", TotalXP: 10000}
	expectTx(repo2, learner2)

	result, err = svc2.AwardXP(context.Background(), domain.XPAwardRequest{
		LearnerID: "bob", Activity: xprules.ActivityCourseCompleted, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11000), result.NewXP)
	assert.Equal(t, 10, result.NewLevel)
	assert.True(t, result.LeveledUp)
	assert.True(t, result.TierChanged)
	assert.Equal(t, domain.TierSilver, result.LevelInfo.Tier)
	assert.Equal(t, "Silver 10", result.LevelInfo.Title)
}

func TestAwardXP_DailyCap(t *testing.T) {
	today := fixedNow.Add(-time.Hour)

	t.Run("partial award up to cap", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		learner := &domain.Learner{LearnerID: "ada", TotalXP: 20000, XPGainedToday: 4900, LastXPGain: &today}
		expectTx(repo, learner)

		result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityProblemSolved, Quantity: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.XPGained)
		assert.True(t, result.CapLimited)
		assert.Equal(t, int64(xprules.DefaultDailyCap), learner.XPGainedToday)
	})

	t.Run("cap reached", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		learner := &domain.Learner{LearnerID: "ada", TotalXP: 20000, XPGainedToday: 5000, LastXPGain: &today}
		tx := new(MockTx)
		repo.On("BeginProgressTx", mock.Anything).Return(tx, nil)
		tx.On("GetOrCreateLearnerForUpdate", mock.Anything, "ada", "").Return(learner, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityQuizPassed, Quantity: 1,
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrDailyCapReached)
		tx.AssertNotCalled(t, "UpdateLearner", mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		tx.AssertCalled(t, "Rollback", mock.Anything)
	})

	t.Run("bypass activity ignores cap", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		learner := &domain.Learner{LearnerID: "ada", TotalXP: 20000, XPGainedToday: 5000, LastXPGain: &today}
		expectTx(repo, learner)

		result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityCourseCompleted, Quantity: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1000), result.XPGained)
		assert.False(t, result.CapLimited)
	})

	t.Run("counter rolls over on a new day", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		yesterday := fixedNow.Add(-24 * time.Hour)
		learner := &domain.Learner{LearnerID: "ada", TotalXP: 20000, XPGainedToday: 5000, LastXPGain: &yesterday}
		expectTx(repo, learner)

		result, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityQuizPassed, Quantity: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(200), result.XPGained)
		assert.Equal(t, int64(200), learner.XPGainedToday)
	})
}

func TestAwardXP_InvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.XPAwardRequest
		wantErr error
	}{
		{"missing learner", domain.XPAwardRequest{Activity: xprules.ActivityQuizPassed, Quantity: 1}, domain.ErrInvalidInput},
		{"unknown activity", domain.XPAwardRequest{LearnerID: "ada", Activity: "watched_ad", Quantity: 1}, domain.ErrUnknownActivity},
		{"zero quantity", domain.XPAwardRequest{LearnerID: "ada", Activity: xprules.ActivityQuizPassed}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			_, err := svc.AwardXP(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "BeginProgressTx", mock.Anything)
		})
	}
}

func TestAwardXP_RepositoryFailures(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("begin fails", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("BeginProgressTx", mock.Anything).Return(nil, dbErr)

		_, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityQuizPassed, Quantity: 1,
		})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("event insert fails rolls back", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		tx := new(MockTx)
		repo.On("BeginProgressTx", mock.Anything).Return(tx, nil)
		tx.On("GetOrCreateLearnerForUpdate", mock.Anything, "ada", "").
			Return(&domain.Learner{LearnerID: "ada"}, nil)
		tx.On("UpdateLearner", mock.Anything, mock.Anything).Return(nil)
		tx.On("RecordXPEvent", mock.Anything, mock.Anything).Return(dbErr)
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.AwardXP(context.Background(), domain.XPAwardRequest{
			LearnerID: "ada", Activity: xprules.ActivityQuizPassed, Quantity: 1,
		})
		assert.ErrorIs(t, err, dbErr)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		tx.AssertCalled(t, "Rollback", mock.Anything)
	})
}

func TestGrantXP(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	today := fixedNow.Add(-time.Minute)
	learner := &domain.Learner{LearnerID: "ada", XPGainedToday: 5000, LastXPGain: &today}
	tx := expectTx(repo, learner)

	result, err := svc.GrantXP(context.Background(), "ada", 539000, "migration from legacy platform")
	require.NoError(t, err)
	assert.Equal(t, ActivityAdminGrant, result.Activity)
	assert.Equal(t, 100, result.NewLevel)
	assert.True(t, result.LevelInfo.IsMaxLevel)
	assert.Nil(t, result.LevelInfo.NextLevel)
	tx.AssertCalled(t, "RecordXPEvent", mock.Anything, mock.MatchedBy(func(e *domain.XPEvent) bool {
		return e.Metadata.Reason == "migration from legacy platform"
	}))

	_, err = svc.GrantXP(context.Background(), "ada", 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.GrantXP(context.Background(), " ", 10, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProgress(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetLearner", mock.Anything, "ada").
		Return(&domain.Learner{LearnerID: "ada", DisplayName: "Ada", TotalXP: 4595}, nil).Once()

	p, err := svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Level.Level)
	assert.Equal(t, "Bronze 4", p.Level.Title)
	assert.Equal(t, int64(405), p.Progress.XPNeeded)
	assert.Equal(t, 5, p.Progress.NextLevel)
	assert.InDelta(t, 33.33, p.TierProgressPercent, 0.01)

	// Second read is served from cache
	cached, err := svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)
	assert.Same(t, p, cached)
	repo.AssertNumberOfCalls(t, "GetLearner", 1)
}

func TestGetProgress_InvalidatedByAward(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetLearner", mock.Anything, "ada").
		Return(&domain.Learner{LearnerID: "ada", TotalXP: 100}, nil)
	expectTx(repo, &domain.Learner{LearnerID: "ada", TotalXP: 100})

	_, err := svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)

	_, err = svc.AwardXP(context.Background(), domain.XPAwardRequest{
		LearnerID: "ada", Activity: xprules.ActivityQuizPassed, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetLearner", 2)
}

func TestGetProgress_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetLearner", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.GetProgress(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrLearnerNotFound)
}

func TestGetLeaderboard(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetTopLearners", mock.Anything, DefaultLeaderboardLimit).Return([]domain.Learner{
		{LearnerID: "grace", DisplayName: "Grace", TotalXP: 439000},
		{LearnerID: "ada", DisplayName: "Ada", TotalXP: 2450},
	}, nil)

	entries, err := svc.GetLeaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 90, entries[0].Level)
	assert.Equal(t, domain.TierGrandmaster, entries[0].Tier)
	assert.Equal(t, "Grandmaster 90", entries[0].Title)
	assert.NotEmpty(t, entries[0].TierIcon)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 2, entries[1].Level)
	assert.Equal(t, domain.TierBronze, entries[1].Tier)
}

func TestGetLeaderboard_InvalidLimit(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	for _, limit := range []int{-1, MaxLeaderboardLimit + 1} {
		_, err := svc.GetLeaderboard(context.Background(), limit)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "limit %d", limit)
	}
	repo.AssertNotCalled(t, "GetTopLearners", mock.Anything, mock.Anything)
}

func TestResetDailyXP(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("GetLearner", mock.Anything, "ada").
		Return(&domain.Learner{LearnerID: "ada", TotalXP: 100, XPGainedToday: 100}, nil)
	repo.On("ResetDailyXP", mock.Anything).Return(int64(3), nil)

	_, err := svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)

	affected, err := svc.ResetDailyXP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	// Cache was cleared by the reset
	_, err = svc.GetProgress(context.Background(), "ada")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetLearner", 2)
}

func TestShutdown(t *testing.T) {
	svc := newTestService(new(MockRepository))
	assert.NoError(t, svc.Shutdown(context.Background()))
}
