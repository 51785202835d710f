package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SkillQuest_Go/internal/domain"
)

func TestRecordAward(t *testing.T) {
	before := testutil.ToFloat64(XPAwarded.WithLabelValues("quiz_passed"))
	levelUpsBefore := testutil.ToFloat64(LevelUps.WithLabelValues("silver"))
	promotionsBefore := testutil.ToFloat64(TierPromotions.WithLabelValues("silver"))
	cappedBefore := testutil.ToFloat64(XPCapLimited.WithLabelValues("quiz_passed"))

	RecordAward(&domain.XPAwardResult{
		Activity:    "quiz_passed",
		XPGained:    250,
		LeveledUp:   true,
		TierChanged: true,
		CapLimited:  true,
		LevelInfo:   &domain.LevelInfo{Level: 10, Tier: domain.TierSilver},
	})

	assert.Equal(t, before+250, testutil.ToFloat64(XPAwarded.WithLabelValues("quiz_passed")))
	assert.Equal(t, levelUpsBefore+1, testutil.ToFloat64(LevelUps.WithLabelValues("silver")))
	assert.Equal(t, promotionsBefore+1, testutil.ToFloat64(TierPromotions.WithLabelValues("silver")))
	assert.Equal(t, cappedBefore+1, testutil.ToFloat64(XPCapLimited.WithLabelValues("quiz_passed")))
}

func TestRecordAward_NoLevelChange(t *testing.T) {
	levelUpsBefore := testutil.ToFloat64(LevelUps.WithLabelValues("bronze"))

	RecordAward(&domain.XPAwardResult{
		Activity:  "lesson_completed",
		XPGained:  50,
		LevelInfo: &domain.LevelInfo{Level: 2, Tier: domain.TierBronze},
	})
	RecordAward(nil)

	assert.Equal(t, levelUpsBefore, testutil.ToFloat64(LevelUps.WithLabelValues("bronze")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/learners/{learnerID}/progress", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/learners/{learnerID}/progress", "418"))

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/learners/"+id+"/progress", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/learners/{learnerID}/progress", "418"))
	assert.Equal(t, before+2, after)
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
