package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/progress"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

// AwardXPRequest is the request body for awarding activity XP
type AwardXPRequest struct {
	LearnerID   string            `json:"learner_id" validate:"required,max=100,learner_id"`
	DisplayName string            `json:"display_name,omitempty" validate:"max=100"`
	Activity    string            `json:"activity" validate:"required,max=50"`
	Quantity    *int              `json:"quantity,omitempty" validate:"omitempty,min=1,max=1000"`
	Metadata    domain.XPMetadata `json:"metadata,omitempty"`
}

// ActivitiesResponse lists the XP rules in effect
type ActivitiesResponse struct {
	DailyCap   int64              `json:"daily_cap"`
	Activities []xprules.Activity `json:"activities"`
}

// LeaderboardResponse wraps ranked learners
type LeaderboardResponse struct {
	Limit   int                       `json:"limit"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// ProgressHandler serves learner XP and level endpoints
type ProgressHandler struct {
	service progress.Service
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(service progress.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// HandleGetProgress returns a learner's XP, level and tier progress
// GET /api/v1/learners/{learnerID}/progress
func (h *ProgressHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := GetPathParam(r, w, "learnerID")
	if !ok {
		return
	}

	p, err := h.service.GetProgress(r.Context(), learnerID)
	if err != nil {
		respondServiceError(w, r, "Get progress", err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleAwardXP awards XP for a completed learning activity
// POST /api/v1/learners/award-xp
func (h *ProgressHandler) HandleAwardXP(w http.ResponseWriter, r *http.Request) {
	var req AwardXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award XP"); err != nil {
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	result, err := h.service.AwardXP(r.Context(), domain.XPAwardRequest{
		LearnerID:   req.LearnerID,
		DisplayName: req.DisplayName,
		Activity:    req.Activity,
		Quantity:    quantity,
		Metadata:    req.Metadata,
	})
	if err != nil {
		respondServiceError(w, r, "Award XP", err)
		return
	}

	if result.LeveledUp {
		logger.FromContext(r.Context()).Debug("Award produced level-up",
			"learner_id", result.LearnerID, "new_level", result.NewLevel)
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGetLeaderboard returns learners ranked by total XP
// GET /api/v1/leaderboard?limit=N
func (h *ProgressHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := progress.DefaultLeaderboardLimit
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		if n < 1 || n > progress.MaxLeaderboardLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{Limit: limit, Entries: entries})
}

// HandleListActivities returns the XP awarded per learning activity
// GET /api/v1/activities
func (h *ProgressHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	rules := h.service.Rules()
	respondJSON(w, http.StatusOK, ActivitiesResponse{
		DailyCap:   rules.DailyCap,
		Activities: rules.Activities,
	})
}
