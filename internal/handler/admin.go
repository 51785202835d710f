package handler

import (
	"net/http"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/progress"
)

// GrantXPRequest is the request body for an administrative XP grant
type GrantXPRequest struct {
	LearnerID string `json:"learner_id" validate:"required,max=100,learner_id"`
	Amount    int64  `json:"amount" validate:"gt=0,max=539000"`
	Reason    string `json:"reason" validate:"required,max=200"`
}

// GrantXPResponse reports the outcome of a grant
type GrantXPResponse struct {
	Message string                `json:"message"`
	Result  *domain.XPAwardResult `json:"result"`
}

// ResetDailyXPResponse reports how many learners were reset
type ResetDailyXPResponse struct {
	Message         string `json:"message"`
	RecordsAffected int64  `json:"records_affected"`
}

// AdminHandler handles administrative XP endpoints
type AdminHandler struct {
	service progress.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service progress.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// HandleGrantXP grants raw XP to a learner, bypassing the daily cap
// POST /api/v1/admin/grant-xp
func (h *AdminHandler) HandleGrantXP(w http.ResponseWriter, r *http.Request) {
	var req GrantXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Info("Admin XP grant",
		"learner_id", req.LearnerID, "amount", req.Amount, "reason", req.Reason)

	result, err := h.service.GrantXP(r.Context(), req.LearnerID, req.Amount, req.Reason)
	if err != nil {
		respondServiceError(w, r, "Grant XP", err)
		return
	}

	respondJSON(w, http.StatusOK, GrantXPResponse{Message: MsgXPGrantedSuccess, Result: result})
}

// HandleResetDailyXP clears every learner's daily XP counter
// POST /api/v1/admin/reset-daily-xp
func (h *AdminHandler) HandleResetDailyXP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info("Manual daily XP reset triggered")

	affected, err := h.service.ResetDailyXP(r.Context())
	if err != nil {
		log.Error("Manual daily XP reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgResetDailyXPFailed)
		return
	}

	respondJSON(w, http.StatusOK, ResetDailyXPResponse{
		Message:         MsgDailyXPResetSuccess,
		RecordsAffected: affected,
	})
}
