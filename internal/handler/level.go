package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/metrics"
)

// LevelCatalog is the read-only level and tier table
type LevelCatalog interface {
	Levels() []domain.LevelDefinition
	Tiers() []domain.TierDefinition
	Level(level int) (domain.LevelDefinition, error)
	TierForLevel(level int) (domain.TierDefinition, error)
	LevelForXP(currentXP int64) (*domain.LevelInfo, error)
	XPToNextLevel(currentXP int64) (*domain.XPProgress, error)
	TierProgressPercent(level int) (float64, error)
}

// LevelListResponse is the full level table
type LevelListResponse struct {
	MaxLevel int                      `json:"max_level"`
	Levels   []domain.LevelDefinition `json:"levels"`
}

// TierListResponse is the tier catalog
type TierListResponse struct {
	Tiers []domain.TierDefinition `json:"tiers"`
}

// LevelDetailResponse describes a single level
type LevelDetailResponse struct {
	Level               domain.LevelDefinition `json:"level"`
	Tier                domain.TierDefinition  `json:"tier"`
	TierProgressPercent float64                `json:"tier_progress_percent"`
}

// LevelLookupResponse resolves an XP total
type LevelLookupResponse struct {
	XP                  int64              `json:"xp"`
	Level               *domain.LevelInfo  `json:"level"`
	Progress            *domain.XPProgress `json:"progress"`
	TierProgressPercent float64            `json:"tier_progress_percent"`
}

// LevelHandler serves the static level and tier tables
type LevelHandler struct {
	catalog LevelCatalog
}

// NewLevelHandler creates a new LevelHandler
func NewLevelHandler(catalog LevelCatalog) *LevelHandler {
	return &LevelHandler{catalog: catalog}
}

// HandleListLevels returns all 100 levels
// GET /api/v1/levels
func (h *LevelHandler) HandleListLevels(w http.ResponseWriter, r *http.Request) {
	levels := h.catalog.Levels()
	respondJSON(w, http.StatusOK, LevelListResponse{
		MaxLevel: len(levels),
		Levels:   levels,
	})
}

// HandleListTiers returns the tier catalog
// GET /api/v1/tiers
func (h *LevelHandler) HandleListTiers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TierListResponse{Tiers: h.catalog.Tiers()})
}

// HandleGetLevel returns one level with its tier
// GET /api/v1/levels/{level}
func (h *LevelHandler) HandleGetLevel(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetPathParam(r, w, "level")
	if !ok {
		return
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgNotAnInteger, "level"))
		return
	}

	def, err := h.catalog.Level(level)
	if err != nil {
		respondServiceError(w, r, "Get level", err)
		return
	}
	tier, err := h.catalog.TierForLevel(level)
	if err != nil {
		respondServiceError(w, r, "Get level", err)
		return
	}
	pct, err := h.catalog.TierProgressPercent(level)
	if err != nil {
		respondServiceError(w, r, "Get level", err)
		return
	}

	respondJSON(w, http.StatusOK, LevelDetailResponse{
		Level:               def,
		Tier:                tier,
		TierProgressPercent: pct,
	})
}

// HandleLookupLevel resolves an XP total to level, tier and next-level progress
// GET /api/v1/levels/lookup?xp=N
func (h *LevelHandler) HandleLookupLevel(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetQueryParam(r, w, "xp")
	if !ok {
		return
	}
	xp, ok := parseWholeNumber(w, "xp", raw)
	if !ok {
		return
	}

	info, err := h.catalog.LevelForXP(xp)
	if err != nil {
		respondServiceError(w, r, "Level lookup", err)
		return
	}
	progress, err := h.catalog.XPToNextLevel(xp)
	if err != nil {
		respondServiceError(w, r, "Level lookup", err)
		return
	}
	pct, err := h.catalog.TierProgressPercent(info.Level)
	if err != nil {
		respondServiceError(w, r, "Level lookup", err)
		return
	}
	metrics.LevelLookups.Inc()

	respondJSON(w, http.StatusOK, LevelLookupResponse{
		XP:                  xp,
		Level:               info,
		Progress:            progress,
		TierProgressPercent: pct,
	})
}
