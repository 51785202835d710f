package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkillQuest_Go/internal/config"
	"github.com/osse101/SkillQuest_Go/internal/validation"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

// LoadXPRules loads and schema-validates the XP rules file.
// A missing file falls back to the built-in rules; an invalid one is fatal.
func LoadXPRules(cfg *config.Config) (*xprules.Rules, error) {
	slog.Info(LogMsgLoadingXPRules, "path", cfg.XPRulesPath)

	loader := xprules.NewLoader(cfg.XPRulesSchemaPath, validation.NewSchemaValidator())
	rules, err := loader.LoadOrDefault(cfg.XPRulesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadXPRules, err)
	}

	slog.Info(LogMsgXPRulesLoaded,
		"version", rules.Version,
		"activities", len(rules.Activities),
		"daily_cap", rules.DailyCap)
	return rules, nil
}
