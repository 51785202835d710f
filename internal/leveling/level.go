package leveling

import (
	"github.com/osse101/SkillQuest_Go/internal/domain"
)

// LevelForXP resolves an XP total to the learner's level, tier and next level.
// A learner with less XP than the first threshold is still level 1.
func (t *Table) LevelForXP(currentXP int64) (*domain.LevelInfo, error) {
	if err := validateXP(currentXP); err != nil {
		return nil, err
	}

	level := t.levelAt(currentXP)
	def := t.levels[level-1]
	tier := t.tiers[t.tierByLevel[level]]

	info := &domain.LevelInfo{
		Level:      def.Level,
		Title:      def.Title,
		XPRequired: def.XPRequired,
		Tier:       tier.Key,
		TierInfo:   tier,
		IsMaxLevel: level == MaxLevel,
	}
	if level < MaxLevel {
		next := t.levels[level]
		info.NextLevel = &next
	}

	return info, nil
}

// XPToNextLevel reports the XP still needed to reach the next level.
// At MaxLevel the next level is the current one and nothing is needed.
func (t *Table) XPToNextLevel(currentXP int64) (*domain.XPProgress, error) {
	if err := validateXP(currentXP); err != nil {
		return nil, err
	}

	level := t.levelAt(currentXP)
	if level == MaxLevel {
		return &domain.XPProgress{CurrentLevel: MaxLevel, NextLevel: MaxLevel, XPNeeded: 0}, nil
	}

	needed := t.levels[level].XPRequired - currentXP
	if needed < 0 {
		needed = 0
	}

	return &domain.XPProgress{
		CurrentLevel: level,
		NextLevel:    level + 1,
		XPNeeded:     needed,
	}, nil
}

// TierProgressPercent returns how far a level sits inside its tier, in [0, 100].
// The first level of a tier is 0; the last is just under 100.
func (t *Table) TierProgressPercent(level int) (float64, error) {
	tier, err := t.TierForLevel(level)
	if err != nil {
		return 0, err
	}

	span := tier.LevelRange.Size()
	pct := float64(level-tier.LevelRange.Start) / float64(span) * 100
	if pct < minPercent {
		return minPercent, nil
	}
	if pct > maxPercent {
		return maxPercent, nil
	}
	return pct, nil
}

// XPForLevel returns the cumulative XP threshold of a level
func (t *Table) XPForLevel(level int) (int64, error) {
	def, err := t.Level(level)
	if err != nil {
		return 0, err
	}
	return def.XPRequired, nil
}

// TitleForLevel returns the display title of a level, e.g. "Gold 24"
func (t *Table) TitleForLevel(level int) (string, error) {
	def, err := t.Level(level)
	if err != nil {
		return "", err
	}
	return def.Title, nil
}

// Package-level helpers over the default table

// LevelForXP resolves currentXP against the default table
func LevelForXP(currentXP int64) (*domain.LevelInfo, error) {
	return Default().LevelForXP(currentXP)
}

// XPToNextLevel computes XP remaining to the next level against the default table
func XPToNextLevel(currentXP int64) (*domain.XPProgress, error) {
	return Default().XPToNextLevel(currentXP)
}

// TierProgressPercent computes a level's position inside its tier against the default table
func TierProgressPercent(level int) (float64, error) {
	return Default().TierProgressPercent(level)
}

// XPForLevel returns a level's threshold from the default table
func XPForLevel(level int) (int64, error) {
	return Default().XPForLevel(level)
}

// TitleForLevel returns a level's title from the default table
func TitleForLevel(level int) (string, error) {
	return Default().TitleForLevel(level)
}

// TierForLevel returns the tier owning a level in the default table
func TierForLevel(level int) (domain.TierDefinition, error) {
	return Default().TierForLevel(level)
}

// Tiers returns the default tier catalog
func Tiers() []domain.TierDefinition {
	return Default().Tiers()
}
