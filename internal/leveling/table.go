package leveling

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SkillQuest_Go/internal/domain"
)

// Table is the immutable level threshold table together with the tier catalog.
// It is safe for concurrent use; nothing mutates it after construction.
type Table struct {
	levels      []domain.LevelDefinition // index = level - 1
	tiers       []domain.TierDefinition
	tierByLevel [MaxLevel + 1]int // index into tiers, slot 0 unused
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the process-wide table, building it on first use
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// NewTable builds a fresh table from the tier catalog.
// Callers normally want Default; NewTable exists for tests and tooling.
func NewTable() *Table {
	t := &Table{
		levels: make([]domain.LevelDefinition, 0, MaxLevel),
		tiers:  make([]domain.TierDefinition, len(tierCatalog)),
	}
	copy(t.tiers, tierCatalog)

	titler := cases.Title(language.English)
	var cumulative int64

	for i, tier := range t.tiers {
		label := titler.String(string(tier.Key))
		for level := tier.LevelRange.Start; level <= tier.LevelRange.End; level++ {
			cumulative += tier.XPPerLevel
			t.levels = append(t.levels, domain.LevelDefinition{
				Level:      level,
				Title:      fmt.Sprintf("%s %d", label, level),
				XPRequired: cumulative,
			})
			t.tierByLevel[level] = i
		}
	}

	return t
}

// BuildLevelTable returns a copy of the 100-row level table of the default table
func BuildLevelTable() []domain.LevelDefinition {
	return Default().Levels()
}

// Levels returns a copy of every level definition in ascending order
func (t *Table) Levels() []domain.LevelDefinition {
	out := make([]domain.LevelDefinition, len(t.levels))
	copy(out, t.levels)
	return out
}

// Tiers returns a copy of the tier catalog in level order
func (t *Table) Tiers() []domain.TierDefinition {
	out := make([]domain.TierDefinition, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Tier looks up a tier by key
func (t *Table) Tier(key domain.TierKey) (domain.TierDefinition, bool) {
	for _, tier := range t.tiers {
		if tier.Key == key {
			return tier, true
		}
	}
	return domain.TierDefinition{}, false
}

// Level returns the definition for a level in MinLevel..MaxLevel
func (t *Table) Level(level int) (domain.LevelDefinition, error) {
	if err := validateLevel(level); err != nil {
		return domain.LevelDefinition{}, err
	}
	return t.levels[level-1], nil
}

// TierForLevel returns the tier owning a level
func (t *Table) TierForLevel(level int) (domain.TierDefinition, error) {
	if err := validateLevel(level); err != nil {
		return domain.TierDefinition{}, err
	}
	return t.tiers[t.tierByLevel[level]], nil
}

// levelAt returns the highest level whose threshold does not exceed xp, never below MinLevel.
// xp must already be validated as non-negative.
func (t *Table) levelAt(xp int64) int {
	// first index whose threshold exceeds xp == number of levels reached
	reached := sort.Search(len(t.levels), func(i int) bool {
		return t.levels[i].XPRequired > xp
	})
	if reached < MinLevel {
		return MinLevel
	}
	return reached
}

func validateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: level must be between %d and %d, got %d", domain.ErrInvalidArgument, MinLevel, MaxLevel, level)
	}
	return nil
}

func validateXP(xp int64) error {
	if xp < 0 {
		return fmt.Errorf("%w: xp must be non-negative, got %d", domain.ErrInvalidArgument, xp)
	}
	return nil
}
