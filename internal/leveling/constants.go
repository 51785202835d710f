package leveling

// Level bounds
const (
	// MinLevel is the level every learner starts at, even with zero XP
	MinLevel = 1

	// MaxLevel is the hard ceiling; XP beyond the last threshold does not raise the level
	MaxLevel = 100
)

// Per-level XP increments for each tier
const (
	BronzeXPPerLevel      = 1000
	SilverXPPerLevel      = 2000
	GoldXPPerLevel        = 3000
	PlatinumXPPerLevel    = 4000
	DiamondXPPerLevel     = 5000
	EliteXPPerLevel       = 6000
	LegendaryXPPerLevel   = 8000
	GrandmasterXPPerLevel = 10000
)

// Tier percentage bounds
const (
	minPercent = 0.0
	maxPercent = 100.0
)
