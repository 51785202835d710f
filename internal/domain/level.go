package domain

// TierKey identifies one of the eight level tiers
type TierKey string

const (
	TierBronze      TierKey = "bronze"
	TierSilver      TierKey = "silver"
	TierGold        TierKey = "gold"
	TierPlatinum    TierKey = "platinum"
	TierDiamond     TierKey = "diamond"
	TierElite       TierKey = "elite"
	TierLegendary   TierKey = "legendary"
	TierGrandmaster TierKey = "grandmaster"
)

// LevelRange is an inclusive range of levels
type LevelRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether level falls inside the range
func (r LevelRange) Contains(level int) bool {
	return level >= r.Start && level <= r.End
}

// Size returns the number of levels in the range
func (r LevelRange) Size() int {
	return r.End - r.Start + 1
}

// TierDefinition describes a tier's display identity and the levels it owns
type TierDefinition struct {
	Key         TierKey    `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	TextColor   string     `json:"text_color"`
	LevelRange  LevelRange `json:"level_range"`
	XPPerLevel  int64      `json:"xp_per_level"`
}

// LevelDefinition is one row of the threshold table
type LevelDefinition struct {
	Level      int    `json:"level"`
	Title      string `json:"title"`        // "Bronze 3"
	XPRequired int64  `json:"xp_required"` // cumulative XP to reach this level
}

// LevelInfo is the result of resolving an XP total to a level
type LevelInfo struct {
	Level      int              `json:"level"`
	Title      string           `json:"title"`
	XPRequired int64            `json:"xp_required"`
	Tier       TierKey          `json:"tier"`
	TierInfo   TierDefinition   `json:"tier_info"`
	NextLevel  *LevelDefinition `json:"next_level,omitempty"` // nil at max level
	IsMaxLevel bool             `json:"is_max_level"`
}

// XPProgress reports how far an XP total is from the next level
type XPProgress struct {
	CurrentLevel int   `json:"current_level"`
	NextLevel    int   `json:"next_level"`
	XPNeeded     int64 `json:"xp_needed"`
}
