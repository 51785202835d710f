package leveling

import (
	"github.com/osse101/SkillQuest_Go/internal/domain"
)

// tierCatalog lists the tiers in level order. Ranges are contiguous and cover MinLevel..MaxLevel.
var tierCatalog = []domain.TierDefinition{
	{
		Key:         domain.TierBronze,
		Name:        "Bronze Learner",
		Description: "Taking the first steps",
		Icon:        "🥉",
		Color:       "#CD7F32",
		TextColor:   "#FFFFFF",
		LevelRange:  domain.LevelRange{Start: 1, End: 9},
		XPPerLevel:  BronzeXPPerLevel,
	},
	{
		Key:         domain.TierSilver,
		Name:        "Silver Scholar",
		Description: "Building a steady habit",
		Icon:        "🥈",
		Color:       "#C0C0C0",
		TextColor:   "#1F2937",
		LevelRange:  domain.LevelRange{Start: 10, End: 19},
		XPPerLevel:  SilverXPPerLevel,
	},
	{
		Key:         domain.TierGold,
		Name:        "Gold Achiever",
		Description: "Consistently solving problems",
		Icon:        "🥇",
		Color:       "#FFD700",
		TextColor:   "#1F2937",
		LevelRange:  domain.LevelRange{Start: 20, End: 29},
		XPPerLevel:  GoldXPPerLevel,
	},
	{
		Key:         domain.TierPlatinum,
		Name:        "Platinum Practitioner",
		Description: "Applying skills across courses",
		Icon:        "💠",
		Color:       "#E5E4E2",
		TextColor:   "#1F2937",
		LevelRange:  domain.LevelRange{Start: 30, End: 39},
		XPPerLevel:  PlatinumXPPerLevel,
	},
	{
		Key:         domain.TierDiamond,
		Name:        "Diamond Expert",
		Description: "Deep command of the material",
		Icon:        "💎",
		Color:       "#B9F2FF",
		TextColor:   "#1F2937",
		LevelRange:  domain.LevelRange{Start: 40, End: 49},
		XPPerLevel:  DiamondXPPerLevel,
	},
	{
		Key:         domain.TierElite,
		Name:        "Elite Coder",
		Description: "Among the most dedicated learners",
		Icon:        "⚔️",
		Color:       "#8B5CF6",
		TextColor:   "#FFFFFF",
		LevelRange:  domain.LevelRange{Start: 50, End: 69},
		XPPerLevel:  EliteXPPerLevel,
	},
	{
		Key:         domain.TierLegendary,
		Name:        "Legendary Mentor",
		Description: "A reference for the community",
		Icon:        "🏆",
		Color:       "#F59E0B",
		TextColor:   "#FFFFFF",
		LevelRange:  domain.LevelRange{Start: 70, End: 89},
		XPPerLevel:  LegendaryXPPerLevel,
	},
	{
		Key:         domain.TierGrandmaster,
		Name:        "Grandmaster",
		Description: "The pinnacle of mastery",
		Icon:        "👑",
		Color:       "#DC2626",
		TextColor:   "#FFFFFF",
		LevelRange:  domain.LevelRange{Start: 90, End: 100},
		XPPerLevel:  GrandmasterXPPerLevel,
	},
}
