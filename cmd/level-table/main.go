// Command level-table prints the level thresholds and tier catalog for front-end fixtures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/leveling"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type fixture struct {
	MaxLevel int                      `json:"max_level"`
	Tiers    []domain.TierDefinition  `json:"tiers"`
	Levels   []domain.LevelDefinition `json:"levels"`
}

func main() {
	format := flag.String("format", formatText, "output format: text or json")
	flag.Parse()

	if err := run(os.Stdout, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, format string) error {
	table := leveling.Default()

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fixture{
			MaxLevel: leveling.MaxLevel,
			Tiers:    table.Tiers(),
			Levels:   table.Levels(),
		})
	case formatText:
		return writeText(w, table)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

func writeText(w io.Writer, table *leveling.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TIER\tLEVELS\tXP/LEVEL")
	for _, tier := range table.Tiers() {
		fmt.Fprintf(tw, "%s %s\t%d-%d\t%d\n", tier.Icon, tier.Name, tier.LevelRange.Start, tier.LevelRange.End, tier.XPPerLevel)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "LEVEL\tTITLE\tXP REQUIRED")
	for _, lvl := range table.Levels() {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", lvl.Level, lvl.Title, lvl.XPRequired)
	}

	return tw.Flush()
}
