package main

import (
	"fmt"

	"github.com/automoto/runnin-gunner/assets"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign",
	Long: `Print every level in play order with its size and what it contains.

Examples:
  runnin-gunner levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	campaign, err := assets.LoadCampaign()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s  %-18s  %-9s  %-8s  %s\n", "#", "Title", "Size", "Hostiles", "Notes")
	fmt.Fprintf(out, "  %-3s  %-18s  %-9s  %-8s  %s\n", "-", "-----", "----", "--------", "-----")
	for i := 0; i < campaign.Len(); i++ {
		entry := campaign.Entry(i)
		level, err := campaign.Load(assets.Levels(), i)
		if err != nil {
			return err
		}

		hostiles := 0
		for kind, spawns := range level.Spawns {
			if kind.IsHostile() {
				hostiles += len(spawns)
			}
		}

		notes := ""
		switch {
		case entry.Tutorial:
			notes = "tutorial"
		case entry.Final:
			notes = "victory room"
		case len(level.Spawns[cfg.KindStar]) > 0:
			notes = "star"
		}

		title := entry.Title
		if title == "" {
			title = level.Name
		}
		fmt.Fprintf(out, "  %-3d  %-18s  %-9s  %-8d  %s\n",
			i+1, title, fmt.Sprintf("%dx%d", level.Cols, level.Rows), hostiles, notes)
	}
	return nil
}
