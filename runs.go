package main

import (
	"fmt"
	"time"

	"github.com/automoto/runnin-gunner/storage"
	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagBest  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recorded play sessions and headless runs, newest first, or the
best ones with --best.

Examples:
  runnin-gunner runs
  runnin-gunner runs --best --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "How many runs to show")
	runsCmd.Flags().BoolVar(&flagBest, "best", false, "Most levels completed first, fewest deaths breaking ties")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	var runs []storage.Run
	if flagBest {
		runs, err = store.BestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runnin-gunner play' or 'runnin-gunner sim' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-4s  %-7s  %-7s  %-6s  %-6s  %-9s  %s\n", "ID", "Kind", "Pilot", "Levels", "Done", "Deaths", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-4s  %-7s  %-7s  %-6s  %-6s  %-9s  %s\n", "--", "----", "-----", "------", "----", "------", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-4s  %-7s  %-7s  %-6d  %-6d  %-9s  %s\n",
			r.ID, r.Source, r.Pilot,
			fmt.Sprintf("%d-%d", r.StartLevel+1, r.EndLevel+1),
			r.LevelsCompleted, r.Deaths,
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
