// runnin-gunner is a 2D side-scrolling shooter.
//
// Usage:
//
//	runnin-gunner play      - Open the game window (default)
//	runnin-gunner levels    - List the campaign
//	runnin-gunner sim       - Run the simulation headless
//	runnin-gunner runs      - Show recorded runs
//
// Global flags:
//
//	--tuning <path> - YAML tuning overlay
//	--db <path>     - Run database path (default: ~/.runnin-gunner/runs.db)
//	--no-record     - Do not record runs
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTuning   string
	flagDBPath   string
	flagNoRecord bool
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runnin-gunner",
	Short: "Runnin' Gunner - run, jump and shoot your way to the door",
	Long: `Runnin' Gunner is a side-scrolling shooter. Clear every hostile in a
level to unlock its door, then reach the door to move on.

Available commands:
  play     - Open the game window
  levels   - List the campaign
  sim      - Run the simulation without a window
  runs     - Show recorded runs

Examples:
  runnin-gunner play --level 3
  runnin-gunner sim --difficulty hard --levels 2
  runnin-gunner runs --best`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "YAML tuning overlay (default: ~/.runnin-gunner/tuning.yaml or ./configs/tuning.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runnin-gunner/runs.db", "Path to the runs database")
	rootCmd.PersistentFlags().BoolVar(&flagNoRecord, "no-record", false, "Do not record finished runs")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup configures logging and applies the tuning overlay before any command.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(cfg.Debug.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if flagVerbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	applied, err := cfg.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	if applied != "" {
		log.Info("tuning applied", "path", applied)
	}
	return nil
}
