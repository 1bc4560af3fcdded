package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/runnin-gunner/assets"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/headless"
	"github.com/automoto/runnin-gunner/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSimLevel   int
	flagFrames     int
	flagLevels     int
	flagDifficulty string
	flagRealtime   bool
	flagTickRate   int
	flagTimeout    time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a window",
	Long: `Step the campaign headless with an autopilot at the controls and print
a report. Useful for checking level changes and tuning overlays.

The --difficulty flag picks the autopilot: easy, normal or hard, or idle for
no input at all.

Examples:
  runnin-gunner sim
  runnin-gunner sim --level 3 --frames 7200 --difficulty hard
  runnin-gunner sim --levels 2 --realtime`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Start at this level (1-based)")
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Stop after this many frames (0 = no limit)")
	simCmd.Flags().IntVar(&flagLevels, "levels", 0, "Stop after this many completed levels (0 = no limit)")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Autopilot: idle, easy, normal or hard")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate instead of running flat out")
	simCmd.Flags().IntVar(&flagTickRate, "tick-rate", cfg.Sim.TickRate, "Frames per simulated second")
	simCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Wall clock limit (0 = none)")
}

// simDriver maps the difficulty flag to a driver and the pilot name stored with the run.
func simDriver(name string) (headless.Driver, string, error) {
	if name == "idle" {
		return headless.Idle{}, name, nil
	}
	d, ok := cfg.ParseBotDifficulty(name)
	if !ok {
		return nil, "", fmt.Errorf("unknown difficulty %q: want idle, easy, normal or hard", name)
	}
	return headless.NewAutoPilot(d), d.String(), nil
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 && flagLevels <= 0 && flagTimeout <= 0 && !flagRealtime {
		return errors.New("sim needs a limit: --frames, --levels or --timeout")
	}
	driver, pilot, err := simDriver(flagDifficulty)
	if err != nil {
		return err
	}
	campaign, err := assets.LoadCampaign()
	if err != nil {
		return err
	}

	runner, err := headless.New(campaign, assets.Levels(), headless.Options{
		Level:     flagSimLevel - 1,
		TickRate:  flagTickRate,
		Realtime:  flagRealtime,
		MaxFrames: flagFrames,
		MaxLevels: flagLevels,
		Driver:    driver,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	started := time.Now()
	report, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	printReport(cmd, report, pilot, time.Since(started))

	if flagNoRecord {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("run not recorded", "err", err)
		return nil
	}
	defer store.Close()
	_, err = store.SaveRun(storage.Run{
		Source:          storage.SourceSim,
		Pilot:           pilot,
		StartLevel:      report.StartLevel,
		EndLevel:        report.Level,
		LevelsCompleted: report.LevelsCompleted,
		Deaths:          report.Deaths,
		Frames:          report.Frames,
		Duration:        report.SimTime,
	})
	return err
}

func printReport(cmd *cobra.Command, r headless.Report, pilot string, wall time.Duration) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pilot:            %s\n", pilot)
	fmt.Fprintf(out, "Frames:           %d (%s simulated, %s wall)\n", r.Frames, r.SimTime.Round(time.Millisecond), wall.Round(time.Millisecond))
	fmt.Fprintf(out, "Levels:           %d -> %d\n", r.StartLevel+1, r.Level+1)
	fmt.Fprintf(out, "Levels completed: %d\n", r.LevelsCompleted)
	fmt.Fprintf(out, "Deaths:           %d\n", r.Deaths)
	fmt.Fprintf(out, "Game overs:       %d\n", r.GameOvers)
	fmt.Fprintf(out, "Lives left:       %d\n", r.Lives)
	fmt.Fprintln(out, "Sounds:")
	for id := cfg.SoundNone + 1; id < cfg.SoundCount; id++ {
		if n := r.Sounds[id]; n > 0 {
			fmt.Fprintf(out, "  %-10s %d\n", id, n)
		}
	}
}
