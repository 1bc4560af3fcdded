package main

import (
	"github.com/automoto/runnin-gunner/assets"
	"github.com/automoto/runnin-gunner/client"
	"github.com/automoto/runnin-gunner/client/persistence"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/fonts"
	"github.com/automoto/runnin-gunner/scenes"
	"github.com/automoto/runnin-gunner/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel      int
	flagFullscreen bool
	flagSkipMenu   bool
	flagCircles    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window at the title menu, or go straight to a level.

Keyboard: A/D move, Space jump, arrows or IJKL shoot, Backspace restarts the
level, Enter skips it, Escape returns to the menu.
Gamepad: left stick moves, right stick shoots, A or a trigger jumps.

Examples:
  runnin-gunner play
  runnin-gunner play --level 4
  runnin-gunner play --fullscreen`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based) and skip the menu")
	cmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen")
	cmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start at the furthest level reached")
	cmd.Flags().BoolVar(&flagCircles, "circles", false, "Draw collision circles and the frame rate")
}

func runPlay(cmd *cobra.Command, args []string) error {
	campaign, err := assets.LoadCampaign()
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	if flagCircles {
		cfg.Debug.DrawCircles = true
	}

	shared := &scenes.Shared{
		Campaign: campaign,
		Levels:   assets.Levels(),
		Settings: persistence.Defaults(),
	}

	// Settings are optional: a platform without storage just uses defaults.
	if store, err := persistence.Open(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	} else {
		shared.SettingsStore = store
		if shared.Settings, err = store.Load(); err != nil {
			log.Warn("could not load settings", "err", err)
		}
	}
	if flagFullscreen {
		shared.Settings.Fullscreen = true
	}

	if !flagNoRecord {
		runs, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("runs will not be recorded", "err", err)
		} else {
			defer runs.Close()
			shared.Runs = runs
		}
	}

	shared.Audio = client.NewAudio(cfg.Audio.SampleRate)
	shared.Audio.Preload()

	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	client.ApplySettings(shared.Settings, shared.Audio)

	game := &Game{}
	shared.Changer = game
	switch {
	case flagLevel > 0:
		game.scene = scenes.NewWorldScene(shared, flagLevel-1)
	case flagSkipMenu || cfg.Debug.SkipMenu:
		game.scene = scenes.NewWorldScene(shared, shared.Settings.LastLevel)
	default:
		game.scene = scenes.NewMenuScene(shared)
	}

	return ebiten.RunGame(game)
}
