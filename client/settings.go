package client

import (
	"github.com/automoto/runnin-gunner/client/persistence"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ApplySettings pushes saved settings into the window and the audio player.
// audio may be nil before the first scene has created one.
func ApplySettings(s persistence.Settings, audio *Audio) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	if audio != nil {
		audio.SetVolume(s.SFXVolume)
		audio.SetMuted(s.Muted)
	}
}
