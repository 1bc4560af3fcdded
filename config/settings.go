package config

import "fmt"

// Resolution is a windowed size offered by the settings panel.
type Resolution struct {
	Width  int
	Height int
}

// Label is the text shown on the resolution button.
func (r Resolution) Label() string {
	return fmt.Sprintf("%d x %d", r.Width, r.Height)
}

// SettingsMenuConfig holds the choices the settings panel cycles through.
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
}

var SettingsMenu SettingsMenuConfig

func init() {
	// All sizes keep the 16:9 logical screen so scaling stays uniform.
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720},
			{Width: 960, Height: 540},
			{Width: 1600, Height: 900},
			{Width: 1920, Height: 1080},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
	}
}
