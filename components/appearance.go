package components

import "github.com/yohamta/donburi"

// AppearanceData is written by the simulation and only read by the renderer.
type AppearanceData struct {
	R, G, B float64 // tint multipliers, 1,1,1 = untinted
	Alpha   float64
	Mirror  bool // draw flipped vertically, used by sprites that aim by rolling
}

// DamageTint reddens the sprite as health drops: (1, f, f) with f = 0.5 + 0.5*fraction.
func (a *AppearanceData) DamageTint(fraction float64) {
	f := 0.5 + 0.5*fraction
	a.R, a.G, a.B = 1, f, f
}

var Appearance = donburi.NewComponentType[AppearanceData]()
