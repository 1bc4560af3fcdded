package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock singleton.
type ClockData struct {
	Now   float64 // seconds since the world was created
	Dt    float64 // clamped frame time
	Delta float64 // Dt scaled by the pace factor
	Steps float64 // Dt in reference frames, 1 at cfg.Sim.ReferenceRate
	Frame int
}

var Clock = donburi.NewComponentType[ClockData]()
