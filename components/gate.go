package components

import "github.com/yohamta/donburi"

// FireGateData rate-limits an action to once per Interval seconds.
type FireGateData struct {
	Interval float64
	Last     float64
}

// Ready reports whether Interval has passed since the last use and, if so,
// consumes the gate.
func (g *FireGateData) Ready(now float64) bool {
	if now-g.Last < g.Interval {
		return false
	}
	g.Last = now
	return true
}

var FireGate = donburi.NewComponentType[FireGateData]()
