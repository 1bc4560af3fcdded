package components

import "github.com/yohamta/donburi"

// HealthData is unsigned so damage clamps at zero instead of wrapping.
type HealthData struct {
	Current  uint
	Max      uint
	Fraction float64 // Current/Max, what the health bar shows
}

// Damage subtracts amount, clamping at zero, and reports whether the entity
// reached zero.
func (h *HealthData) Damage(amount uint) bool {
	if amount >= h.Current {
		h.Current = 0
	} else {
		h.Current -= amount
	}
	h.updateFraction()
	return h.Current == 0
}

// Heal adds amount, clamping at Max.
func (h *HealthData) Heal(amount uint) {
	h.Current = min(h.Current+amount, h.Max)
	h.updateFraction()
}

// Zero empties the health.
func (h *HealthData) Zero() {
	h.Current = 0
	h.Fraction = 0
}

func (h *HealthData) updateFraction() {
	if h.Max == 0 {
		h.Fraction = 0
		return
	}
	h.Fraction = float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
