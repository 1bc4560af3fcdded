package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateBat patrols up and down, keeps its sprite mirrored toward the player
// and fires when the player is visible in front of it.
func UpdateBat(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	bat := components.Bat.Get(e)
	tuning := hostileTuning(e)
	c := clock(w)

	entity.Vel.X = 0
	entity.Vel.Y = bat.Heading * tuning.PatrolSpeed

	if playerEntry, ok := PlayerEntry(w); ok {
		p := components.Entity.Get(playerEntry)
		view := entity.View()
		dot := 0.0
		if direction, ok := gamemath.Normalize(gamemath.Sub(entity.Pos, p.Pos)); ok {
			dot = gamemath.Dot(direction, view)
		}

		if dot >= 0 {
			bat.FlipAim = !bat.FlipAim
		}
		entity.Roll = 0
		if bat.FlipAim {
			entity.Roll = math.Pi
		}
		components.Appearance.Get(e).Mirror = bat.FlipAim

		// The gate is only consumed when the player is visible.
		if dot < 0 && Visible(w, entity.Pos, p.Pos, p.Radius) && components.FireGate.Get(e).Ready(c.Now) {
			FireSingle(w, e, tuning.Bullet)
		}
	}

	if c.Now-bat.LastFlip >= tuning.FlipInterval {
		bat.Heading = -bat.Heading
		entity.Vel.Y = bat.Heading * tuning.PatrolSpeed
		bat.LastFlip = c.Now
	}

	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(entity.Vel, c.Delta))
}
