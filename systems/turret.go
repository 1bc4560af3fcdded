package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateTurret tracks a visible player and fires when lined up, scanning
// slowly otherwise. Turrets never move.
func UpdateTurret(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	tuning := hostileTuning(e)
	turret := components.Turret.Get(e)
	c := clock(w)

	turret.Scanning = true
	if playerEntry, ok := PlayerEntry(w); ok {
		p := components.Entity.Get(playerEntry)
		if Visible(w, entity.Pos, p.Pos, p.Radius) {
			turret.Scanning = false
			theta := gamemath.VectorAngle(gamemath.Sub(p.Pos, entity.Pos))
			rate, diff := gamemath.TurnRate(entity.Roll, theta, tuning.TrackingSpeed, tuning.AngleTolerance)
			entity.RotSpeed = rate
			if math.Abs(diff) < tuning.AngleTolerance && components.FireGate.Get(e).Ready(c.Now) {
				FireSingle(w, e, tuning.Bullet)
			}
		}
	}
	if turret.Scanning {
		entity.RotSpeed = tuning.ScanSpeed
	}

	entity.Roll = gamemath.NormalizeAngle(entity.Roll + 0.2*entity.RotSpeed*2*math.Pi*c.Dt)
}
