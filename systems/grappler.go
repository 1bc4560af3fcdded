package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// UpdateGrappler keeps the gun in the player's hands and fires any shot the
// input asked for once the fire gate allows it.
func UpdateGrappler(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	grappler := components.Grappler.Get(e)

	playerEntry, ok := PlayerEntry(w)
	if !ok {
		// the gun goes with its owner
		Kill(w, e)
		return
	}
	entity.Pos = components.Entity.Get(playerEntry).Pos
	components.Appearance.Get(e).Mirror = math.Abs(entity.Roll) > math.Pi/2

	if !grappler.ShotRequested {
		return
	}
	grappler.ShotRequested = false
	if !components.FireGate.Get(e).Ready(clock(w).Now) {
		return
	}
	if grappler.Shotgun {
		FireSpread(w, e, cfg.Weapon.Bullet)
		return
	}
	FireSingle(w, e, cfg.Weapon.Bullet)
}

// SetShotgun switches the grappler between the spread gun and the single shot.
func SetShotgun(e *donburi.Entry, on bool) {
	components.Grappler.Get(e).Shotgun = on
}
