package systems

import (
	"fmt"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// Step advances the world by one frame of dt seconds. Input must already be
// written into the Input singleton.
func Step(w donburi.World, dt float64) error {
	advanceClock(w, dt)

	ApplyInput(w)
	for _, e := range entitySnapshot(w) {
		if !alive(e) {
			continue
		}
		if err := stepEntity(w, e); err != nil {
			return err
		}
	}
	UpdateInvincibility(w)
	UpdateCamera(w)
	ResolveCollisions(w)
	FlushSpawns(w)
	UpdateParticles(w)
	PurgeDead(w)
	return UpdateDirector(w)
}

// stepEntity runs the per-kind behavior for one entity.
func stepEntity(w donburi.World, e *donburi.Entry) error {
	switch kind := components.Entity.Get(e).Kind; kind {
	case cfg.KindPlayer:
		UpdatePlayer(w, e)
	case cfg.KindGrappler:
		UpdateGrappler(w, e)
	case cfg.KindBullet, cfg.KindBullet2:
		UpdateBullet(w, e)
	case cfg.KindBat:
		UpdateBat(w, e)
	case cfg.KindCreeper:
		UpdateCreeper(w, e)
	case cfg.KindTurret:
		UpdateTurret(w, e)
	case cfg.KindSwooper:
		UpdateSwooper(w, e)
	case cfg.KindSpike, cfg.KindDoor, cfg.KindStar, cfg.KindHealthPack,
		cfg.KindOneUp, cfg.KindShotgun, cfg.KindLaunchPad:
		// static, nothing to do
	default:
		return fmt.Errorf("step: unhandled kind %s", kind)
	}
	return nil
}

// advanceClock clamps dt and moves the simulation clock forward.
func advanceClock(w donburi.World, dt float64) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	if dt < 0 {
		dt = 0
	}
	dt = min(dt, cfg.Sim.MaxFrameTime)

	c := components.Clock.Get(entry)
	c.Dt = dt
	c.Delta = dt * cfg.Sim.Pace
	c.Steps = dt * cfg.Sim.ReferenceRate
	c.Now += dt
	c.Frame++
}
