package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCreeper turns toward a visible player, charges once it faces them and
// detonates when close enough.
func UpdateCreeper(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	tuning := hostileTuning(e)
	c := clock(w)

	if playerEntry, ok := PlayerEntry(w); ok {
		p := components.Entity.Get(playerEntry)
		if Visible(w, entity.Pos, p.Pos, p.Radius) {
			theta := gamemath.VectorAngle(gamemath.Sub(p.Pos, entity.Pos))
			rate, _ := gamemath.TurnRate(entity.Roll, theta, tuning.TrackingSpeed, tuning.AngleTolerance)
			entity.RotSpeed = rate
			if rate == 0 {
				entity.Speed = tuning.TopSpeed
			}

			if math.Abs(signedDistance(entity, p)) <= tuning.TriggerDistance {
				detonate(w, e, playerEntry)
				return
			}
		}
	} else {
		entity.RotSpeed = 0
	}

	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(entity.View(), entity.Speed*c.Delta))
	entity.Roll = gamemath.NormalizeAngle(entity.Roll + 0.2*entity.RotSpeed*2*math.Pi*c.Dt)
}

// signedDistance is the distance to the player, negative when the player is
// behind the creeper's heading. Callers compare its magnitude.
func signedDistance(creeper, player *components.EntityData) float64 {
	d := gamemath.Sub(player.Pos, creeper.Pos)
	dist := gamemath.Length(d)
	if gamemath.Dot(d, creeper.View()) < 0 {
		return -dist
	}
	return dist
}

// detonate blows the creeper up next to the player.
func detonate(w donburi.World, e, playerEntry *donburi.Entry) {
	entity := components.Entity.Get(e)
	components.Creeper.Get(e).Detonated = true
	components.Health.Get(e).Zero()

	PlaySound(w, cfg.SoundBoom)
	hitByCreeper(w, playerEntry)

	entity.FXDone = true
	CreateEffect(w, components.EffectDesc{Particle: cfg.Effects.Explosion, Pos: entity.Pos})
	TriggerScreenShake(w, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	Kill(w, e)
}
