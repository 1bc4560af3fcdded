package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Move advances a live, non-static entity by its velocity.
func Move(e *donburi.Entry, dt float64) {
	entity := components.Entity.Get(e)
	if !entity.Alive || entity.Static {
		return
	}
	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(entity.Vel, dt))
}

// ResolvePenetration backs an entity out of an overlap along normal. It moves
// half the depth when the other party is also dynamic and the full depth when
// the other party is static or a tile (other == nil).
func ResolvePenetration(e *donburi.Entry, normal math.Vec2, depth float64, other *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive || entity.Static || entity.Kind.IsGrappler() {
		return
	}
	push := depth
	if other != nil && !components.Entity.Get(other).Static {
		push = depth / 2
	}
	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(normal, push))
}

// Kill marks an entity dead. Its death effects are emitted at most once; the
// entry itself is removed by the end-of-frame purge.
func Kill(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	entity.Alive = false
	if entity.FXDone {
		return
	}
	entity.FXDone = true
	for _, p := range deathEffects(entity.Kind) {
		CreateEffect(w, components.EffectDesc{Particle: p, Pos: entity.Pos})
	}
}

func deathEffects(kind cfg.Kind) []cfg.ParticleConfig {
	switch {
	case kind.IsPlayer():
		return []cfg.ParticleConfig{cfg.Effects.Smoke, cfg.Effects.PlayerSpark}
	case kind.IsHostile():
		return []cfg.ParticleConfig{cfg.Effects.Smoke, cfg.Effects.Spark}
	}
	return nil
}

// syncObject keeps the broadphase box and the collision circle centred on the
// entity.
func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	entity := components.Entity.Get(e)
	obj.X = entity.Pos.X - entity.Radius
	obj.Y = entity.Pos.Y - entity.Radius
	obj.Update()
	entityCircle(e)
}

// damageTint reddens an entity after a non-lethal hit.
func damageTint(e *donburi.Entry) {
	if !e.HasComponent(components.Appearance) || !e.HasComponent(components.Health) {
		return
	}
	components.Appearance.Get(e).DamageTint(components.Health.Get(e).Fraction)
}
