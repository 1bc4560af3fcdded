package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// UpdateBullet flies a bullet straight and expires it after its lifespan.
func UpdateBullet(w donburi.World, e *donburi.Entry) {
	c := clock(w)
	Move(e, c.Dt)
	b := components.Bullet.Get(e)
	if c.Now-b.Born >= b.Lifespan {
		Kill(w, e)
	}
}

// bulletResponse ends a bullet on anything it is allowed to hit.
func bulletResponse(w donburi.World, e, other *donburi.Entry) {
	Kill(w, e)
}

// bulletOwnerKind is the kind of the entity that fired b, or KindNone when the
// owner is gone.
func bulletOwnerKind(w donburi.World, b *donburi.Entry) cfg.Kind {
	owner := components.Bullet.Get(b).Owner
	if owner == donburi.Null || !w.Valid(owner) {
		return cfg.KindNone
	}
	return components.Entity.Get(w.Entry(owner)).Kind
}
