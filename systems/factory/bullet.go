package factory

import (
	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateBullet spawns a projectile travelling along req.Roll.
func CreateBullet(w donburi.World, req components.SpawnRequest) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(w)
	entity := initEntity(w, bullet, req.Kind, req.Pos)
	entity.Roll = gamemath.NormalizeAngle(req.Roll)
	entity.Vel = gamemath.Scale(gamemath.AngleToVector(entity.Roll), cfg.Bullet.Speed)
	entity.Speed = cfg.Bullet.Speed

	components.Bullet.SetValue(bullet, components.BulletData{
		Owner:    req.Owner,
		Born:     now(w),
		Lifespan: cfg.Bullet.Lifespan,
	})
	return bullet
}
