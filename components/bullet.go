package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Owner    donburi.Entity
	Born     float64
	Lifespan float64
}

var Bullet = donburi.NewComponentType[BulletData]()
