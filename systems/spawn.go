package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/yohamta/donburi"
)

// FireSingle queues one bullet of kind leaving owner along its heading and
// plays the gun sound. Callers check the owner's fire gate first.
func FireSingle(w donburi.World, owner *donburi.Entry, kind cfg.Kind) {
	o := components.Entity.Get(owner)
	queueBullet(w, owner, kind, o.Roll)
	PlaySound(w, cfg.SoundGun)
}

// FireSpread queues cfg.Weapon.SpreadCount bullets fanned SpreadAngle apart
// around owner's heading.
func FireSpread(w donburi.World, owner *donburi.Entry, kind cfg.Kind) {
	o := components.Entity.Get(owner)
	n := cfg.Weapon.SpreadCount
	if n < 1 {
		n = 1
	}
	first := o.Roll - float64(n-1)/2*cfg.Weapon.SpreadAngle
	for i := 0; i < n; i++ {
		queueBullet(w, owner, kind, first+float64(i)*cfg.Weapon.SpreadAngle)
	}
	PlaySound(w, cfg.SoundGun)
}

// queueBullet places the bullet just outside the owner's bounding circle.
func queueBullet(w donburi.World, owner *donburi.Entry, kind cfg.Kind, roll float64) {
	entry, ok := components.SpawnQueue.First(w)
	if !ok {
		return
	}
	o := components.Entity.Get(owner)
	roll = gamemath.NormalizeAngle(roll)
	offset := gamemath.Scale(gamemath.AngleToVector(roll), o.Radius+cfg.Radius(kind))

	queue := components.SpawnQueue.Get(entry)
	queue.Pending = append(queue.Pending, components.SpawnRequest{
		Kind:  kind,
		Pos:   gamemath.Add(o.Pos, offset),
		Roll:  roll,
		Owner: owner.Entity(),
	})
}

// FlushSpawns creates everything queued during the frame.
func FlushSpawns(w donburi.World) {
	entry, ok := components.SpawnQueue.First(w)
	if ok {
		queue := components.SpawnQueue.Get(entry)
		for _, req := range queue.Pending {
			if req.Kind.IsBullet() {
				factory.CreateBullet(w, req)
			}
		}
		queue.Pending = queue.Pending[:0]
	}
	flushEffects(w)
}
