package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// respond runs e's reaction to touching other. Every pair gets one call in
// each direction.
func respond(w donburi.World, e, other *donburi.Entry) {
	kind := components.Entity.Get(e).Kind
	switch {
	case kind.IsPlayer():
		playerResponse(w, e, other)
	case kind.IsHostile():
		hostileResponse(w, e, other)
	case kind.IsBullet():
		bulletResponse(w, e, other)
	case kind.IsPickup():
		if components.Entity.Get(other).Kind.IsPlayer() {
			Kill(w, e)
		}
	}
}

// passThrough reports whether a and b ignore each other entirely: no push
// and no response.
func passThrough(w donburi.World, a, b *donburi.Entry) bool {
	ea, eb := components.Entity.Get(a), components.Entity.Get(b)
	ka, kb := ea.Kind, eb.Kind

	if ka.IsGrappler() || kb.IsGrappler() {
		return true
	}
	if ea.Static && eb.Static {
		return true
	}
	if ka.IsBullet() && kb.IsBullet() {
		return true
	}
	if ka.IsBullet() {
		return bulletIgnores(w, a, b)
	}
	if kb.IsBullet() {
		return bulletIgnores(w, b, a)
	}
	// only the player picks things up or bounces on pads
	if (onlyForPlayer(ka) && !kb.IsPlayer()) || (onlyForPlayer(kb) && !ka.IsPlayer()) {
		return true
	}
	return false
}

func onlyForPlayer(k cfg.Kind) bool {
	return k.IsPickup() || k.IsLaunchPad()
}

// bulletIgnores reports whether bullet b flies through other.
func bulletIgnores(w donburi.World, b, other *donburi.Entry) bool {
	ko := components.Entity.Get(other).Kind
	if onlyForPlayer(ko) {
		return true
	}
	if components.Bullet.Get(b).Owner == other.Entity() {
		return true
	}
	return ko.IsPlayer() && bulletOwnerKind(w, b).IsGrappler()
}
