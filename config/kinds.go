package config

// Kind is the fixed archetype of a simulated entity. It never changes after
// construction and replaces per-type flags for behaviour dispatch.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindGrappler
	KindBullet
	KindBullet2
	KindBat
	KindCreeper
	KindTurret
	KindSwooper
	KindSpike
	KindDoor
	KindStar
	KindHealthPack
	KindOneUp
	KindShotgun
	KindLaunchPad
	KindCount // Must be last - used for array sizing
)

var kindNames = [KindCount]string{
	KindNone:       "none",
	KindPlayer:     "player",
	KindGrappler:   "grappler",
	KindBullet:     "bullet",
	KindBullet2:    "bullet2",
	KindBat:        "bat",
	KindCreeper:    "creeper",
	KindTurret:     "turret",
	KindSwooper:    "swooper",
	KindSpike:      "spike",
	KindDoor:       "door",
	KindStar:       "star",
	KindHealthPack: "healthpack",
	KindOneUp:      "oneup",
	KindShotgun:    "shotgun",
	KindLaunchPad:  "launchpad",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a map-file spawn name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k := KindNone + 1; k < KindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindNone, false
}

func (k Kind) IsPlayer() bool     { return k == KindPlayer }
func (k Kind) IsGrappler() bool   { return k == KindGrappler }
func (k Kind) IsBullet() bool     { return k == KindBullet || k == KindBullet2 }
func (k Kind) IsSpike() bool      { return k == KindSpike }
func (k Kind) IsDoor() bool       { return k == KindDoor }
func (k Kind) IsStar() bool       { return k == KindStar }
func (k Kind) IsHealthPack() bool { return k == KindHealthPack }
func (k Kind) IsOneUp() bool      { return k == KindOneUp }
func (k Kind) IsShotgun() bool    { return k == KindShotgun }
func (k Kind) IsLaunchPad() bool  { return k == KindLaunchPad }
func (k Kind) IsCreeper() bool    { return k == KindCreeper }
func (k Kind) IsSwooper() bool    { return k == KindSwooper }

// IsHostile reports whether the kind counts toward the door lock.
func (k Kind) IsHostile() bool {
	switch k {
	case KindBat, KindCreeper, KindTurret, KindSwooper:
		return true
	}
	return false
}

// IsPickup reports whether the kind is consumed on player contact.
func (k Kind) IsPickup() bool {
	switch k {
	case KindStar, KindHealthPack, KindOneUp, KindShotgun:
		return true
	}
	return false
}

// IsStatic reports whether the kind never moves.
func (k Kind) IsStatic() bool {
	switch k {
	case KindTurret, KindSpike, KindDoor, KindStar, KindHealthPack, KindOneUp, KindShotgun, KindLaunchPad:
		return true
	}
	return false
}

// EffectID identifies a cosmetic particle sprite.
type EffectID int

const (
	EffectNone EffectID = iota
	EffectSmoke
	EffectSpark
	EffectCreeperExplosion
)

func (e EffectID) String() string {
	switch e {
	case EffectSmoke:
		return "smoke"
	case EffectSpark:
		return "spark"
	case EffectCreeperExplosion:
		return "creeper_explosion"
	}
	return "none"
}
