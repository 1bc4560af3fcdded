package components

import "github.com/yohamta/donburi"

// BatData drives the vertical patrol and the mirrored aim.
type BatData struct {
	Heading  float64 // +1 down, -1 up
	LastFlip float64
	FlipAim  bool
}

// CreeperData marks a creeper that already detonated this frame.
type CreeperData struct {
	Detonated bool
}

// TurretData tracks whether the turret lost sight of the player.
type TurretData struct {
	Scanning bool
}

// SwooperData drives the horizontal patrol.
type SwooperData struct {
	Heading  float64 // +1 right, -1 left
	LastFlip float64
}

var (
	Bat     = donburi.NewComponentType[BatData]()
	Creeper = donburi.NewComponentType[CreeperData]()
	Turret  = donburi.NewComponentType[TurretData]()
	Swooper = donburi.NewComponentType[SwooperData]()
)
