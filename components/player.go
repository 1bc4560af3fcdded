package components

import (
	"github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Intents set by input each frame and cleared after the move.
	StrafeLeft  bool
	StrafeRight bool
	Jump        bool

	Grounded   bool
	FacingLeft bool

	Invincible      bool
	InvincibleSince float64

	// Last time each hostile kind dealt contact damage.
	LastContact map[config.Kind]float64

	HasOneUp bool // one-shot, consumed by the director
	Shotgun  bool
	Winner   bool
}

var Player = donburi.NewComponentType[PlayerData]()
