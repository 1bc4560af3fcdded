package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DirectorState is the level lifecycle phase.
type DirectorState int

const (
	DirectorPlaying DirectorState = iota
	DirectorDying                 // player dead, waiting before the restart
)

func (s DirectorState) String() string {
	switch s {
	case DirectorPlaying:
		return "playing"
	case DirectorDying:
		return "dying"
	}
	return "unknown"
}

// Outcome is what happened at the end of a frame.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLevelComplete
	OutcomeLifeLost
	OutcomeGameOver
)

// DirectorData is the level lifecycle singleton.
type DirectorData struct {
	Player   donburi.Entity // donburi.Null when there is no live player
	Hostiles int            // live hostiles counted after the last purge

	State     DirectorState
	DeathTime float64
	DeathPos  math.Vec2 // where the player died, for the lose banner

	RestartRequested bool
	SkipRequested    bool

	// Outcome of the last frame and totals for the headless runner.
	Outcome         Outcome
	LevelsCompleted int
	Deaths          int
}

var Director = donburi.NewComponentType[DirectorData]()
