package components

import (
	"github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EntityData is the state every simulated object carries.
type EntityData struct {
	Kind config.Kind

	Pos      math.Vec2
	Vel      math.Vec2
	Roll     float64 // radians, normalized to (-pi, pi]
	RotSpeed float64 // radians per second
	Speed    float64 // scalar used by entities that move along their heading
	Radius   float64

	Static bool
	Alive  bool
	Target bool // hostiles and the player can be aimed at
	FXDone bool // death effects already emitted
}

// View is the unit heading vector for Roll.
func (e *EntityData) View() math.Vec2 {
	return gamemath.AngleToVector(e.Roll)
}

var Entity = donburi.NewComponentType[EntityData]()
