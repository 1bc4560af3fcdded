package components

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnRequest describes an entity to create at the end of the frame.
type SpawnRequest struct {
	Kind  cfg.Kind
	Pos   math.Vec2
	Roll  float64
	Owner donburi.Entity
}

// SpawnQueueData defers entity creation so systems never add entries while
// the frame is iterating (singleton component).
type SpawnQueueData struct {
	Pending []SpawnRequest
}

var SpawnQueue = donburi.NewComponentType[SpawnQueueData]()
