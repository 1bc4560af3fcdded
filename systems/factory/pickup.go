package factory

import (
	"fmt"

	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateStatic spawns a pickup, a hazard or the door.
func CreateStatic(w donburi.World, kind cfg.Kind, pos math.Vec2) (*donburi.Entry, error) {
	var e *donburi.Entry
	switch {
	case kind.IsPickup():
		e = archetypes.Pickup.Spawn(w)
	case kind.IsSpike(), kind.IsLaunchPad():
		e = archetypes.Hazard.Spawn(w)
	case kind.IsDoor():
		e = archetypes.Door.Spawn(w)
		components.Door.SetValue(e, components.DoorData{Locked: true})
	default:
		return nil, fmt.Errorf("%s is not a static entity", kind)
	}
	initEntity(w, e, kind, pos)
	return e, nil
}
