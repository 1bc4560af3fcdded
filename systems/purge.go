package systems

import (
	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/yohamta/donburi"
)

// PurgeDead removes every dead entity from the world and the collision space
// and recounts the live hostiles for the door.
func PurgeDead(w donburi.World) {
	space := factory.SpaceOf(w)
	hostiles := 0
	var dead []*donburi.Entry

	components.Entity.Each(w, func(e *donburi.Entry) {
		entity := components.Entity.Get(e)
		if !entity.Alive {
			dead = append(dead, e)
			return
		}
		if entity.Kind.IsHostile() {
			hostiles++
		}
	})

	for _, e := range dead {
		if space != nil && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e).Object; obj != nil {
				space.Remove(obj)
			}
		}
		w.Remove(e.Entity())
	}

	if d := director(w); d != nil {
		d.Hostiles = hostiles
	}
}

// ClearEntities removes every simulated entity, message and the collision
// space. The director, camera and level singletons survive.
func ClearEntities(w donburi.World) {
	var doomed []donburi.Entity
	components.Entity.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	components.MessagePoint.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	components.Space.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
	ClearParticles(w)
}

// CountHostiles returns the live hostiles in the world.
func CountHostiles(w donburi.World) int {
	n := 0
	components.Entity.Each(w, func(e *donburi.Entry) {
		if entity := components.Entity.Get(e); entity.Alive && entity.Kind.IsHostile() {
			n++
		}
	})
	return n
}
