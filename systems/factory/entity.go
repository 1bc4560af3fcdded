package factory

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// initEntity fills the base state shared by every archetype and registers the
// entity's box in the collision space when the archetype has one.
func initEntity(w donburi.World, e *donburi.Entry, kind cfg.Kind, pos math.Vec2) *components.EntityData {
	r := cfg.Radius(kind)
	components.Entity.SetValue(e, components.EntityData{
		Kind:   kind,
		Pos:    pos,
		Radius: r,
		Static: kind.IsStatic(),
		Alive:  true,
		Target: kind.IsPlayer() || kind.IsHostile(),
	})
	components.Appearance.SetValue(e, components.AppearanceData{R: 1, G: 1, B: 1, Alpha: 1})

	if e.HasComponent(components.Object) {
		obj := resolv.NewObject(pos.X-r, pos.Y-r, 2*r, 2*r, tags.ResolvEntity)
		obj.Data = e
		circle := resolv.NewCircle(pos.X, pos.Y, r)
		obj.SetShape(circle)
		components.Object.SetValue(e, components.ObjectData{Object: obj})
		if space := SpaceOf(w); space != nil {
			space.Add(obj)
		}
		// Object.Update moved the circle to the box corner.
		circle.SetPosition(pos.X, pos.Y)
	}
	return components.Entity.Get(e)
}

func now(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Now
}
