package archetypes

import (
	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Entity,
		components.Player,
		components.Object,
		components.Health,
		components.Appearance,
	)
	Grappler = newArchetype(
		tags.Grappler,
		components.Entity,
		components.Grappler,
		components.FireGate,
		components.Appearance,
	)
	Bat = newArchetype(
		tags.Hostile,
		components.Entity,
		components.Bat,
		components.Object,
		components.Health,
		components.FireGate,
		components.Appearance,
	)
	Creeper = newArchetype(
		tags.Hostile,
		components.Entity,
		components.Creeper,
		components.Object,
		components.Health,
		components.Appearance,
	)
	Turret = newArchetype(
		tags.Hostile,
		components.Entity,
		components.Turret,
		components.Object,
		components.Health,
		components.FireGate,
		components.Appearance,
	)
	Swooper = newArchetype(
		tags.Hostile,
		components.Entity,
		components.Swooper,
		components.Object,
		components.Health,
		components.Appearance,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Entity,
		components.Bullet,
		components.Object,
		components.Appearance,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Entity,
		components.Object,
		components.Appearance,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Entity,
		components.Object,
		components.Appearance,
	)
	Door = newArchetype(
		tags.Door,
		components.Entity,
		components.Door,
		components.Object,
		components.Appearance,
	)
	Particle = newArchetype(
		components.Particle,
	)
	MessagePoint = newArchetype(
		components.MessagePoint,
	)

	// Singletons
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Director = newArchetype(
		components.Director,
		components.Lives,
		components.Clock,
		components.Input,
		components.Audio,
		components.SpawnQueue,
		components.EffectQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
