package factory

import (
	"fmt"

	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateHostile spawns a bat, creeper, turret or swooper with its tuning from
// cfg.Hostiles.
func CreateHostile(w donburi.World, kind cfg.Kind, pos math.Vec2) (*donburi.Entry, error) {
	var hostile *donburi.Entry
	switch kind {
	case cfg.KindBat:
		hostile = archetypes.Bat.Spawn(w)
	case cfg.KindCreeper:
		hostile = archetypes.Creeper.Spawn(w)
	case cfg.KindTurret:
		hostile = archetypes.Turret.Spawn(w)
	case cfg.KindSwooper:
		hostile = archetypes.Swooper.Spawn(w)
	default:
		return nil, fmt.Errorf("%s is not a hostile", kind)
	}

	tuning := cfg.Hostiles[kind]
	t := now(w)
	initEntity(w, hostile, kind, pos)

	components.Health.SetValue(hostile, components.HealthData{
		Current:  tuning.MaxHealth,
		Max:      tuning.MaxHealth,
		Fraction: 1,
	})
	if hostile.HasComponent(components.FireGate) {
		components.FireGate.SetValue(hostile, components.FireGateData{
			Interval: tuning.FireInterval,
			Last:     t,
		})
	}

	switch kind {
	case cfg.KindBat:
		components.Bat.SetValue(hostile, components.BatData{Heading: 1, LastFlip: t})
	case cfg.KindSwooper:
		components.Swooper.SetValue(hostile, components.SwooperData{Heading: -1, LastFlip: t})
	}
	return hostile, nil
}
