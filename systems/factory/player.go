package factory

import (
	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	initEntity(w, player, cfg.KindPlayer, pos)

	components.Player.SetValue(player, components.PlayerData{
		LastContact: make(map[cfg.Kind]float64),
	})
	components.Health.SetValue(player, components.HealthData{
		Current:  cfg.Player.MaxHealth,
		Max:      cfg.Player.MaxHealth,
		Fraction: 1,
	})
	return player
}

// CreateGrappler creates the player's weapon. It has no collision box.
func CreateGrappler(w donburi.World, pos math.Vec2, shotgun bool) *donburi.Entry {
	grappler := archetypes.Grappler.Spawn(w)
	initEntity(w, grappler, cfg.KindGrappler, pos)

	components.Grappler.SetValue(grappler, components.GrapplerData{Shotgun: shotgun})
	components.FireGate.SetValue(grappler, components.FireGateData{
		Interval: cfg.Weapon.FireInterval,
		Last:     now(w),
	})
	return grappler
}
