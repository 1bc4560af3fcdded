package factory

import (
	"fmt"

	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BuildLevel creates the collision space, the solid tiles and every entity
// placed in the map. It returns the player.
func BuildLevel(w donburi.World, level *leveldata.Level) (*donburi.Entry, error) {
	CreateSpace(w, level.Width, level.Height, cfg.Sim.CellSize, cfg.Sim.CellSize)
	space := SpaceOf(w)
	for _, r := range level.SolidRects {
		tile := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		tile.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(tile)
	}

	spawn, ok := level.PlayerSpawn()
	if !ok {
		return nil, fmt.Errorf("build %s: %w", level.Name, leveldata.ErrNoPlayerSpawn)
	}
	pos := math.NewVec2(spawn.X, spawn.Y)
	player := CreatePlayer(w, pos)
	CreateGrappler(w, pos, false)

	// Walk kinds in enum order so entity creation is deterministic.
	for kind := cfg.KindNone + 1; kind < cfg.KindCount; kind++ {
		for _, p := range level.Spawns[kind] {
			pos := math.NewVec2(p.X, p.Y)
			var err error
			switch {
			case kind.IsPlayer():
				// one player per level, extra spawn points are ignored
			case kind.IsHostile():
				_, err = CreateHostile(w, kind, pos)
			case kind.IsStatic():
				_, err = CreateStatic(w, kind, pos)
			default:
				err = fmt.Errorf("%s cannot be placed in a map", kind)
			}
			if err != nil {
				return nil, fmt.Errorf("build %s: %w", level.Name, err)
			}
		}
	}

	for _, m := range level.Messages {
		msg := archetypes.MessagePoint.Spawn(w)
		components.MessagePoint.SetValue(msg, components.MessagePointData{Text: m.Text, X: m.X, Y: m.Y})
	}
	return player, nil
}
