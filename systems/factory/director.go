package factory

import (
	"io/fs"

	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateDirector creates the singleton holding the clock, lives, input and
// the per-frame queues.
func CreateDirector(w donburi.World) *donburi.Entry {
	director := archetypes.Director.Spawn(w)
	components.Director.SetValue(director, components.DirectorData{Player: donburi.Null})
	components.Lives.SetValue(director, components.LivesData{
		Lives:    cfg.Director.StartingLives,
		MaxLives: cfg.Director.StartingLives,
	})
	return director
}

func CreateCamera(w donburi.World) *donburi.Entry {
	return archetypes.Camera.Spawn(w)
}

// CreateLevel creates the level singleton for a campaign. The level itself is
// loaded when the director begins it.
func CreateLevel(w donburi.World, campaign *leveldata.Campaign, fsys fs.FS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Campaign:   campaign,
		FS:         fsys,
		LevelIndex: campaign.Wrap(levelIndex),
	})
	return level
}
