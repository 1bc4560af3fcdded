package systems

import (
	"fmt"
	"io/fs"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// NewGame creates the singletons for a campaign and begins levelIndex.
func NewGame(w donburi.World, campaign *leveldata.Campaign, fsys fs.FS, levelIndex int) error {
	factory.CreateDirector(w)
	factory.CreateCamera(w)
	factory.CreateLevel(w, campaign, fsys, levelIndex)
	return BeginLevel(w)
}

// BeginLevel tears down the current level and builds the level the level
// singleton points at.
func BeginLevel(w donburi.World) error {
	l := levelData(w)
	d := director(w)
	if l == nil || d == nil {
		return fmt.Errorf("begin level: world has no director or level")
	}

	ClearEntities(w)

	level, err := l.Campaign.Load(l.FS, l.LevelIndex)
	if err != nil {
		return fmt.Errorf("begin level %d: %w", l.LevelIndex, err)
	}
	l.CurrentLevel = level

	player, err := factory.BuildLevel(w, level)
	if err != nil {
		return err
	}
	d.Player = player.Entity()
	d.Hostiles = CountHostiles(w)
	d.State = components.DirectorPlaying
	d.RestartRequested, d.SkipRequested = false, false

	StopSounds(w)
	PlaySound(w, cfg.SoundStart)
	SnapCamera(w)

	log.Debug("level begun", "index", l.LevelIndex, "name", level.Name, "hostiles", d.Hostiles)
	return nil
}

// UpdateDirector runs the level lifecycle once per frame, after the purge.
func UpdateDirector(w donburi.World) error {
	entry, ok := directorEntry(w)
	if !ok {
		return nil
	}
	d := components.Director.Get(entry)
	lives := components.Lives.Get(entry)
	d.Outcome = components.OutcomeNone

	switch {
	case d.RestartRequested:
		log.Debug("level restart requested")
		return BeginLevel(w)
	case d.SkipRequested:
		log.Debug("level skip requested")
		return advanceLevel(w)
	}

	now := clock(w).Now
	switch d.State {
	case components.DirectorPlaying:
		playerEntry, ok := PlayerEntry(w)
		if !ok {
			d.State = components.DirectorDying
			d.DeathTime = now
			d.Deaths++
			log.Debug("player died", "lives", lives.Lives)
			return nil
		}
		if d.Hostiles == 0 {
			unlockDoors(w)
		}

		player := components.Player.Get(playerEntry)
		if player.HasOneUp {
			lives.Lives++
			player.HasOneUp = false
		}
		if player.Shotgun {
			if g, ok := tags.Grappler.First(w); ok {
				SetShotgun(g, true)
			}
		}
		if player.Winner {
			d.LevelsCompleted++
			d.Outcome = components.OutcomeLevelComplete
			return advanceLevel(w)
		}

	case components.DirectorDying:
		if now-d.DeathTime <= cfg.Director.WaitTime {
			return nil
		}
		lives.Lives--
		if lives.Lives > 0 {
			d.Outcome = components.OutcomeLifeLost
			log.Debug("life lost", "lives", lives.Lives)
			return BeginLevel(w)
		}
		d.Outcome = components.OutcomeGameOver
		lives.Lives = cfg.Director.StartingLives
		levelData(w).LevelIndex = 0
		log.Debug("game over")
		return BeginLevel(w)
	}
	return nil
}

// advanceLevel moves to the next campaign level, wrapping after the last.
func advanceLevel(w donburi.World) error {
	l := levelData(w)
	l.LevelIndex = l.Campaign.Wrap(l.LevelIndex + 1)
	return BeginLevel(w)
}

func unlockDoors(w donburi.World) {
	tags.Door.Each(w, func(e *donburi.Entry) {
		components.Door.Get(e).Locked = false
	})
}

// LoseBanner reports where the lose banner goes while the director waits
// after a death.
func LoseBanner(w donburi.World) (x, y float64, ok bool) {
	d := director(w)
	if d == nil || d.State != components.DirectorDying {
		return 0, 0, false
	}
	return d.DeathPos.X, d.DeathPos.Y, true
}
