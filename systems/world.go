package systems

import (
	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Singleton accessors. The director entry carries the clock, lives, input and
// the per-frame queues.

func directorEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Director.First(w)
}

func director(w donburi.World) *components.DirectorData {
	entry, ok := directorEntry(w)
	if !ok {
		return nil
	}
	return components.Director.Get(entry)
}

func clock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		return &components.ClockData{}
	}
	return components.Clock.Get(entry)
}

func levelData(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func currentLevel(w donburi.World) *leveldata.Level {
	if l := levelData(w); l != nil {
		return l.CurrentLevel
	}
	return nil
}

// PlayerEntry returns the live player, re-validating the director's handle.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	d := director(w)
	if d == nil || d.Player == donburi.Null || !w.Valid(d.Player) {
		return nil, false
	}
	entry := w.Entry(d.Player)
	if !components.Entity.Get(entry).Alive {
		return nil, false
	}
	return entry, true
}

// entitySnapshot lists every entity so systems can mutate the world while
// walking it.
func entitySnapshot(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Entity.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

func alive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && components.Entity.Get(e).Alive
}
