package systems

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const frame = 1.0 / 60

// testRoom is a closed 10x6 room: a solid border, a floor at y=320.
var testRoom = []string{
	"##########",
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"##########",
}

// tmx renders rows of '#' and '.' plus spawn objects into a TMX document.
func tmx(rows []string, objects string) string {
	var csv []string
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = "0"
			if c == '#' {
				cells[i] = "1"
			}
		}
		csv = append(csv, strings.Join(cells, ","))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="64" tileheight="64" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="64" tileheight="64" tilecount="1" columns="1">
  <image source="tiles.png" width="64" height="64"/>
 </tileset>
 <layer id="1" name="solid" width="%d" height="%d">
  <data encoding="csv">
%s
</data>
 </layer>
 <objectgroup id="2" name="Spawns">
%s
 </objectgroup>
</map>
`, len(rows[0]), len(rows), len(rows[0]), len(rows), strings.Join(csv, ",\n"), objects)
}

// Player resting on the floor at (96, 288).
const playerSpawn = `  <object id="1" type="player" x="64" y="256" width="64" height="64"/>`

// Door standing on the floor at the right wall, centre (544, 272).
const doorSpawn = `  <object id="2" type="door" x="512" y="224" width="64" height="96"/>`

// newGame starts a two-level campaign where both levels use objects.
func newGame(t *testing.T, objects string) donburi.World {
	t.Helper()
	level := tmx(testRoom, objects)
	fsys := fstest.MapFS{
		"levels/campaign.yaml": {Data: []byte("levels:\n  - file: one.tmx\n  - file: two.tmx\n")},
		"levels/one.tmx":       {Data: []byte(level)},
		"levels/two.tmx":       {Data: []byte(level)},
	}
	campaign, err := leveldata.LoadCampaign(fsys, "levels/campaign.yaml")
	require.NoError(t, err)

	w := donburi.NewWorld()
	require.NoError(t, NewGame(w, campaign, fsys, 0))
	return w
}

// newBareWorld has the singletons but no level, so everything is visible
// and there are no tiles.
func newBareWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateDirector(w)
	factory.CreateCamera(w)
	factory.CreateSpace(w, 2048, 2048, cfg.Sim.CellSize, cfg.Sim.CellSize)
	return w
}

func spawnPlayer(w donburi.World, x, y float64) *donburi.Entry {
	p := factory.CreatePlayer(w, dmath.NewVec2(x, y))
	director(w).Player = p.Entity()
	return p
}

func spawnHostile(t *testing.T, w donburi.World, kind cfg.Kind, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateHostile(w, kind, dmath.NewVec2(x, y))
	require.NoError(t, err)
	return e
}

func spawnStatic(t *testing.T, w donburi.World, kind cfg.Kind, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateStatic(w, kind, dmath.NewVec2(x, y))
	require.NoError(t, err)
	return e
}

func setNow(w donburi.World, now float64) {
	c := clock(w)
	c.Now = now
}

// setFrame sets the clock as Step would for one frame of dt.
func setFrame(w donburi.World, dt float64) {
	c := clock(w)
	c.Dt = dt
	c.Delta = dt * cfg.Sim.Pace
	c.Steps = dt * cfg.Sim.ReferenceRate
}

func pendingSounds(w donburi.World) []cfg.SoundID {
	entry, _ := components.Audio.First(w)
	return components.Audio.Get(entry).PendingSFX
}

func pendingEffects(w donburi.World) []components.EffectDesc {
	entry, _ := components.EffectQueue.First(w)
	return components.EffectQueue.Get(entry).Pending
}

func pendingSpawns(w donburi.World) []components.SpawnRequest {
	entry, _ := components.SpawnQueue.First(w)
	return components.SpawnQueue.Get(entry).Pending
}

func input(w donburi.World) *components.InputData {
	entry, _ := components.Input.First(w)
	return components.Input.Get(entry)
}

// press holds actions for the next frame.
func press(w donburi.World, actions ...cfg.ActionID) {
	in := input(w)
	in.Advance()
	for _, a := range actions {
		in.Current[a] = true
	}
}

func stepFrames(t *testing.T, w donburi.World, n int) {
	t.Helper()
	for range n {
		require.NoError(t, Step(w, frame))
	}
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	p, ok := PlayerEntry(w)
	require.True(t, ok, "no live player")
	return p
}

func grappler(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	g, ok := tags.Grappler.First(w)
	require.True(t, ok, "no grappler")
	return g
}

func countKind(w donburi.World, kind cfg.Kind) int {
	n := 0
	components.Entity.Each(w, func(e *donburi.Entry) {
		if components.Entity.Get(e).Kind == kind {
			n++
		}
	})
	return n
}

func lastOfKind(w donburi.World, kind cfg.Kind) *donburi.Entry {
	var last *donburi.Entry
	components.Entity.Each(w, func(e *donburi.Entry) {
		if components.Entity.Get(e).Kind == kind {
			last = e
		}
	})
	return last
}
