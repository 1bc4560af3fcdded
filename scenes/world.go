package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/runnin-gunner/client"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/storage"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays the campaign from a starting level.
type WorldScene struct {
	ecs        *ecs.ECS
	shared     *Shared
	background client.Background
	startLevel int
	once       sync.Once
	err        error

	last    time.Time
	started time.Time
	frames  int
	back    bool
}

// NewWorldScene creates a scene that begins at level index start.
func NewWorldScene(shared *Shared, start int) *WorldScene {
	return &WorldScene{shared: shared, startLevel: start}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()
	if ws.err != nil {
		return ws.err
	}
	if ws.back {
		ws.shared.Changer.ChangeScene(NewSummaryScene(ws.shared, ws.finish()))
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	if err := systems.NewGame(ws.ecs.World, ws.shared.Campaign, ws.shared.Levels, ws.startLevel); err != nil {
		ws.err = err
		return
	}
	ws.startLevel = ws.levelData().LevelIndex

	ws.ecs.AddSystem(client.UpdateInput)
	ws.ecs.AddSystem(ws.step)
	ws.ecs.AddSystem(ws.shared.Audio.Update)

	ws.ecs.AddRenderer(layerDefault, ws.background.Draw)
	ws.ecs.AddRenderer(layerDefault, client.DrawEntities)
	ws.ecs.AddRenderer(layerDefault, client.DrawParticles)
	ws.ecs.AddRenderer(layerDefault, client.DrawHealthBars)
	ws.ecs.AddRenderer(layerDefault, client.DrawMessages)
	ws.ecs.AddRenderer(layerDefault, client.DrawHUD)
	ws.ecs.AddRenderer(layerDefault, client.DrawDebug)

	ws.started = time.Now()
	ws.last = ws.started
}

// step advances the simulation by the wall time since the previous frame.
func (ws *WorldScene) step(e *ecs.ECS) {
	if ws.err != nil || ws.back {
		return
	}
	if entry, ok := components.Input.First(e.World); ok && components.Input.Get(entry).JustPressed(cfg.ActionMenuBack) {
		ws.back = true
		return
	}

	now := time.Now()
	dt := now.Sub(ws.last).Seconds()
	ws.last = now

	if err := systems.Step(e.World, dt); err != nil {
		ws.err = err
		return
	}
	ws.frames++

	if d := components.Director.Get(ws.directorEntry()); d.Outcome == components.OutcomeLevelComplete {
		ws.rememberProgress()
	}
}

// rememberProgress lets the menu offer the furthest level reached.
func (ws *WorldScene) rememberProgress() {
	level := ws.levelData().LevelIndex
	if level <= ws.shared.Settings.LastLevel {
		return
	}
	settings := ws.shared.Settings
	settings.LastLevel = level
	ws.shared.SaveSettings(settings)
}

// finish summarizes the session and records it when run recording is enabled.
func (ws *WorldScene) finish() storage.Run {
	d := components.Director.Get(ws.directorEntry())
	run := storage.Run{
		Source:          storage.SourcePlay,
		Pilot:           "human",
		StartLevel:      ws.startLevel,
		EndLevel:        ws.levelData().LevelIndex,
		LevelsCompleted: d.LevelsCompleted,
		Deaths:          d.Deaths,
		Frames:          ws.frames,
		Duration:        time.Since(ws.started),
	}
	if ws.shared.Runs == nil {
		return run
	}
	id, err := ws.shared.Runs.SaveRun(run)
	if err != nil {
		log.Warn("could not record run", "err", err)
	}
	run.ID = id
	return run
}

func (ws *WorldScene) directorEntry() *donburi.Entry {
	entry, _ := components.Director.First(ws.ecs.World)
	return entry
}

func (ws *WorldScene) levelData() *components.LevelData {
	entry, _ := components.Level.First(ws.ecs.World)
	return components.Level.Get(entry)
}
