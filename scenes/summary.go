package scenes

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/runnin-gunner/client"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/fonts"
	"github.com/automoto/runnin-gunner/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces from freetype
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bestRunsShown = 5

// SummaryScene shows the session that just ended next to the best recorded runs.
type SummaryScene struct {
	ecs    *ecs.ECS
	shared *Shared
	run    storage.Run
	best   []storage.Run
	once   sync.Once
	frames int
	done   bool
}

// NewSummaryScene creates a summary for a finished session.
func NewSummaryScene(shared *Shared, run storage.Run) *SummaryScene {
	return &SummaryScene{shared: shared, run: run}
}

func (ss *SummaryScene) Update() error {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	if ss.done {
		ss.shared.Changer.ChangeScene(NewMenuScene(ss.shared))
	}
	return nil
}

func (ss *SummaryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SummaryScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())
	ss.ecs.World.Create(components.Input)

	if ss.shared.Runs != nil {
		best, err := ss.shared.Runs.BestRuns(bestRunsShown)
		if err != nil {
			log.Warn("could not read best runs", "err", err)
		}
		ss.best = best
	}

	ss.ecs.AddSystem(client.UpdateInput)
	ss.ecs.AddSystem(ss.updateSummary)
	ss.ecs.AddSystem(ss.shared.Audio.Update)
	ss.ecs.AddRenderer(layerDefault, ss.drawSummary)
}

func (ss *SummaryScene) updateSummary(e *ecs.ECS) {
	// The key that ended the session is still down on the first frame.
	ss.frames++
	if ss.frames < 2 {
		return
	}
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	for _, action := range []cfg.ActionID{cfg.ActionSkipLevel, cfg.ActionMenuBack, cfg.ActionJump} {
		if input.JustPressed(action) {
			ss.done = true
		}
	}
}

func (ss *SummaryScene) drawSummary(_ *ecs.ECS, screen *ebiten.Image) {
	sw := screen.Bounds().Dx()
	banner := fonts.Banner.Get()
	body := fonts.Message.Get()
	small := fonts.Small.Get()

	title := "Run Over"
	text.Draw(screen, title, banner, (sw-fonts.Width(banner, title))/2, 120, cfg.White)

	lines := []string{
		fmt.Sprintf("Levels %d to %d", ss.run.StartLevel+1, ss.run.EndLevel+1),
		fmt.Sprintf("Completed: %d", ss.run.LevelsCompleted),
		fmt.Sprintf("Deaths: %d", ss.run.Deaths),
		fmt.Sprintf("Time: %s", ss.run.Duration.Round(time.Second)),
	}
	y := 200
	for _, l := range lines {
		text.Draw(screen, l, body, (sw-fonts.Width(body, l))/2, y, cfg.White)
		y += 28
	}

	if len(ss.best) > 0 {
		y += 28
		head := "Best runs"
		text.Draw(screen, head, body, (sw-fonts.Width(body, head))/2, y, cfg.White)
		y += 24
		for i, r := range ss.best {
			row := fmt.Sprintf("%d. %-5s %-7s %2d levels  %3d deaths  %s",
				i+1, r.Source, r.Pilot, r.LevelsCompleted, r.Deaths, r.Duration.Round(time.Second))
			text.Draw(screen, row, small, (sw-fonts.Width(small, row))/2, y, cfg.White)
			y += 18
		}
	}

	hint := "Press Enter to continue"
	text.Draw(screen, hint, small, (sw-fonts.Width(small, hint))/2, screen.Bounds().Dy()-40, cfg.White)
}
