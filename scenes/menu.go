package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/runnin-gunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs    *ecs.ECS
	shared *Shared
	menuUI *ui.MenuUI
	once   sync.Once
	err    error

	play  bool
	level int
	quit  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(shared *Shared) *MenuScene {
	return &MenuScene{shared: shared}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		return ms.err
	}
	ms.ecs.Update()
	ms.menuUI.Update()

	switch {
	case ms.quit:
		return ebiten.Termination
	case ms.play:
		ms.shared.Changer.ChangeScene(NewWorldScene(ms.shared, ms.level))
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(ms.shared.Audio.Update)

	ms.menuUI, ms.err = ui.NewMenuUI(
		ms.shared.Campaign,
		ms.shared.Settings,
		func(level int) { ms.play, ms.level = true, level },
		func() { ms.quit = true },
		ms.shared.SaveSettings,
	)
	if ms.err != nil {
		return
	}
	ms.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.menuUI.UI.Draw(screen)
	})
}
