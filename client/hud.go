package client

import (
	"fmt"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/fonts"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 24

// DrawMessages draws the map's tutorial text in world space.
func DrawMessages(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	face := fonts.Message.Get()
	components.MessagePoint.Each(e.World, func(entry *donburi.Entry) {
		m := components.MessagePoint.Get(entry)
		x, y := v.point(m.X, m.Y)
		text.Draw(screen, m.Text, face, int(x), int(y), cfg.White)
	})
}

// DrawHUD draws the lives counter, the level title and the end-of-level banners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	dirEntry, ok := components.Director.First(e.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(dirEntry)
	sw := screen.Bounds().Dx()

	hud := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("Lives: %d", lives.Lives), hud, hudMargin, hudMargin+16, cfg.White)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	l := components.Level.Get(levelEntry)
	entry := l.Entry()
	title := entry.Title
	if title == "" && l.CurrentLevel != nil {
		title = l.CurrentLevel.Name
	}
	small := fonts.Small.Get()
	text.Draw(screen, title, small, sw-hudMargin-fonts.Width(small, title), hudMargin+12, cfg.White)

	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	banner := fonts.Banner.Get()
	if entry.Final && l.CurrentLevel != nil {
		msg := "You Win!"
		x, y := v.point(float64(l.CurrentLevel.Width)/2, float64(l.CurrentLevel.Height)/2)
		text.Draw(screen, msg, banner, int(x)-fonts.Width(banner, msg)/2, int(y), cfg.WinGreen)
	}
	if bx, by, dying := systems.LoseBanner(e.World); dying {
		msg := "You Lose!"
		x, y := v.point(bx, by)
		text.Draw(screen, msg, banner, int(x)-fonts.Width(banner, msg)/2, int(y), loseRed)
	}
}

// DrawDebug shows the frame rate and collision circles when enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawCircles {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), screen.Bounds().Dx()-80, hudMargin+24)

	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	components.Entity.Each(e.World, func(entry *donburi.Entry) {
		ent := components.Entity.Get(entry)
		if !ent.Alive {
			return
		}
		x, y := v.point(ent.Pos.X, ent.Pos.Y)
		vector.StrokeCircle(screen, x, y, float32(ent.Radius), 1, cfg.Orange, true)
	})
}
