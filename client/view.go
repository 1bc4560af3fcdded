package client

import (
	"github.com/automoto/runnin-gunner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// view translates world coordinates to screen pixels for one frame.
type view struct {
	ox, oy float64
	w, h   float64
}

func currentView(w donburi.World, screen *ebiten.Image) (view, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	cam := components.Camera.Get(entry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		ox: sw/2 - cam.Position.X + cam.Shake.X,
		oy: sh/2 - cam.Position.Y + cam.Shake.Y,
		w:  sw,
		h:  sh,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x + v.ox), float32(y + v.oy)
}

// visible reports whether a circle at a world position touches the screen.
func (v view) visible(x, y, radius float64) bool {
	sx, sy := x+v.ox, y+v.oy
	return sx+radius >= 0 && sx-radius <= v.w && sy+radius >= 0 && sy-radius <= v.h
}
