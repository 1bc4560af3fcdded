package client

import (
	"fmt"

	"github.com/automoto/runnin-gunner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/yohamta/donburi/ecs"
)

// Background renders a level's tile layers once and keeps the image until the
// level changes.
type Background struct {
	path  string
	image *ebiten.Image
	err   error
}

// Image returns the rendered map for the level singleton's current level.
func (b *Background) Image(l *components.LevelData) (*ebiten.Image, error) {
	path := l.Campaign.Path(l.LevelIndex)
	if b.path == path {
		return b.image, b.err
	}
	if b.image != nil {
		b.image.Deallocate()
	}
	b.path = path
	b.image, b.err = renderBackground(l, path)
	return b.image, b.err
}

func renderBackground(l *components.LevelData, path string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.FS))
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	renderer, err := render.NewRendererWithFileSystem(levelMap, l.FS)
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	for i, layer := range levelMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("background %s layer %d: %w", path, i, err)
		}
	}

	return ebiten.NewImageFromImage(renderer.Result), nil
}

var backgroundOp = &ebiten.DrawImageOptions{}

// Draw is an ecs renderer for the tile layers.
func (b *Background) Draw(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	l := components.Level.Get(entry)
	if l.CurrentLevel == nil {
		return
	}
	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	fresh := b.path != l.Campaign.Path(l.LevelIndex)
	img, err := b.Image(l)
	if err != nil {
		// The solid tiles still collide, so the level stays playable.
		if fresh {
			logger.Warn("cannot render level background", "err", err)
		}
		return
	}
	backgroundOp.GeoM.Reset()
	backgroundOp.GeoM.Translate(v.ox, v.oy)
	screen.DrawImage(img, backgroundOp)
}
