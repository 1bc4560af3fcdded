package main

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game hands ebiten's callbacks to the active scene.
type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
