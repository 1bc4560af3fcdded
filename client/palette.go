package client

import (
	"image/color"

	cfg "github.com/automoto/runnin-gunner/config"
)

// Base colours per kind before the appearance tint is applied.
var kindColors = [cfg.KindCount]color.RGBA{
	cfg.KindPlayer:     {R: 90, G: 170, B: 255, A: 255},
	cfg.KindGrappler:   {R: 200, G: 200, B: 210, A: 255},
	cfg.KindBullet:     {R: 255, G: 220, B: 80, A: 255},
	cfg.KindBullet2:    {R: 255, G: 120, B: 60, A: 255},
	cfg.KindBat:        {R: 130, G: 80, B: 160, A: 255},
	cfg.KindCreeper:    {R: 70, G: 190, B: 70, A: 255},
	cfg.KindTurret:     {R: 150, G: 150, B: 150, A: 255},
	cfg.KindSwooper:    {R: 200, G: 90, B: 140, A: 255},
	cfg.KindSpike:      {R: 220, G: 220, B: 220, A: 255},
	cfg.KindDoor:       {R: 180, G: 40, B: 40, A: 255},
	cfg.KindStar:       {R: 255, G: 235, B: 0, A: 255},
	cfg.KindHealthPack: {R: 255, G: 255, B: 255, A: 255},
	cfg.KindOneUp:      {R: 80, G: 220, B: 80, A: 255},
	cfg.KindShotgun:    {R: 140, G: 100, B: 60, A: 255},
	cfg.KindLaunchPad:  {R: 60, G: 140, B: 220, A: 255},
}

var (
	unlockedDoor = color.RGBA{R: 40, G: 180, B: 40, A: 255}
	barBack      = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	loseRed      = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// tint multiplies a colour by the appearance factors.
func tint(c color.RGBA, r, g, b, a float64) color.RGBA {
	scale := func(v uint8, f float64) uint8 {
		return uint8(max(0, min(255, float64(v)*f)))
	}
	return color.RGBA{R: scale(c.R, r), G: scale(c.G, g), B: scale(c.B, b), A: scale(c.A, a)}
}
