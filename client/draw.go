package client

import (
	"image/color"
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEntities renders every live entity as vector shapes.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	components.Entity.Each(e.World, func(entry *donburi.Entry) {
		ent := components.Entity.Get(entry)
		if !ent.Alive || !v.visible(ent.Pos.X, ent.Pos.Y, ent.Radius+16) {
			return
		}
		c := kindColors[ent.Kind]
		if entry.HasComponent(components.Door) && !components.Door.Get(entry).Locked {
			c = unlockedDoor
		}
		mirror := false
		if entry.HasComponent(components.Appearance) {
			a := components.Appearance.Get(entry)
			c = tint(c, a.R, a.G, a.B, a.Alpha)
			mirror = a.Mirror
		}
		drawKind(screen, v, ent, c, mirror)
	})
}

func drawKind(screen *ebiten.Image, v view, ent *components.EntityData, c color.RGBA, mirror bool) {
	x, y := v.point(ent.Pos.X, ent.Pos.Y)
	size := cfg.Sprites[ent.Kind]
	w, h := float32(size.W), float32(size.H)

	switch ent.Kind {
	case cfg.KindPlayer, cfg.KindSwooper, cfg.KindDoor, cfg.KindLaunchPad, cfg.KindShotgun:
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, false)
	case cfg.KindBat:
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, false)
		// mirrored bats carry their eye on the lower edge
		eye := y - h/4
		if mirror {
			eye = y + h/4
		}
		vector.DrawFilledCircle(screen, x, eye, h/6, color.White, true)
		drawBarrel(screen, x, y, ent.Roll, w/2, c)
	case cfg.KindTurret:
		vector.DrawFilledRect(screen, x-w/2, y, w, h/2, c, false)
		vector.DrawFilledCircle(screen, x, y, w/4, c, true)
		drawBarrel(screen, x, y, ent.Roll, w/2, c)
	case cfg.KindGrappler:
		drawBarrel(screen, x, y, ent.Roll, w, c)
	case cfg.KindSpike:
		teeth := 4
		step := w / float32(teeth)
		for i := 0; i < teeth; i++ {
			left := x - w/2 + float32(i)*step
			vector.StrokeLine(screen, left, y+h/2, left+step/2, y-h/2, 3, c, true)
			vector.StrokeLine(screen, left+step/2, y-h/2, left+step, y+h/2, 3, c, true)
		}
	case cfg.KindBullet, cfg.KindBullet2, cfg.KindCreeper, cfg.KindStar, cfg.KindHealthPack, cfg.KindOneUp:
		vector.DrawFilledCircle(screen, x, y, float32(ent.Radius), c, true)
		if ent.Kind == cfg.KindCreeper {
			drawBarrel(screen, x, y, ent.Roll, float32(ent.Radius), color.Black)
		}
		if ent.Kind == cfg.KindHealthPack {
			r := float32(ent.Radius) / 2
			vector.DrawFilledRect(screen, x-r, y-r/4, 2*r, r/2, cfg.HealthRed, false)
			vector.DrawFilledRect(screen, x-r/4, y-r, r/2, 2*r, cfg.HealthRed, false)
		}
	}
}

// drawBarrel draws a line from the centre along an angle.
func drawBarrel(screen *ebiten.Image, x, y float32, roll float64, length float32, c color.Color) {
	dx := float32(math.Cos(roll)) * length
	dy := float32(math.Sin(roll)) * length
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 6, c, true)
}

// DrawParticles renders particles as tinted discs scaled by their tweens.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		r := particleRadius(p.Effect) * p.Scale
		if r <= 0 || p.Alpha <= 0 || !v.visible(p.Pos.X, p.Pos.Y, r) {
			return
		}
		x, y := v.point(p.Pos.X, p.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(r), tint(p.Tint, 1, 1, 1, p.Alpha), true)
	})
}

func particleRadius(effect cfg.EffectID) float64 {
	switch effect {
	case cfg.EffectSpark:
		return 6
	case cfg.EffectCreeperExplosion:
		return 12
	}
	return 8
}

const (
	healthBarHeight = 5
	healthBarGap    = 8
)

// DrawHealthBars shows a bar over anything that is hurt but not dead.
func DrawHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e.World, screen)
	if !ok {
		return
	}
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		ent := components.Entity.Get(entry)
		if !ent.Alive || hp.Fraction <= 0 || hp.Fraction >= 1 {
			return
		}
		width := float32(cfg.Sprites[ent.Kind].W)
		x, y := v.point(ent.Pos.X, ent.Pos.Y-ent.Radius-healthBarGap)
		x -= width / 2
		vector.DrawFilledRect(screen, x, y, width, healthBarHeight, barBack, false)
		vector.DrawFilledRect(screen, x, y, width*float32(hp.Fraction), healthBarHeight, cfg.HealthGreen, false)
	})
}
