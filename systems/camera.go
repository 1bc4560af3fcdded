package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera toward the player with a little look-ahead,
// keeping the view inside the level.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	c := clock(w)

	updateScreenShake(cameraEntry, camera, c.Dt)

	playerEntry, ok := PlayerEntry(w)
	if !ok {
		return // dead player, hold the view where it died
	}
	player := components.Entity.Get(playerEntry)

	// Only update look-ahead when the player is moving; freeze it when idle
	if math.Abs(player.Vel.X) > cfg.Camera.LookAheadSpeedThreshold {
		dir := 1.0
		if player.Vel.X < 0 {
			dir = -1
		}
		target := dir * cfg.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * smoothing(cfg.Camera.LookAheadSmoothing, c.Delta)
	}

	target := clampView(w, dmath.Vec2{X: player.Pos.X + camera.LookAheadX, Y: player.Pos.Y})
	k := smoothing(cfg.Camera.FollowSmoothing, c.Delta)
	camera.Position.X += (target.X - camera.Position.X) * k
	camera.Position.Y += (target.Y - camera.Position.Y) * k
}

// SnapCamera centres the camera on the player with no easing.
func SnapCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.LookAheadX = 0
	camera.Shake = dmath.Vec2{}
	if cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
	if playerEntry, ok := PlayerEntry(w); ok {
		camera.Position = clampView(w, components.Entity.Get(playerEntry).Pos)
	}
}

// clampView keeps a view centred at p inside the level. A level narrower or
// shorter than the window is centred on that axis.
func clampView(w donburi.World, p dmath.Vec2) dmath.Vec2 {
	level := currentLevel(w)
	if level == nil {
		return p
	}
	return dmath.Vec2{
		X: clampAxis(p.X, float64(cfg.C.Width), float64(level.Width)),
		Y: clampAxis(p.Y, float64(cfg.C.Height), float64(level.Height)),
	}
}

func clampAxis(v, view, world float64) float64 {
	if world <= view {
		return world / 2
	}
	return math.Max(view/2, math.Min(world-view/2, v))
}

// smoothing converts a per-pace-unit easing factor into one for delta units.
func smoothing(factor, delta float64) float64 {
	if delta <= 0 {
		return 0
	}
	return 1 - math.Pow(1-factor, delta)
}
