package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer moves the player with last frame's velocity, then updates the
// velocity from this frame's intents. Contacts found by the collision pass
// correct both before the next frame.
func UpdatePlayer(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	player := components.Player.Get(e)
	delta := clock(w).Delta
	// Horizontal tuning is per reference frame; scale it to this frame's length.
	steps := clock(w).Steps

	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(entity.Vel, delta))

	switch {
	case player.StrafeRight:
		entity.Vel.X = gamemath.Accelerate(entity.Vel.X, 1, cfg.Player.Acceleration*steps, cfg.Player.TurnAround*steps, cfg.Player.TopSpeed)
	case player.StrafeLeft:
		entity.Vel.X = gamemath.Accelerate(entity.Vel.X, -1, cfg.Player.Acceleration*steps, cfg.Player.TurnAround*steps, cfg.Player.TopSpeed)
	}

	if player.Grounded && player.Jump {
		entity.Vel.Y = cfg.Player.JumpSpeed
	}
	entity.Vel.Y += cfg.Player.Gravity * delta

	if !player.StrafeRight && !player.StrafeLeft {
		entity.Vel.X = gamemath.ApplyFriction(entity.Vel.X, cfg.Player.Friction*steps)
	}

	player.StrafeLeft, player.StrafeRight, player.Jump = false, false, false
	player.Grounded = false
}

// UpdateInvincibility expires the star power and flashes the player during
// its final seconds.
func UpdateInvincibility(w donburi.World) {
	e, ok := PlayerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	if !player.Invincible {
		return
	}
	appearance := components.Appearance.Get(e)
	elapsed := clock(w).Now - player.InvincibleSince

	if elapsed > cfg.Player.InvincibleTime {
		player.Invincible = false
		appearance.Alpha = 1
		PlaySound(w, cfg.SoundPowerDown)
		return
	}
	if elapsed > cfg.Player.InvincibleTime-cfg.Player.FlashWindow {
		appearance.Alpha = flashAlpha(elapsed)
	}
}

// flashAlpha alternates between visible and hidden every FlashInterval within
// each second.
func flashAlpha(elapsed float64) float64 {
	_, frac := math.Modf(elapsed)
	if int(frac/cfg.Player.FlashInterval)%2 == 0 {
		return 1
	}
	return 0
}

// playerTileContact applies floor, ceiling and wall rules for a tile contact.
// Only the velocity component heading into the tile is removed, so a jump
// started this frame survives the floor it was started from. A touching
// contact (no penetration) only refreshes the grounded flag.
func playerTileContact(e *donburi.Entry, normal dmath.Vec2, penetrating bool) {
	entity := components.Entity.Get(e)
	player := components.Player.Get(e)
	floor := gamemath.Dot(normal, gamemath.Up) >= cfg.Player.AxisDot

	if !penetrating {
		if floor {
			player.Grounded = true
		}
		return
	}
	if math.Abs(gamemath.Dot(normal, gamemath.Right)) >= cfg.Player.AxisDot && entity.Vel.X*normal.X < 0 {
		entity.Vel.X = 0
	}
	if floor {
		entity.Vel.Y = min(entity.Vel.Y, 0)
		player.Grounded = true
	}
	if gamemath.Dot(normal, gamemath.Down) >= cfg.Player.AxisDot {
		entity.Vel.Y = max(entity.Vel.Y, 0)
		player.Grounded = false
	}
}

// playerResponse handles the player touching another entity.
func playerResponse(w donburi.World, e, other *donburi.Entry) {
	player := components.Player.Get(e)
	entity := components.Entity.Get(e)
	o := components.Entity.Get(other)

	switch o.Kind {
	case cfg.KindSpike:
		killPlayer(w, e)
	case cfg.KindDoor:
		if !components.Door.Get(other).Locked {
			player.Winner = true
		}
	case cfg.KindStar:
		PlaySound(w, cfg.SoundStar)
		player.Invincible = true
		player.InvincibleSince = clock(w).Now
		components.Appearance.Get(e).Alpha = 1
	case cfg.KindLaunchPad:
		PlaySound(w, cfg.SoundBounce)
		entity.Vel.Y = cfg.Player.LaunchPadSpeed
	case cfg.KindHealthPack:
		PlaySound(w, cfg.SoundStar)
		components.Health.Get(e).Heal(cfg.Player.HealthPackRestore)
		damageTint(e)
	case cfg.KindOneUp:
		PlaySound(w, cfg.SoundStar)
		player.HasOneUp = true
	case cfg.KindShotgun:
		PlaySound(w, cfg.SoundStar)
		player.Shotgun = true
	case cfg.KindBullet, cfg.KindBullet2:
		if !player.Invincible {
			damagePlayer(w, e, cfg.Player.BulletDamage)
		}
	case cfg.KindBat, cfg.KindCreeper, cfg.KindTurret, cfg.KindSwooper:
		contactDamage(w, e, o.Kind)
	}
}
