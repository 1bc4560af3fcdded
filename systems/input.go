package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/yohamta/donburi"
)

// ApplyInput turns this frame's input into player intents, grappler aim and
// director commands.
func ApplyInput(w donburi.World) {
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if d := director(w); d != nil {
		if input.JustPressed(cfg.ActionRestart) {
			d.RestartRequested = true
		}
		if input.JustPressed(cfg.ActionSkipLevel) {
			d.SkipRequested = true
		}
	}

	playerEntry, ok := PlayerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	strafe := gamemath.StickStrafe(input.MoveX, input.MoveY, cfg.Input.AnalogDeadzone)
	if input.Pressed(cfg.ActionMoveRight) || strafe > 0 {
		player.StrafeRight = true
		player.FacingLeft = false
	}
	if input.Pressed(cfg.ActionMoveLeft) || strafe < 0 {
		player.StrafeLeft = true
		player.FacingLeft = true
	}
	if input.Pressed(cfg.ActionJump) {
		player.Jump = true
	}

	grapplerEntry, ok := tags.Grappler.First(w)
	if !ok || !alive(grapplerEntry) {
		return
	}
	aim, aiming := gamemath.KeyAim(
		input.Pressed(cfg.ActionAimLeft),
		input.Pressed(cfg.ActionAimRight),
		input.Pressed(cfg.ActionAimUp),
		input.Pressed(cfg.ActionAimDown),
	)
	if stickAim, ok := gamemath.StickAim(input.AimX, input.AimY, cfg.Input.AnalogDeadzone); ok {
		aim, aiming = stickAim, true
	}
	if aiming {
		AimGrappler(grapplerEntry, aim)
	}
}

// AimGrappler points the grappler and requests a shot; the fire gate decides
// whether one leaves this frame.
func AimGrappler(e *donburi.Entry, angle float64) {
	if !alive(e) {
		return
	}
	angle = gamemath.NormalizeAngle(angle)
	components.Entity.Get(e).Roll = angle
	g := components.Grappler.Get(e)
	g.Aim = angle
	g.ShotRequested = true
}
