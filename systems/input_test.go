package systems

import (
	"math"
	"testing"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestApplyInputKeyboard(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	g := factory.CreateGrappler(w, components.Entity.Get(p).Pos, false)
	player := components.Player.Get(p)

	press(w, cfg.ActionMoveLeft, cfg.ActionJump, cfg.ActionAimUp)
	ApplyInput(w)

	assert.True(t, player.StrafeLeft)
	assert.False(t, player.StrafeRight)
	assert.True(t, player.FacingLeft)
	assert.True(t, player.Jump)
	assert.True(t, components.Grappler.Get(g).ShotRequested)
	assert.InDelta(t, -math.Pi/2, components.Entity.Get(g).Roll, 1e-9, "up is -y")
}

func TestApplyInputStick(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	g := factory.CreateGrappler(w, components.Entity.Get(p).Pos, false)
	player := components.Player.Get(p)

	press(w, cfg.ActionAimLeft)
	in := input(w)
	in.MoveX, in.MoveY = 0.9, 0.1
	in.AimX, in.AimY = 0.7, 0.7 // down-right
	ApplyInput(w)

	assert.True(t, player.StrafeRight)
	assert.InDelta(t, math.Pi/4, components.Entity.Get(g).Roll, 1e-9, "stick wins over keys")

	press(w)
	in.MoveX, in.MoveY = 0, -0.9 // straight up does not strafe
	player.StrafeRight = false
	components.Grappler.Get(g).ShotRequested = false
	ApplyInput(w)
	assert.False(t, player.StrafeRight)
	assert.False(t, player.StrafeLeft)
	assert.False(t, components.Grappler.Get(g).ShotRequested, "no aim, no shot")
}

func TestApplyInputWithoutPlayerStillTakesCommands(t *testing.T) {
	w := newBareWorld()
	press(w, cfg.ActionRestart)
	ApplyInput(w)
	assert.True(t, director(w).RestartRequested)
}
