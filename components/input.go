package components

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Analog sticks, gamepad convention (Y grows downward).
	MoveX, MoveY float64
	AimX, AimY   float64

	LastInputMethod InputMethod // Most recently used input method
}

// Pressed reports whether action is held this frame.
func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

// Advance moves the current state into Previous. Call before writing a new frame.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.MoveX, in.MoveY = 0, 0
	in.AimX, in.AimY = 0, 0
}

var Input = donburi.NewComponentType[InputData]()
