// Package client is the ebiten side of the game: device polling, sound
// playback, drawing and saved settings. The simulation never imports it.
package client

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard-layout gamepad buttons for one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its inputs. The sticks are read separately.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonFrontBottomLeft,
		},
	},
	cfg.ActionAimLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyJ}},
	cfg.ActionAimRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyL}},
	cfg.ActionAimUp:    {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyI}},
	cfg.ActionAimDown:  {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyK}},
	cfg.ActionRestart: {
		Keys:    []ebiten.Key{ebiten.KeyBackspace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionSkipLevel: {
		Keys:    []ebiten.Key{ebiten.KeyEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}
