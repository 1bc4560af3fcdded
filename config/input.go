package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAimLeft
	ActionAimRight
	ActionAimUp
	ActionAimDown
	ActionRestart
	ActionSkipLevel
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input tuning. Key and button bindings
// live with the client that polls the devices.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Stick sectors are this wide in degrees; sector 0 is centred on "right"
	SectorWidth float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		SectorWidth:    45.0,
	}
}
