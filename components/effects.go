package components

import (
	"image/color"

	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64 // seconds elapsed
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// EffectDesc asks for one particle burst at a position.
type EffectDesc struct {
	Particle cfg.ParticleConfig
	Pos      math.Vec2
}

// EffectQueueData holds effects requested this frame (singleton component).
// They become particles when the frame's spawns are flushed.
type EffectQueueData struct {
	Pending []EffectDesc
}

var EffectQueue = donburi.NewComponentType[EffectQueueData]()

// ParticleData is a cosmetic sprite. Particles never collide and are not
// counted as entities.
type ParticleData struct {
	Effect cfg.EffectID
	Pos    math.Vec2
	Tint   color.RGBA
	Age    float64
	Life   float64
	Scale  float64
	Alpha  float64

	ScaleTween *gween.Sequence
	AlphaTween *gween.Sequence
}

var Particle = donburi.NewComponentType[ParticleData]()
