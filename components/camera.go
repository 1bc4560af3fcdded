package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // centre of the view in world space
	LookAheadX float64   // Current smoothed X offset for look-ahead
	Shake      math.Vec2 // offset from screen shake, applied when drawing
}

var Camera = donburi.NewComponentType[CameraData]()
