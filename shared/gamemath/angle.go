package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// NormalizeAngle wraps a to (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// AngleToVector returns the unit view vector for an orientation.
func AngleToVector(a float64) dmath.Vec2 {
	return dmath.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// VectorAngle returns the orientation of v.
func VectorAngle(v dmath.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// TurnRate picks the rotation speed that turns roll toward theta along the
// shorter arc. diff is roll-theta normalized; within tolerance the rate is 0.
func TurnRate(roll, theta, trackingSpeed, tolerance float64) (rate, diff float64) {
	diff = NormalizeAngle(roll - theta)
	switch {
	case diff > tolerance:
		return -trackingSpeed, diff
	case diff < -tolerance:
		return trackingSpeed, diff
	}
	return 0, diff
}
