package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

var (
	Up    = dmath.Vec2{X: 0, Y: -1}
	Down  = dmath.Vec2{X: 0, Y: 1}
	Right = dmath.Vec2{X: 1, Y: 0}
)

func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

func Dot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

func Distance(a, b dmath.Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns the unit vector of v. The zero vector has no direction,
// so ok is false and the zero vector is returned.
func Normalize(v dmath.Vec2) (n dmath.Vec2, ok bool) {
	l := Length(v)
	if l == 0 {
		return dmath.Vec2{}, false
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}, true
}
