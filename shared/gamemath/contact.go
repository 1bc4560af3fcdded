package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Contact describes how far and in which direction a circle must move to stop
// overlapping an obstacle.
type Contact struct {
	Normal dmath.Vec2
	Depth  float64
}

// CircleCircle tests circle a against circle b. The normal points from b
// toward a. Coincident centres separate along Up.
func CircleCircle(a dmath.Vec2, ra float64, b dmath.Vec2, rb float64) (Contact, bool) {
	d := Sub(a, b)
	dist := Length(d)
	if dist >= ra+rb {
		return Contact{}, false
	}
	n, ok := Normalize(d)
	if !ok {
		n = Up
	}
	return Contact{Normal: n, Depth: ra + rb - dist}, true
}

// CircleRect tests a circle against an axis-aligned rectangle. The normal
// points from the rectangle toward the circle.
func CircleRect(c dmath.Vec2, r, x, y, w, h float64) (Contact, bool) {
	closest := dmath.Vec2{
		X: math.Max(x, math.Min(c.X, x+w)),
		Y: math.Max(y, math.Min(c.Y, y+h)),
	}
	d := Sub(c, closest)
	dist := Length(d)
	if dist > 0 {
		if dist >= r {
			return Contact{}, false
		}
		n, _ := Normalize(d)
		return Contact{Normal: n, Depth: r - dist}, true
	}

	// Centre inside the rectangle: push out through the nearest side.
	left := c.X - x
	right := x + w - c.X
	top := c.Y - y
	bottom := y + h - c.Y
	best := Contact{Normal: dmath.Vec2{X: -1}, Depth: r + left}
	if right < best.Depth-r {
		best = Contact{Normal: dmath.Vec2{X: 1}, Depth: r + right}
	}
	if top < best.Depth-r {
		best = Contact{Normal: Up, Depth: r + top}
	}
	if bottom < best.Depth-r {
		best = Contact{Normal: Down, Depth: r + bottom}
	}
	return best, true
}
