package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func TestApplyFrictionStopsExactly(t *testing.T) {
	assert.Equal(t, 0.0, ApplyFriction(0.5, 0.8))
	assert.Equal(t, 0.0, ApplyFriction(-0.5, 0.8))
	assert.InDelta(t, 1.2, ApplyFriction(2.0, 0.8), eps)
	assert.InDelta(t, -1.2, ApplyFriction(-2.0, 0.8), eps)
}

func TestAccelerateTurnaroundAndClamp(t *testing.T) {
	// Standing still counts as moving against the input.
	assert.InDelta(t, 0.8, Accelerate(0, 1, 0.3, 0.8, 15), eps)
	assert.InDelta(t, -4.2, Accelerate(-5, 1, 0.3, 0.8, 15), eps)
	assert.InDelta(t, 5.3, Accelerate(5, 1, 0.3, 0.8, 15), eps)
	assert.Equal(t, 15.0, Accelerate(14.9, 1, 0.3, 0.8, 15))
	assert.Equal(t, -15.0, Accelerate(-20, -1, 0.3, 0.8, 15))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, NormalizeAngle(math.Pi), eps)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), eps)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), eps)
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), eps)
}

func TestNormalizeZeroVector(t *testing.T) {
	n, ok := Normalize(dmath.Vec2{})
	assert.False(t, ok)
	assert.Equal(t, dmath.Vec2{}, n)

	n, ok = Normalize(dmath.Vec2{X: 3, Y: 4})
	assert.True(t, ok)
	assert.InDelta(t, 0.6, n.X, eps)
	assert.InDelta(t, 0.8, n.Y, eps)
}

func TestTurnRateShortestArc(t *testing.T) {
	rate, _ := TurnRate(0, 0.5, 6, 0.05)
	assert.Equal(t, 6.0, rate)

	rate, _ = TurnRate(0, -0.5, 6, 0.05)
	assert.Equal(t, -6.0, rate)

	// Across the ±π seam the short way is counterclockwise.
	rate, diff := TurnRate(3.0, -3.0, 6, 0.05)
	assert.Equal(t, 6.0, rate)
	assert.Less(t, diff, 0.0)

	rate, _ = TurnRate(1.0, 1.02, 6, 0.05)
	assert.Equal(t, 0.0, rate)
}

func TestStickSectors(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		sector int
	}{
		{"right", 1, 0, 0},
		{"up right", 0.7, -0.7, 1},
		{"up", 0, -1, 2},
		{"up left", -0.7, -0.7, 3},
		{"left", -1, 0, 4},
		{"down left", -0.7, 0.7, 5},
		{"down", 0, 1, 6},
		{"down right", 0.7, 0.7, 7},
		{"just below right", 1, 0.3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := StickSector(tt.x, tt.y, 0.25)
			assert.True(t, ok)
			assert.Equal(t, tt.sector, s)
		})
	}

	_, ok := StickSector(0.1, 0.1, 0.25)
	assert.False(t, ok)
}

func TestSectorAngleIsScreenSpace(t *testing.T) {
	assert.InDelta(t, 0, SectorAngle(0), eps)
	assert.InDelta(t, -math.Pi/2, SectorAngle(2), eps)
	assert.InDelta(t, math.Pi, SectorAngle(4), eps)
	assert.InDelta(t, math.Pi/2, SectorAngle(6), eps)

	v := AngleToVector(SectorAngle(2))
	assert.InDelta(t, -1, v.Y, eps)
}

func TestStickStrafe(t *testing.T) {
	assert.Equal(t, 1, StickStrafe(1, 0, 0.25))
	assert.Equal(t, -1, StickStrafe(-1, 0.1, 0.25))
	assert.Equal(t, 0, StickStrafe(0, -1, 0.25))
	assert.Equal(t, 0, StickStrafe(0, 0, 0.25))
}

func TestKeyAimHorizontalPriority(t *testing.T) {
	a, ok := KeyAim(true, true, false, false)
	assert.True(t, ok)
	assert.InDelta(t, math.Pi, a, eps)

	a, _ = KeyAim(false, true, true, false)
	assert.InDelta(t, -math.Pi/4, a, eps)

	a, _ = KeyAim(false, false, false, true)
	assert.InDelta(t, math.Pi/2, a, eps)

	_, ok = KeyAim(false, false, false, false)
	assert.False(t, ok)
}

func TestCircleCircle(t *testing.T) {
	c, ok := CircleCircle(dmath.Vec2{X: 10}, 6, dmath.Vec2{}, 6)
	assert.True(t, ok)
	assert.InDelta(t, 1, c.Normal.X, eps)
	assert.InDelta(t, 2, c.Depth, eps)

	_, ok = CircleCircle(dmath.Vec2{X: 12}, 6, dmath.Vec2{}, 6)
	assert.False(t, ok)

	c, ok = CircleCircle(dmath.Vec2{}, 6, dmath.Vec2{}, 6)
	assert.True(t, ok)
	assert.Equal(t, Up, c.Normal)
}

func TestCircleRectFloor(t *testing.T) {
	// Circle resting 2px into the top of a tile.
	c, ok := CircleRect(dmath.Vec2{X: 32, Y: -30}, 32, 0, 0, 64, 64)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, Dot(c.Normal, Up), eps)
	assert.InDelta(t, 2, c.Depth, eps)

	_, ok = CircleRect(dmath.Vec2{X: 32, Y: -40}, 32, 0, 0, 64, 64)
	assert.False(t, ok)
}

func TestCircleRectCentreInside(t *testing.T) {
	c, ok := CircleRect(dmath.Vec2{X: 60, Y: 32}, 10, 0, 0, 64, 64)
	assert.True(t, ok)
	assert.Equal(t, 1.0, c.Normal.X)
	assert.InDelta(t, 14, c.Depth, eps)
}
