package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateSwooper patrols left and right, reversing on a timer.
func UpdateSwooper(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	swooper := components.Swooper.Get(e)
	tuning := hostileTuning(e)
	c := clock(w)

	if c.Now-swooper.LastFlip >= tuning.FlipInterval {
		reverseSwooper(swooper, c.Now)
	}
	entity.Vel = dmath.Vec2{X: swooper.Heading * tuning.PatrolSpeed}
	components.Appearance.Get(e).Mirror = swooper.Heading < 0

	entity.Pos = gamemath.Add(entity.Pos, gamemath.Scale(entity.Vel, c.Delta))
}

// swooperTileContact turns the swooper around when it flies into a wall.
func swooperTileContact(w donburi.World, e *donburi.Entry, normal dmath.Vec2) {
	swooper := components.Swooper.Get(e)
	if math.Abs(gamemath.Dot(normal, gamemath.Right)) < cfg.Player.AxisDot {
		return
	}
	// only reverse when heading into the wall
	if normal.X*swooper.Heading < 0 {
		reverseSwooper(swooper, clock(w).Now)
	}
}

func reverseSwooper(s *components.SwooperData, now float64) {
	s.Heading = -s.Heading
	s.LastFlip = now
}
