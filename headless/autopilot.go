package headless

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Driver writes one frame of input. The runner has already advanced the
// input state, so a driver only sets what is held this frame.
type Driver interface {
	Drive(w donburi.World, in *components.InputData)
}

// Idle never touches the controls.
type Idle struct{}

func (Idle) Drive(donburi.World, *components.InputData) {}

// AutoPilot plays a level by walking toward the door, shooting visible
// hostiles on the way and jumping over walls and gaps.
type AutoPilot struct {
	tuning cfg.BotDifficultyConfig
	frame  int
	target donburi.Entity
}

func NewAutoPilot(difficulty cfg.BotDifficulty) *AutoPilot {
	tuning, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		tuning = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return &AutoPilot{tuning: tuning, target: donburi.Null}
}

func (a *AutoPilot) Drive(w donburi.World, in *components.InputData) {
	a.frame++
	playerEntry, ok := systems.PlayerEntry(w)
	if !ok {
		a.target = donburi.Null
		return
	}
	player := components.Entity.Get(playerEntry)

	if a.tuning.ReactionDelay <= 1 || a.frame%a.tuning.ReactionDelay == 0 {
		a.target = a.pickTarget(w, player)
	}

	var hostile *components.EntityData
	if a.target != donburi.Null && w.Valid(a.target) {
		if e := components.Entity.Get(w.Entry(a.target)); e.Alive {
			hostile = e
		}
	}

	if hostile != nil {
		aim, _ := gamemath.Normalize(gamemath.Sub(hostile.Pos, player.Pos))
		in.AimX, in.AimY = aim.X, aim.Y
		in.LastInputMethod = components.InputGamepad
	}

	dir := a.heading(w, player, components.Health.Get(playerEntry).Fraction, hostile)
	switch {
	case dir > 0:
		in.Current[cfg.ActionMoveRight] = true
	case dir < 0:
		in.Current[cfg.ActionMoveLeft] = true
	}
	if dir != 0 && a.shouldJump(w, player, dir) {
		in.Current[cfg.ActionJump] = true
	}
}

// pickTarget returns the nearest visible hostile within attack range.
func (a *AutoPilot) pickTarget(w donburi.World, player *components.EntityData) donburi.Entity {
	best := donburi.Null
	bestDist := a.tuning.AttackRange
	tags.Hostile.Each(w, func(e *donburi.Entry) {
		h := components.Entity.Get(e)
		if !h.Alive {
			return
		}
		d := gamemath.Distance(h.Pos, player.Pos)
		if d <= bestDist && systems.Visible(w, player.Pos, h.Pos, h.Radius) {
			best, bestDist = e.Entity(), d
		}
	})
	return best
}

// heading picks the walking direction: away from a close hostile when hurt,
// toward a hostile within chase range while the door is locked, otherwise
// toward the door.
func (a *AutoPilot) heading(w donburi.World, player *components.EntityData, health float64, hostile *components.EntityData) float64 {
	if hostile != nil && health < a.tuning.RetreatThreshold {
		return -sign(hostile.Pos.X - player.Pos.X)
	}

	door, locked, ok := findDoor(w)
	if locked || !ok {
		if h, ok := nearestHostile(w, player.Pos, a.tuning.ChaseRange); ok {
			return sign(h.X - player.Pos.X)
		}
	}
	if ok {
		return sign(door.X - player.Pos.X)
	}
	return 0
}

// shouldJump looks JumpLookahead past its body for a wall at body height or
// a missing floor under the next step.
func (a *AutoPilot) shouldJump(w donburi.World, player *components.EntityData, dir float64) bool {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || level.Grid == nil {
		return false
	}
	ahead := player.Pos.X + dir*(player.Radius+a.tuning.JumpLookahead)
	wall := level.Grid.SolidAt(ahead, player.Pos.Y)
	gap := !level.Grid.SolidAt(ahead, player.Pos.Y+player.Radius+float64(level.TileSize)/2)
	return wall || gap
}

func findDoor(w donburi.World) (pos dmath.Vec2, locked bool, ok bool) {
	entry, found := tags.Door.First(w)
	if !found {
		return dmath.Vec2{}, false, false
	}
	return components.Entity.Get(entry).Pos, components.Door.Get(entry).Locked, true
}

func nearestHostile(w donburi.World, from dmath.Vec2, within float64) (dmath.Vec2, bool) {
	var best dmath.Vec2
	bestDist := math.Inf(1)
	tags.Hostile.Each(w, func(e *donburi.Entry) {
		h := components.Entity.Get(e)
		if !h.Alive {
			return
		}
		if d := gamemath.Distance(h.Pos, from); d <= within && d < bestDist {
			best, bestDist = h.Pos, d
		}
	})
	return best, !math.IsInf(bestDist, 1)
}

func sign(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return 0
}
