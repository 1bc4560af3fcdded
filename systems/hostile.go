package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Visible reports whether b can be seen from a through the level's tiles,
// ignoring the last radius pixels where the target's own body is.
func Visible(w donburi.World, a, b dmath.Vec2, radius float64) bool {
	level := currentLevel(w)
	if level == nil || level.Grid == nil {
		return true
	}
	return level.Grid.Visible(leveldata.Point{X: a.X, Y: a.Y}, leveldata.Point{X: b.X, Y: b.Y}, radius)
}

// hostileResponse is shared by every hostile: bullets hurt, spikes kill.
func hostileResponse(w donburi.World, e, other *donburi.Entry) {
	switch o := components.Entity.Get(other); {
	case o.Kind.IsBullet():
		damageHostile(w, e)
	case o.Kind.IsSpike():
		killHostile(w, e)
	}
}

// hostileTuning reads the live tuning so overlays apply to existing hostiles.
func hostileTuning(e *donburi.Entry) cfg.HostileConfig {
	return cfg.Hostiles[components.Entity.Get(e).Kind]
}
