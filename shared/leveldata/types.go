// Package leveldata provides TMX level parsing for the simulation and the client.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import "github.com/automoto/runnin-gunner/config"

// Point is a world position in pixels.
type Point struct {
	X, Y float64
}

// SolidRect is a merged block of solid tiles.
type SolidRect struct {
	X, Y, W, H float64
}

// Message is a piece of world-space text placed in the map.
type Message struct {
	X, Y float64
	Text string
}

// Level holds everything the simulation needs from a map file.
type Level struct {
	Name     string
	TileSize int
	Cols     int
	Rows     int
	Width    int // pixels
	Height   int // pixels

	Grid       *Grid
	SolidRects []SolidRect
	Spawns     map[config.Kind][]Point
	Messages   []Message
}

// PlayerSpawn returns the first player spawn point.
func (l *Level) PlayerSpawn() (Point, bool) {
	spawns := l.Spawns[config.KindPlayer]
	if len(spawns) == 0 {
		return Point{}, false
	}
	return spawns[0], true
}
