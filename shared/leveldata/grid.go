package leveldata

import (
	"math"
	"sort"
)

// Grid is the solid/empty tile map used for line-of-sight queries.
type Grid struct {
	Cols, Rows int
	TileSize   float64
	solid      []bool
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int, tileSize float64) *Grid {
	return &Grid{Cols: cols, Rows: rows, TileSize: tileSize, solid: make([]bool, cols*rows)}
}

// Set marks a tile solid or empty. Out of range tiles are ignored.
func (g *Grid) Set(col, row int, solid bool) {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return
	}
	g.solid[row*g.Cols+col] = solid
}

// Solid reports whether the tile at col,row is solid. Outside the map is open.
func (g *Grid) Solid(col, row int) bool {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return false
	}
	return g.solid[row*g.Cols+col]
}

// SolidAt reports whether a world position lies in a solid tile.
func (g *Grid) SolidAt(x, y float64) bool {
	return g.Solid(int(math.Floor(x/g.TileSize)), int(math.Floor(y/g.TileSize)))
}

// Visible reports whether the segment from a to b clears every solid tile.
// The last radius pixels before b belong to the target's own body and are not
// tested, so a target resting on the floor is still seen.
func (g *Grid) Visible(a, b Point, radius float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	reach := dist - radius
	if reach <= 0 {
		return true
	}
	step := g.TileSize / 4
	n := int(math.Ceil(reach / step))
	for i := 0; i <= n; i++ {
		t := math.Min(float64(i)*step, reach) / dist
		if g.SolidAt(a.X+dx*t, a.Y+dy*t) {
			return false
		}
	}
	return true
}

// Rects merges solid tiles into rectangles: horizontal runs first, then runs
// with the same span on consecutive rows.
func (g *Grid) Rects() []SolidRect {
	type span struct{ c0, c1 int }
	type open struct {
		row0, row1 int
	}
	var rects []SolidRect
	active := map[span]*open{}
	flush := func(s span, o *open) {
		rects = append(rects, SolidRect{
			X: float64(s.c0) * g.TileSize,
			Y: float64(o.row0) * g.TileSize,
			W: float64(s.c1-s.c0) * g.TileSize,
			H: float64(o.row1-o.row0) * g.TileSize,
		})
	}

	for row := 0; row <= g.Rows; row++ {
		seen := map[span]bool{}
		for col := 0; row < g.Rows && col < g.Cols; {
			if !g.Solid(col, row) {
				col++
				continue
			}
			start := col
			for col < g.Cols && g.Solid(col, row) {
				col++
			}
			s := span{start, col}
			seen[s] = true
			if o, ok := active[s]; ok {
				o.row1 = row + 1
			} else {
				active[s] = &open{row0: row, row1: row + 1}
			}
		}
		for s, o := range active {
			if !seen[s] {
				flush(s, o)
				delete(active, s)
			}
		}
	}
	sortRects(rects)
	return rects
}

func sortRects(rects []SolidRect) {
	sort.Slice(rects, func(i, j int) bool {
		if rects[i].Y != rects[j].Y {
			return rects[i].Y < rects[j].Y
		}
		return rects[i].X < rects[j].X
	})
}
