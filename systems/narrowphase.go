package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// entityCircle returns e's collision circle centred on its position.
// resolv's Object.Update parks a circle at the object's top-left corner, so
// the centre is set here every time.
func entityCircle(e *donburi.Entry) *resolv.Circle {
	entity := components.Entity.Get(e)
	var circle *resolv.Circle
	if e.HasComponent(components.Object) && components.Object.Get(e).Object != nil {
		circle, _ = components.Object.Get(e).Shape.(*resolv.Circle)
	}
	if circle == nil {
		return resolv.NewCircle(entity.Pos.X, entity.Pos.Y, entity.Radius)
	}
	circle.SetPosition(entity.Pos.X, entity.Pos.Y)
	if circle.Radius() != entity.Radius {
		circle.SetRadius(entity.Radius)
	}
	return circle
}

// mtvContact turns a resolv MTV into a contact. The MTV moves the tested
// circle out of the other shape.
func mtvContact(mtv []float64) (gamemath.Contact, bool) {
	if len(mtv) < 2 {
		return gamemath.Contact{}, false
	}
	depth := math.Hypot(mtv[0], mtv[1])
	if depth <= 0 || math.IsNaN(depth) {
		return gamemath.Contact{}, false
	}
	return gamemath.Contact{
		Normal: dmath.Vec2{X: mtv[0] / depth, Y: mtv[1] / depth},
		Depth:  depth,
	}, true
}

// circleContact tests circle a against circle b. The normal points from b
// toward a.
func circleContact(a, b *resolv.Circle) (gamemath.Contact, bool) {
	if cs := a.Intersection(0, 0, b); cs != nil {
		return mtvContact(cs.MTV)
	}

	// No crossing points also means one circle holds the other, or both share
	// a centre and radius.
	ax, ay := a.Position()
	bx, by := b.Position()
	pa, pb := dmath.Vec2{X: ax, Y: ay}, dmath.Vec2{X: bx, Y: by}
	d := gamemath.Length(gamemath.Sub(pa, pb))
	if d > 0 && d >= math.Abs(a.Radius()-b.Radius()) {
		return gamemath.Contact{}, false
	}
	return gamemath.CircleCircle(pa, a.Radius(), pb, b.Radius())
}

// tileContact tests circle against a solid tile. The normal points from the
// tile toward the circle.
func tileContact(circle *resolv.Circle, tile *resolv.Object) (gamemath.Contact, bool) {
	cx, cy := circle.Position()
	centre := dmath.Vec2{X: cx, Y: cy}
	rect, ok := tile.Shape.(*resolv.ConvexPolygon)
	if !ok || insideBox(centre, tile) {
		return gamemath.CircleRect(centre, circle.Radius(), tile.X, tile.Y, tile.W, tile.H)
	}

	cs := circle.Intersection(0, 0, rect)
	if cs == nil {
		// No edge crossings with the centre outside: either apart, or the
		// whole tile sits inside the circle.
		if verts := rect.Transformed(); len(verts) == 0 || !circle.PointInside(verts[0]) {
			return gamemath.Contact{}, false
		}
		return gamemath.CircleRect(centre, circle.Radius(), tile.X, tile.Y, tile.W, tile.H)
	}
	if !oneEdge(cs.Points) {
		// Across a corner resolv averages points from two edges and pushes
		// from a point inside the tile.
		return gamemath.CircleRect(centre, circle.Radius(), tile.X, tile.Y, tile.W, tile.H)
	}
	return mtvContact(cs.MTV)
}

func insideBox(p dmath.Vec2, o *resolv.Object) bool {
	return p.X > o.X && p.X < o.X+o.W && p.Y > o.Y && p.Y < o.Y+o.H
}

// oneEdge reports whether points are the two crossings of a single
// axis-aligned edge.
func oneEdge[V ~[]float64](points []V) bool {
	if len(points) != 2 || len(points[0]) < 2 || len(points[1]) < 2 {
		return false
	}
	const eps = 1e-9
	a, b := points[0], points[1]
	return math.Abs(a[0]-b[0]) < eps || math.Abs(a[1]-b[1]) < eps
}
