package predicate

import (
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

// SiteEventLess implements EventComparison of spec.md §4.3 for two site
// events, both integer-coordinate. It is the order the builder facade
// must pre-sort its site stream into before handing it to the sweep.
func SiteEventLess(lhs, rhs site.Site) bool {
	lp, rp := lhs.Leftmost(), rhs.Leftmost()

	// 1. Compare x-of-leftmost.
	if lp.X != rp.X {
		return lp.X < rp.X
	}

	lSeg, rSeg := lhs.IsSegment(), rhs.IsSegment()

	// 2. Neither is a segment: compare y, smaller wins.
	if !lSeg && !rSeg {
		return lp.Y < rp.Y
	}

	// 3. Exactly one is a segment, the other a point, sharing leftmost x.
	// The point wins (sorts first) unless the segment is vertical and
	// starts at that same point, which ties (resolved <=).
	if lSeg != rSeg {
		if lSeg {
			return false // lhs is the segment: never strictly before the point
		}
		if rhs.IsVertical() && point.Equal(rhs.Leftmost(), lp) {
			return false // tie
		}
		return true // lhs is the point: wins
	}

	// 4. Both are segments sharing leftmost x.
	lVert, rVert := lhs.IsVertical(), rhs.IsVertical()
	if lVert != rVert {
		return lVert // vertical sorts before non-vertical
	}
	if lp.Y != rp.Y {
		return lp.Y < rp.Y
	}
	// Equal leftmost point: order by Orientation(lhs.p1, lhs.p0, rhs.p1).
	o := Orientation(lhs.P1, lhs.P0, rhs.P1)
	return o == Left
}
