// Package point defines the integer coordinate type shared by every input
// site and the strict point order the sweepline relies on for a stable
// pre-sort.
package point

// Point is an integer-coordinate location. Coordinates are kept small
// enough (see site.MaxCoordinate) that int64 products of differences never
// overflow in the fast geometric predicates.
type Point struct {
	X, Y int32
}

// New returns the Point (x, y).
func New(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Less reports whether p sorts strictly before q: p.x < q.x, or p.x == q.x
// and p.y < q.y. This is the "Point order" of spec.md §3.
func Less(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare returns -1, 0, or 1 as p sorts before, equal to, or after q under
// the point order.
func Compare(p, q Point) int {
	switch {
	case p.X != q.X:
		if p.X < q.X {
			return -1
		}
		return 1
	case p.Y != q.Y:
		if p.Y < q.Y {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Equal reports whether p and q denote the same location.
func Equal(p, q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Min returns whichever of p, q sorts first under the point order.
func Min(p, q Point) Point {
	if Less(q, p) {
		return q
	}
	return p
}

// Max returns whichever of p, q sorts last under the point order.
func Max(p, q Point) Point {
	if Less(p, q) {
		return q
	}
	return p
}
