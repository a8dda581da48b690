package predicate

import "github.com/katalvlaran/voronoi/point"

// Orient is the sign of the 2x2 determinant Orientation computes.
type Orient int

const (
	Right      Orient = -1
	Collinear  Orient = 0
	Left       Orient = 1
)

// CrossProduct returns (qx-px)*(ry-qy) - (qy-py)*(rx-qx), the exact signed
// value Orientation takes the sign of (spec.md §4.2). Coordinates are
// bounded by site.MaxCoordinate, so int64 differences and their products
// never overflow — this is the "widened integer domain" the spec calls
// robust_cross_product; here the widening is simply int32 -> int64, which
// is already exact and needs no further arbitrary-precision fallback.
func CrossProduct(p, q, r point.Point) int64 {
	ax := int64(q.X) - int64(p.X)
	ay := int64(r.Y) - int64(q.Y)
	bx := int64(q.Y) - int64(p.Y)
	by := int64(r.X) - int64(q.X)
	return ax*ay - bx*by
}

// Orientation returns Left, Collinear, or Right for the turn p->q->r.
func Orientation(p, q, r point.Point) Orient {
	v := CrossProduct(p, q, r)
	switch {
	case v > 0:
		return Left
	case v < 0:
		return Right
	default:
		return Collinear
	}
}
