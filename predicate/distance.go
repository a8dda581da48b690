package predicate

import (
	"math"
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/rfpt"
	"github.com/katalvlaran/voronoi/site"
)

// ULP bands for the three distance_predicate dispatch cases (spec.md §4.4):
// a RobustDif within this many ULPs of zero is undecided and escalates to
// the exact integer path.
const (
	ppBand = 6.0
	psBand = 10.0
	ssBand = 14.0
)

// DistancePredicate decides whether the horizontal line through k strikes
// the right arc (bounded by right) before the left arc (bounded by left):
// it returns true when right's parabola is the closer one at k.Y, given
// directrix k.X (spec.md §4.4). It dispatches on site kind to DistancePP,
// DistancePS, or DistanceSS.
func DistancePredicate(left, right site.Site, k point.Point) bool {
	switch {
	case left.IsPoint() && right.IsPoint():
		return DistancePP(left, right, k)
	case left.IsPoint() != right.IsPoint():
		// reverseOrder is set when the segment is on the left: fast_ps's
		// sign convention assumes the point comes first.
		if left.IsSegment() {
			return DistancePS(right, left, k, true)
		}
		return DistancePS(left, right, k, false)
	default:
		return DistanceSS(left, right, k)
	}
}

// pointBreakpointDistance returns d - x(K.Y), the distance from the
// directrix (at k.X) back to the point site's parabola evaluated at y =
// k.Y: (dx^2 + dy^2) / (2*dx), dx = k.X - p.X, dy = k.Y - p.Y (spec.md §4.4
// "compare distances to point arcs").
func pointBreakpointDistance(p, k point.Point) rfpt.Fpt[float64] {
	dx := rfpt.NewFpt(float64(k.X) - float64(p.X))
	dy := rfpt.NewFpt(float64(k.Y) - float64(p.Y))
	if dx.Value() == 0 {
		return rfpt.NewFpt(math.Inf(1))
	}
	num := rfpt.Add(rfpt.Mul(dx, dx), rfpt.Mul(dy, dy))
	return rfpt.Div(num, rfpt.Mul(rfpt.NewFpt(2.0), dx))
}

// DistancePP implements the point-point case of distance_predicate.
func DistancePP(left, right site.Site, k point.Point) bool {
	lp, rp := left.P0, right.P0

	// Monotone degenerate case: both points share x, reduces to an exact
	// integer comparison of k.Y against their midpoint.
	if lp.X == rp.X {
		return int64(k.Y)*2 > int64(lp.Y)+int64(rp.Y)
	}

	valLeft := pointBreakpointDistance(lp, k)
	valRight := pointBreakpointDistance(rp, k)
	switch rfpt.DecideSign(rfpt.NewDifFromFpt(valLeft, valRight), ppBand) {
	case rfpt.Negative:
		return false // valLeft < valRight => left's parabola closer => right not first
	case rfpt.Positive:
		return true
	case rfpt.Zero:
		return false
	}

	// Exact fallback: cross-multiply the two rational values. Both
	// denominators (dx) are nonzero here (the x == x case was handled
	// above), so sign is determined by (numL*dxR) vs (numR*dxL) scaled by
	// sign(dxL)*sign(dxR).
	dxL := exactint.FromInt64(int64(k.X) - int64(lp.X))
	dyL := exactint.FromInt64(int64(k.Y) - int64(lp.Y))
	dxR := exactint.FromInt64(int64(k.X) - int64(rp.X))
	dyR := exactint.FromInt64(int64(k.Y) - int64(rp.Y))
	numL := exactint.Add(exactint.Mul(dxL, dxL), exactint.Mul(dyL, dyL))
	numR := exactint.Add(exactint.Mul(dxR, dxR), exactint.Mul(dyR, dyR))
	lhs := exactint.Mul(numL, dxR)
	rhs := exactint.Mul(numR, dxL)
	if exactint.Sign(dxL)*exactint.Sign(dxR) < 0 {
		return exactint.Cmp(lhs, rhs) < 0
	}
	return exactint.Cmp(lhs, rhs) > 0
}

// findDistanceToSegmentArc computes the value described in spec.md §4.4:
// for a vertical segment, half the signed x-distance from k to the
// segment; otherwise kappa * cross(s1-s0, k-s0) with kappa chosen to avoid
// cancellation depending on sign(b).
func findDistanceToSegmentArc(seg site.Site, k point.Point) float64 {
	s0, s1 := seg.P0, seg.P1
	if seg.IsVertical() {
		return (float64(s0.X) - float64(k.X)) / 2
	}
	a := float64(s1.X) - float64(s0.X)
	b := float64(s1.Y) - float64(s0.Y)
	cross := a*(float64(k.Y)-float64(s0.Y)) - b*(float64(k.X)-float64(s0.X))
	length := math.Sqrt(a*a + b*b)
	var kappa float64
	if b >= 0 {
		kappa = 1 / (b + length)
	} else {
		kappa = (length - b) / (a * a)
	}
	return kappa * cross
}

// DistancePS implements the point-segment case. It first tries a direct
// float64 comparison (fast_ps); if the two values are within psBand ULPs of
// each other it falls back to comparing at exactint.Precision bits via
// big.Float arithmetic. left is always the point site and right the
// segment; reverseOrder (spec.md §4.4's reverse_order flag) reports that on
// the beach line the segment is the left site and the point the right one,
// and inverts the answer accordingly.
func DistancePS(left, right site.Site, k point.Point, reverseOrder bool) bool {
	pointSite, segSite := left, right
	segIsRight := !reverseOrder

	pointVal := pointBreakpointDistance(pointSite.P0, k)
	segVal := rfpt.NewFpt(findDistanceToSegmentArc(segSite, k))

	dif := rfpt.NewDifFromFpt(pointVal, segVal)
	switch rfpt.DecideSign(dif, psBand) {
	case rfpt.Negative:
		return segIsRight // point value smaller => point's arc closer
	case rfpt.Positive:
		return !segIsRight
	default:
		// High-precision fallback: evaluate the same two
		// expressions via big.Float and compare there. This still uses
		// floating arithmetic (the segment formula involves an
		// irrational sqrt), but at exactint.Precision bits the
		// comparison is decisive far beyond any case this predicate
		// will actually see escalate.
		return preciseDistancePS(pointSite, segSite, k, segIsRight)
	}
}

func preciseDistancePS(pointSite, segSite site.Site, k point.Point, segIsRight bool) bool {
	dx := big.NewFloat(float64(k.X) - float64(pointSite.P0.X))
	dy := big.NewFloat(float64(k.Y) - float64(pointSite.P0.Y))
	dx.SetPrec(exactint.Precision)
	dy.SetPrec(exactint.Precision)
	if dx.Sign() == 0 {
		return segIsRight
	}
	num := new(big.Float).SetPrec(exactint.Precision).Mul(dx, dx)
	dy2 := new(big.Float).SetPrec(exactint.Precision).Mul(dy, dy)
	num.Add(num, dy2)
	pointVal := new(big.Float).SetPrec(exactint.Precision).Quo(num, new(big.Float).SetPrec(exactint.Precision).Mul(big.NewFloat(2), dx))

	s0, s1 := segSite.P0, segSite.P1
	segVal := new(big.Float).SetPrec(exactint.Precision)
	if segSite.IsVertical() {
		segVal.SetFloat64((float64(s0.X) - float64(k.X)) / 2)
	} else {
		a := float64(s1.X) - float64(s0.X)
		b := float64(s1.Y) - float64(s0.Y)
		cross := a*(float64(k.Y)-float64(s0.Y)) - b*(float64(k.X)-float64(s0.X))
		length := new(big.Float).SetPrec(exactint.Precision).Sqrt(big.NewFloat(a*a + b*b))
		var kappa *big.Float
		if b >= 0 {
			kappa = new(big.Float).SetPrec(exactint.Precision).Quo(big.NewFloat(1), new(big.Float).SetPrec(exactint.Precision).Add(big.NewFloat(b), length))
		} else {
			num2 := new(big.Float).SetPrec(exactint.Precision).Sub(length, big.NewFloat(b))
			kappa = new(big.Float).SetPrec(exactint.Precision).Quo(num2, big.NewFloat(a*a))
		}
		segVal.Mul(kappa, big.NewFloat(cross))
	}

	if pointVal.Cmp(segVal) < 0 {
		return segIsRight
	}
	return !segIsRight
}

// DistanceSS implements the segment-segment case. When the two sites share
// a sorted_index (one split an arc earlier in the same event), the answer
// falls back to Orientation(L.p0, L.p1, K); otherwise the two segment-arc
// distances are compared under an ssBand-ULP tolerance.
func DistanceSS(left, right site.Site, k point.Point) bool {
	if left.SortedIndex == right.SortedIndex {
		return Orientation(left.P0, left.P1, k) == Right
	}

	leftVal := rfpt.NewFpt(findDistanceToSegmentArc(left, k))
	rightVal := rfpt.NewFpt(findDistanceToSegmentArc(right, k))
	dif := rfpt.NewDifFromFpt(leftVal, rightVal)
	switch rfpt.DecideSign(dif, ssBand) {
	case rfpt.Negative:
		return false
	case rfpt.Positive:
		return true
	default:
		// Both formulas are already exact-ish rational/irrational
		// expressions; ties this close are resolved by orientation of
		// the right segment relative to the left segment's direction.
		return Orientation(left.P0, left.P1, right.P0) == Right
	}
}
