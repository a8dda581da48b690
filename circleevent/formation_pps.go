package circleevent

import (
	"math"
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

// pointBreakpointBand is the ULP-equivalent tolerance, expressed directly
// against the float64 result rather than via rfpt, below which the fast
// pps solve is re-run at high precision: the quadratic coefficient `a`
// here plays the role of the RobustFpt denominator, and a value close to
// zero is exactly the case that amplifies rounding error.
const pointBreakpointBand = 1e-9

// FormPPS computes the circumcircle of two point sites and one segment
// site (spec.md §4.6 "pps"). segmentIndex (1, 2, or 3) names which of
// (l, m, r) is the segment, matching the convention Existence uses.
//
// The center is found by parameterizing the perpendicular bisector of the
// two points (every point on it is equidistant from both points by
// construction) and solving for the offset t at which that distance also
// equals the distance to the segment's line — a single quadratic in t.
// This is the standard point-point-line Apollonius construction; see
// DESIGN.md for why it is used in place of reproducing spec.md's literal
// theta/denom variable names.
func FormPPS(l, m, r site.Site, segmentIndex int) (ev Event, ok bool) {
	var seg, p1, p2 site.Site
	sign := 1.0
	switch segmentIndex {
	case 1:
		seg, p1, p2 = l, m, r
		sign = -1
	case 2:
		seg, p1, p2 = m, l, r
	default:
		seg, p1, p2 = r, l, m
		sign = -1
	}
	if !seg.IsSegment() {
		return Event{}, false
	}

	mx, my, h, perpX, perpY := bisectorOf(p1.P0, p2.P0)
	if h == 0 {
		return Event{}, false
	}
	nx, ny, segLen := lineNormal(seg.P0, seg.P1)
	if segLen == 0 {
		return Event{}, false
	}
	px := nx*(mx-float64(seg.P0.X)) + ny*(my-float64(seg.P0.Y))
	q := nx*perpX + ny*perpY

	a := 1 - q*q
	t, tOK := solvePPS(h, px, q, sign, a)
	if !tOK {
		return Event{}, false
	}

	var cx, cy, radius float64
	if math.Abs(a) < pointBreakpointBand {
		cx, cy, radius = pppsHighPrecision(p1.P0, p2.P0, seg.P0, seg.P1, sign)
	} else {
		cx = mx + t*perpX
		cy = my + t*perpY
		radius = math.Sqrt(h*h + t*t)
	}

	var lowerX float64
	if cx >= 0 {
		lowerX = cx + radius
	} else {
		lowerX = (cx*cx - radius*radius) / (cx - radius)
	}

	return Event{CX: cx, CY: cy, LowerX: lowerX, Active: true}, true
}

// bisectorOf returns the midpoint, half-separation h, and a unit direction
// perpendicular to the segment a-b: every point m + t*perp is equidistant
// from a and b, at distance sqrt(h^2+t^2).
func bisectorOf(a, b point.Point) (mx, my, h, perpX, perpY float64) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	mx, my = (ax+bx)/2, (ay+by)/2
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return mx, my, 0, 0, 0
	}
	h = length / 2
	perpX, perpY = -dy/length, dx/length
	return
}

// lineNormal returns a unit normal to segment a-b and the segment's length.
func lineNormal(a, b point.Point) (nx, ny, length float64) {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dy / length, -dx / length, length
}

// solvePPS solves (1-q^2)t^2 - 2*p*q*t + (h^2-p^2) = 0 for the root chosen
// by sign, falling back to the linear solve when the quadratic coefficient
// a vanishes (segment line parallel to the points' bisector).
func solvePPS(h, p, q, sign, a float64) (t float64, ok bool) {
	b := -2 * p * q
	c := h*h - p*p
	if math.Abs(a) < pointBreakpointBand {
		if b == 0 {
			return 0, false
		}
		return -c / b, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	return (-b + sign*sq) / (2 * a), true
}

// pppsHighPrecision redoes the entire pps solve at exactint.Precision bits,
// starting from the original integer coordinates of the two points (p1, p2)
// and the segment (segA, segB) rather than from bisectorOf/lineNormal's
// already-rounded float64 intermediates: spec.md §4.6 requires the exact
// path to recompute from the input coordinates, and re-deriving mx, my, h,
// perpX, perpY, nx, ny at high precision here is what actually recovers the
// accuracy a near-cancellation case in the plain-float64 path lost.
func pppsHighPrecision(p1, p2, segA, segB point.Point, sign float64) (cx, cy, radius float64) {
	prec := uint(exactint.Precision)
	bfi := func(v int32) *big.Float { return new(big.Float).SetPrec(prec).SetInt64(int64(v)) }
	add := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(x, y) }
	sub := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(x, y) }
	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(x, y) }
	quo := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Quo(x, y) }
	neg := func(x *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Neg(x) }
	sqrt := func(x *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sqrt(x) }
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	// bisectorOf(p1, p2), at high precision.
	ax, ay := bfi(p1.X), bfi(p1.Y)
	bx, by := bfi(p2.X), bfi(p2.Y)
	mx := quo(add(ax, bx), two)
	my := quo(add(ay, by), two)
	dx, dy := sub(bx, ax), sub(by, ay)
	length := sqrt(add(mul(dx, dx), mul(dy, dy)))
	h := quo(length, two)
	perpX := quo(neg(dy), length)
	perpY := quo(dx, length)

	// lineNormal(segA, segB), at high precision.
	sax, say := bfi(segA.X), bfi(segA.Y)
	sbx, sby := bfi(segB.X), bfi(segB.Y)
	sdx, sdy := sub(sbx, sax), sub(sby, say)
	segLen := sqrt(add(mul(sdx, sdx), mul(sdy, sdy)))
	nx := quo(sdy, segLen)
	ny := quo(neg(sdx), segLen)

	P := add(mul(nx, sub(mx, sax)), mul(ny, sub(my, say)))
	Q := add(mul(nx, perpX), mul(ny, perpY))

	A := sub(one, mul(Q, Q))
	B := mul(new(big.Float).SetPrec(prec).SetInt64(-2), mul(P, Q))
	C := sub(mul(h, h), mul(P, P))

	var T *big.Float
	if A.Sign() == 0 {
		T = quo(neg(C), B)
	} else {
		four := new(big.Float).SetPrec(prec).SetInt64(4)
		disc := sub(mul(B, B), mul(mul(four, A), C))
		sq := sqrt(disc)
		if sign < 0 {
			sq = neg(sq)
		}
		T = quo(add(neg(B), sq), mul(two, A))
	}

	cxF := add(mx, mul(T, perpX))
	cyF := add(my, mul(T, perpY))
	rF := sqrt(add(mul(h, h), mul(T, T)))

	cx, _ = cxF.Float64()
	cy, _ = cyF.Float64()
	radius, _ = rF.Float64()
	return
}
