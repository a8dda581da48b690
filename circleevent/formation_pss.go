package circleevent

import (
	"math"
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/rfpt"
	"github.com/katalvlaran/voronoi/site"
)

// FormPSS computes the circumcircle of one point site and two segment
// sites (spec.md §4.6 "pss"). pointIndex (1, 2, or 3) names which of
// (l, m, r) is the point.
//
// The center lies on an angle bisector of the two segment lines (every
// point on it is equidistant, in magnitude, from both lines); parameterize
// that bisector and solve for the offset at which the distance to the
// point also matches — again a quadratic in one parameter, same shape as
// FormPPS. When the two segment lines are parallel the bisector is itself
// a parallel line offset by half their separation, handled as a
// degenerate linear case (spec.md's "parallel segments" branch).
//
// The bisector geometry (bx, by, bdx, bdy) is found in plain float64, then
// the final combination bx+t*bdx is re-done through rfpt.Fpt so the result
// carries a real ULP bound; once that bound exceeds predicate.ULPSThreshold
// the whole solve is redone at exactint.Precision bits from the original
// integer coordinates of p, s1, and s2 (spec.md §4.6, §1's two-tier rule).
func FormPSS(l, m, r site.Site, pointIndex int) (ev Event, ok bool) {
	var p, s1, s2 site.Site
	sign := 1.0
	switch pointIndex {
	case 1:
		p, s1, s2 = l, m, r
	case 2:
		p, s1, s2 = m, l, r
		sign = -1
	default:
		p, s1, s2 = r, l, m
	}
	if !p.IsPoint() || !s1.IsSegment() || !s2.IsSegment() {
		return Event{}, false
	}

	n1x, n1y, _ := lineNormal(s1.P0, s1.P1)
	n2x, n2y, _ := lineNormal(s2.P0, s2.P1)

	d1x, d1y := int64(s1.P1.X)-int64(s1.P0.X), int64(s1.P1.Y)-int64(s1.P0.Y)
	d2x, d2y := int64(s2.P1.X)-int64(s2.P0.X), int64(s2.P1.Y)-int64(s2.P0.Y)
	if d1x*d2y-d1y*d2x == 0 {
		return formPSSParallel(p, s1, s2, n1x, n1y, sign)
	}

	bx, by, bdx, bdy, _ := angleBisector(s1, s2, n1x, n1y, n2x, n2y)
	if bdx == 0 && bdy == 0 {
		return Event{}, false
	}

	px, py := float64(p.P0.X), float64(p.P0.Y)
	// Distance from bisector(t) to point p: sqrt((bx+t*bdx-px)^2+(by+t*bdy-py)^2).
	// angleBisector always returns baseDist == 0 (it rescales dir so the
	// distance-to-both-lines at t=0 is exactly 0), so the quadratic below
	// omits the baseDist cross terms the general affine form would carry.
	ex, ey := bx-px, by-py
	qa := bdx*bdx + bdy*bdy
	qb := 2 * (ex*bdx + ey*bdy)
	qc := ex*ex + ey*ey

	a := qa - 1
	b := qb
	c := qc

	var t float64
	if math.Abs(a) < pointBreakpointBand {
		if b == 0 {
			return Event{}, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return Event{}, false
		}
		t = (-b + sign*math.Sqrt(disc)) / (2 * a)
	}

	bxF, byF := rfpt.NewFpt(bx), rfpt.NewFpt(by)
	bdxF, bdyF := rfpt.NewFpt(bdx), rfpt.NewFpt(bdy)
	tF := rfpt.NewFpt(t)
	cxF := rfpt.Add(bxF, rfpt.Mul(tF, bdxF))
	cyF := rfpt.Add(byF, rfpt.Mul(tF, bdyF))

	var cx, cy, radius float64
	if cxF.ULP() > predicate.ULPSThreshold || cyF.ULP() > predicate.ULPSThreshold {
		var exOK bool
		cx, cy, radius, exOK = pssHighPrecision(p.P0, s1.P0, s1.P1, s2.P0, s2.P1, sign)
		if !exOK {
			return Event{}, false
		}
	} else {
		cx, cy = cxF.Value(), cyF.Value()
		radius = math.Hypot(cx-px, cy-py)
	}

	var lowerX float64
	if cx >= 0 {
		lowerX = cx + radius
	} else {
		lowerX = (cx*cx - radius*radius) / (cx - radius)
	}

	return Event{CX: cx, CY: cy, LowerX: lowerX, Active: true}, true
}

// angleBisector returns a point on one angle bisector of lines through
// s1, s2 (with unit normals n1, n2), a direction along it, and the
// (equal-magnitude, signed) distance from that base point to both lines,
// scaled so that moving one unit along the returned direction changes the
// distance-to-both-lines by exactly 1 (needed so the caller's quadratic
// can treat that distance as baseDist+t).
func angleBisector(s1, s2 site.Site, n1x, n1y, n2x, n2y float64) (bx, by, dirX, dirY, baseDist float64) {
	// The two lines intersect; the bisector direction is n1+n2 (or n1-n2
	// for the other bisector), normalized. We pick n1+n2.
	sx, sy := n1x+n2x, n1y+n2y
	length := math.Hypot(sx, sy)
	if length < 1e-12 {
		return 0, 0, 0, 0, 0
	}
	dirX, dirY = sx/length, sy/length

	ix, iy, ok := lineIntersection(s1, s2, n1x, n1y, n2x, n2y)
	if !ok {
		return 0, 0, 0, 0, 0
	}
	bx, by = ix, iy
	baseDist = 0
	// Moving one unit along dir changes distance-to-line-1 by n1.dir; we
	// rescale dir so that rate is exactly 1.
	rate := n1x*dirX + n1y*dirY
	if math.Abs(rate) < 1e-12 {
		return 0, 0, 0, 0, 0
	}
	dirX, dirY = dirX/rate, dirY/rate
	return bx, by, dirX, dirY, baseDist
}

// lineIntersection returns the intersection of the two lines carrying s1
// and s2.
func lineIntersection(s1, s2 site.Site, n1x, n1y, n2x, n2y float64) (x, y float64, ok bool) {
	c1 := n1x*float64(s1.P0.X) + n1y*float64(s1.P0.Y)
	c2 := n2x*float64(s2.P0.X) + n2y*float64(s2.P0.Y)
	det := n1x*n2y - n1y*n2x
	if math.Abs(det) < 1e-12 {
		return 0, 0, false
	}
	x = (c1*n2y - c2*n1y) / det
	y = (n1x*c2 - n2x*c1) / det
	return x, y, true
}

// formPSSParallel handles two collinear/parallel segments: the bisector is
// the line halfway between them, and the center is found by intersecting
// the locus equidistant from the point and that mid-line — a direct
// parabola-vertex-style solve, the "parallel segments" quadratic spec.md
// §4.6 calls out. Escalates to pssParallelHighPrecision under the same
// ULP-threshold rule FormPSS applies to the general branch.
func formPSSParallel(p, s1, s2 site.Site, n1x, n1y, sign float64) (ev Event, ok bool) {
	c1 := n1x*float64(s1.P0.X) + n1y*float64(s1.P0.Y)
	c2 := n1x*float64(s2.P0.X) + n1y*float64(s2.P0.Y)
	midC := (c1 + c2) / 2
	halfGap := math.Abs(c1-c2) / 2

	// Direction along the mid-line, perpendicular to the shared normal.
	dirX, dirY := -n1y, n1x
	baseX, baseY := n1x*midC, n1y*midC

	px, py := float64(p.P0.X), float64(p.P0.Y)
	ex, ey := baseX-px, baseY-py
	qa := dirX*dirX + dirY*dirY
	qb := 2 * (ex*dirX + ey*dirY)
	qc := ex*ex + ey*ey - halfGap*halfGap

	// sqrt(qa*t^2+qb*t+qc) = halfGap  =>  qa*t^2+qb*t+(qc-halfGap^2)=0, already folded into qc above.
	if qa == 0 {
		return Event{}, false
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return Event{}, false
	}
	t := (-qb + sign*math.Sqrt(disc)) / (2 * qa)

	baseXF, baseYF := rfpt.NewFpt(baseX), rfpt.NewFpt(baseY)
	dirXF, dirYF := rfpt.NewFpt(dirX), rfpt.NewFpt(dirY)
	tF := rfpt.NewFpt(t)
	cxF := rfpt.Add(baseXF, rfpt.Mul(tF, dirXF))
	cyF := rfpt.Add(baseYF, rfpt.Mul(tF, dirYF))

	var cx, cy, radius float64
	if cxF.ULP() > predicate.ULPSThreshold || cyF.ULP() > predicate.ULPSThreshold {
		var exOK bool
		cx, cy, radius, exOK = pssParallelHighPrecision(p.P0, s1.P0, s1.P1, s2.P0, sign)
		if !exOK {
			return Event{}, false
		}
	} else {
		cx, cy = cxF.Value(), cyF.Value()
		radius = math.Hypot(cx-px, cy-py)
	}

	var lowerX float64
	if cx >= 0 {
		lowerX = cx + radius
	} else {
		lowerX = (cx*cx - radius*radius) / (cx - radius)
	}

	return Event{CX: cx, CY: cy, LowerX: lowerX, Active: true}, true
}

// pssHighPrecision redoes the general (non-parallel) pss solve at
// exactint.Precision bits, starting from the original integer coordinates
// of the point (p) and the two segments (s1A-s1B, s2A-s2B) rather than
// from lineNormal/angleBisector's already-rounded float64 intermediates:
// the same principle applied in pppsHighPrecision, carried over here so
// the escalation actually recovers the accuracy the fast path lost.
func pssHighPrecision(p, s1A, s1B, s2A, s2B point.Point, sign float64) (cx, cy, radius float64, ok bool) {
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

	// lineNormal(s1A, s1B) and lineNormal(s2A, s2B), at high precision.
	dx1, dy1 := sub(bfi(s1B.X), bfi(s1A.X)), sub(bfi(s1B.Y), bfi(s1A.Y))
	len1 := sqrt(add(mul(dx1, dx1), mul(dy1, dy1)))
	n1x, n1y := quo(dy1, len1), quo(neg(dx1), len1)

	dx2, dy2 := sub(bfi(s2B.X), bfi(s2A.X)), sub(bfi(s2B.Y), bfi(s2A.Y))
	len2 := sqrt(add(mul(dx2, dx2), mul(dy2, dy2)))
	n2x, n2y := quo(dy2, len2), quo(neg(dx2), len2)

	// angleBisector, at high precision: direction n1+n2 normalized, then
	// rescaled so its rate of change of distance-to-line-1 is exactly 1.
	sx, sy := add(n1x, n2x), add(n1y, n2y)
	sLen := sqrt(add(mul(sx, sx), mul(sy, sy)))
	dirX, dirY := quo(sx, sLen), quo(sy, sLen)

	s1ax, s1ay := bfi(s1A.X), bfi(s1A.Y)
	s2ax, s2ay := bfi(s2A.X), bfi(s2A.Y)
	c1 := add(mul(n1x, s1ax), mul(n1y, s1ay))
	c2 := add(mul(n2x, s2ax), mul(n2y, s2ay))
	det := sub(mul(n1x, n2y), mul(n1y, n2x))
	bx := quo(sub(mul(c1, n2y), mul(c2, n1y)), det)
	by := quo(sub(mul(n1x, c2), mul(n2x, c1)), det)

	rate := add(mul(n1x, dirX), mul(n1y, dirY))
	bdx, bdy := quo(dirX, rate), quo(dirY, rate)

	px, py := bfi(p.X), bfi(p.Y)
	ex, ey := sub(bx, px), sub(by, py)
	qa := add(mul(bdx, bdx), mul(bdy, bdy))
	qb := mul(two, add(mul(ex, bdx), mul(ey, bdy)))
	qc := add(mul(ex, ex), mul(ey, ey))

	A := sub(qa, one)
	B := qb
	C := qc

	var T *big.Float
	if A.Sign() == 0 {
		if B.Sign() == 0 {
			return 0, 0, 0, false
		}
		T = quo(neg(C), B)
	} else {
		four := new(big.Float).SetPrec(prec).SetInt64(4)
		disc := sub(mul(B, B), mul(mul(four, A), C))
		if disc.Sign() < 0 {
			return 0, 0, 0, false
		}
		sq := sqrt(disc)
		if sign < 0 {
			sq = neg(sq)
		}
		T = quo(add(neg(B), sq), mul(two, A))
	}

	cxF := add(bx, mul(T, bdx))
	cyF := add(by, mul(T, bdy))
	rF := sqrt(add(mul(sub(cxF, px), sub(cxF, px)), mul(sub(cyF, py), sub(cyF, py))))

	cx, _ = cxF.Float64()
	cy, _ = cyF.Float64()
	radius, _ = rF.Float64()
	return cx, cy, radius, true
}

// pssParallelHighPrecision redoes the parallel-segments pss solve at
// exactint.Precision bits, starting from the original integer coordinates
// of the point, s1's two endpoints (to recompute its normal), and s2's
// reference endpoint, the way pssHighPrecision does for the general
// branch.
func pssParallelHighPrecision(p, s1A, s1B, s2A point.Point, sign float64) (cx, cy, radius float64, ok bool) {
	prec := uint(exactint.Precision)
	bfi := func(v int32) *big.Float { return new(big.Float).SetPrec(prec).SetInt64(int64(v)) }
	add := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(x, y) }
	sub := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(x, y) }
	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(x, y) }
	quo := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Quo(x, y) }
	neg := func(x *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Neg(x) }
	sqrt := func(x *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sqrt(x) }
	abs := func(x *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Abs(x) }
	two := new(big.Float).SetPrec(prec).SetInt64(2)

	dx1, dy1 := sub(bfi(s1B.X), bfi(s1A.X)), sub(bfi(s1B.Y), bfi(s1A.Y))
	len1 := sqrt(add(mul(dx1, dx1), mul(dy1, dy1)))
	n1x, n1y := quo(dy1, len1), quo(neg(dx1), len1)

	s1ax, s1ay := bfi(s1A.X), bfi(s1A.Y)
	s2ax, s2ay := bfi(s2A.X), bfi(s2A.Y)
	c1 := add(mul(n1x, s1ax), mul(n1y, s1ay))
	c2 := add(mul(n1x, s2ax), mul(n1y, s2ay))
	midC := quo(add(c1, c2), two)
	halfGap := quo(abs(sub(c1, c2)), two)

	dirX, dirY := neg(n1y), n1x
	baseX, baseY := mul(n1x, midC), mul(n1y, midC)

	px, py := bfi(p.X), bfi(p.Y)
	ex, ey := sub(baseX, px), sub(baseY, py)
	qa := add(mul(dirX, dirX), mul(dirY, dirY))
	qb := mul(two, add(mul(ex, dirX), mul(ey, dirY)))
	qc := sub(add(mul(ex, ex), mul(ey, ey)), mul(halfGap, halfGap))

	if qa.Sign() == 0 {
		return 0, 0, 0, false
	}
	four := new(big.Float).SetPrec(prec).SetInt64(4)
	disc := sub(mul(qb, qb), mul(mul(four, qa), qc))
	if disc.Sign() < 0 {
		return 0, 0, 0, false
	}
	sq := sqrt(disc)
	if sign < 0 {
		sq = neg(sq)
	}
	t := quo(add(neg(qb), sq), mul(two, qa))

	cxF := add(baseX, mul(t, dirX))
	cyF := add(baseY, mul(t, dirY))
	rF := sqrt(add(mul(sub(cxF, px), sub(cxF, px)), mul(sub(cyF, py), sub(cyF, py))))

	cx, _ = cxF.Float64()
	cy, _ = cyF.Float64()
	radius, _ = rF.Float64()
	return cx, cy, radius, true
}
