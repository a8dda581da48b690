package circleevent

import (
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/rfpt"
	"github.com/katalvlaran/voronoi/site"
)

// FormPPP computes the circumcircle of three point sites (spec.md §4.6
// "ppp"). It reports ok=false when Existence (call it first) would already
// have rejected the triple, or when the three points are exactly collinear
// (no finite circumcircle).
//
// The center (cx, cy) is a rational function of the three points'
// coordinates, so unlike pps/pss/sss it never needs a square root and the
// exact fallback recomputes it with plain big.Int/big.Rat arithmetic rather
// than the high-precision-reevaluation simplification documented in
// circleevent/doc.go. Only the radius (needed for lower_x) involves an
// irrational sqrt.
func FormPPP(l, m, r site.Site) (ev Event, ok bool) {
	a, b, c := l.P0, m.P0, r.P0

	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	fax, fay := rfpt.NewFpt(ax), rfpt.NewFpt(ay)
	fbx, fby := rfpt.NewFpt(bx), rfpt.NewFpt(by)
	fcx, fcy := rfpt.NewFpt(cx), rfpt.NewFpt(cy)

	two := rfpt.NewFpt(2.0)
	d := rfpt.Mul(two, rfpt.Add(
		rfpt.Mul(fax, rfpt.Sub(fby, fcy)),
		rfpt.Add(
			rfpt.Mul(fbx, rfpt.Sub(fcy, fay)),
			rfpt.Mul(fcx, rfpt.Sub(fay, fby)),
		),
	))
	if d.Value() == 0 {
		return Event{}, false // collinear
	}

	sqA := rfpt.Add(rfpt.Mul(fax, fax), rfpt.Mul(fay, fay))
	sqB := rfpt.Add(rfpt.Mul(fbx, fbx), rfpt.Mul(fby, fby))
	sqC := rfpt.Add(rfpt.Mul(fcx, fcx), rfpt.Mul(fcy, fcy))

	uxNum := rfpt.Add(
		rfpt.Mul(sqA, rfpt.Sub(fby, fcy)),
		rfpt.Add(
			rfpt.Mul(sqB, rfpt.Sub(fcy, fay)),
			rfpt.Mul(sqC, rfpt.Sub(fay, fby)),
		),
	)
	uyNum := rfpt.Add(
		rfpt.Mul(sqA, rfpt.Sub(fcx, fbx)),
		rfpt.Add(
			rfpt.Mul(sqB, rfpt.Sub(fax, fcx)),
			rfpt.Mul(sqC, rfpt.Sub(fbx, fax)),
		),
	)

	centerX := rfpt.Div(uxNum, d)
	centerY := rfpt.Div(uyNum, d)

	const centerBand = 24.0
	if centerX.ULP() > centerBand || centerY.ULP() > centerBand {
		centerX, centerY = exactCenter(a, b, c)
	}

	dx := rfpt.Sub(centerX, fax)
	dy := rfpt.Sub(centerY, fay)
	radius := rfpt.Sqrt(rfpt.Add(rfpt.Mul(dx, dx), rfpt.Mul(dy, dy)))

	const radiusBand = 32.0
	var lowerX rfpt.Fpt[float64]
	if radius.ULP() > radiusBand {
		lowerX = exactLowerX(centerX, dx, dy)
	} else if centerX.Value() >= 0 {
		lowerX = rfpt.Add(centerX, radius)
	} else {
		diff := rfpt.Sub(rfpt.Mul(centerX, centerX), rfpt.Mul(radius, radius))
		denom := rfpt.Sub(centerX, radius)
		lowerX = rfpt.Div(diff, denom)
	}

	if predicate.Orientation(a, b, c) != predicate.Right {
		return Event{}, false // caller's Existence check should already exclude this
	}

	return Event{CX: centerX.Value(), CY: centerY.Value(), LowerX: lowerX.Value(), Active: true}, true
}

// exactCenter recomputes the circumcenter with big.Rat arithmetic, exact
// for integer input coordinates, when the fast path's ULP bound is too
// loose to trust.
func exactCenter(a, b, c point.Point) (cx, cy rfpt.Fpt[float64]) {
	ax, ay := big.NewRat(int64(a.X), 1), big.NewRat(int64(a.Y), 1)
	bx, by := big.NewRat(int64(b.X), 1), big.NewRat(int64(b.Y), 1)
	cxr, cyr := big.NewRat(int64(c.X), 1), big.NewRat(int64(c.Y), 1)

	sub := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
	mul := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	add := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

	d := mul(big.NewRat(2, 1), add(mul(ax, sub(by, cyr)), add(mul(bx, sub(cyr, ay)), mul(cxr, sub(ay, by)))))

	sqA := add(mul(ax, ax), mul(ay, ay))
	sqB := add(mul(bx, bx), mul(by, by))
	sqC := add(mul(cxr, cxr), mul(cyr, cyr))

	uxNum := add(mul(sqA, sub(by, cyr)), add(mul(sqB, sub(cyr, ay)), mul(sqC, sub(ay, by))))
	uyNum := add(mul(sqA, sub(cxr, bx)), add(mul(sqB, sub(ax, cxr)), mul(sqC, sub(bx, ax))))

	cxRat := new(big.Rat).Quo(uxNum, d)
	cyRat := new(big.Rat).Quo(uyNum, d)

	cxF, _ := cxRat.Float64()
	cyF, _ := cyRat.Float64()
	return rfpt.NewFpt(cxF), rfpt.NewFpt(cyF)
}

// exactLowerX recomputes the sqrt term at exactint.Precision bits when the
// fast radius carries too wide an ULP bound.
func exactLowerX(centerX, dx, dy rfpt.Fpt[float64]) rfpt.Fpt[float64] {
	bigDx := new(big.Float).SetPrec(exactint.Precision).SetFloat64(dx.Value())
	bigDy := new(big.Float).SetPrec(exactint.Precision).SetFloat64(dy.Value())
	sq := new(big.Float).SetPrec(exactint.Precision).Mul(bigDx, bigDx)
	sq.Add(sq, new(big.Float).SetPrec(exactint.Precision).Mul(bigDy, bigDy))
	r := new(big.Float).SetPrec(exactint.Precision).Sqrt(sq)

	cx := new(big.Float).SetPrec(exactint.Precision).SetFloat64(centerX.Value())
	var lx big.Float
	if centerX.Value() >= 0 {
		lx.Add(cx, r)
	} else {
		diff := new(big.Float).SetPrec(exactint.Precision).Mul(cx, cx)
		diff.Sub(diff, new(big.Float).SetPrec(exactint.Precision).Mul(r, r))
		denom := new(big.Float).SetPrec(exactint.Precision).Sub(cx, r)
		lx.Quo(diff, denom)
	}
	v, _ := lx.Float64()
	return rfpt.NewFpt(v)
}
