package circleevent

import (
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
	"github.com/katalvlaran/voronoi/rfpt"
	"github.com/katalvlaran/voronoi/site"
)

// FormSSS computes the circumcircle of three segment sites (spec.md §4.6
// "sss"): the generalized-Apollonius linear system a_i*x + b_i*y - r*l_i =
// c_i for i in {1,2,3}, where (a_i,b_i,c_i) is each segment's line in
// normal form and l_i = sqrt(a_i^2+b_i^2). Solving by Cramer's rule
// produces cx, cy as 3-term sums of the form sum(A_i * l_j) — exactly the
// robust_sqrt_expr shape spec.md calls out — while the radius numerator
// has no sqrt term at all and is evaluated as a plain integer cross
// product.
func FormSSS(l, m, r site.Site) (ev Event, ok bool) {
	if !l.IsSegment() || !m.IsSegment() || !r.IsSegment() {
		return Event{}, false
	}
	a1, b1, c1 := lineCoeffs(l)
	a2, b2, c2 := lineCoeffs(m)
	a3, b3, c3 := lineCoeffs(r)

	sqB1 := addSq(a1, b1)
	sqB2 := addSq(a2, b2)
	sqB3 := addSq(a3, b3)

	denom := det3WithSqrt[float64](a1, b1, a2, b2, a3, b3, sqB1, sqB2, sqB3)
	if denom.Value() == 0 {
		return Event{}, false
	}

	numerX := det3WithSqrt[float64](c1, b1, c2, b2, c3, b3, sqB1, sqB2, sqB3)
	numerY := det3WithSqrt[float64](a1, c1, a2, c2, a3, c3, sqB1, sqB2, sqB3)
	numerR := exactint.ToFloat64(det3Plain(a1, b1, c1, a2, b2, c2, a3, b3, c3))

	cx := rfpt.Div(numerX, denom)
	cy := rfpt.Div(numerY, denom)
	radius := rfpt.Div(rfpt.NewFpt(numerR), denom)

	var lowerX rfpt.Fpt[float64]
	if cx.Value() >= 0 {
		lowerX = rfpt.Add(cx, radius)
	} else {
		diff := rfpt.Sub(rfpt.Mul(cx, cx), rfpt.Mul(radius, radius))
		lowerX = rfpt.Div(diff, rfpt.Sub(cx, radius))
	}

	return Event{CX: cx.Value(), CY: cy.Value(), LowerX: lowerX.Value(), Active: true}, true
}

// lineCoeffs returns the normal-form line a*x+b*y=c for the line carrying
// segment s, with (a,b) = (dy, -dx) for direction (dx,dy) = s.P1-s.P0 (not
// normalized: l = sqrt(a^2+b^2) is folded in separately so the exact
// integer coefficients stay exact as long as possible).
func lineCoeffs(s site.Site) (a, b, c *big.Int) {
	dx := int64(s.P1.X) - int64(s.P0.X)
	dy := int64(s.P1.Y) - int64(s.P0.Y)
	a = exactint.FromInt64(dy)
	b = exactint.FromInt64(-dx)
	c = exactint.Add(exactint.Mul(a, exactint.FromInt64(int64(s.P0.X))), exactint.Mul(b, exactint.FromInt64(int64(s.P0.Y))))
	return
}

func addSq(a, b *big.Int) *big.Int {
	return exactint.Add(exactint.Mul(a, a), exactint.Mul(b, b))
}

// det3WithSqrt evaluates det([[p1,q1,-l1],[p2,q2,-l2],[p3,q3,-l3]]) where
// l_i = sqrt(b_i), expanded along the third column into the 3-term
// robust_sqrt_expr form l1*(p3*q2-p2*q3) + l2*(p1*q3-q1*p3) + l3*(q1*p2-p1*q2).
func det3WithSqrt[F rfpt.Float](p1, q1, p2, q2, p3, q3 *big.Int, b1, b2, b3 *big.Int) rfpt.Fpt[F] {
	a0 := exactint.Sub(exactint.Mul(p3, q2), exactint.Mul(p2, q3))
	a1 := exactint.Sub(exactint.Mul(p1, q3), exactint.Mul(q1, p3))
	a2 := exactint.Sub(exactint.Mul(q1, p2), exactint.Mul(p1, q2))
	return rfpt.Eval3[F](a0, b1, a1, b2, a2, b3)
}

// det3Plain evaluates the plain rational 3x3 determinant (no sqrt column),
// used for the radius numerator.
func det3Plain(a1, b1, c1, a2, b2, c2, a3, b3, c3 *big.Int) *big.Int {
	t1 := exactint.Mul(a1, exactint.Sub(exactint.Mul(b2, c3), exactint.Mul(b3, c2)))
	t2 := exactint.Mul(b1, exactint.Sub(exactint.Mul(a2, c3), exactint.Mul(a3, c2)))
	t3 := exactint.Mul(c1, exactint.Sub(exactint.Mul(a2, b3), exactint.Mul(a3, b2)))
	return exactint.Sub(exactint.Add(t1, t3), t2)
}
