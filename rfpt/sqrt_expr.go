package rfpt

import (
	"math"
	"math/big"

	"github.com/katalvlaran/voronoi/exactint"
)

// SqrtExpr evaluates Sigma A_i * sqrt(B_i), for exact-integer coefficients
// A_i and non-negative exact-integer radicands B_i, as a single RobustFpt
// (spec.md §3 "robust_sqrt_expr"). Every term is summed in high-precision
// big.Float arithmetic before the final cast to F, so the only rounding
// error in the returned value is the last cast itself; the returned ULP
// bound is the conservative k*max(|A_i|*sqrt(|B_i|))/|sum| spec.md §4.1
// gives.
//
// Eval1 through Eval4 are named convenience wrappers for the fixed arities
// spec.md calls out by name; PSS4 is the same 4-term evaluation under the
// name of the pss specialization, kept as a distinct entry point.
func SqrtExpr[F Float](a, b []*big.Int) Fpt[F] {
	if len(a) != len(b) {
		panic("rfpt: SqrtExpr: mismatched coefficient/radicand slices")
	}
	sum := new(big.Float).SetPrec(exactint.Precision)
	maxTerm := new(big.Float).SetPrec(exactint.Precision)
	for i := range a {
		if exactint.Sign(b[i]) < 0 {
			panic("rfpt: SqrtExpr: negative radicand")
		}
		term := new(big.Float).SetPrec(exactint.Precision).SetInt(a[i])
		term.Mul(term, exactint.SqrtBigFloat(b[i]))
		sum.Add(sum, term)
		abs := new(big.Float).SetPrec(exactint.Precision).Abs(term)
		if abs.Cmp(maxTerm) > 0 {
			maxTerm.Set(abs)
		}
	}
	val64, _ := sum.Float64()
	if val64 == 0 {
		return Fpt[F]{val: 0, ulp: 0}
	}
	maxVal64, _ := maxTerm.Float64()
	ulp := F(float64(len(a)) * maxVal64 / math.Abs(val64))
	return Fpt[F]{val: F(val64), ulp: ulp}
}

// Eval1 evaluates a0*sqrt(b0).
func Eval1[F Float](a0, b0 *big.Int) Fpt[F] {
	return SqrtExpr[F]([]*big.Int{a0}, []*big.Int{b0})
}

// Eval2 evaluates a0*sqrt(b0) + a1*sqrt(b1).
func Eval2[F Float](a0, b0, a1, b1 *big.Int) Fpt[F] {
	return SqrtExpr[F]([]*big.Int{a0, a1}, []*big.Int{b0, b1})
}

// Eval3 evaluates a0*sqrt(b0) + a1*sqrt(b1) + a2*sqrt(b2).
func Eval3[F Float](a0, b0, a1, b1, a2, b2 *big.Int) Fpt[F] {
	return SqrtExpr[F]([]*big.Int{a0, a1, a2}, []*big.Int{b0, b1, b2})
}

// Eval4 evaluates the 4-term sum Sigma a_i*sqrt(b_i).
func Eval4[F Float](a0, b0, a1, b1, a2, b2, a3, b3 *big.Int) Fpt[F] {
	return SqrtExpr[F]([]*big.Int{a0, a1, a2, a3}, []*big.Int{b0, b1, b2, b3})
}

// PSS4 evaluates the 4-term pss expression. It is numerically identical to
// Eval4: it evaluates the full sum directly rather than reducing to nested
// 2-term sub-expressions. FormPSS in package circleevent does not call it;
// its exact fallback uses big.Float directly.
func PSS4[F Float](a0, b0, a1, b1, a2, b2, a3, b3 *big.Int) Fpt[F] {
	return Eval4[F](a0, b0, a1, b1, a2, b2, a3, b3)
}
