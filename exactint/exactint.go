// Package exactint is the exact arbitrary-precision layer the fast
// RobustFpt/RobustDif path escalates to when it cannot certify a sign
// (spec.md §3 "Exact integer layer", §4.1). It wraps math/big — no pack
// example imports a third-party bignum type for unbounded-width integers;
// see DESIGN.md for why that makes stdlib the grounded choice here rather
// than a convenience fallback.
package exactint

import "math/big"

// Precision is the working precision, in bits, used for big.Float square
// roots and conversions. spec.md §9 requires the exact layer's float type
// to preserve at least 48 bits of mantissa; 200 bits leaves comfortable
// headroom for the sum-of-square-roots evaluator in package rfpt.
const Precision = 200

// FromInt64 returns a new *big.Int with value v.
func FromInt64(v int64) *big.Int {
	return big.NewInt(v)
}

// Mul returns a new *big.Int holding a*b.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Add returns a new *big.Int holding a+b.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a new *big.Int holding a-b.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Cmp returns -1, 0, or 1 as a<b, a==b, a>b.
func Cmp(a, b *big.Int) int {
	return a.Cmp(b)
}

// Sign returns -1, 0, or 1 as a<0, a==0, a>0.
func Sign(a *big.Int) int {
	return a.Sign()
}

// ToBigFloat converts a to a big.Float at Precision bits.
func ToBigFloat(a *big.Int) *big.Float {
	return new(big.Float).SetPrec(Precision).SetInt(a)
}

// ToFloat64 converts a to the nearest float64, rounding at Precision bits
// first so very large values round the same way regardless of magnitude.
func ToFloat64(a *big.Int) float64 {
	v, _ := ToBigFloat(a).Float64()
	return v
}

// SqrtBigFloat returns sqrt(a) as a big.Float at Precision bits. a must be
// non-negative.
func SqrtBigFloat(a *big.Int) *big.Float {
	return new(big.Float).SetPrec(Precision).Sqrt(ToBigFloat(a))
}

// SqrtFloat64 returns sqrt(a) rounded to float64, computed at Precision
// bits so the rounding error is dominated by the final float64 cast, not by
// the square root itself.
func SqrtFloat64(a *big.Int) float64 {
	v, _ := SqrtBigFloat(a).Float64()
	return v
}
