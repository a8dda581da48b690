package rfpt

import "math"

// Float is the numeric domain RobustFpt is parameterized over. This
// package works in either width; the predicates and the sweep instantiate
// it with float64 only (see package predicate).
type Float interface {
	~float32 | ~float64
}

// Fpt is a floating value paired with a non-negative relative error bound
// measured in ULPs of the value itself (spec.md §3 "RobustFpt<F>").
// Constants have error 0; every arithmetic operation below propagates a
// conservative bound per spec.md §4.1.
type Fpt[F Float] struct {
	val F
	ulp F
}

// NewFpt returns an exact (zero-error) Fpt wrapping v. Use this for
// constants and for values known to be exactly representable (e.g. small
// integers converted to F).
func NewFpt[F Float](v F) Fpt[F] {
	return Fpt[F]{val: v}
}

// NewFptWithULP returns an Fpt with an explicit, already-known error bound.
func NewFptWithULP[F Float](v, ulp F) Fpt[F] {
	return Fpt[F]{val: v, ulp: ulp}
}

// Value returns the floating value.
func (f Fpt[F]) Value() F { return f.val }

// ULP returns the current relative error bound.
func (f Fpt[F]) ULP() F { return f.ulp }

func absF[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// Add returns a+b with rel_err(z) = (|a|*ea + |b|*eb)/|z| + 1, the
// conservative bound spec.md §4.1 gives for like-signed or cancelling sums.
// When z == 0 the result carries error 0 by convention (an exact
// cancellation needs no further bound; callers relying on a zero value for
// a sign decision must already be on the exact path).
func Add[F Float](a, b Fpt[F]) Fpt[F] {
	return addSub(a, b, a.val+b.val)
}

// Sub returns a-b with the same conservative error propagation as Add.
func Sub[F Float](a, b Fpt[F]) Fpt[F] {
	return addSub(a, b, a.val-b.val)
}

func addSub[F Float](a, b Fpt[F], z F) Fpt[F] {
	if z == 0 {
		return Fpt[F]{val: 0, ulp: 0}
	}
	num := absF(a.val)*a.ulp + absF(b.val)*b.ulp
	return Fpt[F]{val: z, ulp: num/absF(z) + 1}
}

// Mul returns a*b with rel_err(z) = ea + eb + 1.
func Mul[F Float](a, b Fpt[F]) Fpt[F] {
	return Fpt[F]{val: a.val * b.val, ulp: a.ulp + b.ulp + 1}
}

// Div returns a/b (b != 0) with rel_err(z) = ea + eb + 1.
func Div[F Float](a, b Fpt[F]) Fpt[F] {
	return Fpt[F]{val: a.val / b.val, ulp: a.ulp + b.ulp + 1}
}

// Sqrt returns sqrt(a) (a >= 0) with rel_err(z) = ea/2 + 1.
func Sqrt[F Float](a Fpt[F]) Fpt[F] {
	return Fpt[F]{val: F(math.Sqrt(float64(a.val))), ulp: a.ulp/2 + 1}
}

// Neg returns -a; negation does not change the relative error bound.
func Neg[F Float](a Fpt[F]) Fpt[F] {
	return Fpt[F]{val: -a.val, ulp: a.ulp}
}

// LessULP reports whether a is unambiguously less than b once both ULP
// bounds are taken into account: a commits to "<" only when the
// intervals [a-ulp, a+ulp] and [b-ulp, b+ulp] (in units of ulp(value))
// cannot overlap. Ties are resolved as "not decided" by returning false for
// both LessULP(a,b) and LessULP(b,a); callers use DecideSign for the
// three-way form used by predicates.
func LessULP[F Float](a, b Fpt[F], threshold F) bool {
	d := Sub(a, b)
	return d.val < 0 && absF(d.val) > ulpUnit(d.val)*d.ulp*threshold
}

// ulpUnit returns one machine ULP of v in F's own precision (the gap from
// |v| to the next larger representable value), so that ulpUnit(v)*ulp is
// the absolute error a relative bound of ulp ULPs stands for.
func ulpUnit[F Float](v F) F {
	if v == 0 {
		return 1
	}
	a := float64(absF(v))
	if F(1+1e-10) == F(1) { // F is float32-wide
		f := float32(a)
		return F(math.Nextafter32(f, float32(math.Inf(1))) - f)
	}
	return F(math.Nextafter(a, math.Inf(1)) - a)
}
