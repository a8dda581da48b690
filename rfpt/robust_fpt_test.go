package rfpt_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/voronoi/rfpt"
)

func TestFptConstantsHaveZeroError(t *testing.T) {
	f := rfpt.NewFpt(3.0)
	assert.Equal(t, 0.0, f.ULP())
	assert.Equal(t, 3.0, f.Value())
}

func TestAddSubMulDiv(t *testing.T) {
	a := rfpt.NewFpt(2.0)
	b := rfpt.NewFpt(3.0)

	sum := rfpt.Add(a, b)
	assert.Equal(t, 5.0, sum.Value())
	assert.True(t, sum.ULP() >= 0)

	diff := rfpt.Sub(a, b)
	assert.Equal(t, -1.0, diff.Value())

	prod := rfpt.Mul(a, b)
	assert.Equal(t, 6.0, prod.Value())
	assert.Equal(t, a.ULP()+b.ULP()+1, prod.ULP())

	quo := rfpt.Div(b, a)
	assert.Equal(t, 1.5, quo.Value())
	assert.Equal(t, a.ULP()+b.ULP()+1, quo.ULP())
}

func TestSqrtHalvesError(t *testing.T) {
	a := rfpt.NewFptWithULP(4.0, 2.0)
	r := rfpt.Sqrt(a)
	assert.Equal(t, 2.0, r.Value())
	assert.Equal(t, a.ULP()/2+1, r.ULP())
}

func TestNegPreservesError(t *testing.T) {
	a := rfpt.NewFptWithULP(4.0, 3.0)
	n := rfpt.Neg(a)
	assert.Equal(t, -4.0, n.Value())
	assert.Equal(t, a.ULP(), n.ULP())
}

func TestAddExactCancellationHasZeroError(t *testing.T) {
	a := rfpt.NewFptWithULP(5.0, 12.0)
	b := rfpt.NewFptWithULP(5.0, 9.0)
	z := rfpt.Sub(a, b)
	assert.Equal(t, 0.0, z.Value())
	assert.Equal(t, 0.0, z.ULP())
}

func TestSqrtExprEval1(t *testing.T) {
	// 2*sqrt(9) = 6
	v := rfpt.Eval1[float64](big.NewInt(2), big.NewInt(9))
	assert.InDelta(t, 6.0, v.Value(), 1e-9)
}

func TestSqrtExprEval2(t *testing.T) {
	// sqrt(4) + sqrt(9) = 2 + 3 = 5
	v := rfpt.Eval2[float64](big.NewInt(1), big.NewInt(4), big.NewInt(1), big.NewInt(9))
	assert.InDelta(t, 5.0, v.Value(), 1e-9)
}

func TestSqrtExprCancellationToZero(t *testing.T) {
	// sqrt(16) - sqrt(16) = 0
	v := rfpt.Eval2[float64](big.NewInt(1), big.NewInt(16), big.NewInt(-1), big.NewInt(16))
	assert.Equal(t, 0.0, v.Value())
	assert.Equal(t, 0.0, v.ULP())
}

func TestSqrtExprPanicsOnMismatchedLength(t *testing.T) {
	assert.Panics(t, func() {
		rfpt.SqrtExpr[float64]([]*big.Int{big.NewInt(1)}, nil)
	})
}

func TestSqrtExprPanicsOnNegativeRadicand(t *testing.T) {
	assert.Panics(t, func() {
		rfpt.Eval1[float64](big.NewInt(1), big.NewInt(-1))
	})
}

func TestPSS4MatchesEval4(t *testing.T) {
	a0, b0 := big.NewInt(1), big.NewInt(4)
	a1, b1 := big.NewInt(2), big.NewInt(9)
	a2, b2 := big.NewInt(-1), big.NewInt(25)
	a3, b3 := big.NewInt(3), big.NewInt(1)

	got := rfpt.PSS4[float64](a0, b0, a1, b1, a2, b2, a3, b3)
	want := rfpt.Eval4[float64](a0, b0, a1, b1, a2, b2, a3, b3)
	assert.Equal(t, want.Value(), got.Value())
	assert.Equal(t, want.ULP(), got.ULP())
}
