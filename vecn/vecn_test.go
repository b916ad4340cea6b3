package vecn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anneal/vecn"
)

// TestConstructors verifies New, Full, Of and Clone independence.
func TestConstructors(t *testing.T) {
	z := vecn.New(3)
	assert.Equal(t, vecn.Vec{0, 0, 0}, z, "New must zero-fill")

	f := vecn.Full(2, 1.5)
	assert.Equal(t, vecn.Vec{1.5, 1.5}, f, "Full must broadcast the value")

	src := []float64{1, 2}
	o := vecn.Of(src...)
	src[0] = 99
	assert.Equal(t, vecn.Vec{1, 2}, o, "Of must copy, not alias")

	c := o.Clone()
	c[0] = -1
	assert.Equal(t, vecn.Vec{1, 2}, o, "Clone must not alias the receiver")
	assert.Equal(t, 2, o.Dim(), "Dim reports length")
}

// TestArithmetic covers the gonum-backed binary and broadcast kernels.
func TestArithmetic(t *testing.T) {
	a := vecn.Of(1, 2, 3)
	b := vecn.Of(4, 5, 6)

	assert.Equal(t, vecn.Vec{5, 7, 9}, a.Add(b))
	assert.Equal(t, vecn.Vec{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, vecn.Vec{4, 10, 18}, a.Mul(b))
	assert.Equal(t, vecn.Vec{0.25, 0.4, 0.5}, a.Div(b))
	assert.Equal(t, vecn.Vec{2, 3, 4}, a.AddConst(1))
	assert.Equal(t, vecn.Vec{2, 4, 6}, a.Scale(2))

	// Value semantics: the receiver must be untouched by all of the above.
	assert.Equal(t, vecn.Vec{1, 2, 3}, a, "operations must not mutate the receiver")

	// Length mismatch is a programmer error.
	assert.Panics(t, func() { a.Add(vecn.Of(1)) }, "mismatched Add must panic")
}

// TestMaps covers Abs/Exp/Log/Recip/Pow/PowConst/Signum.
func TestMaps(t *testing.T) {
	v := vecn.Of(-2, 0, 2)

	assert.Equal(t, vecn.Vec{2, 0, 2}, v.Abs())
	assert.Equal(t, vecn.Vec{-1, 0, 1}, v.Signum(), "Signum(0) must be 0")

	e := vecn.Of(0, 1, 2).Exp()
	assert.InDelta(t, 1.0, e[0], 1e-15)
	assert.InDelta(t, math.E, e[1], 1e-15)

	l := vecn.Of(1, math.E).Log()
	assert.InDelta(t, 0.0, l[0], 1e-15)
	assert.InDelta(t, 1.0, l[1], 1e-15)

	r := vecn.Of(2, 4).Recip()
	assert.Equal(t, vecn.Vec{0.5, 0.25}, r)
	assert.True(t, math.IsInf(vecn.Of(0.0).Recip()[0], 1), "Recip(0) is +Inf")

	p := vecn.Of(2, 3).Pow(vecn.Of(3, 2))
	assert.Equal(t, vecn.Vec{8, 9}, p)
	assert.Panics(t, func() { vecn.Of(1, 2).Pow(vecn.Of(1)) }, "Pow length mismatch must panic")

	assert.Equal(t, vecn.Vec{4, 9}, vecn.Of(2, 3).PowConst(2))
}

// TestReductions covers Max/Min/Sum/Mean and empty-vector contracts.
func TestReductions(t *testing.T) {
	v := vecn.Of(3, -1, 2)
	assert.Equal(t, 3.0, v.Max())
	assert.Equal(t, -1.0, v.Min())
	assert.Equal(t, 4.0, v.Sum())
	assert.InDelta(t, 4.0/3.0, v.Mean(), 1e-15)

	assert.Panics(t, func() { vecn.New(0).Mean() }, "Mean of empty vector must panic")
}

// TestPredicates covers HasZero, HasNaNInf, Within and AllPositive.
func TestPredicates(t *testing.T) {
	assert.True(t, vecn.Of(1, 0, 2).HasZero())
	assert.False(t, vecn.Of(1, -1).HasZero())

	assert.True(t, vecn.Of(1, math.NaN()).HasNaNInf())
	assert.True(t, vecn.Of(math.Inf(-1)).HasNaNInf())
	assert.False(t, vecn.Of(1, 2).HasNaNInf())

	lo := vecn.Of(-1, -1)
	hi := vecn.Of(1, 1)
	assert.True(t, vecn.Of(-1, 1).Within(lo, hi), "bounds are inclusive")
	assert.False(t, vecn.Of(0, 1.0000001).Within(lo, hi))
	assert.Panics(t, func() { vecn.Of(0.0).Within(lo, hi) }, "Within length mismatch must panic")

	assert.True(t, vecn.Of(0.1, 2).AllPositive())
	assert.False(t, vecn.Of(0.1, 0).AllPositive(), "zero is not positive")
}

// TestAnnealingComposition exercises the exact composition the optimizer uses
// for Ingber's generating function, with a known uniform draw.
func TestAnnealingComposition(t *testing.T) {
	temp := vecn.Full(2, 1.0)
	u := vecn.Of(0.0, 0.0) // extreme draw

	u2 := u.Scale(2).AddConst(-1).Abs()
	sigu := u.AddConst(-0.5).Signum()
	y := sigu.Mul(temp).Mul(temp.Recip().AddConst(1).Pow(u2).AddConst(-1))

	// With u=0: u2=1, sign=-1, y = -T*((1/T+1)^1 - 1) = -1 exactly for T=1.
	require.Equal(t, vecn.Vec{-1, -1}, y)
}
