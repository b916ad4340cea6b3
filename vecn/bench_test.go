package vecn_test

import (
	"testing"

	"github.com/katalvlaran/anneal/vecn"
)

// benchVec builds a deterministic vector of dimension n for benchmarking.
func benchVec(n int) vecn.Vec {
	v := vecn.New(n)
	for i := range v {
		v[i] = float64(i%7) + 0.5 // predictable, nonzero values
	}
	return v
}

// BenchmarkAddMulChain measures the allocating elementwise pipeline at the
// dimensions the annealer actually uses (small D).
func BenchmarkAddMulChain(b *testing.B) {
	a := benchVec(8)
	c := benchVec(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Add(c).Mul(c).Scale(0.5)
	}
}

// BenchmarkGeneratingFunction measures the full Ingber step-map composition.
func BenchmarkGeneratingFunction(b *testing.B) {
	temp := vecn.Full(8, 0.25)
	u := benchVec(8).Scale(1.0 / 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u2 := u.Scale(2).AddConst(-1).Abs()
		sigu := u.AddConst(-0.5).Signum()
		_ = sigu.Mul(temp).Mul(temp.Recip().AddConst(1).Pow(u2).AddConst(-1))
	}
}
