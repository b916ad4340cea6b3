// Package vecn - elementwise kernels, reductions and predicates.
//
// Design:
//   - Binary ops delegate to gonum/floats on a cloned destination; gonum
//     enforces the equal-length contract (panic on mismatch).
//   - Hand-written maps keep a fixed 0..n-1 loop order for determinism.
//   - No operation mutates its receiver or arguments.
//
// Complexity: every function below is O(n) time, and O(n) space when it
// returns a vector, O(1) otherwise.
package vecn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Add returns v + o elementwise.
func (v Vec) Add(o Vec) Vec {
	out := v.Clone()
	floats.Add(out, o)
	return out
}

// Sub returns v - o elementwise.
func (v Vec) Sub(o Vec) Vec {
	out := v.Clone()
	floats.Sub(out, o)
	return out
}

// Mul returns v * o elementwise (Hadamard product).
func (v Vec) Mul(o Vec) Vec {
	out := v.Clone()
	floats.Mul(out, o)
	return out
}

// Div returns v / o elementwise. Division by a zero component follows IEEE
// semantics (±Inf or NaN); callers that need finite results must check with
// HasZero or HasNaNInf.
func (v Vec) Div(o Vec) Vec {
	out := v.Clone()
	floats.Div(out, o)
	return out
}

// AddConst returns v + c, broadcasting the scalar to every component.
func (v Vec) AddConst(c float64) Vec {
	out := v.Clone()
	floats.AddConst(c, out)
	return out
}

// Scale returns c * v, broadcasting the scalar to every component.
func (v Vec) Scale(c float64) Vec {
	out := v.Clone()
	floats.Scale(c, out)
	return out
}

// Abs returns |v| elementwise.
func (v Vec) Abs() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}
	return out
}

// Exp returns e^v elementwise.
func (v Vec) Exp() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = math.Exp(x)
	}
	return out
}

// Log returns the natural logarithm of v elementwise.
// Components <= 0 produce -Inf or NaN per math.Log.
func (v Vec) Log() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = math.Log(x)
	}
	return out
}

// Recip returns 1 / v elementwise. Zero components yield ±Inf.
func (v Vec) Recip() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = 1 / x
	}
	return out
}

// Pow returns v[i]^e[i] elementwise. Panics if len(e) != len(v).
func (v Vec) Pow(e Vec) Vec {
	if len(e) != len(v) {
		panic("vecn: Pow: length mismatch")
	}
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, e[i])
	}
	return out
}

// PowConst returns v[i]^p elementwise.
func (v Vec) PowConst(p float64) Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, p)
	}
	return out
}

// Signum returns the sign of each component: -1, 0 or +1.
// Signum of exactly 0 is 0; NaN maps to NaN's comparison behavior (0).
func (v Vec) Signum() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		switch {
		case x > 0:
			out[i] = 1
		case x < 0:
			out[i] = -1
		default:
			out[i] = 0
		}
	}
	return out
}

// Max returns the largest component. Panics on an empty vector.
func (v Vec) Max() float64 { return floats.Max(v) }

// Min returns the smallest component. Panics on an empty vector.
func (v Vec) Min() float64 { return floats.Min(v) }

// Sum returns the sum of all components (0 for an empty vector).
func (v Vec) Sum() float64 { return floats.Sum(v) }

// Mean returns the arithmetic mean of the components.
// Panics on an empty vector (0/0 would be NaN; an empty mean is a bug).
func (v Vec) Mean() float64 {
	if len(v) == 0 {
		panic("vecn: Mean of empty vector")
	}
	return floats.Sum(v) / float64(len(v))
}

// HasZero reports whether any component is exactly zero.
func (v Vec) HasZero() bool {
	for _, x := range v {
		if x == 0 {
			return true
		}
	}
	return false
}

// HasNaNInf reports whether any component is NaN or ±Inf.
func (v Vec) HasNaNInf() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// Within reports whether lo[i] <= v[i] <= hi[i] for every i (inclusive box
// membership). Panics if the lengths differ.
func (v Vec) Within(lo, hi Vec) bool {
	if len(lo) != len(v) || len(hi) != len(v) {
		panic("vecn: Within: length mismatch")
	}
	for i, x := range v {
		if x < lo[i] || x > hi[i] {
			return false
		}
	}
	return true
}

// AllPositive reports whether every component is strictly greater than zero.
func (v Vec) AllPositive() bool {
	for _, x := range v {
		if x <= 0 {
			return false
		}
	}
	return true
}
