// Package vecn provides the fixed-length real-vector primitive used by the
// adaptive simulated annealing core.
//
// A Vec is a plain []float64 with value semantics for every operation:
// arithmetic methods allocate and return a fresh Vec, never mutating the
// receiver or arguments. This keeps the annealing formulas readable and makes
// aliasing bugs impossible at the cost of small, bounded allocations (the
// optimizer works on vectors of dimension D, typically single digits).
//
// Operation set:
//
//   - Elementwise arithmetic: Add, Sub, Mul, Div, plus scalar broadcasts
//     AddConst and Scale.
//   - Elementwise maps: Abs, Exp, Log, Recip, Signum, Pow (vector exponent),
//     PowConst (scalar exponent).
//   - Reductions: Max, Min, Sum, Mean.
//   - Predicates: HasZero, HasNaNInf, Within (inclusive box membership).
//
// Contracts:
//
//   - Binary operations require equal lengths and panic on mismatch. This is
//     the gonum/floats contract; length mismatch is a programmer error, not
//     a runtime condition to branch on.
//   - Reductions require a non-empty vector (gonum panics on empty Max/Min).
//
// Where gonum.org/v1/gonum/floats provides a kernel (Add, Sub, Mul, Div,
// AddConst, Scale, Max, Min, Sum) it is used directly; the remaining maps and
// predicates are tight hand loops with a fixed 0..n-1 order so results are
// deterministic across platforms.
package vecn
