// Package asa - candidate generation and the cooling schedule.
package asa

import (
	"math"

	"github.com/katalvlaran/anneal/vecn"
)

// drawVec fills a fresh D-vector with independent uniform [0,1) draws.
func (a *Annealer) drawVec() vecn.Vec {
	u := vecn.New(a.d)
	for i := range u {
		u[i] = a.rng.Float64()
	}
	return u
}

// generateParameter draws a candidate from xStart using Ingber's generating
// function at the current temperatures:
//
//	u    ~ U[0,1)^D
//	u2   = |2u - 1|
//	sign = signum(u - 1/2)
//	y    = sign · T · ((1/T + 1)^u2 - 1)
//
// The step y is heavy-tailed: most moves are small relative to T, but moves
// spanning the whole range remain possible, which is what lets ASA escape
// local extrema at low temperatures.
//
// Rejection sampling keeps only candidates inside [rangeMin, rangeMax]; with
// forceChange, candidates matching xStart in any coordinate are also
// rejected (the reannealing probes must displace every dimension). The loop
// is bounded by MaxGenAttempts; exhaustion returns ErrDegenerateBounds.
//
// Complexity: O(D) per attempt.
func (a *Annealer) generateParameter(xStart vecn.Vec, forceChange bool) (vecn.Vec, error) {
	for attempt := 0; attempt < a.opts.MaxGenAttempts; attempt++ {
		u := a.drawVec()
		u2 := u.Scale(2).AddConst(-1).Abs()
		sigu := u.AddConst(-0.5).Signum()
		y := sigu.Mul(a.temp).Mul(a.temp.Recip().AddConst(1).Pow(u2).AddConst(-1))

		xNew := xStart.Add(y)
		if !xNew.Within(a.rangeMin, a.rangeMax) {
			continue
		}
		if forceChange && xNew.Sub(xStart).HasZero() {
			continue
		}
		return xNew, nil
	}
	return nil, ErrDegenerateBounds
}

// coolingSchedule recomputes both temperature families for the current
// schedule time:
//
//	temp      = temp_0      · exp(-c      · k^(1/D))         (generation)
//	temp_cost = temp_cost_0 · exp(-c_cost · accepted^(1/D))  (acceptance)
//
// The generation temperature is driven by the step index k, the acceptance
// temperature by the accepted count, so a run that rejects heavily keeps a
// warm acceptance test while its proposals shrink.
//
// Complexity: O(D).
func (a *Annealer) coolingSchedule() {
	kRoot := math.Pow(float64(a.k), 1/float64(a.d))
	a.temp = a.temp0.Mul(a.c.Scale(-kRoot).Exp())

	accRoot := math.Pow(float64(a.stats.Accepted), 1/float64(a.d))
	a.tempCost = a.tempCost0.Mul(a.cCost.Scale(-accRoot).Exp())
}
