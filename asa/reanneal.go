// Package asa - reannealing: trigger decision, probe generation, sensitivity
// estimation and schedule recalibration.
package asa

import (
	"math"

	"github.com/katalvlaran/anneal/vecn"
)

// acceptedVsGenerated returns accepted/(improved+worse) since the last
// reannealing. Step order guarantees at least one acceptance check has run
// before this is consulted, so the denominator is never zero.
func (a *Annealer) acceptedVsGenerated() float64 {
	return float64(a.stats.Accepted) / float64(a.stats.Improved+a.stats.Worse)
}

// reannealTest decides whether to start a reannealing and, if so, prepares
// the probe set the caller must evaluate.
//
// A reannealing triggers when either condition fails:
//   - fewer than ReannealAfterSteps steps since the last one, and
//   - the acceptance ratio is still at or above AccGenReannealRatio.
//
// So a reannealing is forced on the step cadence regardless of the ratio,
// and early whenever acceptance has gone cold.
//
// Each probe is drawn from the current point with forced change: every
// coordinate must differ from x, otherwise the sensitivity estimate would
// divide by a zero displacement. Probe generation can fail with
// ErrDegenerateBounds.
//
// Complexity: O(D·PartialsSamples) when triggered, O(1) otherwise.
func (a *Annealer) reannealTest() (bool, error) {
	if a.kr < a.opts.ReannealAfterSteps &&
		a.acceptedVsGenerated() >= a.opts.AccGenReannealRatio {
		return false, nil
	}

	a.xSet = make([]vecn.Vec, a.opts.PartialsSamples)
	a.fXSet = make([]float64, a.opts.PartialsSamples)
	for i := range a.xSet {
		probe, err := a.generateParameter(a.x, true)
		if err != nil {
			return false, err
		}
		a.xSet[i] = probe
	}
	a.probesSupplied = false

	if a.opts.Trace != nil {
		a.opts.Trace("asa: reannealing at k=%d (k_r=%d, ratio=%v)", a.k, a.kr, a.acceptedVsGenerated())
	}
	return true, nil
}

// completeReanneal recalibrates the schedule from the caller-supplied probe
// objectives.
//
// Sensitivity estimate, elementwise over dimensions and averaged over the
// probe set:
//
//	partials = mean_i( (f_set[i] - f_x) / (x_set[i] - x) )
//
// Forced-change probe generation guarantees every coordinate of every probe
// displaces x, so a zero denominator can only come from floating-point
// underflow of the displacement; that flows into the NaN/Inf and has-zero
// handling below rather than being guarded per coordinate.
//
// Outcomes:
//   - partials contains NaN/Inf ⇒ ErrNonFinitePartials (fatal: the schedule
//     cannot be recalibrated).
//   - partials has an exactly-zero component ⇒ no information; statistics
//     reset, schedule untouched.
//   - otherwise s = -(rangeMax-rangeMin)·partials and temperatures rescale
//     by max(s)/s, cooling sensitive dimensions harder relative to the least
//     sensitive one. If every rescaled temperature is positive, the schedule
//     time is recomputed as
//
//     k = round( mean( (log(temp_0/temp_re) / c)^D ) )
//
//     preserving the reduction order (elementwise log and divide, then
//     power, then mean, then round) — it is numerically significant for
//     reproducibility. A negative rescaled mean clamps to k = 0. A
//     non-positive rescaled temperature leaves k and temp unchanged.
//
// The acceptance counters and the steps-since-reanneal and best-repeat
// counters always reset, whichever path is taken.
//
// Complexity: O(D·PartialsSamples).
func (a *Annealer) completeReanneal() error {
	acc := vecn.New(a.d)
	for i, probe := range a.xSet {
		// (f_set[i] - f_x) / (probe - x), elementwise over dimensions.
		acc = acc.Add(probe.Sub(a.x).Recip().Scale(a.fXSet[i] - a.fX))
	}
	partials := acc.Scale(1 / float64(len(a.xSet)))

	if partials.HasNaNInf() {
		return ErrNonFinitePartials
	}
	if partials.HasZero() {
		// All probe objectives matched f_x in some dimension: nothing to learn.
		a.resetStats()
		a.probesSupplied = false
		return nil
	}

	s := a.rdelta.Mul(partials).Scale(-1)
	tempRe := a.temp.Mul(s.Recip().Scale(s.Max()))

	if tempRe.AllPositive() {
		kre := math.Round(a.temp0.Div(tempRe).Log().Div(a.c).PowConst(float64(a.d)).Mean())
		if kre < 0 {
			kre = 0
		}
		if a.opts.Trace != nil {
			a.opts.Trace("asa: reanneal k %d -> %d, temp %v -> %v", a.k, int(kre), a.temp, tempRe)
		}
		a.k = int(kre)
		a.temp = tempRe
	} else if a.opts.Trace != nil {
		a.opts.Trace("asa: reanneal skipped, rescaled temperature not positive")
	}

	a.resetStats()
	a.probesSupplied = false
	return nil
}

// resetStats clears the acceptance counters, the steps-since-reanneal count
// and the best-repeat count. Called exactly once per completed reannealing.
func (a *Annealer) resetStats() {
	a.stats = Stats{}
	a.kr = 0
	a.bestRepeats = 0
}
