// Package asa - the Metropolis acceptance test and best-point bookkeeping.
package asa

import "math"

// machineEps is the double-precision machine epsilon, added to the mean
// acceptance temperature so the Metropolis exponent never divides by zero.
const machineEps = 0x1p-52

// betterThan compares two objective values under the configured direction:
// strictly smaller wins downhill, strictly larger wins uphill.
func (a *Annealer) betterThan(fa, fb float64) bool {
	if a.opts.Downhill {
		return fa < fb
	}
	return fa > fb
}

// acceptanceCheck decides whether the candidate replaces the current point
// and updates every statistic that depends on that decision.
//
// The acceptance probability is Metropolis-style on the acceptance
// temperature:
//
//	p = exp(-Δ / (ε + mean(temp_cost)))
//
// where Δ = f_cand - f_cur under minimization and its negation under
// maximization, so in both directions an improving candidate makes the
// exponent positive, p > 1, and acceptance certain, while a worsening
// candidate is accepted with probability p. The draw u is consumed on every
// call so a run's random stream depends only on the step sequence, never on
// the accept/reject outcomes.
//
// On acceptance: the candidate becomes the current point, is appended to the
// history, the best repeat counter advances on an exact tie with the best
// objective, and a strictly better candidate (direction-aware) resets the
// repeat counter and becomes the new best. On rejection only the
// improved/worse counters change.
//
// Complexity: O(D).
func (a *Annealer) acceptanceCheck() {
	better := a.betterThan(a.fXCand, a.fX)
	if better {
		a.stats.Improved++
	} else {
		a.stats.Worse++
	}

	delta := a.fXCand - a.fX
	if !a.opts.Downhill {
		delta = -delta
	}
	p := math.Exp(-delta / (machineEps + a.tempCost.Mean()))
	u := a.rng.Float64()
	accepted := p > u

	if a.opts.Trace != nil {
		a.opts.Trace("asa: k=%d cand=%v p=%v accepted=%v", a.k, a.fXCand, p, accepted)
	}
	if !accepted {
		return
	}

	if !better {
		a.stats.WorseAccepted++
	}

	a.x = a.xCand.Clone()
	a.fX = a.fXCand
	a.paramHist = append(a.paramHist, a.x.Clone())
	a.fParamHist = append(a.fParamHist, a.fX)

	// An exact tie with the best objective advances the stopping rule.
	if a.fXCand == a.fXBest {
		a.bestRepeats++
	}
	if a.betterThan(a.fXCand, a.fXBest) {
		a.bestRepeats = 0
		a.xBest = a.xCand.Clone()
		a.fXBest = a.fXCand
	}

	a.stats.Accepted++
}
