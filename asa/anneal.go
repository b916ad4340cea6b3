// Package asa - the Annealer state machine: construction, Init, Step and the
// client-facing accessors.
//
// Design principles:
//   - Encapsulated state: the protocol state is unexported and only the
//     documented entry points advance it; client code cannot force an
//     invalid transition.
//   - Deterministic: all randomness flows through the resolved Uniform.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf.
//   - Exclusive ownership: every slice handed out is a copy; every slice
//     taken in is copied. The annealer's vectors are never aliased.
package asa

import (
	"math"

	"github.com/katalvlaran/anneal/vecn"
)

// Annealer runs adaptive simulated annealing over a bounded D-dimensional
// box. Construct with New, call Init exactly once, then loop on Step,
// supplying objective values as State demands. Not safe for concurrent use.
type Annealer struct {
	opts Options
	rng  Uniform

	d int // dimensionality, fixed at construction

	// Search box [rangeMin, rangeMax], fixed at construction.
	rangeMin vecn.Vec
	rangeMax vecn.Vec
	rdelta   vecn.Vec // rangeMax - rangeMin
	rmeans   vecn.Vec // (rangeMax + rangeMin) / 2

	// Current, candidate and best points with their objectives.
	x      vecn.Vec
	xCand  vecn.Vec
	xBest  vecn.Vec
	fX     float64
	fXCand float64
	fXBest float64

	// Consecutive re-acceptances of fXBest; the stopping rule counts these.
	bestRepeats int

	// Reannealing probe set and its caller-supplied objectives.
	xSet  []vecn.Vec
	fXSet []float64

	// Schedule state. temp/temp0/tempF are the per-dimension generation
	// temperatures; tempCost/tempCost0 drive acceptance. m, n, c, cCost are
	// the derived Ingber constants (c and temp are rescaled on reanneal).
	temp      vecn.Vec
	temp0     vecn.Vec
	tempF     vecn.Vec // informational final temperatures
	tempCost  vecn.Vec
	tempCost0 vecn.Vec
	m         vecn.Vec
	n         vecn.Vec
	c         vecn.Vec
	cCost     vecn.Vec

	k     int  // schedule time; reanneal may move it in either direction
	kr    int  // steps since the last reanneal
	kf    int  // informational expected final k, exp(mean(n))
	steps uint // absolute count of completed Step calls

	stats Stats

	// Append-only log of accepted points; grows for the annealer's lifetime.
	paramHist  []vecn.Vec
	fParamHist []float64

	state          State
	initialized    bool
	candSupplied   bool
	probesSupplied bool
}

// New constructs an Annealer over the given initial point and per-dimension
// inclusive ranges.
//
// Contract:
//   - len(initial) >= 1, else ErrZeroDimension.
//   - len(ranges) == len(initial), else ErrDimensionMismatch.
//   - ranges[i][0] <= ranges[i][1], else ErrBadRange.
//   - initial[i] within its range, else ErrOutOfBounds.
//
// The annealer copies all inputs; the caller keeps ownership of its slices.
// On success the state is NeedToInit.
//
// Complexity: O(D).
func New(initial []float64, ranges [][2]float64, opts ...Option) (*Annealer, error) {
	d := len(initial)
	if d == 0 {
		return nil, ErrZeroDimension
	}
	if len(ranges) != d {
		return nil, ErrDimensionMismatch
	}

	a := &Annealer{
		opts:     gatherOptions(opts...),
		d:        d,
		rangeMin: vecn.New(d),
		rangeMax: vecn.New(d),
	}
	a.rng = uniformFor(a.opts)

	for i, r := range ranges {
		if r[0] > r[1] {
			return nil, ErrBadRange
		}
		if initial[i] < r[0] || initial[i] > r[1] {
			return nil, ErrOutOfBounds
		}
		a.rangeMin[i] = r[0]
		a.rangeMax[i] = r[1]
	}
	a.rdelta = a.rangeMax.Sub(a.rangeMin)
	a.rmeans = a.rangeMax.Add(a.rangeMin).Scale(0.5)

	init := vecn.Of(initial...)
	a.x = init.Clone()
	a.xCand = init.Clone()
	a.xBest = init.Clone()

	a.k = 1
	a.state = NeedToInit
	return a, nil
}

// Init derives the annealing schedule from the configured scales and arms
// the protocol. Must be called exactly once; returns ErrAlreadyInitialized
// on a second call.
//
// Derivations (per dimension, D = dimensionality):
//
//	m         = -log(TemperatureRatioScale)
//	n         =  log(TemperatureAnnealScale)
//	c         =  m · exp(-n/D)
//	c_cost    =  c · CostParameterScaleRatio
//	temp_cost =  temp_cost_0 = c_cost
//	temp      =  temp_0 = 1
//	temp_f    =  temp_0 · exp(-m)          (informational)
//	k_f       =  exp(mean(n))              (informational)
//
// The best/current/candidate objectives are seeded with +Inf (downhill) or
// -Inf (uphill) so the first supplied candidate always improves.
//
// On success the state is NeedToCompute: evaluate the objective at
// Candidate (the initial point) and call SetCandidateObjective.
//
// Complexity: O(D).
func (a *Annealer) Init() error {
	if a.initialized {
		return ErrAlreadyInitialized
	}
	a.initialized = true

	sentinel := math.Inf(1)
	if !a.opts.Downhill {
		sentinel = math.Inf(-1)
	}
	a.fXBest = sentinel
	a.fX = sentinel
	a.fXCand = sentinel

	a.temp0 = vecn.Full(a.d, 1)
	a.temp = vecn.Full(a.d, 1)

	a.m = vecn.Full(a.d, -math.Log(a.opts.TemperatureRatioScale))
	a.n = vecn.Full(a.d, math.Log(a.opts.TemperatureAnnealScale))

	// Informational only: the expected end of the schedule.
	a.tempF = a.temp0.Mul(a.m.Scale(-1).Exp())
	a.kf = int(math.Exp(a.n.Mean()))

	a.c = a.m.Mul(a.n.Scale(-1 / float64(a.d)).Exp())
	a.cCost = a.c.Scale(a.opts.CostParameterScaleRatio)
	a.tempCost0 = a.cCost.Clone()
	a.tempCost = a.cCost.Clone()

	if a.opts.Trace != nil {
		a.opts.Trace("asa: init D=%d expected final k=%d final temp=%v", a.d, a.kf, a.tempF)
	}

	a.state = NeedToCompute
	return nil
}

// Step advances the algorithm by one protocol step.
//
// Ordering within a step:
//  1. If the state is NeedToComputeSet, finish the pending reannealing from
//     the supplied probe objectives (ErrObjectiveMissing if they were not
//     supplied; ErrNonFinitePartials on a degenerate sensitivity estimate).
//  2. Stop check: BestRepeatMax consecutive best repeats ⇒ ReadyToStop,
//     with no further mutation.
//  3. Cooling schedule update.
//  4. Acceptance check on the supplied candidate objective.
//  5. Generate the next candidate (ErrDegenerateBounds if the retry budget
//     is exhausted).
//  6. Advance schedule time, then decide whether to trigger a reannealing;
//     the state becomes NeedToComputeSet (reanneal) or NeedToCompute.
//
// Errors: ErrNotInitialized before Init, ErrBadState after ReadyToStop,
// ErrObjectiveMissing when in NeedToCompute without a supplied candidate
// objective, plus the step-body errors above. A failed precondition leaves
// the annealer unchanged.
//
// Complexity: O(D) per step plus O(D·PartialsSamples) when reannealing.
func (a *Annealer) Step() error {
	switch a.state {
	case NeedToInit:
		return ErrNotInitialized
	case ReadyToStop:
		return ErrBadState
	case NeedToCompute:
		if !a.candSupplied {
			return ErrObjectiveMissing
		}
	case NeedToComputeSet:
		if !a.probesSupplied {
			return ErrObjectiveMissing
		}
	}
	a.steps++

	if a.state == NeedToComputeSet {
		if err := a.completeReanneal(); err != nil {
			return err
		}
		a.state = NeedToStep
	}

	if a.bestRepeats >= a.opts.BestRepeatMax {
		a.state = ReadyToStop
		if a.opts.Trace != nil {
			a.opts.Trace("asa: stop after %d steps, best %v", a.steps, a.fXBest)
		}
		return nil
	}

	a.coolingSchedule()
	a.acceptanceCheck()

	cand, err := a.generateParameter(a.x, false)
	if err != nil {
		return err
	}
	a.xCand = cand
	a.candSupplied = false

	a.k++
	a.kr++

	trigger, err := a.reannealTest()
	if err != nil {
		return err
	}
	if trigger {
		a.state = NeedToComputeSet
	} else {
		a.state = NeedToCompute
	}
	return nil
}

// SetCandidateObjective records the objective value for the current
// candidate. Legal in NeedToCompute and, optionally, in NeedToComputeSet
// (refreshing the pending candidate's value alongside the probe set);
// any other state returns ErrBadState.
func (a *Annealer) SetCandidateObjective(f float64) error {
	if a.state != NeedToCompute && a.state != NeedToComputeSet {
		return ErrBadState
	}
	a.fXCand = f
	a.candSupplied = true
	return nil
}

// SetProbeObjectives records the objective values for the reannealing probe
// set, in ProbeSet order. Legal only in NeedToComputeSet; the length must
// equal the probe-set size (ErrDimensionMismatch otherwise).
func (a *Annealer) SetProbeObjectives(fs []float64) error {
	if a.state != NeedToComputeSet {
		return ErrBadState
	}
	if len(fs) != len(a.xSet) {
		return ErrDimensionMismatch
	}
	copy(a.fXSet, fs)
	a.probesSupplied = true
	return nil
}

// State reports what the annealer needs next.
func (a *Annealer) State() State { return a.state }

// Dim returns the dimensionality of the search space.
func (a *Annealer) Dim() int { return a.d }

// Candidate returns a copy of the parameter vector awaiting evaluation.
func (a *Annealer) Candidate() []float64 { return a.xCand.Clone() }

// ProbeSet returns copies of the reannealing probe points awaiting
// evaluation. Empty unless the state is NeedToComputeSet.
func (a *Annealer) ProbeSet() [][]float64 {
	if a.state != NeedToComputeSet {
		return nil
	}
	out := make([][]float64, len(a.xSet))
	for i, v := range a.xSet {
		out[i] = v.Clone()
	}
	return out
}

// Current returns a copy of the currently accepted point and its objective.
func (a *Annealer) Current() ([]float64, float64) { return a.x.Clone(), a.fX }

// Best returns a copy of the best accepted point and its objective.
func (a *Annealer) Best() ([]float64, float64) { return a.xBest.Clone(), a.fXBest }

// BestRepeats reports the consecutive re-acceptance count of the best
// objective (the stopping rule's progress).
func (a *Annealer) BestRepeats() int { return a.bestRepeats }

// Steps reports the absolute number of completed Step calls.
func (a *Annealer) Steps() uint { return a.steps }

// K reports the current schedule time. Reannealing may move it in either
// direction.
func (a *Annealer) K() int { return a.k }

// Temp returns a copy of the current per-dimension generation temperatures.
func (a *Annealer) Temp() []float64 { return a.temp.Clone() }

// Stats returns a snapshot of the acceptance counters since the last
// reannealing.
func (a *Annealer) Stats() Stats { return a.stats }

// History returns copies of the accepted points and their objectives, in
// acceptance order. Both slices always have equal length.
func (a *Annealer) History() ([][]float64, []float64) {
	xs := make([][]float64, len(a.paramHist))
	for i, v := range a.paramHist {
		xs[i] = v.Clone()
	}
	fs := make([]float64, len(a.fParamHist))
	copy(fs, a.fParamHist)
	return xs, fs
}
