// Package asa - core types and sentinel errors.
//
// Errors follow the library convention: package-prefixed sentinels declared
// here, returned verbatim by the implementation. No fmt.Errorf wrapping where
// a sentinel suffices.
package asa

import "errors"

// Sentinel errors returned by the annealer.
var (
	// ErrZeroDimension indicates an empty initial parameter vector.
	ErrZeroDimension = errors.New("asa: initial parameters must have at least one dimension")

	// ErrDimensionMismatch indicates initial parameters and ranges (or a
	// supplied objective batch) disagree in length.
	ErrDimensionMismatch = errors.New("asa: dimension mismatch between parameters and ranges")

	// ErrBadRange indicates a range with min > max.
	ErrBadRange = errors.New("asa: range minimum exceeds maximum")

	// ErrOutOfBounds indicates an initial parameter outside its range.
	ErrOutOfBounds = errors.New("asa: initial parameters lie outside the given ranges")

	// ErrNotInitialized indicates Step was called before Init.
	ErrNotInitialized = errors.New("asa: Init must be called before Step")

	// ErrAlreadyInitialized indicates Init was called twice.
	ErrAlreadyInitialized = errors.New("asa: Init must be called exactly once")

	// ErrBadState indicates a call that the current protocol state forbids,
	// e.g. Step after ReadyToStop.
	ErrBadState = errors.New("asa: call not permitted in the current state")

	// ErrObjectiveMissing indicates Step was called while the state demanded
	// objective values the caller has not supplied.
	ErrObjectiveMissing = errors.New("asa: required objective values were not supplied")

	// ErrNonFinitePartials indicates the reannealing sensitivity estimate
	// contained NaN or Inf; the schedule cannot be recalibrated and the run
	// cannot safely continue.
	ErrNonFinitePartials = errors.New("asa: NaN or Inf in reannealing partials")

	// ErrDegenerateBounds indicates candidate generation exhausted its retry
	// budget; the search box is too tight for the current temperatures.
	ErrDegenerateBounds = errors.New("asa: could not generate an in-bounds candidate (degenerate bounds)")

	// ErrBadRestarts indicates SolvePortfolio was asked for fewer than one restart.
	ErrBadRestarts = errors.New("asa: portfolio restarts must be >= 1")

	// ErrPortfolioUniform indicates SolvePortfolio was configured with an
	// injected Uniform; restarts need independent seeded streams, and a
	// shared source would race across goroutines.
	ErrPortfolioUniform = errors.New("asa: SolvePortfolio requires seeded sources, not an injected Uniform")
)

// State tells client code what the annealer needs next.
//
//	NeedToInit       – call Init.
//	NeedToCompute    – evaluate the objective at Candidate, call
//	                   SetCandidateObjective, then Step.
//	NeedToComputeSet – evaluate the objective at every vector in ProbeSet,
//	                   call SetProbeObjectives, then Step.
//	NeedToStep       – call Step.
//	ReadyToStop      – terminal; read Best.
type State int

const (
	// Unknown is the zero value; a constructed Annealer never reports it.
	Unknown State = iota

	// NeedToInit means the Annealer awaits its single Init call.
	NeedToInit

	// NeedToStep means the next call should be Step.
	NeedToStep

	// NeedToCompute means the caller must supply the candidate's objective.
	NeedToCompute

	// NeedToComputeSet means the caller must supply objectives for the
	// reannealing probe set.
	NeedToComputeSet

	// ReadyToStop means the stopping rule fired; the run is over.
	ReadyToStop
)

// String implements fmt.Stringer for diagnostics and traces.
func (s State) String() string {
	switch s {
	case NeedToInit:
		return "NeedToInit"
	case NeedToStep:
		return "NeedToStep"
	case NeedToCompute:
		return "NeedToCompute"
	case NeedToComputeSet:
		return "NeedToComputeSet"
	case ReadyToStop:
		return "ReadyToStop"
	default:
		return "Unknown"
	}
}

// Stats is a snapshot of the acceptance counters. All four reset to zero
// when a reannealing completes.
type Stats struct {
	// Improved counts candidates strictly better than the current point.
	Improved uint
	// Worse counts candidates that were not improvements.
	Worse uint
	// WorseAccepted counts non-improving candidates the Metropolis test let through.
	WorseAccepted uint
	// Accepted counts all accepted candidates.
	Accepted uint
}

// Uniform is the random source consumed by the annealer: independent draws
// uniformly distributed in [0, 1). math/rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}
