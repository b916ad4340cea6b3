// Package asa - convenience drivers over the step protocol.
//
// Solve runs the call-and-response loop for a plain objective function;
// SolvePortfolio runs several independent restarts in parallel and keeps the
// best outcome. Both are thin: everything algorithmic lives in the Annealer.
package asa

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Objective evaluates a parameter vector. Implementations must be
// deterministic enough that re-evaluating the same point is meaningless to
// retry; the annealer evaluates each requested point exactly once.
type Objective func(x []float64) float64

// Result is the outcome of a driver run.
type Result struct {
	// X is the best accepted point; F its objective value.
	X []float64
	F float64

	// Steps is the number of protocol steps taken; Accepted the number of
	// accepted points (equal to the history length).
	Steps    uint
	Accepted int

	// History holds every accepted point and its objective, in acceptance
	// order.
	History  [][]float64
	FHistory []float64
}

// Solve runs the full annealing protocol for obj from initial over ranges,
// until the stopping rule fires or Options.MaxSteps protocol steps have run.
//
// Contract: as New (dimension, range and bounds validation). Errors from the
// step protocol (e.g. ErrDegenerateBounds, ErrNonFinitePartials) are
// returned as-is. Hitting MaxSteps is not an error: the best point found is
// returned.
//
// During a reannealing request Solve evaluates both the probe set and the
// pending candidate, so acceptance after the reannealing always sees a fresh
// objective value.
//
// Complexity: O(MaxSteps · (D + cost of obj)) worst case.
func Solve(obj Objective, initial []float64, ranges [][2]float64, opts ...Option) (Result, error) {
	return solve(context.Background(), obj, initial, ranges, opts...)
}

// solve is the context-aware driver loop shared by Solve and SolvePortfolio.
func solve(ctx context.Context, obj Objective, initial []float64, ranges [][2]float64, opts ...Option) (Result, error) {
	ann, err := New(initial, ranges, opts...)
	if err != nil {
		return Result{}, err
	}
	if err = ann.Init(); err != nil {
		return Result{}, err
	}

	maxSteps := uint(ann.opts.MaxSteps)
	for ann.State() != ReadyToStop && ann.Steps() < maxSteps {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		switch ann.State() {
		case NeedToCompute:
			_ = ann.SetCandidateObjective(obj(ann.Candidate()))
		case NeedToComputeSet:
			probes := ann.ProbeSet()
			fs := make([]float64, len(probes))
			for i, p := range probes {
				fs[i] = obj(p)
			}
			_ = ann.SetProbeObjectives(fs)
			_ = ann.SetCandidateObjective(obj(ann.Candidate()))
		}

		if err = ann.Step(); err != nil {
			return Result{}, err
		}
	}

	x, f := ann.Best()
	hist, fhist := ann.History()
	return Result{
		X:        x,
		F:        f,
		Steps:    ann.Steps(),
		Accepted: len(hist),
		History:  hist,
		FHistory: fhist,
	}, nil
}

// SolvePortfolio runs restarts independent annealing runs of obj in
// parallel, one goroutine per restart, and returns the best result.
//
// Each restart gets its own RNG stream derived from Options.Seed via a
// SplitMix64 mix, so the portfolio as a whole is deterministic for a fixed
// seed and restart count. Ties on the objective resolve to the lowest
// restart index.
//
// Contract:
//   - restarts >= 1, else ErrBadRestarts.
//   - an injected Uniform is rejected with ErrPortfolioUniform (it would be
//     shared across goroutines).
//   - ctx cancellation stops all runs and returns ctx's error.
//   - the first step-protocol error from any restart aborts the portfolio.
//
// Complexity: one Solve per restart, run concurrently.
func SolvePortfolio(ctx context.Context, obj Objective, initial []float64, ranges [][2]float64, restarts int, opts ...Option) (Result, error) {
	if restarts < 1 {
		return Result{}, ErrBadRestarts
	}

	base := gatherOptions(opts...)
	if base.Uniform != nil {
		return Result{}, ErrPortfolioUniform
	}
	parent := base.Seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	results := make([]Result, restarts)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < restarts; i++ {
		stream := i
		g.Go(func() error {
			// Derived seed overrides whatever seed the shared opts carry.
			ropts := make([]Option, 0, len(opts)+1)
			ropts = append(ropts, opts...)
			ropts = append(ropts, WithSeed(deriveSeed(parent, uint64(stream))))

			res, err := solve(gctx, obj, initial, ranges, ropts...)
			if err != nil {
				return err
			}
			results[stream] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if (base.Downhill && r.F < best.F) || (!base.Downhill && r.F > best.F) {
			best = r
		}
	}
	return best, nil
}
