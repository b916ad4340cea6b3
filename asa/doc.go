// Package asa implements Lester Ingber's Adaptive Simulated Annealing
// (ASA, also known as "very fast simulated re-annealing") for bounded
// continuous global optimization.
//
// Reference: Ingber, L. (1989). Very fast simulated re-annealing.
// Mathematical and Computer Modelling 12, 967-973.
//
// # Protocol
//
// The Annealer is a step-driven state machine: it never calls user code.
// Client code constructs an Annealer, calls Init once, then loops on Step,
// supplying objective values exactly when the state demands them:
//
//	ann, err := asa.New(initial, ranges)
//	if err != nil { ... }
//	if err = ann.Init(); err != nil { ... }
//	for ann.State() != asa.ReadyToStop {
//	    switch ann.State() {
//	    case asa.NeedToCompute:
//	        ann.SetCandidateObjective(f(ann.Candidate()))
//	    case asa.NeedToComputeSet:
//	        probes := ann.ProbeSet()
//	        fs := make([]float64, len(probes))
//	        for i, p := range probes {
//	            fs[i] = f(p)
//	        }
//	        _ = ann.SetProbeObjectives(fs)
//	        ann.SetCandidateObjective(f(ann.Candidate()))
//	    }
//	    if err = ann.Step(); err != nil { ... }
//	}
//	x, fx := ann.Best()
//
// When the extra control is not needed, Solve runs the loop above for a
// plain objective function, and SolvePortfolio runs several independent
// restarts in parallel and keeps the best outcome.
//
// # Algorithm outline
//
//  1. Per-dimension temperatures T_i(k) = T_i(0)·exp(-c_i·k^(1/D)) cool as
//     the step index k grows; an acceptance temperature cools with the
//     number of accepted points instead.
//  2. Candidates are drawn with Ingber's heavy-tailed generating function,
//     scaled by the current temperatures and rejected until they fall inside
//     the search box.
//  3. A Metropolis test on the acceptance temperature decides whether the
//     candidate replaces the current point.
//  4. Periodically (on a step cadence, or when the acceptance ratio drops)
//     the annealer asks for a probe set, estimates the objective's
//     sensitivity to each dimension, and reanneals: temperatures are
//     rescaled so insensitive dimensions stay hot, and the schedule time k
//     is recomputed to match.
//  5. The run stops once the best objective has repeated BestRepeatMax times.
//
// # Determinism
//
// All randomness flows through a seeded source (Options.Seed, seed 0 maps to
// a fixed default). A fixed seed reproduces every accept/reject decision
// bit-for-bit. WithUniform injects a custom source for scripted tests.
//
// # Concurrency
//
// An Annealer is not safe for concurrent use. Run parallel searches with one
// Annealer (and one random source) per goroutine; SolvePortfolio does this.
package asa
