// Package anneal is a small, deterministic toolkit for adaptive simulated
// annealing — global optimization of bounded continuous functions.
//
// 🚀 What is anneal?
//
//	A focused, step-driven implementation of Lester Ingber's Adaptive
//	Simulated Annealing (ASA, "very fast simulated re-annealing"):
//		• asa.Annealer: the core state machine — you own the objective
//		  function, it owns the schedule, acceptance and reannealing
//		• asa.Solve: a one-call driver when you just want the extremum
//		• asa.SolvePortfolio: parallel multi-start with independent RNG streams
//		• vecn: the fixed-length real-vector kernels the algorithm runs on
//
// ✨ Why choose anneal?
//
//   - Call-and-response protocol – the library never calls your code; you
//     evaluate candidates when, where and how you like (batch, GPU, remote)
//   - Deterministic by policy – every random draw flows through a seeded
//     source; the same seed reproduces every accept/reject decision
//   - Per-dimension temperatures with sensitivity-driven reannealing
//   - Strict sentinel errors, no hidden logging, no global state
//
// Start with the asa package docs, or run the walkthroughs in examples/.
package anneal
