package asa_test

import (
	"testing"

	"github.com/katalvlaran/anneal/asa"
)

// benchObjective is a cheap smooth bowl so the benchmark measures the
// annealer, not the objective.
func benchObjective(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

// benchmarkSolve runs the driver for a fixed step budget at dimension d.
func benchmarkSolve(b *testing.B, d, steps int) {
	initial := make([]float64, d)
	ranges := make([][2]float64, d)
	for i := range initial {
		initial[i] = 2
		ranges[i] = [2]float64{-4, 4}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := asa.Solve(benchObjective, initial, ranges,
			asa.WithSeed(int64(i)+1), // vary the stream, keep it seeded
			asa.WithMaxSteps(steps),
		)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_D1 measures 500 protocol steps in one dimension.
func BenchmarkSolve_D1(b *testing.B) { benchmarkSolve(b, 1, 500) }

// BenchmarkSolve_D8 measures 500 protocol steps in eight dimensions.
func BenchmarkSolve_D8(b *testing.B) { benchmarkSolve(b, 8, 500) }

// BenchmarkStep isolates the per-step cost of the raw protocol.
func BenchmarkStep(b *testing.B) {
	ann, err := asa.New([]float64{2, 2}, [][2]float64{{-4, 4}, {-4, 4}},
		asa.WithSeed(1),
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if err = ann.Init(); err != nil {
		b.Fatalf("Init failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		switch ann.State() {
		case asa.NeedToCompute:
			_ = ann.SetCandidateObjective(benchObjective(ann.Candidate()))
		case asa.NeedToComputeSet:
			probes := ann.ProbeSet()
			fs := make([]float64, len(probes))
			for j, p := range probes {
				fs[j] = benchObjective(p)
			}
			_ = ann.SetProbeObjectives(fs)
			_ = ann.SetCandidateObjective(benchObjective(ann.Candidate()))
		case asa.ReadyToStop:
			b.Fatal("unexpected stop during benchmark")
		}
		if err = ann.Step(); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}
