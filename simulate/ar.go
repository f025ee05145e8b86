// SPDX-License-Identifier: MIT
// Package: CptNonPar/simulate
//
// ar.go — deterministic piecewise-stationary AR(1) generators.
//
// Purpose (single responsibility):
//   - Provide reproducible test signals with known change points for the
//     detector's tests, examples and benchmarks.
//   - Change types covered: mean shifts (Segment.Mean), scale shifts
//     (Segment.Scale) and, via the phi knob across calls, autocorrelation
//     shifts at constant marginal law.
//
// Contract:
//   - AR1(phi, segments, seed) returns Σ Length observations, or nil on
//     invalid input. No panics, no global state.
//   - Strict determinism per (phi, segments, seed, dim): one PCG stream,
//     consumed in a fixed order.
//   - O(n) time and memory per coordinate.

package simulate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// -----------------------------------------------------------------------------
// File-local constants.
// -----------------------------------------------------------------------------

// simulateStream is the fixed second PCG seed word, so a caller seed fully
// determines the stream.
const simulateStream uint64 = 0x9e3779b97f4a7c15

// Segment describes one homogeneous stretch of the generated series.
type Segment struct {
	Length int     // number of observations, ≥ 1
	Mean   float64 // level added on top of the AR(1) noise, finite
	Scale  float64 // innovation standard deviation, > 0
}

// AR1 generates a univariate piecewise-stationary AR(1) series
//
//	x_t = Mean(t) + u_t,  u_t = phi·u_{t−1} + Scale(t)·ε_t,  ε_t ~ N(0,1),
//
// where Mean(t) and Scale(t) are constant within each segment. The noise
// process starts from its stationary law, u_0 = Scale(1)·ε_0/√(1−phi²), so
// the first segment carries no burn-in transient.
//
// Validation:
//   - |phi| ≥ 1 or phi non-finite ⇒ nil.
//   - No segments, Length < 1, Scale ≤ 0 or non-finite Mean ⇒ nil.
//
// Complexity: O(n) time and memory, n = Σ Length.
func AR1(phi float64, segments []Segment, seed int64) []float64 {
	cols := MultivariateAR1(phi, 1, segments, seed)
	if cols == nil {
		return nil
	}

	out := make([]float64, len(cols))
	for t := range cols {
		out[t] = cols[t][0]
	}

	return out
}

// MultivariateAR1 generates dim independent AR(1) coordinates sharing one
// phi and one segment profile, returned row-major: out[t][j] is coordinate
// j at time t. Draws interleave coordinate-first within each time step, so
// the univariate generator is exactly the dim=1 column.
//
// Validation: dim < 1 ⇒ nil, plus every AR1 rule.
//
// Complexity: O(n·dim) time and memory.
func MultivariateAR1(phi float64, dim int, segments []Segment, seed int64) [][]float64 {
	// Stage 1: validate before touching the RNG.
	if dim < 1 || !(math.Abs(phi) < 1) {
		return nil
	}
	if len(segments) == 0 {
		return nil
	}
	n := 0
	for _, seg := range segments {
		if seg.Length < 1 || !(seg.Scale > 0) || math.IsInf(seg.Scale, 0) {
			return nil
		}
		if math.IsNaN(seg.Mean) || math.IsInf(seg.Mean, 0) {
			return nil
		}
		n += seg.Length
	}

	// Stage 2: one deterministic stream for the whole series.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(uint64(seed), simulateStream)}

	var (
		out        = make([][]float64, n)
		u          = make([]float64, dim) // AR(1) noise state per coordinate
		stationary = 1 / math.Sqrt(1-phi*phi)
		t          int // global time index
	)
	for segIdx, seg := range segments {
		for i := 0; i < seg.Length; i++ {
			row := make([]float64, dim)
			for j := 0; j < dim; j++ {
				if segIdx == 0 && i == 0 {
					// Stationary start for the first segment's parameters.
					u[j] = seg.Scale * normal.Rand() * stationary
				} else {
					u[j] = phi*u[j] + seg.Scale*normal.Rand()
				}
				row[j] = seg.Mean + u[j]
			}
			out[t] = row
			t++
		}
	}

	return out
}
