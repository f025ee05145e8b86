// SPDX-License-Identifier: MIT
//
// Package mojo - banded kernel cache.
//
// Every scan and every bootstrap replicate reads kernel values h(Z_s, Z_t)
// for pairs at most 2·G apart (both indices always fall inside one pair of
// adjacent windows). Precomputing exactly that band makes the statistic and
// all replicates reuse one O(n·G) table instead of re-evaluating kernels,
// the same way a Sakoe-Chiba band restricts a DTW matrix to the useful
// diagonal strip.
package mojo

import "github.com/cran/CptNonPar/kernels"

// kernelBand caches h(Z_t, Z_{t+d}) for 0 ≤ d < width. Rows near the end
// are ragged: row t holds min(width, n−t) entries.
type kernelBand struct {
	n     int         // number of embedded rows
	width int         // band width, 2·bandwidth for the MOSUM scan
	vals  [][]float64 // vals[t][d] = h(Z_t, Z_{t+d})
}

// buildBand evaluates the kernel over the diagonal band of the embedded
// sample.
//
// Complexity: O(n·width·dim) time, O(n·width) memory.
func buildBand(z *laggedSeries, kern kernels.Kernel, width int) *kernelBand {
	b := &kernelBand{
		n:     z.n,
		width: width,
		vals:  make([][]float64, z.n),
	}

	var (
		t, d int       // band coordinates
		row  []float64 // left row view, hoisted out of the inner loop
	)
	for t = 0; t < z.n; t++ {
		w := width
		if rest := z.n - t; rest < w {
			w = rest
		}
		row = z.row(t)
		line := make([]float64, w)
		for d = 0; d < w; d++ {
			line[d] = kern.Evaluate(row, z.row(t+d))
		}
		b.vals[t] = line
	}

	return b
}

// at returns h(Z_s, Z_t) for any pair within the band. Callers guarantee
// |s−t| < width; the scan never leaves the strip.
func (b *kernelBand) at(s, t int) float64 {
	if s <= t {
		return b.vals[s][t-s]
	}

	return b.vals[t][s-t]
}
