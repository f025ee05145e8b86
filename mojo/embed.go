// SPDX-License-Identifier: MIT
//
// Package mojo - lag embedding.
//
// The ℓ-lagged embedding pairs each observation with its ℓ-step successor:
//
//	Z_t = (x_t, x_{t+ℓ}) ∈ ℝ^{2p},  t = 0 … n−ℓ−1.
//
// Kernel evaluations over Z capture changes in the joint distribution of
// (x_t, x_{t+ℓ}); with ℓ = 0 the embedding doubles the marginal vector and
// the statistic targets marginal changes only.
package mojo

import "github.com/cran/CptNonPar/series"

// laggedSeries is the embedded sample, stored as one flat row-major block
// so that row views need no per-call allocation.
type laggedSeries struct {
	n    int       // number of embedded rows, n = x.Len() − lag
	dim  int       // row width, dim = 2·x.Dim()
	data []float64 // row-major payload, len = n·dim
}

// embedSeries builds the lag-embedded sample from x. Geometry must already
// be validated: 0 ≤ lag < x.Len().
//
// Complexity: O((n−lag)·p) time and memory.
func embedSeries(x *series.Series, lag int) *laggedSeries {
	var (
		p   = x.Dim()       // original dimension
		n   = x.Len() - lag // embedded length
		dim = 2 * p         // embedded dimension
	)

	z := &laggedSeries{
		n:    n,
		dim:  dim,
		data: make([]float64, n*dim),
	}

	var t int
	for t = 0; t < n; t++ {
		dst := z.data[t*dim : (t+1)*dim]
		copy(dst[:p], x.Row(t))
		copy(dst[p:], x.Row(t+lag))
	}

	return z
}

// row returns a borrowed view of embedded row t. The slice aliases internal
// storage and must not be mutated or retained past the next embedding.
func (z *laggedSeries) row(t int) []float64 {
	return z.data[t*z.dim : (t+1)*z.dim]
}

// rowViews returns all embedded rows as borrowed views, in order. Used to
// hand the sample to the data-driven scale heuristic without copying.
func (z *laggedSeries) rowViews() [][]float64 {
	views := make([][]float64, z.n)
	for t := range views {
		views[t] = z.row(t)
	}

	return views
}
