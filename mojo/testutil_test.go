// Package mojo (white-box tests) - shared fixtures and a brute-force
// reference implementation of the block sums. The reference recomputes
// every window pair directly from kernel evaluations, so it exercises none
// of the band or incremental-update code it is used to verify.
package mojo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cran/CptNonPar/kernels"
	"github.com/cran/CptNonPar/series"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet seeds every RNG-dependent fixture.
	seedDet = int64(42)

	// epsScan bounds the drift between the incremental scan and the
	// brute-force reference over a few hundred O(g) updates.
	epsScan = 1e-9

	// stepLow/stepHigh are the two levels of the canonical step fixture.
	stepLow  = 0.0
	stepHigh = 4.0
)

// mustSeries wraps series.FromSlice for fixtures that are valid by
// construction.
func mustSeries(t *testing.T, values []float64) *series.Series {
	t.Helper()
	x, err := series.FromSlice(values)
	require.NoError(t, err)

	return x
}

// stepValues returns n1 copies of low followed by n2 copies of high.
func stepValues(n1, n2 int, low, high float64) []float64 {
	out := make([]float64, 0, n1+n2)
	for i := 0; i < n1; i++ {
		out = append(out, low)
	}
	for i := 0; i < n2; i++ {
		out = append(out, high)
	}

	return out
}

// statFrom wraps raw values as a statistic curve anchored at the first
// valid center g, the shape extraction receives in production.
func statFrom(values []float64, g int) []StatPoint {
	out := make([]StatPoint, len(values))
	for i, v := range values {
		out[i] = StatPoint{Index: g + i, Value: v}
	}

	return out
}

// bruteBlockSums recomputes the three weighted block sums for every center
// directly from kernel evaluations. O(n·g²), no band, no increments.
func bruteBlockSums(z *laggedSeries, kern kernels.Kernel, g int, w []float64) (ll, rr, lr []float64) {
	centers := z.n - 2*g
	ll = make([]float64, centers)
	rr = make([]float64, centers)
	lr = make([]float64, centers)

	for k := g; k < z.n-g; k++ {
		var sumLL, sumRR, sumLR float64
		for s := k - g; s < k; s++ {
			for t := k - g; t < k; t++ {
				sumLL += w[s] * w[t] * kern.Evaluate(z.row(s), z.row(t))
			}
			for t := k; t < k+g; t++ {
				sumLR += w[s] * w[t] * kern.Evaluate(z.row(s), z.row(t))
			}
		}
		for s := k; s < k+g; s++ {
			for t := k; t < k+g; t++ {
				sumRR += w[s] * w[t] * kern.Evaluate(z.row(s), z.row(t))
			}
		}
		ll[k-g], rr[k-g], lr[k-g] = sumLL, sumRR, sumLR
	}

	return ll, rr, lr
}
