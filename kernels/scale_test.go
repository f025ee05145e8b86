package kernels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cran/CptNonPar/kernels"
)

// TestDataDrivenScale_MedianSmall pins the heuristic on inputs whose
// pairwise distances are easy to enumerate by hand.
func TestDataDrivenScale_MedianSmall(t *testing.T) {
	// Univariate points 0, 1, 3 → distances {1, 2, 3} → median 2, mean 2.
	pts := [][]float64{{0}, {1}, {3}}

	med, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, med, 1e-12, "median of {1,2,3}")

	mean, err := kernels.DataDrivenScale(pts, true)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mean, 1e-12, "mean of {1,2,3}")
}

// TestDataDrivenScale_EvenCount uses an even pair count whose two middle
// order statistics coincide, so the median is convention-free.
func TestDataDrivenScale_EvenCount(t *testing.T) {
	// Points 0, 1, 2, 4 → distances {1, 2, 4, 1, 3, 2} → sorted {1,1,2,2,3,4}.
	pts := [][]float64{{0}, {1}, {2}, {4}}

	med, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, med, 1e-12)
}

// TestDataDrivenScale_Multivariate checks the Euclidean pair distance on a
// classic 3-4-5 pair.
func TestDataDrivenScale_Multivariate(t *testing.T) {
	pts := [][]float64{{0, 0}, {3, 4}}

	got, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)
}

// TestDataDrivenScale_Degenerate verifies the unit fallback on constant
// input, where every pairwise distance is zero.
func TestDataDrivenScale_Degenerate(t *testing.T) {
	pts := [][]float64{{7, 7}, {7, 7}, {7, 7}}

	got, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "degenerate input falls back to unit scale")
}

// TestDataDrivenScale_TooFewPoints verifies the sentinel on undersized input.
func TestDataDrivenScale_TooFewPoints(t *testing.T) {
	_, err := kernels.DataDrivenScale([][]float64{{1}}, false)
	assert.ErrorIs(t, err, kernels.ErrTooFewPoints)

	_, err = kernels.DataDrivenScale(nil, true)
	assert.ErrorIs(t, err, kernels.ErrTooFewPoints)
}

// TestDataDrivenScale_StrideDeterminism runs the heuristic twice on an
// input large enough to trigger pair subsampling and demands identical
// results (the stride is fixed, never random).
func TestDataDrivenScale_StrideDeterminism(t *testing.T) {
	// 1000 points → 499500 pairs, above the sampling budget.
	pts := make([][]float64, 1000)
	for i := range pts {
		pts[i] = []float64{float64(i), float64(i % 7)}
	}

	first, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)
	second, err := kernels.DataDrivenScale(pts, false)
	require.NoError(t, err)

	assert.Equal(t, first, second, "subsampled heuristic must be deterministic")
	assert.Greater(t, first, 0.0, "spread input yields a positive scale")
}
