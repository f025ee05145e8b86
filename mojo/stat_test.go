package mojo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cran/CptNonPar/kernels"
	"github.com/cran/CptNonPar/simulate"
)

// TestScanBlocks_MatchesBruteForce pits the incremental O(n·g) scan against
// the O(n·g²) direct recomputation across kernel families, lags, bandwidths
// and weight profiles.
func TestScanBlocks_MatchesBruteForce(t *testing.T) {
	x := mustSeries(t, simulate.AR1(0.3, []simulate.Segment{
		{Length: 30, Mean: 0, Scale: 1},
		{Length: 30, Mean: 2, Scale: 1.5},
	}, seedDet))

	kernelCases := []struct {
		family kernels.Family
		scale  float64
	}{
		{kernels.QuadExp, 1.0},
		{kernels.Gauss, 2.0},
		{kernels.Euclidean, 1.5},
		{kernels.Laplace, 0.8},
		{kernels.Sine, 1.2},
	}

	for _, kc := range kernelCases {
		for _, lag := range []int{0, 1} {
			for _, g := range []int{4, 9} {
				name := fmt.Sprintf("%s/lag=%d/g=%d", kc.family, lag, g)
				t.Run(name, func(t *testing.T) {
					kern, err := kernels.New(kc.family, kc.scale)
					require.NoError(t, err)

					z := embedSeries(x, lag)
					b := buildBand(z, kern, 2*g)

					// Unit weights and a smoothly varying profile.
					unit := onesVector(z.n)
					wavy := make([]float64, z.n)
					for i := range wavy {
						wavy[i] = 1 + 0.5*math.Sin(float64(i))
					}

					for _, w := range [][]float64{unit, wavy} {
						got := scanBlocks(b, g, w)
						ll, rr, lr := bruteBlockSums(z, kern, g, w)

						require.Len(t, got.ll, z.n-2*g)
						for i := range ll {
							assert.InDelta(t, ll[i], got.ll[i], epsScan, "ll at center %d", g+i)
							assert.InDelta(t, rr[i], got.rr[i], epsScan, "rr at center %d", g+i)
							assert.InDelta(t, lr[i], got.lr[i], epsScan, "lr at center %d", g+i)
						}
					}
				})
			}
		}
	}
}

func TestScanBlocks_SingleCenter(t *testing.T) {
	// n = 2g+1 leaves exactly one center; the slide loop must not step.
	x := mustSeries(t, stepValues(5, 4, stepLow, stepHigh))
	kern, err := kernels.New(kernels.Gauss, 1)
	require.NoError(t, err)

	z := embedSeries(x, 0)
	b := buildBand(z, kern, 8)
	got := scanBlocks(b, 4, onesVector(z.n))

	ll, rr, lr := bruteBlockSums(z, kern, 4, onesVector(z.n))
	require.Len(t, got.ll, 1)
	assert.InDelta(t, ll[0], got.ll[0], epsScan)
	assert.InDelta(t, rr[0], got.rr[0], epsScan)
	assert.InDelta(t, lr[0], got.lr[0], epsScan)
}

// TestStatistic_ConstantSeries checks the identical-windows edge: every
// kernel value is h(x,x) = 1, so all block sums coincide and the statistic
// vanishes identically, with no cancellation error.
func TestStatistic_ConstantSeries(t *testing.T) {
	x := mustSeries(t, stepValues(24, 0, 3.5, 0))
	kern, err := kernels.New(kernels.QuadExp, 1)
	require.NoError(t, err)

	z := embedSeries(x, 0)
	plain := scanBlocks(buildBand(z, kern, 10), 5, onesVector(z.n))
	curve := statisticFromBlocks(plain)

	require.Len(t, curve, 14)
	for _, p := range curve {
		assert.InDelta(t, 0, p.Value, 0, "center %d", p.Index)
	}
}

func TestStatisticFromBlocks_IndexingAndScaling(t *testing.T) {
	sums := &blockSums{g: 2, ll: []float64{8}, rr: []float64{8}, lr: []float64{2}}

	curve := statisticFromBlocks(sums)
	require.Len(t, curve, 1)
	assert.Equal(t, 2, curve[0].Index)
	// D = (8 + 8 − 2·2)/4 = 3, T = √2·3.
	assert.InDelta(t, 3*math.Sqrt2, curve[0].Value, 1e-12)
}

// TestStatistic_PeakAtStep verifies localization on a noiseless level
// shift: the maximum sits exactly at the first index of the new segment,
// and the curve is symmetric around it.
func TestStatistic_PeakAtStep(t *testing.T) {
	x := mustSeries(t, stepValues(40, 40, stepLow, stepHigh))
	kern, err := kernels.New(kernels.QuadExp, 1)
	require.NoError(t, err)

	z := embedSeries(x, 0)
	curve := statisticFromBlocks(scanBlocks(buildBand(z, kern, 20), 10, onesVector(z.n)))
	require.Len(t, curve, 60)

	best := 0
	for i := range curve {
		if curve[i].Value > curve[best].Value {
			best = i
		}
	}
	assert.Equal(t, 40, curve[best].Index)
	assert.InDelta(t, 6.220594374881085, curve[best].Value, 1e-9)
	assert.InDelta(t, curve[best-3].Value, curve[best+3].Value, 1e-9)
}
