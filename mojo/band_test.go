package mojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cran/CptNonPar/kernels"
	"github.com/cran/CptNonPar/simulate"
)

func TestBuildBand_MatchesDirectEvaluation(t *testing.T) {
	x := mustSeries(t, simulate.AR1(0.4, []simulate.Segment{{Length: 30, Mean: 0, Scale: 1}}, seedDet))
	kern, err := kernels.New(kernels.Gauss, 1.5)
	require.NoError(t, err)

	z := embedSeries(x, 1)
	b := buildBand(z, kern, 8)

	require.Equal(t, z.n, b.n)
	for s := 0; s < z.n; s++ {
		for d := 0; d < 8 && s+d < z.n; d++ {
			assert.Equal(t, kern.Evaluate(z.row(s), z.row(s+d)), b.at(s, s+d),
				"band mismatch at (%d,%d)", s, s+d)
		}
	}
}

func TestBandAt_SymmetricLookup(t *testing.T) {
	x := mustSeries(t, simulate.AR1(0.2, []simulate.Segment{{Length: 20, Mean: 1, Scale: 2}}, seedDet))
	kern, err := kernels.New(kernels.Laplace, 0.7)
	require.NoError(t, err)

	b := buildBand(embedSeries(x, 0), kern, 6)
	for s := 0; s < b.n; s++ {
		for d := 1; d < 6 && s+d < b.n; d++ {
			assert.Equal(t, b.at(s, s+d), b.at(s+d, s))
		}
	}
}

func TestBuildBand_RaggedTail(t *testing.T) {
	x := mustSeries(t, stepValues(5, 5, stepLow, stepHigh))
	kern, err := kernels.New(kernels.QuadExp, 1)
	require.NoError(t, err)

	b := buildBand(embedSeries(x, 0), kern, 4)
	require.Len(t, b.vals, 10)
	assert.Len(t, b.vals[0], 4)
	assert.Len(t, b.vals[7], 3)
	assert.Len(t, b.vals[9], 1)
}
