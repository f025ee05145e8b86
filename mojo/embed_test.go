package mojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cran/CptNonPar/series"
)

func TestEmbedSeries_UnivariateLag(t *testing.T) {
	x := mustSeries(t, []float64{0, 1, 2, 3, 4, 5})

	z := embedSeries(x, 2)
	require.Equal(t, 4, z.n)
	require.Equal(t, 2, z.dim)

	assert.Equal(t, []float64{0, 2}, z.row(0))
	assert.Equal(t, []float64{1, 3}, z.row(1))
	assert.Equal(t, []float64{3, 5}, z.row(3))
}

func TestEmbedSeries_LagZeroDoublesRow(t *testing.T) {
	x, err := series.New([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	z := embedSeries(x, 0)
	require.Equal(t, 3, z.n)
	require.Equal(t, 4, z.dim)
	assert.Equal(t, []float64{3, 4, 3, 4}, z.row(1))
}

func TestEmbedSeries_RowViewsShareStorage(t *testing.T) {
	x := mustSeries(t, []float64{7, 8, 9})

	z := embedSeries(x, 1)
	views := z.rowViews()
	require.Len(t, views, 2)
	assert.Equal(t, z.row(0), views[0])
	assert.Equal(t, z.row(1), views[1])

	// Views alias the embedding, not the input series.
	views[0][0] = -1
	assert.Equal(t, -1.0, z.row(0)[0])
	assert.Equal(t, 7.0, x.Row(0)[0])
}
