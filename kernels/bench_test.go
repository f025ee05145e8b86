package kernels_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cran/CptNonPar/kernels"
)

// benchmarkEvaluate measures one family on pseudo-random d-dimensional pairs.
// The pair set is fixed ahead of the timer so only Evaluate is on the clock.
func benchmarkEvaluate(b *testing.B, family kernels.Family, scale float64, dim int) {
	kern, err := kernels.New(family, scale)
	if err != nil {
		b.Fatalf("New(%v, %v): %v", family, scale, err)
	}

	const pairs = 256
	rng := rand.New(rand.NewPCG(7, 11))
	xs := make([][]float64, pairs)
	ys := make([][]float64, pairs)
	for i := range xs {
		xs[i] = make([]float64, dim)
		ys[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			xs[i][j] = rng.NormFloat64()
			ys[i][j] = rng.NormFloat64()
		}
	}

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		p := i % pairs
		sink += kern.Evaluate(xs[p], ys[p])
	}
	_ = sink
}

func BenchmarkEvaluate_QuadExp_Dim2(b *testing.B)  { benchmarkEvaluate(b, kernels.QuadExp, 1, 2) }
func BenchmarkEvaluate_QuadExp_Dim10(b *testing.B) { benchmarkEvaluate(b, kernels.QuadExp, 1, 10) }
func BenchmarkEvaluate_Gauss_Dim2(b *testing.B)    { benchmarkEvaluate(b, kernels.Gauss, 1, 2) }
func BenchmarkEvaluate_Gauss_Dim10(b *testing.B)   { benchmarkEvaluate(b, kernels.Gauss, 1, 10) }
func BenchmarkEvaluate_Euclidean_Dim2(b *testing.B) {
	benchmarkEvaluate(b, kernels.Euclidean, 1, 2)
}
func BenchmarkEvaluate_Laplace_Dim2(b *testing.B) { benchmarkEvaluate(b, kernels.Laplace, 1, 2) }
func BenchmarkEvaluate_Sine_Dim2(b *testing.B)    { benchmarkEvaluate(b, kernels.Sine, 1, 2) }

// BenchmarkDataDrivenScale exercises the subsampled median heuristic at a
// size where the pair budget caps the work.
func BenchmarkDataDrivenScale(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 5))
	points := make([][]float64, 4096)
	for i := range points {
		points[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kernels.DataDrivenScale(points, false); err != nil {
			b.Fatalf("DataDrivenScale: %v", err)
		}
	}
}
