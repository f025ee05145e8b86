// SPDX-License-Identifier: MIT
//
// Package mojo - dependent multiplier bootstrap calibration.
//
// The detector threshold is the (1−α) empirical quantile of R independent
// replicates of max_k √G·|D*(k)|, where D* is the MOSUM statistic rescanned
// with dependent Gaussian multiplier weights
//
//	W_t = (ξ_t + ξ_{t+1} + … + ξ_{t+m−1}) / √m,  ξ_j ~ N(0,1) i.i.d.
//
// The moving-sum window m grows with the sample (default ⌈1.5·n^{1/3}⌋) so
// the multipliers mimic the serial dependence of the data. Each replicate
// reuses the precomputed kernel band, so one replicate costs the same
// O(n·G) as the plain scan.
//
// With MeanSubtract set, every block sum is centered by its unit-weight
// block mean before aggregation. Centering removes the deterministic shift
// the statistic carries around true change points, keeping the replicate
// maxima a null-distribution proxy even when the data do contain changes.
package mojo

import (
	"fmt"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// bootstrapThreshold runs the multiplier bootstrap and returns the
// calibrated threshold for one (bandwidth, lag) scan. plain must be the
// unit-weight block sums of the same band, and originalLen the length of
// the series before lag embedding (the dependence window is tied to the
// observed sample, not the embedded one).
//
// Complexity: O(Replications·n·G) time spread over Workers goroutines.
func bootstrapThreshold(b *kernelBand, plain *blockSums, originalLen, lag int, opts Options) (float64, error) {
	var (
		m       = bootDependenceLength(originalLen, opts.BootDependence)
		workers = opts.Workers
		maxima  = make([]float64, opts.Replications)
	)
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Each replicate writes its own slot, so the only synchronization
	// needed is the final Wait.
	var grp errgroup.Group
	grp.SetLimit(workers)
	for r := 0; r < opts.Replications; r++ {
		grp.Go(func() error {
			maxima[r] = replicateMax(b, plain, m, lag, r, opts)
			if math.IsNaN(maxima[r]) || math.IsInf(maxima[r], 0) {
				return fmt.Errorf("%w: replicate %d is not finite", ErrCalibrationFailed, r)
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	slices.Sort(maxima)

	return stat.Quantile(1-opts.Alpha, stat.Empirical, maxima, nil), nil
}

// replicateMax computes max_k √g·|D*(k)| for a single bootstrap replicate.
// A non-finite result is reported as NaN and turned into an error by the
// caller.
func replicateMax(b *kernelBand, plain *blockSums, m, lag, replicate int, opts Options) float64 {
	var (
		n      = b.n
		g      = plain.g
		normal = distuv.Normal{Mu: 0, Sigma: 1, Src: replicateSource(opts.Seed, lag, replicate)}
	)

	// Stage 1: i.i.d. Gaussian draws, then dependent multipliers as
	// normalized moving sums of m consecutive draws. The sums are formed
	// directly per position; n·m stays small because m ~ n^{1/3}.
	xi := make([]float64, n+m-1)
	for i := range xi {
		xi[i] = normal.Rand()
	}
	var (
		w   = make([]float64, n)
		inv = 1 / math.Sqrt(float64(m))
		t   int
	)
	for t = 0; t < n; t++ {
		var sum float64
		for j := t; j < t+m; j++ {
			sum += xi[j]
		}
		w[t] = sum * inv
	}

	// Stage 2: weighted rescan plus per-window multiplier totals.
	wb := scanBlocks(b, g, w)
	prefix := make([]float64, n+1)
	for t = 0; t < n; t++ {
		prefix[t+1] = prefix[t] + w[t]
	}

	// Stage 3: aggregate, center when configured, track the maximum.
	var (
		gg    = float64(g) * float64(g)
		sqrtG = math.Sqrt(float64(g))
		best  float64
	)
	for i := range wb.ll {
		d := wb.ll[i] + wb.rr[i] - 2*wb.lr[i]
		if opts.MeanSubtract {
			// Σ W_s·W_t·(h − μ_block) = Σ W_s·W_t·h − μ_block·S_L·S_R,
			// with S² on the diagonal blocks; μ_block is the unit-weight
			// block mean, block sum / g².
			k := g + i
			sl := prefix[k] - prefix[k-g]
			sr := prefix[k+g] - prefix[k]
			d -= (sl*sl*plain.ll[i] + sr*sr*plain.rr[i] - 2*sl*sr*plain.lr[i]) / gg
		}
		v := sqrtG * math.Abs(d) / gg
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN()
		}
		if v > best {
			best = v
		}
	}

	return best
}
