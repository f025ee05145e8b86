// SPDX-License-Identifier: MIT
//
// Package mojo - single-scan detection entry point.
package mojo

import (
	"github.com/cran/CptNonPar/kernels"
	"github.com/cran/CptNonPar/series"
)

// Detect runs the NP-MOJO scan for one bandwidth and one lag: it embeds the
// series at the given lag, scans the MOSUM statistic of kernel block sums,
// calibrates (or accepts) a threshold, and extracts change point
// candidates.
//
// Parameters:
//   - x: the observed series, n observations of dimension p.
//   - bandwidth: the MOSUM window length G; the scan needs 2·G < n − lag.
//   - lag: the embedding lag ℓ ≥ 0. Lag 0 targets changes in the marginal
//     distribution, lag ℓ > 0 changes in the joint law of (x_t, x_{t+ℓ}).
//   - opts: tuning knobs; DefaultOptions() reproduces the reference setup.
//
// Returns the per-scan Result: the statistic curve, the threshold actually
// used, the frozen kernel scale, and the extracted candidates stamped with
// this scan's lag and bandwidth.
//
// Errors wrap the configuration and parameter sentinels from errors.go;
// a bootstrap replicate that degenerates reports ErrCalibrationFailed.
//
// Complexity: O(n·G·p) for the scan plus O(R·n·G) for bootstrap
// calibration with R replications.
func Detect(x *series.Series, bandwidth, lag int, opts Options) (*Result, error) {
	// Stage 1: validation, before any allocation.
	if err := validateDetect(x, bandwidth, lag, opts); err != nil {
		return nil, err
	}

	// Stage 2: lag embedding.
	z := embedSeries(x, lag)

	// Stage 3: freeze the kernel scale. The data-driven heuristic applies
	// to the characteristic-function kernels only; the euclidean kernel
	// reads KernelScale as its exponent.
	scale := opts.KernelScale
	if opts.DataDrivenScale && opts.Kernel != kernels.Euclidean {
		var err error
		if scale, err = kernels.DataDrivenScale(z.rowViews(), opts.ScaleUseMean); err != nil {
			return nil, err
		}
	}
	kern, err := kernels.New(opts.Kernel, scale)
	if err != nil {
		return nil, err
	}

	// Stage 4: kernel band, shared by the plain scan and every replicate.
	band := buildBand(z, kern, 2*bandwidth)

	// Stage 5: plain MOSUM scan with unit weights.
	plain := scanBlocks(band, bandwidth, onesVector(z.n))
	curve := statisticFromBlocks(plain)

	// Stage 6: threshold.
	threshold := opts.ThresholdValue
	if opts.ThresholdMode == ThresholdBootstrap {
		if threshold, err = bootstrapThreshold(band, plain, x.Len(), lag, opts); err != nil {
			return nil, err
		}
	}

	// Stage 7: extraction, stamped with this scan's coordinates.
	cands := extractCandidates(curve, threshold, bandwidth, opts.Criterion, opts.Eta, opts.Epsilon)
	for i := range cands {
		cands[i].Lag = lag
		cands[i].Bandwidth = bandwidth
	}

	return &Result{
		Bandwidth:   bandwidth,
		Lag:         lag,
		Candidates:  cands,
		Stat:        curve,
		Threshold:   threshold,
		KernelScale: scale,
		Config:      opts,
	}, nil
}
