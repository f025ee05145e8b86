// SPDX-License-Identifier: MIT
//
// Package mojo - validation utilities shared by the detection entry points.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (enums, numeric ranges, bootstrap knobs).
//  2. Validate the input series and the (bandwidth, lag) geometry.
//  3. Validate/normalize manual threshold shapes for the multilag and
//     multiscale entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go, raised before any computation starts.
package mojo

import (
	"math"

	"github.com/cran/CptNonPar/kernels"
	"github.com/cran/CptNonPar/series"
)

// validateDetect verifies everything Detect needs, in priority order.
//
// Contract:
//   - x must be non-nil with at least one observation.
//   - lag ≥ 0 and 2·bandwidth < x.Len() − lag, so both windows fit.
//   - opts must pass validateOptionsStandalone; in manual mode the scalar
//     ThresholdValue must be usable.
//
// Complexity: O(1).
func validateDetect(x *series.Series, bandwidth, lag int, opts Options) error {
	// Stage 1: options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return err
	}

	// Stage 2: series presence.
	if err := validateSeries(x); err != nil {
		return err
	}

	// Stage 3: geometry (lag before bandwidth; the usable sample depends on it).
	if err := validateGeometry(x.Len(), bandwidth, lag); err != nil {
		return err
	}

	// Stage 4: manual threshold scalar.
	if opts.ThresholdMode == ThresholdManual {
		if err := validateThresholdValue(opts.ThresholdValue); err != nil {
			return err
		}
	}

	return nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the series or the geometry. Kernel scale is NOT checked here:
// kernels.New validates the frozen scale right before the band is built,
// and under data-driven selection the configured scale is ignored.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Enumerated choices first (configuration class).
	switch opts.Kernel {
	case kernels.QuadExp, kernels.Gauss, kernels.Euclidean, kernels.Laplace, kernels.Sine:
		// ok
	default:
		return ErrUnknownKernel
	}
	switch opts.ThresholdMode {
	case ThresholdBootstrap, ThresholdManual:
		// ok
	default:
		return ErrUnknownThresholdMode
	}
	switch opts.Criterion {
	case EtaAndEpsilon, Eta, Epsilon:
		// ok
	default:
		return ErrUnknownCriterion
	}

	// Extraction parameters are always exercised.
	if !(opts.Eta >= 0) {
		return ErrNegativeEta
	}
	if !(opts.Epsilon >= 0) {
		return ErrNegativeEpsilon
	}

	// Bootstrap knobs matter only when the bootstrap runs.
	if opts.ThresholdMode == ThresholdBootstrap {
		if !(opts.Alpha >= 0 && opts.Alpha <= 1) {
			return ErrAlphaRange
		}
		if opts.Replications < 1 {
			return ErrBadReplications
		}
		if !(opts.BootDependence >= 0) || math.IsInf(opts.BootDependence, 0) {
			return ErrBadBootDependence
		}
		if opts.Workers < 0 {
			return ErrNegativeWorkers
		}
	}

	return nil
}

// validateSeries verifies that the input series exists and is non-empty.
//
// Complexity: O(1).
func validateSeries(x *series.Series) error {
	if x == nil || x.Len() == 0 {
		return ErrNilSeries
	}

	return nil
}

// validateGeometry verifies lag ≥ 0, bandwidth ≥ 1, and that two disjoint
// windows of length bandwidth fit the lag-embedded sample:
// 2·bandwidth < n − lag.
//
// Complexity: O(1).
func validateGeometry(n, bandwidth, lag int) error {
	if lag < 0 {
		return ErrNegativeLag
	}
	if bandwidth < 1 {
		return ErrBandwidthTooSmall
	}
	if 2*bandwidth >= n-lag {
		return ErrBandwidthTooLarge
	}

	return nil
}

// validateThresholdValue verifies a single manual threshold.
//
// Complexity: O(1).
func validateThresholdValue(v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return ErrBadThresholdValue
	}

	return nil
}

// validateLagSet verifies a non-empty duplicate-free lag set with valid
// geometry for every lag.
//
// Complexity: O(len(lags)²) time (tiny sets; no allocation).
func validateLagSet(n, bandwidth int, lags []int) error {
	if len(lags) == 0 {
		return ErrEmptyLags
	}

	var i, j int
	for i = 0; i < len(lags); i++ {
		if err := validateGeometry(n, bandwidth, lags[i]); err != nil {
			return err
		}
		for j = 0; j < i; j++ {
			if lags[j] == lags[i] {
				return ErrDuplicateLag
			}
		}
	}

	return nil
}

// validateBandwidthSet verifies a non-empty duplicate-free bandwidth set.
// Per-bandwidth geometry is checked by the caller against every lag.
//
// Complexity: O(len(bandwidths)²) time (tiny sets; no allocation).
func validateBandwidthSet(bandwidths []int) error {
	if len(bandwidths) == 0 {
		return ErrEmptyBandwidths
	}

	var i, j int
	for i = 0; i < len(bandwidths); i++ {
		for j = 0; j < i; j++ {
			if bandwidths[j] == bandwidths[i] {
				return ErrDuplicateBandwidth
			}
		}
	}

	return nil
}

// resolveManualThresholds normalizes the multilag manual threshold shape to
// one value per lag: nil broadcasts the scalar, a single element broadcasts
// itself, a full-length slice maps one-to-one, anything else is a shape
// fault. Every value is validated.
//
// Complexity: O(len(lags)).
func resolveManualThresholds(values []float64, scalar float64, lagCount int) ([]float64, error) {
	out := make([]float64, lagCount)

	switch len(values) {
	case 0:
		if err := validateThresholdValue(scalar); err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = scalar
		}

	case 1:
		if err := validateThresholdValue(values[0]); err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = values[0]
		}

	case lagCount:
		for i := range values {
			if err := validateThresholdValue(values[i]); err != nil {
				return nil, err
			}
			out[i] = values[i]
		}

	default:
		return nil, ErrThresholdShape
	}

	return out, nil
}

// resolveManualGrid normalizes the multiscale manual threshold shape to one
// row per bandwidth (rows aligned with the bandwidths slice as supplied):
// nil applies the multilag rule to every bandwidth, a single row broadcasts,
// a full-length grid maps one-to-one.
//
// Complexity: O(len(bandwidths)·len(lags)).
func resolveManualGrid(opts Options, bandwidthCount, lagCount int) ([][]float64, error) {
	rows := make([][]float64, bandwidthCount)

	switch len(opts.ThresholdGrid) {
	case 0:
		row, err := resolveManualThresholds(opts.ThresholdValues, opts.ThresholdValue, lagCount)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i] = row
		}

	case 1:
		row, err := resolveManualThresholds(opts.ThresholdGrid[0], opts.ThresholdValue, lagCount)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i] = row
		}

	case bandwidthCount:
		for i := range opts.ThresholdGrid {
			row, err := resolveManualThresholds(opts.ThresholdGrid[i], opts.ThresholdValue, lagCount)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}

	default:
		return nil, ErrThresholdShape
	}

	return rows, nil
}
