// SPDX-License-Identifier: MIT
// Package mojo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mojo
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user input; panics are reserved
// for programmer errors in private helpers (if any).

package mojo

import (
	"errors"
	"fmt"
)

// NOTE ON STRUCTURE
// -----------------
// Errors form two levels. The class sentinels below partition every
// validation failure into five kinds; the specific sentinels wrap a class
// with %w, so errors.Is matches on either level:
//
//	errors.Is(err, ErrInvalidParameter) // true for any parameter fault
//	errors.Is(err, ErrAlphaRange)       // true for that fault exactly
//
// ERROR PRIORITY (documented, enforced in tests):
// configuration -> series shape -> lag -> bandwidth -> parameter values
// -> threshold shape.

// Class sentinels.
var (
	// ErrConfiguration groups faults in enumerated choices: unknown kernel
	// family, threshold mode, extraction criterion, or merge type.
	ErrConfiguration = errors.New("mojo: invalid configuration")

	// ErrInvalidParameter groups out-of-range numeric parameters (alpha,
	// replications, dependence length, eta, epsilon, workers, thresholds).
	ErrInvalidParameter = errors.New("mojo: invalid parameter")

	// ErrInvalidBandwidth groups bandwidth faults, including a window pair
	// that does not fit the usable sample.
	ErrInvalidBandwidth = errors.New("mojo: invalid bandwidth")

	// ErrInvalidLag groups lag faults.
	ErrInvalidLag = errors.New("mojo: invalid lag")

	// ErrDimensionMismatch groups shape faults: missing input, or manual
	// threshold vectors that do not line up with the lags/bandwidths.
	ErrDimensionMismatch = errors.New("mojo: dimension mismatch")
)

// Specific sentinels. Each wraps its class so both levels match.
var (
	// ErrUnknownKernel indicates a kernel family outside the supported set.
	ErrUnknownKernel = fmt.Errorf("%w: unknown kernel family", ErrConfiguration)

	// ErrUnknownThresholdMode indicates a ThresholdMode outside the set.
	ErrUnknownThresholdMode = fmt.Errorf("%w: unknown threshold mode", ErrConfiguration)

	// ErrUnknownCriterion indicates a Criterion outside the supported set.
	ErrUnknownCriterion = fmt.Errorf("%w: unknown extraction criterion", ErrConfiguration)

	// ErrUnknownMergeType indicates a MergeType outside the supported set.
	ErrUnknownMergeType = fmt.Errorf("%w: unknown merge type", ErrConfiguration)

	// ErrAlphaRange indicates a bootstrap level outside [0, 1].
	ErrAlphaRange = fmt.Errorf("%w: alpha must lie in [0, 1]", ErrInvalidParameter)

	// ErrBadReplications indicates a non-positive bootstrap replication count.
	ErrBadReplications = fmt.Errorf("%w: bootstrap replications must be positive", ErrInvalidParameter)

	// ErrBadBootDependence indicates a negative (or NaN) multiplier
	// dependence length. Zero selects the automatic default.
	ErrBadBootDependence = fmt.Errorf("%w: bootstrap dependence must be non-negative", ErrInvalidParameter)

	// ErrNegativeEta indicates a negative (or NaN) eta locality parameter.
	ErrNegativeEta = fmt.Errorf("%w: eta must be non-negative", ErrInvalidParameter)

	// ErrNegativeEpsilon indicates a negative (or NaN) epsilon width parameter.
	ErrNegativeEpsilon = fmt.Errorf("%w: epsilon must be non-negative", ErrInvalidParameter)

	// ErrNegativeEtaMerge indicates a negative (or NaN) cross-lag merge radius.
	ErrNegativeEtaMerge = fmt.Errorf("%w: eta.merge must be non-negative", ErrInvalidParameter)

	// ErrNegativeEtaBottomUp indicates a negative (or NaN) cross-bandwidth
	// acceptance radius.
	ErrNegativeEtaBottomUp = fmt.Errorf("%w: eta.bottom.up must be non-negative", ErrInvalidParameter)

	// ErrNegativeWorkers indicates a negative worker cap. Zero means "use
	// all available processors".
	ErrNegativeWorkers = fmt.Errorf("%w: workers must be non-negative", ErrInvalidParameter)

	// ErrBadThresholdValue indicates a manual threshold that is negative,
	// NaN or infinite.
	ErrBadThresholdValue = fmt.Errorf("%w: manual threshold must be non-negative and finite", ErrInvalidParameter)

	// ErrBandwidthTooSmall indicates a bandwidth below 1.
	ErrBandwidthTooSmall = fmt.Errorf("%w: bandwidth must be at least 1", ErrInvalidBandwidth)

	// ErrBandwidthTooLarge indicates that the two windows do not fit the
	// usable sample: 2·G must be smaller than n − lag.
	ErrBandwidthTooLarge = fmt.Errorf("%w: window pair exceeds usable sample", ErrInvalidBandwidth)

	// ErrEmptyBandwidths indicates an empty bandwidth set.
	ErrEmptyBandwidths = fmt.Errorf("%w: at least one bandwidth required", ErrInvalidBandwidth)

	// ErrDuplicateBandwidth indicates a repeated bandwidth in the set.
	ErrDuplicateBandwidth = fmt.Errorf("%w: duplicate bandwidth", ErrInvalidBandwidth)

	// ErrNegativeLag indicates a negative lag.
	ErrNegativeLag = fmt.Errorf("%w: lag must be non-negative", ErrInvalidLag)

	// ErrEmptyLags indicates an empty lag set.
	ErrEmptyLags = fmt.Errorf("%w: at least one lag required", ErrInvalidLag)

	// ErrDuplicateLag indicates a repeated lag in the set.
	ErrDuplicateLag = fmt.Errorf("%w: duplicate lag", ErrInvalidLag)

	// ErrNilSeries indicates a nil (or zero-length) input series.
	ErrNilSeries = fmt.Errorf("%w: series is nil or empty", ErrDimensionMismatch)

	// ErrThresholdShape indicates manual thresholds whose shape matches
	// neither a scalar broadcast nor the lags/bandwidths layout.
	ErrThresholdShape = fmt.Errorf("%w: manual threshold shape does not match lags or bandwidths", ErrDimensionMismatch)

	// ErrMixedResults indicates per-lag results that disagree on bandwidth
	// (or contain nil entries) when merging.
	ErrMixedResults = fmt.Errorf("%w: per-lag results disagree on bandwidth", ErrDimensionMismatch)
)

// ErrCalibrationFailed is returned when a bootstrap replicate produces a
// non-finite maximum. It is an operational failure, outside the validation
// classes above; no partial threshold is ever returned.
var ErrCalibrationFailed = errors.New("mojo: bootstrap calibration failed")
