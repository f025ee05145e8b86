// SPDX-License-Identifier: MIT
//
// Package mojo - detection options and their documented defaults.
package mojo

import (
	"math"

	"github.com/cran/CptNonPar/kernels"
)

// Default values for Options. DefaultOptions is the single source of truth;
// the constants exist so tests and callers can reference individual defaults
// without re-deriving them.
const (
	// DefaultKernelScale is the fixed kernel scale used when data-driven
	// selection is disabled (and the Euclidean exponent in every case).
	DefaultKernelScale = 1.0

	// DefaultAlpha is the bootstrap false positive level.
	DefaultAlpha = 0.1

	// DefaultReplications is the bootstrap replicate count.
	DefaultReplications = 200

	// DefaultEta is the locality radius factor for extraction (radius =
	// ⌊Eta·G⌋ statistic indices).
	DefaultEta = 0.4

	// DefaultEpsilon is the minimal exceeding-run width factor for
	// extraction (width ≥ Epsilon·G).
	DefaultEpsilon = 0.02

	// DefaultEtaMerge is the cross-lag merge radius factor (distance
	// EtaMerge·G separates clusters).
	DefaultEtaMerge = 1.0

	// DefaultEtaBottomUp is the cross-bandwidth acceptance radius factor
	// (a point must clear EtaBottomUp·G of every already accepted point,
	// measured with its own bandwidth G).
	DefaultEtaBottomUp = 0.8
)

// bootDependenceGrowth scales the automatic multiplier dependence length:
// when BootDependence is 0, the length is 1.5·n^{1/3} observations.
const bootDependenceGrowth = 1.5

// Options configures detection. All fields are plain values; construct with
// DefaultOptions and override what you need. Validation happens inside the
// entry points (Detect, DetectMultilag, DetectMultiscale), never here.
//
// Kernel / KernelScale / DataDrivenScale / ScaleUseMean — kernel choice and
// its scale policy. With DataDrivenScale (default), the scale is frozen per
// (bandwidth, lag) unit as the median (or mean, with ScaleUseMean) of
// pairwise distances between embedded observations, and KernelScale is
// ignored. The Euclidean family always uses KernelScale as its exponent.
//
// ThresholdMode / ThresholdValue / ThresholdValues / ThresholdGrid — the
// calibration policy. In manual mode, Detect reads the scalar
// ThresholdValue; DetectMultilag reads ThresholdValues (nil ⇒ broadcast the
// scalar, length 1 ⇒ broadcast, length len(lags) ⇒ per lag);
// DetectMultiscale reads ThresholdGrid (nil ⇒ the multilag rule per
// bandwidth, length 1 ⇒ broadcast the row, length len(bandwidths) ⇒ one
// row per bandwidth, rows following the multilag rule; rows align with the
// bandwidths slice as supplied).
//
// Alpha / Replications / BootDependence / MeanSubtract / Seed / Workers —
// bootstrap calibration. BootDependence is the multiplier dependence length
// in observations (0 ⇒ 1.5·n^{1/3}). MeanSubtract centers each kernel block
// by its empirical mean in the replicates, which restores power under
// alternatives; disabling it is the conservative choice. Seed 0 selects the
// fixed default stream; any other seed is used verbatim. Workers caps the
// replicate pool (0 ⇒ all processors, 1 ⇒ serial); results are identical
// for every worker count.
//
// Criterion / Eta / Epsilon — candidate extraction from exceeding
// environments.
//
// MergeType / EtaMerge — cross-lag merging. EtaBottomUp — cross-bandwidth
// merging.
type Options struct {
	Kernel          kernels.Family
	KernelScale     float64
	DataDrivenScale bool
	ScaleUseMean    bool

	ThresholdMode   ThresholdMode
	ThresholdValue  float64
	ThresholdValues []float64
	ThresholdGrid   [][]float64

	Alpha          float64
	Replications   int
	BootDependence float64
	MeanSubtract   bool
	Seed           int64
	Workers        int

	Criterion Criterion
	Eta       float64
	Epsilon   float64

	MergeType   MergeType
	EtaMerge    float64
	EtaBottomUp float64
}

// DefaultOptions returns the documented defaults: quad.exp kernel with
// data-driven scale, bootstrap threshold at level 0.1 with 200 replicates,
// mean-subtracted dependent multipliers, eta.and.epsilon extraction
// (eta 0.4, epsilon 0.02), sequential merging with eta.merge 1, and
// eta.bottom.up 0.8 across bandwidths.
func DefaultOptions() Options {
	return Options{
		Kernel:          kernels.QuadExp,
		KernelScale:     DefaultKernelScale,
		DataDrivenScale: true,
		ScaleUseMean:    false,
		ThresholdMode:   ThresholdBootstrap,
		Alpha:           DefaultAlpha,
		Replications:    DefaultReplications,
		BootDependence:  0, // 0 ⇒ 1.5·n^{1/3}, resolved against the input length
		MeanSubtract:    true,
		Seed:            0, // 0 ⇒ fixed default stream
		Workers:         0, // 0 ⇒ all processors
		Criterion:       EtaAndEpsilon,
		Eta:             DefaultEta,
		Epsilon:         DefaultEpsilon,
		MergeType:       MergeSequential,
		EtaMerge:        DefaultEtaMerge,
		EtaBottomUp:     DefaultEtaBottomUp,
	}
}

// bootDependenceLength resolves the multiplier dependence length m for a
// series of n observations: the configured value, or 1.5·n^{1/3} when the
// configured value is 0, rounded and floored at 1.
//
// Complexity: O(1).
func bootDependenceLength(n int, configured float64) int {
	dep := configured
	if dep == 0 {
		dep = bootDependenceGrowth * math.Cbrt(float64(n))
	}

	m := int(math.Round(dep))
	if m < 1 {
		m = 1
	}

	return m
}
