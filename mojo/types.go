// SPDX-License-Identifier: MIT
//
// Package mojo - enumerations and result types of the detection API.
package mojo

// ThresholdMode selects how the detection threshold is obtained.
//
// ThresholdBootstrap — calibrate by the dependent multiplier bootstrap
// (the default; controls the family-wise false positive level Alpha).
// ThresholdManual — use the caller-supplied threshold value(s) verbatim.
type ThresholdMode int

const (
	// ThresholdBootstrap calibrates the threshold from bootstrap replicate
	// maxima at level Alpha.
	ThresholdBootstrap ThresholdMode = iota

	// ThresholdManual applies the caller-supplied threshold(s) without any
	// resampling.
	ThresholdManual
)

// String returns the conventional mode name.
func (m ThresholdMode) String() string {
	switch m {
	case ThresholdBootstrap:
		return "bootstrap"
	case ThresholdManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Criterion selects how change-point candidates are extracted from the
// exceeding environments of the statistic.
//
// EtaAndEpsilon — a candidate must be an eta-local maximum AND its
// exceeding run must be at least Epsilon·G wide (the default; robust to
// both narrow spikes and flat plateaus).
// Eta — eta-local maxima only.
// Epsilon — run-width filtering only; each qualifying run contributes its
// maximum.
type Criterion int

const (
	// EtaAndEpsilon combines both localization rules.
	EtaAndEpsilon Criterion = iota

	// Eta declares eta-local maxima of the exceeding points.
	Eta

	// Epsilon declares the maximum of every sufficiently wide exceeding run.
	Epsilon
)

// String returns the conventional criterion name.
func (c Criterion) String() string {
	switch c {
	case EtaAndEpsilon:
		return "eta.and.epsilon"
	case Eta:
		return "eta"
	case Epsilon:
		return "epsilon"
	default:
		return "unknown"
	}
}

// MergeType selects the cross-lag merging strategy.
//
// MergeSequential — scan candidates in location order and cut a new
// cluster whenever the gap to the cluster's rightmost member exceeds
// EtaMerge·G (the default).
// MergeBottomUp — seed clusters greedily in descending score order; a
// seed must be farther than EtaMerge·G from every accepted seed, and the
// remaining candidates join their nearest seed.
type MergeType int

const (
	// MergeSequential merges by location-ordered gap cutting.
	MergeSequential MergeType = iota

	// MergeBottomUp merges by score-ordered greedy seeding.
	MergeBottomUp
)

// String returns the conventional merge-type name.
func (m MergeType) String() string {
	switch m {
	case MergeSequential:
		return "sequential"
	case MergeBottomUp:
		return "bottom-up"
	default:
		return "unknown"
	}
}

// StatPoint is one value of the detection statistic series.
type StatPoint struct {
	// Index is the window center k in original series coordinates. The
	// statistic exists for k in [G, n−lag−G).
	Index int

	// Value is T(k) = √G · D(k), the scaled kernel MOSUM statistic.
	Value float64
}

// Candidate is a declared change-point candidate.
type Candidate struct {
	// Location is the declared change point in original series coordinates.
	Location int

	// Lag is the lag whose statistic declared this candidate.
	Lag int

	// Bandwidth is the MOSUM bandwidth G that produced the candidate.
	Bandwidth int

	// Score is the statistic value at Location (always above the threshold
	// that declared it).
	Score float64
}

// Cluster groups candidates that describe the same underlying change
// across different lags.
type Cluster struct {
	// Representative is the member with the largest score (leftmost on
	// ties). Its Location is the cluster's declared change point.
	Representative Candidate

	// Members lists every candidate in the cluster, ordered by location
	// (ties by lag).
	Members []Candidate
}

// Result is the outcome of single-lag detection.
type Result struct {
	// Bandwidth and Lag identify the detection unit.
	Bandwidth int
	Lag       int

	// Candidates holds the declared change points, ordered by location.
	Candidates []Candidate

	// Stat is the full statistic series, one point per valid window center.
	Stat []StatPoint

	// Threshold is the value the extraction compared against (bootstrap
	// quantile or the manual value).
	Threshold float64

	// KernelScale is the scale the kernel actually used, after data-driven
	// selection (if enabled) froze it.
	KernelScale float64

	// Config echoes the options the detection ran with.
	Config Options
}

// ChangePoints returns the candidate locations in ascending order.
func (r *Result) ChangePoints() []int {
	out := make([]int, len(r.Candidates))
	for i := range r.Candidates {
		out[i] = r.Candidates[i].Location
	}

	return out
}

// MultilagResult is the outcome of multilag detection over one bandwidth.
type MultilagResult struct {
	// Bandwidth is the shared MOSUM bandwidth G.
	Bandwidth int

	// Lags echoes the lag set, in the order supplied.
	Lags []int

	// PerLag holds the single-lag results, aligned with Lags.
	PerLag []*Result

	// Clusters holds the merged candidates, ordered by representative
	// location.
	Clusters []Cluster
}

// ChangePoints returns the cluster representatives' locations in ascending
// order.
func (r *MultilagResult) ChangePoints() []int {
	out := make([]int, len(r.Clusters))
	for i := range r.Clusters {
		out[i] = r.Clusters[i].Representative.Location
	}

	return out
}

// MultiscaleResult is the outcome of multiscale detection.
type MultiscaleResult struct {
	// Bandwidths lists the bandwidths in ascending processed order.
	Bandwidths []int

	// PerBandwidth holds the multilag results, aligned with Bandwidths.
	PerBandwidth []*MultilagResult

	// Points holds the final merged change points, ordered by location.
	// Each point keeps the bandwidth and lag that produced it.
	Points []Candidate
}

// ChangePoints returns the final locations in ascending order.
func (r *MultiscaleResult) ChangePoints() []int {
	out := make([]int, len(r.Points))
	for i := range r.Points {
		out[i] = r.Points[i].Location
	}

	return out
}
