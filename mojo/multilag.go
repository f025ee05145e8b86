// SPDX-License-Identifier: MIT
//
// Package mojo - multilag detection and cross-lag merging.
//
// Different lags expose different kinds of change: lag 0 sees marginal
// shifts, positive lags see changes in serial dependence that leave the
// marginal law untouched. DetectMultilag scans every configured lag at one
// bandwidth and merges the per-lag candidates into clusters, so that one
// physical change detected by several lags is reported once.
package mojo

import (
	"math"
	"slices"
	"sort"

	"github.com/cran/CptNonPar/series"
)

// DetectMultilag runs Detect for every lag in lags at a single bandwidth
// and merges the per-lag candidates into clusters of estimates that refer
// to the same change.
//
// Manual thresholds broadcast per lag: a nil ThresholdValues applies the
// scalar ThresholdValue to every lag, a single element broadcasts itself,
// and a slice of len(lags) maps one threshold to each lag in order. Any
// other shape reports ErrThresholdShape.
//
// Bootstrap calibration draws an independent multiplier stream per lag,
// keyed by the lag value, so each per-lag Result is identical to a
// standalone Detect call with the same options.
//
// Complexity: len(lags) single-lag scans plus an O(c log c) merge over the
// c pooled candidates.
func DetectMultilag(x *series.Series, bandwidth int, lags []int, opts Options) (*MultilagResult, error) {
	// Stage 1: validation, covering every lag before any scan runs.
	if err := validateOptionsStandalone(opts); err != nil {
		return nil, err
	}
	if err := validateSeries(x); err != nil {
		return nil, err
	}
	if err := validateLagSet(x.Len(), bandwidth, lags); err != nil {
		return nil, err
	}
	switch opts.MergeType {
	case MergeSequential, MergeBottomUp:
		// ok
	default:
		return nil, ErrUnknownMergeType
	}
	if !(opts.EtaMerge >= 0) {
		return nil, ErrNegativeEtaMerge
	}

	// Stage 2: resolve manual thresholds to one value per lag.
	var perLagThr []float64
	if opts.ThresholdMode == ThresholdManual {
		var err error
		if perLagThr, err = resolveManualThresholds(opts.ThresholdValues, opts.ThresholdValue, len(lags)); err != nil {
			return nil, err
		}
	}

	// Stage 3: one scan per lag. Each scan receives a scalar-threshold
	// copy of the options; parallelism lives inside the bootstrap.
	perLag := make([]*Result, len(lags))
	for i, lag := range lags {
		sub := opts
		sub.ThresholdValues = nil
		sub.ThresholdGrid = nil
		if perLagThr != nil {
			sub.ThresholdValue = perLagThr[i]
		}

		res, err := Detect(x, bandwidth, lag, sub)
		if err != nil {
			return nil, err
		}
		perLag[i] = res
	}

	// Stage 4: cross-lag merge.
	clusters, err := MergeLags(perLag, opts.EtaMerge, opts.MergeType)
	if err != nil {
		return nil, err
	}

	return &MultilagResult{
		Bandwidth: bandwidth,
		Lags:      slices.Clone(lags),
		PerLag:    perLag,
		Clusters:  clusters,
	}, nil
}

// MergeLags pools the candidates of several same-bandwidth Results and
// groups estimates within η_merge·G of each other into clusters. Every
// entry of perLag must be non-nil and share one bandwidth, otherwise
// ErrMixedResults is reported; an empty perLag or a candidate-free pool
// yields no clusters.
//
// Each cluster's Representative is its highest-scoring member (leftmost on
// ties) and its Members are sorted by location, then lag. Clusters come
// out in ascending representative location order.
func MergeLags(perLag []*Result, etaMerge float64, mergeType MergeType) ([]Cluster, error) {
	switch mergeType {
	case MergeSequential, MergeBottomUp:
		// ok
	default:
		return nil, ErrUnknownMergeType
	}
	if !(etaMerge >= 0) {
		return nil, ErrNegativeEtaMerge
	}

	var (
		g     = -1 // bandwidth shared by all results
		cands []Candidate
	)
	for _, res := range perLag {
		if res == nil {
			return nil, ErrMixedResults
		}
		if g < 0 {
			g = res.Bandwidth
		} else if res.Bandwidth != g {
			return nil, ErrMixedResults
		}
		cands = append(cands, res.Candidates...)
	}
	if len(cands) == 0 {
		return nil, nil
	}

	maxGap := etaMerge * float64(g)
	if mergeType == MergeBottomUp {
		return mergeBottomUp(cands, maxGap), nil
	}

	return mergeSequential(cands, maxGap), nil
}

// mergeSequential walks the pooled candidates in location order and starts
// a new cluster whenever the gap to the previous candidate exceeds maxGap.
// Single-linkage chaining: a cluster may span more than maxGap end to end
// as long as consecutive members stay close.
func mergeSequential(cands []Candidate, maxGap float64) []Cluster {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Location != cands[j].Location {
			return cands[i].Location < cands[j].Location
		}
		if cands[i].Lag != cands[j].Lag {
			return cands[i].Lag < cands[j].Lag
		}

		return cands[i].Score > cands[j].Score
	})

	var (
		clusters []Cluster
		members  []Candidate
	)
	for _, c := range cands {
		if len(members) > 0 && float64(c.Location-members[len(members)-1].Location) > maxGap {
			clusters = append(clusters, newCluster(members))
			members = nil
		}
		members = append(members, c)
	}
	clusters = append(clusters, newCluster(members))

	return clusters
}

// mergeBottomUp assigns candidates in descending score order: a candidate
// farther than maxGap from every existing seed opens a new cluster,
// anything else joins its nearest seed (earlier seed on distance ties).
// Seeds are processed first, so a seed is always its cluster's maximum.
func mergeBottomUp(cands []Candidate, maxGap float64) []Cluster {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].Location != cands[j].Location {
			return cands[i].Location < cands[j].Location
		}

		return cands[i].Lag < cands[j].Lag
	})

	var (
		seeds   []Candidate
		members [][]Candidate
	)
	for _, c := range cands {
		var (
			join     = -1
			joinDist float64
		)
		for s := range seeds {
			d := math.Abs(float64(c.Location - seeds[s].Location))
			if d > maxGap {
				continue
			}
			if join < 0 || d < joinDist {
				join, joinDist = s, d
			}
		}
		if join < 0 {
			seeds = append(seeds, c)
			members = append(members, []Candidate{c})
			continue
		}
		members[join] = append(members[join], c)
	}

	clusters := make([]Cluster, len(seeds))
	for s := range seeds {
		sort.Slice(members[s], func(i, j int) bool {
			if members[s][i].Location != members[s][j].Location {
				return members[s][i].Location < members[s][j].Location
			}

			return members[s][i].Lag < members[s][j].Lag
		})
		clusters[s] = Cluster{Representative: seeds[s], Members: members[s]}
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Representative.Location < clusters[j].Representative.Location
	})

	return clusters
}

// newCluster finalizes a location-sorted member list, electing the
// highest-scoring member (leftmost on ties) as representative.
func newCluster(members []Candidate) Cluster {
	best := 0
	for i := 1; i < len(members); i++ {
		if members[i].Score > members[best].Score {
			best = i
		}
	}

	return Cluster{Representative: members[best], Members: members}
}
