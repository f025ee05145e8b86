// SPDX-License-Identifier: MIT
//
// Package mojo - multiscale detection and bottom-up pruning.
//
// A single bandwidth trades localization against power: small G pins
// changes down precisely but misses weak ones, large G detects weak
// changes but blurs their position. DetectMultiscale scans a grid of
// bandwidths and keeps, for every change, the estimate from the smallest
// bandwidth that found it.
package mojo

import (
	"math"
	"sort"

	"github.com/cran/CptNonPar/series"
)

// DetectMultiscale runs DetectMultilag for every bandwidth in bandwidths
// and prunes the pooled cluster representatives bottom-up, finest
// bandwidth first.
//
// Bandwidths may arrive in any order; scans run and report in ascending
// order. In manual mode the ThresholdGrid rows align with bandwidths as
// supplied: a nil grid applies the multilag broadcasting rule everywhere,
// a single row broadcasts across bandwidths, and a row per bandwidth maps
// one-to-one. Any other shape reports ErrThresholdShape.
//
// Complexity: one multilag pass per bandwidth plus an O(c²) prune over the
// c pooled representatives.
func DetectMultiscale(x *series.Series, bandwidths []int, lags []int, opts Options) (*MultiscaleResult, error) {
	// Stage 1: validation across the whole grid before any scan runs.
	if err := validateOptionsStandalone(opts); err != nil {
		return nil, err
	}
	if err := validateSeries(x); err != nil {
		return nil, err
	}
	if err := validateBandwidthSet(bandwidths); err != nil {
		return nil, err
	}
	for _, g := range bandwidths {
		if err := validateLagSet(x.Len(), g, lags); err != nil {
			return nil, err
		}
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
	if !(opts.EtaBottomUp >= 0) {
		return nil, ErrNegativeEtaBottomUp
	}

	// Stage 2: resolve the manual grid to one threshold row per bandwidth,
	// in the order the bandwidths were supplied.
	var rows [][]float64
	if opts.ThresholdMode == ThresholdManual {
		var err error
		if rows, err = resolveManualGrid(opts, len(bandwidths), len(lags)); err != nil {
			return nil, err
		}
	}

	// Stage 3: order the scans by bandwidth, carrying each bandwidth's
	// threshold row along.
	type scan struct {
		g   int
		row []float64
	}
	plans := make([]scan, len(bandwidths))
	for i, g := range bandwidths {
		plans[i].g = g
		if rows != nil {
			plans[i].row = rows[i]
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].g < plans[j].g })

	// Stage 4: one multilag pass per bandwidth, pooling cluster
	// representatives finest-first.
	var (
		ordered = make([]int, len(plans))
		perBand = make([]*MultilagResult, len(plans))
		pooled  []Candidate
	)
	for i, plan := range plans {
		sub := opts
		sub.ThresholdGrid = nil
		sub.ThresholdValues = plan.row

		res, err := DetectMultilag(x, plan.g, lags, sub)
		if err != nil {
			return nil, err
		}
		ordered[i] = plan.g
		perBand[i] = res
		for _, cl := range res.Clusters {
			pooled = append(pooled, cl.Representative)
		}
	}

	return &MultiscaleResult{
		Bandwidths:   ordered,
		PerBandwidth: perBand,
		Points:       MergeMultiscale(pooled, opts.EtaBottomUp),
	}, nil
}

// MergeMultiscale prunes pooled candidates bottom-up. Candidates must
// arrive grouped by ascending bandwidth (the order DetectMultiscale pools
// them in); each one is accepted when its distance to every already
// accepted point is at least η_bottom_up times its own bandwidth, so a
// coarse duplicate of an already localized change is suppressed while a
// genuinely new change survives. A non-positive η accepts everything.
//
// The accepted points are returned in ascending location order. The
// function is idempotent: feeding its output back, in any order,
// reproduces it.
func MergeMultiscale(pooled []Candidate, etaBottomUp float64) []Candidate {
	var accepted []Candidate
	for _, c := range pooled {
		ok := true
		for _, a := range accepted {
			if math.Abs(float64(c.Location-a.Location)) < etaBottomUp*float64(c.Bandwidth) {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}
	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Location < accepted[j].Location })

	return accepted
}
