// SPDX-License-Identifier: MIT
//
// Package mojo - change point extraction from a thresholded statistic.
//
// Exceedances of the calibrated threshold arrive in contiguous runs, one
// hill per change point plus occasional narrow spikes. Extraction reduces
// the runs to point estimates under three criteria:
//
//	Epsilon       - a run qualifies when it spans at least ε·G points;
//	                its highest point is the estimate.
//	Eta           - every exceedance that is the strict maximum of its
//	                (±η·G)-neighborhood is an estimate.
//	EtaAndEpsilon - the eta rule restricted to runs that pass the ε width
//	                test, so an isolated narrow spike cannot qualify even
//	                when it is locally maximal.
//
// Ties inside a window or run resolve to the leftmost index, so extraction
// is fully deterministic.
package mojo

// exceedanceRun is a maximal run of consecutive statistic points strictly
// above the threshold, as half-open offsets into the statistic slice.
type exceedanceRun struct {
	start, end int
}

// exceedanceRuns splits the statistic into maximal threshold-exceeding
// runs, left to right.
//
// Complexity: O(n).
func exceedanceRuns(stat []StatPoint, threshold float64) []exceedanceRun {
	var (
		runs []exceedanceRun
		open = -1 // start offset of the run being scanned, -1 when closed
	)
	for i := range stat {
		if stat[i].Value > threshold {
			if open < 0 {
				open = i
			}
			continue
		}
		if open >= 0 {
			runs = append(runs, exceedanceRun{start: open, end: i})
			open = -1
		}
	}
	if open >= 0 {
		runs = append(runs, exceedanceRun{start: open, end: len(stat)})
	}

	return runs
}

// runArgmax returns the offset of the largest statistic value inside the
// run, leftmost on ties.
func runArgmax(stat []StatPoint, run exceedanceRun) int {
	best := run.start
	for i := run.start + 1; i < run.end; i++ {
		if stat[i].Value > stat[best].Value {
			best = i
		}
	}

	return best
}

// isNeighborhoodMax reports whether offset i holds the maximum of
// stat[i−radius … i+radius] (clipped to the slice), with ties awarded to
// the leftmost offset.
func isNeighborhoodMax(stat []StatPoint, i, radius int) bool {
	lo := i - radius
	if lo < 0 {
		lo = 0
	}
	hi := i + radius
	if last := len(stat) - 1; hi > last {
		hi = last
	}

	for j := lo; j <= hi; j++ {
		if stat[j].Value > stat[i].Value {
			return false
		}
		if stat[j].Value == stat[i].Value && j < i {
			return false
		}
	}

	return true
}

// extractCandidates reduces the thresholded statistic to change point
// candidates under the configured criterion. Only Location and Score are
// populated; the caller stamps Lag and Bandwidth. Candidates come out in
// ascending location order, nil when nothing qualifies.
//
// Complexity: O(n·η·g) worst case, O(n) for the epsilon criterion.
func extractCandidates(stat []StatPoint, threshold float64, g int, criterion Criterion, eta, epsilon float64) []Candidate {
	var (
		runs     = exceedanceRuns(stat, threshold)
		minWidth = epsilon * float64(g)
		radius   = int(eta * float64(g))
		out      []Candidate
	)

	take := func(i int) {
		out = append(out, Candidate{Location: stat[i].Index, Score: stat[i].Value})
	}

	switch criterion {
	case Epsilon:
		for _, run := range runs {
			if float64(run.end-run.start) >= minWidth {
				take(runArgmax(stat, run))
			}
		}

	case Eta:
		for _, run := range runs {
			for i := run.start; i < run.end; i++ {
				if isNeighborhoodMax(stat, i, radius) {
					take(i)
				}
			}
		}

	case EtaAndEpsilon:
		for _, run := range runs {
			if float64(run.end-run.start) < minWidth {
				continue
			}
			for i := run.start; i < run.end; i++ {
				if isNeighborhoodMax(stat, i, radius) {
					take(i)
				}
			}
		}
	}

	return out
}
