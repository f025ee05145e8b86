// SPDX-License-Identifier: MIT
//
// Package mojo - weighted MOSUM scan over the kernel band.
//
// For a center k and bandwidth G the detector compares the windows
// L = [k−G, k) and R = [k, k+G) through three weighted block sums of
// kernel values,
//
//	LL = Σ_{s,t∈L} w_s·w_t·h(Z_s,Z_t)
//	RR = Σ_{s,t∈R} w_s·w_t·h(Z_s,Z_t)
//	LR = Σ_{s∈L,t∈R} w_s·w_t·h(Z_s,Z_t),
//
// and aggregates them into D(k) = (LL + RR − 2·LR)/G². With unit weights
// D(k) is the squared distance between the two empirical characteristic
// functionals, so D(k) ≥ 0 and peaks at distributional change points;
// bootstrap replicates reuse the same scan with multiplier weights.
//
// The scan is incremental: moving the center one step right exchanges one
// element per window, so each of the three sums is corrected in O(G) using
// band lookups instead of being rebuilt from scratch.
package mojo

import "math"

// blockSums holds the three block sums for every center k ∈ [g, n−g),
// stored at offset k−g.
type blockSums struct {
	g  int // bandwidth the sums were scanned with
	ll []float64
	rr []float64
	lr []float64
}

// scanBlocks computes the weighted block sums for all centers in one sweep.
// w must have length b.n; unit weights give the plain statistic.
//
// Complexity: O(n·g) time after an O(g²) start-up, O(n) memory.
func scanBlocks(b *kernelBand, g int, w []float64) *blockSums {
	var (
		n       = b.n
		centers = n - 2*g // validated ≥ 1 before any scan runs
		sums    = &blockSums{
			g:  g,
			ll: make([]float64, centers),
			rr: make([]float64, centers),
			lr: make([]float64, centers),
		}
	)

	// Stage 1: direct sums at the first center k = g.
	var (
		s, t       int     // window indices
		ll, rr, lr float64 // running block sums
	)
	for s = 0; s < g; s++ {
		for t = 0; t < g; t++ {
			ll += w[s] * w[t] * b.at(s, t)
			rr += w[g+s] * w[g+t] * b.at(g+s, g+t)
			lr += w[s] * w[g+t] * b.at(s, g+t)
		}
	}

	// Stage 2: record the current center, then slide both windows one step
	// right, exchanging exactly one element per window.
	var k int
	for k = g; ; k++ {
		i := k - g
		sums.ll[i], sums.rr[i], sums.lr[i] = ll, rr, lr
		if k+1 >= n-g {
			break
		}

		var (
			a  = k - g  // leaves the left window
			in = k + g  // enters the right window
			s1 float64  // Σ_{t∈M_L} w_t·h(a,t), shared middle of both lefts
			s2 float64  // Σ_{t∈M_L} w_t·h(k,t)
			s3 float64  // Σ_{t∈M_R} w_t·h(k,t), shared middle of both rights
			s4 float64  // Σ_{t∈M_R} w_t·h(in,t)
		)
		for t = a + 1; t < k; t++ {
			s1 += w[t] * b.at(a, t)
			s2 += w[t] * b.at(k, t)
		}
		for t = k + 1; t < in; t++ {
			s3 += w[t] * b.at(k, t)
			s4 += w[t] * b.at(in, t)
		}
		ll += -2*w[a]*s1 - w[a]*w[a]*b.at(a, a) + 2*w[k]*s2 + w[k]*w[k]*b.at(k, k)
		rr += -2*w[k]*s3 - w[k]*w[k]*b.at(k, k) + 2*w[in]*s4 + w[in]*w[in]*b.at(in, in)

		// Cross term, stage A: swap a → k inside the left window while the
		// right window is still R = [k, k+g).
		var rowA, rowK float64
		for t = k; t < in; t++ {
			rowA += w[t] * b.at(a, t)
			rowK += w[t] * b.at(k, t)
		}
		lr += -w[a]*rowA + w[k]*rowK

		// Cross term, stage B: swap k → k+g inside the right window against
		// the already-updated left window L' = [k−g+1, k+1).
		var colK, colIn float64
		for s = a + 1; s <= k; s++ {
			colK += w[s] * b.at(s, k)
			colIn += w[s] * b.at(s, in)
		}
		lr += -w[k]*colK + w[in]*colIn
	}

	return sums
}

// statisticFromBlocks converts block sums into the detector statistic
// T(k) = √g · D(k) with D(k) = (LL + RR − 2·LR)/g², one point per center.
//
// Complexity: O(n).
func statisticFromBlocks(sums *blockSums) []StatPoint {
	var (
		g     = float64(sums.g)
		scale = math.Sqrt(g) / (g * g)
		out   = make([]StatPoint, len(sums.ll))
	)
	for i := range out {
		out[i] = StatPoint{
			Index: sums.g + i,
			Value: scale * (sums.ll[i] + sums.rr[i] - 2*sums.lr[i]),
		}
	}

	return out
}

// onesVector returns a unit weight vector of length n.
func onesVector(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}
