// SPDX-License-Identifier: MIT
//
// Package mojo - deterministic derivation of bootstrap random streams.
//
// Every bootstrap replicate owns an independent PCG source derived from
// (Seed, lag, replicate) alone. Replicates can therefore run on any number
// of workers in any order and still draw exactly the same multipliers, and
// a lag bootstrapped inside DetectMultilag reproduces the standalone
// Detect run for that lag bit for bit.
package mojo

import "math/rand/v2"

// defaultRNGSeed substitutes for Seed == 0 so that the zero-value and the
// explicit default configuration are reproducible rather than seeded from
// the clock.
const defaultRNGSeed uint64 = 1

// splitMixGamma is the SplitMix64 Weyl increment.
const splitMixGamma uint64 = 0x9e3779b97f4a7c15

// splitMix64 is the SplitMix64 finalizer: a bijective scramble that turns
// closely related inputs (consecutive lags, consecutive replicates) into
// well separated seed words.
func splitMix64(x uint64) uint64 {
	x += splitMixGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// replicateSource derives the PCG source for one bootstrap replicate of one
// lag. Streams are keyed by the lag value itself, not its position in a
// lag set, so reordering lags never changes the draws.
func replicateSource(seed int64, lag, replicate int) rand.Source {
	base := uint64(seed)
	if base == 0 {
		base = defaultRNGSeed
	}

	s1 := splitMix64(base ^ (uint64(lag) + splitMixGamma))
	s2 := splitMix64(s1 ^ (uint64(replicate) + splitMixGamma))

	return rand.NewPCG(s1, s2)
}
