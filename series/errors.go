// SPDX-License-Identifier: MIT
// Package series: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the series
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No constructor panics on user input; panics are reserved for
// programmer errors in private helpers (if any).

package series

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "series: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// with errors.Is.

var (
	// ErrEmptySeries is returned when a constructor receives no observations
	// (zero rows) or an observation of zero dimension.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrRaggedRows is returned by New when rows have differing lengths.
	// All observations of a series must share one dimension.
	ErrRaggedRows = errors.New("series: rows have differing lengths")

	// ErrNaNInf is returned when a NaN or ±Inf value is encountered at
	// ingestion. Finite values are required by the numeric policy; reject
	// early rather than propagate poison through downstream statistics.
	ErrNaNInf = errors.New("series: NaN or Inf encountered")

	// ErrNilMatrix is returned by FromMatrix when the supplied matrix is nil.
	ErrNilMatrix = errors.New("series: matrix is nil")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. The public indexer At returns this, it never panics.
	ErrOutOfRange = errors.New("series: index out of range")
)
