// Package series provides the dense observation container shared by the
// change-point detection packages.
//
// A Series is an immutable n×p block of float64 samples: n time points,
// p components per point. Constructors accept the common input shapes
// (rows, a univariate slice, component columns, or any gonum mat.Matrix)
// and enforce one ingestion policy: every sample must be finite. Rejecting
// NaN and ±Inf at the boundary keeps every downstream statistic free of
// sample re-validation.
//
// Accessors:
//
//	Len()    — number of observations n
//	Dim()    — components per observation p
//	Row(i)   — borrowed O(1) view of observation i (do not modify)
//	At(i, j) — bounds-checked single sample
//
// Errors (sentinel): ErrEmptySeries, ErrRaggedRows, ErrNaNInf,
// ErrNilMatrix, ErrOutOfRange. Match with errors.Is.
package series
