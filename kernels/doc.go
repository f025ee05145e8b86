// Package kernels implements the kernel families used by the change-point
// detection statistic, plus the median-heuristic scale selector.
//
// A kernel h(x, y) measures similarity between two observations; the
// detection statistic compares kernel averages across adjacent windows.
// The characteristic-function families (QuadExp, Gauss, Laplace, Sine) are
// bounded with h(x, x) = 1; Euclidean is the energy-distance kernel with
// h(x, x) = 0.
//
// Construction validates eagerly:
//
//	k, err := kernels.New(kernels.QuadExp, 1.0)
//
// and evaluation is a pure hot-path call:
//
//	v := k.Evaluate(x, y)
//
// DataDrivenScale supplies the usual automatic scale (median of pairwise
// distances) deterministically, thinning pairs by a fixed stride when
// their count exceeds a budget.
//
// Errors (sentinel): ErrUnknownFamily, ErrInvalidScale, ErrExponentRange,
// ErrTooFewPoints. Match with errors.Is.
package kernels
