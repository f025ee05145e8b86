// Package simulate generates reproducible piecewise-stationary test
// signals with known change points.
//
// The generators exist for the detector's tests, examples and benchmarks:
// every signal is fully determined by its parameters and a seed, so test
// expectations stay stable across platforms and runs.
//
// Signal model:
//
//	x_t = Mean(t) + u_t,  u_t = phi·u_{t−1} + Scale(t)·ε_t,
//
// with Mean and Scale piecewise constant over the supplied Segments. Mean
// shifts produce marginal changes, Scale shifts produce volatility
// changes, and stitching two calls with different phi produces a pure
// autocorrelation change that only lagged detection can see.
//
// Contract: generators return nil on invalid input and never panic.
package simulate
