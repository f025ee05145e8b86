// Package cptnonpar is a nonparametric change point detection toolkit for
// (possibly multivariate) time series: it finds an unknown number of points
// at which the generating distribution changes, without fitting any
// parametric model first.
//
// 🔎 How it works
//
//	The detector (NP-MOJO) compares empirical joint characteristic
//	functions of adjacent sliding windows through a kernel MOSUM
//	statistic, calibrates its rejection threshold with a dependent
//	multiplier bootstrap, and merges the discoveries made at several
//	lags and several window bandwidths into one deduplicated list:
//		• Lagged embeddings: changes in serial dependence become visible
//		  even when every marginal law stays the same
//		• Five kernel families (quad.exp, gauss, euclidean, laplace, sine)
//		  with an automatic median-heuristic scale
//		• Dependent multiplier bootstrap with reproducible, seedable
//		  parallel replicates
//		• Eta/epsilon exceedance criteria, cross-lag clustering and
//		  multiscale bottom-up pruning
//
// ✨ Design
//
//   - Validated, immutable inputs – constructors reject NaN/Inf once,
//     statistics never re-check samples
//   - Sentinel errors only – no panics on user input, match with errors.Is
//   - Deterministic – every random draw derives from an explicit seed;
//     parallel and serial bootstrap runs are bit-identical
//
// Everything is organized under focused subpackages:
//
//	series/   — dense n×p observation container + gonum mat adapter
//	kernels/  — kernel families and the data-driven scale heuristic
//	mojo/     — the detector: Detect, DetectMultilag, DetectMultiscale
//	simulate/ — reproducible piecewise-stationary test signals
//
// Quick ASCII example:
//
//	x_t ────────╮            ╭──────────
//	            ╰────────────╯
//	            ↑            ↑
//	        change @100  change @300
//
//	res, err := mojo.DetectMultilag(x, 83, []int{0, 1}, mojo.DefaultOptions())
//	// res.ChangePoints() → [≈100, ≈300]
//
// Dive into the runnable demos under examples/ for full scenarios: a mean
// shift, an autocorrelation flip no marginal statistic can see, and a
// multiscale scan over a bandwidth grid.
//
//	go get github.com/cran/CptNonPar
package cptnonpar
