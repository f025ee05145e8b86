// Package mojo implements NP-MOJO, a nonparametric multilag change point
// detector for multivariate time series, with moving-sum (MOSUM) scans over
// kernels of joint characteristic functions and a dependent multiplier
// bootstrap for threshold calibration.
//
// Overview:
//
//   - The series is lag-embedded: Z_t = (x_t, x_{t+ℓ}) pairs each
//     observation with its ℓ-step successor. Changes in the joint law of
//     (x_t, x_{t+ℓ}) cover marginal changes (ℓ = 0) as well as changes in
//     serial dependence that leave every marginal law untouched (ℓ > 0).
//   - For each center k, two adjacent windows of G embedded points are
//     compared through the V-statistic D(k) of a characteristic-function
//     kernel; T(k) = √G·D(k) peaks where the joint distribution changes.
//   - The detection threshold is calibrated by a dependent multiplier
//     bootstrap that reuses the precomputed kernel band, or supplied
//     manually per lag and bandwidth.
//   - Exceedance runs of T are reduced to point estimates under eta,
//     epsilon, or combined criteria; estimates from several lags are merged
//     into clusters, and estimates from several bandwidths are pruned
//     bottom-up, finest bandwidth first.
//
// When to use:
//
//   - Detect mean, scale, or dependence changes without choosing a
//     parametric model first.
//   - Segment series whose changes hide from marginal statistics (for
//     example a flip in autocorrelation sign at constant mean and
//     variance): scan lags {0, 1, …} together with DetectMultilag.
//   - Localize changes of unknown spacing with DetectMultiscale over a
//     bandwidth grid.
//
// Entry points:
//
//   - Detect:          one bandwidth, one lag.
//   - DetectMultilag:  one bandwidth, several lags, cross-lag clustering.
//   - DetectMultiscale: several bandwidths, bottom-up pruning.
//   - MergeLags / MergeMultiscale: the merging stages, exported for
//     recombining precomputed Results under new merge parameters.
//
// Performance and complexity:
//
//   - One scan costs O(n·G) kernel-band lookups after an O(n·G·p) band
//     build; bootstrap calibration adds O(R·n·G) spread over Workers
//     goroutines.
//   - Memory is dominated by the O(n·G) kernel band, shared by the plain
//     scan and all bootstrap replicates of a lag.
//
// Error handling (two levels):
//
//   - Class sentinels (ErrConfiguration, ErrInvalidParameter,
//     ErrInvalidBandwidth, ErrInvalidLag, ErrDimensionMismatch) group
//     faults by kind; specific sentinels (ErrAlphaRange, ErrDuplicateLag,
//     ErrThresholdShape, …) wrap them, so errors.Is matches at either
//     level.
//   - ErrCalibrationFailed stands alone: it reports a bootstrap replicate
//     that degenerated, not a caller mistake.
//
// Determinism and thread safety:
//
//   - All randomness derives from Options.Seed; every bootstrap replicate
//     owns a stream keyed by (seed, lag, replicate), so results are
//     bit-for-bit reproducible for any Workers setting.
//   - Detection functions are pure: they never mutate the input series and
//     share no state, so concurrent calls are safe.
//
// See also:
//
//   - series.Series: validated immutable input container.
//   - kernels: the kernel families and the data-driven scale heuristic.
//   - simulate: reproducible test-signal generators used throughout the
//     examples and tests.
package mojo
