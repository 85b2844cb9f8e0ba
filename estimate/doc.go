// Package estimate bounds matrix norms, extremal eigenvalues and condition
// numbers probabilistically, without any factorization.
//
// Every estimator returns an explicit bound or a bracketing Interval
// together with a caller-chosen failure probability p: the returned range
// contains the true quantity with probability at least 1−p over the random
// probes. Tightening p widens the range; nothing is ever clamped or
// solved-for internally.
//
// Estimators:
//   - Norm: sample-based spectral norm bound from a handful of
//     matrix-vector products.
//   - NormPower: tighter norm bound from a short power iteration on AᵀA;
//     needs a transpose-multiply.
//   - EigMax, EigMin: bracketing intervals for the extremal eigenvalues of
//     a Hermitian positive-definite matrix; EigMin works by shifting the
//     spectrum and bounding the shifted maximum.
//   - Cond: interval around the 2-norm condition number, combining the
//     EigMax machinery on A and on A⁻¹ (dense solves).
//
// The bound derivations assume exact arithmetic. Empirically, driving the
// power-based estimators past roughly 4 iterations can produce intervals
// that fail to contain the true value; the iteration count is therefore an
// explicit caller parameter, never chosen internally.
package estimate
