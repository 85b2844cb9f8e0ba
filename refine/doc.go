// Package refine builds a rank-≤k approximate SVD by iterative column
// sampling instead of a one-shot range finder.
//
// Each sweep samples a handful of fresh columns of A, projects them against
// the running basis, merges the remainder in, and re-solves the restricted
// problem, so the approximation grows only along directions the current
// estimate misses. The process stops when the leading singular value
// estimate stops growing, when the sweep cap is reached (a soft condition
// reported on the diagnostic logger), or when a sweep leaves no usable
// directions at all (degenerate case, the last valid estimate is returned).
//
// Two restricted solvers are available, chosen by Mode:
//   - ModeEig: eigendecomposition of the small Gram matrix B·Bᵀ. Cheaper,
//     squares the conditioning of the problem.
//   - ModeSVD: direct SVD of the restricted matrix B. More stable.
//
// Only tall matrices (rows ≥ cols) are supported; wide input is rejected
// with ErrWideNotSupported rather than silently transposed.
//
// Unlike the exact restriction solvers in package restrict, the factors
// produced here are only approximately orthonormal: each sweep re-derives
// them from a fresh restricted solve rather than a global QR.
package refine
