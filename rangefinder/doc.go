// Package rangefinder computes orthonormal bases approximating the dominant
// column space of a matrix from a small number of matrix-vector products.
//
// A range finder is the first half of every randomized factorization in
// lowrank: it turns a large matrix A into a slim basis Q with QᵀQ = I whose
// span captures the action of A, so that the restriction solvers in
// package restrict can factorize the small projected problem exactly.
//
// Variants, by accuracy/cost trade-off:
//   - Basic: fixed-size Gaussian sample, one multiply, one QR. The default.
//   - Structured: identical control flow with an SRFT-style sample instead
//     of dense Gaussian.
//   - Subspace: q alternated power iterations through A and Aᵀ sharpen the
//     spectral gap before the final QR; q=0 coincides with Basic.
//   - Adaptive: grows the basis one column at a time until the residual
//     estimate over a sliding window of unprojected sample columns drops
//     below the caller's tolerance; hitting the iteration cap is a soft
//     condition reported on the diagnostic logger, never an error.
//
// Oversampling:
//
//	All fixed-size variants take the total basis size; callers pass
//	rank+oversample and discard the extra directions after restriction.
//	Zero oversampling is valid but reduces accuracy.
//
// Invariant: every returned basis satisfies ‖QᵀQ − I‖ within the tolerance
// of the underlying QR routine.
package rangefinder
