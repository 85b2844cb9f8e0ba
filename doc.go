// Package lowrank is your toolbox for randomized low-rank matrix
// approximation — fast, probabilistic factorizations of matrices far too
// large for exact dense algorithms.
//
// 🚀 What is lowrank?
//
//	A library of randomized numerical linear algebra built on gonum:
//		• Samplers: deterministic Gaussian & SRFT random test matrices
//		• Range finders: basic, structured, subspace-iteration & adaptive
//		  orthonormal basis construction
//		• Restriction solvers: SVD & eigendecomposition of the projected
//		  problem — direct, row-extraction, Nyström and one-pass variants
//		• Interpolative decomposition: a matrix out of its own columns
//		• Iterative refinement: rank-k SVD grown by column sampling
//		• Probabilistic estimators: norm, extremal eigenvalues & condition
//		  number with explicit confidence intervals
//
// ✨ Why choose lowrank?
//
//   - Reproducible – every sampling call takes an explicit seeded stream
//   - Honest errors – sentinel errors, no clamping, no hidden retries
//   - High-probability bounds – accuracy statements with failure
//     probabilities, not vague point estimates
//   - Pure Go on gonum – dense kernels from gonum/mat, no cgo required
//
// Everything is organized under seven subpackages:
//
//	sampler/       — Gaussian & SRFT test matrices, RNG streams, permutations
//	rangefinder/   — orthonormal bases for dominant subspaces
//	interpolative/ — column-subset (skeleton) decomposition
//	restrict/      — exact solvers for the projected small problem
//	refine/        — iterative-refinement randomized SVD
//	estimate/      — probabilistic norm/eigenvalue/condition bounds
//	approx/        — one-call SVD / Eigen facade over the above
//
// Quick example:
//
//	rng := sampler.Stream(42)
//	s, err := approx.SVD(a, 10, 5, rng) // rank 10, oversampling 5
//	if err != nil {
//		// invalid rank, nil matrix, ...
//	}
//	fmt.Println("leading singular values:", s.Values)
//
// Start with approx for the common path; drop down to rangefinder +
// restrict when you need structured samples, power iterations or
// row-extraction variants, refine when columns arrive incrementally, and
// estimate when a certified bound matters more than a factorization.
//
//	go get github.com/katalvlaran/lowrank
package lowrank
