// Package approx is the one-call entry point for randomized low-rank
// factorization: a range finder composed with the matching restriction
// solver, with nothing to configure beyond rank and oversampling.
//
// Each function draws a Gaussian sample of rank+oversample columns, builds
// an orthonormal basis for the dominant subspace (package rangefinder) and
// factorizes the restricted problem exactly (package restrict), truncating
// back to the requested rank. Callers needing structured samples, power
// iterations, adaptive basis growth, row extraction or iterative
// refinement use those packages directly; this one only covers the common
// path.
package approx
