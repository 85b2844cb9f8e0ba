package estimate

import "errors"

// Sentinel errors returned by the estimate package, matched via errors.Is.
// Invalid arguments are never clamped.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("estimate: matrix is nil")

	// ErrBadProb indicates a failure probability outside (0, 1).
	ErrBadProb = errors.New("estimate: failure probability must be in (0, 1)")

	// ErrBadCount indicates a matrix-vector product budget < 1.
	ErrBadCount = errors.New("estimate: sample count must be >= 1")

	// ErrBadIters indicates a power-iteration count < 2; the confidence
	// bound's α is undefined for a single step.
	ErrBadIters = errors.New("estimate: iteration count must be >= 2")

	// ErrNotSquare indicates a non-square input to an eigenvalue or
	// condition-number estimator.
	ErrNotSquare = errors.New("estimate: matrix must be square")

	// ErrSingular indicates the dense solve inside Cond failed; the matrix
	// has no usable inverse action.
	ErrSingular = errors.New("estimate: matrix is singular")
)
