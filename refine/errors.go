package refine

import "errors"

// Sentinel errors returned by the refine package, matched via errors.Is.
// Invalid arguments are never clamped.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("refine: matrix is nil")

	// ErrBadRank indicates a requested rank outside [1, cols].
	ErrBadRank = errors.New("refine: rank must be in [1, cols]")

	// ErrBadSample indicates a per-sweep sample size outside [1, rank].
	ErrBadSample = errors.New("refine: sample size must be in [1, rank]")

	// ErrBadEpsilon indicates a negative or non-finite tolerance.
	ErrBadEpsilon = errors.New("refine: epsilon must be non-negative and finite")

	// ErrBadMode indicates a Mode value outside the declared enum.
	ErrBadMode = errors.New("refine: unknown solver mode")

	// ErrFactorization indicates the restricted solve failed to converge
	// in the underlying LAPACK routine.
	ErrFactorization = errors.New("refine: restricted factorization failed")

	// ErrWideNotSupported indicates a wide input matrix (rows < cols).
	// Row sampling for the transposed case is not implemented; callers must
	// transpose explicitly and swap the factors themselves.
	ErrWideNotSupported = errors.New("refine: wide matrices are not supported")
)
