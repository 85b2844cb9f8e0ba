package sampler

import "errors"

// Sentinel errors returned by the sampler package. All sampling functions
// return these sentinels directly; callers match them with errors.Is.
var (
	// ErrBadShape indicates a non-positive row or column count.
	ErrBadShape = errors.New("sampler: dimensions must be > 0")

	// ErrBadCount indicates that the requested sample count is outside the
	// valid range for the transform (SRFT requires 1 <= l <= n).
	ErrBadCount = errors.New("sampler: sample count out of range")
)
