package rangefinder

import "errors"

// Sentinel errors returned by the rangefinder package. Entry points return
// these directly; tests and callers match them via errors.Is.
// Invalid arguments are never clamped.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("rangefinder: matrix is nil")

	// ErrBadSize indicates a requested basis size < 1.
	ErrBadSize = errors.New("rangefinder: basis size must be >= 1")

	// ErrTooLarge indicates a requested basis size exceeding the matrix's
	// row count; no orthonormal basis of that width exists.
	ErrTooLarge = errors.New("rangefinder: basis size exceeds row count")

	// ErrBadPower indicates a negative power-iteration count.
	ErrBadPower = errors.New("rangefinder: power iteration count must be >= 0")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("rangefinder: tolerance must be positive and finite")

	// ErrBadWindow indicates a residual-estimation window < 1.
	ErrBadWindow = errors.New("rangefinder: window must be >= 1")
)
