// Package refine types: solver mode and sweep options.
package refine

import (
	"github.com/sirupsen/logrus"
)

// Mode selects the restricted solver used at the end of every sweep.
//
//   - ModeEig — eigendecomposition of the Gram matrix B·Bᵀ. One small
//     symmetric factorization per sweep, but the squaring halves the
//     usable precision for small singular values.
//   - ModeSVD — direct SVD of the restricted matrix B. Slower per sweep,
//     numerically the safer choice.
type Mode int

const (
	// ModeEig solves the restricted problem through the Gram matrix.
	ModeEig Mode = iota

	// ModeSVD solves the restricted problem with a direct thin SVD.
	ModeSVD
)

// Options configures the refinement loop.
//
// Fields:
//   - Sample  — columns drawn per sweep, in [1, rank]. 0 means rank.
//   - MaxIter — sweep cap. Hitting it is a soft condition: the best-effort
//     result is still returned and a warning goes to Logger. 0 means
//     DefaultMaxIter.
//   - Epsilon — relative tolerance shared by the dependence-dropping step
//     and the convergence test. 0 means rows·cols·machine-epsilon.
//   - Seed    — deterministic sample stream seed (0 means the package
//     default stream).
//   - Logger  — diagnostic channel for soft non-convergence. nil means
//     logrus.StandardLogger().
type Options struct {
	Sample  int
	MaxIter int
	Epsilon float64
	Seed    int64
	Logger  logrus.FieldLogger
}

// DefaultMaxIter is the sweep cap used when Options.MaxIter is 0.
const DefaultMaxIter = 100

// DefaultOptions returns the zero-value Options; every zero field resolves
// to its documented default inside RSVD.
func DefaultOptions() Options {
	return Options{}
}
