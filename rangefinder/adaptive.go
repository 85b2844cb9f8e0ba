// Package rangefinder - adaptive (grow-to-tolerance) range finder.
//
// Algorithm outline:
//  1. Draw `window` random sample columns y_i = A·ω_i.
//  2. Loop:
//     2.1 Estimate the unrepresented residual as max_i ‖y_i‖ over the window.
//     2.2 Stop when the estimate falls below tol/(10·√(2/π)), when the basis
//     spans the full row count, or when the iteration cap is reached
//     (cap ⇒ warning on the diagnostic logger, best-effort basis returned).
//     2.3 Project the oldest candidate against the basis, normalize it, and
//     append it as the next basis column.
//     2.4 Replace the consumed candidate with a fresh projected sample and
//     remove the new direction from the remaining candidates.
//
// The basis lives in a preallocated arena of columns with an index-based
// active count; no slice regrowth happens inside the loop.
package rangefinder

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/sampler"
)

// adaptiveStopScale converts the caller's tolerance into the stopping
// threshold for the windowed residual estimate: threshold = tol·(1/(10·√(2/π))).
// The √(2/π) term is the expected magnitude of a standard Gaussian
// coordinate; the factor 10 makes the windowed max a conservative proxy for
// the true residual norm.
var adaptiveStopScale = 1 / (10 * math.Sqrt(2/math.Pi))

// dependentTol is the relative threshold under which a projected candidate
// is treated as linearly dependent and refreshed instead of appended.
const dependentTol = 1e-13

// AdaptiveOptions configures the adaptive range finder.
//
// Fields:
//   - MaxIter — hard cap on loop iterations; 0 means rows(A)+window.
//     Reaching the cap is a soft condition: a warning is emitted and the
//     best-effort basis is returned.
//   - Logger  — diagnostic channel for the cap warning; nil means the
//     process-wide logrus standard logger.
type AdaptiveOptions struct {
	MaxIter int
	Logger  logrus.FieldLogger
}

// DefaultAdaptiveOptions returns the documented defaults.
func DefaultAdaptiveOptions() AdaptiveOptions {
	return AdaptiveOptions{MaxIter: 0, Logger: nil}
}

// Adaptive grows an orthonormal basis for the dominant column space of a
// until the windowed residual estimate drops below tol (scaled by the fixed
// constant 1/(10·√(2/π))). window controls how many unprojected sample
// columns back the residual estimate; larger windows make the stopping rule
// more reliable at the cost of extra matrix-vector products.
//
// rng==nil uses the default deterministic stream.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance, ErrBadWindow.
//
// Non-convergence within the iteration cap is NOT an error: the basis built
// so far is returned and a warning is logged.
//
// Complexity: O(j·m·n) matrix-vector work for a final basis of j columns,
// plus O(j²·m) orthogonalization.
func Adaptive(a mat.Matrix, tol float64, window int, rng *rand.Rand, opts AdaptiveOptions) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if tol <= 0 || math.IsInf(tol, 1) || math.IsNaN(tol) {
		return nil, ErrBadTolerance
	}
	if window < 1 {
		return nil, ErrBadWindow
	}

	m, n := a.Dims()
	r := rng
	if r == nil {
		r = sampler.Stream(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = m + window
	}

	threshold := tol * adaptiveStopScale

	// Candidate window: unprojected sample columns y_i = A·ω_i.
	ys := make([][]float64, window)
	for i := range ys {
		ys[i] = freshCandidate(a, n, r)
	}

	// Basis arena: up to m columns of length m, tracked by an active count.
	arena := make([]float64, m*m)
	active := 0

	for it := 0; ; it++ {
		residual := 0.0
		for _, y := range ys {
			if nv := floats.Norm(y, 2); nv > residual {
				residual = nv
			}
		}
		if residual < threshold {
			break // converged
		}
		if active == m {
			break // full row space captured; nothing left to grow
		}
		if it >= maxIter {
			logger.WithFields(logrus.Fields{
				"iterations": it,
				"basis":      active,
				"residual":   residual,
				"threshold":  threshold,
			}).Warn("rangefinder: adaptive basis hit iteration cap before tolerance")

			break
		}

		// Consume the oldest candidate: re-project against the whole basis
		// to suppress drift accumulated since it was sampled.
		idx := it % window
		y := ys[idx]
		for c := 0; c < active; c++ {
			col := arena[c*m : (c+1)*m]
			floats.AddScaled(y, -floats.Dot(col, y), col)
		}

		norm := floats.Norm(y, 2)
		if norm <= dependentTol*residual {
			// Numerically dependent direction: refresh and retry.
			ys[idx] = projectedCandidate(a, n, r, arena, active, m)

			continue
		}

		col := arena[active*m : (active+1)*m]
		for i := range col {
			col[i] = y[i] / norm
		}
		active++

		// Replace the consumed candidate and sweep the new direction out of
		// the remaining ones.
		ys[idx] = projectedCandidate(a, n, r, arena, active, m)
		for i, other := range ys {
			if i == idx {
				continue
			}
			floats.AddScaled(other, -floats.Dot(col, other), col)
		}
	}

	if active == 0 {
		// Degenerate input (e.g. the zero matrix): return a single zero
		// column rather than a 0-width matrix.
		return mat.NewDense(m, 1, nil), nil
	}

	q := mat.NewDense(m, active, nil)
	for c := 0; c < active; c++ {
		for i := 0; i < m; i++ {
			q.Set(i, c, arena[c*m+i])
		}
	}

	return q, nil
}

// freshCandidate draws ω ~ N(0, I_n) and returns A·ω as a plain slice.
func freshCandidate(a mat.Matrix, n int, rng *rand.Rand) []float64 {
	omega, _ := sampler.GaussianVec(rng, n)
	m, _ := a.Dims()

	y := mat.NewVecDense(m, nil)
	y.MulVec(a, omega)

	return y.RawVector().Data
}

// projectedCandidate draws a fresh sample column and projects out the
// current basis (first `active` arena columns of length m).
func projectedCandidate(a mat.Matrix, n int, rng *rand.Rand, arena []float64, active, m int) []float64 {
	y := freshCandidate(a, n, rng)
	for c := 0; c < active; c++ {
		col := arena[c*m : (c+1)*m]
		floats.AddScaled(y, -floats.Dot(col, y), col)
	}

	return y
}
