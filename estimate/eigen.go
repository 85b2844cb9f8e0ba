// Package estimate - extremal eigenvalue and condition number brackets.
package estimate

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// EigMax returns an Interval bracketing the largest eigenvalue of a
// Hermitian positive-definite matrix a with probability 1−p.
//
// iters power steps on a produce the final norm ratio ρ, which bounds
// λmax from below deterministically; the upper end α²·ρ holds with
// probability 1−p (α as in NormPower, squared because eigenvalues of a
// are squared singular values of its symmetric factor).
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrBadIters, ErrBadProb.
func EigMax(a mat.Matrix, iters int, p float64, rng *rand.Rand) (Interval, error) {
	if a == nil {
		return Interval{}, ErrNilMatrix
	}
	m, n := a.Dims()
	if m != n {
		return Interval{}, ErrNotSquare
	}
	if iters < 2 {
		return Interval{}, ErrBadIters
	}
	if !(p > 0 && p < 1) {
		return Interval{}, ErrBadProb
	}

	rho, err := powerRatio(n, iters, rng, func(dst, src *mat.VecDense) error {
		dst.MulVec(a, src)

		return nil
	})
	if err != nil {
		return Interval{}, err
	}

	alpha := alphaPower(n, iters, p)

	return Interval{Lo: rho, Hi: alpha * alpha * rho}, nil
}

// EigMin returns an Interval bracketing the smallest eigenvalue of a
// Hermitian positive-definite matrix a with probability 1−p.
//
// Shift-and-bound: EigMax first brackets λmax with budget p/2; the shifted
// operator S = hi·I − a is positive semi-definite with
// λmax(S) = hi − λmin(a), so bracketing λmax(S) with the remaining p/2
// budget maps back to a bracket on λmin. The lower end can be very loose
// (even negative) for small iteration counts.
//
// Errors: as EigMax.
func EigMin(a mat.Matrix, iters int, p float64, rng *rand.Rand) (Interval, error) {
	if a == nil {
		return Interval{}, ErrNilMatrix
	}
	m, n := a.Dims()
	if m != n {
		return Interval{}, ErrNotSquare
	}
	if iters < 2 {
		return Interval{}, ErrBadIters
	}
	if !(p > 0 && p < 1) {
		return Interval{}, ErrBadProb
	}

	top, err := EigMax(a, iters, p/2, rng)
	if err != nil {
		return Interval{}, err
	}

	// S = hi·I − a, materialized densely; λ(S) = hi − λ(a).
	shifted := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -a.At(i, j)
			if i == j {
				v += top.Hi
			}
			shifted.Set(i, j, v)
		}
	}

	topS, err := EigMax(shifted, iters, p/2, rng)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Lo: top.Hi - topS.Hi, Hi: top.Hi - topS.Lo}, nil
}

// Cond returns an Interval bracketing the 2-norm condition number of a
// Hermitian positive-definite matrix a with probability 1−p.
//
// κ₂(a) = λmax(a)·λmax(a⁻¹); each factor is bracketed by the EigMax
// machinery with budget p/2, the inverse action supplied by dense solves.
// The derivation assumes exact arithmetic: past roughly 4 iterations the
// interval can, empirically, miss the true value, so keep iters small.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrBadIters, ErrBadProb,
// ErrSingular.
func Cond(a mat.Matrix, iters int, p float64, rng *rand.Rand) (Interval, error) {
	if a == nil {
		return Interval{}, ErrNilMatrix
	}
	m, n := a.Dims()
	if m != n {
		return Interval{}, ErrNotSquare
	}
	if iters < 2 {
		return Interval{}, ErrBadIters
	}
	if !(p > 0 && p < 1) {
		return Interval{}, ErrBadProb
	}

	top, err := EigMax(a, iters, p/2, rng)
	if err != nil {
		return Interval{}, err
	}

	rho, err := powerRatio(n, iters, rng, func(dst, src *mat.VecDense) error {
		if err := dst.SolveVec(a, src); err != nil {
			// An ill-conditioned solve still carries a usable direction;
			// only exact singularity is fatal.
			var cond mat.Condition
			if !errors.As(err, &cond) {
				return fmt.Errorf("%w: %v", ErrSingular, err)
			}
		}

		return nil
	})
	if err != nil {
		return Interval{}, err
	}

	alpha := alphaPower(n, iters, p/2)
	inv := Interval{Lo: rho, Hi: alpha * alpha * rho}

	return Interval{Lo: top.Lo * inv.Lo, Hi: top.Hi * inv.Hi}, nil
}
