// Package estimate - probabilistic spectral norm bounds.
package estimate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/sampler"
)

// Interval brackets an unknown scalar: the true value lies in [Lo, Hi]
// with the probability stated by the producing estimator.
type Interval struct {
	Lo, Hi float64
}

// Norm returns an upper bound on ‖a‖₂ from mvps matrix-vector products
// against raw (unnormalized) Gaussian probes:
//
//	‖a‖₂ ≤ α·√(2/π)·maxᵢ‖a·ωᵢ‖
//
// holding with probability 1−α^(−mvps); α is solved from the caller's
// failure probability p. More products mean a smaller α and a tighter
// bound at the same confidence.
//
// Errors: ErrNilMatrix, ErrBadCount, ErrBadProb.
func Norm(a mat.Matrix, mvps int, p float64, rng *rand.Rand) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if mvps < 1 {
		return 0, ErrBadCount
	}
	if !(p > 0 && p < 1) {
		return 0, ErrBadProb
	}

	m, n := a.Dims()
	alpha := math.Pow(p, -1/float64(mvps))

	y := mat.NewVecDense(m, nil)
	largest := 0.0
	for i := 0; i < mvps; i++ {
		omega, err := sampler.GaussianVec(rng, n)
		if err != nil {
			return 0, err
		}
		y.MulVec(a, omega)
		if nrm := mat.Norm(y, 2); nrm > largest {
			largest = nrm
		}
	}

	return alpha * math.Sqrt(2/math.Pi) * largest, nil
}

// NormPower returns an upper bound on ‖a‖₂ from iters steps of the power
// method on aᵀa started at a normalized Gaussian probe. The last ratio ρ
// of successive iterate norms estimates ‖a‖₂² from below; the bound α·√ρ
// holds with probability 1−p, where α is solved from
//
//	p = 4·√(n/(iters−1))·α^(−2·iters)
//
// Costs one multiply and one transpose-multiply per step, but is much
// tighter than Norm for the same budget.
//
// Errors: ErrNilMatrix, ErrBadIters, ErrBadProb.
func NormPower(a mat.Matrix, iters int, p float64, rng *rand.Rand) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if iters < 2 {
		return 0, ErrBadIters
	}
	if !(p > 0 && p < 1) {
		return 0, ErrBadProb
	}

	m, n := a.Dims()
	tmp := mat.NewVecDense(m, nil)
	rho, err := powerRatio(n, iters, rng, func(dst, src *mat.VecDense) error {
		tmp.MulVec(a, src)
		dst.MulVec(a.T(), tmp)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return alphaPower(n, iters, p) * math.Sqrt(rho), nil
}

// alphaPower solves the power-method confidence relation
// p = 4·√(n/(iters−1))·α^(−2·iters) for α. Requires iters >= 2.
func alphaPower(n, iters int, p float64) float64 {
	return math.Pow(4*math.Sqrt(float64(n)/float64(iters-1))/p, 1/float64(2*iters))
}

// powerRatio runs iters steps of x ← apply(x), renormalizing every step,
// and returns the final norm ratio. A zero ratio means the probe landed in
// the operator's kernel (or the operator is zero); callers treat that as a
// zero estimate.
func powerRatio(n, iters int, rng *rand.Rand, apply func(dst, src *mat.VecDense) error) (float64, error) {
	x, err := sampler.GaussianVec(rng, n)
	if err != nil {
		return 0, err
	}
	nrm := mat.Norm(x, 2)
	if nrm == 0 {
		return 0, nil
	}
	x.ScaleVec(1/nrm, x)

	y := mat.NewVecDense(n, nil)
	rho := 0.0
	for i := 0; i < iters; i++ {
		if err := apply(y, x); err != nil {
			return 0, err
		}
		rho = mat.Norm(y, 2)
		if rho == 0 {
			return 0, nil
		}
		x.ScaleVec(1/rho, y)
	}

	return rho, nil
}
