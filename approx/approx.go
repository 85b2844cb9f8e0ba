package approx

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/rangefinder"
	"github.com/katalvlaran/lowrank/restrict"
)

// ErrBadOversample indicates a negative oversampling count.
var ErrBadOversample = errors.New("approx: oversample must be >= 0")

// SVD computes a rank-`rank` approximate singular value decomposition of a.
// oversample extra basis directions (typically 5–10) improve accuracy at
// the cost of slightly larger intermediate factorizations; zero is valid.
//
// Basis construction and rank validation errors surface unchanged from
// rangefinder and restrict.
func SVD(a mat.Matrix, rank, oversample int, rng *rand.Rand) (*restrict.SVD, error) {
	q, err := basis(a, rank, oversample, rng)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}

	s, err := restrict.SVDFromBasis(a, q, rank)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}

	return s, nil
}

// SingularValues computes only the leading `rank` approximate singular
// values of a; cheaper than SVD when the vectors are not needed.
func SingularValues(a mat.Matrix, rank, oversample int, rng *rand.Rand) ([]float64, error) {
	q, err := basis(a, rank, oversample, rng)
	if err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}

	vals, err := restrict.SingularValues(a, q, rank)
	if err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}

	return vals, nil
}

// Eigen computes a rank-`rank` approximate eigendecomposition of a
// Hermitian matrix a.
func Eigen(a mat.Matrix, rank, oversample int, rng *rand.Rand) (*restrict.Eigen, error) {
	q, err := basis(a, rank, oversample, rng)
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}

	e, err := restrict.EigenFromBasis(a, q, rank)
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}

	return e, nil
}

// basis draws the shared rank+oversample Gaussian basis.
func basis(a mat.Matrix, rank, oversample int, rng *rand.Rand) (*mat.Dense, error) {
	if oversample < 0 {
		return nil, ErrBadOversample
	}

	return rangefinder.Basic(a, rank+oversample, rng)
}
