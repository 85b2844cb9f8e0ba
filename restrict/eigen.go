// Package restrict - eigendecomposition restriction solvers.
//
// All solvers in this file require square input; the Hermitian ones assume
// (and do not verify) symmetry, folding the restricted operator through
// symmetrize to suppress floating-point asymmetry before the exact
// factorization.
package restrict

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/interpolative"
	"github.com/katalvlaran/lowrank/sampler"
)

// EigenFromBasis computes a rank-`rank` approximate eigendecomposition of a
// Hermitian matrix a restricted to span(q): B = QᵀAQ is factorized exactly
// and the eigenvectors are lifted through Q.
//
// Errors: ErrNilMatrix, ErrNilBasis, ErrNotSquare, ErrBadBasis, ErrBadRank,
// ErrFactorization.
//
// Complexity: O(k·n²) restriction, O(k³) exact eigendecomposition,
// O(n·k·rank) lift, with k = cols(q).
func EigenFromBasis(a mat.Matrix, q *mat.Dense, rank int) (*Eigen, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	m, n := a.Dims()
	if m != n {
		return nil, ErrNotSquare
	}
	_, k := q.Dims()

	// Restriction: B = QᵀAQ.
	aq := mat.NewDense(n, k, nil)
	aq.Mul(a, q)
	b := mat.NewDense(k, k, nil)
	b.Mul(q.T(), aq)

	values, w, err := dominantEigen(symmetrize(b), rank)
	if err != nil {
		return nil, fmt.Errorf("EigenFromBasis: %w", err)
	}

	vectors := mat.NewDense(n, rank, nil)
	vectors.Mul(q, w)

	return &Eigen{Values: values, Vectors: vectors}, nil
}

// EigenRowExtraction computes a rank-`rank` approximate eigendecomposition
// of a Hermitian matrix a through the row-extraction shortcut: an
// interpolative decomposition of q picks index set J, only the k×k block
// a(J,J) is read, and the triangular factor of X's QR corrects the
// restricted operator Z = R·a(J,J)·Rᵀ.
//
// Cheaper than EigenFromBasis (no full multiply by a), less accurate.
//
// Errors: as EigenFromBasis, plus wrapped interpolative errors.
func EigenRowExtraction(a mat.Matrix, q *mat.Dense, rank int, rng *rand.Rand) (*Eigen, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	m, n := a.Dims()
	if m != n {
		return nil, ErrNotSquare
	}
	_, k := q.Dims()

	// Row skeleton of Q: Q ≈ X·Q(J,:).
	id, err := interpolative.Decompose(q.T(), k, k, rng)
	if err != nil {
		return nil, fmt.Errorf("EigenRowExtraction: %w", err)
	}
	x := mat.NewDense(n, k, nil)
	x.Copy(id.Coeff.T())

	// X = V·R; the triangular factor reshapes a(J,J) into span(V).
	v, r := thinQR(x)

	ajj := mat.NewDense(k, k, nil)
	for i, ri := range id.Columns {
		for j, cj := range id.Columns {
			ajj.Set(i, j, a.At(ri, cj))
		}
	}

	var tmp, z mat.Dense
	tmp.Mul(r, ajj)
	z.Mul(&tmp, r.T())

	values, w, err := dominantEigen(symmetrize(&z), rank)
	if err != nil {
		return nil, fmt.Errorf("EigenRowExtraction: %w", err)
	}

	vectors := mat.NewDense(n, rank, nil)
	vectors.Mul(v, w)

	return &Eigen{Values: values, Vectors: vectors}, nil
}

// EigenNystrom computes a rank-`rank` approximate eigendecomposition of a
// positive-semidefinite matrix a via the Nyström method: B₁ = AQ,
// B₂ = QᵀB₁, Cholesky B₂ = LLᵀ, F = B₁·L⁻ᵀ, and the SVD of F gives
// eigenvalues as squared singular values.
//
// More accurate than EigenFromBasis on PSD input, but the restricted
// operator must be strictly positive-definite: a semidefinite or indefinite
// restriction surfaces ErrNotPositiveDefinite, never a silent fallback.
//
// Errors: ErrNilMatrix, ErrNilBasis, ErrNotSquare, ErrBadBasis, ErrBadRank,
// ErrNotPositiveDefinite, ErrFactorization.
func EigenNystrom(a mat.Matrix, q *mat.Dense, rank int) (*Eigen, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	m, n := a.Dims()
	if m != n {
		return nil, ErrNotSquare
	}
	_, k := q.Dims()

	b1 := mat.NewDense(n, k, nil)
	b1.Mul(a, q)
	b2 := mat.NewDense(k, k, nil)
	b2.Mul(q.T(), b1)

	var chol mat.Cholesky
	if !chol.Factorize(symmetrize(b2)) {
		return nil, fmt.Errorf("EigenNystrom: %w", ErrNotPositiveDefinite)
	}
	var l mat.TriDense
	chol.LTo(&l)

	// F·Lᵀ = B₁ ⇔ L·Fᵀ = B₁ᵀ; one triangular solve.
	var ft mat.Dense
	if err := ft.Solve(&l, b1.T()); err != nil {
		return nil, fmt.Errorf("EigenNystrom: %w", ErrNotPositiveDefinite)
	}

	f := mat.NewDense(n, k, nil)
	f.Copy(ft.T())

	var svd mat.SVD
	if !svd.Factorize(f, mat.SVDThin) {
		return nil, fmt.Errorf("EigenNystrom: %w", ErrFactorization)
	}

	sigma := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	values := make([]float64, rank)
	for i := 0; i < rank; i++ {
		values[i] = sigma[i] * sigma[i]
	}

	vectors := mat.NewDense(n, rank, nil)
	vectors.Copy(u.Slice(0, n, 0, rank))

	return &Eigen{Values: values, Vectors: vectors}, nil
}

// EigenOnePass computes a rank-`rank` approximate eigendecomposition of a
// Hermitian matrix a from a single traversal: the same sample Ω that builds
// the basis also calibrates the restricted operator, so a is multiplied
// exactly once. B is recovered from the least-squares system
// B·(QᵀΩ) ≈ QᵀY rather than an exact projection.
//
// sample is the number of probe columns (rank <= sample <= cols(a)); more
// samples stabilize the least-squares calibration.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrBadSample, ErrBadRank,
// ErrFactorization.
func EigenOnePass(a mat.Matrix, sample, rank int, rng *rand.Rand) (*Eigen, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if m != n {
		return nil, ErrNotSquare
	}
	if rank < 1 {
		return nil, ErrBadRank
	}
	if sample < rank || sample > n {
		return nil, ErrBadSample
	}

	omega, err := sampler.Gaussian(rng, n, sample)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePass: %w", err)
	}

	y := mat.NewDense(n, sample, nil)
	y.Mul(a, omega)
	q, _ := thinQR(y)

	b, err := calibrate(q, omega, y)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePass: %w", err)
	}

	values, w, err := dominantEigen(symmetrize(b), rank)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePass: %w", err)
	}

	vectors := mat.NewDense(n, rank, nil)
	vectors.Mul(q, w)

	return &Eigen{Values: values, Vectors: vectors}, nil
}

// EigenOnePassNonsym is the one-pass solver for square, not necessarily
// symmetric a: one multiply by a and one by aᵀ produce two independent
// estimates of the restricted operator, which are averaged.
//
// The averaging is a documented heuristic correction, not a proven-optimal
// estimator; whether it biases results for strongly non-normal matrices is
// an open question, so the behavior is preserved exactly rather than
// "improved". The averaged operator is then symmetrized for the exact
// eigendecomposition.
//
// Errors: as EigenOnePass.
func EigenOnePassNonsym(a mat.Matrix, sample, rank int, rng *rand.Rand) (*Eigen, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if m != n {
		return nil, ErrNotSquare
	}
	if rank < 1 {
		return nil, ErrBadRank
	}
	if sample < rank || sample > n {
		return nil, ErrBadSample
	}

	omega, err := sampler.Gaussian(rng, n, sample)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePassNonsym: %w", err)
	}
	omegaT, err := sampler.Gaussian(rng, n, sample)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePassNonsym: %w", err)
	}

	// Both products come from the same traversal of a.
	y := mat.NewDense(n, sample, nil)
	y.Mul(a, omega)
	yt := mat.NewDense(n, sample, nil)
	yt.Mul(a.T(), omegaT)

	q, _ := thinQR(y)

	// First estimate: B₁·(QᵀΩ) ≈ QᵀY targets QᵀAQ.
	b1, err := calibrate(q, omega, y)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePassNonsym: %w", err)
	}
	// Second estimate: B₂·(QᵀΩ̃) ≈ QᵀỸ with Ỹ = AᵀΩ̃ targets the adjoint
	// QᵀAᵀQ, so it enters the average transposed.
	b2, err := calibrate(q, omegaT, yt)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePassNonsym: %w", err)
	}

	// Averaged heuristic correction of the two independent estimates.
	b := mat.NewDense(sample, sample, nil)
	b.Add(b1, b2.T())
	b.Scale(0.5, b)

	values, w, err := dominantEigen(symmetrize(b), rank)
	if err != nil {
		return nil, fmt.Errorf("EigenOnePassNonsym: %w", err)
	}

	vectors := mat.NewDense(n, rank, nil)
	vectors.Mul(q, w)

	return &Eigen{Values: values, Vectors: vectors}, nil
}

// calibrate solves B·(QᵀΩ) ≈ QᵀY for the restricted operator B, via the
// transposed least-squares system (ΩᵀQ)·Bᵀ = YᵀQ.
func calibrate(q, omega, y *mat.Dense) (*mat.Dense, error) {
	_, k := q.Dims()

	var lhs, rhs mat.Dense
	lhs.Mul(omega.T(), q)
	rhs.Mul(y.T(), q)

	var bt mat.Dense
	if err := bt.Solve(&lhs, &rhs); err != nil {
		return nil, ErrFactorization
	}

	b := mat.NewDense(k, k, nil)
	b.Copy(bt.T())

	return b, nil
}
