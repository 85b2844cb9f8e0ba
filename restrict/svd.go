// Package restrict - SVD restriction solvers.
//
// Algorithm outline (SVDFromBasis):
//  1. Restrict: B = QᵀA (small, k×n).
//  2. Factorize B exactly: B = U_B·Σ·Vᵀ.
//  3. Lift: U = Q·U_B, truncate U, Σ, Vᵀ to the requested rank.
//
// The row-extraction variant replaces step 1 with an interpolative
// decomposition of Q: it reads only a k-row subset of A instead of forming
// QᵀA, which removes one full multiply by A at some cost in accuracy.
package restrict

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/interpolative"
)

// checkBasis validates the common (matrix, basis, rank) contract shared by
// all restriction solvers: a and q non-nil, rows(q)==rows(a), the basis no
// wider than rows(a), and 1 <= rank <= cols(q).
func checkBasis(a mat.Matrix, q *mat.Dense, rank int) error {
	if a == nil {
		return ErrNilMatrix
	}
	if q == nil {
		return ErrNilBasis
	}

	m, _ := a.Dims()
	qm, k := q.Dims()
	if qm != m || k > m {
		return ErrBadBasis
	}
	if rank < 1 || rank > k {
		return ErrBadRank
	}

	return nil
}

// SVDFromBasis computes a rank-`rank` approximate SVD of a restricted to
// the span of the orthonormal basis q. The basis is usually rank+oversample
// columns wide; the surplus directions are discarded here after the exact
// small SVD.
//
// Errors: ErrNilMatrix, ErrNilBasis, ErrBadBasis, ErrBadRank,
// ErrFactorization.
//
// Complexity: O(k·m·n) for the restriction, O(k²·n) for the small SVD,
// O(m·k·rank) for the lift, with k = cols(q).
func SVDFromBasis(a mat.Matrix, q *mat.Dense, rank int) (*SVD, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	m, n := a.Dims()
	_, k := q.Dims()
	if rank > n {
		return nil, ErrBadRank
	}

	// Restriction: B = QᵀA.
	b := mat.NewDense(k, n, nil)
	b.Mul(q.T(), a)

	var svd mat.SVD
	if !svd.Factorize(b, mat.SVDThin) {
		return nil, fmt.Errorf("SVDFromBasis: %w", ErrFactorization)
	}

	values := svd.Values(nil)
	var ub, v mat.Dense
	svd.UTo(&ub)
	svd.VTo(&v)

	// Lift and truncate.
	u := mat.NewDense(m, rank, nil)
	u.Mul(q, ub.Slice(0, k, 0, rank))

	vt := mat.NewDense(rank, n, nil)
	vt.Copy(v.Slice(0, n, 0, rank).T())

	return &SVD{U: u, Values: values[:rank:rank], Vt: vt}, nil
}

// SingularValues computes only the leading `rank` approximate singular
// values of a restricted to span(q), skipping both singular vector sets.
//
// Errors: as SVDFromBasis.
func SingularValues(a mat.Matrix, q *mat.Dense, rank int) ([]float64, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	_, n := a.Dims()
	_, k := q.Dims()
	if rank > n {
		return nil, ErrBadRank
	}

	b := mat.NewDense(k, n, nil)
	b.Mul(q.T(), a)

	var svd mat.SVD
	if !svd.Factorize(b, mat.SVDNone) {
		return nil, fmt.Errorf("SingularValues: %w", ErrFactorization)
	}

	return svd.Values(nil)[:rank:rank], nil
}

// SVDRowExtraction computes a rank-`rank` approximate SVD of a without
// forming QᵀA: an interpolative decomposition of q selects k representative
// rows J of a, the QR of a(J,:)ᵀ supplies the triangular correction, and
// only the small product Z = X·Rᵀ is factorized exactly.
//
// Faster than SVDFromBasis by one full multiply with a, and less accurate;
// prefer it when a is expensive to traverse.
//
// rng drives the interpolative row selection; nil uses the default stream.
//
// Errors: ErrNilMatrix, ErrNilBasis, ErrBadBasis, ErrBadRank,
// ErrFactorization, plus wrapped interpolative errors.
func SVDRowExtraction(a mat.Matrix, q *mat.Dense, rank int, rng *rand.Rand) (*SVD, error) {
	if err := checkBasis(a, q, rank); err != nil {
		return nil, err
	}
	m, n := a.Dims()
	_, k := q.Dims()
	if rank > n || k > n {
		return nil, ErrBadRank
	}

	// Row skeleton of Q: Q ≈ X·Q(J,:), rows J, X = Coeffᵀ.
	id, err := interpolative.Decompose(q.T(), k, k, rng)
	if err != nil {
		return nil, fmt.Errorf("SVDRowExtraction: %w", err)
	}
	x := mat.NewDense(m, k, nil)
	x.Copy(id.Coeff.T())

	// Selected rows of a, transposed for the thin QR: a(J,:)ᵀ = W·R.
	ajt := mat.NewDense(n, k, nil)
	row := make([]float64, n)
	for j, rowIdx := range id.Columns {
		for c := 0; c < n; c++ {
			row[c] = a.At(rowIdx, c)
		}
		ajt.SetCol(j, row)
	}
	w, r := thinQR(ajt)

	// Z = X·Rᵀ carries all of a's energy seen through the skeleton rows.
	z := mat.NewDense(m, k, nil)
	z.Mul(x, r.T())

	var svd mat.SVD
	if !svd.Factorize(z, mat.SVDThin) {
		return nil, fmt.Errorf("SVDRowExtraction: %w", ErrFactorization)
	}

	values := svd.Values(nil)
	var uz, vz mat.Dense
	svd.UTo(&uz)
	svd.VTo(&vz)

	u := mat.NewDense(m, rank, nil)
	u.Copy(uz.Slice(0, m, 0, rank))

	// Right vectors corrected through the skeleton QR's orthogonal factor.
	v := mat.NewDense(n, rank, nil)
	v.Mul(w, vz.Slice(0, k, 0, rank))

	vt := mat.NewDense(rank, n, nil)
	vt.Copy(v.T())

	return &SVD{U: u, Values: values[:rank:rank], Vt: vt}, nil
}
