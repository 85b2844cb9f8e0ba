package restrict

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the restrict package. Entry points return
// these (optionally wrapped with the operation name); match with errors.Is.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("restrict: matrix is nil")

	// ErrNilBasis indicates a nil basis/sample matrix.
	ErrNilBasis = errors.New("restrict: basis is nil")

	// ErrBadRank indicates a requested rank < 1 or beyond what the basis
	// and matrix dimensions can support.
	ErrBadRank = errors.New("restrict: rank out of range")

	// ErrBadBasis indicates a basis whose shape is incompatible with the
	// matrix (row mismatch, or wider than the matrix allows).
	ErrBadBasis = errors.New("restrict: basis shape incompatible with matrix")

	// ErrBadSample indicates a one-pass sample count outside [rank, cols].
	ErrBadSample = errors.New("restrict: sample count out of range")

	// ErrNotSquare indicates a non-square input to an eigendecomposition.
	ErrNotSquare = errors.New("restrict: matrix is not square")

	// ErrNotPositiveDefinite indicates that the Nyström restriction QᵀAQ was
	// not positive-definite; the Cholesky step cannot proceed.
	ErrNotPositiveDefinite = errors.New("restrict: restricted matrix is not positive definite")

	// ErrFactorization indicates that an exact dense factorization of the
	// small restricted matrix failed to converge.
	ErrFactorization = errors.New("restrict: dense factorization failed")
)

// SVD is an approximate singular value decomposition A ≈ U·diag(Values)·Vt.
//
// Invariants:
//   - Values are non-negative and descending.
//   - U (m×rank) and Vt (rank×n) have orthonormal columns/rows when produced
//     by the exact restriction solvers; refinement-based producers may only
//     be approximately orthonormal.
//
// The value is immutable and holds no reference to the input matrix.
type SVD struct {
	U      *mat.Dense
	Values []float64
	Vt     *mat.Dense
}

// Eigen is an approximate eigendecomposition A ≈ Vectors·diag(Values)·Vectorsᵀ
// for Hermitian (symmetric real) input.
//
// Values are real and ordered by descending magnitude — the order in which
// a randomized range finder resolves them. Vectors holds the matching
// eigenvector columns.
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// thinQR returns the thin orthogonal factor Q (m×n) and the square upper
// triangular factor R (n×n) of a tall matrix (m >= n).
func thinQR(y *mat.Dense) (*mat.Dense, *mat.Dense) {
	m, n := y.Dims()

	var qr mat.QR
	qr.Factorize(y)

	var full, rfull mat.Dense
	qr.QTo(&full)
	qr.RTo(&rfull)

	q := mat.NewDense(m, n, nil)
	q.Copy(full.Slice(0, m, 0, n))
	r := mat.NewDense(n, n, nil)
	r.Copy(rfull.Slice(0, n, 0, n))

	return q, r
}

// symmetrize folds a nearly-symmetric square dense matrix into a SymDense,
// averaging the off-diagonal pairs to suppress floating-point asymmetry.
func symmetrize(b *mat.Dense) *mat.SymDense {
	n, _ := b.Dims()

	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, b.At(i, i))
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, 0.5*(b.At(i, j)+b.At(j, i)))
		}
	}

	return s
}

// dominantEigen factorizes the small symmetric matrix s exactly and returns
// its top `rank` eigenpairs ordered by descending magnitude.
func dominantEigen(s *mat.SymDense, rank int) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, ErrFactorization
	}

	values := es.Values(nil) // ascending order
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return abs(values[order[i]]) > abs(values[order[j]])
	})

	n, _ := s.Dims()
	outVals := make([]float64, rank)
	outVecs := mat.NewDense(n, rank, nil)
	buf := make([]float64, n)
	for j := 0; j < rank; j++ {
		idx := order[j]
		outVals[j] = values[idx]
		mat.Col(buf, idx, &vecs)
		outVecs.SetCol(j, buf)
	}

	return outVals, outVecs, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
