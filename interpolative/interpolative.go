// Package interpolative - randomized column interpolative decomposition.
//
// Algorithm outline (Decompose):
//  1. Draw a compact probe Ω (probe×m Gaussian) and project Y = Ω·A.
//  2. Column-pivoted QR of Y (LAPACK Geqp3); the first rank pivots name the
//     skeleton columns J.
//  3. B = A[:, J]; P = least-squares solution of B·P ≈ A, with the identity
//     block at J written exactly.
package interpolative

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/sampler"
)

// Sentinel errors returned by the interpolative package.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("interpolative: matrix is nil")

	// ErrBadRank indicates rank < 1 or rank > min(rows, cols).
	ErrBadRank = errors.New("interpolative: rank out of range")

	// ErrBadProbe indicates a probe size smaller than the requested rank.
	ErrBadProbe = errors.New("interpolative: probe size must be >= rank")

	// ErrIllConditioned indicates that the skeleton columns were too close
	// to dependent for the coefficient solve.
	ErrIllConditioned = errors.New("interpolative: skeleton is ill-conditioned")
)

// Decomposition is the result of an interpolative decomposition A ≈ B·P.
//
// Invariants:
//   - Skeleton is an m×rank column subset of the input, in Columns order.
//   - Coeff is rank×n, with an exact rank×rank identity sub-block at the
//     positions listed in Columns.
//   - ‖Skeleton·Coeff − A‖ is bounded by a small multiple of σ_{rank+1}(A)
//     with high probability.
//
// The value is immutable after creation and holds no reference to the input.
type Decomposition struct {
	// Skeleton holds the selected columns of the input, verbatim.
	Skeleton *mat.Dense
	// Coeff maps the skeleton back onto the full matrix.
	Coeff *mat.Dense
	// Columns lists the original indices of the selected columns.
	Columns []int
}

// Decompose computes a rank-k interpolative decomposition of a using a
// probe×rows(a) Gaussian projection, probe >= rank. rng==nil uses the
// default deterministic stream.
//
// Larger probe surpluses (probe − rank) tighten the error bound at the cost
// of a taller projection; probe = rank+5..rank+10 is a practical default.
//
// Errors: ErrNilMatrix, ErrBadRank, ErrBadProbe, ErrIllConditioned.
//
// Complexity: O(probe·m·n) for the projection, O(probe·n·rank) for the
// pivoted QR, O(m·rank² + m·rank·n) for the coefficient solve.
func Decompose(a mat.Matrix, rank, probe int, rng *rand.Rand) (*Decomposition, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if rank < 1 || rank > m || rank > n {
		return nil, ErrBadRank
	}
	if probe < rank {
		return nil, ErrBadProbe
	}

	omega, err := sampler.Gaussian(rng, probe, m)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	y := mat.NewDense(probe, n, nil)
	y.Mul(omega, a)

	pivots := pivotedQROrder(y)
	cols := append([]int(nil), pivots[:rank]...)

	// Skeleton: the selected columns of a, verbatim.
	skeleton := mat.NewDense(m, rank, nil)
	buf := make([]float64, m)
	for j, c := range cols {
		mat.Col(buf, c, a)
		skeleton.SetCol(j, buf)
	}

	// Coefficients: least-squares solution Skeleton·P ≈ A.
	coeff := mat.NewDense(rank, n, nil)
	if err = coeff.Solve(skeleton, a); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("Decompose: %w: %w", ErrIllConditioned, err)
		}
		// A mat.Condition warning still carries a usable solution.
	}

	// Write the identity block exactly at the selected positions.
	for j, c := range cols {
		for i := 0; i < rank; i++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			coeff.Set(i, c, v)
		}
	}

	return &Decomposition{Skeleton: skeleton, Coeff: coeff, Columns: cols}, nil
}

// pivotedQROrder returns the column permutation chosen by a column-pivoted
// QR factorization of y (LAPACK Geqp3 with the standard two-phase workspace
// query). The returned slice maps position -> original column index.
func pivotedQROrder(y *mat.Dense) []int {
	r, c := y.Dims()

	// Geqp3 overwrites its input; hand it a tightly packed copy.
	g := blas64.General{Rows: r, Cols: c, Stride: c, Data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Data[i*c+j] = y.At(i, j)
		}
	}

	jpvt := make([]int, c)
	for i := range jpvt {
		jpvt[i] = -1 // every column is free to pivot
	}
	tau := make([]float64, min(r, c))

	work := make([]float64, 1)
	lapack64.Geqp3(g, jpvt, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqp3(g, jpvt, tau, work, len(work))

	return jpvt
}
