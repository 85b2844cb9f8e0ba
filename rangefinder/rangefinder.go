// Package rangefinder - fixed-size range finder variants.
//
// Algorithm outline (Basic):
//  1. Draw a random n×size sample Ω.
//  2. Sketch Y = A·Ω (one pass over A).
//  3. Orthonormalize Y's columns by QR; return the thin Q factor.
//
// The Subspace variant interleaves q rounds of Aᵀ/A multiplication with
// re-orthonormalization between the sketch and the final QR, trading extra
// passes over A for a sharper separation between the dominant and
// subdominant singular directions.
package rangefinder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/sampler"
)

// thinQR orthonormalizes the columns of y (rows >= cols required) and
// returns the thin m×n orthogonal factor as a fresh matrix.
func thinQR(y *mat.Dense) *mat.Dense {
	m, n := y.Dims()

	var qr mat.QR
	qr.Factorize(y)

	var full mat.Dense
	qr.QTo(&full)

	q := mat.NewDense(m, n, nil)
	q.Copy(full.Slice(0, m, 0, n))

	return q
}

// Basic computes an orthonormal basis for the dominant column space of a
// using a dense Gaussian sample of the given total size (target dimension
// plus oversampling). rng==nil uses the default deterministic stream.
//
// Errors:
//   - ErrNilMatrix, ErrBadSize.
//   - ErrTooLarge if size exceeds a's row count.
//
// Complexity: O(m·n·size) for the sketch plus O(m·size²) for the QR.
func Basic(a mat.Matrix, size int, rng *rand.Rand) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if size < 1 {
		return nil, ErrBadSize
	}
	if size > m {
		return nil, ErrTooLarge
	}

	omega, err := sampler.Gaussian(rng, n, size)
	if err != nil {
		return nil, fmt.Errorf("Basic: %w", err)
	}

	y := mat.NewDense(m, size, nil)
	y.Mul(a, omega)

	return thinQR(y), nil
}

// Structured is Basic with an SRFT-style structured sample in place of the
// dense Gaussian one. The structured sample constrains size <= cols(a) in
// addition to Basic's size <= rows(a).
//
// Errors: ErrNilMatrix, ErrBadSize, ErrTooLarge, and the sampler's
// ErrBadCount (wrapped) when size exceeds the column count.
func Structured(a mat.Matrix, size int, rng *rand.Rand) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if size < 1 {
		return nil, ErrBadSize
	}
	if size > m {
		return nil, ErrTooLarge
	}

	omega, err := sampler.SRFT(rng, n, size)
	if err != nil {
		return nil, fmt.Errorf("Structured: %w", err)
	}

	y := mat.NewDense(m, size, nil)
	y.Mul(a, omega)

	return thinQR(y), nil
}

// Subspace computes an orthonormal basis using power (subspace) iteration:
// after the initial sketch, it alternates multiplication by Aᵀ and A with a
// QR re-orthonormalization at every half step to control numerical drift.
// power==0 reduces exactly to Basic.
//
// Use power = 1 or 2 when a's singular spectrum decays slowly; each extra
// iteration costs two more passes over a.
//
// Errors: ErrNilMatrix, ErrBadSize, ErrTooLarge, ErrBadPower.
//
// Complexity: O((1+2·power)·m·n·size) multiplies plus the interleaved QRs.
func Subspace(a mat.Matrix, size, power int, rng *rand.Rand) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if size < 1 {
		return nil, ErrBadSize
	}
	if size > m {
		return nil, ErrTooLarge
	}
	if power < 0 {
		return nil, ErrBadPower
	}
	if power > 0 && size > n {
		// Aᵀ·Q has n rows; a basis wider than n cannot be re-orthonormalized.
		return nil, ErrTooLarge
	}

	omega, err := sampler.Gaussian(rng, n, size)
	if err != nil {
		return nil, fmt.Errorf("Subspace: %w", err)
	}

	y := mat.NewDense(m, size, nil)
	y.Mul(a, omega)
	q := thinQR(y)

	yt := mat.NewDense(n, size, nil)
	for i := 0; i < power; i++ {
		yt.Mul(a.T(), q)
		qt := thinQR(yt)

		y.Mul(a, qt)
		q = thinQR(y)
	}

	return q, nil
}
