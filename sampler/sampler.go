// Package sampler - dense sample matrix constructors.
//
// All constructors are pure given their stream: no global state, no clocks.
// Returned matrices are freshly allocated and owned by the caller.
package sampler

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Gaussian returns a rows×cols matrix with independent N(0,1) entries drawn
// from rng (rng==nil ⇒ the default deterministic stream).
//
// This is the standard test matrix of randomized range finding: for any
// fixed subspace, a Gaussian sample is almost surely in general position.
//
// Complexity: O(rows·cols) time and space.
func Gaussian(rng *rand.Rand, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	r := rng
	if r == nil {
		r = Stream(0)
	}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.NormFloat64()
	}

	return mat.NewDense(rows, cols, data), nil
}

// GaussianVec returns a length-n probe vector with independent N(0,1)
// entries. The vector is intentionally NOT normalized: the probabilistic
// norm bound calibrates its failure probability against the standard
// Gaussian tail, which a normalization step would distort.
//
// Complexity: O(n) time and space.
func GaussianVec(rng *rand.Rand, n int) (*mat.VecDense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	r := rng
	if r == nil {
		r = Stream(0)
	}

	data := make([]float64, n)
	for i := range data {
		data[i] = r.NormFloat64()
	}

	return mat.NewVecDense(n, data), nil
}

// SRFT returns an n×l structured random trigonometric sample: a random ±1
// sign per row, trigonometric transform rows, and l column frequencies
// drawn uniformly without replacement, scaled by 1/√l.
//
// The sample has the same logical shape as Gaussian(rng, n, l) and is
// interchangeable with it wherever a test matrix is consumed through plain
// dense multiplication. Its energy is spread more evenly across rows, which
// makes small fixed-size samples more robust on matrices with localized
// singular directions.
//
// Errors:
//   - ErrBadShape if n <= 0.
//   - ErrBadCount if l is outside [1, n].
//
// Complexity: O(n·l) time and space.
func SRFT(rng *rand.Rand, n, l int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if l < 1 || l > n {
		return nil, ErrBadCount
	}

	r := rng
	if r == nil {
		r = Stream(0)
	}

	// Random ±1 sign per row.
	signs := make([]float64, n)
	for i := range signs {
		if r.Intn(2) == 0 {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
	}

	// l distinct frequencies drawn uniformly from {0..n-1}.
	freq, err := Perm(r, n)
	if err != nil {
		return nil, err
	}
	freq = freq[:l]

	scale := 1 / math.Sqrt(float64(l))
	omega := mat.NewDense(n, l, nil)
	for j := 0; j < n; j++ {
		for k := 0; k < l; k++ {
			theta := 2 * math.Pi * float64(j) * float64(freq[k]) / float64(n)
			omega.Set(j, k, signs[j]*scale*(math.Cos(theta)+math.Sin(theta)))
		}
	}

	return omega, nil
}
