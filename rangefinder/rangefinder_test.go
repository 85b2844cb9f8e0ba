package rangefinder_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/rangefinder"
	"github.com/katalvlaran/lowrank/sampler"
)

// orthoResidual returns ‖QᵀQ − I‖_F.
func orthoResidual(q *mat.Dense) float64 {
	_, k := q.Dims()

	var gram mat.Dense
	gram.Mul(q.T(), q)
	for i := 0; i < k; i++ {
		gram.Set(i, i, gram.At(i, i)-1)
	}

	return mat.Norm(&gram, 2)
}

// captureResidual returns ‖A − Q·QᵀA‖_F, the part of A outside span(Q).
func captureResidual(a mat.Matrix, q *mat.Dense) float64 {
	var proj, lift, res mat.Dense
	proj.Mul(q.T(), a)
	lift.Mul(q, &proj)
	res.Sub(a, &lift)

	return mat.Norm(&res, 2)
}

// lowRank returns an m×n matrix of exact rank r with a well-separated
// spectrum, deterministically from the given seed.
func lowRank(m, n, r int, seed int64) *mat.Dense {
	rng := sampler.Stream(seed)
	u, _ := sampler.Gaussian(rng, m, r)
	v, _ := sampler.Gaussian(rng, r, n)

	var a mat.Dense
	a.Mul(u, v)

	return &a
}

// TestBasic_Orthonormal verifies the basis orthonormality invariant.
func TestBasic_Orthonormal(t *testing.T) {
	a := lowRank(60, 40, 10, 1)

	q, err := rangefinder.Basic(a, 15, sampler.Stream(2))
	require.NoError(t, err)

	r, c := q.Dims()
	assert.Equal(t, 60, r)
	assert.Equal(t, 15, c)
	assert.Less(t, orthoResidual(q), 1e-10, "basis columns must be orthonormal")
}

// TestBasic_CapturesLowRank verifies that an oversampled basis captures an
// exactly low-rank matrix to machine precision.
func TestBasic_CapturesLowRank(t *testing.T) {
	a := lowRank(80, 50, 5, 3)

	q, err := rangefinder.Basic(a, 10, sampler.Stream(4))
	require.NoError(t, err)
	assert.Less(t, captureResidual(a, q), 1e-8, "rank-5 matrix must be captured by a 10-column basis")
}

// TestBasic_InvalidArguments verifies fail-fast validation; oversized bases
// must error, never be clamped.
func TestBasic_InvalidArguments(t *testing.T) {
	a := lowRank(10, 8, 2, 5)

	_, err := rangefinder.Basic(nil, 3, nil)
	assert.ErrorIs(t, err, rangefinder.ErrNilMatrix)

	_, err = rangefinder.Basic(a, 0, nil)
	assert.ErrorIs(t, err, rangefinder.ErrBadSize)

	_, err = rangefinder.Basic(a, 11, nil)
	assert.ErrorIs(t, err, rangefinder.ErrTooLarge)
}

// TestStructured_Orthonormal verifies the SRFT-sampled variant produces an
// orthonormal basis that captures a low-rank matrix.
func TestStructured_Orthonormal(t *testing.T) {
	a := lowRank(64, 48, 6, 7)

	q, err := rangefinder.Structured(a, 12, sampler.Stream(8))
	require.NoError(t, err)

	assert.Less(t, orthoResidual(q), 1e-10)
	assert.Less(t, captureResidual(a, q), 1e-7)
}

// TestSubspace_ZeroPowerMatchesBasic verifies that q=0 subspace iteration
// coincides exactly with the basic range finder on the same stream.
func TestSubspace_ZeroPowerMatchesBasic(t *testing.T) {
	a := lowRank(40, 30, 8, 9)

	qb, err := rangefinder.Basic(a, 12, sampler.Stream(10))
	require.NoError(t, err)
	qs, err := rangefinder.Subspace(a, 12, 0, sampler.Stream(10))
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(qb, qs, 1e-12), "power=0 must reduce to Basic")
}

// TestSubspace_SharpensSlowDecay verifies that power iterations improve the
// captured energy on a matrix with slowly decaying spectrum.
func TestSubspace_SharpensSlowDecay(t *testing.T) {
	// Diagonal matrix with slow decay 1/√(i+1): hard for a plain sketch.
	n := 60
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1/float64(i+1))
	}

	q0, err := rangefinder.Subspace(a, 8, 0, sampler.Stream(11))
	require.NoError(t, err)
	q2, err := rangefinder.Subspace(a, 8, 2, sampler.Stream(11))
	require.NoError(t, err)

	assert.Less(t, orthoResidual(q2), 1e-10)
	assert.Less(t, captureResidual(a, q2), captureResidual(a, q0),
		"two power iterations must not lose accuracy versus none")

	_, err = rangefinder.Subspace(a, 8, -1, nil)
	assert.ErrorIs(t, err, rangefinder.ErrBadPower)
}

// TestAdaptive_ConvergesOnLowRank verifies that the adaptive variant stops
// on its own with a basis close to the true rank and captures the matrix.
func TestAdaptive_ConvergesOnLowRank(t *testing.T) {
	a := lowRank(70, 40, 6, 12)

	q, err := rangefinder.Adaptive(a, 1e-8, 5, sampler.Stream(13), rangefinder.DefaultAdaptiveOptions())
	require.NoError(t, err)

	_, cols := q.Dims()
	assert.GreaterOrEqual(t, cols, 6, "basis must reach the true rank")
	assert.LessOrEqual(t, cols, 20, "basis should stop well before the row count")
	assert.Less(t, orthoResidual(q), 1e-10)
	assert.Less(t, captureResidual(a, q), 1e-6)
}

// TestAdaptive_CapIsSoft verifies that hitting the iteration cap returns the
// best-effort basis without an error.
func TestAdaptive_CapIsSoft(t *testing.T) {
	a := lowRank(50, 50, 40, 14)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel) // silence the expected warning

	opts := rangefinder.AdaptiveOptions{MaxIter: 3, Logger: logger}
	q, err := rangefinder.Adaptive(a, 1e-12, 4, sampler.Stream(15), opts)
	require.NoError(t, err, "cap hit is a soft condition, not an error")

	_, cols := q.Dims()
	assert.LessOrEqual(t, cols, 3, "at most MaxIter basis columns can be grown")
	assert.Less(t, orthoResidual(q), 1e-10)
}

// TestAdaptive_InvalidArguments verifies tolerance and window validation.
func TestAdaptive_InvalidArguments(t *testing.T) {
	a := lowRank(10, 10, 2, 16)
	opts := rangefinder.DefaultAdaptiveOptions()

	_, err := rangefinder.Adaptive(nil, 1e-6, 3, nil, opts)
	assert.ErrorIs(t, err, rangefinder.ErrNilMatrix)

	_, err = rangefinder.Adaptive(a, 0, 3, nil, opts)
	assert.ErrorIs(t, err, rangefinder.ErrBadTolerance)

	_, err = rangefinder.Adaptive(a, 1e-6, 0, nil, opts)
	assert.ErrorIs(t, err, rangefinder.ErrBadWindow)
}
