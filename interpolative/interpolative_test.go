package interpolative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/interpolative"
	"github.com/katalvlaran/lowrank/sampler"
)

// singularValues returns the singular values of a in descending order.
func singularValues(t *testing.T, a mat.Matrix) []float64 {
	t.Helper()

	var svd mat.SVD
	require.True(t, svd.Factorize(a, mat.SVDNone), "reference SVD must succeed")

	return svd.Values(nil)
}

// spectralNorm returns ‖a‖₂ (largest singular value).
func spectralNorm(t *testing.T, a mat.Matrix) float64 {
	return singularValues(t, a)[0]
}

// reconstructionError returns ‖B·P − A‖₂ for a decomposition of a.
func reconstructionError(t *testing.T, a mat.Matrix, d *interpolative.Decomposition) float64 {
	t.Helper()

	var approx, res mat.Dense
	approx.Mul(d.Skeleton, d.Coeff)
	res.Sub(&approx, a)

	return spectralNorm(t, &res)
}

// TestDecompose_ReferenceScenario checks the 4×5, rank-3, probe-6 scenario:
// the reconstruction error must stay within 2·σ₄(M).
func TestDecompose_ReferenceScenario(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := sampler.Stream(seed)
		m, err := sampler.Gaussian(rng, 4, 5)
		require.NoError(t, err)

		d, err := interpolative.Decompose(m, 3, 6, rng)
		require.NoError(t, err)

		sigma := singularValues(t, m)
		assert.LessOrEqual(t, reconstructionError(t, m, d), 2*sigma[3]+1e-12,
			"seed %d: ‖B·P − A‖ must be within 2·σ₄", seed)
	}
}

// TestDecompose_SkeletonIsColumnSubset verifies that Skeleton holds the
// listed columns of the input verbatim and Coeff carries the exact identity
// block at those positions.
func TestDecompose_SkeletonIsColumnSubset(t *testing.T) {
	rng := sampler.Stream(31)
	a, err := sampler.Gaussian(rng, 12, 9)
	require.NoError(t, err)

	const rank = 4
	d, err := interpolative.Decompose(a, rank, rank+3, rng)
	require.NoError(t, err)
	require.Len(t, d.Columns, rank)

	for j, c := range d.Columns {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, 9)
		for i := 0; i < 12; i++ {
			assert.Equal(t, a.At(i, c), d.Skeleton.At(i, j),
				"skeleton column %d must be input column %d verbatim", j, c)
		}
		for i := 0; i < rank; i++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, d.Coeff.At(i, c), "identity block at selected columns")
		}
	}
}

// TestDecompose_ExactRankRecovery verifies near-exact reconstruction when
// the input rank does not exceed the requested rank.
func TestDecompose_ExactRankRecovery(t *testing.T) {
	rng := sampler.Stream(47)
	u, err := sampler.Gaussian(rng, 20, 3)
	require.NoError(t, err)
	v, err := sampler.Gaussian(rng, 3, 15)
	require.NoError(t, err)

	var a mat.Dense
	a.Mul(u, v)

	d, err := interpolative.Decompose(&a, 3, 8, rng)
	require.NoError(t, err)

	assert.Less(t, reconstructionError(t, &a, d), 1e-8*spectralNorm(t, &a),
		"a rank-3 matrix must be reproduced by a rank-3 skeleton")
}

// TestDecompose_InvalidArguments verifies fail-fast validation.
func TestDecompose_InvalidArguments(t *testing.T) {
	rng := sampler.Stream(53)
	a, err := sampler.Gaussian(rng, 6, 8)
	require.NoError(t, err)

	_, err = interpolative.Decompose(nil, 2, 4, rng)
	assert.ErrorIs(t, err, interpolative.ErrNilMatrix)

	_, err = interpolative.Decompose(a, 0, 4, rng)
	assert.ErrorIs(t, err, interpolative.ErrBadRank)

	_, err = interpolative.Decompose(a, 7, 9, rng)
	assert.ErrorIs(t, err, interpolative.ErrBadRank)

	_, err = interpolative.Decompose(a, 3, 2, rng)
	assert.ErrorIs(t, err, interpolative.ErrBadProbe)
}
