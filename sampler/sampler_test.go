package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/sampler"
)

// TestStream_Deterministic verifies that equal seeds yield identical streams
// and that seed 0 maps to the fixed default stream.
func TestStream_Deterministic(t *testing.T) {
	a := sampler.Stream(42)
	b := sampler.Stream(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "same seed must replay the same stream")
	}

	zero := sampler.Stream(0)
	one := sampler.Stream(1)
	assert.Equal(t, one.Int63(), zero.Int63(), "seed 0 must alias the fixed default seed")
}

// TestDerive_IndependentStreams checks that derived substreams differ from
// each other and from the parent.
func TestDerive_IndependentStreams(t *testing.T) {
	base := sampler.Stream(7)
	d1 := sampler.Derive(base, 1)
	d2 := sampler.Derive(base, 2)

	assert.NotEqual(t, d1.Int63(), d2.Int63(), "distinct stream ids must decorrelate")

	// nil base falls back to the default parent without panicking.
	d3 := sampler.Derive(nil, 3)
	require.NotNil(t, d3)
}

// TestGaussian_ShapeAndMoments verifies shape, determinism, and that the
// sample mean/variance are roughly standard normal.
func TestGaussian_ShapeAndMoments(t *testing.T) {
	g, err := sampler.Gaussian(sampler.Stream(11), 200, 50)
	require.NoError(t, err)

	r, c := g.Dims()
	assert.Equal(t, 200, r)
	assert.Equal(t, 50, c)

	var sum, sumSq float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := g.At(i, j)
			sum += v
			sumSq += v * v
		}
	}
	n := float64(r * c)
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0.0, mean, 0.05, "sample mean should be near 0")
	assert.InDelta(t, 1.0, variance, 0.05, "sample variance should be near 1")

	// Same stream ⇒ same matrix.
	g2, err := sampler.Gaussian(sampler.Stream(11), 200, 50)
	require.NoError(t, err)
	assert.True(t, mat.Equal(g, g2), "same seed must reproduce the sample")
}

// TestGaussian_BadShape verifies fail-fast validation.
func TestGaussian_BadShape(t *testing.T) {
	_, err := sampler.Gaussian(nil, 0, 3)
	assert.ErrorIs(t, err, sampler.ErrBadShape)

	_, err = sampler.Gaussian(nil, 3, -1)
	assert.ErrorIs(t, err, sampler.ErrBadShape)

	_, err = sampler.GaussianVec(nil, 0)
	assert.ErrorIs(t, err, sampler.ErrBadShape)
}

// TestSRFT_ShapeAndScale verifies shape, entry magnitude bound, and
// parameter validation for the structured sample.
func TestSRFT_ShapeAndScale(t *testing.T) {
	omega, err := sampler.SRFT(sampler.Stream(3), 32, 8)
	require.NoError(t, err)

	r, c := omega.Dims()
	assert.Equal(t, 32, r)
	assert.Equal(t, 8, c)

	// Entries are ±(cosθ+sinθ)/√l, so |entry| <= √2/√l.
	bound := math.Sqrt2 / math.Sqrt(8)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.LessOrEqual(t, math.Abs(omega.At(i, j)), bound+1e-12)
		}
	}

	_, err = sampler.SRFT(nil, 0, 1)
	assert.ErrorIs(t, err, sampler.ErrBadShape)
	_, err = sampler.SRFT(nil, 8, 0)
	assert.ErrorIs(t, err, sampler.ErrBadCount)
	_, err = sampler.SRFT(nil, 8, 9)
	assert.ErrorIs(t, err, sampler.ErrBadCount)
}

// TestPerm_UniformShape verifies that Perm returns a permutation of 0..n-1
// and rejects non-positive n.
func TestPerm_UniformShape(t *testing.T) {
	p, err := sampler.Perm(sampler.Stream(5), 64)
	require.NoError(t, err)
	require.Len(t, p, 64)

	seen := make([]bool, 64)
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 64)
		assert.False(t, seen[v], "permutation must not repeat values")
		seen[v] = true
	}

	_, err = sampler.Perm(nil, 0)
	assert.ErrorIs(t, err, sampler.ErrBadShape)
}
