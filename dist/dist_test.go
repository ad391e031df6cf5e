// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/rng"
)

func TestNewNormal_Validation(t *testing.T) {
	_, err := dist.NewNormal(0, -1, rng.New(1))
	assert.ErrorIs(t, err, dist.ErrBadStdDev)

	_, err = dist.NewNormal(0, math.NaN(), rng.New(1))
	assert.ErrorIs(t, err, dist.ErrBadStdDev)

	_, err = dist.NewNormal(0, 1, nil)
	assert.ErrorIs(t, err, dist.ErrNeedRandSource)
}

// TestNormal_ZeroStdDev checks the degenerate point-mass case.
func TestNormal_ZeroStdDev(t *testing.T) {
	n, err := dist.NewNormal(100, 0, rng.New(1))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 100.0, n.NextRandom())
	}
}

// TestNormal_Determinism checks that equal seeds give equal draws.
func TestNormal_Determinism(t *testing.T) {
	a, err := dist.NewNormal(0, 0.05, rng.New(5))
	require.NoError(t, err)
	b, err := dist.NewNormal(0, 0.05, rng.New(5))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.NextRandom(), b.NextRandom())
	}
}

// TestNormal_Moments checks sample mean and sd against the parameters.
func TestNormal_Moments(t *testing.T) {
	n, err := dist.NewNormal(3, 2, rng.New(17))
	require.NoError(t, err)

	const samples = 20000
	var sum, sumSq float64
	for i := 0; i < samples; i++ {
		x := n.NextRandom()
		sum += x
		sumSq += x * x
	}
	mean := sum / samples
	sd := math.Sqrt(sumSq/samples - mean*mean)
	assert.InDelta(t, 3.0, mean, 0.1)
	assert.InDelta(t, 2.0, sd, 0.1)
	assert.Equal(t, "N(3, 2)", n.String())
}

func TestUniform(t *testing.T) {
	_, err := dist.NewUniform(1, 1, rng.New(1))
	assert.ErrorIs(t, err, dist.ErrBadBounds)

	u, err := dist.NewUniform(-2, 2, rng.New(1))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		x := u.NextRandom()
		assert.True(t, x >= -2 && x < 2, "draw %g outside [-2,2)", x)
	}
	assert.Equal(t, 0.0, u.Mean())
}
