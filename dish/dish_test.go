// SPDX-License-Identifier: MIT

package dish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genesim/dish"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/window"
)

func TestNew_Validation(t *testing.T) {
	_, err := dish.New(0, 1, rng.New(1))
	assert.ErrorIs(t, err, dish.ErrBadDishCount)
	_, err = dish.New(2, -1, rng.New(1))
	assert.ErrorIs(t, err, dish.ErrBadStdDev)
	_, err = dish.New(2, 1, nil)
	assert.ErrorIs(t, err, dish.ErrNeedRandSource)
}

func TestSetDishNumber(t *testing.T) {
	m, err := dish.New(3, 10, rng.New(1))
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumDishes())
	require.NoError(t, m.SetDishNumber(2))
	assert.Equal(t, 2, m.DishNumber())
	assert.ErrorIs(t, m.SetDishNumber(3), dish.ErrBadDishNumber)
	assert.ErrorIs(t, m.SetDishNumber(-1), dish.ErrBadDishNumber)
	assert.Equal(t, 2, m.DishNumber(), "failed set keeps the selection")
}

// A zero-spread model leaves every window untouched.
func TestBumpInitialization_ZeroSpreadIsIdentity(t *testing.T) {
	m, err := dish.New(4, 0, rng.New(1))
	require.NoError(t, err)

	w, err := window.New(2, 3)
	require.NoError(t, err)
	w.Set(0, 0, 1.5)
	w.Set(0, 2, -2)
	w.Set(1, 1, 7)
	before := w.Clone()

	for i := 0; i < m.NumDishes(); i++ {
		assert.Equal(t, 100.0, m.Bump(i))
		require.NoError(t, m.SetDishNumber(i))
		m.BumpInitialization(w)
	}
	assert.Equal(t, before.Snapshot(), w.Snapshot())
}

func TestBumpInitialization_Scales(t *testing.T) {
	m, err := dish.New(2, 10, rng.New(5))
	require.NoError(t, err)
	require.NoError(t, m.SetDishNumber(1))

	w, err := window.New(2, 1)
	require.NoError(t, err)
	w.Fill(0, 2)
	w.Fill(1, 4)
	m.BumpInitialization(w)

	scale := m.Bump(1) / 100
	assert.InDelta(t, 2*scale, w.Value(0, 0), 1e-12)
	assert.InDelta(t, 4*scale, w.Value(1, 0), 1e-12)
}
