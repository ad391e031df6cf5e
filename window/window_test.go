// SPDX-License-Identifier: MIT

package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genesim/window"
)

func TestNew_Dimensions(t *testing.T) {
	_, err := window.New(0, 3)
	assert.ErrorIs(t, err, window.ErrBadDimensions)
	_, err = window.New(2, -1)
	assert.ErrorIs(t, err, window.ErrBadDimensions)

	w, err := window.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Depth())
	assert.Equal(t, 2, w.NumFactors())
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, w.Snapshot())
}

// TestRotate_ShiftsLags checks that Row(k) after N rotations holds the slice
// written k rotations earlier.
func TestRotate_ShiftsLags(t *testing.T) {
	const depth = 4
	w, err := window.New(depth, 1)
	require.NoError(t, err)
	w.Set(0, 0, 0)

	for step := 1; step <= 10; step++ {
		row := w.Rotate()
		row[0] = float64(step)
		for k := 0; k < depth && k <= step; k++ {
			assert.Equal(t, float64(step-k), w.Value(k, 0), "step=%d lag=%d", step, k)
		}
	}
}

// TestRotate_ReusesOldestRow checks that the new lag-0 row still holds the dropped slice.
func TestRotate_ReusesOldestRow(t *testing.T) {
	w, err := window.New(3, 2)
	require.NoError(t, err)
	copy(w.Row(0), []float64{1, 1})
	copy(w.Row(1), []float64{2, 2})
	copy(w.Row(2), []float64{3, 3})

	row := w.Rotate()
	assert.Equal(t, []float64{3, 3}, row)
	assert.Equal(t, []float64{1, 1}, w.Row(1))
	assert.Equal(t, []float64{2, 2}, w.Row(2))
}

func TestFillAndCopy(t *testing.T) {
	w, err := window.New(3, 2)
	require.NoError(t, err)
	w.Fill(0, 7)
	w.FillOlderFromNewest()
	assert.Equal(t, [][]float64{{7, 7}, {7, 7}, {7, 7}}, w.Snapshot())

	w.Rotate()
	w.Fill(0, 1)
	c := w.Clone()
	assert.Equal(t, w.Snapshot(), c.Snapshot())

	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, w.Value(0, 0), "clone must be independent")

	other, err := window.New(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, w.CopyFrom(other), window.ErrShapeMismatch)
}

func TestRow_PanicsOutOfRange(t *testing.T) {
	w, err := window.New(2, 1)
	require.NoError(t, err)
	assert.Panics(t, func() { w.Row(2) })
	assert.Panics(t, func() { w.Row(-1) })
}

// TestDepthOne checks the degenerate single-row ring.
func TestDepthOne(t *testing.T) {
	w, err := window.New(1, 2)
	require.NoError(t, err)
	copy(w.Row(0), []float64{4, 5})
	row := w.Rotate()
	assert.Equal(t, []float64{4, 5}, row)
	w.FillOlderFromNewest()
}
