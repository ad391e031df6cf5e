// SPDX-License-Identifier: MIT

// Package dish models dish-to-dish variability: every dish carries a
// multiplicative bump drawn around 100 (percent) that scales the initial
// expression of each cell grown in it.
package dish

import (
	"fmt"

	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/window"
)

// bumpMean is the center of the bump distribution; a bump of 100 leaves values unchanged.
const bumpMean = 100.0

// Model holds one bump per dish and the currently selected dish.
type Model struct {
	bumps   []float64
	current int
}

// New draws numDishes bumps from N(100, bumpStdDev).
func New(numDishes int, bumpStdDev float64, src rng.Source) (*Model, error) {
	if numDishes < 1 {
		return nil, fmt.Errorf("dish.New(%d): %w", numDishes, ErrBadDishCount)
	}
	if src == nil {
		return nil, fmt.Errorf("dish.New: %w", ErrNeedRandSource)
	}
	d, err := dist.NewNormal(bumpMean, bumpStdDev, src)
	if err != nil {
		return nil, fmt.Errorf("dish.New: sd=%g: %w", bumpStdDev, ErrBadStdDev)
	}
	m := &Model{bumps: make([]float64, numDishes)}
	for i := range m.bumps {
		m.bumps[i] = d.NextRandom()
	}
	return m, nil
}

// NumDishes returns the number of dishes.
func (m *Model) NumDishes() int { return len(m.bumps) }

// DishNumber returns the selected dish.
func (m *Model) DishNumber() int { return m.current }

// SetDishNumber selects dish i.
func (m *Model) SetDishNumber(i int) error {
	if i < 0 || i >= len(m.bumps) {
		return fmt.Errorf("SetDishNumber(%d): %w", i, ErrBadDishNumber)
	}
	m.current = i
	return nil
}

// Bump returns the bump of dish i in percent. Panics if i is out of range.
func (m *Model) Bump(i int) float64 { return m.bumps[i] }

// BumpInitialization scales every value of h by the selected dish's bump/100.
//
// Complexity: O(depth·F).
func (m *Model) BumpInitialization(h *window.Window) {
	scale := m.bumps[m.current] / bumpMean
	for lag := 0; lag < h.Depth(); lag++ {
		row := h.Row(lag)
		for i := range row {
			row[i] *= scale
		}
	}
}
