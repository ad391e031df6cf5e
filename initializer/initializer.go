// SPDX-License-Identifier: MIT

// Package initializer seeds the time window of a gene history before the
// first update.
package initializer

import (
	"fmt"

	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/update"
	"github.com/katalvlaran/genesim/window"
)

// Initializer writes t = 0 (and the flat history behind it) into a window.
type Initializer interface {
	Initialize(h *window.Window) error
}

// Basal starts every unregulated factor exactly at the basal expression and
// every regulated factor at a draw from N(basal, initStdDev). A factor is
// unregulated when none of its compiled parents is another factor.
type Basal struct {
	basal       float64
	initStdDev  float64
	unregulated []bool
	d           *dist.Normal
}

var _ Initializer = (*Basal)(nil)

// NewBasal classifies the factors of fn once; later Initialize calls reuse it.
func NewBasal(fn update.Function, basal, initStdDev float64, src rng.Source) (*Basal, error) {
	if fn == nil {
		return nil, fmt.Errorf("NewBasal: %w", ErrNilFunction)
	}
	if !(initStdDev > 0) {
		return nil, fmt.Errorf("NewBasal: sd=%g: %w", initStdDev, ErrBadStdDev)
	}
	if src == nil {
		return nil, fmt.Errorf("NewBasal: %w", ErrNeedRandSource)
	}
	d, err := dist.NewNormal(basal, initStdDev, src)
	if err != nil {
		return nil, fmt.Errorf("NewBasal: %w", err)
	}

	ix := fn.Graph()
	unregulated := make([]bool, ix.NumFactors())
	for i := range unregulated {
		unregulated[i] = true
		for _, p := range ix.Parents(i) {
			if p.Index != i {
				unregulated[i] = false
				break
			}
		}
	}
	return &Basal{basal: basal, initStdDev: initStdDev, unregulated: unregulated, d: d}, nil
}

// Initialize fills Row(0) and copies it into every older row.
func (b *Basal) Initialize(h *window.Window) error {
	if h.NumFactors() != len(b.unregulated) {
		return fmt.Errorf("Initialize: window has %d factors, want %d: %w",
			h.NumFactors(), len(b.unregulated), ErrShapeMismatch)
	}
	row := h.Row(0)
	for i := range row {
		if b.unregulated[i] {
			row[i] = b.basal
		} else {
			row[i] = b.d.NextRandom()
		}
	}
	h.FillOlderFromNewest()
	return nil
}

// BasalExpression returns the basal level.
func (b *Basal) BasalExpression() float64 { return b.basal }

// InitStdDev returns the spread of regulated starting values.
func (b *Basal) InitStdDev() float64 { return b.initStdDev }

// Unregulated reports whether factor i starts exactly at the basal level.
func (b *Basal) Unregulated(i int) bool { return b.unregulated[i] }
