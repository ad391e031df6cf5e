// SPDX-License-Identifier: MIT

package update

import (
	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/window"
)

// Function computes a factor's next lag-0 value from the history window.
//
// Value reads h.Value(p.Lag, p.Index) for the factor's compiled parents p; the
// window must have Depth() ≥ MaxLag()+1 and NumFactors() == NumFactors().
//
// Implementations are not safe for concurrent use: Value reuses per-factor
// scratch buffers and advances the noise source.
type Function interface {
	Value(factor int, h *window.Window) float64
	NumFactors() int
	MaxLag() int
	Graph() *laggraph.Indexed
}

var (
	_ Function = (*Polynomial)(nil)
	_ Function = (*Linear)(nil)
	_ Function = (*BooleanGlass)(nil)
)
