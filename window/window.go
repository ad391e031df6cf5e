// SPDX-License-Identifier: MIT

// Package window implements the rolling time window behind a gene history:
// a ring of fixed-size rows, one per lag, with a rotating head.
//
// Row(0) is the most recent time slice, Row(k) the slice k steps earlier.
// Rotate advances time by one step without allocating: the slot holding the
// oldest slice becomes the new lag-0 row and is handed back for overwriting.
package window

import "fmt"

// Window is a depth × numFactors ring buffer. Each row slot owns its backing array.
type Window struct {
	rows [][]float64
	head int
}

// New allocates a zeroed window with depth rows (maxLag+1) of numFactors values.
//
// Errors:
//   - ErrBadDimensions: depth < 1 or numFactors < 0.
//
// Complexity: O(depth·numFactors).
func New(depth, numFactors int) (*Window, error) {
	if depth < 1 || numFactors < 0 {
		return nil, fmt.Errorf("window.New(%d, %d): %w", depth, numFactors, ErrBadDimensions)
	}
	rows := make([][]float64, depth)
	for i := range rows {
		rows[i] = make([]float64, numFactors)
	}
	return &Window{rows: rows}, nil
}

// Depth returns the number of rows (maxLag+1).
func (w *Window) Depth() int { return len(w.rows) }

// NumFactors returns the row length.
func (w *Window) NumFactors() int { return len(w.rows[0]) }

// slot maps a lag onto its physical row.
func (w *Window) slot(lag int) int { return (w.head + lag) % len(w.rows) }

// Row returns the live row for lag. Writes through the slice modify the window.
// Panics if lag is outside [0, Depth).
//
// Complexity: O(1).
func (w *Window) Row(lag int) []float64 {
	if lag < 0 || lag >= len(w.rows) {
		panic(fmt.Sprintf("window: lag %d out of range [0,%d)", lag, len(w.rows)))
	}
	return w.rows[w.slot(lag)]
}

// Value returns the value of factor at lag.
func (w *Window) Value(lag, factor int) float64 { return w.Row(lag)[factor] }

// Set stores v for factor at lag.
func (w *Window) Set(lag, factor int, v float64) { w.Row(lag)[factor] = v }

// Rotate shifts every slice one lag older and returns the new lag-0 row, which
// still holds the values of the slice that fell off the end.
//
// Complexity: O(1).
func (w *Window) Rotate() []float64 {
	w.head = (w.head - 1 + len(w.rows)) % len(w.rows)
	return w.rows[w.head]
}

// Fill sets every value of the lag row to v.
func (w *Window) Fill(lag int, v float64) {
	row := w.Row(lag)
	for i := range row {
		row[i] = v
	}
}

// FillOlderFromNewest copies Row(0) into every older row (a flat history).
//
// Complexity: O(depth·numFactors).
func (w *Window) FillOlderFromNewest() {
	newest := w.Row(0)
	for lag := 1; lag < len(w.rows); lag++ {
		copy(w.Row(lag), newest)
	}
}

// CopyFrom overwrites w lag by lag with the contents of src. The two heads
// need not agree; only lag order is preserved.
//
// Errors:
//   - ErrShapeMismatch: src has a different depth or row length.
//
// Complexity: O(depth·numFactors).
func (w *Window) CopyFrom(src *Window) error {
	if src.Depth() != w.Depth() || src.NumFactors() != w.NumFactors() {
		return fmt.Errorf("CopyFrom: %dx%d into %dx%d: %w",
			src.Depth(), src.NumFactors(), w.Depth(), w.NumFactors(), ErrShapeMismatch)
	}
	for lag := range w.rows {
		copy(w.Row(lag), src.Row(lag))
	}
	return nil
}

// Snapshot returns the live rows in lag order: Snapshot()[k] is Row(k).
// The outer slice is fresh; the rows alias the window until the next Rotate.
func (w *Window) Snapshot() [][]float64 {
	out := make([][]float64, len(w.rows))
	for lag := range out {
		out[lag] = w.Row(lag)
	}
	return out
}

// Clone returns a deep, lag-aligned copy with head reset to 0.
func (w *Window) Clone() *Window {
	c, _ := New(w.Depth(), w.NumFactors())
	_ = c.CopyFrom(w)
	return c
}
