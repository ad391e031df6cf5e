// SPDX-License-Identifier: MIT

package boolfn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/rng"
)

// MaxParents bounds the arity; 2^20 rows is already a megabit table.
const MaxParents = 20

// Function is a boolean lookup table over an ordered parent list.
type Function struct {
	parents []laggraph.IndexedParent
	table   []bool
}

// New returns an all-false function over parents.
func New(parents []laggraph.IndexedParent) (*Function, error) {
	if len(parents) > MaxParents {
		return nil, fmt.Errorf("boolfn.New: k=%d > %d: %w", len(parents), MaxParents, ErrTooManyParents)
	}
	ps := make([]laggraph.IndexedParent, len(parents))
	copy(ps, parents)
	return &Function{parents: ps, table: make([]bool, 1<<len(parents))}, nil
}

// NumParents returns k.
func (f *Function) NumParents() int { return len(f.parents) }

// NumRows returns 2^k.
func (f *Function) NumRows() int { return len(f.table) }

// Parents returns a copy of the parent list.
func (f *Function) Parents() []laggraph.IndexedParent {
	out := make([]laggraph.IndexedParent, len(f.parents))
	copy(out, f.parents)
	return out
}

// Parent returns the j-th parent.
func (f *Function) Parent(j int) laggraph.IndexedParent { return f.parents[j] }

// Row maps a parent value pattern to its row.
func (f *Function) Row(values []bool) (int, error) {
	if len(values) != len(f.parents) {
		return 0, fmt.Errorf("Row: %d values for %d parents: %w", len(values), len(f.parents), ErrArityMismatch)
	}
	return rowOf(values), nil
}

// rowOf sets bit (k-1-j) for every false parent j.
func rowOf(values []bool) int {
	k := len(values)
	row := 0
	for j, v := range values {
		if !v {
			row |= 1 << (k - 1 - j)
		}
	}
	return row
}

// ParentValues is the inverse of Row.
func (f *Function) ParentValues(row int) ([]bool, error) {
	if row < 0 || row >= len(f.table) {
		return nil, fmt.Errorf("ParentValues(%d): %w", row, ErrBadRow)
	}
	k := len(f.parents)
	out := make([]bool, k)
	for j := range out {
		out[j] = (row>>(k-1-j))&1 == 0
	}
	return out, nil
}

// Value returns the output for row.
func (f *Function) Value(row int) (bool, error) {
	if row < 0 || row >= len(f.table) {
		return false, fmt.Errorf("Value(%d): %w", row, ErrBadRow)
	}
	return f.table[row], nil
}

// ValueAt returns the output for a value pattern without allocating.
// values must have length NumParents.
func (f *Function) ValueAt(values []bool) bool { return f.table[rowOf(values)] }

// SetValue sets the output for row.
func (f *Function) SetValue(row int, v bool) error {
	if row < 0 || row >= len(f.table) {
		return fmt.Errorf("SetValue(%d): %w", row, ErrBadRow)
	}
	f.table[row] = v
	return nil
}

// Randomize redraws every row as a fair coin flip from src.
func (f *Function) Randomize(src rng.Source) {
	for r := range f.table {
		f.table[r] = src.Float64() < 0.5
	}
}

// IsCanalyzing reports whether some parent j and value v force a constant
// output on every row where parent j equals v. A nullary function is not
// canalyzing.
//
// Complexity: O(k·2^k).
func (f *Function) IsCanalyzing() bool {
	k := len(f.parents)
	for j := 0; j < k; j++ {
		bit := 1 << (k - 1 - j)
		for _, setBit := range []bool{false, true} {
			if f.constantWhere(bit, setBit) {
				return true
			}
		}
	}
	return false
}

// constantWhere reports whether the output is constant over rows whose bit is set (or clear).
func (f *Function) constantWhere(bit int, set bool) bool {
	seen := false
	var first bool
	for r, out := range f.table {
		if (r&bit != 0) != set {
			continue
		}
		if !seen {
			first, seen = out, true
			continue
		}
		if out != first {
			return false
		}
	}
	return true
}

// IsEffective reports whether every parent can flip the output for some
// setting of the others. A nullary function is vacuously effective.
//
// Complexity: O(k·2^k).
func (f *Function) IsEffective() bool {
	k := len(f.parents)
	for j := 0; j < k; j++ {
		bit := 1 << (k - 1 - j)
		effective := false
		for r := range f.table {
			if r&bit != 0 {
				continue
			}
			if f.table[r] != f.table[r|bit] {
				effective = true
				break
			}
		}
		if !effective {
			return false
		}
	}
	return true
}

// Equal reports whether f and g have equal parents and tables.
func (f *Function) Equal(g *Function) bool {
	if g == nil || len(f.parents) != len(g.parents) {
		return false
	}
	for j, p := range f.parents {
		if g.parents[j] != p {
			return false
		}
	}
	for r, v := range f.table {
		if g.table[r] != v {
			return false
		}
	}
	return true
}

// String renders one "TF -> T" line per row.
func (f *Function) String() string {
	var b strings.Builder
	for r, out := range f.table {
		vals, _ := f.ParentValues(r)
		for _, v := range vals {
			b.WriteString(tf(v))
		}
		b.WriteString(" -> ")
		b.WriteString(tf(out))
		b.WriteByte('\n')
	}
	return b.String()
}

func tf(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
