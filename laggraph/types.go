// SPDX-License-Identifier: MIT

package laggraph

import (
	"fmt"
	"unicode"
)

// LaggedFactor identifies "factor Factor, Lag steps in the past".
// It is an immutable value type; equality is by value.
type LaggedFactor struct {
	// Factor is the factor name.
	Factor string

	// Lag is the number of time steps back (≥ 1 inside a LagGraph).
	Lag int
}

// Less reports whether lf sorts before other in (Factor, Lag) order.
//
// Complexity: O(len(name)).
func (lf LaggedFactor) Less(other LaggedFactor) bool {
	if lf.Factor != other.Factor {
		return lf.Factor < other.Factor
	}
	return lf.Lag < other.Lag
}

// String renders the lagged factor as "Name:lag".
func (lf LaggedFactor) String() string {
	return fmt.Sprintf("%s:%d", lf.Factor, lf.Lag)
}

// IndexedParent is a compiled parent reference: factor index and lag.
type IndexedParent struct {
	Index int
	Lag   int
}

// String renders the parent as "index:lag".
func (p IndexedParent) String() string {
	return fmt.Sprintf("%d:%d", p.Index, p.Lag)
}

// ValidName reports whether name is a legal factor name:
// non-empty, starting with a letter or '_', continuing with letters, digits,
// '_', '-' or '.'.
//
// Complexity: O(len(name)).
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
