// SPDX-License-Identifier: MIT

package polynomial

import "errors"

var (
	// ErrBadVariable indicates a negative variable index.
	ErrBadVariable = errors.New("polynomial: bad variable index")

	// ErrTooFewValues indicates Evaluate received fewer values than a term needs.
	ErrTooFewValues = errors.New("polynomial: too few values")

	// ErrBadTermIndex indicates a term index outside [0, NumTerms).
	ErrBadTermIndex = errors.New("polynomial: term index out of range")
)
