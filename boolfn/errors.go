// SPDX-License-Identifier: MIT

package boolfn

import "errors"

var (
	// ErrBadRow indicates a row index outside [0, 2^k).
	ErrBadRow = errors.New("boolfn: row out of range")

	// ErrArityMismatch indicates a value pattern whose length differs from the parent count.
	ErrArityMismatch = errors.New("boolfn: arity mismatch")

	// ErrTooManyParents indicates more parents than a lookup table can hold.
	ErrTooManyParents = errors.New("boolfn: too many parents")
)
