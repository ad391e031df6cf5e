// SPDX-License-Identifier: MIT

package history

import "errors"

var (
	// ErrNilInitializer indicates New was given no initializer.
	ErrNilInitializer = errors.New("history: initializer is required")

	// ErrNilFunction indicates New was given no update function.
	ErrNilFunction = errors.New("history: update function is required")

	// ErrBadUpdatePeriod indicates an update period < 1.
	ErrBadUpdatePeriod = errors.New("history: update period must be >= 1")

	// ErrBadFactor indicates a factor index outside [0, NumFactors).
	ErrBadFactor = errors.New("history: factor index out of range")

	// ErrNotInitialized indicates Update before the first Initialize.
	ErrNotInitialized = errors.New("history: not initialized")
)
