// SPDX-License-Identifier: MIT

package initializer

import "errors"

// Sentinel errors for initializers.
var (
	// ErrBadStdDev indicates a non-positive initial standard deviation.
	ErrBadStdDev = errors.New("initializer: initial sd must be > 0")

	// ErrShapeMismatch indicates a window whose factor count differs from the update function.
	ErrShapeMismatch = errors.New("initializer: window shape mismatch")

	// ErrNilFunction indicates a nil update function.
	ErrNilFunction = errors.New("initializer: update function is required")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("initializer: rng is required")
)
