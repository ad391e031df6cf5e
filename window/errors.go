// SPDX-License-Identifier: MIT

package window

import "errors"

// Sentinel errors for windows.
var (
	// ErrBadDimensions indicates depth < 1 or numFactors < 0.
	ErrBadDimensions = errors.New("window: bad dimensions")

	// ErrShapeMismatch indicates two windows (or a window and a caller) disagree on shape.
	ErrShapeMismatch = errors.New("window: shape mismatch")
)
