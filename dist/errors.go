// SPDX-License-Identifier: MIT

package dist

import "errors"

var (
	// ErrBadStdDev indicates a negative or NaN standard deviation.
	ErrBadStdDev = errors.New("dist: bad standard deviation")

	// ErrBadBounds indicates low >= high (or NaN bounds) for a Uniform distribution.
	ErrBadBounds = errors.New("dist: bad bounds")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("dist: rng is required")
)
