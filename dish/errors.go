// SPDX-License-Identifier: MIT

package dish

import "errors"

// Sentinel errors for dish models.
var (
	// ErrBadDishCount indicates fewer than one dish.
	ErrBadDishCount = errors.New("dish: number of dishes must be >= 1")

	// ErrBadStdDev indicates a negative bump standard deviation.
	ErrBadStdDev = errors.New("dish: bump sd must be >= 0")

	// ErrBadDishNumber indicates a dish index outside [0, NumDishes).
	ErrBadDishNumber = errors.New("dish: dish number out of range")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("dish: rng is required")
)
