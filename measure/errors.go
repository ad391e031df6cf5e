// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrBadParams indicates a Params field outside its allowed range.
	ErrBadParams = errors.New("measure: invalid parameters")

	// ErrNilHistory indicates Simulate was given no history.
	ErrNilHistory = errors.New("measure: history is required")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("measure: rng is required")

	// ErrNoData indicates an export of data that was not saved.
	ErrNoData = errors.New("measure: data not saved")
)
