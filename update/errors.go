// SPDX-License-Identifier: MIT

package update

import "errors"

var (
	// ErrBadFactor indicates a factor index outside [0, NumFactors).
	ErrBadFactor = errors.New("update: factor index out of range")

	// ErrBadParent indicates a parent index outside [0, NumParents) or an unknown lagged factor.
	ErrBadParent = errors.New("update: parent out of range")

	// ErrBadVariable indicates a polynomial variable that does not name a parent.
	ErrBadVariable = errors.New("update: polynomial variable out of range")

	// ErrNilDistribution indicates a nil error distribution.
	ErrNilDistribution = errors.New("update: nil distribution")

	// ErrBadDecayRate indicates a decay rate outside (0, 1].
	ErrBadDecayRate = errors.New("update: decay rate not in (0,1]")

	// ErrBadInfluenceRate indicates a non-positive boolean influence rate.
	ErrBadInfluenceRate = errors.New("update: boolean influence rate must be > 0")

	// ErrBadBounds indicates lowerBound >= basalExpression.
	ErrBadBounds = errors.New("update: lower bound must be < basal expression")

	// ErrArityMismatch indicates a boolean function whose parents differ from the factor's.
	ErrArityMismatch = errors.New("update: boolean function parents mismatch")

	// ErrIneffective indicates random synthesis hit its attempt cap without an effective table.
	ErrIneffective = errors.New("update: no effective boolean function found")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("update: rng is required")
)
