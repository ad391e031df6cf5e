// SPDX-License-Identifier: MIT
// Package: genesim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "SimpleRandomizer: indegree=1: <sentinel>".
//   • Randomizers never panic at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrBadIndegree → ErrBadLag → ErrInvalidPercent → ErrUnknownPolicy → ErrNeedRandSource.

package builder

import "errors"

// ErrBadIndegree indicates an indegree < 2. Every factor already holds its
// lag-1 self-edge, so indegree 1 would leave nothing to randomize.
var ErrBadIndegree = errors.New("builder: indegree must be >= 2")

// ErrBadLag indicates a maximum lag < 1.
var ErrBadLag = errors.New("builder: max lag must be >= 1")

// ErrInvalidPercent indicates a housekeeping percentage outside [0, 100].
var ErrInvalidPercent = errors.New("builder: percent out of range")

// ErrNeedRandSource indicates a stochastic randomizer ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownPolicy indicates a Policy value outside Constant/Max/Mean.
var ErrUnknownPolicy = errors.New("builder: unknown indegree policy")

// ErrTooFewFactors indicates Factors(n) with n < 1.
var ErrTooFewFactors = errors.New("builder: number of factors must be >= 1")

// ErrConstructFailed indicates a nil randomizer or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
