// SPDX-License-Identifier: MIT

package laggraph

import "errors"

// Sentinel errors for lag graph operations.
var (
	// ErrInvalidName indicates a factor name that fails the naming rule.
	ErrInvalidName = errors.New("laggraph: invalid factor name")

	// ErrIllegalLag indicates an edge lag outside [1, MaxLagAllowable].
	ErrIllegalLag = errors.New("laggraph: illegal lag")

	// ErrUnknownFactor indicates an operation referenced an unregistered factor.
	ErrUnknownFactor = errors.New("laggraph: unknown factor")

	// ErrUnknownEdge indicates an operation referenced a non-existent edge.
	ErrUnknownEdge = errors.New("laggraph: unknown edge")

	// ErrFactorExists indicates a rename onto a name already in use.
	ErrFactorExists = errors.New("laggraph: factor already exists")
)
