// SPDX-License-Identifier: MIT
// Package: genesim/builder
//
// api.go: public entry points for the builder package.
//
// Contract:
//   • BuildLagGraph(gopts, bopts, rs...) creates g, resolves cfg, runs rs in order.
//   • Randomize(g, r, opts...) runs one randomizer against an existing graph.
//   • Determinism: same inputs, options, seed and order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genesim/laggraph"
)

// Randomizer applies a deterministic (for a fixed source) mutation to g using
// the resolved builderConfig. Randomizers validate parameters before touching
// g and return sentinel errors; they never panic.
type Randomizer func(g *laggraph.LagGraph, cfg builderConfig) error

// BuildLagGraph creates a laggraph.LagGraph with gopts, resolves bopts and
// applies every randomizer in order. The first error is wrapped with
// "BuildLagGraph: %w" and returned; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) + Σ cost of each randomizer.
func BuildLagGraph(gopts []laggraph.Option, bopts []BuilderOption, rs ...Randomizer) (*laggraph.LagGraph, error) {
	g := laggraph.New(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, r := range rs {
		if r == nil {
			return nil, fmt.Errorf("BuildLagGraph: nil randomizer at index %d: %w", i, ErrConstructFailed)
		}
		if err := r(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildLagGraph: %w", err)
		}
	}
	return g, nil
}

// Randomize resolves opts and runs r against the existing graph g.
func Randomize(g *laggraph.LagGraph, r Randomizer, opts ...BuilderOption) error {
	if g == nil || r == nil {
		return fmt.Errorf("Randomize: nil graph or randomizer: %w", ErrConstructFailed)
	}
	return r(g, newBuilderConfig(opts...))
}
