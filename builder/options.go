// SPDX-License-Identifier: MIT
// Package: genesim/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "github.com/katalvlaran/genesim/rng"

// BuilderOption customizes a randomizer run by mutating builderConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the factor naming scheme used by Factors. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefix names factors prefix1, prefix2, ... Panics on an empty prefix.
func WithPrefix(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithPrefix(\"\")")
	}
	return WithIDScheme(GeneIDFn(prefix))
}

// WithRand provides an explicit random source, shared with the caller's
// other consumers. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(src rng.Source) BuilderOption {
	if src == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.src = src }
}

// WithSeed installs a fresh deterministic source (seed 0 maps to rng.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.src = rng.New(seed) }
}
