// SPDX-License-Identifier: MIT
// Package: genesim/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn = GeneIDFn("G")   ("G1","G2",...)
//   • src  = nil             (stochastic randomizers fail with ErrNeedRandSource)

package builder

import "github.com/katalvlaran/genesim/rng"

// defaultPrefix names factors G1..Gn unless overridden.
const defaultPrefix = "G"

// builderConfig aggregates all knobs used by randomizers.
// It is passed by value to randomizers.
type builderConfig struct {
	idFn IDFn
	src  rng.Source
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: GeneIDFn(defaultPrefix)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
