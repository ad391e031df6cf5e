// SPDX-License-Identifier: MIT

// Package genesim simulates gene expression measurements of random gene
// regulatory networks whose edges act with a time lag.
//
// A run goes through five layers, each in its own subpackage:
//
//	laggraph/    factors and lagged parent edges ("G2 <- G1:1 G3:2")
//	builder/     names factors and randomizes graph structure
//	update/      per-factor update functions (BooleanGlass, Polynomial, Linear)
//	history/     ring-buffered expression history stepped by an update function
//	measure/     many cells over many dishes, aggregated into noisy microarray samples
//
// Supporting packages: rng (seeded random streams), dist (noise distributions
// on gonum's distuv), boolfn (boolean lookup tables), polynomial, window
// (the history ring buffer), initializer, dish (dish-to-dish variation) and
// config (YAML + validation, wiring a full run).
//
// Glass dynamics, the default update function:
//
//	G_i(t) = max(L, G_i(t−1) − d·(G_i(t−1) − b) + r·F_i(parents) + ε)
//
// The genesim command wraps config.Build behind a cobra CLI:
//
//	go install github.com/katalvlaran/genesim/cmd/genesim@latest
//	genesim simulate --config genesim.yaml --out measured.csv
package genesim
