// SPDX-License-Identifier: MIT

// Package laggraph defines the lag graph: the causal structure of a discrete-time
// gene regulatory network, plus its compiled, index-based snapshot.
//
// A LagGraph is a mutable directed multigraph over named factors. Every edge runs
// from a lagged occurrence of a factor (lag ≥ 1, "lag steps in the past") into a
// factor at lag 0:
//
//	G1:1 ──► G1      (self-dependency one step back)
//	G3:2 ──► G1      (G3 two steps back regulates G1)
//
// Invariants:
//   - an edge's lag lies in [1, MaxLagAllowable];
//   - both endpoints are registered factors;
//   - MaxLagAllowable ≥ MaxLag at all times.
//
// Determinism:
//   - Factors() and Parents() return sorted results, so compiled indices are
//     stable for a given graph.
//
// Indexed is the compiled view: factor names are frozen to integer indices and
// parent sets resolved to (index, lag) pairs. It exists purely for runtime speed
// in the per-tick simulation loop and never changes after Compile returns.
//
// Errors:
//
//	ErrInvalidName    - factor name violates the naming rule.
//	ErrIllegalLag     - lag outside [1, MaxLagAllowable].
//	ErrUnknownFactor  - factor is not registered.
//	ErrUnknownEdge    - edge does not exist.
//	ErrFactorExists   - rename target already exists.
package laggraph
