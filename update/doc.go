// SPDX-License-Identifier: MIT

// Package update defines the update-function contract of a gene history and its
// three variants:
//
//   - Polynomial:   G_i(t) = P_i(parents) + ε
//   - Linear:       equal-weight linear Polynomial, coefficients overridable
//   - BooleanGlass: G_i(t) = max(L, G_i(t−1) − d·(G_i(t−1) − b) + r·F_i(parents) + ε)
//
// A Function reads only the frozen compiled graph and the history window, and
// writes nothing but its return value. Each call draws fresh noise from the
// function's distributions, so Value is not idempotent.
//
// Functions keep per-factor scratch buffers and must not be shared across
// goroutines; build one per simulated replicate stream.
package update
