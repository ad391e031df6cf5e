// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for genesim.
//
// Every stochastic component (noise distributions, boolean function synthesis,
// structure randomizers, dish bumps) receives its random source explicitly as a
// Source handle. Nothing in the module reads a global generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical simulations across platforms.
//   - Isolation: each consumer seeds its own stream with New(DeriveSeed(seed, id)).
//   - Compatibility: a Source is also a math/rand/v2.Source, so it can feed
//     gonum distributions directly.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines;
//     derive one seed per worker instead.
package rng
