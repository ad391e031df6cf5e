// SPDX-License-Identifier: MIT

// Package dist defines the single-method Distribution contract used for noise
// injection, with Normal and Uniform implementations backed by gonum's distuv.
//
// Every distribution draws from an explicit rng.Source; two distributions built
// on equal seeds produce equal sequences.
package dist
