// SPDX-License-Identifier: MIT

// Package history drives one simulated cell through time.
//
// A History pairs an Initializer with an update.Function and owns the rolling
// window they share. Initialize seeds the window and sets Step to -1; each
// Update rotates the window one slice and recomputes every factor that is due.
//
// Synchronized initialization (the default) draws the initial window once and
// replays it for every later Initialize, so that many cells start from the
// same state and differ only by dish bumps and update noise. Reset drops the
// cached draw.
//
// A History is not safe for concurrent use.
package history
