// SPDX-License-Identifier: MIT

// Package boolfn implements fixed-arity boolean lookup tables over the compiled
// parents of a factor.
//
// Row order: with k parents there are 2^k rows. The rightmost parent toggles
// fastest and true sorts before false, so the all-true pattern is row 0 and the
// all-false pattern is row 2^k-1:
//
//	k=2   row  p0 p1
//	       0   T  T
//	       1   T  F
//	       2   F  T
//	       3   F  F
//
// Two structural predicates reject degenerate random tables:
//   - IsCanalyzing (Kauffman): some parent has a value that forces the output.
//   - IsEffective: every parent can flip the output for some setting of the others.
package boolfn
