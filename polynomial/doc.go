// SPDX-License-Identifier: MIT

// Package polynomial implements sums of monomial terms over integer-indexed
// variables, e.g. 0.5 + 0.25*V0*V1^2.
//
// A Term is a coefficient times a product of variables; repeated variables
// represent powers. Variables index into the value slice passed to Evaluate,
// which for update functions is the parent list of a factor.
package polynomial
