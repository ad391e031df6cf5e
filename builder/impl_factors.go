// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/genesim/laggraph"
)

const methodFactors = "Factors"

// Factors registers n factors named cfg.idFn(0..n-1). Existing factors with
// the same names are left untouched.
//
// Errors:
//   - ErrTooFewFactors: n < 1.
//   - laggraph.ErrInvalidName: the ID scheme produced an illegal name.
func Factors(n int) Randomizer {
	return func(g *laggraph.LagGraph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodFactors, n, ErrTooFewFactors)
		}
		for i := 0; i < n; i++ {
			if err := g.AddFactor(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: %w", methodFactors, err)
			}
		}
		return nil
	}
}
