// SPDX-License-Identifier: MIT
// Package: genesim/builder
//
// impl_randomizer.go: SimpleRandomizer and PreviousStepOnly.
//
// Model:
//   1. Clear every edge of g (factors stay).
//   2. Raise MaxLagAllowable to mlag if it is lower.
//   3. Add the lag-1 self-edge F:1 → F for every factor F.
//   4. For every factor in sorted order: with probability percentHousekeeping/100
//      it is housekeeping and keeps only its self-edge; otherwise draw k from the
//      Policy and add k distinct new parents (uniform factor, uniform lag in
//      [1, mlag]), redrawing duplicates.
//
// Termination: k is clamped to F·mlag − 1, the number of (factor, lag) slots
// still free after the self-edge.
//
// Determinism: fixed factor order and a fixed number of draws per accepted
// edge make outcomes a pure function of the source state.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/rng"
)

const (
	methodSimpleRandomizer = "SimpleRandomizer"
	methodPreviousStepOnly = "PreviousStepOnly"
	minIndegree            = 2
	minLag                 = 1
	percentMin             = 0.0
	percentMax             = 100.0
)

// SimpleRandomizer returns a Randomizer that rewires g as described above.
func SimpleRandomizer(indegree int, policy Policy, mlag int, percentHousekeeping float64) Randomizer {
	return func(g *laggraph.LagGraph, cfg builderConfig) error {
		if err := validateParams(methodSimpleRandomizer, indegree, policy, mlag, percentHousekeeping, cfg); err != nil {
			return err
		}
		return randomizeStructure(methodSimpleRandomizer, g, cfg.src, indegree, policy, mlag, percentHousekeeping)
	}
}

// PreviousStepOnly is SimpleRandomizer restricted to lag 1: every parent
// acts from the immediately preceding step.
func PreviousStepOnly(indegree int, policy Policy, percentHousekeeping float64) Randomizer {
	return func(g *laggraph.LagGraph, cfg builderConfig) error {
		if err := validateParams(methodPreviousStepOnly, indegree, policy, minLag, percentHousekeeping, cfg); err != nil {
			return err
		}
		return randomizeStructure(methodPreviousStepOnly, g, cfg.src, indegree, policy, minLag, percentHousekeeping)
	}
}

func validateParams(method string, indegree int, policy Policy, mlag int, pct float64, cfg builderConfig) error {
	if indegree < minIndegree {
		return fmt.Errorf("%s: indegree=%d < %d: %w", method, indegree, minIndegree, ErrBadIndegree)
	}
	if mlag < minLag {
		return fmt.Errorf("%s: mlag=%d < %d: %w", method, mlag, minLag, ErrBadLag)
	}
	if math.IsNaN(pct) || pct < percentMin || pct > percentMax {
		return fmt.Errorf("%s: percent=%g not in [%g,%g]: %w", method, pct, percentMin, percentMax, ErrInvalidPercent)
	}
	if !policy.valid() {
		return fmt.Errorf("%s: %s: %w", method, policy, ErrUnknownPolicy)
	}
	if cfg.src == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}

func randomizeStructure(method string, g *laggraph.LagGraph, src rng.Source,
	indegree int, policy Policy, mlag int, pct float64) error {
	g.ClearEdges()
	if g.MaxLagAllowable() < mlag {
		g.SetMaxLagAllowable(mlag)
	}

	factors := g.Factors()
	for _, f := range factors {
		if err := g.AddEdge(f, laggraph.LaggedFactor{Factor: f, Lag: 1}); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	free := len(factors)*mlag - 1
	for _, f := range factors {
		if src.Float64()*percentMax < pct {
			continue
		}
		k := min(policy.extraParents(indegree, src), free)
		for added := 0; added < k; {
			cand := laggraph.LaggedFactor{
				Factor: factors[src.IntN(len(factors))],
				Lag:    1 + src.IntN(mlag),
			}
			if g.HasEdge(f, cand) {
				continue
			}
			if err := g.AddEdge(f, cand); err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
			added++
		}
	}
	return nil
}
