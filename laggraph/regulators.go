// SPDX-License-Identifier: MIT

package laggraph

import "fmt"

// Regulation is the result of Regulators: every factor that influences the
// target through a chain of edges, in breadth-first order.
type Regulation struct {
	// Order lists regulators by increasing Hops; ties in sorted parent order.
	Order []string
	// Hops[f] is the number of edges on the shortest chain f → ... → target.
	Hops map[string]int
	// MinDelay[f] is the smallest summed lag over the chains of length Hops[f].
	MinDelay map[string]int
}

type regItem struct {
	factor string
	hops   int
}

// Regulators walks the parent relation of factor breadth-first. maxHops limits
// the depth (0 means unlimited). The target itself is listed only when it
// lies on a chain back to itself, self-edges included.
//
// Errors:
//   - ErrUnknownFactor: factor is not registered.
//
// Complexity: O(F + E log E).
func (g *LagGraph) Regulators(factor string, maxHops int) (*Regulation, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.parents[factor]; !ok {
		return nil, fmt.Errorf("Regulators(%q): %w", factor, ErrUnknownFactor)
	}

	res := &Regulation{
		Hops:     make(map[string]int),
		MinDelay: make(map[string]int),
	}
	queue := []regItem{{factor: factor}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if maxHops > 0 && item.hops == maxHops {
			continue
		}
		// Same-level updates to MinDelay land before item is dequeued.
		base := 0
		if item.hops > 0 {
			base = res.MinDelay[item.factor]
		}
		for _, p := range sortedParents(g.parents[item.factor]) {
			hops, delay := item.hops+1, base+p.Lag
			seen, ok := res.Hops[p.Factor]
			switch {
			case !ok:
				res.Order = append(res.Order, p.Factor)
				res.Hops[p.Factor] = hops
				res.MinDelay[p.Factor] = delay
				queue = append(queue, regItem{factor: p.Factor, hops: hops})
			case seen == hops && delay < res.MinDelay[p.Factor]:
				res.MinDelay[p.Factor] = delay
			}
		}
	}
	return res, nil
}
