// SPDX-License-Identifier: MIT

package laggraph

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// defaultMaxLagAllowable is the lag ceiling of a freshly constructed graph.
const defaultMaxLagAllowable = 1

// Option configures a LagGraph before creation.
type Option func(g *LagGraph)

// WithMaxLagAllowable sets the initial lag ceiling. Panics if n < 1.
func WithMaxLagAllowable(n int) Option {
	if n < 1 {
		panic("laggraph: WithMaxLagAllowable(n<1)")
	}
	return func(g *LagGraph) { g.maxLagAllowable = n }
}

// LagGraph maps each factor to the set of lagged factors that regulate it.
//
// mu guards both the parent map and maxLagAllowable. All methods are safe for
// concurrent use; the simulation itself only ever reads a compiled Indexed.
type LagGraph struct {
	mu sync.RWMutex

	maxLagAllowable int

	// parents[factor] = set of LaggedFactor edges into factor at lag 0.
	parents map[string]map[LaggedFactor]struct{}
}

// New creates an empty LagGraph.
//
// Complexity: O(len(opts)).
func New(opts ...Option) *LagGraph {
	g := &LagGraph{
		maxLagAllowable: defaultMaxLagAllowable,
		parents:         make(map[string]map[LaggedFactor]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clone returns a deep copy of g (factors, edges and lag ceiling).
//
// Complexity: O(F + E).
func (g *LagGraph) Clone() *LagGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &LagGraph{
		maxLagAllowable: g.maxLagAllowable,
		parents:         make(map[string]map[LaggedFactor]struct{}, len(g.parents)),
	}
	for f, set := range g.parents {
		cp := make(map[LaggedFactor]struct{}, len(set))
		for lf := range set {
			cp[lf] = struct{}{}
		}
		c.parents[f] = cp
	}
	return c
}

// AddFactor registers name with an empty parent set. Idempotent.
//
// Errors:
//   - ErrInvalidName: name fails ValidName.
func (g *LagGraph) AddFactor(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("AddFactor(%q): %w", name, ErrInvalidName)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.parents[name]; !ok {
		g.parents[name] = make(map[LaggedFactor]struct{})
	}
	return nil
}

// HasFactor reports whether name is registered.
func (g *LagGraph) HasFactor(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.parents[name]
	return ok
}

// RemoveFactor deletes name, its parent set, and every lagged reference to it
// held by other factors.
//
// Errors:
//   - ErrUnknownFactor: name is not registered.
//
// Complexity: O(F + E).
func (g *LagGraph) RemoveFactor(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.parents[name]; !ok {
		return fmt.Errorf("RemoveFactor(%q): %w", name, ErrUnknownFactor)
	}
	delete(g.parents, name)
	for _, set := range g.parents {
		for lf := range set {
			if lf.Factor == name {
				delete(set, lf)
			}
		}
	}
	return nil
}

// RenameFactor relabels oldName to newName, rewriting every lagged reference.
//
// Errors:
//   - ErrInvalidName: newName fails ValidName.
//   - ErrUnknownFactor: oldName is not registered.
//   - ErrFactorExists: newName is already registered.
//
// Complexity: O(F + E).
func (g *LagGraph) RenameFactor(oldName, newName string) error {
	if !ValidName(newName) {
		return fmt.Errorf("RenameFactor(%q→%q): %w", oldName, newName, ErrInvalidName)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.parents[oldName]
	if !ok {
		return fmt.Errorf("RenameFactor(%q→%q): %w", oldName, newName, ErrUnknownFactor)
	}
	if _, exists := g.parents[newName]; exists {
		return fmt.Errorf("RenameFactor(%q→%q): %w", oldName, newName, ErrFactorExists)
	}

	delete(g.parents, oldName)
	g.parents[newName] = set
	for _, ps := range g.parents {
		for lf := range ps {
			if lf.Factor == oldName {
				delete(ps, lf)
				ps[LaggedFactor{Factor: newName, Lag: lf.Lag}] = struct{}{}
			}
		}
	}
	return nil
}

// AddEdge adds the edge lf → factor. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrIllegalLag: lf.Lag < 1 or lf.Lag > MaxLagAllowable.
//   - ErrUnknownFactor: factor or lf.Factor is not registered.
func (g *LagGraph) AddEdge(factor string, lf LaggedFactor) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if lf.Lag < 1 || lf.Lag > g.maxLagAllowable {
		return fmt.Errorf("AddEdge(%s→%s): lag not in [1,%d]: %w",
			lf, factor, g.maxLagAllowable, ErrIllegalLag)
	}
	set, ok := g.parents[factor]
	if !ok {
		return fmt.Errorf("AddEdge(%s→%s): %q: %w", lf, factor, factor, ErrUnknownFactor)
	}
	if _, ok := g.parents[lf.Factor]; !ok {
		return fmt.Errorf("AddEdge(%s→%s): %q: %w", lf, factor, lf.Factor, ErrUnknownFactor)
	}
	set[lf] = struct{}{}
	return nil
}

// RemoveEdge deletes the edge lf → factor.
//
// Errors:
//   - ErrUnknownFactor: factor is not registered.
//   - ErrUnknownEdge: the edge does not exist.
func (g *LagGraph) RemoveEdge(factor string, lf LaggedFactor) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.parents[factor]
	if !ok {
		return fmt.Errorf("RemoveEdge(%s→%s): %w", lf, factor, ErrUnknownFactor)
	}
	if _, ok := set[lf]; !ok {
		return fmt.Errorf("RemoveEdge(%s→%s): %w", lf, factor, ErrUnknownEdge)
	}
	delete(set, lf)
	return nil
}

// HasEdge reports whether lf → factor exists.
func (g *LagGraph) HasEdge(factor string, lf LaggedFactor) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.parents[factor][lf]
	return ok
}

// ClearEdges removes every edge, keeping all factors.
func (g *LagGraph) ClearEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for f := range g.parents {
		g.parents[f] = make(map[LaggedFactor]struct{})
	}
}

// Factors returns the registered factor names sorted ascending.
//
// Complexity: O(F log F).
func (g *LagGraph) Factors() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.parents))
	for f := range g.parents {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NumFactors returns the number of registered factors.
func (g *LagGraph) NumFactors() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.parents)
}

// Parents returns the parents of factor in (Factor, Lag) order.
//
// Errors:
//   - ErrUnknownFactor: factor is not registered.
//
// Complexity: O(P log P).
func (g *LagGraph) Parents(factor string) ([]LaggedFactor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.parents[factor]
	if !ok {
		return nil, fmt.Errorf("Parents(%q): %w", factor, ErrUnknownFactor)
	}
	return sortedParents(set), nil
}

// NumEdges returns the total number of edges.
func (g *LagGraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, set := range g.parents {
		n += len(set)
	}
	return n
}

// MaxLag returns the largest lag used by any edge, or 0 for an edgeless graph.
//
// Complexity: O(E).
func (g *LagGraph) MaxLag() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.maxLagLocked()
}

func (g *LagGraph) maxLagLocked() int {
	m := 0
	for _, set := range g.parents {
		for lf := range set {
			if lf.Lag > m {
				m = lf.Lag
			}
		}
	}
	return m
}

// MaxLagAllowable returns the current lag ceiling.
func (g *LagGraph) MaxLagAllowable() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.maxLagAllowable
}

// SetMaxLagAllowable sets the lag ceiling to n. The call is silently ignored
// when n < 1 or n < MaxLag(), so that existing edges stay legal.
func (g *LagGraph) SetMaxLagAllowable(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n < 1 || n < g.maxLagLocked() {
		return
	}
	g.maxLagAllowable = n
}

// String renders one line per factor: "G1 <- G1:1 G2:3".
func (g *LagGraph) String() string {
	var b strings.Builder
	for _, f := range g.Factors() {
		ps, _ := g.Parents(f)
		b.WriteString(f)
		b.WriteString(" <-")
		for _, p := range ps {
			b.WriteByte(' ')
			b.WriteString(p.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sortedParents(set map[LaggedFactor]struct{}) []LaggedFactor {
	out := make([]LaggedFactor, 0, len(set))
	for lf := range set {
		out = append(out, lf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
