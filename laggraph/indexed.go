// SPDX-License-Identifier: MIT

package laggraph

import "sort"

// Indexed is an immutable, index-based snapshot of a LagGraph.
//
// Factor i is the i-th name of LagGraph.Factors() at compile time; parents[i]
// holds the resolved (index, lag) pairs in the source graph's parent order.
// Later mutation of the source graph has no effect on a compiled Indexed.
type Indexed struct {
	factors []string
	index   map[string]int
	parents [][]IndexedParent
	maxLag  int
}

// Compile snapshots g. If excludeSelfOneBack is set, the edge (own index, lag 1)
// is dropped from every parent list; Glass-style update functions model that
// dependency through their decay term instead.
//
// Complexity: O(F log F + E log E).
func Compile(g *LagGraph, excludeSelfOneBack bool) *Indexed {
	g.mu.RLock()
	defer g.mu.RUnlock()

	factors := make([]string, 0, len(g.parents))
	for f := range g.parents {
		factors = append(factors, f)
	}
	sort.Strings(factors)

	ix := &Indexed{
		factors: factors,
		index:   make(map[string]int, len(factors)),
		parents: make([][]IndexedParent, len(factors)),
	}
	for i, f := range factors {
		ix.index[f] = i
	}

	for i, f := range factors {
		lfs := sortedParents(g.parents[f])
		ps := make([]IndexedParent, 0, len(lfs))
		for _, lf := range lfs {
			p := IndexedParent{Index: ix.index[lf.Factor], Lag: lf.Lag}
			if excludeSelfOneBack && p.Index == i && p.Lag == 1 {
				continue
			}
			if p.Lag > ix.maxLag {
				ix.maxLag = p.Lag
			}
			ps = append(ps, p)
		}
		ix.parents[i] = ps
	}
	return ix
}

// NumFactors returns the number of compiled factors.
func (ix *Indexed) NumFactors() int { return len(ix.factors) }

// Factor returns the name of factor i. Panics if i is out of range.
func (ix *Indexed) Factor(i int) string { return ix.factors[i] }

// Factors returns a copy of the factor names in index order.
func (ix *Indexed) Factors() []string {
	out := make([]string, len(ix.factors))
	copy(out, ix.factors)
	return out
}

// Index returns the index of name, or -1 if it was not compiled.
func (ix *Indexed) Index(name string) int {
	if i, ok := ix.index[name]; ok {
		return i
	}
	return -1
}

// NumParents returns the number of compiled parents of factor i.
func (ix *Indexed) NumParents(i int) int { return len(ix.parents[i]) }

// Parent returns the j-th parent of factor i. Panics if out of range.
func (ix *Indexed) Parent(i, j int) IndexedParent { return ix.parents[i][j] }

// Parents returns a copy of the parent list of factor i.
func (ix *Indexed) Parents(i int) []IndexedParent {
	out := make([]IndexedParent, len(ix.parents[i]))
	copy(out, ix.parents[i])
	return out
}

// ParentIndex returns the position of p in the parent list of factor i, or -1.
//
// Complexity: O(P).
func (ix *Indexed) ParentIndex(i int, p IndexedParent) int {
	for j, q := range ix.parents[i] {
		if q == p {
			return j
		}
	}
	return -1
}

// MaxLag returns the largest lag among the compiled parents (0 if none).
func (ix *Indexed) MaxLag() int { return ix.maxLag }
