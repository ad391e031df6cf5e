// SPDX-License-Identifier: MIT

package update

import (
	"fmt"

	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/polynomial"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/window"
)

// Default noise of polynomial and Glass updates: N(0, DefaultErrorStdDev).
const DefaultErrorStdDev = 0.05

// Polynomial evaluates, per factor, a polynomial over that factor's parents
// (variable j is the j-th compiled parent) and adds a noise draw.
type Polynomial struct {
	graph   *laggraph.Indexed
	polys   []*polynomial.Polynomial
	errs    []dist.Distribution
	scratch [][]float64
}

// NewPolynomial compiles g and installs empty polynomials (≡ 0) with
// N(0, 0.05) noise drawn from src.
//
// Errors:
//   - ErrNeedRandSource: src is nil.
//
// Complexity: O(F + E log E).
func NewPolynomial(g *laggraph.LagGraph, src rng.Source) (*Polynomial, error) {
	if src == nil {
		return nil, fmt.Errorf("NewPolynomial: %w", ErrNeedRandSource)
	}
	ix := laggraph.Compile(g, false)
	n := ix.NumFactors()
	pf := &Polynomial{
		graph:   ix,
		polys:   make([]*polynomial.Polynomial, n),
		errs:    make([]dist.Distribution, n),
		scratch: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		pf.polys[i] = polynomial.New()
		d, err := dist.NewNormal(0, DefaultErrorStdDev, src)
		if err != nil {
			return nil, fmt.Errorf("NewPolynomial: %w", err)
		}
		pf.errs[i] = d
		pf.scratch[i] = make([]float64, ix.NumParents(i))
	}
	return pf, nil
}

// Value gathers the parent values, evaluates the factor polynomial and adds noise.
//
// Complexity: O(P + T·D) for P parents and T terms of degree at most D.
func (pf *Polynomial) Value(factor int, h *window.Window) float64 {
	vals := pf.scratch[factor]
	for j := range vals {
		p := pf.graph.Parent(factor, j)
		vals[j] = h.Value(p.Lag, p.Index)
	}
	return pf.polys[factor].EvaluateUnchecked(vals) + pf.errs[factor].NextRandom()
}

// NumFactors returns the number of compiled factors.
func (pf *Polynomial) NumFactors() int { return pf.graph.NumFactors() }

// MaxLag returns the largest compiled parent lag.
func (pf *Polynomial) MaxLag() int { return pf.graph.MaxLag() }

// Graph returns the compiled graph.
func (pf *Polynomial) Graph() *laggraph.Indexed { return pf.graph }

// Polynomial returns the polynomial of factor (live, not a copy).
func (pf *Polynomial) Polynomial(factor int) (*polynomial.Polynomial, error) {
	if err := pf.checkFactor("Polynomial", factor); err != nil {
		return nil, err
	}
	return pf.polys[factor], nil
}

// SetPolynomial installs p for factor. Every variable must name a parent;
// nil installs the zero polynomial.
//
// Errors:
//   - ErrBadFactor: factor outside [0, NumFactors).
//   - ErrBadVariable: a variable index ≥ NumParents(factor).
func (pf *Polynomial) SetPolynomial(factor int, p *polynomial.Polynomial) error {
	if err := pf.checkFactor("SetPolynomial", factor); err != nil {
		return err
	}
	if p == nil {
		p = polynomial.New()
	}
	if m := p.MaxVariable(); m >= pf.graph.NumParents(factor) {
		return fmt.Errorf("SetPolynomial(%d): variable %d with %d parents: %w",
			factor, m, pf.graph.NumParents(factor), ErrBadVariable)
	}
	pf.polys[factor] = p
	return nil
}

// ErrorDistribution returns the noise distribution of factor.
func (pf *Polynomial) ErrorDistribution(factor int) (dist.Distribution, error) {
	if err := pf.checkFactor("ErrorDistribution", factor); err != nil {
		return nil, err
	}
	return pf.errs[factor], nil
}

// SetErrorDistribution replaces the noise distribution of factor.
func (pf *Polynomial) SetErrorDistribution(factor int, d dist.Distribution) error {
	if err := pf.checkFactor("SetErrorDistribution", factor); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("SetErrorDistribution(%d): %w", factor, ErrNilDistribution)
	}
	pf.errs[factor] = d
	return nil
}

func (pf *Polynomial) checkFactor(method string, factor int) error {
	if factor < 0 || factor >= pf.graph.NumFactors() {
		return fmt.Errorf("%s(%d): %w", method, factor, ErrBadFactor)
	}
	return nil
}
