// SPDX-License-Identifier: MIT

package update

import (
	"fmt"

	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/polynomial"
	"github.com/katalvlaran/genesim/rng"
)

// Linear is a Polynomial restricted to an intercept plus one linear term per
// parent. Defaults: intercept 0, coefficient 1/numParents for every parent.
type Linear struct {
	*Polynomial
}

// NewLinear compiles g and installs the equal-weight linear polynomials:
// intercept 0 and 1/P per parent.
//
// Errors:
//   - ErrNeedRandSource: src is nil.
func NewLinear(g *laggraph.LagGraph, src rng.Source) (*Linear, error) {
	pf, err := NewPolynomial(g, src)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	for i := 0; i < pf.NumFactors(); i++ {
		k := pf.graph.NumParents(i)
		intercept, _ := polynomial.NewTerm(0)
		p := polynomial.New(intercept)
		for j := 0; j < k; j++ {
			term, _ := polynomial.NewTerm(1/float64(k), j)
			p.AddTerm(term)
		}
		pf.polys[i] = p
	}
	return &Linear{Polynomial: pf}, nil
}

// Intercept returns the constant term of factor.
func (lf *Linear) Intercept(factor int) (float64, error) {
	return lf.coefficient("Intercept", factor)
}

// SetIntercept sets the constant term of factor.
func (lf *Linear) SetIntercept(factor int, v float64) error {
	return lf.setCoefficient("SetIntercept", factor, v)
}

// Coefficient returns the coefficient of the parent-th parent of factor.
func (lf *Linear) Coefficient(factor, parent int) (float64, error) {
	if err := lf.checkParent("Coefficient", factor, parent); err != nil {
		return 0, err
	}
	return lf.coefficient("Coefficient", factor, parent)
}

// SetCoefficient sets the coefficient of the parent-th parent of factor.
func (lf *Linear) SetCoefficient(factor, parent int, v float64) error {
	if err := lf.checkParent("SetCoefficient", factor, parent); err != nil {
		return err
	}
	return lf.setCoefficient("SetCoefficient", factor, v, parent)
}

// SetCoefficientFor resolves names: the coefficient of edge parent → factor.
func (lf *Linear) SetCoefficientFor(factor string, parent laggraph.LaggedFactor, v float64) error {
	i := lf.graph.Index(factor)
	if i < 0 {
		return fmt.Errorf("SetCoefficientFor(%s←%s): %w", factor, parent, ErrBadFactor)
	}
	pi := lf.graph.Index(parent.Factor)
	j := -1
	if pi >= 0 {
		j = lf.graph.ParentIndex(i, laggraph.IndexedParent{Index: pi, Lag: parent.Lag})
	}
	if j < 0 {
		return fmt.Errorf("SetCoefficientFor(%s←%s): %w", factor, parent, ErrBadParent)
	}
	return lf.setCoefficient("SetCoefficientFor", i, v, j)
}

func (lf *Linear) checkParent(method string, factor, parent int) error {
	if err := lf.checkFactor(method, factor); err != nil {
		return err
	}
	if parent < 0 || parent >= lf.graph.NumParents(factor) {
		return fmt.Errorf("%s(%d, %d): %w", method, factor, parent, ErrBadParent)
	}
	return nil
}

func (lf *Linear) coefficient(method string, factor int, vars ...int) (float64, error) {
	if err := lf.checkFactor(method, factor); err != nil {
		return 0, err
	}
	p := lf.polys[factor]
	idx := p.FindTerm(vars...)
	if idx < 0 {
		return 0, nil
	}
	t, err := p.Term(idx)
	if err != nil {
		return 0, err
	}
	return t.Coefficient(), nil
}

func (lf *Linear) setCoefficient(method string, factor int, v float64, vars ...int) error {
	if err := lf.checkFactor(method, factor); err != nil {
		return err
	}
	p := lf.polys[factor]
	term, err := polynomial.NewTerm(v, vars...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if idx := p.FindTerm(vars...); idx >= 0 {
		return p.SetTerm(idx, term)
	}
	p.AddTerm(term)
	return nil
}
