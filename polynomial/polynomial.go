// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strings"
)

// Polynomial is an ordered sum of terms. The zero value is the empty (≡ 0) polynomial.
type Polynomial struct {
	terms []Term
}

// New returns a polynomial over the given terms; like terms are merged.
func New(terms ...Term) *Polynomial {
	p := &Polynomial{}
	for _, t := range terms {
		p.AddTerm(t)
	}
	return p
}

// NumTerms returns the number of terms.
func (p *Polynomial) NumTerms() int { return len(p.terms) }

// Term returns the i-th term.
func (p *Polynomial) Term(i int) (Term, error) {
	if i < 0 || i >= len(p.terms) {
		return Term{}, fmt.Errorf("Term(%d): %w", i, ErrBadTermIndex)
	}
	return p.terms[i], nil
}

// AddTerm adds t, merging its coefficient into an existing like term.
func (p *Polynomial) AddTerm(t Term) {
	for i, u := range p.terms {
		if u.IsLike(t) {
			p.terms[i] = u.WithCoefficient(u.coefficient + t.coefficient)
			return
		}
	}
	p.terms = append(p.terms, t)
}

// SetTerm replaces the i-th term.
func (p *Polynomial) SetTerm(i int, t Term) error {
	if i < 0 || i >= len(p.terms) {
		return fmt.Errorf("SetTerm(%d): %w", i, ErrBadTermIndex)
	}
	p.terms[i] = t
	return nil
}

// RemoveTerm deletes the i-th term.
func (p *Polynomial) RemoveTerm(i int) error {
	if i < 0 || i >= len(p.terms) {
		return fmt.Errorf("RemoveTerm(%d): %w", i, ErrBadTermIndex)
	}
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
	return nil
}

// FindTerm returns the index of the term over exactly vars (any order), or -1.
func (p *Polynomial) FindTerm(vars ...int) int {
	probe, err := NewTerm(0, vars...)
	if err != nil {
		return -1
	}
	for i, t := range p.terms {
		if t.IsLike(probe) {
			return i
		}
	}
	return -1
}

// Simplify merges like terms and drops terms with zero coefficient.
func (p *Polynomial) Simplify() {
	merged := New(p.terms...)
	out := merged.terms[:0]
	for _, t := range merged.terms {
		if t.coefficient != 0 {
			out = append(out, t)
		}
	}
	p.terms = out
}

// MaxVariable returns the largest variable used by any term, or -1.
func (p *Polynomial) MaxVariable() int {
	m := -1
	for _, t := range p.terms {
		if v := t.MaxVariable(); v > m {
			m = v
		}
	}
	return m
}

// Evaluate sums every term at values. The empty polynomial evaluates to 0.
//
// Complexity: O(total degree).
func (p *Polynomial) Evaluate(values []float64) (float64, error) {
	if m := p.MaxVariable(); m >= len(values) {
		return 0, fmt.Errorf("Polynomial.Evaluate: need %d values, have %d: %w", m+1, len(values), ErrTooFewValues)
	}
	return p.EvaluateUnchecked(values), nil
}

// EvaluateUnchecked is Evaluate without the arity check, for hot loops whose
// arity was validated when the polynomial was installed.
func (p *Polynomial) EvaluateUnchecked(values []float64) float64 {
	sum := 0.0
	for _, t := range p.terms {
		sum += t.eval(values)
	}
	return sum
}

// Clone returns an independent copy.
func (p *Polynomial) Clone() *Polynomial {
	c := &Polynomial{terms: make([]Term, len(p.terms))}
	copy(c.terms, p.terms)
	return c
}

// String renders terms joined by " + ", or "0" when empty.
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
