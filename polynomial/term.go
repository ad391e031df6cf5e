// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Term is Coefficient × Π values[v] for v in Variables.
// Variables are kept sorted; an empty list is a constant term.
type Term struct {
	coefficient float64
	variables   []int
}

// NewTerm builds a term. The variable list is copied and sorted.
func NewTerm(coefficient float64, variables ...int) (Term, error) {
	vars := make([]int, len(variables))
	copy(vars, variables)
	for _, v := range vars {
		if v < 0 {
			return Term{}, fmt.Errorf("NewTerm: variable %d: %w", v, ErrBadVariable)
		}
	}
	sort.Ints(vars)
	return Term{coefficient: coefficient, variables: vars}, nil
}

// Coefficient returns the term coefficient.
func (t Term) Coefficient() float64 { return t.coefficient }

// WithCoefficient returns a copy of t with coefficient c.
func (t Term) WithCoefficient(c float64) Term {
	return Term{coefficient: c, variables: t.variables}
}

// Variables returns a copy of the sorted variable list.
func (t Term) Variables() []int {
	out := make([]int, len(t.variables))
	copy(out, t.variables)
	return out
}

// Degree returns the total degree (number of variable factors).
func (t Term) Degree() int { return len(t.variables) }

// MaxVariable returns the largest variable index, or -1 for a constant term.
func (t Term) MaxVariable() int {
	if len(t.variables) == 0 {
		return -1
	}
	return t.variables[len(t.variables)-1]
}

// IsLike reports whether t and other have the same variable multiset.
func (t Term) IsLike(other Term) bool {
	if len(t.variables) != len(other.variables) {
		return false
	}
	for i, v := range t.variables {
		if other.variables[i] != v {
			return false
		}
	}
	return true
}

// Evaluate returns Coefficient × Π values[v].
func (t Term) Evaluate(values []float64) (float64, error) {
	if m := t.MaxVariable(); m >= len(values) {
		return 0, fmt.Errorf("Term.Evaluate: need %d values, have %d: %w", m+1, len(values), ErrTooFewValues)
	}
	return t.eval(values), nil
}

// eval skips the bounds check; callers guarantee len(values) > MaxVariable.
func (t Term) eval(values []float64) float64 {
	r := t.coefficient
	for _, v := range t.variables {
		r *= values[v]
	}
	return r
}

// String renders the term, e.g. "0.5*V0*V1^2" or "3".
func (t Term) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(t.coefficient, 'g', -1, 64))
	for i := 0; i < len(t.variables); {
		v := t.variables[i]
		j := i
		for j < len(t.variables) && t.variables[j] == v {
			j++
		}
		b.WriteString("*V")
		b.WriteString(strconv.Itoa(v))
		if p := j - i; p > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(p))
		}
		i = j
	}
	return b.String()
}
