// SPDX-License-Identifier: MIT

package update

import (
	"fmt"
	"math"

	"github.com/katalvlaran/genesim/boolfn"
	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/window"
)

// Glass defaults.
const (
	DefaultDecayRate            = 0.1
	DefaultBooleanInfluenceRate = 0.5
	DefaultBasalExpression      = 0.0
	DefaultLowerBound           = -1.0
	DefaultTrueValue            = 1.0
	DefaultFalseValue           = -1.0
)

// GlassOption configures a BooleanGlass before its tables are synthesized.
type GlassOption func(*glassConfig)

type glassConfig struct {
	decayRate   float64
	influence   float64
	basal       float64
	lowerBound  float64
	trueValue   float64
	falseValue  float64
	maxAttempts int
}

// WithDecayRate sets the decay rate; validated by NewBooleanGlass.
func WithDecayRate(d float64) GlassOption {
	return func(c *glassConfig) { c.decayRate = d }
}

// WithBooleanInfluenceRate sets the boolean influence rate; validated by NewBooleanGlass.
func WithBooleanInfluenceRate(r float64) GlassOption {
	return func(c *glassConfig) { c.influence = r }
}

// WithBasalExpression sets the basal expression (also the boolean threshold).
func WithBasalExpression(b float64) GlassOption {
	return func(c *glassConfig) { c.basal = b }
}

// WithLowerBound sets the expression floor.
func WithLowerBound(l float64) GlassOption {
	return func(c *glassConfig) { c.lowerBound = l }
}

// WithTruthValues sets the values F maps true and false onto.
func WithTruthValues(trueValue, falseValue float64) GlassOption {
	return func(c *glassConfig) { c.trueValue, c.falseValue = trueValue, falseValue }
}

// WithMaxRandomizeAttempts caps the randomize-until-effective loop per factor.
// 0 (the default) means no cap. Panics if n < 0.
func WithMaxRandomizeAttempts(n int) GlassOption {
	if n < 0 {
		panic("update: WithMaxRandomizeAttempts(n<0)")
	}
	return func(c *glassConfig) { c.maxAttempts = n }
}

// BooleanGlass implements Glass dynamics:
//
//	G_i(t) = max(L, G_i(t−1) − d·(G_i(t−1) − b) + r·F_i(parents) + ε)
//
// F_i thresholds each boolean parent at b, looks the pattern up in a random
// effective boolean table, and maps the result onto {trueValue, falseValue}.
// The lag-1 self-edge is not a boolean parent; the decay term carries it.
type BooleanGlass struct {
	graph   *laggraph.Indexed
	funcs   []*boolfn.Function
	errs    []dist.Distribution
	scratch [][]bool
	maxLag  int

	decayRate  float64
	influence  float64
	basal      float64
	lowerBound float64
	trueValue  float64
	falseValue float64
}

// NewBooleanGlass compiles g without lag-1 self-edges and synthesizes one
// effective boolean function per factor from src.
//
// Determinism: factors are synthesized in index order from src, so equal
// graphs and equal source states give equal tables.
//
// Errors:
//   - ErrNeedRandSource, ErrBadDecayRate, ErrBadInfluenceRate, ErrBadBounds.
//   - ErrIneffective: only when WithMaxRandomizeAttempts caps the search.
//   - boolfn.ErrTooManyParents: a factor has more boolean parents than a table holds.
func NewBooleanGlass(g *laggraph.LagGraph, src rng.Source, opts ...GlassOption) (*BooleanGlass, error) {
	cfg := glassConfig{
		decayRate:  DefaultDecayRate,
		influence:  DefaultBooleanInfluenceRate,
		basal:      DefaultBasalExpression,
		lowerBound: DefaultLowerBound,
		trueValue:  DefaultTrueValue,
		falseValue: DefaultFalseValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if src == nil {
		return nil, fmt.Errorf("NewBooleanGlass: %w", ErrNeedRandSource)
	}
	if err := validateDecay(cfg.decayRate); err != nil {
		return nil, fmt.Errorf("NewBooleanGlass: %w", err)
	}
	if err := validateInfluence(cfg.influence); err != nil {
		return nil, fmt.Errorf("NewBooleanGlass: %w", err)
	}
	if err := validateBounds(cfg.lowerBound, cfg.basal); err != nil {
		return nil, fmt.Errorf("NewBooleanGlass: %w", err)
	}

	ix := laggraph.Compile(g, true)
	n := ix.NumFactors()
	bg := &BooleanGlass{
		graph:      ix,
		funcs:      make([]*boolfn.Function, n),
		errs:       make([]dist.Distribution, n),
		scratch:    make([][]bool, n),
		maxLag:     max(1, ix.MaxLag()),
		decayRate:  cfg.decayRate,
		influence:  cfg.influence,
		basal:      cfg.basal,
		lowerBound: cfg.lowerBound,
		trueValue:  cfg.trueValue,
		falseValue: cfg.falseValue,
	}

	for i := 0; i < n; i++ {
		f, err := boolfn.New(ix.Parents(i))
		if err != nil {
			return nil, fmt.Errorf("NewBooleanGlass: factor %s: %w", ix.Factor(i), err)
		}
		if err := synthesize(f, src, cfg.maxAttempts); err != nil {
			return nil, fmt.Errorf("NewBooleanGlass: factor %s: %w", ix.Factor(i), err)
		}
		bg.funcs[i] = f

		d, err := dist.NewNormal(0, DefaultErrorStdDev, src)
		if err != nil {
			return nil, fmt.Errorf("NewBooleanGlass: %w", err)
		}
		bg.errs[i] = d
		bg.scratch[i] = make([]bool, f.NumParents())
	}
	return bg, nil
}

// synthesize redraws f until it is effective. maxAttempts == 0 never gives up.
func synthesize(f *boolfn.Function, src rng.Source, maxAttempts int) error {
	for attempt := 1; ; attempt++ {
		f.Randomize(src)
		if f.IsEffective() {
			return nil
		}
		if maxAttempts > 0 && attempt >= maxAttempts {
			return fmt.Errorf("%d attempts with %d parents: %w", attempt, f.NumParents(), ErrIneffective)
		}
	}
}

// Value applies the Glass equation to factor, reading lags 1..MaxLag of h.
// It draws exactly one noise value. Panics if factor is out of range.
//
// Complexity: O(P) for P boolean parents; no allocation.
func (bg *BooleanGlass) Value(factor int, h *window.Window) float64 {
	f := bg.funcs[factor]
	pattern := bg.scratch[factor]
	for j := range pattern {
		p := f.Parent(j)
		pattern[j] = h.Value(p.Lag, p.Index) > bg.basal
	}
	influence := bg.falseValue
	if f.ValueAt(pattern) {
		influence = bg.trueValue
	}

	prev := h.Value(1, factor)
	v := prev - bg.decayRate*(prev-bg.basal) + bg.influence*influence + bg.errs[factor].NextRandom()
	return math.Max(bg.lowerBound, v)
}

// NumFactors returns the number of compiled factors.
func (bg *BooleanGlass) NumFactors() int { return bg.graph.NumFactors() }

// MaxLag returns max(1, largest compiled lag); the decay term always reads lag 1.
func (bg *BooleanGlass) MaxLag() int { return bg.maxLag }

// Graph returns the compiled graph (lag-1 self-edges excluded).
func (bg *BooleanGlass) Graph() *laggraph.Indexed { return bg.graph }

// DecayRate returns d.
func (bg *BooleanGlass) DecayRate() float64 { return bg.decayRate }

// SetDecayRate sets d ∈ (0, 1].
func (bg *BooleanGlass) SetDecayRate(d float64) error {
	if err := validateDecay(d); err != nil {
		return fmt.Errorf("SetDecayRate: %w", err)
	}
	bg.decayRate = d
	return nil
}

// BooleanInfluenceRate returns r.
func (bg *BooleanGlass) BooleanInfluenceRate() float64 { return bg.influence }

// SetBooleanInfluenceRate sets r > 0.
func (bg *BooleanGlass) SetBooleanInfluenceRate(r float64) error {
	if err := validateInfluence(r); err != nil {
		return fmt.Errorf("SetBooleanInfluenceRate: %w", err)
	}
	bg.influence = r
	return nil
}

// BasalExpression returns b.
func (bg *BooleanGlass) BasalExpression() float64 { return bg.basal }

// SetBasalExpression sets b; it must stay above the lower bound.
func (bg *BooleanGlass) SetBasalExpression(b float64) error {
	if err := validateBounds(bg.lowerBound, b); err != nil {
		return fmt.Errorf("SetBasalExpression: %w", err)
	}
	bg.basal = b
	return nil
}

// LowerBound returns L.
func (bg *BooleanGlass) LowerBound() float64 { return bg.lowerBound }

// SetLowerBound sets L; it must stay below the basal expression.
func (bg *BooleanGlass) SetLowerBound(l float64) error {
	if err := validateBounds(l, bg.basal); err != nil {
		return fmt.Errorf("SetLowerBound: %w", err)
	}
	bg.lowerBound = l
	return nil
}

// TruthValues returns the values F maps true and false onto.
func (bg *BooleanGlass) TruthValues() (trueValue, falseValue float64) {
	return bg.trueValue, bg.falseValue
}

// SetTruthValues sets the values F maps true and false onto.
func (bg *BooleanGlass) SetTruthValues(trueValue, falseValue float64) {
	bg.trueValue, bg.falseValue = trueValue, falseValue
}

// BooleanFunction returns the live lookup table of factor.
func (bg *BooleanGlass) BooleanFunction(factor int) (*boolfn.Function, error) {
	if err := bg.checkFactor("BooleanFunction", factor); err != nil {
		return nil, err
	}
	return bg.funcs[factor], nil
}

// SetBooleanFunction replaces the table of factor; its parents must equal the
// factor's compiled boolean parents, in order.
//
// Errors:
//   - ErrBadFactor: factor outside [0, NumFactors).
//   - ErrArityMismatch: f is nil or its parent list differs.
func (bg *BooleanGlass) SetBooleanFunction(factor int, f *boolfn.Function) error {
	if err := bg.checkFactor("SetBooleanFunction", factor); err != nil {
		return err
	}
	want := bg.graph.Parents(factor)
	if f == nil || f.NumParents() != len(want) {
		return fmt.Errorf("SetBooleanFunction(%d): %w", factor, ErrArityMismatch)
	}
	for j, p := range want {
		if f.Parent(j) != p {
			return fmt.Errorf("SetBooleanFunction(%d): parent %d is %s, want %s: %w",
				factor, j, f.Parent(j), p, ErrArityMismatch)
		}
	}
	bg.funcs[factor] = f
	return nil
}

// ErrorDistribution returns the noise distribution of factor.
func (bg *BooleanGlass) ErrorDistribution(factor int) (dist.Distribution, error) {
	if err := bg.checkFactor("ErrorDistribution", factor); err != nil {
		return nil, err
	}
	return bg.errs[factor], nil
}

// SetErrorDistribution replaces the noise distribution of factor.
func (bg *BooleanGlass) SetErrorDistribution(factor int, d dist.Distribution) error {
	if err := bg.checkFactor("SetErrorDistribution", factor); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("SetErrorDistribution(%d): %w", factor, ErrNilDistribution)
	}
	bg.errs[factor] = d
	return nil
}

func (bg *BooleanGlass) checkFactor(method string, factor int) error {
	if factor < 0 || factor >= bg.graph.NumFactors() {
		return fmt.Errorf("%s(%d): %w", method, factor, ErrBadFactor)
	}
	return nil
}

func validateDecay(d float64) error {
	if !(d > 0 && d <= 1) {
		return fmt.Errorf("decay=%g: %w", d, ErrBadDecayRate)
	}
	return nil
}

func validateInfluence(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("influence=%g: %w", r, ErrBadInfluenceRate)
	}
	return nil
}

func validateBounds(lower, basal float64) error {
	if !(lower < basal) {
		return fmt.Errorf("lower=%g basal=%g: %w", lower, basal, ErrBadBounds)
	}
	return nil
}
