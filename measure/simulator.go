// SPDX-License-Identifier: MIT

package measure

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/genesim/dish"
	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/history"
	"github.com/katalvlaran/genesim/rng"
)

// progressEvery is the cell interval between progress reports.
const progressEvery = 50

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithProgress installs a callback invoked with zero-based (dish, cell)
// every 50 cells.
func WithProgress(fn func(dish, cell int)) Option {
	return func(s *Simulator) { s.progress = fn }
}

// WithRunID tags every Result and log line with id instead of a fresh
// uuid per Simulate call.
func WithRunID(id uuid.UUID) Option {
	return func(s *Simulator) { s.runID = id }
}

// Simulator runs measurement simulations with fixed parameters.
type Simulator struct {
	params   Params
	src      rng.Source
	logger   *slog.Logger
	progress func(dish, cell int)
	runID    uuid.UUID
}

// Result holds the data of one simulation.
//
// RawData[f][s][d·NumCellsPerDish+c] is factor f at TimeSteps[s] in cell c of
// dish d; MeasuredData[f][s][d·NumSamplesPerDish+ch] is the measurement of
// chip ch of dish d. Either is nil when not saved.
type Result struct {
	RunID             uuid.UUID
	Factors           []string
	TimeSteps         []int
	NumDishes         int
	NumCellsPerDish   int
	NumSamplesPerDish int
	RawData           [][][]float64
	MeasuredData      [][][]float64
}

// NewSimulator validates params. The dish bumps and measurement errors of
// every run are drawn from src.
func NewSimulator(params Params, src rng.Source, opts ...Option) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("NewSimulator: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("NewSimulator: %w", ErrNeedRandSource)
	}
	s := &Simulator{params: params, src: src}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// Params returns the simulation parameters.
func (s *Simulator) Params() Params { return s.params }

// Simulate resets h, installs a fresh dish model and the InitSync flag on it,
// and simulates every cell of every dish. ctx is checked between cells.
func (s *Simulator) Simulate(ctx context.Context, h *history.History) (*Result, error) {
	if h == nil {
		return nil, fmt.Errorf("Simulate: %w", ErrNilHistory)
	}
	p := s.params
	steps := p.TimeSteps()
	numFactors := h.NumFactors()
	numChips := p.NumSamplesPerDish

	h.Reset()
	dm, err := dish.New(p.NumDishes, p.DishDishVariability, s.src)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	h.SetInitSync(p.InitSync)
	h.SetDishModel(dm)

	runID := s.runID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	res := &Result{
		RunID:             runID,
		Factors:           make([]string, numFactors),
		TimeSteps:         steps,
		NumDishes:         p.NumDishes,
		NumCellsPerDish:   p.NumCellsPerDish,
		NumSamplesPerDish: numChips,
	}
	for f := range res.Factors {
		res.Factors[f] = h.Factor(f)
	}
	if p.MeasuredDataSaved {
		res.MeasuredData = cube(numFactors, len(steps), p.NumDishes*numChips)
	}
	if p.RawDataSaved {
		res.RawData = cube(numFactors, len(steps), p.NumDishes*p.NumCellsPerDish)
	}

	sampleDist, err := dist.NewNormal(0, p.SampleSampleVariability, s.src)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	chipDist, err := dist.NewNormal(0, p.ChipChipVariability, s.src)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	pixelDist, err := dist.NewNormal(0, p.PixelDigitalization, s.src)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	chipErrs, sampleErrs := grid(p.NumDishes, numChips), grid(p.NumDishes, numChips)
	for d := 0; d < p.NumDishes; d++ {
		for ch := 0; ch < numChips; ch++ {
			chipErrs[d][ch] = chipDist.NextRandom()
			sampleErrs[d][ch] = sampleDist.NextRandom()
		}
	}

	logger := s.logger.With("run_id", res.RunID.String())
	logger.Info("simulation started",
		"factors", numFactors,
		"dishes", p.NumDishes,
		"cells_per_dish", p.NumCellsPerDish,
		"stored_steps", len(steps),
		"init_sync", p.InitSync)
	start := time.Now()

	cell := grid(len(steps), numFactors)
	agg := grid(len(steps), numFactors)
	for d := 0; d < p.NumDishes; d++ {
		if err := dm.SetDishNumber(d); err != nil {
			return nil, fmt.Errorf("Simulate: %w", err)
		}
		zero(agg)

		for c := 0; c < p.NumCellsPerDish; c++ {
			if err := ctx.Err(); err != nil {
				logger.Warn("simulation canceled", "dish", d, "cell", c, "error", err)
				return nil, fmt.Errorf("Simulate: dish %d cell %d: %w", d, c, err)
			}
			if (c+1)%progressEvery == 0 {
				logger.Debug("simulation progress", "dish", d, "cell", c)
				if s.progress != nil {
					s.progress(d, c)
				}
			}

			if err := s.simulateCell(h, steps, cell); err != nil {
				return nil, fmt.Errorf("Simulate: dish %d cell %d: %w", d, c, err)
			}
			col := d*p.NumCellsPerDish + c
			for si := range cell {
				for f, v := range cell[si] {
					agg[si][f] += v
					if res.RawData != nil {
						res.RawData[f][si][col] = v
					}
				}
			}
		}

		if res.MeasuredData != nil {
			for si := range steps {
				for f := 0; f < numFactors; f++ {
					avg := agg[si][f] / float64(p.NumCellsPerDish)
					for ch := 0; ch < numChips; ch++ {
						res.MeasuredData[f][si][d*numChips+ch] =
							avg + sampleErrs[d][ch] + chipErrs[d][ch] + pixelDist.NextRandom()
					}
				}
			}
		}
	}

	logger.Info("simulation completed", "duration", time.Since(start))
	return res, nil
}

// simulateCell initializes h and fills out[s] with the lag-0 row at steps[s].
// Step 1 is the initial state; every later step costs one Update.
func (s *Simulator) simulateCell(h *history.History, steps []int, out [][]float64) error {
	zero(out)
	if err := h.Initialize(); err != nil {
		return err
	}
	si := 0
	for step := 0; step < s.params.StepsGenerated && si < len(steps); step++ {
		if step > 0 {
			if err := h.Update(); err != nil {
				return err
			}
		}
		if step != steps[si]-1 {
			continue
		}
		row := h.Window().Row(0)
		for f, v := range row {
			if s.params.AntilogCalculated {
				v = math.Exp(v)
			}
			out[si][f] = v
		}
		si++
	}
	return nil
}

func cube(a, b, c int) [][][]float64 {
	out := make([][][]float64, a)
	for i := range out {
		out[i] = grid(b, c)
	}
	return out
}

func grid(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

func zero(g [][]float64) {
	for _, row := range g {
		clear(row)
	}
}
