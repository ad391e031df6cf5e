// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/genesim/builder"
	"github.com/katalvlaran/genesim/dist"
	"github.com/katalvlaran/genesim/history"
	"github.com/katalvlaran/genesim/initializer"
	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/measure"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/update"
)

// Substream ids of the configured seed, one per consumer.
const (
	streamGraph uint64 = iota + 1
	streamGlass
	streamInit
	streamMeasure
)

// Run bundles the objects wired from a Config.
type Run struct {
	Graph       *laggraph.LagGraph
	Function    *update.BooleanGlass
	Initializer *initializer.Basal
	History     *history.History
	Simulator   *measure.Simulator
}

// Build wires a random lag graph, its Glass function, a basal initializer,
// the history and the measurement simulator. logger may be nil; simOpts are
// appended after the logger option.
func Build(c Config, logger *slog.Logger, simOpts ...measure.Option) (*Run, error) {
	g, err := BuildGraph(c)
	if err != nil {
		return nil, err
	}

	glassSrc := substream(c.Seed, streamGlass)
	fn, err := update.NewBooleanGlass(g, glassSrc,
		update.WithDecayRate(c.Glass.DecayRate),
		update.WithBooleanInfluenceRate(c.Glass.BooleanInfluenceRate),
		update.WithBasalExpression(c.Glass.BasalExpression),
		update.WithLowerBound(c.Glass.LowerBound),
		update.WithMaxRandomizeAttempts(c.Glass.MaxRandomizeAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i := 0; i < fn.NumFactors(); i++ {
		d, err := noiseDistribution(c.Glass.Noise, c.Glass.NoiseStdDev, glassSrc)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if err := fn.SetErrorDistribution(i, d); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	basal, err := initializer.NewBasal(fn, c.Glass.BasalExpression, c.Initializer.InitStdDev, substream(c.Seed, streamInit))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	h, err := history.New(basal, fn, history.WithInitSync(c.Measurement.InitSync))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	opts := append([]measure.Option{measure.WithLogger(logger)}, simOpts...)
	sim, err := measure.NewSimulator(c.Measurement, substream(c.Seed, streamMeasure), opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return &Run{Graph: g, Function: fn, Initializer: basal, History: h, Simulator: sim}, nil
}

// BuildGraph registers the configured factors and randomizes their edges.
// The result depends only on the seed and the graph section.
func BuildGraph(c Config) (*laggraph.LagGraph, error) {
	policy, err := builder.ParsePolicy(c.Graph.Policy)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	var r builder.Randomizer
	switch c.Graph.Randomizer {
	case "previous_step_only":
		r = builder.PreviousStepOnly(c.Graph.Indegree, policy, c.Graph.PercentHousekeeping)
	default:
		r = builder.SimpleRandomizer(c.Graph.Indegree, policy, c.Graph.MaxLag, c.Graph.PercentHousekeeping)
	}
	g, err := builder.BuildLagGraph(nil,
		[]builder.BuilderOption{
			builder.WithPrefix(c.Graph.Prefix),
			builder.WithRand(substream(c.Seed, streamGraph)),
		},
		builder.Factors(c.Graph.NumFactors),
		r,
	)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}

// noiseDistribution returns zero-mean noise of the given kind and standard
// deviation. Uniform noise spans ±sd·√3; sd 0 is a point mass for either kind.
func noiseDistribution(kind string, sd float64, src rng.Source) (dist.Distribution, error) {
	if kind == "uniform" && sd > 0 {
		half := sd * math.Sqrt(3)
		return dist.NewUniform(-half, half, src)
	}
	return dist.NewNormal(0, sd, src)
}

// substream returns the deterministic source of one consumer of seed.
func substream(seed int64, id uint64) rng.Source {
	return rng.New(rng.DeriveSeed(seed, id))
}
