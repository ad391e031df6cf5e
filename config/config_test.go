// SPDX-License-Identifier: MIT

package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genesim/config"
	"github.com/katalvlaran/genesim/dist"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
seed: 17
log_level: debug
graph:
  num_factors: 4
  policy: max
measurement:
  num_cells_per_dish: 20
  raw_data_saved: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(17), cfg.Seed)
	assert.Equal(t, 4, cfg.Graph.NumFactors)
	assert.Equal(t, "max", cfg.Graph.Policy)
	assert.Equal(t, "G", cfg.Graph.Prefix, "unset keys keep defaults")
	assert.Equal(t, 20, cfg.Measurement.NumCellsPerDish)
	assert.True(t, cfg.Measurement.RawDataSaved)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	t.Setenv(config.EnvSeed, "99")
	t.Setenv(config.EnvLogLevel, "WARN")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "graph: [unterminated"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "graph:\n  indegree: 1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "glass:\n  lower_bound: 0.5\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "measurement:\n  chip_chip_variability: 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv(config.EnvSeed, "not-a-number")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Graph.NumFactors = 5
	cfg.Measurement.NumCellsPerDish = 10

	run, err := config.Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, run.Graph.NumFactors())
	assert.Equal(t, 5, run.History.NumFactors())
	assert.Equal(t, run.Function, run.History.Function())

	res, err := run.Simulator.Simulate(context.Background(), run.History)
	require.NoError(t, err)
	assert.Len(t, res.MeasuredData, 5)

	again, err := config.BuildGraph(cfg)
	require.NoError(t, err)
	assert.Equal(t, run.Graph.String(), again.String(), "graph depends only on seed and graph section")
}

func TestBuild_NoiseKind(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.NumFactors = 3
	cfg.Glass.Noise = "uniform"
	cfg.Glass.NoiseStdDev = 0.2

	run, err := config.Build(cfg, nil)
	require.NoError(t, err)
	for i := 0; i < run.Function.NumFactors(); i++ {
		d, err := run.Function.ErrorDistribution(i)
		require.NoError(t, err)
		u, ok := d.(*dist.Uniform)
		require.True(t, ok, "factor %d noise is %T", i, d)
		assert.InDelta(t, 0.2, u.StdDev(), 1e-12)
		assert.InDelta(t, 0, u.Mean(), 1e-12)
	}

	cfg.Glass.Noise = "normal"
	run, err = config.Build(cfg, nil)
	require.NoError(t, err)
	d, err := run.Function.ErrorDistribution(0)
	require.NoError(t, err)
	assert.Equal(t, 0.2, d.(*dist.Normal).StdDev())

	cfg.Glass.Noise = "cauchy"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestBuildGraph_PreviousStepOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Randomizer = "previous_step_only"
	cfg.Graph.MaxLag = 4
	g, err := config.BuildGraph(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, g.MaxLag())
}
