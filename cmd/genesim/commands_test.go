// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(&out, &errb)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func smallConfig(t *testing.T, extraMeasurement ...string) string {
	t.Helper()
	doc := `
log_level: error
graph:
  num_factors: 3
measurement:
  num_dishes: 2
  num_cells_per_dish: 5
  num_samples_per_dish: 2
`
	for _, line := range extraMeasurement {
		doc += "  " + line + "\n"
	}
	path := filepath.Join(t.TempDir(), "genesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "genesim dev\n", out)
}

func TestGraph_SeedIsReproducible(t *testing.T) {
	a, _, err := execute(t, "graph", "--config", smallConfig(t), "--seed", "3")
	require.NoError(t, err)
	b, _, err := execute(t, "graph", "--config", smallConfig(t), "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "G1 <- ")
	assert.Contains(t, a, "G3 <- ")
}

func TestSimulate_WritesCSV(t *testing.T) {
	dir := t.TempDir()
	measured := filepath.Join(dir, "measured.csv")
	raw := filepath.Join(dir, "raw.csv")

	_, _, err := execute(t, "simulate", "-c", smallConfig(t), "-o", measured, "--raw", raw)
	require.NoError(t, err)

	f, err := os.Open(measured)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+2*2)
	assert.Len(t, rows[0], 2+3*4)

	data, err := os.ReadFile(raw)
	require.NoError(t, err)
	rows, err = csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+2*5)
}

func TestSimulate_StdoutAndBadConfig(t *testing.T) {
	out, _, err := execute(t, "simulate", "-c", smallConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "dish,chip,G1:1")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("graph:\n  indegree: 0\n"), 0o600))
	_, _, err = execute(t, "simulate", "-c", bad)
	assert.Error(t, err)
}

func TestGraph_Regulators(t *testing.T) {
	out, _, err := execute(t, "graph", "-c", smallConfig(t), "--regulators", "G1", "--max-hops", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "G1 hops=1 min_delay=1")

	_, _, err = execute(t, "graph", "-c", smallConfig(t), "--regulators", "nope")
	assert.Error(t, err)
}

func TestSimulate_RawOnly(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "raw.csv")
	cfg := smallConfig(t, "measured_data_saved: false")

	out, _, err := execute(t, "simulate", "-c", cfg, "--raw", raw)
	require.NoError(t, err)
	assert.Empty(t, out, "measured data is disabled, nothing goes to stdout")

	data, err := os.ReadFile(raw)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+2*5)
	assert.Equal(t, []string{"dish", "cell"}, rows[0][:2])

	// An explicit --out turns measured output back on.
	measured := filepath.Join(t.TempDir(), "measured.csv")
	_, _, err = execute(t, "simulate", "-c", cfg, "-o", measured)
	require.NoError(t, err)
	assert.FileExists(t, measured)

	// Neither output requested.
	_, _, err = execute(t, "simulate", "-c", cfg)
	assert.ErrorIs(t, err, errNothingToSave)
}

func TestSimulate_SingleRunID(t *testing.T) {
	cfg := smallConfig(t)
	path := filepath.Join(t.TempDir(), "info.yaml")
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(data, []byte("log_level: error"), []byte("log_level: info"), 1), 0o600))

	_, logs, err := execute(t, "simulate", "-c", path, "-o", filepath.Join(t.TempDir(), "m.csv"))
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(logs), "\n") {
		i := strings.Index(line, "run_id=")
		require.GreaterOrEqual(t, i, 0, "line without run_id: %s", line)
		ids[strings.Fields(line[i:])[0]] = true
	}
	assert.Len(t, ids, 1, "every log line carries the same run id")
	assert.NotContains(t, logs, " run=")
}
