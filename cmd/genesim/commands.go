// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/genesim/config"
	"github.com/katalvlaran/genesim/measure"
)

var errNothingToSave = errors.New("simulate: measured data disabled and no raw path given")

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

type rootFlags struct {
	configPath string
	seed       int64
	seedSet    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "genesim",
		Short:        "Simulate gene expression measurements of random lagged regulatory networks",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "random seed (overrides config and "+config.EnvSeed+")")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		flags.seedSet = cmd.Flags().Changed("seed")
	}

	root.AddCommand(newSimulateCmd(&flags), newGraphCmd(&flags), newVersionCmd())
	return root
}

// loadConfig applies the --seed override on top of config.Load.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.seedSet {
		cfg.Seed = flags.seed
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var outPath, rawPath string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a measurement simulation and write measured data as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.MeasuredPath = outPath
				cfg.Measurement.MeasuredDataSaved = true
			}
			if cmd.Flags().Changed("raw") {
				cfg.Output.RawPath = rawPath
			}
			if cfg.Output.RawPath != "" {
				cfg.Measurement.RawDataSaved = true
			}

			if !cfg.Measurement.MeasuredDataSaved && cfg.Output.RawPath == "" {
				return errNothingToSave
			}

			runID := uuid.New()
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			runLog := logger.With("run_id", runID.String())
			run, err := config.Build(cfg, logger, measure.WithRunID(runID))
			if err != nil {
				return err
			}
			runLog.Info("network built",
				"seed", cfg.Seed,
				"factors", run.Graph.NumFactors(),
				"edges", run.Graph.NumEdges(),
				"max_lag", run.Function.MaxLag())

			res, err := run.Simulator.Simulate(cmd.Context(), run.History)
			if err != nil {
				return err
			}

			if cfg.Measurement.MeasuredDataSaved {
				if err := writeTo(cfg.Output.MeasuredPath, cmd.OutOrStdout(), func(w io.Writer) error {
					return measure.WriteMeasuredCSV(w, res, cfg.Measurement.IncludeDishAndChipColumns)
				}); err != nil {
					return err
				}
			}
			if cfg.Output.RawPath != "" {
				if err := writeTo(cfg.Output.RawPath, nil, func(w io.Writer) error {
					return measure.WriteRawCSV(w, res)
				}); err != nil {
					return err
				}
			}
			runLog.Info("results written",
				"measured", displayPath(cfg.Measurement.MeasuredDataSaved, cfg.Output.MeasuredPath),
				"raw", displayPath(cfg.Output.RawPath != "", cfg.Output.RawPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "measured data CSV (default stdout)")
	cmd.Flags().StringVar(&rawPath, "raw", "", "also save raw per-cell data to this CSV")
	return cmd
}

func newGraphCmd(flags *rootFlags) *cobra.Command {
	var target string
	var maxHops int

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the randomized lag graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			g, err := config.BuildGraph(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if target == "" {
				_, err = fmt.Fprint(out, g)
				return err
			}

			reg, err := g.Regulators(target, maxHops)
			if err != nil {
				return err
			}
			for _, f := range reg.Order {
				if _, err := fmt.Fprintf(out, "%s hops=%d min_delay=%d\n", f, reg.Hops[f], reg.MinDelay[f]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "regulators", "", "list the transitive regulators of this factor instead")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "limit --regulators to this many edges (0 = unlimited)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "genesim", version)
		},
	}
}

// writeTo runs write against the file at path, or against fallback when path is empty.
func writeTo(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// displayPath renders an output destination for logging.
func displayPath(saved bool, p string) string {
	switch {
	case !saved:
		return "none"
	case p == "":
		return "stdout"
	}
	return p
}
