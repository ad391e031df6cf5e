// SPDX-License-Identifier: MIT

// Command genesim simulates microarray measurements of a random gene
// regulatory network with Glass dynamics.
//
//	genesim simulate --config genesim.yaml --out measured.csv --raw raw.csv
//	genesim graph --seed 42
//	genesim version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
