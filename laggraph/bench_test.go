// SPDX-License-Identifier: MIT

// Package laggraph_test provides benchmarks for LagGraph operations.
package laggraph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/genesim/laggraph"
)

// benchGraph builds n factors, each regulated by its two predecessors.
func benchGraph(b *testing.B, n int) *laggraph.LagGraph {
	b.Helper()
	g := laggraph.New(laggraph.WithMaxLagAllowable(2))
	for i := 0; i < n; i++ {
		if err := g.AddFactor(fmt.Sprintf("G%d", i)); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		for lag := 1; lag <= 2; lag++ {
			p := fmt.Sprintf("G%d", (i+n-lag)%n)
			if err := g.AddEdge(fmt.Sprintf("G%d", i), laggraph.LaggedFactor{Factor: p, Lag: lag}); err != nil {
				b.Fatal(err)
			}
		}
	}
	return g
}

// BenchmarkCompile measures snapshotting a 200-factor graph.
func BenchmarkCompile(b *testing.B) {
	g := benchGraph(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = laggraph.Compile(g, true)
	}
}

// BenchmarkRegulators measures the breadth-first regulator walk.
func BenchmarkRegulators(b *testing.B) {
	g := benchGraph(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Regulators("G0", 0)
	}
}
