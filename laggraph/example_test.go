// SPDX-License-Identifier: MIT

package laggraph_test

import (
	"fmt"

	"github.com/katalvlaran/genesim/laggraph"
)

// ExampleCompile builds a three-factor lag graph and prints its compiled parents.
func ExampleCompile() {
	g := laggraph.New(laggraph.WithMaxLagAllowable(4))
	for _, f := range []string{"A", "B", "C"} {
		_ = g.AddFactor(f)
	}
	_ = g.AddEdge("A", laggraph.LaggedFactor{Factor: "C", Lag: 1})
	_ = g.AddEdge("B", laggraph.LaggedFactor{Factor: "A", Lag: 2})
	_ = g.AddEdge("C", laggraph.LaggedFactor{Factor: "B", Lag: 3})
	_ = g.AddEdge("C", laggraph.LaggedFactor{Factor: "C", Lag: 4})

	ix := laggraph.Compile(g, false)
	for i := 0; i < ix.NumFactors(); i++ {
		fmt.Println(ix.Factor(i), ix.Parents(i))
	}

	// Output:
	// A [2:1]
	// B [0:2]
	// C [1:3 2:4]
}
