// SPDX-License-Identifier: MIT

// Package builder randomizes the structure of a laggraph.LagGraph.
//
// A Randomizer is a closure over its parameters; the resolved builderConfig
// (naming scheme, random source) is supplied when it runs. Randomizers are
// applied either to an existing graph with Randomize, or composed on a fresh
// graph with BuildLagGraph:
//
//	g, err := builder.BuildLagGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Factors(10),
//		builder.SimpleRandomizer(3, builder.Constant, 2, 20),
//	)
//
// Components:
//
//   - Factors(n): registers n factors named by the ID scheme (default G1..Gn).
//   - SimpleRandomizer(indegree, policy, mlag, percentHousekeeping): every factor
//     regulates itself at lag 1; every non-housekeeping factor additionally
//     receives extra parents at random lags in [1, mlag], how many set by Policy.
//   - PreviousStepOnly(indegree, policy, percentHousekeeping): SimpleRandomizer
//     with mlag fixed at 1.
//   - ID schemes (IDFn): GeneIDFn, SymbolIDFn, ExcelColumnIDFn.
//
// Guarantees:
//
//   - Determinism: equal graphs, parameters, seed and call order ⇒ equal edges.
//   - Termination: the extra-parent count is clamped to the number of free
//     (factor, lag) slots, so a randomizer never loops forever.
//   - Fast-fail on nonsense option values via panics in option constructors;
//     invalid randomizer parameters surface as sentinel errors.
package builder
