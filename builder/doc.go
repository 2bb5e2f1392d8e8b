// Package builder provides reusable “functional-options”-style building blocks
// for constructing network graphs: layered topologies, skip connections and
// the random initial weights they carry.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        create a core.Graph and apply constructors in order.
//     – Constructor:       a deterministic graph mutation given builderConfig.
//   - Topology constructors:
//     – Layered:           sequential node IDs per layer, full bipartite edges
//     between consecutive layers, inputs = first layer, outputs = last.
//     – Skip:              full bipartite edges between two non-adjacent layers.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and initial bias.
//   - Initial weight distributions (WeightFn, given the layer-pair Fan):
//     – StandardNormalWeightFn: N(0,1), the default initializer.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[lo,hi).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev).
//     – XavierWeightFn:    U[-√(6/(in+out)), √(6/(in+out))).
//     – HeWeightFn:        N(0, 2/in).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels for invalid build parameters.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
