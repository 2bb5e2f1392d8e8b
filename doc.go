// Package lvnet is a small neural-network runtime built directly on a
// directed graph: nodes carry activation state and bias, connections carry
// weight, and both carry per-batch gradient accumulators.
//
// 🚀 What is lvnet?
//
//	A pure-Go, single-threaded engine that brings together:
//		• Graph substrate: node and edge arenas with forward and reverse adjacency
//		• Traversals: breadth-first walk (BFS), topological sort and cycle search (DFS)
//		• Construction: layered topologies, skip connections, seeded initial weights
//		• Propagation: Predict, reverse gradient accumulation, batched Update, Flush
//		• I/O: a plain-text model format and a labeled-example loader
//
// ✨ Why choose lvnet?
//
//   - Readable – every pass is a plain loop over indices, no autodiff tape
//   - Exact – the default topological schedule is correct on any DAG, skip
//     connections included
//   - Deterministic – seeded weights, sorted adjacency, cached orders
//   - Extensible – add activation kinds or graph constructors in one place
//
// Under the hood, everything is organized under these subpackages:
//
//	activation/ — closed set of activation functions and their derivatives
//	core/       — Graph, Node, Connection and the arenas behind them
//	bfs/        — multi-seed breadth-first walk, forward or reverse
//	dfs/        — topological sort and cycle detection
//	builder/    — functional-option constructors (Layered, Skip) and weight policies
//	network/    — the propagation engine: Predict, Update, Flush, Assess, Fit
//	model/      — Load/Save of the text model format
//	dataset/    — labeled example loader
//	cmd/lvnet/  — command-line train / test / save
//
// Quick ASCII example (2-2-1):
//
//	    x0 ──┬── h2 ──┐
//	         ╳        ├── y4
//	    x1 ──┴── h3 ──┘
//
//	two identity inputs, two sigmoid hidden nodes, one sigmoid output.
//
//	go get github.com/katalvlaran/lvnet
package lvnet
