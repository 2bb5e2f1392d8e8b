// Package network implements the propagation engine of lvnet: forward
// inference, reverse gradient accumulation and batched gradient descent over a
// core.Graph whose connections form a DAG.
//
// A Network wraps one graph and owns the batch state around it:
//
//   - evaluating: in evaluation mode Predict leaves no residue; in training
//     mode every Predict also runs the reverse pass and bumps the batch size.
//   - batch size: examples contributed since the last Update or Flush.
//   - contributions: per-node upstream error signal of the current reverse pass.
//   - learning rate: step size of Update (default 0.1).
//
// Core Methods:
//
//	Predict(ex dataset.Example) ([]float64, error) // forward (+ reverse in training mode)
//	Update() bool                                   // apply averaged gradients, then Flush
//	Flush()                                         // reset transient state and batch size
//	Eval() / Train() / Evaluating()                 // mode flag
//	Assess(examples) (float64, error)               // accuracy in evaluation mode
//	Fit(examples, batchSize, epochs) (int, error)   // mini-batch training loop
//
// Traversal:
//
// Topological (default) processes a node only after every predecessor
// (forward) or every successor (reverse) has been processed. The order comes
// from dfs.TopologicalSort and is cached until the graph's structural version
// changes. Frontier reproduces the worklist walk via bfs.Walk: a node is
// processed when first dequeued, which is exact on layered graphs but may see
// partial inputs when one node has neighbors at different depths.
//
// Loss:
//
// The output-side derivative is the log-loss shape dOut = -(y-p)/(p(1-p)) of a
// single scalar output. p is clamped into [eps, 1-eps] (eps = 1e-12 by
// default) so that saturated outputs stay finite; WithOutputClamp(0) restores
// the unguarded division.
//
// A Network is not safe for concurrent use.
package network
