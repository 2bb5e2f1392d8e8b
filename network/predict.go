// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// predict.go — forward propagation.
//
// Contract:
//   • Pre/Post of every node are reset, then input Post values are seeded
//     from the features in InputNodeIDs order.
//   • A reached non-input node accumulates Σ w·src.Post over all incoming
//     connections, then adds its bias and applies its activation.
//   • Input nodes are never activated.
//   • Evaluation mode flushes before returning. Training mode bumps the batch
//     size, clears the contribution map and runs the reverse pass on out[0].
//
// Complexity:
//   • Time: O(V + E) per call (plus one O(V + E log d) sort per structural change).
//   • Space: O(V).

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/dataset"
)

const methodPredict = "Predict"

// Predict runs one example forward and returns the output values in
// OutputNodeIDs order. In training mode it also accumulates the example's
// gradients against ex.Label.
//
// Errors: ErrDimensionMismatch, ErrNoOutputs, or dfs.ErrCycleDetected when
// topological traversal meets a cycle. On error the transient node state is
// reset and the batch is left as it was.
func (n *Network) Predict(ex dataset.Example) ([]float64, error) {
	inputs, outputs := n.graph.Inputs(), n.graph.Outputs()
	if len(ex.Features) != len(inputs) {
		return nil, fmt.Errorf("%s: %d features for %d inputs: %w",
			methodPredict, len(ex.Features), len(inputs), ErrDimensionMismatch)
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodPredict, ErrNoOutputs)
	}

	// 1. Reset and seed.
	n.graph.ResetNodes()
	nodes := n.graph.Nodes()
	for i, id := range inputs {
		nodes[id].Post = ex.Features[i]
	}

	// 2. Propagate.
	if err := n.forward(n.inputMask()); err != nil {
		n.graph.ResetNodes()
		return nil, fmt.Errorf("%s: %w", methodPredict, err)
	}

	// 3. Collect.
	out := make([]float64, len(outputs))
	for i, id := range outputs {
		out[i] = nodes[id].Post
	}

	// 4. Mode side effects.
	if n.evaluating {
		n.Flush()
		return out, nil
	}
	if err := n.accumulate(ex.Label, out[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPredict, err)
	}

	return out, nil
}

// accumulate runs the reverse pass for one training example and counts it in
// the batch only when the pass succeeds. On failure the node state is reset
// and the batch is left as it was.
func (n *Network) accumulate(y, p float64) error {
	clear(n.contributions)
	if err := n.contribute(y, p); err != nil {
		clear(n.contributions)
		n.graph.ResetNodes()
		return err
	}
	n.batchSize++

	return nil
}

// visitPredict sums the weighted incoming activations of id and activates it.
func (n *Network) visitPredict(id core.NodeID) {
	nodes := n.graph.Nodes()
	conns := n.graph.Connections()
	node := &nodes[id]
	for _, idx := range n.graph.Incoming(id) {
		c := &conns[idx]
		node.Pre += c.Weight * nodes[c.Source].Post
	}
	node.Activate()
}
