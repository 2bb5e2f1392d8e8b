// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// update.go — batched gradient-descent step.

package network

// Update applies one gradient-descent step with the gradients accumulated
// since the last reset, averaged over the batch, and then flushes.
//
// Non-input biases move by -lr·Delta/batch; every connection weight moves by
// -lr·Delta/batch. Every node and connection Delta ends at zero.
// Returns false, without touching any state, when the batch is empty.
// Complexity: O(V + E).
func (n *Network) Update() bool {
	if n.batchSize == 0 {
		return false
	}
	lr, batch := n.learningRate, float64(n.batchSize)
	isInput := n.inputMask()

	nodes := n.graph.Nodes()
	for i := range nodes {
		if !isInput[i] {
			nodes[i].Bias -= lr * (nodes[i].Delta / batch)
		}
		nodes[i].Delta = 0
	}
	conns := n.graph.Connections()
	for i := range conns {
		conns[i].Weight -= lr * (conns[i].Delta / batch)
		conns[i].Delta = 0
	}

	n.Flush()

	return true
}
