// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// network.go — construction, accessors and the mode/reset primitives.
//
// Contract:
//   • Eval/Train toggle the mode flag only.
//   • Flush resets Pre/Post of every node, clears the contribution map and the
//     batch size. Weights, biases and gradient accumulators are untouched.

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// New wraps g in a Network in training mode with DefaultLearningRate,
// Topological traversal and DefaultOutputClamp, then applies opts.
// The graph is shared, not copied.
func New(g *core.Graph, opts ...Option) (*Network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := &Network{
		graph:         g,
		contributions: make(map[core.NodeID]float64),
		learningRate:  DefaultLearningRate,
		traversal:     Topological,
		clamp:         DefaultOutputClamp,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// Graph returns the underlying graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// Eval switches to evaluation mode.
func (n *Network) Eval() { n.evaluating = true }

// Train switches to training mode.
func (n *Network) Train() { n.evaluating = false }

// Evaluating reports whether the network is in evaluation mode.
func (n *Network) Evaluating() bool { return n.evaluating }

// LearningRate returns the Update step size.
func (n *Network) LearningRate() float64 { return n.learningRate }

// SetLearningRate replaces the Update step size. The rate is left unchanged
// and ErrBadLearningRate returned when lr is negative or not finite.
func (n *Network) SetLearningRate(lr float64) error {
	if !validLearningRate(lr) {
		return fmt.Errorf("SetLearningRate(%g): %w", lr, ErrBadLearningRate)
	}
	n.learningRate = lr

	return nil
}

// BatchSize returns the number of examples contributed since the last reset.
func (n *Network) BatchSize() int { return n.batchSize }

// Traversal returns the active scheduling mode.
func (n *Network) Traversal() TraversalOrder { return n.traversal }

// InputNodeIDs returns the input node IDs in feature order.
func (n *Network) InputNodeIDs() []core.NodeID { return n.graph.Inputs() }

// SetInputNodeIDs replaces the input node IDs.
func (n *Network) SetInputNodeIDs(ids []core.NodeID) error {
	if err := n.graph.SetInputs(ids); err != nil {
		return fmt.Errorf("SetInputNodeIDs: %w", err)
	}

	return nil
}

// OutputNodeIDs returns the output node IDs in prediction order.
func (n *Network) OutputNodeIDs() []core.NodeID { return n.graph.Outputs() }

// SetOutputNodeIDs replaces the output node IDs.
func (n *Network) SetOutputNodeIDs(ids []core.NodeID) error {
	if err := n.graph.SetOutputs(ids); err != nil {
		return fmt.Errorf("SetOutputNodeIDs: %w", err)
	}

	return nil
}

// Flush resets transient node values, the contribution map and the batch size.
// Complexity: O(V).
func (n *Network) Flush() {
	n.graph.ResetNodes()
	clear(n.contributions)
	n.batchSize = 0
}
