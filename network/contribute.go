// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// contribute.go — reverse gradient accumulation for one example.
//
// Contract:
//   • contributions[c] is the upstream error signal of node c: dOut for an
//     output, Σ w·g_child over outgoing connections otherwise.
//   • Processing c computes g_c = contributions[c]·f'(c.Post) and adds it to
//     c.Delta. For every incoming connection s→c it adds g_c·s.Post to the
//     connection's Delta and w·g_c to contributions[s].
//   • Weights and biases are never mutated here.
//
// Complexity:
//   • Time: O(V + E). Space: O(V) for the contribution map.

package network

import (
	"github.com/katalvlaran/lvnet/core"
)

// contribute distributes the log-loss signal of label y and prediction p
// backwards through the graph.
func (n *Network) contribute(y, p float64) error {
	dOut := n.outputSignal(y, p)
	for _, id := range n.graph.Outputs() {
		n.contributions[id] = dOut
	}

	return n.reverse()
}

// outputSignal returns -(y-p)/(p(1-p)) with p clamped into [eps, 1-eps]
// when clamping is enabled.
func (n *Network) outputSignal(y, p float64) float64 {
	p = n.clampOutput(p)

	return -(y - p) / (p * (1 - p))
}

// clampOutput limits p to [eps, 1-eps]; eps == 0 leaves p unchanged.
func (n *Network) clampOutput(p float64) float64 {
	eps := n.clamp
	switch {
	case eps == 0:
		return p
	case p < eps:
		return eps
	case p > 1-eps:
		return 1 - eps
	default:
		return p
	}
}

// visitContribute turns the signal of id into its local gradient and pushes
// it onto the incoming connections and their sources.
func (n *Network) visitContribute(id core.NodeID) {
	nodes := n.graph.Nodes()
	conns := n.graph.Connections()
	node := &nodes[id]

	g := n.contributions[id] * node.Derive()
	node.Delta += g
	for _, idx := range n.graph.Incoming(id) {
		c := &conns[idx]
		c.Delta += g * nodes[c.Source].Post
		n.contributions[c.Source] += c.Weight * g
	}
}
