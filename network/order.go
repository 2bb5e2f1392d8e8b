// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// order.go — traversal scheduling shared by the forward and reverse passes.
//
// Determinism:
//   • Topological order comes from dfs.TopologicalSort (roots ascending,
//     successors ascending) and is reused until the graph's structural version
//     changes.
//   • Frontier seeds are enqueued in input order, successors ascending.

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/dfs"
)

// topoOrder returns the cached topological order, recomputing it after any
// structural change. The returned slice must not be modified.
func (n *Network) topoOrder() ([]core.NodeID, error) {
	v := n.graph.Version()
	if n.orderValid && n.orderVersion == v {
		return n.order, nil
	}
	order, err := dfs.TopologicalSort(n.graph)
	if err != nil {
		n.orderValid = false
		if cycle, cerr := dfs.FindCycle(n.graph); cerr == nil && len(cycle) > 0 {
			return nil, fmt.Errorf("network: cycle %v: %w", cycle, err)
		}
		return nil, err
	}
	n.order, n.orderVersion, n.orderValid = order, v, true

	return order, nil
}

// inputMask marks the input nodes of the graph.
func (n *Network) inputMask() []bool {
	mask := make([]bool, n.graph.NodeCount())
	for _, id := range n.graph.Inputs() {
		mask[id] = true
	}

	return mask
}

// forward activates every non-input node reachable from an input.
func (n *Network) forward(isInput []bool) error {
	switch n.traversal {
	case Frontier:
		return n.forwardFrontier(isInput)
	default:
		return n.forwardTopological(isInput)
	}
}

// forwardTopological activates nodes in topological order, skipping nodes with
// no reached predecessor.
func (n *Network) forwardTopological(isInput []bool) error {
	order, err := n.topoOrder()
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	conns := n.graph.Connections()
	reached := make([]bool, len(isInput))
	copy(reached, isInput)

	for _, id := range order {
		if isInput[id] {
			continue
		}
		for _, idx := range n.graph.Incoming(id) {
			if reached[conns[idx].Source] {
				reached[id] = true
				break
			}
		}
		if reached[id] {
			n.visitPredict(id)
		}
	}

	return nil
}

// forwardFrontier activates nodes on first dequeue of a walk seeded with the
// successors of the inputs.
func (n *Network) forwardFrontier(isInput []bool) error {
	var seeds []core.NodeID
	for _, id := range n.graph.Inputs() {
		seeds = append(seeds, n.graph.Successors(id)...)
	}
	_, err := bfs.Walk(n.graph, seeds, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if !isInput[id] {
			n.visitPredict(id)
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}

	return nil
}

// reverse processes every node that carries an error signal, outputs first.
func (n *Network) reverse() error {
	switch n.traversal {
	case Frontier:
		return n.reverseFrontier()
	default:
		return n.reverseTopological()
	}
}

// reverseTopological walks the topological order backwards so that a node is
// processed only after all of its successors have added their signal.
func (n *Network) reverseTopological() error {
	order, err := n.topoOrder()
	if err != nil {
		return fmt.Errorf("contribute: %w", err)
	}
	for i := len(order) - 1; i >= 0; i-- {
		if _, ok := n.contributions[order[i]]; ok {
			n.visitContribute(order[i])
		}
	}

	return nil
}

// reverseFrontier processes nodes on first dequeue of a reverse walk seeded
// with the outputs.
func (n *Network) reverseFrontier() error {
	_, err := bfs.Walk(n.graph, n.graph.Outputs(),
		bfs.WithDirection(bfs.Reverse),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			n.visitContribute(id)
			return nil
		}))
	if err != nil {
		return fmt.Errorf("contribute: %w", err)
	}

	return nil
}
