// File: methods_nodes.go
// Role: Node arena lifecycle & queries.
//
// Determinism:
//   - NodeIDs are assigned sequentially; Grow never reorders existing nodes.
//
// AI-Hints (file):
//   - Nodes() is the live arena; index it by NodeID in hot loops instead of
//     calling Node(id) per access.
//   - Nodes are never removed: network topology is fixed once built.
package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/activation"
)

// Grow appends n identity nodes with zero bias and returns their IDs.
//
// Errors:
//   - ErrBadSize: if n < 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func (g *Graph) Grow(n int) ([]NodeID, error) {
	if n < 0 {
		return nil, fmt.Errorf("Grow(%d): %w", n, ErrBadSize)
	}

	return g.grow(n), nil
}

// grow extends both arenas' per-node structures in lockstep.
func (g *Graph) grow(n int) []NodeID {
	ids := make([]NodeID, n)
	base := len(g.nodes)
	for i := 0; i < n; i++ {
		g.nodes = append(g.nodes, Node{})
		g.out = append(g.out, nil) // lazily allocated on first outgoing edge
		g.in = append(g.in, nil)
		ids[i] = NodeID(base + i)
	}
	if n > 0 {
		g.version++
	}

	return ids
}

// NodeCount returns the size of the node arena.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// HasNode reports whether id addresses an existing node.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a pointer to the live record of id.
//
// Errors:
//   - ErrNodeNotFound: if id is out of range.
//
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return &g.nodes[id], nil
}

// SetNode assigns the activation kind and bias of id.
// Transient values and Delta are left as they are.
//
// Errors:
//   - ErrNodeNotFound: if id is out of range.
//   - ErrBadWeight: if bias is NaN or ±Inf.
func (g *Graph) SetNode(id NodeID, kind activation.Kind, bias float64) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	if math.IsNaN(bias) || math.IsInf(bias, 0) {
		return fmt.Errorf("SetNode(%d): bias %v: %w", id, bias, ErrBadWeight)
	}
	n.Activation = kind
	n.Bias = bias

	return nil
}

// Nodes returns the live node arena, indexed by NodeID.
// Callers may mutate records in place but must not append or reslice.
// Complexity: O(1).
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// ResetNodes clears Pre/Post of every node.
// Complexity: O(V).
func (g *Graph) ResetNodes() {
	for i := range g.nodes {
		g.nodes[i].Reset()
	}
}
