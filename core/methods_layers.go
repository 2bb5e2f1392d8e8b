// File: methods_layers.go
// Role: Construction-time groupings: layers, input IDs, output IDs.
// Determinism:
//   - All getters return copies in the order they were set.
// AI-HINT (file):
//   - Groupings are never consulted by traversal; they seed topology at build
//     time and drive serialization.

package core

import "fmt"

// AddLayer appends an ordered group of node IDs.
//
// Errors:
//   - ErrNodeNotFound if any ID is out of range.
func (g *Graph) AddLayer(ids []NodeID) error {
	if err := g.checkIDs("AddLayer", ids); err != nil {
		return err
	}
	g.layers = append(g.layers, append([]NodeID(nil), ids...))

	return nil
}

// Layers returns a copy of the layer groupings.
// Complexity: O(V).
func (g *Graph) Layers() [][]NodeID {
	out := make([][]NodeID, len(g.layers))
	for i, l := range g.layers {
		out[i] = append([]NodeID(nil), l...)
	}

	return out
}

// LayerCount returns the number of layer groupings.
func (g *Graph) LayerCount() int {
	return len(g.layers)
}

// SetInputs records the nodes that receive example features, in feature order.
func (g *Graph) SetInputs(ids []NodeID) error {
	if err := g.checkIDs("SetInputs", ids); err != nil {
		return err
	}
	g.inputs = append([]NodeID(nil), ids...)

	return nil
}

// Inputs returns a copy of the input node IDs.
func (g *Graph) Inputs() []NodeID {
	return append([]NodeID(nil), g.inputs...)
}

// SetOutputs records the nodes whose activations form a prediction.
func (g *Graph) SetOutputs(ids []NodeID) error {
	if err := g.checkIDs("SetOutputs", ids); err != nil {
		return err
	}
	g.outputs = append([]NodeID(nil), ids...)

	return nil
}

// Outputs returns a copy of the output node IDs.
func (g *Graph) Outputs() []NodeID {
	return append([]NodeID(nil), g.outputs...)
}

// checkIDs rejects any out-of-range ID with method context.
func (g *Graph) checkIDs(method string, ids []NodeID) error {
	for _, id := range ids {
		if !g.HasNode(id) {
			return fmt.Errorf("%s: id %d: %w", method, id, ErrNodeNotFound)
		}
	}

	return nil
}
