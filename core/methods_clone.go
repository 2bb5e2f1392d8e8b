// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves NodeIDs, edge indices, Incoming() order and version.
// AI-HINT (file):
//   - Clone copies parameters AND transient/gradient state; call ResetNodes
//     and ResetDeltas on the clone for a clean copy.

package core

// Clone returns a deep copy of the Graph: flags, arenas, adjacency and groupings.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowLoops: g.allowLoops,
		nodes:      append([]Node(nil), g.nodes...),
		edges:      append([]Connection(nil), g.edges...),
		out:        make([]map[NodeID]int, len(g.out)),
		in:         make([][]int, len(g.in)),
		layers:     g.Layers(),
		inputs:     g.Inputs(),
		outputs:    g.Outputs(),
		version:    g.version,
	}
	for u, m := range g.out {
		if m == nil {
			continue
		}
		cm := make(map[NodeID]int, len(m))
		for v, idx := range m {
			cm[v] = idx
		}
		clone.out[u] = cm
	}
	for v, idxs := range g.in {
		clone.in[v] = append([]int(nil), idxs...)
	}

	return clone
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
