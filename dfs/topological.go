// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every connection u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E log d) (each node and edge visited once; successors sorted)
//   - Memory: O(V)           (recursion stack and state slice)
package dfs

import (
	"github.com/katalvlaran/lvnet/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph   // the graph being sorted
	state []int         // visitation state: 0=White,1=Gray,2=Black
	order []core.NodeID // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// Roots are explored in ascending NodeID order, so the result is deterministic.
func TopologicalSort(g *core.Graph) ([]core.NodeID, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		state: make([]int, n),            // all nodes start as White (0)
		order: make([]core.NodeID, 0, n), // capacity hint for post-order
	}
	// 3. Drive DFS from every unvisited node
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(core.NodeID(v)); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id core.NodeID) error {
	// 1. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 2. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 4. Explore each outgoing connection
	for _, next := range t.graph.Successors(id) {
		if err := t.visit(next); err != nil {
			return err
		}
	}

	// 5. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
