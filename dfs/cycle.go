// Package dfs implements cycle discovery for network graphs.
// FindCycle reports one directed cycle, rotated so that its smallest NodeID
// comes first, which is enough to name the offending loop in an error.
//
// Complexity:
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
package dfs

import (
	"github.com/katalvlaran/lvnet/core"
)

// FindCycle returns the first directed cycle found by a DFS that starts from
// nodes in ascending ID order, or nil if g is acyclic.
// A self-loop u→u is reported as [u].
func FindCycle(g *core.Graph) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	state := make([]int, n)
	path := make([]core.NodeID, 0, n)

	var visit func(id core.NodeID) []core.NodeID
	visit = func(id core.NodeID) []core.NodeID {
		state[id] = Gray
		path = append(path, id)
		for _, next := range g.Successors(id) {
			switch state[next] {
			case Gray:
				// back-edge: the cycle is the path suffix starting at next
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == next {
						return canonical(path[i:])
					}
				}
			case White:
				if c := visit(next); c != nil {
					return c
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == White {
			if c := visit(core.NodeID(v)); c != nil {
				return c, nil
			}
		}
	}

	return nil, nil
}

// canonical returns a copy of cycle rotated to start at its minimum ID.
func canonical(cycle []core.NodeID) []core.NodeID {
	k := 0
	for i, id := range cycle {
		if id < cycle[k] {
			k = i
		}
	}
	out := make([]core.NodeID, 0, len(cycle))
	out = append(out, cycle[k:]...)

	return append(out, cycle[:k]...)
}
