// File: methods_connections.go
// Role: Connection lifecycle & queries: SetConnection/Connection/HasConnection,
//       ConnectionAt, forward and reverse adjacency views, ordered enumeration.
// Determinism:
//   - Edges() is sorted by (Source asc, Dest asc).
//   - Outgoing()/Successors() are sorted by Dest asc.
//   - Incoming() preserves insertion order.
// AI-HINT (file):
//   - SetConnection on an existing (u,v) overwrites the weight and keeps the
//     edge index; it never creates a parallel edge.
//   - Incoming(v) is the reverse adjacency index; it replaces any scan over
//     all sources looking for edges into v.

package core

import (
	"fmt"
	"math"
	"sort"
)

// SetConnection creates u→v with weight w, or overwrites the weight of the
// existing u→v edge. It returns the edge index.
//
// Steps:
//  1. Validate endpoints, loop policy and weight.
//  2. Existing edge: assign weight, return its index (no structural change).
//  3. New edge: append to the edge arena, register in out[u] and in[v],
//     bump the structural version.
//
// Errors:
//   - ErrNodeNotFound, ErrLoopNotAllowed, ErrBadWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) SetConnection(u, v NodeID, w float64) (int, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return -1, fmt.Errorf("SetConnection(%d→%d): %w", u, v, ErrNodeNotFound)
	}
	if u == v && !g.allowLoops {
		return -1, fmt.Errorf("SetConnection(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return -1, fmt.Errorf("SetConnection(%d→%d): weight %v: %w", u, v, w, ErrBadWeight)
	}

	if idx, ok := g.out[u][v]; ok {
		g.edges[idx].Weight = w
		return idx, nil
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Connection{Source: u, Dest: v, Weight: w})
	if g.out[u] == nil {
		g.out[u] = make(map[NodeID]int)
	}
	g.out[u][v] = idx
	g.in[v] = append(g.in[v], idx)
	g.version++

	return idx, nil
}

// HasConnection reports whether u→v exists.
// Complexity: O(1).
func (g *Graph) HasConnection(u, v NodeID) bool {
	if !g.HasNode(u) {
		return false
	}
	_, ok := g.out[u][v]

	return ok
}

// Connection returns the live record of u→v.
//
// Errors:
//   - ErrConnectionNotFound if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) Connection(u, v NodeID) (*Connection, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("Connection(%d→%d): %w", u, v, ErrNodeNotFound)
	}
	idx, ok := g.out[u][v]
	if !ok {
		return nil, fmt.Errorf("Connection(%d→%d): %w", u, v, ErrConnectionNotFound)
	}

	return &g.edges[idx], nil
}

// ConnectionAt returns the live record at edge index idx.
func (g *Graph) ConnectionAt(idx int) (*Connection, error) {
	if idx < 0 || idx >= len(g.edges) {
		return nil, fmt.Errorf("ConnectionAt(%d): %w", idx, ErrConnectionNotFound)
	}

	return &g.edges[idx], nil
}

// Connections returns the live edge arena, indexed by edge index.
// Callers may mutate records in place but must not append or reslice.
// Complexity: O(1).
func (g *Graph) Connections() []Connection {
	return g.edges
}

// EdgeCount returns the number of connections.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Incoming returns the indices of edges ending at v, in insertion order.
// The slice is live; do not modify it. Unknown v yields nil.
// Complexity: O(1).
func (g *Graph) Incoming(v NodeID) []int {
	if !g.HasNode(v) {
		return nil
	}

	return g.in[v]
}

// Outgoing returns the indices of edges leaving u, sorted by destination.
// Complexity: O(d log d).
func (g *Graph) Outgoing(u NodeID) []int {
	if !g.HasNode(u) || len(g.out[u]) == 0 {
		return nil
	}
	out := make([]int, 0, len(g.out[u]))
	for _, idx := range g.out[u] {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return g.edges[out[i]].Dest < g.edges[out[j]].Dest })

	return out
}

// Successors returns the destinations of u's outgoing edges, ascending.
// Complexity: O(d log d).
func (g *Graph) Successors(u NodeID) []NodeID {
	idxs := g.Outgoing(u)
	ids := make([]NodeID, len(idxs))
	for i, idx := range idxs {
		ids[i] = g.edges[idx].Dest
	}

	return ids
}

// Predecessors returns the sources of v's incoming edges, in insertion order.
// Complexity: O(in-degree).
func (g *Graph) Predecessors(v NodeID) []NodeID {
	idxs := g.Incoming(v)
	ids := make([]NodeID, len(idxs))
	for i, idx := range idxs {
		ids[i] = g.edges[idx].Source
	}

	return ids
}

// Edges returns every edge index ordered by (Source asc, Dest asc).
// Complexity: O(E log E).
func (g *Graph) Edges() []int {
	out := make([]int, len(g.edges))
	for i := range out {
		out[i] = i
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := g.edges[out[i]], g.edges[out[j]]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Dest < b.Dest
	})

	return out
}

// ResetDeltas zeroes every node and edge gradient accumulator.
// Complexity: O(V + E).
func (g *Graph) ResetDeltas() {
	for i := range g.nodes {
		g.nodes[i].Delta = 0
	}
	for i := range g.edges {
		g.edges[i].Delta = 0
	}
}

// Version returns the structural version: it changes whenever nodes or
// edges are added, and never on weight/bias/state updates.
func (g *Graph) Version() uint64 {
	return g.version
}
