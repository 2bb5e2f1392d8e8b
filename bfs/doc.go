// Package bfs provides the frontier walk used by the propagation engine's
// worklist traversal mode.
//
// What
//
//   - Explore nodes in non-decreasing distance from a set of seeds.
//   - Forward walks follow successors (source→dest); Reverse walks follow
//     predecessors through the graph's reverse adjacency index.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from the nearest seed
//   - Supports functional hooks:
//   - OnEnqueue (when a node is first enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Ordering caveat
//
//	A node is visited once, on first dequeue. In a graph whose nodes sit at
//	mixed depths (skip connections), a node can be visited before all of its
//	predecessors (Forward) or successors (Reverse) have been visited. On
//	strictly layered graphs the frontier order coincides with layer order.
//	Use dfs.TopologicalSort when completeness is required.
//
// Determinism
//
//	Forward neighbors come from core.Successors (ascending NodeID); Reverse
//	neighbors from core.Predecessors (edge insertion order). The visit
//	sequence is fully reproducible for a given graph.
//
// Complexity (V = |Nodes|, E = |Connections|)
//
//   - Time:   O(V + E log d)  (successor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, outputs,
//	    bfs.WithDirection(bfs.Reverse),
//	    bfs.WithOnVisit(func(id core.NodeID, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrSeedNotFound     if any seed is out of range.
//   - ErrOptionViolation  if invalid Option (negative MaxDepth, unknown Direction).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
