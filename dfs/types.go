// Package dfs defines the shared state and errors for depth-first algorithms
// over a core.Graph: topological ordering and cycle discovery.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
