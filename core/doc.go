// Package core provides the graph substrate of a neural network: a dense node
// arena, an edge arena, and two adjacency indexes over it.
//
// The Graph G = (V,E) is always directed:
//
//   - Nodes are addressed by a small integer NodeID (0..NodeCount()-1) and live
//     in one contiguous slice; they carry activation kind, bias, transient
//     pre-/post-activation values and a bias-gradient accumulator (Delta).
//   - Connections are addressed by their index in the edge arena; they carry
//     source, destination, weight and a weight-gradient accumulator (Delta).
//   - Forward adjacency maps each source to {destination → edge index},
//     giving O(1) lookup by endpoint pair and at most one edge per (u,v).
//   - Reverse adjacency maps each destination to its incoming edge indices,
//     giving O(in-degree) predecessor scans for the propagation engine.
//   - Layers, input IDs and output IDs are construction-time groupings; the
//     graph stores them but never consults them for traversal.
//
// Adjacency stores indices, never pointers, so the arenas can grow without
// invalidating any index held elsewhere.
//
// Core Methods:
//
//	// Nodes
//	Grow(n int) ([]NodeID, error)                        // O(n)
//	Node(id NodeID) (*Node, error)                       // O(1)
//	SetNode(id NodeID, kind activation.Kind, bias float64) error
//	Nodes() []Node                                       // live arena
//
//	// Connections
//	SetConnection(u, v NodeID, w float64) (int, error)   // O(1) amortized
//	Connection(u, v NodeID) (*Connection, error)         // O(1)
//	Incoming(v NodeID) []int                             // O(1), live
//	Outgoing(u NodeID) []int                             // O(d log d), sorted by dest
//	Edges() []int                                        // O(E log E), sorted by (source,dest)
//
//	// Groupings
//	AddLayer / Layers / SetInputs / Inputs / SetOutputs / Outputs
//
// Concurrency:
//
//	A Graph is owned by a single network instance and is not safe for
//	concurrent use. Callers serialize access.
//
// Errors:
//
//	ErrNodeNotFound       – NodeID outside 0..NodeCount()-1
//	ErrConnectionNotFound – no edge for the requested (u,v) or index
//	ErrLoopNotAllowed     – self-loop when loops are disabled
//	ErrBadWeight          – NaN or ±Inf weight
//	ErrBadSize            – negative growth
package core
