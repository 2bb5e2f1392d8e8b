// Package core defines the Node, Connection and Graph types, sentinel errors,
// graph options and the NewGraph constructor.
package core

import (
	"errors"

	"github.com/katalvlaran/lvnet/activation"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a NodeID outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrConnectionNotFound indicates an operation referenced a non-existent connection.
	ErrConnectionNotFound = errors.New("core: connection not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite weight or bias.
	ErrBadWeight = errors.New("core: weight is not finite")

	// ErrBadSize indicates a negative node count.
	ErrBadSize = errors.New("core: invalid size")
)

// NodeID identifies a node by its index in the node arena.
type NodeID int

// Node is the per-node record of the network.
//
// Bias is a learned parameter. Pre and Post are transient and valid only
// during one forward pass. Delta accumulates the bias gradient across the
// examples of the current batch.
type Node struct {
	// Activation selects the activation function family.
	Activation activation.Kind

	// Bias is added to Pre before activation.
	Bias float64

	// Pre is the weighted sum of incoming activations (plus Bias after Activate).
	Pre float64

	// Post is the activation output.
	Post float64

	// Delta is the accumulated bias gradient.
	Delta float64
}

// Activate adds the bias to Pre and stores f(Pre) in Post.
func (n *Node) Activate() {
	n.Pre += n.Bias
	n.Post = activation.Activate(n.Activation, n.Pre)
}

// Derive returns the activation derivative at the current Post value.
func (n *Node) Derive() float64 {
	return activation.Derive(n.Activation, n.Post)
}

// Reset clears the transient Pre/Post values. Bias and Delta are untouched.
func (n *Node) Reset() {
	n.Pre = 0
	n.Post = 0
}

// Connection is a directed, weighted edge Source→Dest.
type Connection struct {
	// Source is the origin node.
	Source NodeID

	// Dest is the target node.
	Dest NodeID

	// Weight scales Source.Post into Dest.Pre.
	Weight float64

	// Delta is the accumulated weight gradient.
	Delta float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (a loop makes the graph cyclic).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNodes pre-allocates n identity nodes with zero bias.
// Panics if n < 0.
func WithNodes(n int) GraphOption {
	if n < 0 {
		panic("core: WithNodes(n<0)")
	}
	return func(g *Graph) { g.grow(n) }
}

// Graph is the arena-backed directed graph of a network.
//
// out[u][v] is the edge index of u→v; in[v] lists incoming edge indices in
// insertion order. version increments on every structural change so that
// callers can cache derived orders.
type Graph struct {
	// Configuration flags
	allowLoops bool

	// Arenas
	nodes []Node
	edges []Connection

	// Adjacency (indices into edges)
	out []map[NodeID]int
	in  [][]int

	// Construction-time groupings
	layers  [][]NodeID
	inputs  []NodeID
	outputs []NodeID

	version uint64
}

// NewGraph creates a Graph with the given options. Without WithNodes the
// graph starts empty; use Grow to add nodes.
// Complexity: O(n) for n pre-allocated nodes.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
