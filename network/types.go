// SPDX-License-Identifier: MIT
// Package: lvnet/network
//
// types.go — Network state, traversal modes and sentinel errors.

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Sentinel errors for engine operations.
var (
	// ErrGraphNil is returned when New is given a nil graph.
	ErrGraphNil = errors.New("network: graph is nil")

	// ErrDimensionMismatch indicates a feature vector whose length differs
	// from the number of input nodes.
	ErrDimensionMismatch = errors.New("network: feature count does not match input nodes")

	// ErrNoOutputs indicates a prediction on a graph without output nodes.
	ErrNoOutputs = errors.New("network: no output nodes")

	// ErrEmptyDataset indicates an accuracy request over zero examples.
	ErrEmptyDataset = errors.New("network: empty dataset")

	// ErrBadBatchSize indicates a training batch size below one.
	ErrBadBatchSize = errors.New("network: batch size must be positive")

	// ErrUnknownTraversal indicates a traversal name ParseTraversal does not know.
	ErrUnknownTraversal = errors.New("network: unknown traversal order")

	// ErrBadLearningRate indicates a negative or non-finite learning rate.
	ErrBadLearningRate = errors.New("network: learning rate must be finite and non-negative")
)

// Defaults applied by New.
const (
	// DefaultLearningRate is the step size of Update.
	DefaultLearningRate = 0.1

	// DefaultOutputClamp keeps p inside [eps, 1-eps] in the loss derivative.
	DefaultOutputClamp = 1e-12
)

// TraversalOrder selects how forward and reverse passes schedule nodes.
type TraversalOrder uint8

const (
	// Topological processes each node after all of its dependencies.
	Topological TraversalOrder = iota
	// Frontier processes each node on first dequeue of a breadth-first walk.
	Frontier
)

// String returns the lower-case name used by the CLI.
func (t TraversalOrder) String() string {
	switch t {
	case Topological:
		return "topological"
	case Frontier:
		return "frontier"
	default:
		return fmt.Sprintf("TraversalOrder(%d)", uint8(t))
	}
}

// ParseTraversal maps "topological" or "frontier" to its TraversalOrder.
func ParseTraversal(s string) (TraversalOrder, error) {
	switch s {
	case "topological", "topo":
		return Topological, nil
	case "frontier", "bfs":
		return Frontier, nil
	default:
		return 0, fmt.Errorf("ParseTraversal: %q: %w", s, ErrUnknownTraversal)
	}
}

// Network is the propagation engine over one graph.
type Network struct {
	graph *core.Graph

	// Batch/training state
	evaluating    bool
	batchSize     int
	contributions map[core.NodeID]float64

	// Hyper-parameters
	learningRate float64
	traversal    TraversalOrder
	clamp        float64

	// Cached topological order, valid while orderVersion == graph.Version()
	order        []core.NodeID
	orderVersion uint64
	orderValid   bool
}
