// Package bfs provides tunable options and error definitions
// for breadth-first (frontier) walks over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Sentinel errors for walk execution.
var (
	// ErrSeedNotFound is returned when a seed ID is outside the node arena.
	ErrSeedNotFound = errors.New("bfs: seed node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which adjacency index the walk follows.
type Direction int

const (
	// Forward follows edges source→dest (successors).
	Forward Direction = iota
	// Reverse follows edges dest→source (predecessors).
	Reverse
)

// String returns "forward" or "reverse".
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}

	return "forward"
}

// Option configures walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Direction selects successors (Forward) or predecessors (Reverse).
	Direction Direction

	// OnEnqueue is called when a node is first enqueued.
	// Receives node ID and its depth from the nearest seed.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when a node is dequeued, before its neighbors are
	// enqueued. If it returns an error, the walk aborts and propagates it.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Forward direction
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Direction: Forward,
		OnEnqueue: func(core.NodeID, int) {},
		OnVisit:   func(core.NodeID, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithDirection selects the adjacency index to follow.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		switch d {
		case Forward, Reverse:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in edges) from the nearest seed.
type Result struct {
	Order []core.NodeID
	Depth map[core.NodeID]int
}
