// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// api.go — BuildGraph and Apply, the two ways to run network constructors.
//
// Both resolve the BuilderOptions once, then run the constructors in call
// order against one graph. A constructor reads layers created by an earlier
// one (Skip after Layered), so order matters. The first failing constructor
// aborts the run; BuildGraph then drops the half-built graph, Apply leaves it
// to the caller.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/core"
)

// Constructor adds nodes, layers or connections to g using cfg for initial
// weights and biases. It reports invalid parameters through the package
// sentinels and must draw weights in a fixed order so seeded builds repeat.
type Constructor func(g *core.Graph, cfg builderConfig) error

// LayerSpec describes one layer of a layered topology.
type LayerSpec struct {
	// Size is the number of nodes in the layer (≥ 1).
	Size int
	// Activation is applied to every node of the layer.
	Activation activation.Kind
}

// BuildGraph returns a new network graph made by cons, e.g.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.Layered(specs...), builder.Skip(0, 2))
//
// Errors wrap the constructor's sentinel (ErrTooFewLayers, ErrTooFewVertices,
// ErrBadLayer, core errors) or ErrConstructFailed for a nil constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against an existing graph, for example to add skip links
// to a loaded model.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func run(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
