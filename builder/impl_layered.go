// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_layered.go — implementation of the Layered(specs...) constructor.
//
// Contract:
//   • len(specs) ≥ 2 (else ErrTooFewLayers); every Size ≥ 1 (else ErrTooFewVertices).
//   • Node IDs are assigned sequentially in layer order, continuing after any
//     nodes already present in g.
//   • Every node gets its layer's activation; non-input nodes get cfg.bias,
//     input nodes bias 0.
//   • Emits every cross-pair prev_i → cur_j for consecutive layers.
//   • Weight policy: cfg.weight(Fan{|prev|, |cur|}) per edge, in emission order.
//   • Inputs = first layer, outputs = last layer.
//
// Complexity:
//   • Time: O(V) nodes + O(Σ n_k·n_{k+1}) edges.
//   • Space: O(max n_k) for the previous layer's IDs.
//
// Determinism:
//   • Deterministic edge emission order: layer asc, i asc over prev, j asc over cur.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// File-local constants for method tag and minima (no magic numbers).
const (
	methodLayered = "Layered"
	minLayers     = 2
	minLayerSize  = 1
)

// Layered returns a Constructor for a fully connected feed-forward topology.
func Layered(specs ...LayerSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(specs) < minLayers {
			return fmt.Errorf("%s: %d layers (must be ≥ %d): %w", methodLayered, len(specs), minLayers, ErrTooFewLayers)
		}
		for k, s := range specs {
			if s.Size < minLayerSize {
				return fmt.Errorf("%s: layer %d size %d (must be ≥ %d): %w",
					methodLayered, k, s.Size, minLayerSize, ErrTooFewVertices)
			}
		}

		var first, prev []core.NodeID
		for k, s := range specs {
			cur, err := g.Grow(s.Size)
			if err != nil {
				return fmt.Errorf("%s: Grow(%d): %w", methodLayered, s.Size, err)
			}
			bias := cfg.bias
			if k == 0 {
				bias = 0
			}
			for _, id := range cur {
				if err = g.SetNode(id, s.Activation, bias); err != nil {
					return fmt.Errorf("%s: SetNode(%d): %w", methodLayered, id, err)
				}
			}
			if err = g.AddLayer(cur); err != nil {
				return fmt.Errorf("%s: AddLayer(%d): %w", methodLayered, k, err)
			}

			if err = connectAll(g, cfg, methodLayered, prev, cur); err != nil {
				return err
			}
			if k == 0 {
				first = cur
			}
			prev = cur
		}

		if err := g.SetInputs(first); err != nil {
			return fmt.Errorf("%s: %w", methodLayered, err)
		}
		if err := g.SetOutputs(prev); err != nil {
			return fmt.Errorf("%s: %w", methodLayered, err)
		}

		return nil
	}
}

// connectAll emits u→v for every u in from and v in to, in stable order.
func connectAll(g *core.Graph, cfg builderConfig, method string, from, to []core.NodeID) error {
	fan := Fan{In: len(from), Out: len(to)}
	for _, u := range from {
		for _, v := range to {
			w := cfg.weight(fan)
			if _, err := g.SetConnection(u, v, w); err != nil {
				return fmt.Errorf("%s: SetConnection(%d→%d, w=%g): %w", method, u, v, w, err)
			}
		}
	}

	return nil
}
