// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_skip.go — implementation of the Skip(from,to) constructor.
//
// Contract:
//   • 0 ≤ from, from+1 < to < LayerCount() (else ErrBadLayer). Adjacent layers
//     are already fully connected by Layered.
//   • Emits every cross-pair L_from[i] → L_to[j], weights drawn with the fan
//     (|L_from|, |L_to|).
//   • The result is still a DAG but no longer strictly layered: nodes of L_to
//     have predecessors at two different depths.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

const methodSkip = "Skip"

// Skip returns a Constructor linking layer from to the non-adjacent layer to.
func Skip(from, to int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.LayerCount()
		if from < 0 || to >= n || from+1 >= to {
			return fmt.Errorf("%s: from=%d, to=%d with %d layers: %w", methodSkip, from, to, n, ErrBadLayer)
		}
		layers := g.Layers()

		return connectAll(g, cfg, methodSkip, layers[from], layers[to])
	}
}
