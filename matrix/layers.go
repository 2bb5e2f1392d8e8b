// SPDX-License-Identifier: MIT

// Package matrix - layer weight views over a core.Graph.
//
// Purpose:
//   - Export the connections between layer k and layer k+1 as a dense
//     |L_k|×|L_{k+1}| matrix (row = source position, col = dest position).
//   - Write such a matrix back, creating missing connections.
//
// Behavior highlights:
//   - Missing connections read as 0 in LayerWeights and LayerGradients.
//   - Connections outside the layer pair (skip links) are not represented.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

const (
	ctxLayerWeights    = "LayerWeights"
	ctxLayerGradients  = "LayerGradients"
	ctxSetLayerWeights = "SetLayerWeights"
)

// layerPair returns the node IDs of layers k and k+1.
func layerPair(method string, g *core.Graph, k int) ([]core.NodeID, []core.NodeID, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	layers := g.Layers()
	if k < 0 || k+1 >= len(layers) {
		return nil, nil, fmt.Errorf("%s: k=%d with %d layers: %w", method, k, len(layers), ErrLayerRange)
	}

	return layers[k], layers[k+1], nil
}

// LayerWeights returns the weight matrix from layer k to layer k+1.
// Errors: ErrGraphNil, ErrLayerRange.
// Complexity: O(|L_k|·|L_{k+1}|).
func LayerWeights(g *core.Graph, k int) (*Dense, error) {
	return layerView(ctxLayerWeights, g, k, func(c *core.Connection) float64 { return c.Weight })
}

// LayerGradients returns the accumulated weight gradients from layer k to
// layer k+1.
// Errors: ErrGraphNil, ErrLayerRange.
func LayerGradients(g *core.Graph, k int) (*Dense, error) {
	return layerView(ctxLayerGradients, g, k, func(c *core.Connection) float64 { return c.Delta })
}

// layerView fills a dense matrix with pick(connection) for every present edge.
func layerView(method string, g *core.Graph, k int, pick func(*core.Connection) float64) (*Dense, error) {
	from, to, err := layerPair(method, g, k)
	if err != nil {
		return nil, err
	}
	m, err := NewDense(len(from), len(to))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for i, u := range from {
		for j, v := range to {
			c, err := g.Connection(u, v)
			if err != nil {
				continue
			}
			m.data[i*m.c+j] = pick(c)
		}
	}

	return m, nil
}

// SetLayerWeights assigns m[i][j] to the connection L_k[i] → L_{k+1}[j],
// creating it when absent.
// Errors: ErrGraphNil, ErrLayerRange, ErrDimensionMismatch, or a core error.
func SetLayerWeights(g *core.Graph, k int, m *Dense) error {
	from, to, err := layerPair(ctxSetLayerWeights, g, k)
	if err != nil {
		return err
	}
	if m == nil || m.r != len(from) || m.c != len(to) {
		return fmt.Errorf("%s: layer pair is %d×%d: %w", ctxSetLayerWeights, len(from), len(to), ErrDimensionMismatch)
	}
	for i, u := range from {
		for j, v := range to {
			if _, err = g.SetConnection(u, v, m.data[i*m.c+j]); err != nil {
				return fmt.Errorf("%s: %w", ctxSetLayerWeights, err)
			}
		}
	}

	return nil
}
