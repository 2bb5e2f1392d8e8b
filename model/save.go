// SPDX-License-Identifier: MIT
// Package: lvnet/model
//
// save.go — model format writer.
//
// Contract:
//   • The graph must have ≥ 2 layers (ErrTooFewLayers) that cover node IDs
//     0..V-1 sequentially in layer order (ErrLayout); otherwise reloading
//     would renumber nodes.
//   • Every weight and bias must be finite (ErrNotFinite), as Load rejects
//     NaN and ±Inf; nothing is written otherwise.
//   • Each layer is written with the activation of its first node.
//   • Connections are written ordered by (source, dest); every node's bias is
//     written in ID order.
//   • Floats use strconv 'g' with the shortest precision that round-trips.

package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/network"
)

const methodSave = "Save"

// Save writes the graph of n to w.
func Save(w io.Writer, n *network.Network) error {
	if n == nil {
		return fmt.Errorf("%s: %w", methodSave, network.ErrGraphNil)
	}
	g := n.Graph()
	if err := checkLayout(g); err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}
	if err := checkFinite(g); err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}

	bw := bufio.NewWriter(w)
	nodes := g.Nodes()
	conns := g.Connections()

	fmt.Fprintf(bw, "%d %d\n", g.LayerCount(), len(nodes))
	for _, layer := range g.Layers() {
		fmt.Fprintf(bw, "%d %s\n", len(layer), nodes[layer[0]].Activation)
	}
	fmt.Fprintf(bw, "%d\n", len(conns))
	for _, idx := range g.Edges() {
		c := conns[idx]
		fmt.Fprintf(bw, "%d %d %s\n", c.Source, c.Dest, formatFloat(c.Weight))
	}
	fmt.Fprintf(bw, "%d\n", len(nodes))
	for id, node := range nodes {
		fmt.Fprintf(bw, "%d %s\n", id, formatFloat(node.Bias))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}

	return nil
}

// SaveFile writes the graph of n to path, creating or truncating it.
func SaveFile(path string, n *network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = Save(f, n); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// checkLayout verifies that layers number the nodes 0..V-1 in order.
func checkLayout(g *core.Graph) error {
	if g.LayerCount() < minLayers {
		return fmt.Errorf("%d layers: %w", g.LayerCount(), ErrTooFewLayers)
	}
	next := core.NodeID(0)
	for k, layer := range g.Layers() {
		if len(layer) == 0 {
			return fmt.Errorf("layer %d is empty: %w", k, ErrLayout)
		}
		for _, id := range layer {
			if id != next {
				return fmt.Errorf("layer %d: node %d where %d expected: %w", k, id, next, ErrLayout)
			}
			next++
		}
	}
	if int(next) != g.NodeCount() {
		return fmt.Errorf("layers cover %d of %d nodes: %w", next, g.NodeCount(), ErrLayout)
	}

	return nil
}

// formatFloat renders v in its shortest round-trip form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// checkFinite rejects NaN and ±Inf parameters.
func checkFinite(g *core.Graph) error {
	for _, c := range g.Connections() {
		if math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return fmt.Errorf("weight %d→%d is %g: %w", c.Source, c.Dest, c.Weight, ErrNotFinite)
		}
	}
	for id, node := range g.Nodes() {
		if math.IsNaN(node.Bias) || math.IsInf(node.Bias, 0) {
			return fmt.Errorf("bias of node %d is %g: %w", id, node.Bias, ErrNotFinite)
		}
	}

	return nil
}
