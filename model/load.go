// SPDX-License-Identifier: MIT
// Package: lvnet/model
//
// load.go — model format reader.
//
// Contract:
//   • numLayers < 2 fails with ErrTooFewLayers before any graph work.
//   • Every other structural problem fails with ErrMalformed naming the line,
//     including headers declaring more than MaxNodes nodes and read errors
//     such as over-long lines.
//   • No partial graph or network is ever returned.
//   • Initial weights come from builder.Layered; a time-based seed is used
//     unless opts carry their own (options are last-wins).
//
// Complexity:
//   • Time: O(V + E + entries). Space: O(V + E).

package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/network"
)

const (
	methodLoad      = "Load"
	methodLoadGraph = "LoadGraph"
	minLayers       = 2
)

// MaxNodes bounds the node count a model header may declare.
const MaxNodes = 1 << 24

// Load reads a model from r and wraps it in a training-mode Network with
// default engine settings. opts configure initial weight generation.
func Load(r io.Reader, opts ...builder.BuilderOption) (*network.Network, error) {
	g, err := LoadGraph(r, opts...)
	if err != nil {
		return nil, err
	}
	n, err := network.New(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}

	return n, nil
}

// LoadFile opens path and loads a Network from it.
func LoadFile(path string, opts ...builder.BuilderOption) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// LoadGraph reads a model from r and returns its graph, for callers that
// configure the Network themselves.
func LoadGraph(r io.Reader, opts ...builder.BuilderOption) (*core.Graph, error) {
	ld := &loader{sc: bufio.NewScanner(r)}

	specs, err := ld.readLayers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoadGraph, err)
	}
	bopts := append([]builder.BuilderOption{builder.WithSeed(time.Now().UnixNano())}, opts...)
	g, err := builder.BuildGraph(nil, bopts, builder.Layered(specs...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodLoadGraph, ErrMalformed, err)
	}
	if err = ld.readWeights(g); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoadGraph, err)
	}
	if err = ld.readBiases(g); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoadGraph, err)
	}

	return g, nil
}

// loader tracks the position in a model source.
type loader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the first want fields of the next non-blank line.
func (ld *loader) next(want int, what string) ([]string, error) {
	for ld.sc.Scan() {
		ld.line++
		fields := strings.Fields(ld.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < want {
			return nil, ld.malformed("%s: %d fields, want %d", what, len(fields), want)
		}
		return fields[:want], nil
	}
	if err := ld.sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w: %w", ld.line+1, what, ErrMalformed, err)
	}

	return nil, ld.malformed("%s: unexpected end of input", what)
}

// malformed wraps ErrMalformed with the current line.
func (ld *loader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", ld.line, fmt.Sprintf(format, args...), ErrMalformed)
}

// atoi parses an integer field.
func (ld *loader) atoi(tok, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ld.malformed("%s %q", what, tok)
	}

	return v, nil
}

// atof parses a float field.
func (ld *loader) atof(tok, what string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ld.malformed("%s %q", what, tok)
	}

	return v, nil
}

// count reads a non-negative entry count on its own line.
func (ld *loader) count(what string) (int, error) {
	f, err := ld.next(1, what)
	if err != nil {
		return 0, err
	}
	n, err := ld.atoi(f[0], what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ld.malformed("%s %d is negative", what, n)
	}

	return n, nil
}

// readLayers reads the header and the layer lines.
func (ld *loader) readLayers() ([]builder.LayerSpec, error) {
	f, err := ld.next(2, "header")
	if err != nil {
		return nil, err
	}
	numLayers, err := ld.atoi(f[0], "numLayers")
	if err != nil {
		return nil, err
	}
	totalNodes, err := ld.atoi(f[1], "totalNodes")
	if err != nil {
		return nil, err
	}
	if numLayers < minLayers {
		return nil, fmt.Errorf("line %d: %d layers: %w", ld.line, numLayers, ErrTooFewLayers)
	}
	if totalNodes < numLayers || totalNodes > MaxNodes {
		return nil, ld.malformed("%d nodes for %d layers (limit %d)", totalNodes, numLayers, MaxNodes)
	}

	specs := make([]builder.LayerSpec, numLayers)
	sum := 0
	for i := range specs {
		if f, err = ld.next(2, "layer"); err != nil {
			return nil, err
		}
		size, err := ld.atoi(f[0], "layer size")
		if err != nil {
			return nil, err
		}
		if size < 1 || size > totalNodes-sum {
			return nil, ld.malformed("layer %d has %d nodes, %d left of %d", i, size, totalNodes-sum, totalNodes)
		}
		kind, err := activation.Parse(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", ld.line, ErrMalformed, err)
		}
		specs[i] = builder.LayerSpec{Size: size, Activation: kind}
		sum += size
	}
	if sum != totalNodes {
		return nil, ld.malformed("layers hold %d nodes, header says %d", sum, totalNodes)
	}

	return specs, nil
}

// readWeights applies the weight entries, adding connections as needed.
func (ld *loader) readWeights(g *core.Graph) error {
	n, err := ld.count("weight count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		f, err := ld.next(3, "weight entry")
		if err != nil {
			return err
		}
		u, err := ld.atoi(f[0], "source id")
		if err != nil {
			return err
		}
		v, err := ld.atoi(f[1], "dest id")
		if err != nil {
			return err
		}
		w, err := ld.atof(f[2], "weight")
		if err != nil {
			return err
		}
		if _, err = g.SetConnection(core.NodeID(u), core.NodeID(v), w); err != nil {
			return fmt.Errorf("line %d: %w: %w", ld.line, ErrMalformed, err)
		}
	}

	return nil
}

// readBiases applies the bias entries.
func (ld *loader) readBiases(g *core.Graph) error {
	n, err := ld.count("bias count")
	if err != nil {
		return err
	}
	nodes := g.Nodes()
	for i := 0; i < n; i++ {
		f, err := ld.next(2, "bias entry")
		if err != nil {
			return err
		}
		id, err := ld.atoi(f[0], "node id")
		if err != nil {
			return err
		}
		b, err := ld.atof(f[1], "bias")
		if err != nil {
			return err
		}
		if !g.HasNode(core.NodeID(id)) {
			return fmt.Errorf("line %d: node %d: %w: %w", ld.line, id, ErrMalformed, core.ErrNodeNotFound)
		}
		if err = g.SetNode(core.NodeID(id), nodes[id].Activation, b); err != nil {
			return fmt.Errorf("line %d: %w: %w", ld.line, ErrMalformed, err)
		}
	}

	return nil
}
