// SPDX-License-Identifier: MIT
// Package network_test contains fixtures shared by the engine tests.
//
// Purpose:
//   - Build small deterministic networks through the builder package.
//   - Provide an independent recursive forward pass to compare against.

package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/network"
)

// Fixture constants.
const (
	halfWeight = 0.5
	fixedSeed  = 11
	tolerance  = 1e-9
	fdStep     = 1e-6
	fdTol      = 1e-6
)

// layers221 is the 2-2-1 identity/sigmoid/sigmoid topology.
var layers221 = []builder.LayerSpec{
	{Size: 2, Activation: activation.Identity},
	{Size: 2, Activation: activation.Sigmoid},
	{Size: 1, Activation: activation.Sigmoid},
}

// layersDeep is a 2-3-2-1 identity/tanh/sigmoid/sigmoid topology.
var layersDeep = []builder.LayerSpec{
	{Size: 2, Activation: activation.Identity},
	{Size: 3, Activation: activation.Tanh},
	{Size: 2, Activation: activation.Sigmoid},
	{Size: 1, Activation: activation.Sigmoid},
}

// xorData is the four-row XOR truth table.
var xorData = []dataset.Example{
	{Features: []float64{0, 0}, Label: 0},
	{Features: []float64{0, 1}, Label: 1},
	{Features: []float64{1, 0}, Label: 1},
	{Features: []float64{1, 1}, Label: 0},
}

// andData is the four-row AND truth table.
var andData = []dataset.Example{
	{Features: []float64{0, 0}, Label: 0},
	{Features: []float64{0, 1}, Label: 0},
	{Features: []float64{1, 0}, Label: 0},
	{Features: []float64{1, 1}, Label: 1},
}

// newNet221 RETURNS the 2-2-1 network with every weight w and every bias 0.
func newNet221(t testing.TB, w float64, opts ...network.Option) *network.Network {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(w)},
		builder.Layered(layers221...))
	require.NoError(t, err)
	n, err := network.New(g, opts...)
	require.NoError(t, err)

	return n
}

// newSeeded RETURNS a graph built from specs with seeded normal weights and
// seeded non-zero biases on every non-input node, plus any extra constructors.
func newSeeded(t testing.TB, specs []builder.LayerSpec, extra ...builder.Constructor) *core.Graph {
	t.Helper()
	cons := append([]builder.Constructor{builder.Layered(specs...)}, extra...)
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(fixedSeed)}, cons...)
	require.NoError(t, err)

	nodes := g.Nodes()
	for id := specs[0].Size; id < len(nodes); id++ {
		require.NoError(t, g.SetNode(core.NodeID(id), nodes[id].Activation, 0.1*float64(id%3)-0.1))
	}

	return g
}

// newChainWithShortcut RETURNS the five-node sigmoid chain 0→1→2→3→4 plus
// the shortcut 0→3: node 3 has predecessors at depths 1 and 3 from the input.
func newChainWithShortcut(t testing.TB) *core.Graph {
	t.Helper()
	specs := make([]builder.LayerSpec, 5)
	for i := range specs {
		specs[i] = builder.LayerSpec{Size: 1, Activation: activation.Sigmoid}
	}
	specs[0].Activation = activation.Identity
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(halfWeight)},
		builder.Layered(specs...), builder.Skip(0, 3))
	require.NoError(t, err)

	return g
}

// reference RETURNS every node value computed by plain recursion over
// predecessors; input nodes hold their features.
func reference(g *core.Graph, x []float64) map[core.NodeID]float64 {
	memo := make(map[core.NodeID]float64, g.NodeCount())
	for i, id := range g.Inputs() {
		memo[id] = x[i]
	}
	conns := g.Connections()
	var eval func(id core.NodeID) float64
	eval = func(id core.NodeID) float64 {
		if v, ok := memo[id]; ok {
			return v
		}
		node, _ := g.Node(id)
		pre := node.Bias
		for _, idx := range g.Incoming(id) {
			pre += conns[idx].Weight * eval(conns[idx].Source)
		}
		memo[id] = activation.Activate(node.Activation, pre)
		return memo[id]
	}
	for id := 0; id < g.NodeCount(); id++ {
		eval(core.NodeID(id))
	}

	return memo
}

// requireClean asserts that no transient node state is left behind.
func requireClean(t *testing.T, g *core.Graph) {
	t.Helper()
	for id, node := range g.Nodes() {
		require.Zero(t, node.Pre, "Pre of node %d", id)
		require.Zero(t, node.Post, "Post of node %d", id)
	}
}

// requireNoGradients asserts every node and connection accumulator is zero.
func requireNoGradients(t *testing.T, g *core.Graph) {
	t.Helper()
	for id, node := range g.Nodes() {
		require.Zero(t, node.Delta, "Delta of node %d", id)
	}
	for _, c := range g.Connections() {
		require.Zero(t, c.Delta, "Delta of %d→%d", c.Source, c.Dest)
	}
}
