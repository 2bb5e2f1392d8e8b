// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations in the builder package, verifying topology, counts,
// groupings and deterministic weights.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
)

// spec221 is the 2-2-1 identity/sigmoid/sigmoid topology.
var spec221 = []builder.LayerSpec{
	{Size: 2, Activation: activation.Identity},
	{Size: 2, Activation: activation.Sigmoid},
	{Size: 1, Activation: activation.Sigmoid},
}

// weights returns edge weights ordered by (source, dest).
func weights(g *core.Graph) []float64 {
	conns := g.Connections()
	out := make([]float64, 0, len(conns))
	for _, idx := range g.Edges() {
		out = append(out, conns[idx].Weight)
	}
	return out
}

// TestLayered_Topology verifies IDs, groupings, activations and edge set.
func TestLayered_Topology(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Layered(spec221...))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 2*2+2*1, g.EdgeCount())
	assert.Equal(t, [][]core.NodeID{{0, 1}, {2, 3}, {4}}, g.Layers())
	assert.Equal(t, []core.NodeID{0, 1}, g.Inputs())
	assert.Equal(t, []core.NodeID{4}, g.Outputs())

	kinds := []activation.Kind{activation.Identity, activation.Identity, activation.Sigmoid, activation.Sigmoid, activation.Sigmoid}
	for id, n := range g.Nodes() {
		assert.Equal(t, kinds[id], n.Activation, "node %d", id)
		assert.Zero(t, n.Bias)
	}
	for _, u := range []core.NodeID{0, 1} {
		for _, v := range []core.NodeID{2, 3} {
			assert.True(t, g.HasConnection(u, v))
		}
	}
	assert.False(t, g.HasConnection(0, 4))
}

// TestLayered_Deterministic ensures equal seeds give equal weights.
func TestLayered_Deterministic(t *testing.T) {
	t.Parallel()
	build := func(seed int64) []float64 {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Layered(spec221...))
		require.NoError(t, err)
		return weights(g)
	}
	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))
}

// TestLayered_ConstantWeight checks the weight option is honored.
func TestLayered_ConstantWeight(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(0.5)}, builder.Layered(spec221...))
	require.NoError(t, err)
	for _, w := range weights(g) {
		assert.Equal(t, 0.5, w)
	}
}

// TestLayered_Errors covers the validation classes.
func TestLayered_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		specs []builder.LayerSpec
		err   error
	}{
		{"no layers", nil, builder.ErrTooFewLayers},
		{"single layer", spec221[:1], builder.ErrTooFewLayers},
		{"empty layer", []builder.LayerSpec{{Size: 2}, {Size: 0}}, builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, builder.Layered(tc.specs...))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestSkip adds a shortcut from the input layer to the output layer.
func TestSkip(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)},
		builder.Layered(spec221...), builder.Skip(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.HasConnection(0, 4))
	assert.True(t, g.HasConnection(1, 4))
	assert.Len(t, g.Incoming(4), 4)

	for _, bad := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {0, 3}} {
		_, err = builder.BuildGraph(nil, nil, builder.Layered(spec221...), builder.Skip(bad[0], bad[1]))
		assert.ErrorIs(t, err, builder.ErrBadLayer, "Skip(%d,%d)", bad[0], bad[1])
	}
}

// TestApply mutates an existing graph.
func TestApply(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Layered(spec221...)))
	assert.Equal(t, 5, g.NodeCount())
	for _, w := range weights(g) {
		assert.Equal(t, builder.DefaultEdgeWeight, w, "no rng ⇒ deterministic fallback weight")
	}

	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(g, nil, builder.Skip(0, 1)), builder.ErrBadLayer)
}

// TestLayered_BiasAndFan checks the initial bias skips inputs and that
// fan-scaled weights respect the layer-pair bound.
func TestLayered_BiasAndFan(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithXavierWeight(), builder.WithBias(0.2)},
		builder.Layered(spec221...))
	require.NoError(t, err)

	nodes := g.Nodes()
	for _, id := range g.Inputs() {
		assert.Zero(t, nodes[id].Bias)
	}
	for _, id := range []core.NodeID{2, 3, 4} {
		assert.Equal(t, 0.2, nodes[id].Bias)
	}
	for _, w := range weights(g) {
		assert.LessOrEqual(t, math.Abs(w), math.Sqrt(6.0/3.0))
	}
}
