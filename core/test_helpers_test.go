// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Avoid magic numbers in test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/core"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	WeightH   = 0.5
	Weight1   = 1.0
	WeightNeg = -2.25
)

// newDiamond RETURNS a 4-node DAG 0→1, 0→2, 1→3, 2→3 with the given weight.
//
// Returns:
//   - *core.Graph with inputs [0] and outputs [3].
func newDiamond(t *testing.T, w float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithNodes(4))
	for _, e := range [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, err := g.SetConnection(e[0], e[1], w)
		require.NoError(t, err)
	}
	require.NoError(t, g.SetInputs([]core.NodeID{0}))
	require.NoError(t, g.SetOutputs([]core.NodeID{3}))

	return g
}
