// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/core"
)

// BenchmarkSetConnection_Dense measures building a dense 64×64 bipartite block.
func BenchmarkSetConnection_Dense(b *testing.B) {
	const side = 64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithNodes(2 * side))
		for u := 0; u < side; u++ {
			for v := side; v < 2*side; v++ {
				_, _ = g.SetConnection(core.NodeID(u), core.NodeID(v), 1)
			}
		}
	}
}

// BenchmarkIncoming measures reverse-adjacency lookups on a dense block.
func BenchmarkIncoming(b *testing.B) {
	const side = 64
	g := core.NewGraph(core.WithNodes(2 * side))
	for u := 0; u < side; u++ {
		for v := side; v < 2*side; v++ {
			_, _ = g.SetConnection(core.NodeID(u), core.NodeID(v), 1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Incoming(core.NodeID(side + i%side))
	}
}
