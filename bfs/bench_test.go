package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// BenchmarkWalk_Chain measures a forward walk on a linear chain of size N.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)
	seeds := []core.NodeID{0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, seeds)
	}
}

// BenchmarkWalk_ReverseDense runs a reverse walk over a dense 3-layer block.
func BenchmarkWalk_ReverseDense(b *testing.B) {
	const width = 64
	g := core.NewGraph(core.WithNodes(2*width + 1))
	for u := 0; u < width; u++ {
		for v := width; v < 2*width; v++ {
			g.SetConnection(core.NodeID(u), core.NodeID(v), 1)
		}
	}
	sink := core.NodeID(2 * width)
	for v := width; v < 2*width; v++ {
		g.SetConnection(core.NodeID(v), sink, 1)
	}
	seeds := []core.NodeID{sink}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, seeds, bfs.WithDirection(bfs.Reverse))
	}
}
