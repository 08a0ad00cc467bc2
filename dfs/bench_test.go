package dfs_test

import (
	"testing"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dfs"
)

// BenchmarkDFS_Chain measures traced DFS on a linear chain of N nodes.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 200
	g := core.NewGraph(N, core.WithDirected(false))
	for i := 1; i < N; i++ {
		_ = g.AddEdge(i-1, i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}
