package dfs_test

import (
	"testing"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a chain of 10,000 actors.
// The graph is built once; each iteration walks it from the first actor.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "A")
	}
}

// BenchmarkComponents_RandomSparse measures component counting on a sparse
// random co-star graph with many small components.
func BenchmarkComponents_RandomSparse(b *testing.B) {
	res, err := builder.Build(builder.RandomCasts(42, 3000, 10000, 3), builder.WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(res.Graph)
	}
}
