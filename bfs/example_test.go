package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 lattice of
// co-stars. Each layer is listed in ascending name order.
func ExampleBFS_gridTraversal() {
	res, err := builder.Build(builder.GridCasts(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	walk, err := bfs.BFS(res.Graph, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(walk.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExamplePath finds the fewest-hop chain of co-stars between two actors.
// Two routes exist from A to K: A–B–C–D–K and A–E–F–K.
func ExamplePath() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
		{"C", "G"}, {"G", "H"}, {"D", "I"}, {"I", "J"},
	} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.Path(g, "A", "K")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Distance, res.Path)

	res, _ = bfs.Path(g, "A", "Zed")
	fmt.Println(res.Outcome, res.Distance, res.Unknown)
	// Output:
	// found 3 [A E F K]
	// unknown-actor -1 [Zed]
}

// ExampleBFS_depthLimit applies WithMaxDepth to a chain of ten co-stars.
func ExampleBFS_depthLimit() {
	res, _ := builder.Build(builder.ChainCasts(10))

	walk, err := bfs.BFS(res.Graph, "A", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(walk.Order)
	// Output:
	// [A B C]
}

// ExampleBFS_cancelFromVisit cancels the walk from inside OnVisit.
func ExampleBFS_cancelFromVisit() {
	res, _ := builder.Build(builder.ChainCasts(7))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var visSeq []string
	_, err := bfs.BFS(res.Graph, "A",
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id string, d int) error {
			visSeq = append(visSeq, fmt.Sprintf("%s@%d", id, d))
			if d == 4 {
				cancel()
			}
			return nil
		}),
	)

	fmt.Println("error:", err)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Visited:  [A@0 B@1 C@2 D@3 E@4]
}

// ExampleResolve answers several queries at once, keeping input order.
func ExampleResolve() {
	res, _ := builder.Build(builder.ChainCasts(4))
	results, err := bfs.Resolve(res.Graph, []bfs.Query{
		{From: "A", To: "D"},
		{From: "B", To: "B"},
		{From: "A", To: "Q"},
	}, bfs.ModeDistance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Println(r.From, r.To, r.Outcome, r.Distance)
	}
	// Output:
	// A D found 3
	// B B found 0
	// A Q unknown-actor -1
}
