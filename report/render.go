// File: render.go
// Role: plain-text renderers for every report artifact.
// Determinism:
//   - Output depends only on the inputs; actors and neighbors are sorted.
// Each renderer writes through a bufio.Writer and returns the first error.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/centrality"
	"github.com/katalvlaran/costar/core"
	"github.com/katalvlaran/costar/dfs"
)

// WriteAdjacency writes one "actor: n1, n2, ..." line per actor, actors and
// neighbors in ascending order. Isolated actors get an empty list.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilInput
	}
	bw := bufio.NewWriter(w)
	adj := g.AdjacencyList()
	for _, actor := range g.Actors() {
		bw.WriteString(actor)
		bw.WriteString(":")
		if nbrs := adj[actor]; len(nbrs) > 0 {
			bw.WriteString(" ")
			bw.WriteString(strings.Join(nbrs, ", "))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// WriteTopK writes "Name - Degree: N" lines in the given order.
func WriteTopK(w io.Writer, entries []centrality.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s - Degree: %d\n", e.Actor, e.Degree)
	}

	return bw.Flush()
}

// WriteConnectivity writes the one-line connectivity verdict.
func WriteConnectivity(w io.Writer, c *dfs.ComponentsResult) error {
	if c == nil {
		return ErrNilInput
	}
	var err error
	if c.Connected() {
		_, err = fmt.Fprintln(w, "The graph is connected.")
	} else {
		_, err = fmt.Fprintf(w, "The graph is not connected. Number of connected components: %d\n", c.Count)
	}

	return err
}

// WriteComponentSizes writes the connectivity verdict followed by one line
// per component: index, root actor and size.
func WriteComponentSizes(w io.Writer, c *dfs.ComponentsResult) error {
	if err := WriteConnectivity(w, c); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i, root := range c.Roots {
		fmt.Fprintf(bw, "Component %d (%s): %d actors\n", i+1, root, c.Sizes[i])
	}

	return bw.Flush()
}

// WriteDistances writes one line per query:
//
//	Shortest path between A and B is N
//	No path between A and B
//	Actor unknown: X
func WriteDistances(w io.Writer, results []bfs.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Outcome == bfs.Found {
			fmt.Fprintf(bw, "Shortest path between %s and %s is %d\n", r.From, r.To, r.Distance)
			continue
		}
		writeNotFound(bw, r)
	}

	return bw.Flush()
}

// WritePaths writes "Shortest path between A and B: A -> ... -> B" per found
// query and the WriteDistances lines otherwise.
func WritePaths(w io.Writer, results []bfs.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Outcome == bfs.Found {
			fmt.Fprintf(bw, "Shortest path between %s and %s: %s\n", r.From, r.To, strings.Join(r.Path, " -> "))
			continue
		}
		writeNotFound(bw, r)
	}

	return bw.Flush()
}

func writeNotFound(bw *bufio.Writer, r bfs.Result) {
	if r.Outcome == bfs.NoPath {
		fmt.Fprintf(bw, "No path between %s and %s\n", r.From, r.To)
		return
	}
	seen := make(map[string]bool, len(r.Unknown))
	for _, name := range r.Unknown {
		if !seen[name] {
			seen[name] = true
			fmt.Fprintf(bw, "Actor unknown: %s\n", name)
		}
	}
}

// WriteBuildSummary writes ingestion counters followed by the skipped records.
func WriteBuildSummary(w io.Writer, stats builder.Stats, skipped []builder.RecordError) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Records seen: %d\n", stats.RecordsSeen)
	fmt.Fprintf(bw, "Records used: %d\n", stats.RecordsUsed)
	fmt.Fprintf(bw, "Records skipped: %d\n", stats.RecordsSkipped)
	fmt.Fprintf(bw, "Records without edges: %d\n", stats.RecordsWithoutEdges)
	fmt.Fprintf(bw, "Casts truncated: %d\n", stats.CastTruncated)
	fmt.Fprintf(bw, "Actors: %d\n", stats.Actors)
	fmt.Fprintf(bw, "Edges: %d\n", stats.Edges)
	if len(skipped) > 0 {
		bw.WriteString("Skipped records:\n")
		for _, s := range skipped {
			fmt.Fprintf(bw, "  #%d %q: %v\n", s.Index, s.Title, s.Err)
		}
	}

	return bw.Flush()
}
