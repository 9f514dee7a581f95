package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/centrality"
	"github.com/katalvlaran/costar/core"
	"github.com/katalvlaran/costar/dfs"
	"github.com/katalvlaran/costar/movies"
	"github.com/katalvlaran/costar/report"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	res, err := builder.Build([]movies.Record{
		movies.NewRecord("M1", "Cal", "Ann", "Bea"),
		movies.NewRecord("M2", "Dee", "Eve"),
	})
	require.NoError(t, err)

	return res.Graph
}

func TestWriteAdjacency(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteAdjacency(&buf, sample(t)))
	assert.Equal(t, "Ann: Bea, Cal\nBea: Ann, Cal\nCal: Ann, Bea\nDee: Eve\nEve: Dee\n", buf.String())

	g := core.NewGraph()
	require.NoError(t, g.AddActor("Solo"))
	buf.Reset()
	require.NoError(t, report.WriteAdjacency(&buf, g))
	assert.Equal(t, "Solo:\n", buf.String())

	assert.ErrorIs(t, report.WriteAdjacency(&buf, nil), report.ErrNilInput)
}

func TestWriteTopK(t *testing.T) {
	top, err := centrality.TopK(sample(t), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTopK(&buf, top))
	assert.Equal(t, "Ann - Degree: 2\nBea - Degree: 2\nCal - Degree: 2\n", buf.String())
}

func TestWriteConnectivity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteConnectivity(&buf, &dfs.ComponentsResult{Count: 1, Sizes: []int{3}}))
	assert.Equal(t, "The graph is connected.\n", buf.String())

	c, err := dfs.Components(sample(t))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, report.WriteComponentSizes(&buf, c))
	assert.Equal(t,
		"The graph is not connected. Number of connected components: 2\n"+
			"Component 1 (Ann): 3 actors\n"+
			"Component 2 (Dee): 2 actors\n",
		buf.String())

	assert.ErrorIs(t, report.WriteConnectivity(&buf, nil), report.ErrNilInput)
}

func TestWriteDistancesAndPaths(t *testing.T) {
	g := sample(t)
	queries := []bfs.Query{
		{From: "Ann", To: "Cal"},
		{From: "Ann", To: "Eve"},
		{From: "Ann", To: "Zed"},
		{From: "Yan", To: "Yan"},
	}

	dist, err := bfs.Resolve(g, queries, bfs.ModeDistance)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteDistances(&buf, dist))
	assert.Equal(t,
		"Shortest path between Ann and Cal is 1\n"+
			"No path between Ann and Eve\n"+
			"Actor unknown: Zed\n"+
			"Actor unknown: Yan\n",
		buf.String())

	paths, err := bfs.Resolve(g, queries[:2], bfs.ModePath)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, report.WritePaths(&buf, paths))
	assert.Equal(t,
		"Shortest path between Ann and Cal: Ann -> Cal\n"+
			"No path between Ann and Eve\n",
		buf.String())
}

func TestWriteBuildSummary(t *testing.T) {
	stats := builder.Stats{RecordsSeen: 3, RecordsUsed: 2, RecordsSkipped: 1, Actors: 4, Edges: 3, Duration: time.Second}
	skipped := []builder.RecordError{{Index: 1, Title: "Bad", Err: errors.New("boom")}}

	var buf bytes.Buffer
	require.NoError(t, report.WriteBuildSummary(&buf, stats, skipped))
	assert.Equal(t,
		"Records seen: 3\n"+
			"Records used: 2\n"+
			"Records skipped: 1\n"+
			"Records without edges: 0\n"+
			"Casts truncated: 0\n"+
			"Actors: 4\n"+
			"Edges: 3\n"+
			"Skipped records:\n"+
			"  #1 \"Bad\": boom\n",
		buf.String())
}
