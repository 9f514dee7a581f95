// File: path.go
// Role: point-to-point shortest-path queries between two actors.
// Determinism:
//   - Neighbors are expanded in ascending name order, so among equally short
//     paths the one returned takes the smallest-named predecessor at every hop.
// Concurrency:
//   - Safe for concurrent use on a frozen graph; each call owns its walker.

package bfs

import (
	"github.com/katalvlaran/costar/core"
)

// Outcome classifies a query result.
type Outcome int

const (
	// Found: both actors exist and are connected.
	Found Outcome = iota
	// NoPath: both actors exist but lie in different components.
	NoPath
	// UnknownActor: at least one endpoint is not in the graph.
	UnknownActor
)

// String returns a lowercase label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	case UnknownActor:
		return "unknown-actor"
	default:
		return "invalid"
	}
}

// Result is the answer to one From→To query.
//
// Distance is the edge count of a shortest path, or -1 when Outcome is not
// Found. Path is nil unless Outcome is Found and the query asked for it.
// Unknown lists the endpoints absent from the graph, in From, To order.
type Result struct {
	From     string
	To       string
	Outcome  Outcome
	Distance int
	Path     []string
	Unknown  []string
}

// Found reports whether a path exists.
func (r Result) Found() bool { return r.Outcome == Found }

// Distance returns the length in edges of a shortest path between a and b.
// Missing actors and disconnected pairs are reported through Result.Outcome;
// the error is reserved for a nil graph, invalid options, and cancellation.
func Distance(g *core.Graph, a, b string, opts ...Option) (Result, error) {
	return query(g, a, b, false, opts)
}

// Path returns a shortest path between a and b, endpoints included.
func Path(g *core.Graph, a, b string, opts ...Option) (Result, error) {
	return query(g, a, b, true, opts)
}

func query(g *core.Graph, a, b string, withPath bool, opts []Option) (Result, error) {
	o, err := resolveOptions(g, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{From: a, To: b, Distance: -1}

	for _, id := range []string{a, b} {
		if !g.HasActor(id) {
			res.Unknown = append(res.Unknown, id)
		}
	}
	if len(res.Unknown) > 0 {
		res.Outcome = UnknownActor
		return res, nil
	}

	if a == b {
		res.Outcome, res.Distance = Found, 0
		if withPath {
			res.Path = []string{a}
		}
		return res, nil
	}

	o.Target = b
	o.trackParents = withPath
	walk, err := run(g, a, o)
	if err != nil {
		return Result{}, err
	}

	d, ok := walk.Depth[b]
	if !ok {
		res.Outcome = NoPath
		return res, nil
	}
	res.Outcome, res.Distance = Found, d
	if withPath {
		// b was reached, so PathTo cannot fail.
		res.Path, _ = walk.PathTo(b)
	}

	return res, nil
}
