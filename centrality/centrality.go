// Package centrality ranks actors of the co-star graph by degree: the number
// of distinct actors each one has shared a cast with.
//
// Ordering is total and reproducible: degree descending, then actor name
// ascending. TopK is a prefix of Rank.
package centrality

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/costar/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrInvalidK is returned by TopK for a negative k.
	ErrInvalidK = errors.New("centrality: k must be non-negative")
)

// Entry is one ranked actor.
type Entry struct {
	Actor  string
	Degree int
}

// Rank returns every actor ordered by degree descending, ties broken by
// actor name ascending.
//
// Complexity: O(V log V).
func Rank(g *core.Graph) ([]Entry, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	degrees := g.Degrees()
	out := make([]Entry, 0, len(degrees))
	for actor, d := range degrees {
		out = append(out, Entry{Actor: actor, Degree: d})
	}
	slices.SortFunc(out, compare)

	return out, nil
}

// TopK returns the first k entries of Rank, or all of them when the graph
// has fewer than k actors. k == 0 yields an empty, non-nil slice.
func TopK(g *core.Graph, k int) ([]Entry, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	ranked, err := Rank(g)
	if err != nil {
		return nil, err
	}
	if k > len(ranked) {
		k = len(ranked)
	}

	return slices.Clip(ranked[:k]), nil
}

// DegreeOf returns the degree of a single actor. Errors come from
// core.Graph.Degree (core.ErrEmptyActor, core.ErrActorNotFound).
func DegreeOf(g *core.Graph, actor string) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return g.Degree(actor)
}

func compare(a, b Entry) int {
	if c := cmp.Compare(b.Degree, a.Degree); c != 0 {
		return c
	}

	return cmp.Compare(a.Actor, b.Actor)
}
