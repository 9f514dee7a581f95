// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options, sentinel errors.
//
// Errors:
//
//	ErrEmptyActor     - actor name is the empty string.
//	ErrActorNotFound  - requested actor does not exist.
//	ErrSelfLoop       - an edge from an actor to itself was requested.
//	ErrFrozen         - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyActor indicates that the provided actor name is empty.
	ErrEmptyActor = errors.New("core: actor name is empty")

	// ErrActorNotFound indicates an operation referenced a non-existent actor.
	ErrActorNotFound = errors.New("core: actor not found")

	// ErrSelfLoop indicates an edge from an actor to itself was requested.
	// The co-star graph is simple: nobody co-stars with themselves.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted on a published graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the actor catalog for n actors.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string]mapset.Set[string], n)
		}
	}
}

// Graph is an undirected, unweighted, simple graph over actor names.
//
// adjacency[a] is the neighbor set of a. The invariants are:
//   - symmetry: b ∈ adjacency[a] ⇔ a ∈ adjacency[b];
//   - no self-loops: a ∉ adjacency[a];
//   - simplicity: set semantics collapse repeated co-appearances into one edge.
//
// mu guards adjacency and edges. Neighbor sets are thread-unsafe mapset
// values; every access to them happens under mu.
//
// frozen is the publish barrier: once Freeze returns, mutators fail with
// ErrFrozen and any number of goroutines may read concurrently.
type Graph struct {
	mu sync.RWMutex

	frozen atomic.Bool

	adjacency map[string]mapset.Set[string]
	edges     int // number of undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string]mapset.Set[string])
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	// ActorCount is the number of actors present as keys.
	ActorCount int

	// EdgeCount is the number of undirected edges.
	EdgeCount int

	// IsolatedCount is the number of actors with an empty neighbor set.
	// The builder never produces these; explicit AddActor calls can.
	IsolatedCount int

	// MaxDegree is the largest neighbor-set size (0 for an empty graph).
	MaxDegree int

	// Frozen reports whether the graph has been published.
	Frozen bool
}
