// File: methods_vertices.go
// Role: Actor lifecycle & queries.
//
// Determinism:
//   - Actors() returns names sorted lexicographically ascending.
//
// Concurrency:
//   - Catalog protected by mu; AddActor takes the write lock, queries the read lock.
package core

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// AddActor inserts an actor with an empty neighbor set if missing (idempotent).
//
// The builder never calls this: actors enter the graph through AddEdge, so a
// built graph has no isolated actors. AddActor exists for callers that want
// an actor queryable before any co-star is known (distance to self is 0).
//
// Errors:
//   - ErrEmptyActor: if name == "".
//   - ErrFrozen: if the graph has been published.
//
// Complexity: O(1) amortized.
func (g *Graph) AddActor(name string) error {
	if name == "" {
		return ErrEmptyActor
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen.Load() {
		return ErrFrozen
	}
	g.ensureActor(name)

	return nil
}

// HasActor reports whether the actor exists (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasActor(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[name]

	return ok
}

// Actors returns all actor names sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Actors() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		out = append(out, name)
	}
	g.mu.RUnlock()

	slices.Sort(out)

	return out
}

// ActorCount returns the number of actors.
// Complexity: O(1).
func (g *Graph) ActorCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of distinct co-stars of name.
//
// Errors:
//   - ErrEmptyActor: if name == "".
//   - ErrActorNotFound: if the actor is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyActor
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[name]
	if !ok {
		return 0, ErrActorNotFound
	}

	return nbrs.Cardinality(), nil
}

// Degrees returns a snapshot of every actor's degree taken under one read lock.
//
// Complexity: O(V).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.adjacency))
	for name, nbrs := range g.adjacency {
		out[name] = nbrs.Cardinality()
	}

	return out
}

// ensureActor returns the neighbor set of name, creating it if needed.
// Caller must hold the write lock.
func (g *Graph) ensureActor(name string) mapset.Set[string] {
	nbrs, ok := g.adjacency[name]
	if !ok {
		nbrs = mapset.NewThreadUnsafeSet[string]()
		g.adjacency[name] = nbrs
	}

	return nbrs
}
