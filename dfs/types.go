// File: types.go
// Role: options, sentinel errors and result types of the dfs package.

package dfs

import (
	"context"
	"errors"
	"slices"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start actor does
	// not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...) or Components(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per discovered vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	// Components ignores it.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before descending.
	// Return true to traverse into that neighbor, false to skip it.
	// Components ignores it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// removes the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a single-source depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []string

	// PostOrder records vertices in the sequence they finished.
	PostOrder []string

	// Depth maps each vertex ID to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was
	// first discovered. The start vertex is absent.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped because
	// FilterNeighbor returned false.
	SkippedNeighbors int
}

// ComponentsResult partitions the actors of a graph into connected components.
// Component indices follow the sorted order of their smallest actor.
type ComponentsResult struct {
	// Count is the number of connected components.
	Count int

	// Assignment maps each actor to its component index in [0, Count).
	Assignment map[string]int

	// Roots holds, per component, the actor the traversal started from,
	// which is the component's lexicographically smallest actor.
	Roots []string

	// Sizes holds the number of actors per component.
	Sizes []int
}

// Connected reports whether the graph forms exactly one component.
// An empty graph is not connected.
func (c *ComponentsResult) Connected() bool {
	return c.Count == 1
}

// Largest returns the index and size of the biggest component, preferring
// the lowest index on ties. It returns (-1, 0) for an empty graph.
func (c *ComponentsResult) Largest() (index, size int) {
	index = -1
	for i, s := range c.Sizes {
		if s > size {
			index, size = i, s
		}
	}

	return index, size
}

// Members returns the actors of component i in ascending order, or nil if
// i is out of range.
func (c *ComponentsResult) Members(i int) []string {
	if i < 0 || i >= c.Count {
		return nil
	}
	out := make([]string, 0, c.Sizes[i])
	for actor, idx := range c.Assignment {
		if idx == i {
			out = append(out, actor)
		}
	}
	slices.Sort(out)

	return out
}
