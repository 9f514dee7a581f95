// File: dfs.go
// Role: iterative depth-first search and connected components on core.Graph.
// Determinism:
//   - Neighbors are explored in ascending name order, roots in sorted order.
// Concurrency:
//   - Each call owns its walker; the graph is only read.

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    string
	depth int
	nbrs  []string // sorted neighbors, fetched on push
	next  int      // index of the next neighbor to consider
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	ctx   context.Context
	stack []frame
	res   *DFSResult
}

// DFS performs an iterative depth-first search on g from startID.
// The stack is explicit, so arbitrarily long chains cannot overflow the
// goroutine stack. Returns the partial DFSResult together with the error
// when aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasActor(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, dopts, g.ActorCount())
	err := w.traverse(startID)

	return w.res, err
}

func newWalker(g *core.Graph, o DFSOptions, n int) *dfsWalker {
	return &dfsWalker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
}

// traverse explores the tree rooted at root until the stack drains.
func (w *dfsWalker) traverse(root string) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// All neighbors handled: finish the vertex.
		if top.next >= len(top.nbrs) {
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
				}
			}
			w.res.PostOrder = append(w.res.PostOrder, id)
			continue
		}

		nid := top.nbrs[top.next]
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}

		depth := top.depth + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = top.id
		// discover may grow the stack and invalidate top.
		if err := w.discover(nid, depth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(id string, depth int) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	var nbrs []string
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbrs, err = w.graph.NeighborIDs(id); err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// Components partitions g into connected components. Actors are scanned in
// ascending order and every actor not yet reached roots a new traversal, so
// component i's root is its smallest actor and components are numbered by
// root order. MaxDepth and FilterNeighbor are ignored; the context and the
// OnVisit/OnExit hooks apply.
func Components(g *core.Graph, opts ...Option) (*ComponentsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	dopts.MaxDepth = -1
	dopts.FilterNeighbor = nil

	actors := g.Actors()
	out := &ComponentsResult{
		Assignment: make(map[string]int, len(actors)),
	}
	w := newWalker(g, dopts, len(actors))

	for _, a := range actors {
		if w.res.Visited[a] {
			continue
		}
		before := len(w.res.Order)
		if err := w.traverse(a); err != nil {
			return nil, err
		}

		idx := out.Count
		for _, id := range w.res.Order[before:] {
			out.Assignment[id] = idx
		}
		out.Roots = append(out.Roots, a)
		out.Sizes = append(out.Sizes, len(w.res.Order)-before)
		out.Count++
	}

	return out, nil
}
