// File: traversal.go
// Role: DepthSpanning (iterative depth-first spanning tree) and
// DepthComponents (repeated DepthSpanning over every unvisited HEAD
// node), both building their result into a caller-owned output graph.
package spanning

import (
	"fmt"

	"github.com/katalvlaran/dglath/core"
)

type pendingEdge struct {
	from int32
	edge core.Edge
}

func otherEnd(e core.Edge, from int32) int32 {
	if e.Head == from {
		return e.Tail
	}
	return e.Head
}

func pendingEdges(g *core.Context, from int32) ([]pendingEdge, error) {
	out, err := g.OutEdges(from)
	if err != nil {
		return nil, err
	}
	var pending []pendingEdge
	for e, ok := out.First(); ok; e, ok = out.Next() {
		pending = append(pending, pendingEdge{from: from, edge: e})
	}
	return pending, nil
}

// DepthSpanning builds a depth-first spanning tree rooted at start into
// out, using an explicit stack of pending edges rather than recursion.
// Each popped edge is skipped if its other endpoint is already in
// visited; otherwise clip is consulted, the endpoint is marked visited,
// the edge is copied into out (cost, id, and attributes preserved), and
// the endpoint's own departing edges are pushed.
//
// visited is shared across repeated calls (see DepthComponents) so a
// caller decomposing a whole graph into components never revisits a
// node already claimed by an earlier spanning tree. A nil map is
// replaced by a fresh one, for a single standalone call.
func DepthSpanning(g, out *core.Context, start int32, clip Clip, visited map[int32]bool) error {
	if g == nil || out == nil {
		return ErrNilGraph
	}
	if clip == nil {
		clip = acceptAll{}
	}
	if visited == nil {
		visited = make(map[int32]bool)
	}
	if _, err := g.GetNode(start); err != nil {
		return fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	visited[start] = true
	stack, err := pendingEdges(g, start)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		to := otherEnd(top.edge, top.from)
		if visited[to] {
			continue
		}
		cost, ok := clip.Accept(top.from, top.edge, to)
		if !ok {
			continue
		}

		flags := core.EdgeFlags(0)
		if top.edge.Directed {
			flags |= core.FlagDirected
		}
		if err := out.AddEdge(top.edge.Head, top.edge.Tail, cost, top.edge.ID, top.edge.Attr, flags); err != nil {
			return err
		}
		visited[to] = true

		more, err := pendingEdges(g, to)
		if err != nil {
			return err
		}
		stack = append(stack, more...)
	}
	return nil
}

// DepthComponents repeatedly selects an unvisited node with HEAD status
// and runs DepthSpanning from it via newOutput's freshly initialized
// graph, appending each resulting component to the returned slice until
// every HEAD node is claimed or maxComponents components have been
// produced.
func DepthComponents(g *core.Context, newOutput func() (*core.Context, error), maxComponents int, clip Clip) ([]*core.Context, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	visited := make(map[int32]bool)
	var components []*core.Context

	tr := g.NewNodeTraverser()
	for n, ok := tr.First(); ok && len(components) < maxComponents; n, ok = tr.Next() {
		if visited[n.ID] || n.Status&core.StatusHead == 0 {
			continue
		}
		out, err := newOutput()
		if err != nil {
			return components, err
		}
		if err := DepthSpanning(g, out, n.ID, clip, visited); err != nil {
			return components, err
		}
		components = append(components, out)
	}
	return components, nil
}
