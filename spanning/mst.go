// File: mst.go
// Role: MinimumSpanning, a Prim-style minimum spanning arborescence
// over a cost-keyed frontier heap.
package spanning

import (
	"fmt"

	"github.com/katalvlaran/dglath/binheap"
	"github.com/katalvlaran/dglath/core"
)

// MinimumSpanning grows a minimum spanning arborescence from start into
// out using a cost-keyed min-heap of frontier edges, Prim-style: the
// heap is seeded with every edge departing start, the cheapest frontier
// edge is popped and, if its far endpoint is not already in out, added
// and its own departing edges are pushed onto the heap.
//
// In v1/v2 this computes a minimum arborescence rooted at start. In v3,
// where OutEdges already folds in undirected edges from either
// endpoint, the result is an ordinary minimum spanning tree and start
// is just the node the walk happens to begin from.
func MinimumSpanning(g, out *core.Context, start int32, clip Clip) error {
	if g == nil || out == nil {
		return ErrNilGraph
	}
	if clip == nil {
		clip = acceptAll{}
	}
	if _, err := g.GetNode(start); err != nil {
		return fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	visited := map[int32]bool{start: true}
	frontier := binheap.New(binheap.MinFirst)

	if err := pushFrontier(g, frontier, start); err != nil {
		return err
	}

	for frontier.Len() > 0 {
		item, _ := frontier.Pop()
		pe := item.Value.(pendingEdge)
		to := otherEnd(pe.edge, pe.from)
		if visited[to] {
			continue
		}
		cost, ok := clip.Accept(pe.from, pe.edge, to)
		if !ok {
			continue
		}

		flags := core.EdgeFlags(0)
		if pe.edge.Directed {
			flags |= core.FlagDirected
		}
		if err := out.AddEdge(pe.edge.Head, pe.edge.Tail, cost, pe.edge.ID, pe.edge.Attr, flags); err != nil {
			return err
		}
		visited[to] = true

		if err := pushFrontier(g, frontier, to); err != nil {
			return err
		}
	}
	return nil
}

func pushFrontier(g *core.Context, frontier *binheap.Heap, from int32) error {
	pending, err := pendingEdges(g, from)
	if err != nil {
		return err
	}
	for _, pe := range pending {
		frontier.Push(binheap.Item{Key: int64(pe.edge.Cost), Value: pe})
	}
	return nil
}
