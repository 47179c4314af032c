// File: dijkstra.go
// Role: The ShortestPath entry point and Dijkstra's relaxation loop,
// built on Cache's frontier heap, visited set, and predist map.
package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/dglath/binheap"
	"github.com/katalvlaran/dglath/core"
)

// ShortestPath finds the least-cost path from start to dest in g,
// folding each candidate edge through clip (acceptAll if clip is nil).
// cache may be nil, in which case a fresh one-shot Cache is used; passing
// a Cache explicitly lets repeated queries sharing a start reuse the
// frontier and predist map already built by earlier calls instead of
// reopening the search from scratch.
//
// Returns ErrUnreachable, wrapped so core.ErrorCode(err) == 0, if the
// frontier drains without reaching dest.
func ShortestPath(g *core.Context, cache *Cache, start, dest int32, clip Clip) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", core.ErrUnexpectedNullPointer)
	}
	if clip == nil {
		clip = acceptAll{}
	}
	if cache == nil {
		cache = NewCache()
	}
	if start == dest {
		return &Report{TotalDistance: 0}, nil
	}
	if !cache.started || cache.start != start {
		cache.reset(start)
		seed(cache, start)
	}
	if cache.isVisited(dest) {
		return rebuildReport(cache, dest)
	}

	for cache.frontier.Len() > 0 {
		item, _ := cache.frontier.Pop()
		u := item.Value.(int32)
		if cache.isVisited(u) {
			continue // stale lazy-decrease-key entry, superseded by a shorter one already processed
		}
		cache.markVisited(u)
		// Relax before checking for dest so a settled node's edges are
		// always on the frontier for later queries through this cache.
		if err := relax(g, cache, u, clip); err != nil {
			return nil, err
		}
		if u == dest {
			return rebuildReport(cache, dest)
		}
	}
	return nil, fmt.Errorf("%w: from %d to %d", ErrUnreachable, start, dest)
}

// seed plants the start node's own zero-distance predist entry and the
// first frontier item.
func seed(cache *Cache, start int32) {
	cache.setEntry(start, &predistEntry{predNode: -1, distance: 0})
	cache.frontier.Push(binheap.Item{Key: 0, Value: start})
}

// relax considers every outgoing edge of the just-settled node u,
// offering each to clip and pushing an improved candidate onto the
// frontier. Edges are read exclusively via g.OutEdges, which already
// folds a V3 graph's undirected in-edges into the outward view.
func relax(g *core.Context, cache *Cache, u int32, clip Clip) error {
	ue, ok := cache.entry(u)
	if !ok {
		return fmt.Errorf("%w: node %d has no predist entry", core.ErrUnexpectedNullPointer, u)
	}

	out, err := g.OutEdges(u)
	if err != nil {
		return err
	}
	for e, ok := out.First(); ok; e, ok = out.Next() {
		v := otherEnd(e, u)
		if cache.isVisited(v) {
			continue
		}

		var prevEdge *core.Edge
		if ue.predNode != -1 {
			prevEdge = &ue.edge
		}
		cost, accept := clip.Accept(prevEdge, u, e, ue.distance)
		if !accept {
			continue
		}

		candidate := ue.distance + cost
		if existing, ok := cache.entry(v); ok && existing.distance <= candidate {
			continue
		}

		cache.setEntry(v, &predistEntry{predNode: u, edge: e, reverse: e.Head != u, distance: candidate})
		cache.frontier.Push(binheap.Item{Key: candidate, Value: v})
	}
	return nil
}

// otherEnd returns the endpoint of e that is not from, for a V3
// undirected edge folded into from's outward view from either side.
func otherEnd(e core.Edge, from int32) int32 {
	if e.Head == from {
		return e.Tail
	}
	return e.Head
}

// rebuildReport walks the predist chain backward from dest to the
// cache's start, reversing the collected arcs into forward order.
func rebuildReport(cache *Cache, dest int32) (*Report, error) {
	de, ok := cache.entry(dest)
	if !ok {
		return nil, fmt.Errorf("%w: no predist entry for %d", core.ErrUnexpectedNullPointer, dest)
	}
	total := de.distance

	var arcs []core.Edge
	cur := dest
	for {
		e, ok := cache.entry(cur)
		if !ok {
			return nil, fmt.Errorf("%w: broken predist chain at %d", core.ErrUnexpectedNullPointer, cur)
		}
		if e.predNode == -1 {
			break
		}
		arcs = append(arcs, e.edge)
		cur = e.predNode
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}
	return &Report{Arcs: arcs, TotalDistance: total}, nil
}
