// File: cache.go
// Role: Cache holds one start node's Dijkstra frontier, visited set, and
// predecessor/distance map, reused across repeated ShortestPath calls
// that share a start.
package shortestpath

import (
	"github.com/katalvlaran/dglath/avltree"
	"github.com/katalvlaran/dglath/binheap"
	"github.com/katalvlaran/dglath/core"
)

// predistEntry is one node's resolved predecessor-and-distance record.
// predNode is -1 for the start node itself — safe as a sentinel because
// core.Context forbids callers from supplying negative node ids.
type predistEntry struct {
	predNode int32
	edge     core.Edge
	reverse  bool
	distance int64
}

// Cache scopes a frontier heap, a visited set, and a predist map to one
// start node. Construct with NewCache and pass the same Cache to
// successive ShortestPath calls sharing a start to avoid reopening the
// heap; passing a new start resets it automatically.
type Cache struct {
	start   int32
	started bool
	frontier *binheap.Heap
	visited  avltree.Tree
	predist  avltree.Tree
}

// NewCache returns an empty, unseeded Cache.
func NewCache() *Cache {
	return &Cache{}
}

// reset discards any prior frontier/visited/predist state and scopes the
// cache to a new start node.
func (c *Cache) reset(start int32) {
	c.start = start
	c.started = true
	c.frontier = binheap.New(binheap.MinFirst)
	c.visited = avltree.Tree{}
	c.predist = avltree.Tree{}
}

func (c *Cache) isVisited(id int32) bool {
	_, ok := c.visited.Find(id)
	return ok
}

func (c *Cache) markVisited(id int32) {
	c.visited.Probe(id).Value = struct{}{}
}

func (c *Cache) entry(id int32) (*predistEntry, bool) {
	v, ok := c.predist.Find(id)
	if !ok {
		return nil, false
	}
	return v.(*predistEntry), true
}

func (c *Cache) setEntry(id int32, e *predistEntry) {
	c.predist.Probe(id).Value = e
}
