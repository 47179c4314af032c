// File: traverse.go
// Role: Read-only iteration over nodes and edges, working in either
// tree or flat state. NodeTraverser and EdgeTraverser are stateful
// cursors in the style of avltree.Traverser; EdgesetTraverser walks
// one node's out- or in-edgeset, each entry resolved to a full Edge
// snapshot regardless of state.
package core

import "github.com/katalvlaran/dglath/avltree"

// NodeTraverser yields every node in ascending id order.
type NodeTraverser struct {
	c          *Context
	tr         *avltree.Traverser
	flatOff    int32
	flatStride int32
	started    bool
}

// NewNodeTraverser returns a cursor positioned before the first node.
func (c *Context) NewNodeTraverser() *NodeTraverser {
	t := &NodeTraverser{c: c}
	if !c.flat {
		t.tr = c.nodes.NewTraverser()
	} else {
		t.flatOff = -1
		t.flatStride = c.NodeStride()
	}
	return t
}

// First rewinds the cursor and returns the first node.
func (t *NodeTraverser) First() (Node, bool) {
	t.started = true
	if t.tr != nil {
		n := t.tr.First()
		return nodeFromTreeEntry(n), n != nil
	}
	t.flatOff = 0
	return t.decodeFlat()
}

// Next advances the cursor and returns the next node, or false when
// exhausted.
func (t *NodeTraverser) Next() (Node, bool) {
	if !t.started {
		return t.First()
	}
	if t.tr != nil {
		n := t.tr.Next()
		return nodeFromTreeEntry(n), n != nil
	}
	t.flatOff += t.flatStride
	return t.decodeFlat()
}

func (t *NodeTraverser) decodeFlat() (Node, bool) {
	nb, _ := t.c.FlatBuffers()
	if t.flatOff < 0 || t.flatOff+t.flatStride > int32(len(nb)) {
		return Node{}, false
	}
	rec := nb[t.flatOff : t.flatOff+t.flatStride]
	order := t.c.endian
	id := int32(order.Uint32(rec[0:4]))
	status := NodeStatus(order.Uint32(rec[4:8]))
	attr := append([]byte(nil), rec[12:]...)
	return Node{ID: id, Status: status, Attr: attr}, true
}

func nodeFromTreeEntry(tn *avltree.Node) Node {
	if tn == nil {
		return Node{}
	}
	n := tn.Value.(*node)
	return Node{ID: n.id, Status: n.status, Attr: append([]byte(nil), n.attr...)}
}

// EdgeTraverser yields every edge. In tree state with OptPrioritizeCost
// set, it yields in nondecreasing cost order; otherwise ascending id.
// In flat state on V2/V3 it scans the edge buffer's leading segment of
// standalone records (written before any edgeset block, so this is a
// contiguous run); on V1, which has no standalone edge-record segment,
// it instead walks every node's inline out-edgeset in turn.
type EdgeTraverser struct {
	c       *Context
	ids     []int32 // tree state: remaining edge ids
	idIdx   int
	flatIdx int32 // flat V2/V3: byte offset into edge buffer
	// flat V1 state: current node scan position plus position within
	// that node's inline edgeset
	nodeOff    int32
	edgeOff    int32
	edgeLeft   int32
	started    bool
}

// NewEdgeTraverser returns a cursor positioned before the first edge.
func (c *Context) NewEdgeTraverser() *EdgeTraverser {
	t := &EdgeTraverser{c: c}
	if !c.flat {
		if c.options&OptPrioritizeCost != 0 {
			t.ids = append([]int32(nil), c.costOrder...)
		} else {
			t.ids = c.edges.Keys()
		}
	}
	return t
}

// First rewinds and returns the first edge.
func (t *EdgeTraverser) First() (Edge, bool) {
	t.started = true
	t.idIdx = 0
	t.flatIdx = 0
	t.nodeOff = 0
	t.edgeLeft = 0
	return t.next()
}

// Next advances and returns the next edge, or false when exhausted.
func (t *EdgeTraverser) Next() (Edge, bool) {
	if !t.started {
		return t.First()
	}
	return t.next()
}

func (t *EdgeTraverser) next() (Edge, bool) {
	if !t.c.flat {
		if t.idIdx >= len(t.ids) {
			return Edge{}, false
		}
		id := t.ids[t.idIdx]
		t.idIdx++
		e, err := t.c.GetEdge(id)
		if err != nil {
			return Edge{}, false
		}
		return e, true
	}
	if t.c.version != V1 {
		return t.nextFlatV2()
	}
	return t.nextFlatV1()
}

func (t *EdgeTraverser) nextFlatV2() (Edge, bool) {
	_, eb := t.c.FlatBuffers()
	recStride := t.c.EdgeStride()
	limit := int32(t.c.edgeCount) * recStride
	if t.flatIdx+recStride > limit || t.flatIdx+recStride > int32(len(eb)) {
		return Edge{}, false
	}
	rec := eb[t.flatIdx : t.flatIdx+recStride]
	t.flatIdx += recStride
	return decodeFlatEdgeV2(t.c, rec), true
}

func (t *EdgeTraverser) nextFlatV1() (Edge, bool) {
	nb, eb := t.c.FlatBuffers()
	stride := t.c.NodeStride()
	order := t.c.endian
	recStride := t.c.EdgeStride()

	for {
		if t.edgeLeft > 0 {
			rec := eb[t.edgeOff : t.edgeOff+recStride]
			t.edgeOff += recStride
			t.edgeLeft--
			return decodeFlatEdgeV1(t.c, rec), true
		}
		if t.nodeOff >= int32(len(nb)) {
			return Edge{}, false
		}
		rec := nb[t.nodeOff : t.nodeOff+stride]
		status := NodeStatus(order.Uint32(rec[4:8]))
		t.nodeOff += stride
		if status == StatusAlone {
			continue
		}
		edgesetOff := int32(order.Uint32(rec[8:12]))
		t.edgeLeft = int32(order.Uint32(eb[edgesetOff : edgesetOff+4]))
		t.edgeOff = edgesetOff + 4
	}
}

func decodeFlatEdgeV2(c *Context, rec []byte) Edge {
	order := c.endian
	status := EdgeFlags(order.Uint32(rec[8:12]))
	return Edge{
		Head: resolveNodeID(c, int32(order.Uint32(rec[0:4]))),
		Tail: resolveNodeID(c, int32(order.Uint32(rec[4:8]))),
		Cost: int32(order.Uint32(rec[12:16])),
		ID:   int32(order.Uint32(rec[16:20])),
		Directed: status&FlagDirected != 0,
		Attr:     append([]byte(nil), rec[20:]...),
	}
}

func decodeFlatEdgeV1(c *Context, rec []byte) Edge {
	order := c.endian
	return Edge{
		Head: resolveNodeID(c, int32(order.Uint32(rec[0:4]))),
		Tail: resolveNodeID(c, int32(order.Uint32(rec[4:8]))),
		Cost: int32(order.Uint32(rec[8:12])),
		ID:   int32(order.Uint32(rec[12:16])),
		Attr: append([]byte(nil), rec[16:]...),
	}
}

func resolveNodeID(c *Context, nodeOffset int32) int32 {
	nb, _ := c.FlatBuffers()
	return int32(c.endian.Uint32(nb[nodeOffset : nodeOffset+4]))
}

// EdgesetTraverser walks one node's out- or in-edgeset.
type EdgesetTraverser struct {
	edges []Edge
	idx   int
}

// OutEdges returns the edgeset traverser for node id's outgoing edges.
func (c *Context) OutEdges(id int32) (*EdgesetTraverser, error) {
	return c.edgeset(id, true)
}

// InEdges returns the edgeset traverser for node id's incoming edges
// (V2/V3 only; V1 returns ErrNotSupported).
func (c *Context) InEdges(id int32) (*EdgesetTraverser, error) {
	if c.version == V1 {
		return nil, ErrNotSupported
	}
	return c.edgeset(id, false)
}

// edgeset builds a node's out- or in-edgeset. On V3, an edge without
// FlagDirected is stored once (head's out, tail's in) but is
// traversable from either endpoint, so the opposite-side list is
// scanned too and any undirected entry not already present is folded
// in — mirroring AddEdge's "stored once, walked both ways" design.
func (c *Context) edgeset(id int32, out bool) (*EdgesetTraverser, error) {
	if !c.flat {
		v, ok := c.nodes.Find(id)
		if !ok {
			return nil, ErrNodeNotFound
		}
		n := v.(*node)
		primary, secondary := n.out, n.in
		if !out {
			primary, secondary = n.in, n.out
		}
		edges := make([]Edge, 0, len(primary))
		seen := make(map[int32]bool, len(primary))
		for _, eid := range primary {
			e, err := c.GetEdge(eid)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
			seen[eid] = true
		}
		if c.version == V3 {
			for _, eid := range secondary {
				if seen[eid] {
					continue
				}
				e, err := c.GetEdge(eid)
				if err != nil {
					return nil, err
				}
				if !e.Directed {
					edges = append(edges, e)
				}
			}
		}
		return &EdgesetTraverser{edges: edges}, nil
	}
	return c.flatEdgeset(id, out)
}

// flatNodeEdgesetOffsets decodes a V2/V3 node record's edgeset block
// into the raw edge-buffer offsets of its out- and in-edges.
func flatNodeEdgesetOffsets(c *Context, nodeRecOff int32) (outOffs, inOffs []int32) {
	nb, eb := c.FlatBuffers()
	order := c.endian
	edgesetOff := int32(order.Uint32(nb[nodeRecOff+8 : nodeRecOff+12]))
	outCount := int32(order.Uint32(eb[edgesetOff : edgesetOff+4]))
	cursor := edgesetOff + 4
	outOffs = make([]int32, outCount)
	for i := int32(0); i < outCount; i++ {
		outOffs[i] = int32(order.Uint32(eb[cursor+i*4 : cursor+i*4+4]))
	}
	cursor += outCount * 4
	inCount := int32(order.Uint32(eb[cursor : cursor+4]))
	cursor += 4
	inOffs = make([]int32, inCount)
	for i := int32(0); i < inCount; i++ {
		inOffs[i] = int32(order.Uint32(eb[cursor+i*4 : cursor+i*4+4]))
	}
	return outOffs, inOffs
}

func (c *Context) flatEdgeset(id int32, out bool) (*EdgesetTraverser, error) {
	nb, eb := c.FlatBuffers()
	stride := c.NodeStride()
	order := c.endian
	for off := int32(0); off < int32(len(nb)); off += stride {
		if int32(order.Uint32(nb[off:off+4])) != id {
			continue
		}
		status := NodeStatus(order.Uint32(nb[off+4 : off+8]))
		if status == StatusAlone {
			return &EdgesetTraverser{}, nil
		}
		if c.version == V1 {
			return c.flatEdgesetV1(off, out)
		}

		outOffs, inOffs := flatNodeEdgesetOffsets(c, off)
		primary, secondary := outOffs, inOffs
		if !out {
			primary, secondary = inOffs, outOffs
		}

		recStride := c.EdgeStride()
		edges := make([]Edge, 0, len(primary))
		seen := make(map[int32]bool, len(primary))
		for _, eoff := range primary {
			rec := eb[eoff : eoff+recStride]
			edges = append(edges, decodeFlatEdgeV2(c, rec))
			seen[eoff] = true
		}
		if c.version == V3 {
			for _, eoff := range secondary {
				if seen[eoff] {
					continue
				}
				rec := eb[eoff : eoff+recStride]
				e := decodeFlatEdgeV2(c, rec)
				if !e.Directed {
					edges = append(edges, e)
				}
			}
		}
		return &EdgesetTraverser{edges: edges}, nil
	}
	return nil, ErrNodeNotFound
}

func (c *Context) flatEdgesetV1(nodeRecOff int32, out bool) (*EdgesetTraverser, error) {
	if !out {
		return nil, ErrNotSupported
	}
	nb, eb := c.FlatBuffers()
	order := c.endian
	edgesetOff := int32(order.Uint32(nb[nodeRecOff+8 : nodeRecOff+12]))
	count := int32(order.Uint32(eb[edgesetOff : edgesetOff+4]))
	cursor := edgesetOff + 4
	recStride := c.EdgeStride()
	edges := make([]Edge, 0, count)
	for i := int32(0); i < count; i++ {
		rec := eb[cursor+i*recStride : cursor+i*recStride+recStride]
		edges = append(edges, decodeFlatEdgeV1(c, rec))
	}
	return &EdgesetTraverser{edges: edges}, nil
}

// First returns the first edge in the set, if any.
func (t *EdgesetTraverser) First() (Edge, bool) {
	t.idx = 0
	return t.Next()
}

// Next returns the next edge in the set, or false when exhausted.
func (t *EdgesetTraverser) Next() (Edge, bool) {
	if t.idx >= len(t.edges) {
		return Edge{}, false
	}
	e := t.edges[t.idx]
	t.idx++
	return e, true
}

// Len reports how many edges remain, including the one Next would
// return next.
func (t *EdgesetTraverser) Len() int { return len(t.edges) - t.idx }
