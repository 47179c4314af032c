// File: mutation.go
// Role: Tree-state graph construction and lookup: AddNode, DelNode,
// AddEdge, DelEdge, GetNode, GetEdge. Every function here requires the
// Context to be in tree state (ErrBadOnFlatGraph otherwise).
package core

import "fmt"

func (c *Context) requireTree() error {
	if c.flat {
		return ErrBadOnFlatGraph
	}
	return nil
}

// AddNode inserts an isolated node with the given id and attribute
// bytes (copied; must be NodeAttrSize() long, or nil for a zero
// attribute). Returns ErrNodeAlreadyExist if id is already present.
//
// id must be non-negative: negative ids are a reserved internal range
// (see AddEdge's FlagStrongConnect), not a caller-facing sentinel, so
// there is no separate negative-id collision hazard to guard against.
func (c *Context) AddNode(id int32, attr []byte) error {
	if err := c.requireTree(); err != nil {
		return err
	}
	if id < 0 {
		return fmt.Errorf("%w: negative node id %d", ErrBadArgument, id)
	}
	if _, ok := c.nodes.Find(id); ok {
		return fmt.Errorf("%w: node %d", ErrNodeAlreadyExist, id)
	}
	n := &node{id: id, status: StatusAlone, attr: copyAttr(attr, c.nodeAttrSize)}
	c.nodes.Probe(id).Value = n
	c.nodeCount++
	return nil
}

// DelNode removes a node, first removing every incident edge as DelEdge
// does. V1 never supports deletion.
func (c *Context) DelNode(id int32) error {
	if err := c.requireTree(); err != nil {
		return err
	}
	if c.version == V1 {
		return fmt.Errorf("%w: DelNode on V1", ErrNotSupported)
	}
	v, ok := c.nodes.Find(id)
	if !ok {
		return fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}
	n := v.(*node)
	incident := append(append([]int32(nil), n.out...), n.in...)
	for _, eid := range incident {
		if _, ok := c.edges.Find(eid); !ok {
			continue // a self-loop is listed in both edgesets
		}
		if err := c.DelEdge(eid); err != nil {
			return err
		}
	}
	c.nodes.Delete(id)
	c.nodeCount--
	return nil
}

// GetNode returns a snapshot of the node with the given id.
func (c *Context) GetNode(id int32) (Node, error) {
	if err := c.requireTree(); err != nil {
		return Node{}, err
	}
	v, ok := c.nodes.Find(id)
	if !ok {
		return Node{}, fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}
	n := v.(*node)
	return Node{ID: n.id, Status: n.status, Attr: append([]byte(nil), n.attr...)}, nil
}

// AddEdge inserts an edge from head to tail with the given cost, id,
// and attribute bytes, creating either endpoint node (as StatusAlone
// promoted to HEAD/TAIL) if it does not already exist. flags may
// combine FlagDirected and FlagStrongConnect.
//
// head, tail, and id must be non-negative; negative ids are reserved
// for the FlagStrongConnect reverse-arc scheme below, never accepted
// from a caller.
//
// Storage is identical across versions: the edge is referenced once,
// from head's out-edgeset and (V2/V3) tail's in-edgeset. V3's
// "undirected by default" behavior lives in traversal, not storage —
// an edge without FlagDirected is one a traverser also follows from
// its tail, matching its single stored record; duplicating the
// reference into both endpoints' out-edgesets would make the same
// edge id surface twice when walking out-edgesets, corrupting
// Flatten's one-patch-per-edge invariant.
func (c *Context) AddEdge(head, tail, cost, id int32, attr []byte, flags EdgeFlags) error {
	if head < 0 || tail < 0 || id < 0 {
		return fmt.Errorf("%w: negative head/tail/id", ErrBadArgument)
	}
	return c.addEdge(head, tail, cost, id, attr, flags)
}

// addEdge is AddEdge's implementation, reused by the FlagStrongConnect
// reverse-arc recursion below with a caller-unreachable negative id.
func (c *Context) addEdge(head, tail, cost, id int32, attr []byte, flags EdgeFlags) error {
	if err := c.requireTree(); err != nil {
		return err
	}
	if _, ok := c.edges.Find(id); ok {
		return fmt.Errorf("%w: edge %d", ErrEdgeAlreadyExist, id)
	}
	hn := c.ensureNode(head)
	tn := c.ensureNode(tail)

	directed := flags&FlagDirected != 0

	e := &edge{id: id, status: 0, head: head, tail: tail, cost: cost, attr: copyAttr(attr, c.edgeAttrSize)}
	if directed {
		e.status |= FlagDirected
	}
	c.edges.Probe(id).Value = e
	c.edgeCount++
	c.accumCost += int64(cost)

	hn.out = append(hn.out, id)
	hn.status = promote(hn.status, StatusHead)
	tn.status = promote(tn.status, StatusTail)
	if c.version != V1 {
		tn.in = append(tn.in, id)
	}

	if c.options&OptPrioritizeCost != 0 {
		c.insertCostOrder(id, cost)
	}

	if flags&FlagStrongConnect != 0 && head != tail {
		// The reverse arc gets id -id-1, a range AddEdge's public
		// validation refuses to accept from a caller, so it can never
		// collide with a real edge id.
		return c.addEdge(tail, head, cost, -id-1, attr, flags&^FlagStrongConnect)
	}
	return nil
}

func (c *Context) ensureNode(id int32) *node {
	if v, ok := c.nodes.Find(id); ok {
		return v.(*node)
	}
	n := &node{id: id, status: StatusAlone}
	c.nodes.Probe(id).Value = n
	c.nodeCount++
	return n
}

func promote(cur, add NodeStatus) NodeStatus { return (cur &^ StatusAlone) | add }

// DelEdge removes the edge with the given id. Not supported on V1.
func (c *Context) DelEdge(id int32) error {
	if err := c.requireTree(); err != nil {
		return err
	}
	if c.version == V1 {
		return fmt.Errorf("%w: DelEdge on V1", ErrNotSupported)
	}
	v, ok := c.edges.Find(id)
	if !ok {
		return fmt.Errorf("%w: edge %d", ErrEdgeNotFound, id)
	}
	e := v.(*edge)
	c.edges.Delete(id)
	c.edgeCount--
	c.accumCost -= int64(e.cost)
	if c.options&OptPrioritizeCost != 0 {
		c.removeCostOrder(id)
	}

	if hv, ok := c.nodes.Find(e.head); ok {
		hn := hv.(*node)
		hn.out = removeID(hn.out, id)
		if len(hn.out) == 0 && len(hn.in) == 0 {
			hn.status = StatusAlone
		}
	}
	if tv, ok := c.nodes.Find(e.tail); ok {
		tn := tv.(*node)
		tn.in = removeID(tn.in, id)
		if len(tn.out) == 0 && len(tn.in) == 0 {
			tn.status = StatusAlone
		}
	}
	return nil
}

// GetEdge returns a snapshot of the edge with the given id.
func (c *Context) GetEdge(id int32) (Edge, error) {
	if err := c.requireTree(); err != nil {
		return Edge{}, err
	}
	v, ok := c.edges.Find(id)
	if !ok {
		return Edge{}, fmt.Errorf("%w: edge %d", ErrEdgeNotFound, id)
	}
	e := v.(*edge)
	return Edge{
		ID: e.id, Head: e.head, Tail: e.tail, Cost: e.cost,
		Directed: e.status&FlagDirected != 0,
		Attr:     append([]byte(nil), e.attr...),
	}, nil
}

func copyAttr(attr []byte, size int32) []byte {
	out := make([]byte, size)
	copy(out, attr)
	return out
}

func removeID(s []int32, id int32) []int32 {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
