// File: unflatten.go
// Role: Rebuild tree state from flat buffers. Walks the node buffer
// once; for each HEAD node, re-adds every edge in its out-edgeset via
// AddEdge (which also reconstructs the tail node and its in-edgeset as
// a side effect), and for each ALONE node, re-adds it directly via
// AddNode. A TAIL-only node with no out-edges of its own is never
// visited directly — it is recreated purely as the tail endpoint of
// some other node's out-edge, exactly as flatten never gave it a
// reason to own an edgeset block beyond its in-edgeset.
//
// On any failure mid-walk, the FLAT flag and buffers are restored and
// any partially built tree is torn down, leaving the graph exactly as
// it was before Unflatten was called.
package core

import (
	"fmt"

	"github.com/katalvlaran/dglath/avltree"
)

// Unflatten transitions the Context from flat state back to tree
// state. Returns ErrBadOnTreeGraph if already in tree state.
func (c *Context) Unflatten() error {
	if !c.flat {
		return ErrBadOnTreeGraph
	}

	savedNodes, savedEdges := c.flatNodes, c.flatEdges
	savedNodeCount, savedEdgeCount, savedAccumCost := c.nodeCount, c.edgeCount, c.accumCost

	c.flat = false
	c.nodeCount = 0
	c.edgeCount = 0
	c.accumCost = 0

	if err := c.rebuildTree(savedNodes, savedEdges); err != nil {
		c.flat = true
		c.flatNodes, c.flatEdges = savedNodes, savedEdges
		c.nodeCount, c.edgeCount, c.accumCost = savedNodeCount, savedEdgeCount, savedAccumCost
		c.nodes = avltree.Tree{}
		c.edges = avltree.Tree{}
		c.costOrder = nil
		return err
	}

	c.flatNodes = nil
	c.flatEdges = nil
	c.log.Debug().Int("nodes", int(c.nodeCount)).Int("edges", int(c.edgeCount)).Msg("graph unflattened")
	return nil
}

func (c *Context) rebuildTree(nodeBytes, edgeBytes []byte) error {
	stride := c.NodeStride()
	recStride := edgeStride(c.version, c.edgeAttrSize)

	for off := int32(0); off < int32(len(nodeBytes)); off += stride {
		id := int32(c.endian.Uint32(nodeBytes[off : off+4]))
		status := NodeStatus(c.endian.Uint32(nodeBytes[off+4 : off+8]))
		attr := nodeBytes[off+12 : off+stride]

		if status == StatusAlone {
			if err := c.AddNode(id, attr); err != nil {
				return err
			}
			continue
		}
		if status&StatusHead == 0 {
			continue // pure sink, rebuilt as a side effect of its head's AddEdge
		}

		edgesetOff := int32(c.endian.Uint32(nodeBytes[off+8 : off+12]))
		var outCount, base int32
		if c.version == V1 {
			outCount = int32(c.endian.Uint32(edgeBytes[edgesetOff : edgesetOff+4]))
			base = edgesetOff + 4
			for i := int32(0); i < outCount; i++ {
				rec := edgeBytes[base+i*recStride : base+i*recStride+recStride]
				if err := c.addEdgeFromInlineRecord(id, rec, nodeBytes); err != nil {
					return err
				}
			}
			continue
		}

		outCount = int32(c.endian.Uint32(edgeBytes[edgesetOff : edgesetOff+4]))
		base = edgesetOff + 4
		for i := int32(0); i < outCount; i++ {
			eoff := int32(c.endian.Uint32(edgeBytes[base+i*4 : base+i*4+4]))
			rec := edgeBytes[eoff : eoff+recStride]
			if err := c.addEdgeFromOffsetRecord(id, rec, nodeBytes); err != nil {
				return err
			}
		}
	}
	return nil
}

// addEdgeFromInlineRecord decodes a V1 edge record whose head/tail
// fields are node-buffer offsets (resolved by Flatten) and re-adds it.
func (c *Context) addEdgeFromInlineRecord(headID int32, rec, nodeBytes []byte) error {
	tailOff := int32(c.endian.Uint32(rec[4:8]))
	if tailOff < 0 || int(tailOff)+4 > len(nodeBytes) {
		return fmt.Errorf("%w: tail offset %d", ErrTailNodeNotFound, tailOff)
	}
	tailID := int32(c.endian.Uint32(nodeBytes[tailOff : tailOff+4]))
	cost := int32(c.endian.Uint32(rec[8:12]))
	edgeID := int32(c.endian.Uint32(rec[12:16]))
	attr := rec[16:]
	return c.addEdge(headID, tailID, cost, edgeID, attr, 0)
}

// addEdgeFromOffsetRecord decodes a V2/V3 edge record whose head/tail
// fields are node-buffer offsets and re-adds it.
func (c *Context) addEdgeFromOffsetRecord(headID int32, rec, nodeBytes []byte) error {
	tailOff := int32(c.endian.Uint32(rec[4:8]))
	if tailOff < 0 || int(tailOff)+4 > len(nodeBytes) {
		return fmt.Errorf("%w: tail offset %d", ErrTailNodeNotFound, tailOff)
	}
	tailID := int32(c.endian.Uint32(nodeBytes[tailOff : tailOff+4]))
	status := EdgeFlags(c.endian.Uint32(rec[8:12]))
	cost := int32(c.endian.Uint32(rec[12:16]))
	edgeID := int32(c.endian.Uint32(rec[16:20]))
	attr := rec[20:]
	return c.addEdge(headID, tailID, cost, edgeID, attr, status&FlagDirected)
}
