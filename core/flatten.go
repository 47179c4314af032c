// File: flatten.go
// Role: Transition a tree-state Context into flat state: contiguous
// node and edge buffers, written in the Context's recorded byte order
// (host order unless SetEndianness changed it), usable both for read-only
// algorithmic queries and, unmodified, as the on-disk file format.
//
// The transform runs in two passes over the node set, in ascending id
// order throughout so the result is deterministic:
//
//  1. Build the node buffer. For V2/V3, edge records are written to
//     the edge buffer first, in ascending edge-id order, recording
//     each edge id's byte offset. Then, per node, a combined
//     out-edgeset+in-edgeset block is appended to the edge buffer
//     (V1: the out-block holds full inline edge records; V2/V3: both
//     blocks hold placeholder words, one per referenced edge id) and
//     the node record — carrying the offset of that block — is
//     appended to the node buffer.
//  2. Patch placeholders. Walk the node buffer again; for V2/V3,
//     resolve every edgeset-block word from an edge id into its
//     edge-buffer byte offset. Then, walking only the out-edgeset of
//     each node (never the in-edgeset, so every edge is patched
//     exactly once), resolve that edge record's head/tail fields from
//     node ids into node-buffer byte offsets. V1 does the same head
//     and tail patch directly on its inline records.
package core

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/dglath/avltree"
)

// Flatten transitions the Context from tree state to flat state,
// destroying the AVL node and edge maps. Returns ErrBadOnFlatGraph if
// already flat.
func (c *Context) Flatten() error {
	if c.flat {
		return ErrBadOnFlatGraph
	}

	nodeOffsets := make(map[int32]int32, c.nodeCount)
	edgeOffsets := make(map[int32]int32, c.edgeCount)

	var edgeBuf bytes.Buffer
	var nodeBuf bytes.Buffer

	if c.version != V1 {
		var writeErr error
		c.edges.InOrder(func(id int32, v interface{}) bool {
			e := v.(*edge)
			off := int32(edgeBuf.Len())
			edgeOffsets[id] = off
			if err := c.writeEdgeRecordV2(&edgeBuf, e, e.head, e.tail); err != nil {
				writeErr = err
				return false
			}
			return true
		})
		if writeErr != nil {
			return writeErr
		}
	}

	// Every node record has the same fixed stride, so each node's future
	// node-buffer offset is known before any bytes are written, just by
	// its rank in ascending id order.
	stride := c.NodeStride()
	i := int32(0)
	c.nodes.InOrder(func(id int32, v interface{}) bool {
		nodeOffsets[id] = i * stride
		i++
		return true
	})

	var buildErr error
	c.nodes.InOrder(func(id int32, v interface{}) bool {
		n := v.(*node)
		edgesetOffset := int32(0)
		if n.status != StatusAlone {
			edgesetOffset = int32(edgeBuf.Len())
			if c.version == V1 {
				if err := writeWord(&edgeBuf, c.endian, int32(len(n.out))); err != nil {
					buildErr = err
					return false
				}
				for _, eid := range n.out {
					ev, _ := c.edges.Find(eid)
					e := ev.(*edge)
					if err := c.writeEdgeRecordV1(&edgeBuf, e, e.head, e.tail); err != nil {
						buildErr = err
						return false
					}
				}
			} else {
				if err := writeWord(&edgeBuf, c.endian, int32(len(n.out))); err != nil {
					buildErr = err
					return false
				}
				for _, eid := range n.out {
					if err := writeWord(&edgeBuf, c.endian, eid); err != nil {
						buildErr = err
						return false
					}
				}
				if err := writeWord(&edgeBuf, c.endian, int32(len(n.in))); err != nil {
					buildErr = err
					return false
				}
				for _, eid := range n.in {
					if err := writeWord(&edgeBuf, c.endian, eid); err != nil {
						buildErr = err
						return false
					}
				}
			}
		}
		if err := c.writeNodeRecord(&nodeBuf, n, edgesetOffset); err != nil {
			buildErr = err
			return false
		}
		return true
	})
	if buildErr != nil {
		return buildErr
	}

	nodeBytes := nodeBuf.Bytes()
	edgeBytes := edgeBuf.Bytes()

	if c.version == V1 {
		if err := c.patchInlineV1(nodeBytes, edgeBytes, nodeOffsets); err != nil {
			return err
		}
	} else {
		if err := c.resolveEdgesetPlaceholders(nodeBytes, edgeBytes, edgeOffsets); err != nil {
			return err
		}
		if err := c.patchHeadTailV2(nodeBytes, edgeBytes, nodeOffsets); err != nil {
			return err
		}
	}

	c.flatNodes = nodeBytes
	c.flatEdges = edgeBytes
	c.nodes = avltree.Tree{}
	c.edges = avltree.Tree{}
	c.costOrder = nil
	c.flat = true
	c.log.Debug().Int("nodes", int(c.nodeCount)).Int("edges", int(c.edgeCount)).Msg("graph flattened")
	return nil
}

// patchInlineV1 rewrites each inline edge record's head/tail words
// (currently node ids) into node-buffer byte offsets.
func (c *Context) patchInlineV1(nodeBytes, edgeBytes []byte, nodeOffsets map[int32]int32) error {
	stride := c.NodeStride()
	for off := int32(0); off < int32(len(nodeBytes)); off += stride {
		status := NodeStatus(c.endian.Uint32(nodeBytes[off+4 : off+8]))
		if status == StatusAlone {
			continue
		}
		edgesetOff := int32(c.endian.Uint32(nodeBytes[off+8 : off+12]))
		count := int32(c.endian.Uint32(edgeBytes[edgesetOff : edgesetOff+4]))
		recStride := edgeStride(V1, c.edgeAttrSize)
		base := edgesetOff + 4
		for i := int32(0); i < count; i++ {
			rec := base + i*recStride
			tailID := int32(c.endian.Uint32(edgeBytes[rec+4 : rec+8]))
			tailOff, ok := nodeOffsets[tailID]
			if !ok {
				return fmt.Errorf("%w: edge tail %d", ErrTailNodeNotFound, tailID)
			}
			c.endian.PutUint32(edgeBytes[rec:rec+4], uint32(off))
			c.endian.PutUint32(edgeBytes[rec+4:rec+8], uint32(tailOff))
		}
	}
	return nil
}

// resolveEdgesetPlaceholders rewrites every out/in edgeset entry from
// a raw edge id into the edge record's byte offset.
func (c *Context) resolveEdgesetPlaceholders(nodeBytes, edgeBytes []byte, edgeOffsets map[int32]int32) error {
	stride := c.NodeStride()
	for off := int32(0); off < int32(len(nodeBytes)); off += stride {
		status := NodeStatus(c.endian.Uint32(nodeBytes[off+4 : off+8]))
		if status == StatusAlone {
			continue
		}
		edgesetOff := int32(c.endian.Uint32(nodeBytes[off+8 : off+12]))
		cursor := edgesetOff
		outCount := int32(c.endian.Uint32(edgeBytes[cursor : cursor+4]))
		cursor += 4
		for i := int32(0); i < outCount; i++ {
			p := cursor + i*4
			eid := int32(c.endian.Uint32(edgeBytes[p : p+4]))
			eoff, ok := edgeOffsets[eid]
			if !ok {
				return fmt.Errorf("%w: edge id %d", ErrUnexpectedNullPointer, eid)
			}
			c.endian.PutUint32(edgeBytes[p:p+4], uint32(eoff))
		}
		cursor += outCount * 4
		inCount := int32(c.endian.Uint32(edgeBytes[cursor : cursor+4]))
		cursor += 4
		for i := int32(0); i < inCount; i++ {
			p := cursor + i*4
			eid := int32(c.endian.Uint32(edgeBytes[p : p+4]))
			eoff, ok := edgeOffsets[eid]
			if !ok {
				return fmt.Errorf("%w: edge id %d", ErrUnexpectedNullPointer, eid)
			}
			c.endian.PutUint32(edgeBytes[p:p+4], uint32(eoff))
		}
	}
	return nil
}

// patchHeadTailV2 walks only each node's out-edgeset (now holding edge
// offsets) and rewrites the referenced edge record's head/tail fields
// from node ids into node-buffer offsets, firing exactly once per edge.
func (c *Context) patchHeadTailV2(nodeBytes, edgeBytes []byte, nodeOffsets map[int32]int32) error {
	stride := c.NodeStride()
	recStride := edgeStride(V2, c.edgeAttrSize)
	for off := int32(0); off < int32(len(nodeBytes)); off += stride {
		status := NodeStatus(c.endian.Uint32(nodeBytes[off+4 : off+8]))
		if status == StatusAlone {
			continue
		}
		edgesetOff := int32(c.endian.Uint32(nodeBytes[off+8 : off+12]))
		outCount := int32(c.endian.Uint32(edgeBytes[edgesetOff : edgesetOff+4]))
		base := edgesetOff + 4
		for i := int32(0); i < outCount; i++ {
			eoff := int32(c.endian.Uint32(edgeBytes[base+i*4 : base+i*4+4]))
			rec := edgeBytes[eoff : eoff+recStride]
			headID := int32(c.endian.Uint32(rec[0:4]))
			tailID := int32(c.endian.Uint32(rec[4:8]))
			headOff, ok := nodeOffsets[headID]
			if !ok {
				return fmt.Errorf("%w: edge head %d", ErrHeadNodeNotFound, headID)
			}
			tailOff, ok := nodeOffsets[tailID]
			if !ok {
				return fmt.Errorf("%w: edge tail %d", ErrTailNodeNotFound, tailID)
			}
			c.endian.PutUint32(rec[0:4], uint32(headOff))
			c.endian.PutUint32(rec[4:8], uint32(tailOff))
		}
	}
	return nil
}

func (c *Context) writeNodeRecord(buf *bytes.Buffer, n *node, edgesetOffset int32) error {
	if err := writeWord(buf, c.endian, n.id); err != nil {
		return err
	}
	if err := writeWord(buf, c.endian, int32(n.status)); err != nil {
		return err
	}
	if err := writeWord(buf, c.endian, edgesetOffset); err != nil {
		return err
	}
	buf.Write(padAttr(n.attr, c.nodeAttrSize))
	return nil
}

func (c *Context) writeEdgeRecordV1(buf *bytes.Buffer, e *edge, head, tail int32) error {
	for _, w := range [...]int32{head, tail, e.cost, e.id} {
		if err := writeWord(buf, c.endian, w); err != nil {
			return err
		}
	}
	buf.Write(padAttr(e.attr, c.edgeAttrSize))
	return nil
}

func (c *Context) writeEdgeRecordV2(buf *bytes.Buffer, e *edge, head, tail int32) error {
	for _, w := range [...]int32{head, tail, int32(e.status), e.cost, e.id} {
		if err := writeWord(buf, c.endian, w); err != nil {
			return err
		}
	}
	buf.Write(padAttr(e.attr, c.edgeAttrSize))
	return nil
}

func writeWord(buf *bytes.Buffer, order binary.ByteOrder, v int32) error {
	var tmp [4]byte
	order.PutUint32(tmp[:], uint32(v))
	_, err := buf.Write(tmp[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func padAttr(attr []byte, size int32) []byte {
	out := make([]byte, size)
	copy(out, attr)
	return out
}
