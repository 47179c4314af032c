// File: layout.go
// Role: Byte-layout arithmetic shared by flatten.go, unflatten.go, and
// the dglio package. Every record is a whole number of 4-byte words;
// offsets are always counted from the start of the node or edge
// buffer they live in, never from the start of the file.
package core

import "github.com/katalvlaran/dglath/avltree"

// Node record: id, status, edgeset-offset, then nodeAttrSize bytes of
// attribute, for every version.
const nodeHeaderWords = 3

// NodeStride returns the byte length of one node record.
func (c *Context) NodeStride() int32 { return nodeStride(c.nodeAttrSize) }

func nodeStride(attrSize int32) int32 { return (nodeHeaderWords)*4 + attrSize }

// Edge record: V1 stores head, tail, cost, id (4 words) inline inside
// its head node's out-edgeset; V2/V3 store head, tail, status, cost,
// id (5 words) once in the central edge buffer and reference it by
// offset from both edgesets.
const edgeHeaderWordsV1 = 4
const edgeHeaderWordsV2 = 5

// EdgeStride returns the byte length of one edge record for this
// Context's version.
func (c *Context) EdgeStride() int32 { return edgeStride(c.version, c.edgeAttrSize) }

func edgeStride(v Version, attrSize int32) int32 {
	if v == V1 {
		return edgeHeaderWordsV1*4 + attrSize
	}
	return edgeHeaderWordsV2*4 + attrSize
}

// FlatBuffers returns the current flat-state node and edge buffers.
// The returned slices alias internal storage and must not be retained
// across a subsequent Unflatten.
func (c *Context) FlatBuffers() ([]byte, []byte) { return c.flatNodes, c.flatEdges }

// SetFlatBuffers installs node and edge buffers produced by an
// external reader (dglio), putting the Context directly into flat
// state without going through Flatten. Buffers are taken by
// reference, not copied.
func (c *Context) SetFlatBuffers(nodeBuf, edgeBuf []byte, nodeCount, edgeCount int32) {
	c.flatNodes = nodeBuf
	c.flatEdges = edgeBuf
	c.nodeCount = nodeCount
	c.edgeCount = edgeCount
	c.flat = true
	c.nodes = avltree.Tree{}
	c.edges = avltree.Tree{}
}
