// File: context.go
// Role: Context, the central graph handle: tree-state storage (AVL node
// and edge maps), flat-state storage (byte buffers), and the fields
// that travel with both — version, attribute sizes, opaque block,
// family tag, option bits, byte order, accumulated cost. Initialize is
// the only constructor; everything else mutates an existing Context.
package core

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/katalvlaran/dglath/avltree"
	"github.com/rs/zerolog"
)

// Context is a directed graph handle in either tree state (mutable,
// built via AddNode/AddEdge) or flat state (produced by Flatten,
// consumed read-only until Unflatten). The zero value is not usable;
// construct with Initialize.
type Context struct {
	version      Version
	nodeAttrSize int32
	edgeAttrSize int32
	opaque       OpaqueBlock
	family       uint32
	options      Options
	endian       binary.ByteOrder

	accumCost int64
	nodeCount int32
	edgeCount int32

	flat bool

	nodes avltree.Tree // id (int32) -> *node
	edges avltree.Tree // id (int32) -> *edge, used for all versions

	// costOrder holds edge ids sorted by (cost, id) when OptPrioritizeCost
	// is set, maintained by binary-search insertion rather than a heap:
	// entries are rarely removed and EdgeTraverser needs a stable full
	// scan order, not repeated extract-min.
	costOrder []int32

	flatNodes []byte
	flatEdges []byte

	log *zerolog.Logger
}

// Option configures a Context at Initialize time.
type Option func(*Context)

// WithFamily tags the graph with a caller-defined family identifier,
// round-tripped across Flatten/Unflatten but never interpreted here.
func WithFamily(family uint32) Option {
	return func(c *Context) { c.family = family }
}

// WithOptions sets the full Options bitset at once.
func WithOptions(opts Options) Option {
	return func(c *Context) { c.options = opts }
}

// WithCostPrioritize is shorthand for WithOptions(OptPrioritizeCost)
// combined with any previously set bits.
func WithCostPrioritize() Option {
	return func(c *Context) { c.options |= OptPrioritizeCost }
}

// WithLogger attaches a structured logger; nil (the default) makes
// every log call a silent no-op via zerolog.Nop().
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// Initialize constructs an empty tree-state Context. nodeAttrSize and
// edgeAttrSize are the fixed per-record attribute byte widths, rounded
// up to a multiple of 4; opaque is copied verbatim into the Context.
func Initialize(version Version, nodeAttrSize, edgeAttrSize int32, opaque OpaqueBlock, opts ...Option) (*Context, error) {
	switch version {
	case V1, V2, V3:
	default:
		return nil, fmt.Errorf("%w: version %d", ErrBadVersion, version)
	}
	if nodeAttrSize < 0 || edgeAttrSize < 0 {
		return nil, fmt.Errorf("%w: negative attribute size", ErrBadArgument)
	}
	nodeAttrSize = roundWord(nodeAttrSize)
	edgeAttrSize = roundWord(edgeAttrSize)

	nop := zerolog.Nop()
	c := &Context{
		version:      version,
		nodeAttrSize: nodeAttrSize,
		edgeAttrSize: edgeAttrSize,
		opaque:       opaque,
		endian:       HostByteOrder(),
		log:          &nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.Debug().
		Int32("version", int32(c.version)).
		Int32("node_attr_size", c.nodeAttrSize).
		Int32("edge_attr_size", c.edgeAttrSize).
		Msg("graph initialized")
	return c, nil
}

func roundWord(n int32) int32 {
	if n%4 == 0 {
		return n
	}
	return n + (4 - n%4)
}

// Version reports the graph's fixed version.
func (c *Context) Version() Version { return c.version }

// NodeAttrSize reports the fixed per-node attribute width in bytes.
func (c *Context) NodeAttrSize() int32 { return c.nodeAttrSize }

// EdgeAttrSize reports the fixed per-edge attribute width in bytes.
func (c *Context) EdgeAttrSize() int32 { return c.edgeAttrSize }

// Opaque returns the caller's 16-word settings block.
func (c *Context) Opaque() OpaqueBlock { return c.opaque }

// Family returns the caller-defined family tag.
func (c *Context) Family() uint32 { return c.family }

// SetFamily overwrites the family tag, e.g. after reading one back
// from a header during Unflatten.
func (c *Context) SetFamily(f uint32) { c.family = f }

// Options returns the current option bitset.
func (c *Context) Options() Options { return c.options }

// Endianness reports the byte order this Context's flat buffers (if
// any) are encoded in.
func (c *Context) Endianness() binary.ByteOrder { return c.endian }

// SetEndianness overrides the recorded byte order, used by a reader
// that has just decoded a header produced on a foreign-endian host.
func (c *Context) SetEndianness(order binary.ByteOrder) { c.endian = order }

// AccumulatedCost returns the running total of edge costs, maintained
// as edges are added and removed.
func (c *Context) AccumulatedCost() int64 { return c.accumCost }

// SetAccumulatedCost overwrites the running cost total, used by a
// reader restoring a Context straight into flat state from a decoded
// header rather than via Flatten.
func (c *Context) SetAccumulatedCost(cost int64) { c.accumCost = cost }

// IsFlat reports whether the Context is currently in flat state.
func (c *Context) IsFlat() bool { return c.flat }

// NodeCount returns the number of nodes, valid in either state.
func (c *Context) NodeCount() int { return int(c.nodeCount) }

// EdgeCount returns the number of edges, valid in either state.
func (c *Context) EdgeCount() int { return int(c.edgeCount) }

// Logger returns the Context's attached logger, never nil.
func (c *Context) Logger() *zerolog.Logger { return c.log }

// Counts returns the header's head/tail/alone node counts, derived by
// scanning every node rather than tracked incrementally: a node's
// status can flip between HEAD/TAIL/ALONE on every AddEdge/DelEdge, so
// a derived scan is simpler to keep correct than threading increment
// and decrement calls through every status transition.
func (c *Context) Counts() (head, tail, alone int32) {
	tr := c.NewNodeTraverser()
	for n, ok := tr.First(); ok; n, ok = tr.Next() {
		if n.Status&StatusHead != 0 {
			head++
		}
		if n.Status&StatusTail != 0 {
			tail++
		}
		if n.Status == StatusAlone {
			alone++
		}
	}
	return
}

// insertCostOrder inserts id at its sorted (cost, id) position using
// binary search, mirroring the original implementation's sorted
// cost-prioritizer array rather than a heap: entries are appended far
// more often than removed, and traversal needs one full ascending
// scan per call, not repeated extract-min.
func (c *Context) insertCostOrder(id int32, cost int32) {
	i := sort.Search(len(c.costOrder), func(i int) bool {
		other := c.mustEdge(c.costOrder[i])
		if other.cost != cost {
			return other.cost >= cost
		}
		return other.id >= id
	})
	c.costOrder = append(c.costOrder, 0)
	copy(c.costOrder[i+1:], c.costOrder[i:])
	c.costOrder[i] = id
}

func (c *Context) removeCostOrder(id int32) {
	for i, e := range c.costOrder {
		if e == id {
			c.costOrder = append(c.costOrder[:i], c.costOrder[i+1:]...)
			return
		}
	}
}

func (c *Context) mustEdge(id int32) *edge {
	v, ok := c.edges.Find(id)
	if !ok {
		panic("core: dangling edge id in cost index")
	}
	return v.(*edge)
}
