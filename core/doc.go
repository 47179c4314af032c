// Package core provides the in-memory directed-graph engine: a dual
// representation Context that holds either a mutable tree state (AVL
// node and edge maps, built incrementally via AddNode/AddEdge) or a
// flat state (contiguous node and edge byte buffers, produced by
// Flatten and consumed read-only until Unflatten rebuilds the trees).
//
// A Context is created with Initialize, which fixes its Version (V1,
// V2, or V3), fixed-size node/edge attribute widths, and an opaque
// settings block the caller owns. Node and edge identifiers are signed
// 32-bit integers chosen by the caller; this package never generates
// ids itself.
//
// Three versions are supported:
//
//   - V1: directed only, no in-edgeset, no central edge map, edges
//     embedded inline in their head node's out-edgeset. DelNode and
//     DelEdge return ErrNotSupported.
//   - V2: directed, in- and out-edgesets per node, a central edge map,
//     per-edge deletion, optional cost prioritization.
//   - V3: same storage as V2; an edge without FlagDirected is stored
//     once but traversers also follow it from its tail (undirected).
//
// Mutation (AddNode, AddEdge, DelNode, DelEdge, GetNode, GetEdge) is
// only valid in tree state; Flatten transitions to flat state for
// serialization and read-mostly traversal, Unflatten transitions back.
// Traversers (NodeTraverser, EdgeTraverser, EdgesetTraverser) work in
// either state.
//
// This package has no concurrency of its own: a Context is not safe
// for concurrent use without external synchronization, matching the
// single-threaded mutation model the format was designed around.
package core
