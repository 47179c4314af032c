// Package dglath is a directed graph library: in-memory construction,
// persistent on-disk serialization, and classical graph algorithms over
// sparse integer-keyed graphs with user-defined attribute payloads on
// nodes and edges.
//
// Everything lives under focused subpackages:
//
//	core/         — Context: tree-state and flat-state graph storage,
//	                mutation, flatten/unflatten, traversers
//	dglio/        — chunked and one-shot binary I/O for a flat Context
//	avltree/      — balanced int32-keyed tree backing core's stores
//	binheap/      — array-backed priority queue backing the algorithms
//	shortestpath/ — Dijkstra with a persistent per-start cache and a
//	                caller-supplied edge-clip callback
//	spanning/     — depth-first spanning trees, connected components,
//	                and Prim-style minimum spanning arborescence
//	config/       — YAML-sourced graph configuration for fixtures
//	internal/fixtures/ — procedural test-graph generators
//
// A graph starts in tree state, built up via Context.AddNode and
// Context.AddEdge; Flatten packs it into contiguous node and edge
// buffers suitable for dglio.WriteFull, and Unflatten rebuilds the tree
// from a flat Context read back with dglio.ReadFull.
package dglath
