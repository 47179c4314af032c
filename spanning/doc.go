// Package spanning implements the depth-first spanning, connected
// components, and Prim-style minimum spanning arborescence algorithms
// shared by dglath's traversal layer.
//
// Each algorithm builds its result into a caller-supplied, already
// initialized *core.Context rather than returning a bespoke result
// type, so the output is itself a graph that can be flattened, walked,
// or fed back into another algorithm. All three read edges exclusively
// through core.Context.OutEdges, so a V3 graph's undirected edges are
// walked from either endpoint for free.
package spanning
