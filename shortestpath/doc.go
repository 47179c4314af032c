// Package shortestpath implements Dijkstra's algorithm over a
// core.Context, generalized from a one-shot all-pairs run into a
// persistent per-start Cache plus a caller-supplied Clip callback that
// can reject an edge or rewrite its effective cost on the fly.
//
// A Cache is scoped to one start node: its frontier heap, visited set,
// and predecessor/distance map are reused across repeated ShortestPath
// calls sharing that start, so querying several destinations from the
// same source does not reopen the heap from scratch. Passing a
// different start node resets the cache.
//
// Works against a Context in either tree or flat state: it reads
// edges exclusively through core.Context.OutEdges, which already
// folds a V3 graph's undirected in-edges into the outward view.
package shortestpath
