// Package binheap provides an array-backed binary heap keyed by a signed
// 64-bit priority, generalizing the ad hoc container/heap adapters the
// rest of this ecosystem writes per call site (a nodePQ here, an edgePQ
// there). One Heap, parameterized by min/max order and carrying an
// arbitrary tag byte plus a pointer-or-int value, serves both Dijkstra's
// frontier and Prim's candidate-edge queue.
package binheap
