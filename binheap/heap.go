package binheap

import "errors"

// ErrOutOfMemory mirrors avltree.ErrOutOfMemory: it names the
// allocation-failure case, and no operation in this package returns it.
var ErrOutOfMemory = errors.New("binheap: out of memory")

// Order selects min-heap or max-heap extraction order.
type Order int

const (
	// MinFirst extracts the item with the smallest Key first.
	MinFirst Order = iota
	// MaxFirst extracts the item with the largest Key first.
	MaxFirst
)

// Item is one entry in the heap: a signed priority, an opaque tag byte
// for the caller to distinguish item kinds, and a value that is either a
// pointer or an integer squeezed into the interface.
type Item struct {
	Key   int64
	Tag   byte
	Value interface{}
}

// Heap is an array-backed complete binary tree priority queue. The zero
// value is not ready to use; construct with New.
type Heap struct {
	order byte
	items []Item
}

// New returns an empty Heap ordered per order.
func New(order Order) *Heap {
	return &Heap{order: byte(order)}
}

// Len returns the number of items currently queued.
func (h *Heap) Len() int { return len(h.items) }

func (h *Heap) less(i, j int) bool {
	if h.order == byte(MinFirst) {
		return h.items[i].Key < h.items[j].Key
	}
	return h.items[i].Key > h.items[j].Key
}

func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push inserts item, growing the backing array by its usual slice growth
// increment. Complexity: O(log n).
func (h *Heap) Push(item Item) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// Pop removes and returns the top item (minimum or maximum Key depending
// on Order). ok is false if the heap is empty. Complexity: O(log n).
func (h *Heap) Pop() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top, true
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Peek returns the top item without removing it.
func (h *Heap) Peek() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}
	return h.items[0], true
}
