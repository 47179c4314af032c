package binheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinHeapOrdersAscending(t *testing.T) {
	h := New(MinFirst)
	keys := []int64{5, 1, 9, -3, 4, 4, 0}
	for _, k := range keys {
		h.Push(Item{Key: k})
	}
	require.Equal(t, len(keys), h.Len())

	sorted := append([]int64(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var got []int64
	for h.Len() > 0 {
		item, ok := h.Pop()
		require.True(t, ok)
		got = append(got, item.Key)
	}
	require.Equal(t, sorted, got)
}

func TestMaxHeapOrdersDescending(t *testing.T) {
	h := New(MaxFirst)
	for _, k := range []int64{5, 1, 9, -3, 4} {
		h.Push(Item{Key: k})
	}
	var got []int64
	for h.Len() > 0 {
		item, _ := h.Pop()
		got = append(got, item.Key)
	}
	require.Equal(t, []int64{9, 5, 4, 1, -3}, got)
}

func TestPopEmpty(t *testing.T) {
	h := New(MinFirst)
	_, ok := h.Pop()
	require.False(t, ok)
	_, ok = h.Peek()
	require.False(t, ok)
}

func TestRandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := New(MinFirst)
	var want []int64
	for i := 0; i < 1000; i++ {
		k := int64(rng.Intn(10000) - 5000)
		want = append(want, k)
		h.Push(Item{Key: k, Value: i})
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for _, w := range want {
		item, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, w, item.Key)
	}
	_, ok := h.Pop()
	require.False(t, ok)
}
