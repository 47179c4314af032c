package avltree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbeFindDelete(t *testing.T) {
	var tree Tree

	n := tree.Probe(10)
	n.Value = "ten"
	require.Equal(t, 1, tree.Len())

	v, ok := tree.Find(10)
	require.True(t, ok)
	require.Equal(t, "ten", v)

	// Probing an existing key must not create a duplicate entry.
	n2 := tree.Probe(10)
	require.Equal(t, n, n2)
	require.Equal(t, 1, tree.Len())

	_, ok = tree.Find(99)
	require.False(t, ok)

	val, ok := tree.Delete(10)
	require.True(t, ok)
	require.Equal(t, "ten", val)
	require.Equal(t, 0, tree.Len())

	_, ok = tree.Delete(10)
	require.False(t, ok)
}

func TestInOrderIsSorted(t *testing.T) {
	var tree Tree
	keys := []int32{5, 3, 8, 1, 4, 7, 9, -2, 0, 100}
	for _, k := range keys {
		tree.Probe(k).Value = k
	}

	var got []int32
	tree.InOrder(func(k int32, v interface{}) bool {
		require.Equal(t, k, v)
		got = append(got, k)
		return true
	})

	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
	require.Len(t, got, len(keys))
}

func TestTraverserFirstNext(t *testing.T) {
	var tree Tree
	for _, k := range []int32{3, 1, 4, 1, 5, 9, 2, 6} {
		tree.Probe(k)
	}

	tr := tree.NewTraverser()
	var got []int32
	for n := tr.First(); n != nil; n = tr.Next() {
		got = append(got, n.Key)
	}
	require.Len(t, got, tree.Len())
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
}

func TestTraverserFind(t *testing.T) {
	var tree Tree
	for _, k := range []int32{10, 20, 30} {
		tree.Probe(k).Value = k * 2
	}
	tr := tree.NewTraverser()
	n := tr.Find(20)
	require.NotNil(t, n)
	require.Equal(t, int32(40), n.Value)

	n = tr.Find(999)
	require.Nil(t, n)
}

// TestRandomizedAgainstMap stress-tests Probe/Delete/InOrder against a
// plain map as an oracle across many random insert/delete sequences,
// then checks sorted order and that every subtree is height-balanced.
func TestRandomizedAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var tree Tree
	oracle := make(map[int32]int)

	for i := 0; i < 2000; i++ {
		k := int32(rng.Intn(500) - 250)
		if rng.Intn(3) == 0 {
			if _, existed := oracle[k]; existed {
				delete(oracle, k)
				_, ok := tree.Delete(k)
				require.True(t, ok)
			}
			continue
		}
		oracle[k] = i
		tree.Probe(k).Value = i
	}

	require.Equal(t, len(oracle), tree.Len())
	var got []int32
	tree.InOrder(func(k int32, v interface{}) bool {
		require.Equal(t, oracle[k], v)
		got = append(got, k)
		return true
	})
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
	checkBalanced(t, &tree)
}

func checkBalanced(t *testing.T, tree *Tree) {
	t.Helper()
	var height func(n *Node) int
	height = func(n *Node) int {
		if n == nil {
			return 0
		}
		var lh, rh int
		if n.leftTag == tagChild {
			lh = height(n.left)
		}
		if n.rightTag == tagChild {
			rh = height(n.right)
		}
		diff := rh - lh
		require.GreaterOrEqual(t, diff, -1)
		require.LessOrEqual(t, diff, 1)
		if lh > rh {
			return lh + 1
		}
		return rh + 1
	}
	height(tree.root)
}
