package shortestpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dglath/core"
)

func TestShortestPathTrianglePrefersCheaperTwoHopRoute(t *testing.T) {
	c, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(1, 2, 5, 10, nil, core.FlagDirected))
	require.NoError(t, c.AddEdge(2, 3, 5, 11, nil, core.FlagDirected))
	require.NoError(t, c.AddEdge(1, 3, 100, 12, nil, core.FlagDirected))

	report, err := ShortestPath(c, nil, 1, 3, nil)
	require.NoError(t, err)
	require.Equal(t, int64(10), report.TotalDistance)
	require.Len(t, report.Arcs, 2)
	require.Equal(t, int32(10), report.Arcs[0].ID)
	require.Equal(t, int32(11), report.Arcs[1].ID)
}

func TestShortestPathSameNode(t *testing.T) {
	c, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddNode(1, nil))

	report, err := ShortestPath(c, nil, 1, 1, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), report.TotalDistance)
	require.Empty(t, report.Arcs)
}

func TestShortestPathClipRejectionForcesDetour(t *testing.T) {
	c, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(1, 2, 1, 10, nil, core.FlagDirected)) // cheap direct edge, will be rejected
	require.NoError(t, c.AddEdge(1, 3, 4, 11, nil, core.FlagDirected))
	require.NoError(t, c.AddEdge(3, 2, 4, 12, nil, core.FlagDirected))

	clip := ClipFunc(func(_ *core.Edge, _ int32, candidate core.Edge, _ int64) (int64, bool) {
		if candidate.ID == 10 {
			return 0, false
		}
		return int64(candidate.Cost), true
	})

	report, err := ShortestPath(c, nil, 1, 2, clip)
	require.NoError(t, err)
	require.Equal(t, int64(8), report.TotalDistance)
	require.Equal(t, []int32{11, 12}, []int32{report.Arcs[0].ID, report.Arcs[1].ID})
}

func TestShortestPathUnreachableReportsErrorCodeZero(t *testing.T) {
	c, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddNode(1, nil))
	require.NoError(t, c.AddNode(2, nil))

	_, err = ShortestPath(c, nil, 1, 2, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnreachable)
	require.Equal(t, 0, core.ErrorCode(err))
}

func TestShortestPathUndirectedV3WithDirectedOverride(t *testing.T) {
	c, err := core.Initialize(core.V3, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(1, 2, 3, 10, nil, 0))                  // undirected, walkable either way
	require.NoError(t, c.AddEdge(3, 2, 3, 11, nil, core.FlagDirected))  // directed, only 3->2

	// 2 can reach 1 by walking the undirected edge backward, but not 3
	// (3->2 is directed and gives 2 no way back to 3).
	report, err := ShortestPath(c, nil, 2, 1, nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), report.TotalDistance)
	require.Equal(t, int32(10), report.Arcs[0].ID)

	_, err = ShortestPath(c, nil, 2, 3, nil)
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestShortestPathCacheReuseAcrossDestinations(t *testing.T) {
	c, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(1, 2, 1, 10, nil, core.FlagDirected))
	require.NoError(t, c.AddEdge(2, 3, 1, 11, nil, core.FlagDirected))
	require.NoError(t, c.AddEdge(3, 4, 1, 12, nil, core.FlagDirected))

	cache := NewCache()
	r1, err := ShortestPath(c, cache, 1, 3, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), r1.TotalDistance)

	// Destination 2 was already settled while reaching 3; this call must
	// be answered straight from the cache without draining the heap
	// further or reopening the search.
	before := cache.frontier.Len()
	r2, err := ShortestPath(c, cache, 1, 2, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), r2.TotalDistance)
	require.True(t, cache.frontier.Len() <= before)

	r3, err := ShortestPath(c, cache, 1, 4, nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), r3.TotalDistance)
}
