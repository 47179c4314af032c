package spanning

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dglath/core"
)

func newOut(t *testing.T) (*core.Context, error) {
	return core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
}

func TestDepthSpanningBuildsTreeFromDirectedChain(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1, 10, nil, core.FlagDirected))
	require.NoError(t, g.AddEdge(2, 3, 1, 11, nil, core.FlagDirected))
	require.NoError(t, g.AddEdge(1, 3, 9, 12, nil, core.FlagDirected))

	out, err := newOut(t)
	require.NoError(t, err)
	require.NoError(t, DepthSpanning(g, out, 1, nil, nil))

	// A spanning tree over 3 nodes has exactly 2 edges; node 3 is
	// reached directly from 1 via edge 12 before the stack pops down to
	// edge 11, so edge 11 never fires (its far endpoint is already
	// visited by the time it is considered).
	require.Equal(t, 2, out.EdgeCount())
	_, err = out.GetEdge(10)
	require.NoError(t, err)
	_, err = out.GetEdge(12)
	require.NoError(t, err)
	_, err = out.GetEdge(11)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestDepthSpanningClipRejectsEdge(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1, 10, nil, core.FlagDirected))

	clip := ClipFunc(func(_ int32, candidate core.Edge, _ int32) (int32, bool) {
		return 0, candidate.ID != 10
	})

	out, err := newOut(t)
	require.NoError(t, err)
	require.NoError(t, DepthSpanning(g, out, 1, clip, nil))
	require.Equal(t, 0, out.EdgeCount())
}

func TestDepthComponentsThreeDisjointPairs(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1, 100, nil, core.FlagDirected))
	require.NoError(t, g.AddEdge(3, 4, 1, 101, nil, core.FlagDirected))
	require.NoError(t, g.AddEdge(5, 6, 1, 102, nil, core.FlagDirected))

	components, err := DepthComponents(g, func() (*core.Context, error) {
		return core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	}, 10, nil)
	require.NoError(t, err)
	require.Len(t, components, 3)

	for _, c := range components {
		require.Equal(t, 1, c.EdgeCount())
	}
}

func TestDepthComponentsRespectsMaxComponents(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1, 100, nil, core.FlagDirected))
	require.NoError(t, g.AddEdge(3, 4, 1, 101, nil, core.FlagDirected))

	components, err := DepthComponents(g, func() (*core.Context, error) {
		return core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	}, 1, nil)
	require.NoError(t, err)
	require.Len(t, components, 1)
}

func TestMinimumSpanningPrefersCheaperEdges(t *testing.T) {
	g, err := core.Initialize(core.V3, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 5, 10, nil, 0))
	require.NoError(t, g.AddEdge(2, 3, 1, 11, nil, 0))
	require.NoError(t, g.AddEdge(1, 3, 9, 12, nil, 0))

	out, err := core.Initialize(core.V3, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, MinimumSpanning(g, out, 1, nil))

	require.Equal(t, 2, out.EdgeCount())
	_, err = out.GetEdge(12)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.Equal(t, int64(6), out.AccumulatedCost())
}
