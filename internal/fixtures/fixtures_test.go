package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dglath/core"
)

func TestGridNodeAndEdgeCounts(t *testing.T) {
	g, err := core.Initialize(core.V3, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, Grid(g, 3, 4, 1))

	require.Equal(t, 12, g.NodeCount())
	require.Equal(t, 2*3*4-3-4, g.EdgeCount()) // (rows-1)*cols + rows*(cols-1)
}

func TestPathAndCycle(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, Path(g, 5, 1))
	require.Equal(t, 4, g.EdgeCount())

	g2, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, Cycle(g2, 5, 1))
	require.Equal(t, 5, g2.EdgeCount())
}

func TestCompleteAndStar(t *testing.T) {
	g, err := core.Initialize(core.V2, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, Complete(g, 4, 1))
	require.Equal(t, 4*3, g.EdgeCount())

	g2, err := core.Initialize(core.V3, 0, 0, core.OpaqueBlock{})
	require.NoError(t, err)
	require.NoError(t, Star(g2, 6, 1))
	require.Equal(t, 6, g2.EdgeCount())
	out, err := g2.OutEdges(0)
	require.NoError(t, err)
	require.Equal(t, 6, out.Len())
}
