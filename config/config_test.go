package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dglath/core"
)

const sampleYAML = `
version: 3
node_attr_size: 4
edge_attr_size: 8
family: 7
opaque: [1, 2, 3]
cost_prioritize: true
`

func TestLoadDecodesFields(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, int32(3), cfg.Version)
	require.Equal(t, int32(4), cfg.NodeAttrSize)
	require.Equal(t, int32(8), cfg.EdgeAttrSize)
	require.Equal(t, uint32(7), cfg.Family)
	require.Equal(t, []int32{1, 2, 3}, cfg.Opaque)
	require.True(t, cfg.CostPrioritize)
}

func TestLoadAppliesOptionsAfterDecode(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleYAML), WithVersion(2), WithCostPrioritize(false))
	require.NoError(t, err)
	require.Equal(t, int32(2), cfg.Version)
	require.False(t, cfg.CostPrioritize)
}

func TestInitializeBuildsMatchingContext(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	g, err := cfg.Initialize()
	require.NoError(t, err)
	require.Equal(t, core.V3, g.Version())
	require.Equal(t, uint32(7), g.Family())
	require.Equal(t, int32(1), g.Opaque()[0])
}
