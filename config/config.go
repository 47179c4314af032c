// File: config.go
// Role: GraphConfig, a YAML-decodable description of the Initialize
// parameters for a fixture or example graph, plus the functional
// options that let a caller override individual fields after decoding.
//
// Mirrors the teacher's builder.Config/Option shape, but sources its
// initial values from a YAML document instead of only from functional
// options, for golden fixtures and examples that want to declare a
// graph's shape data-first.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dglath/core"
)

// GraphConfig is the YAML-decodable description of a graph's
// construction parameters.
//
//	version: 3
//	node_attr_size: 4
//	edge_attr_size: 4
//	family: 7
//	opaque: [1, 2, 3]
//	cost_prioritize: false
type GraphConfig struct {
	Version        int32    `yaml:"version"`
	NodeAttrSize   int32    `yaml:"node_attr_size"`
	EdgeAttrSize   int32    `yaml:"edge_attr_size"`
	Family         uint32   `yaml:"family"`
	Opaque         []int32  `yaml:"opaque"`
	CostPrioritize bool     `yaml:"cost_prioritize"`
}

// Option customizes a GraphConfig after it has been decoded, mirroring
// the teacher's functional-options convention for everything else this
// repo configures.
type Option func(*GraphConfig)

// WithVersion overrides the decoded graph version.
func WithVersion(v int32) Option {
	return func(c *GraphConfig) { c.Version = v }
}

// WithAttrSizes overrides the decoded node and edge attribute sizes.
func WithAttrSizes(nodeAttrSize, edgeAttrSize int32) Option {
	return func(c *GraphConfig) {
		c.NodeAttrSize = nodeAttrSize
		c.EdgeAttrSize = edgeAttrSize
	}
}

// WithCostPrioritize overrides the decoded cost-prioritize flag.
func WithCostPrioritize(on bool) Option {
	return func(c *GraphConfig) { c.CostPrioritize = on }
}

// Load decodes a GraphConfig from r, applying opts in order afterward.
func Load(r io.Reader, opts ...Option) (*GraphConfig, error) {
	var cfg GraphConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg, nil
}

// LoadFile opens path and decodes a GraphConfig from it.
func LoadFile(path string, opts ...Option) (*GraphConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Initialize builds a *core.Context from the decoded configuration.
func (c *GraphConfig) Initialize() (*core.Context, error) {
	opaque, err := opaqueBlockFrom(c.Opaque)
	if err != nil {
		return nil, err
	}

	coreOpts := []core.Option{core.WithFamily(c.Family)}
	if c.CostPrioritize {
		coreOpts = append(coreOpts, core.WithCostPrioritize())
	}
	return core.Initialize(core.Version(c.Version), c.NodeAttrSize, c.EdgeAttrSize, opaque, coreOpts...)
}

func opaqueBlockFrom(words []int32) (core.OpaqueBlock, error) {
	var block core.OpaqueBlock
	if len(words) > len(block) {
		return block, fmt.Errorf("config: opaque block has %d words, max %d", len(words), len(block))
	}
	copy(block[:], words)
	return block, nil
}
