// File: types.go
// Role: Sentinel errors and the Clip callback shared by DepthSpanning,
// DepthComponents, and MinimumSpanning.
package spanning

import (
	"errors"

	"github.com/katalvlaran/dglath/core"
)

var (
	// ErrNilGraph is returned when either the source or output graph
	// argument is nil.
	ErrNilGraph = errors.New("spanning: nil graph")
	// ErrStartNotFound is returned when a named start node has no
	// record in the source graph.
	ErrStartNotFound = errors.New("spanning: start node not found")
)

// Clip inspects each candidate edge as a spanning algorithm considers
// extending the output graph across it, and may reject it outright or
// rewrite its effective cost. from is the endpoint already reached, to
// is the candidate's other endpoint.
type Clip interface {
	Accept(from int32, candidate core.Edge, to int32) (cost int32, ok bool)
}

// ClipFunc adapts a plain function to the Clip interface.
type ClipFunc func(from int32, candidate core.Edge, to int32) (int32, bool)

// Accept implements Clip.
func (f ClipFunc) Accept(from int32, candidate core.Edge, to int32) (int32, bool) {
	return f(from, candidate, to)
}

type acceptAll struct{}

func (acceptAll) Accept(_ int32, candidate core.Edge, _ int32) (int32, bool) {
	return candidate.Cost, true
}
