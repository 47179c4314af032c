// File: types.go
// Role: Sentinel errors, the Clip interface, and the Report value
// returned by a successful ShortestPath call.
package shortestpath

import (
	"errors"

	"github.com/katalvlaran/dglath/core"
)

// ErrUnreachable is returned when the destination cannot be reached
// from the start node under the supplied Clip. It is local to this
// package, not one of core's registered sentinels, so
// core.ErrorCode(ErrUnreachable) is 0 — "unreachable" is a negative
// result, not an internal failure.
var ErrUnreachable = errors.New("shortestpath: destination unreachable")

// Clip inspects each candidate edge as Dijkstra considers it, and may
// reject it outright or rewrite its effective cost (turn restrictions,
// time-of-day weighting, and similar caller policy). prev is the edge
// that reached from, or nil when from is the start node itself.
//
// Exposed as an interface rather than a bare function so a clip with
// its own state (a visited-turns set, a rate limiter) has somewhere to
// live without an opaque context parameter.
type Clip interface {
	Accept(prev *core.Edge, from int32, candidate core.Edge, distanceToFrom int64) (cost int64, ok bool)
}

// ClipFunc adapts a plain function to the Clip interface.
type ClipFunc func(prev *core.Edge, from int32, candidate core.Edge, distanceToFrom int64) (int64, bool)

// Accept implements Clip.
func (f ClipFunc) Accept(prev *core.Edge, from int32, candidate core.Edge, distanceToFrom int64) (int64, bool) {
	return f(prev, from, candidate, distanceToFrom)
}

type acceptAll struct{}

func (acceptAll) Accept(_ *core.Edge, _ int32, candidate core.Edge, _ int64) (int64, bool) {
	return int64(candidate.Cost), true
}

// Report is the ordered sequence of arcs from start to destination,
// each an owned Edge snapshot, plus the accumulated distance.
type Report struct {
	Arcs          []core.Edge
	TotalDistance int64
}
