// File: io.go
// Role: One-shot WriteFull/ReadFull convenience wrappers around Writer
// and Reader, for callers that already hold the full image in memory
// and don't need chunked framing.
package dglio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dglath/core"
)

// defaultChunkSize is the buffer size WriteFull/ReadFull drive their
// internal Writer/Reader with; callers needing a different size should
// use Writer/Reader directly.
const defaultChunkSize = 64 * 1024

// ErrWrite and ErrRead wrap the underlying io errors WriteFull/ReadFull
// surface, so callers can distinguish transport failure from a bad
// image via errors.Is against this package's own sentinels.
var (
	ErrWrite = fmt.Errorf("dglio: write failed")
	ErrRead  = fmt.Errorf("dglio: read failed")
)

// WriteFull flattens c if necessary and writes its header, node
// buffer, and edge buffer to sink in one call.
func WriteFull(c *core.Context, sink io.Writer) error {
	if !c.IsFlat() {
		if err := c.Flatten(); err != nil {
			return fmt.Errorf("dglio: flatten before write: %w", err)
		}
	}
	nodeBuf, edgeBuf := c.FlatBuffers()
	header := Encode(HeaderFromContext(c))

	w := NewWriter(header, nodeBuf, edgeBuf)
	buf := make([]byte, defaultChunkSize)
	for {
		n, done, err := w.WriteChunk(buf)
		if err != nil {
			return fmt.Errorf("dglio: write chunk: %w", err)
		}
		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				return fmt.Errorf("%w: %v", ErrWrite, werr)
			}
		}
		if done {
			return nil
		}
	}
}

// ReadFull reads a full header-plus-buffers image from source and
// reconstructs a flat-state Context. The returned Context's byte order
// is the one declared in the image's header, whether or not it matches
// the host: every subsequent accessor already consults that recorded
// order, so no physical byte-swap of the buffers is performed.
func ReadFull(source io.Reader) (*core.Context, error) {
	r := NewReader()
	readBuf := make([]byte, defaultChunkSize)

	done := false
	for !done {
		n, rerr := source.Read(readBuf)
		fed := readBuf[:n]
		for len(fed) > 0 && !done {
			var consumed int
			var cerr error
			consumed, done, cerr = r.ReadChunk(fed)
			if cerr != nil {
				return nil, cerr
			}
			if consumed == 0 {
				break
			}
			fed = fed[consumed:]
		}
		if done {
			break
		}
		if rerr == io.EOF {
			return nil, fmt.Errorf("%w: truncated image", ErrRead)
		}
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, rerr)
		}
	}

	h, _ := r.Header()
	nodeBuf, edgeBuf := r.Buffers()

	c, err := core.Initialize(h.Version, h.NodeAttrSize, h.EdgeAttrSize, h.Opaque,
		core.WithFamily(h.Family), core.WithOptions(h.Options))
	if err != nil {
		return nil, fmt.Errorf("dglio: rebuild context: %w", err)
	}
	c.SetEndianness(byteOrderOf(h))
	c.SetFlatBuffers(nodeBuf, edgeBuf, h.NodeCount, h.EdgeCount)
	c.SetAccumulatedCost(h.AccumulatedCost)
	return c, nil
}
