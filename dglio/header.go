// File: header.go
// Role: The 118-byte fixed header: encode, decode, and the byte-swap
// step a read applies when the stored endianness disagrees with host.
package dglio

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/dglath/core"
)

// HeaderSize is the fixed, version-independent header length in bytes.
const HeaderSize = 118

// Sentinel errors for this package.
var (
	ErrShortBuffer      = errors.New("dglio: short buffer")
	ErrUnknownByteOrder = errors.New("dglio: unknown byte order byte")
	ErrBadPhase         = errors.New("dglio: operation invalid in current phase")
)

const (
	endiannessBig    byte = 1
	endiannessLittle byte = 2
)

// Header is the decoded fixed header, independent of byte order.
type Header struct {
	Version        core.Version
	BigEndian      bool
	NodeAttrSize   int32
	EdgeAttrSize   int32
	Opaque         core.OpaqueBlock
	Options        core.Options
	Family         uint32
	AccumulatedCost int64
	NodeCount      int32
	HeadCount      int32
	TailCount      int32
	AloneCount     int32
	EdgeCount      int32
	NodeBufferSize int32
	EdgeBufferSize int32
}

func byteOrderOf(h Header) binary.ByteOrder {
	if h.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// HeaderFromContext builds a Header describing c's current flat state
// (c must already be flattened) using c's own recorded byte order.
func HeaderFromContext(c *core.Context) Header {
	nb, eb := c.FlatBuffers()
	head, tail, alone := countsForFlat(c)
	order := c.Endianness()
	return Header{
		Version:         c.Version(),
		BigEndian:       order == binary.BigEndian,
		NodeAttrSize:    c.NodeAttrSize(),
		EdgeAttrSize:    c.EdgeAttrSize(),
		Opaque:          c.Opaque(),
		Options:         c.Options(),
		Family:          c.Family(),
		AccumulatedCost: c.AccumulatedCost(),
		NodeCount:       int32(c.NodeCount()),
		HeadCount:       head,
		TailCount:       tail,
		AloneCount:      alone,
		EdgeCount:       int32(c.EdgeCount()),
		NodeBufferSize:  int32(len(nb)),
		EdgeBufferSize:  int32(len(eb)),
	}
}

func countsForFlat(c *core.Context) (head, tail, alone int32) { return c.Counts() }

// Encode writes h into a fresh 118-byte buffer in h's own byte order.
func Encode(h Header) []byte {
	buf := make([]byte, HeaderSize)
	order := byteOrderOf(h)

	buf[0] = byte(h.Version)
	if h.BigEndian {
		buf[1] = endiannessBig
	} else {
		buf[1] = endiannessLittle
	}
	order.PutUint32(buf[2:6], uint32(h.NodeAttrSize))
	order.PutUint32(buf[6:10], uint32(h.EdgeAttrSize))
	for i, w := range h.Opaque {
		order.PutUint32(buf[10+i*4:14+i*4], uint32(w))
	}
	order.PutUint32(buf[74:78], uint32(h.Options))
	order.PutUint32(buf[78:82], h.Family)
	order.PutUint64(buf[82:90], uint64(h.AccumulatedCost))
	order.PutUint32(buf[90:94], uint32(h.NodeCount))
	order.PutUint32(buf[94:98], uint32(h.HeadCount))
	order.PutUint32(buf[98:102], uint32(h.TailCount))
	order.PutUint32(buf[102:106], uint32(h.AloneCount))
	order.PutUint32(buf[106:110], uint32(h.EdgeCount))
	order.PutUint32(buf[110:114], uint32(h.NodeBufferSize))
	order.PutUint32(buf[114:118], uint32(h.EdgeBufferSize))
	return buf
}

// Decode parses a 118-byte header. The header's own endianness byte
// selects the byte order used to decode every multi-byte field in it.
//
// Node and edge buffers read alongside a foreign-endian header are
// never physically byte-swapped: Reader installs the header's declared
// byte order onto the resulting core.Context (SetEndianness), and
// every subsequent core access already goes through that recorded
// order. This reaches the same observable result as the original
// library's swap-to-host-then-forget-the-tag approach without a
// separate word-swap pass over two potentially large buffers.
func Decode(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, HeaderSize, len(buf))
	}
	var h Header
	h.Version = core.Version(buf[0])
	switch buf[1] {
	case endiannessBig:
		h.BigEndian = true
	case endiannessLittle:
		h.BigEndian = false
	default:
		return Header{}, fmt.Errorf("%w: %d", ErrUnknownByteOrder, buf[1])
	}
	order := byteOrderOf(h)
	h.NodeAttrSize = int32(order.Uint32(buf[2:6]))
	h.EdgeAttrSize = int32(order.Uint32(buf[6:10]))
	for i := range h.Opaque {
		h.Opaque[i] = int32(order.Uint32(buf[10+i*4 : 14+i*4]))
	}
	h.Options = core.Options(order.Uint32(buf[74:78]))
	h.Family = order.Uint32(buf[78:82])
	h.AccumulatedCost = int64(order.Uint64(buf[82:90]))
	h.NodeCount = int32(order.Uint32(buf[90:94]))
	h.HeadCount = int32(order.Uint32(buf[94:98]))
	h.TailCount = int32(order.Uint32(buf[98:102]))
	h.AloneCount = int32(order.Uint32(buf[102:106]))
	h.EdgeCount = int32(order.Uint32(buf[106:110]))
	h.NodeBufferSize = int32(order.Uint32(buf[110:114]))
	h.EdgeBufferSize = int32(order.Uint32(buf[114:118]))
	return h, nil
}
