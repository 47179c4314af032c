// Package dglio serializes a core.Context's flat state to and from the
// 118-byte-header wire format, either in one shot (WriteFull/ReadFull)
// or in caller-sized chunks through a Writer/Reader state machine
// driven by repeated calls with the caller's own buffer — the shape a
// streaming transport (a socket, a size-limited RPC frame) needs,
// rather than assuming the whole image fits in one buffer.
//
// This package never interprets node or edge record contents beyond
// the header fields themselves, and never byte-swaps the buffers: a
// read installs the header's declared byte order on the resulting
// core.Context, whose accessors decode every word in that order.
package dglio
