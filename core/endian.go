// File: endian.go
// Role: Host byte-order detection, used to stamp a freshly Initialized
// Context with its default byte order. Uses
// encoding/binary's NativeEndian rather than unsafe pointer tricks.
package core

import "encoding/binary"

var probe = [2]byte{0x01, 0x02}

// HostByteOrder returns binary.BigEndian or binary.LittleEndian,
// whichever matches this process's native word layout.
func HostByteOrder() binary.ByteOrder {
	if binary.NativeEndian.Uint16(probe[:]) == binary.LittleEndian.Uint16(probe[:]) {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
