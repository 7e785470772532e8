package abi

import (
	"encoding/binary"
)

// Fits reports whether n bytes starting at offset lie within limit.
func Fits(offset, n, limit uint32) bool {
	end, ok := SafeAddU32(offset, n)
	return ok && end <= limit
}

// U32 reads a native-endian uint32 at offset. The caller checks bounds.
func U32(buf []byte, offset uint32) uint32 {
	return binary.NativeEndian.Uint32(buf[offset : offset+4])
}

// U64 reads a native-endian uint64 at offset. The caller checks bounds.
func U64(buf []byte, offset uint32) uint64 {
	return binary.NativeEndian.Uint64(buf[offset : offset+8])
}

// PutU32 writes a native-endian uint32 at offset. The caller checks bounds.
func PutU32(buf []byte, offset, v uint32) {
	binary.NativeEndian.PutUint32(buf[offset:offset+4], v)
}

// PutU64 writes a native-endian uint64 at offset. The caller checks bounds.
func PutU64(buf []byte, offset uint32, v uint64) {
	binary.NativeEndian.PutUint64(buf[offset:offset+8], v)
}

// Zero clears buf[from:to].
func Zero(buf []byte, from, to uint32) {
	clear(buf[from:to])
}
