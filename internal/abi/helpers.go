package abi

import "math"

const (
	// HeaderSize is the size of an atom header: {size u32, type u32}.
	HeaderSize = 8
	// Alignment is the boundary every atom starts on, relative to the buffer base.
	Alignment = 8
	// TimeStampSize is the width of a sequence event's time field.
	TimeStampSize = 8
)

const MaxBodySize = math.MaxUint32 - HeaderSize - Alignment

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// IsAligned reports whether offset sits on an atom boundary.
func IsAligned(offset uint32) bool {
	return offset&(Alignment-1) == 0
}

// PaddedSize returns the total footprint of an atom with the given body size,
// header and trailing padding included. It reports false on overflow.
func PaddedSize(bodySize uint32) (uint32, bool) {
	total, ok := SafeAddU32(bodySize, HeaderSize)
	if !ok || total > math.MaxUint32-(Alignment-1) {
		return 0, false
	}
	return AlignTo(total, Alignment), true
}
