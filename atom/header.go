package atom

import (
	"math"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
)

// HeaderSize is the size of an encoded Header.
const HeaderSize = abi.HeaderSize

// Alignment is the boundary every atom starts on.
const Alignment = abi.Alignment

// placeholderSize marks a reserved header whose frame has not been committed.
// It can never fit in a buffer, so readers reject it as truncated.
const placeholderSize = math.MaxUint32

// Header is the fixed record in front of every atom body.
// The encoded layout is size at offset 0 and type at offset 4.
type Header struct {
	Size uint32
	Type URID
}

// Atom is a view of one atom inside a buffer. Body aliases the buffer.
type Atom struct {
	Body   []byte
	Header Header
	Offset uint32
}

// PaddedSize returns the atom's footprint including header and padding.
func (a Atom) PaddedSize() uint32 {
	n, _ := abi.PaddedSize(a.Header.Size)
	return n
}

// WriteHeader encodes a header at offset and returns the offset just past it.
func WriteHeader(buf []byte, offset uint32, typ URID, size uint32) (uint32, error) {
	limit := bufLen(buf)
	if !abi.Fits(offset, HeaderSize, limit) {
		return offset, errors.BufferOverflow(errors.PhaseEncode, offset, HeaderSize, limit)
	}
	abi.PutU32(buf, offset, size)
	abi.PutU32(buf, offset+4, typ)
	return offset + HeaderSize, nil
}

// ReadHeader decodes the header at offset and returns the offset just past it.
func ReadHeader(buf []byte, offset uint32) (Header, uint32, error) {
	limit := bufLen(buf)
	if !abi.Fits(offset, HeaderSize, limit) {
		return Header{}, offset, errors.Truncated(errors.PhaseDecode, offset, HeaderSize, limit)
	}
	h := Header{
		Size: abi.U32(buf, offset),
		Type: abi.U32(buf, offset+4),
	}
	return h, offset + HeaderSize, nil
}

func bufLen(buf []byte) uint32 {
	if uint64(len(buf)) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(len(buf))
}
