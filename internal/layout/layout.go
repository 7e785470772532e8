package layout

import (
	"github.com/wippyai/atom-runtime/internal/abi"
	"github.com/wippyai/atom-runtime/internal/types"
)

// Info describes the fixed part of a kind's body.
type Info struct {
	// BodyHeader is the number of fixed bytes at the start of the body.
	BodyHeader uint32
	// Width is the exact body width for scalars, 0 when the body is variable.
	Width uint32
}

const (
	VectorHeaderSize   = 8
	SequenceHeaderSize = 8
	ObjectHeaderSize   = 8
	LiteralHeaderSize  = 8
	EventPrefixSize    = abi.TimeStampSize
	PropertyPrefixSize = 8
)

var table = [...]Info{
	types.KindBool:     {Width: 4},
	types.KindInt:      {Width: 4},
	types.KindLong:     {Width: 8},
	types.KindFloat:    {Width: 4},
	types.KindDouble:   {Width: 8},
	types.KindURID:     {Width: 4},
	types.KindLiteral:  {BodyHeader: LiteralHeaderSize},
	types.KindVector:   {BodyHeader: VectorHeaderSize},
	types.KindSequence: {BodyHeader: SequenceHeaderSize},
	types.KindObject:   {BodyHeader: ObjectHeaderSize},
	types.KindMIDI:     {},
}

// Of returns the layout of kind k. Unknown kinds have an empty layout.
func Of(k types.Kind) Info {
	if int(k) < len(table) {
		return table[k]
	}
	return Info{}
}

// MinBodySize returns the smallest well-formed body for kind k.
func MinBodySize(k types.Kind) uint32 {
	info := Of(k)
	if info.Width != 0 {
		return info.Width
	}
	if k.IsText() {
		return 1 // NUL
	}
	if k == types.KindLiteral {
		return info.BodyHeader + 1
	}
	return info.BodyHeader
}
