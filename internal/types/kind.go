package types

type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindURID
	KindChunk
	KindString
	KindPath
	KindURI
	KindLiteral
	KindVector
	KindTuple
	KindSequence
	KindObject
	KindMIDI
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindBool:     "bool",
	KindInt:      "int",
	KindLong:     "long",
	KindFloat:    "float",
	KindDouble:   "double",
	KindURID:     "urid",
	KindChunk:    "chunk",
	KindString:   "string",
	KindPath:     "path",
	KindURI:      "uri",
	KindLiteral:  "literal",
	KindVector:   "vector",
	KindTuple:    "tuple",
	KindSequence: "sequence",
	KindObject:   "object",
	KindMIDI:     "midi",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind has a fixed-width body.
func (k Kind) IsScalar() bool {
	return k >= KindBool && k <= KindURID
}

// IsText reports whether the body is NUL-terminated UTF-8.
func (k Kind) IsText() bool {
	switch k {
	case KindString, KindPath, KindURI:
		return true
	default:
		return false
	}
}

func (k Kind) IsContainer() bool {
	return k >= KindVector && k <= KindObject
}
