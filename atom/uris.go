package atom

// Prefix is the namespace of every LV2 atom URI.
const Prefix = "http://lv2plug.in/ns/ext/atom#"

const (
	AtomURI     = Prefix + "Atom"
	AtomPortURI = Prefix + "AtomPort"
	BlankURI    = Prefix + "Blank"
	BoolURI     = Prefix + "Bool"
	ChunkURI    = Prefix + "Chunk"
	DoubleURI   = Prefix + "Double"
	EventURI    = Prefix + "Event"
	FloatURI    = Prefix + "Float"
	IntURI      = Prefix + "Int"
	LiteralURI  = Prefix + "Literal"
	LongURI     = Prefix + "Long"
	NumberURI   = Prefix + "Number"
	ObjectURI   = Prefix + "Object"
	PathURI     = Prefix + "Path"
	PropertyURI = Prefix + "Property"
	ResourceURI = Prefix + "Resource"
	SequenceURI = Prefix + "Sequence"
	SoundURI    = Prefix + "Sound"
	StringURI   = Prefix + "String"
	TupleURI    = Prefix + "Tuple"
	URIURI      = Prefix + "URI"
	URIDURI     = Prefix + "URID"
	VectorURI   = Prefix + "Vector"
)

const (
	AtomTransferURI  = Prefix + "atomTransfer"
	BeatTimeURI      = Prefix + "beatTime"
	BufferTypeURI    = Prefix + "bufferType"
	ChildTypeURI     = Prefix + "childType"
	EventTransferURI = Prefix + "eventTransfer"
	FrameTimeURI     = Prefix + "frameTime"
	SupportsURI      = Prefix + "supports"
	TimeUnitURI      = Prefix + "timeUnit"
)

// MIDIEventURI is the type of a single raw MIDI message atom.
const MIDIEventURI = "http://lv2plug.in/ns/ext/midi#MidiEvent"
