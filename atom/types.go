package atom

import (
	"strconv"
	"strings"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/internal/types"
)

// URID is the integer id of a mapped URI.
type URID = atomruntime.URID

// Kind is the closed set of atom kinds used for dispatch.
type Kind = types.Kind

const (
	KindUnknown  = types.KindUnknown
	KindBool     = types.KindBool
	KindInt      = types.KindInt
	KindLong     = types.KindLong
	KindFloat    = types.KindFloat
	KindDouble   = types.KindDouble
	KindURID     = types.KindURID
	KindChunk    = types.KindChunk
	KindString   = types.KindString
	KindPath     = types.KindPath
	KindURI      = types.KindURI
	KindLiteral  = types.KindLiteral
	KindVector   = types.KindVector
	KindTuple    = types.KindTuple
	KindSequence = types.KindSequence
	KindObject   = types.KindObject
	KindMIDI     = types.KindMIDI
)

// Types holds the URIDs of every atom type, resolved once from a Mapper.
// It is read-only after construction and safe to share.
type Types struct {
	kinds map[URID]Kind
	names map[URID]string

	Atom     URID
	Blank    URID
	Bool     URID
	Chunk    URID
	Double   URID
	Event    URID
	Float    URID
	Int      URID
	Literal  URID
	Long     URID
	Number   URID
	Object   URID
	Path     URID
	Property URID
	Resource URID
	Sequence URID
	Sound    URID
	String   URID
	Tuple    URID
	URI      URID
	URID     URID
	Vector   URID

	FrameTime URID
	BeatTime  URID

	MIDIEvent URID
}

// NewTypes maps every atom type URI through m.
func NewTypes(m atomruntime.Mapper) *Types {
	t := &Types{
		kinds: make(map[URID]Kind, 24),
		names: make(map[URID]string, 32),
	}

	resolve := func(uri string, kind Kind) URID {
		id := m.Map(uri)
		if id == 0 {
			return 0
		}
		if _, seen := t.names[id]; !seen {
			t.names[id] = shortName(uri)
		}
		if kind != KindUnknown {
			if _, seen := t.kinds[id]; !seen {
				t.kinds[id] = kind
			}
		}
		return id
	}

	t.Bool = resolve(BoolURI, KindBool)
	t.Int = resolve(IntURI, KindInt)
	t.Long = resolve(LongURI, KindLong)
	t.Float = resolve(FloatURI, KindFloat)
	t.Double = resolve(DoubleURI, KindDouble)
	t.URID = resolve(URIDURI, KindURID)
	t.Chunk = resolve(ChunkURI, KindChunk)
	t.String = resolve(StringURI, KindString)
	t.Path = resolve(PathURI, KindPath)
	t.URI = resolve(URIURI, KindURI)
	t.Literal = resolve(LiteralURI, KindLiteral)
	t.Vector = resolve(VectorURI, KindVector)
	t.Sound = resolve(SoundURI, KindVector)
	t.Tuple = resolve(TupleURI, KindTuple)
	t.Sequence = resolve(SequenceURI, KindSequence)
	t.Object = resolve(ObjectURI, KindObject)
	t.Resource = resolve(ResourceURI, KindObject)
	t.Blank = resolve(BlankURI, KindObject)
	t.MIDIEvent = resolve(MIDIEventURI, KindMIDI)

	t.Atom = resolve(AtomURI, KindUnknown)
	t.Number = resolve(NumberURI, KindUnknown)
	t.Event = resolve(EventURI, KindUnknown)
	t.Property = resolve(PropertyURI, KindUnknown)
	t.FrameTime = resolve(FrameTimeURI, KindUnknown)
	t.BeatTime = resolve(BeatTimeURI, KindUnknown)

	return t
}

// KindOf returns the kind of atom the id denotes, or KindUnknown.
func (t *Types) KindOf(id URID) Kind {
	if id == 0 {
		return KindUnknown
	}
	return t.kinds[id]
}

// IsObject reports whether id is one of the object types (Object, Resource, Blank).
func (t *Types) IsObject(id URID) bool {
	return t.KindOf(id) == KindObject
}

// Name returns a short printable name for id, such as "atom#Int".
// Ids outside the atom vocabulary print as "urid:N".
func (t *Types) Name(id URID) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return "urid:" + strconv.FormatUint(uint64(id), 10)
}

func shortName(uri string) string {
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
