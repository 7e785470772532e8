// Package atom provides encoding and decoding of LV2 atoms inside bounded buffers.
//
// An atom is an 8-byte header followed by a body. The header records the body
// size and the URID of the atom's type. Atoms are never owned: a Writer
// appends them into a caller-supplied buffer and a Reader hands out views that
// alias the caller's buffer.
//
// # Memory Layout
//
//	Type        Body                                         Width
//	──────────────────────────────────────────────────────────────
//	Bool        int32 0/1                                    4
//	Int         int32                                        4
//	Long        int64                                        8
//	Float       float32                                      4
//	Double      float64                                      8
//	URID        uint32                                       4
//	Chunk       raw bytes                                    n
//	String      UTF-8 + NUL                                  n+1
//	Path/URI    UTF-8 + NUL                                  n+1
//	Literal     {datatype, lang} UTF-8 + NUL                 8+n+1
//	Vector      {child_size, child_type} elements            8+k*w
//	Tuple       padded atoms                                 Σ
//	Sequence    {unit, pad} {time, atom}...                  8+Σ
//	Object      {id, otype} {key, context, atom}...          8+Σ
//
// Every atom starts on an 8-byte boundary relative to the buffer base.
// Padding is zero-filled on write and ignored on read.
//
// # Key Types
//
//	Types           - URIDs of every atom type, resolved once from a Mapper
//	Writer          - Append-only cursor with reserve/commit frames
//	Reader          - Validating cursor with typed accessors
//	VectorWriter    - Homogeneous array builder
//	TupleWriter     - Heterogeneous list builder
//	SequenceWriter  - Time-stamped event stream builder
//	ObjectWriter    - Key/value property builder
//
// # Writing Flow
//
//  1. NewWriter(buf, capacity, types)
//  2. Reserve(type) → Write/WriteU32/WriteU64 → Commit(frame)
//     or a container builder: BeginTuple → Push... → Finish
//
// A frame's header carries an invalid placeholder size until Commit
// back-patches it, so a buffer abandoned mid-write never reads back as a
// valid atom. Children commit bottom-up: only the innermost open frame may be
// committed or aborted.
//
// # Reading Flow
//
//  1. NewReader(buf, capacity, types)
//  2. Root() or ReadAtom(offset) → Atom
//  3. AsInt/AsString/AsTuple/... re-check the header type
//
// # Error Handling
//
// Writes that would exceed capacity fail with KindBufferOverflow and leave the
// writer unchanged. Reads fail with KindTruncated, KindAlignmentViolation,
// KindMalformed or KindTypeMismatch. Nothing in this package retries or logs.
package atom
