package atom

import (
	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
)

// Reader is a validating, read-only cursor over buf[:capacity].
//
// Every view it returns aliases the buffer. Reader never allocates on the
// read path except for the string copies returned by AsString, AsPath, AsURI
// and AsLiteral; use AsText for a zero-copy view.
type Reader struct {
	buf      []byte
	types    *Types
	capacity uint32
}

// NewReader creates a reader over buf[:capacity]. The buffer start is the
// alignment base.
func NewReader(buf []byte, capacity uint32, types *Types) (*Reader, error) {
	if types == nil {
		return nil, errors.InvalidInput(errors.PhaseRead, "nil type table")
	}
	r := &Reader{types: types}
	if err := r.Reset(buf, capacity); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset points the reader at a new buffer.
func (r *Reader) Reset(buf []byte, capacity uint32) error {
	if capacity > bufLen(buf) {
		return errors.New(errors.PhaseRead, errors.KindInvalidInput).
			Detail("capacity %d exceeds buffer length %d", capacity, len(buf)).
			Build()
	}
	r.buf = buf[:capacity]
	r.capacity = capacity
	return nil
}

func (r *Reader) Types() *Types {
	return r.types
}

func (r *Reader) Capacity() uint32 {
	return r.capacity
}

// ReadAtom reads the atom at offset and returns it with the aligned offset
// just past it. The offset must be 8-byte aligned and the whole atom must lie
// within the declared capacity.
func (r *Reader) ReadAtom(offset uint32) (Atom, uint32, error) {
	if !abi.IsAligned(offset) {
		return Atom{}, offset, errors.AlignmentViolation(errors.PhaseRead, offset, Alignment)
	}
	if !abi.Fits(offset, HeaderSize, r.capacity) {
		return Atom{}, offset, errors.Truncated(errors.PhaseRead, offset, HeaderSize, r.capacity)
	}

	h := Header{
		Size: abi.U32(r.buf, offset),
		Type: abi.U32(r.buf, offset+4),
	}
	bodyStart := offset + HeaderSize
	if !abi.Fits(bodyStart, h.Size, r.capacity) {
		need, ok := abi.SafeAddU32(h.Size, HeaderSize)
		if !ok {
			need = placeholderSize
		}
		return Atom{}, offset, errors.Truncated(errors.PhaseRead, offset, need, r.capacity)
	}

	end := bodyStart + h.Size
	next := abi.AlignTo(end, Alignment)
	if next < end {
		next = end
	}
	return Atom{Header: h, Body: r.buf[bodyStart:end:end], Offset: offset}, next, nil
}

// Root reads the top-level atom at offset 0.
func (r *Reader) Root() (Atom, error) {
	a, _, err := r.ReadAtom(0)
	return a, err
}

func (r *Reader) expect(a Atom, want URID) error {
	if a.Header.Type == 0 || a.Header.Type != want {
		return errors.TypeMismatch(errors.PhaseRead, nil, r.types.Name(a.Header.Type), r.types.Name(want))
	}
	return nil
}

// expectKind accepts any type id that resolves to kind, so Resource and Blank
// pass as objects and Sound as a vector.
func (r *Reader) expectKind(a Atom, kind Kind, want URID) error {
	if r.types.KindOf(a.Header.Type) != kind {
		return errors.TypeMismatch(errors.PhaseRead, nil, r.types.Name(a.Header.Type), r.types.Name(want))
	}
	return nil
}

func (r *Reader) AsBool(a Atom) (bool, error) {
	if err := r.expect(a, r.types.Bool); err != nil {
		return false, err
	}
	return DecodeBool(a.Body)
}

func (r *Reader) AsInt(a Atom) (int32, error) {
	if err := r.expect(a, r.types.Int); err != nil {
		return 0, err
	}
	return DecodeInt(a.Body)
}

func (r *Reader) AsLong(a Atom) (int64, error) {
	if err := r.expect(a, r.types.Long); err != nil {
		return 0, err
	}
	return DecodeLong(a.Body)
}

func (r *Reader) AsFloat(a Atom) (float32, error) {
	if err := r.expect(a, r.types.Float); err != nil {
		return 0, err
	}
	return DecodeFloat(a.Body)
}

func (r *Reader) AsDouble(a Atom) (float64, error) {
	if err := r.expect(a, r.types.Double); err != nil {
		return 0, err
	}
	return DecodeDouble(a.Body)
}

func (r *Reader) AsURID(a Atom) (URID, error) {
	if err := r.expect(a, r.types.URID); err != nil {
		return 0, err
	}
	return DecodeURID(a.Body)
}

// AsChunk returns the raw body of a Chunk atom.
func (r *Reader) AsChunk(a Atom) ([]byte, error) {
	if err := r.expect(a, r.types.Chunk); err != nil {
		return nil, err
	}
	return a.Body, nil
}

// AsText returns the text of a String, Path or URI atom without its NUL.
// The result aliases the buffer.
func (r *Reader) AsText(a Atom) ([]byte, error) {
	kind := r.types.KindOf(a.Header.Type)
	if !kind.IsText() {
		return nil, errors.TypeMismatch(errors.PhaseRead, nil, r.types.Name(a.Header.Type), "text")
	}
	return decodeText(a.Body, kind)
}

func (r *Reader) AsString(a Atom) (string, error) {
	return r.asText(a, r.types.String, KindString)
}

func (r *Reader) AsPath(a Atom) (string, error) {
	return r.asText(a, r.types.Path, KindPath)
}

func (r *Reader) AsURI(a Atom) (string, error) {
	return r.asText(a, r.types.URI, KindURI)
}

func (r *Reader) asText(a Atom, want URID, kind Kind) (string, error) {
	if err := r.expect(a, want); err != nil {
		return "", err
	}
	text, err := decodeText(a.Body, kind)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func (r *Reader) AsLiteral(a Atom) (Literal, error) {
	if err := r.expect(a, r.types.Literal); err != nil {
		return Literal{}, err
	}
	return DecodeLiteral(a.Body)
}
