package atom

import (
	"strconv"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
	"github.com/wippyai/atom-runtime/internal/layout"
)

// VectorWriter builds a Vector atom of fixed-width elements.
type VectorWriter struct {
	w        *Writer
	frame    Frame
	elemType URID
	width    uint32
	count    int
}

// BeginVector reserves a Vector atom whose elements have type elemType and
// are elemWidth bytes wide.
func (w *Writer) BeginVector(elemType URID, elemWidth uint32) (VectorWriter, error) {
	if elemWidth == 0 {
		return VectorWriter{}, errors.InvalidInput(errors.PhaseWrite, "vector element width must be non-zero")
	}
	f, err := w.Reserve(w.types.Vector)
	if err != nil {
		return VectorWriter{}, err
	}
	var hdr [layout.VectorHeaderSize]byte
	abi.PutU32(hdr[:], 0, elemWidth)
	abi.PutU32(hdr[:], 4, elemType)
	if _, err := w.Write(hdr[:]); err != nil {
		_ = w.Abort(f)
		return VectorWriter{}, err
	}
	return VectorWriter{w: w, frame: f, elemType: elemType, width: elemWidth}, nil
}

// Len returns the number of elements pushed so far.
func (v *VectorWriter) Len() int {
	return v.count
}

// Push appends one element. A full vector returns KindBufferOverflow and the
// element is not added.
func (v *VectorWriter) Push(elem []byte) error {
	if uint64(len(elem)) != uint64(v.width) {
		return errors.TypeMismatch(errors.PhaseWrite, []string{"vector", strconv.Itoa(v.count)},
			strconv.Itoa(len(elem))+" bytes", strconv.FormatUint(uint64(v.width), 10)+" bytes")
	}
	if v.w == nil || !v.w.isInnermost(v.frame) || v.frame.depth < v.w.sealed {
		return errors.InvalidState(errors.PhaseWrite, "vector is not the innermost open frame")
	}
	if _, err := v.w.Write(elem); err != nil {
		return err
	}
	v.count++
	return nil
}

func (v *VectorWriter) pushTyped(typ URID, elem []byte) error {
	if v.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "vector was not started")
	}
	if v.elemType != typ {
		return errors.TypeMismatch(errors.PhaseWrite, []string{"vector"},
			v.w.types.Name(typ), v.w.types.Name(v.elemType))
	}
	return v.Push(elem)
}

func (v *VectorWriter) PushBool(x bool) error {
	var b [BoolSize]byte
	_ = EncodeBool(b[:], x)
	return v.pushTyped(v.types().Bool, b[:])
}

func (v *VectorWriter) PushInt(x int32) error {
	var b [IntSize]byte
	_ = EncodeInt(b[:], x)
	return v.pushTyped(v.types().Int, b[:])
}

func (v *VectorWriter) PushLong(x int64) error {
	var b [LongSize]byte
	_ = EncodeLong(b[:], x)
	return v.pushTyped(v.types().Long, b[:])
}

func (v *VectorWriter) PushFloat(x float32) error {
	var b [FloatSize]byte
	_ = EncodeFloat(b[:], x)
	return v.pushTyped(v.types().Float, b[:])
}

func (v *VectorWriter) PushDouble(x float64) error {
	var b [DoubleSize]byte
	_ = EncodeDouble(b[:], x)
	return v.pushTyped(v.types().Double, b[:])
}

func (v *VectorWriter) PushURID(x URID) error {
	var b [URIDSize]byte
	_ = EncodeURID(b[:], x)
	return v.pushTyped(v.types().URID, b[:])
}

func (v *VectorWriter) types() *Types {
	if v.w == nil {
		return &Types{}
	}
	return v.w.types
}

// Finish commits the vector.
func (v *VectorWriter) Finish() (Atom, error) {
	if v.w == nil {
		return Atom{}, errors.InvalidState(errors.PhaseWrite, "vector was not started")
	}
	return v.w.Commit(v.frame)
}

// Abort drops the vector and everything written into it.
func (v *VectorWriter) Abort() error {
	if v.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "vector was not started")
	}
	return v.w.Abort(v.frame)
}

// Vector is a read view of a Vector atom.
type Vector struct {
	types     *Types
	data      []byte
	ElemType  URID
	ElemWidth uint32
	n         int
}

// AsVector interprets a as a Vector. The element data must divide evenly by
// the element width.
func (r *Reader) AsVector(a Atom) (Vector, error) {
	if err := r.expectKind(a, KindVector, r.types.Vector); err != nil {
		return Vector{}, err
	}
	body := a.Body
	if bufLen(body) < layout.MinBodySize(KindVector) {
		return Vector{}, errors.Malformed(errors.PhaseRead, []string{"vector"}, "body shorter than vector header")
	}
	width := abi.U32(body, 0)
	data := body[layout.VectorHeaderSize:]
	v := Vector{
		types:     r.types,
		data:      data,
		ElemType:  abi.U32(body, 4),
		ElemWidth: width,
	}
	switch {
	case width == 0 && len(data) == 0:
	case width == 0:
		return Vector{}, errors.Malformed(errors.PhaseRead, []string{"vector"}, "zero element width with non-empty data")
	case uint64(len(data))%uint64(width) != 0:
		return Vector{}, errors.New(errors.PhaseRead, errors.KindMalformed).
			Path("vector").
			Detail("element data of %d bytes does not divide by element width %d", len(data), width).
			Build()
	default:
		v.n = int(uint64(len(data)) / uint64(width))
	}
	return v, nil
}

// Len returns the element count.
func (v Vector) Len() int {
	return v.n
}

// At returns the raw bytes of element i.
func (v Vector) At(i int) ([]byte, error) {
	if i < 0 || i >= v.n {
		return nil, errors.OutOfBounds(errors.PhaseRead, []string{"vector"}, i, v.n)
	}
	start, ok := abi.SafeMulU32(uint32(i), v.ElemWidth)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseRead, []string{"vector"}, i, v.n)
	}
	end := start + v.ElemWidth
	return v.data[start:end:end], nil
}

func (v Vector) typedAt(i int, want URID) ([]byte, error) {
	if v.ElemType != want {
		return nil, errors.TypeMismatch(errors.PhaseRead, []string{"vector"},
			v.types.Name(v.ElemType), v.types.Name(want))
	}
	return v.At(i)
}

func (v Vector) BoolAt(i int) (bool, error) {
	b, err := v.typedAt(i, v.types.Bool)
	if err != nil {
		return false, err
	}
	return DecodeBool(b)
}

func (v Vector) IntAt(i int) (int32, error) {
	b, err := v.typedAt(i, v.types.Int)
	if err != nil {
		return 0, err
	}
	return DecodeInt(b)
}

func (v Vector) LongAt(i int) (int64, error) {
	b, err := v.typedAt(i, v.types.Long)
	if err != nil {
		return 0, err
	}
	return DecodeLong(b)
}

func (v Vector) FloatAt(i int) (float32, error) {
	b, err := v.typedAt(i, v.types.Float)
	if err != nil {
		return 0, err
	}
	return DecodeFloat(b)
}

func (v Vector) DoubleAt(i int) (float64, error) {
	b, err := v.typedAt(i, v.types.Double)
	if err != nil {
		return 0, err
	}
	return DecodeDouble(b)
}

func (v Vector) URIDAt(i int) (URID, error) {
	b, err := v.typedAt(i, v.types.URID)
	if err != nil {
		return 0, err
	}
	return DecodeURID(b)
}
