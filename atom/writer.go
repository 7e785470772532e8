package atom

import (
	"math"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
)

// Frame is the handle of a reserved, not yet committed atom.
type Frame struct {
	start uint32
	gen   uint32
	depth int
}

// Offset returns the buffer offset of the frame's header.
func (f Frame) Offset() uint32 {
	return f.start
}

type frame struct {
	start uint32 // header offset
	prev  uint32 // cursor before alignment padding
	gen   uint32
	typ   URID
}

type mark struct {
	depth  int
	cursor uint32
}

// Writer appends atoms to a caller-owned buffer.
//
// Each atom goes through Reserve, Write and Commit. Reserve pads the cursor
// to the next 8-byte boundary and writes a placeholder header; Commit
// back-patches the body size. A write that does not fit returns
// KindBufferOverflow and leaves the writer untouched.
//
// Writer is not safe for concurrent use.
type Writer struct {
	buf      []byte
	types    *Types
	frames   []frame
	root     Atom
	capacity uint32
	cursor   uint32
	gen      uint32 // bumped by every Reserve
	sealed   int    // frames below this depth belong to a container awaiting a child
	hasRoot  bool
}

// NewWriter creates a writer over buf[:capacity]. The buffer start is the
// alignment base, so buf must be the start of the port buffer.
func NewWriter(buf []byte, capacity uint32, types *Types) (*Writer, error) {
	if types == nil {
		return nil, errors.InvalidInput(errors.PhaseWrite, "nil type table")
	}
	w := &Writer{
		types:  types,
		frames: make([]frame, 0, 8),
	}
	if err := w.Reset(buf, capacity); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset points the writer at a new buffer and discards all state.
func (w *Writer) Reset(buf []byte, capacity uint32) error {
	if capacity > bufLen(buf) {
		return errors.New(errors.PhaseWrite, errors.KindInvalidInput).
			Detail("capacity %d exceeds buffer length %d", capacity, len(buf)).
			Build()
	}
	w.buf = buf[:capacity]
	w.capacity = capacity
	w.cursor = 0
	w.frames = w.frames[:0]
	w.sealed = 0
	w.root = Atom{}
	w.hasRoot = false
	return nil
}

func (w *Writer) Types() *Types {
	return w.types
}

func (w *Writer) Capacity() uint32 {
	return w.capacity
}

// Len returns the number of bytes written so far, padding included.
func (w *Writer) Len() uint32 {
	return w.cursor
}

// Depth returns the number of open frames.
func (w *Writer) Depth() int {
	return len(w.frames)
}

// Committed returns the first committed top-level atom.
func (w *Writer) Committed() (Atom, bool) {
	return w.root, w.hasRoot
}

// Reserve pads the cursor, writes a placeholder header for typ and opens a
// frame for its body.
func (w *Writer) Reserve(typ URID) (Frame, error) {
	aligned := abi.AlignTo(w.cursor, Alignment)
	if aligned < w.cursor || !abi.Fits(aligned, HeaderSize, w.capacity) {
		need := uint32(math.MaxUint32)
		if aligned >= w.cursor {
			need = aligned - w.cursor + HeaderSize
		}
		return Frame{}, errors.BufferOverflow(errors.PhaseWrite, w.cursor, need, w.capacity)
	}

	abi.Zero(w.buf, w.cursor, aligned)
	abi.PutU32(w.buf, aligned, placeholderSize)
	abi.PutU32(w.buf, aligned+4, typ)

	w.gen++
	w.frames = append(w.frames, frame{start: aligned, prev: w.cursor, gen: w.gen, typ: typ})
	w.cursor = aligned + HeaderSize
	return Frame{start: aligned, gen: w.gen, depth: len(w.frames) - 1}, nil
}

// Write appends p to the innermost open frame. It writes all of p or nothing.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.grow(uint64(len(p))); err != nil {
		return 0, err
	}
	n := copy(w.buf[w.cursor:], p)
	w.cursor += uint32(n)
	return n, nil
}

func (w *Writer) WriteU32(v uint32) error {
	if err := w.grow(4); err != nil {
		return err
	}
	abi.PutU32(w.buf, w.cursor, v)
	w.cursor += 4
	return nil
}

func (w *Writer) WriteU64(v uint64) error {
	if err := w.grow(8); err != nil {
		return err
	}
	abi.PutU64(w.buf, w.cursor, v)
	w.cursor += 8
	return nil
}

func (w *Writer) writeText(s string) error {
	n, ok := TextSize(s)
	if !ok {
		return errors.InvalidInput(errors.PhaseWrite, "text too large")
	}
	if err := w.grow(uint64(n)); err != nil {
		return err
	}
	copy(w.buf[w.cursor:], s)
	w.buf[w.cursor+n-1] = 0
	w.cursor += n
	return nil
}

// grow checks that n more bytes fit in the innermost open frame.
func (w *Writer) grow(n uint64) error {
	if len(w.frames) == 0 {
		return errors.InvalidState(errors.PhaseWrite, "write outside a reserved frame")
	}
	if n > uint64(w.capacity-w.cursor) {
		need := uint32(math.MaxUint32)
		if n < math.MaxUint32 {
			need = uint32(n)
		}
		return errors.BufferOverflow(errors.PhaseWrite, w.cursor, need, w.capacity)
	}
	return nil
}

// Commit back-patches the size of f and returns the finished atom.
// f must be the innermost open frame. A committed child of an open container
// is padded so that the container's size covers the padding.
func (w *Writer) Commit(f Frame) (Atom, error) {
	if !w.isInnermost(f) || f.depth < w.sealed {
		return Atom{}, w.frameError(f, "commit")
	}

	top := len(w.frames) - 1
	fr := w.frames[top]
	bodyStart := fr.start + HeaderSize
	size := w.cursor - bodyStart

	if top > 0 {
		end := w.paddedEnd(w.cursor)
		abi.Zero(w.buf, w.cursor, end)
		w.cursor = end
	}

	abi.PutU32(w.buf, fr.start, size)
	w.frames = w.frames[:top]

	end := bodyStart + size
	a := Atom{
		Header: Header{Size: size, Type: fr.typ},
		Body:   w.buf[bodyStart:end:end],
		Offset: fr.start,
	}
	if top == 0 && !w.hasRoot {
		w.root = a
		w.hasRoot = true
	}
	return a, nil
}

// Abort drops f together with every frame opened inside it and rewinds the
// cursor to where it was before f was reserved.
func (w *Writer) Abort(f Frame) error {
	if !w.isOpen(f) || f.depth < w.sealed {
		return w.frameError(f, "abort")
	}
	w.cursor = w.frames[f.depth].prev
	w.frames = w.frames[:f.depth]
	return nil
}

// isOpen reports whether f still names an open frame. A handle outlives its
// frame after Abort; the generation tells it apart from a later frame
// reserved at the same offset.
func (w *Writer) isOpen(f Frame) bool {
	if f.depth < 0 || f.depth >= len(w.frames) {
		return false
	}
	fr := w.frames[f.depth]
	return fr.start == f.start && fr.gen == f.gen
}

func (w *Writer) isInnermost(f Frame) bool {
	return f.depth == len(w.frames)-1 && w.isOpen(f)
}

func (w *Writer) frameError(f Frame, op string) error {
	if w.isOpen(f) && f.depth < w.sealed {
		return errors.New(errors.PhaseWrite, errors.KindInvalidState).
			Detail("cannot %s frame at offset %d from inside a child encoder", op, f.start).
			Build()
	}
	if w.isOpen(f) {
		return errors.New(errors.PhaseWrite, errors.KindInvalidState).
			Detail("cannot %s frame at offset %d: %d child frame(s) still open", op, f.start, len(w.frames)-1-f.depth).
			Build()
	}
	return errors.New(errors.PhaseWrite, errors.KindInvalidState).
		Detail("cannot %s frame at offset %d: frame is not open", op, f.start).
		Build()
}

// paddedEnd aligns off, clamped to capacity. Trailing padding that does not
// fit is omitted; readers treat the buffer end as the end of the last child.
func (w *Writer) paddedEnd(off uint32) uint32 {
	end := abi.AlignTo(off, Alignment)
	if end < off || end > w.capacity {
		return w.capacity
	}
	return end
}

func (w *Writer) mark() mark {
	return mark{depth: len(w.frames), cursor: w.cursor}
}

func (w *Writer) rewind(m mark) {
	w.frames = w.frames[:m.depth]
	w.cursor = m.cursor
}

// pushChild writes prefix followed by exactly one child atom produced by fn
// into the container parent. On any failure the container is left as it was.
// While fn runs, parent and its ancestors cannot be committed or aborted.
func (w *Writer) pushChild(parent Frame, prefix []byte, fn func(*Writer) error) error {
	if !w.isInnermost(parent) || parent.depth < w.sealed {
		return w.frameError(parent, "push into")
	}
	if fn == nil {
		return errors.InvalidInput(errors.PhaseWrite, "nil child encoder")
	}

	m := w.mark()
	if len(prefix) > 0 {
		if _, err := w.Write(prefix); err != nil {
			return err
		}
	}

	childStart := abi.AlignTo(w.cursor, Alignment)
	sealed := w.sealed
	w.sealed = parent.depth + 1
	err := fn(w)
	w.sealed = sealed
	if err != nil {
		w.rewind(m)
		return err
	}
	if err := w.checkChild(parent, childStart); err != nil {
		w.rewind(m)
		return err
	}
	return nil
}

func (w *Writer) checkChild(parent Frame, childStart uint32) error {
	if len(w.frames)-1 != parent.depth {
		return errors.InvalidState(errors.PhaseWrite, "child encoder left a frame open")
	}
	if w.cursor <= childStart || !abi.Fits(childStart, HeaderSize, w.cursor) {
		return errors.InvalidState(errors.PhaseWrite, "child encoder wrote no atom")
	}
	size := abi.U32(w.buf, childStart)
	bodyEnd, ok := abi.SafeAddU32(childStart+HeaderSize, size)
	if !ok || w.cursor != w.paddedEnd(bodyEnd) {
		return errors.InvalidState(errors.PhaseWrite, "child encoder must write exactly one atom")
	}
	return nil
}

// WriteAtom writes a complete atom with the given type and body.
func (w *Writer) WriteAtom(typ URID, body []byte) (Atom, error) {
	f, err := w.Reserve(typ)
	if err != nil {
		return Atom{}, err
	}
	if _, err := w.Write(body); err != nil {
		_ = w.Abort(f)
		return Atom{}, err
	}
	return w.Commit(f)
}

func (w *Writer) WriteBool(v bool) (Atom, error) {
	var b [BoolSize]byte
	_ = EncodeBool(b[:], v)
	return w.WriteAtom(w.types.Bool, b[:])
}

func (w *Writer) WriteInt(v int32) (Atom, error) {
	var b [IntSize]byte
	_ = EncodeInt(b[:], v)
	return w.WriteAtom(w.types.Int, b[:])
}

func (w *Writer) WriteLong(v int64) (Atom, error) {
	var b [LongSize]byte
	_ = EncodeLong(b[:], v)
	return w.WriteAtom(w.types.Long, b[:])
}

func (w *Writer) WriteFloat(v float32) (Atom, error) {
	var b [FloatSize]byte
	_ = EncodeFloat(b[:], v)
	return w.WriteAtom(w.types.Float, b[:])
}

func (w *Writer) WriteDouble(v float64) (Atom, error) {
	var b [DoubleSize]byte
	_ = EncodeDouble(b[:], v)
	return w.WriteAtom(w.types.Double, b[:])
}

func (w *Writer) WriteURID(v URID) (Atom, error) {
	var b [URIDSize]byte
	_ = EncodeURID(b[:], v)
	return w.WriteAtom(w.types.URID, b[:])
}

// WriteChunk writes data as an uninterpreted Chunk atom.
func (w *Writer) WriteChunk(data []byte) (Atom, error) {
	return w.WriteAtom(w.types.Chunk, data)
}

func (w *Writer) WriteString(s string) (Atom, error) {
	return w.writeTextAtom(w.types.String, KindString, s)
}

func (w *Writer) WritePath(s string) (Atom, error) {
	return w.writeTextAtom(w.types.Path, KindPath, s)
}

func (w *Writer) WriteURI(s string) (Atom, error) {
	return w.writeTextAtom(w.types.URI, KindURI, s)
}

func (w *Writer) writeTextAtom(typ URID, kind Kind, s string) (Atom, error) {
	if err := validateText(s, kind); err != nil {
		return Atom{}, err
	}
	f, err := w.Reserve(typ)
	if err != nil {
		return Atom{}, err
	}
	if err := w.writeText(s); err != nil {
		_ = w.Abort(f)
		return Atom{}, err
	}
	return w.Commit(f)
}

// WriteLiteral writes a Literal atom.
func (w *Writer) WriteLiteral(lit Literal) (Atom, error) {
	if err := validateText(lit.Text, KindLiteral); err != nil {
		return Atom{}, err
	}
	f, err := w.Reserve(w.types.Literal)
	if err != nil {
		return Atom{}, err
	}
	err = w.WriteU32(lit.Datatype)
	if err == nil {
		err = w.WriteU32(lit.Lang)
	}
	if err == nil {
		err = w.writeText(lit.Text)
	}
	if err != nil {
		_ = w.Abort(f)
		return Atom{}, err
	}
	return w.Commit(f)
}
