package atom

import (
	"github.com/wippyai/atom-runtime/errors"
)

// TupleWriter builds a Tuple atom of heterogeneous children.
type TupleWriter struct {
	w     *Writer
	frame Frame
	count int
}

// BeginTuple reserves a Tuple atom.
func (w *Writer) BeginTuple() (TupleWriter, error) {
	f, err := w.Reserve(w.types.Tuple)
	if err != nil {
		return TupleWriter{}, err
	}
	return TupleWriter{w: w, frame: f}, nil
}

// Len returns the number of children pushed so far.
func (t *TupleWriter) Len() int {
	return t.count
}

// Push appends the single atom written by fn. If fn fails, or writes
// anything other than one committed atom, the tuple is left unchanged.
func (t *TupleWriter) Push(fn func(*Writer) error) error {
	if t.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "tuple was not started")
	}
	if err := t.w.pushChild(t.frame, nil, fn); err != nil {
		return err
	}
	t.count++
	return nil
}

func (t *TupleWriter) PushBool(v bool) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteBool(v); return err })
}

func (t *TupleWriter) PushInt(v int32) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteInt(v); return err })
}

func (t *TupleWriter) PushLong(v int64) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteLong(v); return err })
}

func (t *TupleWriter) PushFloat(v float32) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteFloat(v); return err })
}

func (t *TupleWriter) PushDouble(v float64) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteDouble(v); return err })
}

func (t *TupleWriter) PushURID(v URID) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteURID(v); return err })
}

func (t *TupleWriter) PushString(v string) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteString(v); return err })
}

func (t *TupleWriter) PushChunk(v []byte) error {
	return t.Push(func(w *Writer) error { _, err := w.WriteChunk(v); return err })
}

// Finish commits the tuple. Every child must already be committed.
func (t *TupleWriter) Finish() (Atom, error) {
	if t.w == nil {
		return Atom{}, errors.InvalidState(errors.PhaseWrite, "tuple was not started")
	}
	return t.w.Commit(t.frame)
}

// Abort drops the tuple and all of its children.
func (t *TupleWriter) Abort() error {
	if t.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "tuple was not started")
	}
	return t.w.Abort(t.frame)
}

// Tuple is a read view of a Tuple atom.
type Tuple struct {
	body []byte
	base uint32
}

// AsTuple interprets a as a Tuple.
func (r *Reader) AsTuple(a Atom) (Tuple, error) {
	if err := r.expectKind(a, KindTuple, r.types.Tuple); err != nil {
		return Tuple{}, err
	}
	return Tuple{body: a.Body, base: a.Offset + HeaderSize}, nil
}

// Iter returns a fresh iterator over the children. Iterating again restarts
// from the first child.
func (t Tuple) Iter() TupleIter {
	return TupleIter{walk: newWalker(t.body, t.base, 0, KindTuple)}
}

// Len counts the children.
func (t Tuple) Len() (int, error) {
	n := 0
	it := t.Iter()
	for it.Next() {
		n++
	}
	return n, it.Err()
}

// At returns child i.
func (t Tuple) At(i int) (Atom, error) {
	if i >= 0 {
		it := t.Iter()
		for n := 0; it.Next(); n++ {
			if n == i {
				return it.Atom(), nil
			}
		}
		if err := it.Err(); err != nil {
			return Atom{}, err
		}
	}
	n, _ := t.Len()
	return Atom{}, errors.OutOfBounds(errors.PhaseRead, []string{"tuple"}, i, n)
}

// TupleIter walks a tuple's children lazily.
type TupleIter struct {
	err  error
	cur  Atom
	walk walker
}

// Next advances to the next child. It returns false at the end of the tuple
// or on a malformed child; check Err afterwards.
func (it *TupleIter) Next() bool {
	if it.err != nil {
		return false
	}
	_, a, ok, err := it.walk.next()
	if err != nil {
		it.err = err
		return false
	}
	it.cur = a
	return ok
}

// Atom returns the current child.
func (it *TupleIter) Atom() Atom {
	return it.cur
}

func (it *TupleIter) Err() error {
	return it.err
}
