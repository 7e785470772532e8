package atom

import (
	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
	"github.com/wippyai/atom-runtime/internal/layout"
)

// ObjectWriter builds an Object atom of key/value properties.
type ObjectWriter struct {
	w     *Writer
	frame Frame
	count int
}

// BeginObject reserves an Object atom. id is the optional subject (0 for a
// blank object) and class the optional object type (0 for none).
func (w *Writer) BeginObject(id, class URID) (ObjectWriter, error) {
	f, err := w.Reserve(w.types.Object)
	if err != nil {
		return ObjectWriter{}, err
	}
	var hdr [layout.ObjectHeaderSize]byte
	abi.PutU32(hdr[:], 0, id)
	abi.PutU32(hdr[:], 4, class)
	if _, err := w.Write(hdr[:]); err != nil {
		_ = w.Abort(f)
		return ObjectWriter{}, err
	}
	return ObjectWriter{w: w, frame: f}, nil
}

// Len returns the number of properties pushed so far.
func (o *ObjectWriter) Len() int {
	return o.count
}

// PushProperty appends a property whose value is the single atom written by
// fn. Keys are not deduplicated.
func (o *ObjectWriter) PushProperty(key, context URID, fn func(*Writer) error) error {
	if o.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "object was not started")
	}
	var prefix [layout.PropertyPrefixSize]byte
	abi.PutU32(prefix[:], 0, key)
	abi.PutU32(prefix[:], 4, context)
	if err := o.w.pushChild(o.frame, prefix[:], fn); err != nil {
		return err
	}
	o.count++
	return nil
}

// Finish commits the object.
func (o *ObjectWriter) Finish() (Atom, error) {
	if o.w == nil {
		return Atom{}, errors.InvalidState(errors.PhaseWrite, "object was not started")
	}
	return o.w.Commit(o.frame)
}

// Abort drops the object and all of its properties.
func (o *ObjectWriter) Abort() error {
	if o.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "object was not started")
	}
	return o.w.Abort(o.frame)
}

// Property is one key/value entry of an object.
type Property struct {
	Value   Atom
	Key     URID
	Context URID
}

// Object is a read view of an Object atom.
type Object struct {
	body  []byte
	base  uint32
	id    URID
	class URID
}

// AsObject interprets a as an Object. Resource and Blank atoms are accepted
// as objects too.
func (r *Reader) AsObject(a Atom) (Object, error) {
	if err := r.expectKind(a, KindObject, r.types.Object); err != nil {
		return Object{}, err
	}
	if bufLen(a.Body) < layout.MinBodySize(KindObject) {
		return Object{}, errors.Malformed(errors.PhaseRead, []string{"object"}, "body shorter than object header")
	}
	return Object{
		body:  a.Body[layout.ObjectHeaderSize:],
		base:  a.Offset + HeaderSize + layout.ObjectHeaderSize,
		id:    abi.U32(a.Body, 0),
		class: abi.U32(a.Body, 4),
	}, nil
}

// ID returns the object's subject, 0 for a blank object.
func (o Object) ID() URID {
	return o.id
}

// Class returns the object's type, 0 if none.
func (o Object) Class() URID {
	return o.class
}

// Iter returns a fresh iterator over the properties in stored order.
func (o Object) Iter() PropertyIter {
	return PropertyIter{walk: newWalker(o.body, o.base, layout.PropertyPrefixSize, KindObject)}
}

// Get returns the value of the first property with the given key.
// Later duplicates are only reachable through Iter.
func (o Object) Get(key URID) (Atom, bool) {
	it := o.Iter()
	for it.Next() {
		if p := it.Property(); p.Key == key {
			return p.Value, true
		}
	}
	return Atom{}, false
}

// Len counts the properties.
func (o Object) Len() (int, error) {
	n := 0
	it := o.Iter()
	for it.Next() {
		n++
	}
	return n, it.Err()
}

// PropertyIter walks an object's properties lazily.
type PropertyIter struct {
	err  error
	cur  Property
	walk walker
}

// Next advances to the next property. It returns false at the end of the
// object or on a malformed property; check Err afterwards.
func (it *PropertyIter) Next() bool {
	if it.err != nil {
		return false
	}
	prefix, a, ok, err := it.walk.next()
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		return false
	}
	it.cur = Property{
		Key:     abi.U32(prefix, 0),
		Context: abi.U32(prefix, 4),
		Value:   a,
	}
	return true
}

// Property returns the current property.
func (it *PropertyIter) Property() Property {
	return it.cur
}

func (it *PropertyIter) Err() error {
	return it.err
}
