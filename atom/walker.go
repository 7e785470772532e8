package atom

import (
	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
)

// walker steps through the children of a container body. Each child is an
// optional fixed prefix followed by an atom, padded to the next boundary.
type walker struct {
	body   []byte
	kind   Kind
	base   uint32 // buffer offset of body[0]
	off    uint32
	prefix uint32
	index  int
}

func newWalker(body []byte, base, prefix uint32, kind Kind) walker {
	return walker{body: body, base: base, prefix: prefix, kind: kind}
}

// next returns the prefix bytes and the atom at the cursor. It reports false
// once the body is consumed. A child that overruns the body is malformed and
// ends the walk.
func (w *walker) next() ([]byte, Atom, bool, error) {
	n := bufLen(w.body)
	if w.off >= n {
		return nil, Atom{}, false, nil
	}

	start := w.off
	if !abi.Fits(start, w.prefix+HeaderSize, n) {
		w.off = n
		return nil, Atom{}, false, errors.New(errors.PhaseRead, errors.KindMalformed).
			Path(w.kind.String()).
			Value(w.index).
			Detail("child %d header at body offset %d overruns %d-byte body", w.index, start, n).
			Build()
	}

	hdrOff := start + w.prefix
	size := abi.U32(w.body, hdrOff)
	typ := abi.U32(w.body, hdrOff+4)
	bodyOff := hdrOff + HeaderSize
	if !abi.Fits(bodyOff, size, n) {
		w.off = n
		return nil, Atom{}, false, errors.New(errors.PhaseRead, errors.KindMalformed).
			Path(w.kind.String()).
			Value(w.index).
			Detail("child %d claims %d bytes, %d remain", w.index, size, n-bodyOff).
			Build()
	}

	end := bodyOff + size
	next := abi.AlignTo(end, Alignment)
	if next < end || next > n {
		next = n
	}
	w.off = next
	w.index++

	a := Atom{
		Header: Header{Size: size, Type: typ},
		Body:   w.body[bodyOff:end:end],
		Offset: w.base + hdrOff,
	}
	return w.body[start:hdrOff:hdrOff], a, true, nil
}
