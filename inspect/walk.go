package inspect

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/midi"
)

// DefaultMaxDepth bounds recursion into nested containers.
const DefaultMaxDepth = 64

// chunkPreview is how many chunk bytes are printed.
const chunkPreview = 16

// Inspector walks atoms of one buffer.
type Inspector struct {
	reader   *atom.Reader
	names    atomruntime.Unmapper
	maxDepth int
}

// New creates an inspector over r.
func New(r *atom.Reader) *Inspector {
	return &Inspector{reader: r, maxDepth: DefaultMaxDepth}
}

// WithUnmapper names ids outside the atom vocabulary, such as object keys.
func (in *Inspector) WithUnmapper(u atomruntime.Unmapper) *Inspector {
	in.names = u
	return in
}

// WithMaxDepth sets the container nesting limit.
func (in *Inspector) WithMaxDepth(depth int) *Inspector {
	in.maxDepth = depth
	return in
}

// Root walks the top-level atom of the buffer.
func (in *Inspector) Root() (*Node, error) {
	a, err := in.reader.Root()
	if err != nil {
		return nil, err
	}
	return in.Walk(a), nil
}

// Walk decodes a and everything nested in it.
func (in *Inspector) Walk(a atom.Atom) *Node {
	return in.walk(a, "", 0)
}

// Name returns a short name for id.
func (in *Inspector) Name(id atom.URID) string {
	types := in.reader.Types()
	if types.KindOf(id) != atom.KindUnknown || in.names == nil {
		return types.Name(id)
	}
	if uri, ok := in.names.Unmap(id); ok {
		if i := strings.LastIndexByte(uri, '/'); i >= 0 && i+1 < len(uri) {
			return uri[i+1:]
		}
		return uri
	}
	return types.Name(id)
}

func (in *Inspector) walk(a atom.Atom, label string, depth int) *Node {
	types := in.reader.Types()
	n := &Node{
		Label:    label,
		Type:     a.Header.Type,
		TypeName: in.Name(a.Header.Type),
		Kind:     types.KindOf(a.Header.Type),
		Offset:   a.Offset,
		Size:     a.Header.Size,
	}
	if depth > in.maxDepth {
		n.Err = errors.New(errors.PhaseValidate, errors.KindInvalidState).
			Value(depth).
			Detail("nesting deeper than %d", in.maxDepth).
			Build()
		return n
	}

	switch {
	case n.Kind.IsScalar():
		n.Value, n.Err = in.scalar(a)
	case n.Kind.IsText(), n.Kind == atom.KindLiteral:
		n.Value, n.Err = in.text(a)
	}

	switch n.Kind {
	case atom.KindChunk:
		n.Value = chunkValue(a.Body)
	case atom.KindVector:
		in.vector(n, a)
	case atom.KindTuple:
		in.tuple(n, a, depth)
	case atom.KindSequence:
		in.sequence(n, a, depth)
	case atom.KindObject:
		in.object(n, a, depth)
	case atom.KindMIDI:
		in.midiEvent(n, a)
	case atom.KindUnknown:
		n.Value = fmt.Sprintf("(%d bytes)", a.Header.Size)
	}
	return n
}

func (in *Inspector) scalar(a atom.Atom) (string, error) {
	r := in.reader
	switch r.Types().KindOf(a.Header.Type) {
	case atom.KindBool:
		v, err := r.AsBool(a)
		return strconv.FormatBool(v), err
	case atom.KindInt:
		v, err := r.AsInt(a)
		return strconv.FormatInt(int64(v), 10), err
	case atom.KindLong:
		v, err := r.AsLong(a)
		return strconv.FormatInt(v, 10), err
	case atom.KindFloat:
		v, err := r.AsFloat(a)
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case atom.KindDouble:
		v, err := r.AsDouble(a)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case atom.KindURID:
		v, err := r.AsURID(a)
		if err != nil {
			return "", err
		}
		return in.Name(v), nil
	}
	return "", nil
}

func (in *Inspector) text(a atom.Atom) (string, error) {
	r := in.reader
	if r.Types().KindOf(a.Header.Type) == atom.KindLiteral {
		lit, err := r.AsLiteral(a)
		if err != nil {
			return "", err
		}
		s := strconv.Quote(lit.Text)
		switch {
		case lit.Datatype != 0:
			s += "^^" + in.Name(lit.Datatype)
		case lit.Lang != 0:
			s += "@" + in.Name(lit.Lang)
		}
		return s, nil
	}
	b, err := r.AsText(a)
	if err != nil {
		return "", err
	}
	return strconv.Quote(string(b)), nil
}

func chunkValue(b []byte) string {
	if len(b) <= chunkPreview {
		return fmt.Sprintf("(%d bytes) %s", len(b), hex.EncodeToString(b))
	}
	return fmt.Sprintf("(%d bytes) %s...", len(b), hex.EncodeToString(b[:chunkPreview]))
}

func (in *Inspector) vector(n *Node, a atom.Atom) {
	v, err := in.reader.AsVector(a)
	if err != nil {
		n.Err = err
		return
	}
	types := in.reader.Types()
	elemName := in.Name(v.ElemType)
	n.Value = fmt.Sprintf("len=%d elem=%s", v.Len(), elemName)
	kind := types.KindOf(v.ElemType)
	for i := 0; i < v.Len(); i++ {
		raw, err := v.At(i)
		c := &Node{
			Label:    "[" + strconv.Itoa(i) + "]",
			Type:     v.ElemType,
			TypeName: elemName,
			Kind:     kind,
			Size:     v.ElemWidth,
			Err:      err,
		}
		if err == nil {
			c.Value, c.Err = in.element(kind, raw)
		}
		n.Children = append(n.Children, c)
	}
}

func (in *Inspector) element(kind atom.Kind, raw []byte) (string, error) {
	switch kind {
	case atom.KindBool:
		v, err := atom.DecodeBool(raw)
		return strconv.FormatBool(v), err
	case atom.KindInt:
		v, err := atom.DecodeInt(raw)
		return strconv.FormatInt(int64(v), 10), err
	case atom.KindLong:
		v, err := atom.DecodeLong(raw)
		return strconv.FormatInt(v, 10), err
	case atom.KindFloat:
		v, err := atom.DecodeFloat(raw)
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case atom.KindDouble:
		v, err := atom.DecodeDouble(raw)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case atom.KindURID:
		v, err := atom.DecodeURID(raw)
		if err != nil {
			return "", err
		}
		return in.Name(v), nil
	}
	return hex.EncodeToString(raw), nil
}

func (in *Inspector) tuple(n *Node, a atom.Atom, depth int) {
	t, err := in.reader.AsTuple(a)
	if err != nil {
		n.Err = err
		return
	}
	it := t.Iter()
	for i := 0; it.Next(); i++ {
		n.Children = append(n.Children, in.walk(it.Atom(), "["+strconv.Itoa(i)+"]", depth+1))
	}
	n.Err = it.Err()
	n.Value = fmt.Sprintf("len=%d", len(n.Children))
}

func (in *Inspector) sequence(n *Node, a atom.Atom, depth int) {
	s, err := in.reader.AsSequence(a)
	if err != nil {
		n.Err = err
		return
	}
	it := s.Iter()
	for it.Next() {
		ev := it.Event()
		n.Children = append(n.Children, in.walk(ev.Atom, "@"+ev.Time.String(), depth+1))
	}
	n.Err = it.Err()
	n.Value = fmt.Sprintf("unit=%s events=%d", s.Unit(), len(n.Children))
}

func (in *Inspector) object(n *Node, a atom.Atom, depth int) {
	o, err := in.reader.AsObject(a)
	if err != nil {
		n.Err = err
		return
	}
	var parts []string
	if o.ID() != 0 {
		parts = append(parts, "id="+in.Name(o.ID()))
	}
	if o.Class() != 0 {
		parts = append(parts, "class="+in.Name(o.Class()))
	}
	n.Value = strings.Join(parts, " ")

	it := o.Iter()
	for it.Next() {
		p := it.Property()
		label := in.Name(p.Key)
		if p.Context != 0 {
			label += " (" + in.Name(p.Context) + ")"
		}
		n.Children = append(n.Children, in.walk(p.Value, label, depth+1))
	}
	n.Err = it.Err()
}

func (in *Inspector) midiEvent(n *Node, a atom.Atom) {
	if midi.IsSysEx(in.reader, a) {
		data, err := midi.ReadSysEx(in.reader, a)
		n.Err = err
		n.Value = "SysEx " + hex.EncodeToString(data)
		return
	}
	msg, err := midi.ReadEvent(in.reader, a)
	if err != nil {
		n.Err = err
		n.Value = hex.EncodeToString(a.Body)
		return
	}
	n.Value = msg.String()
}
