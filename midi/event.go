package midi

import (
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
)

// WriteEvent writes m as a complete midi#MidiEvent atom.
func WriteEvent(w *atom.Writer, m Message) (atom.Atom, error) {
	var b [MaxMessageSize]byte
	enc, err := m.AppendTo(b[:0])
	if err != nil {
		return atom.Atom{}, err
	}
	return w.WriteAtom(w.Types().MIDIEvent, enc)
}

// PushEvent appends m to a sequence at ts.
func PushEvent(seq *atom.SequenceWriter, ts atom.TimeStamp, m Message) error {
	return seq.PushEvent(ts, func(w *atom.Writer) error {
		_, err := WriteEvent(w, m)
		return err
	})
}

// ReadEvent decodes a midi#MidiEvent atom.
func ReadEvent(r *atom.Reader, a atom.Atom) (Message, error) {
	if err := expectEvent(r, a); err != nil {
		return Message{}, err
	}
	return Parse(a.Body)
}

// IsSysEx reports whether a is a system-exclusive event.
func IsSysEx(r *atom.Reader, a atom.Atom) bool {
	t := r.Types()
	return t.MIDIEvent != 0 && a.Header.Type == t.MIDIEvent && len(a.Body) > 0 && a.Body[0] == StatusSysExStart
}

// WriteSysEx writes data framed by F0 and F7 as a midi#MidiEvent atom. data
// must not contain status bytes.
func WriteSysEx(w *atom.Writer, data []byte) (atom.Atom, error) {
	for i, d := range data {
		if d&0x80 != 0 {
			return atom.Atom{}, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
				Path("sysex").
				Value(i).
				Cause(ErrInteriorStatusByte).
				Detail("byte %d is 0x%02x", i, d).
				Build()
		}
	}

	f, err := w.Reserve(w.Types().MIDIEvent)
	if err != nil {
		return atom.Atom{}, err
	}
	start := [1]byte{StatusSysExStart}
	end := [1]byte{StatusSysExEnd}
	for _, p := range [][]byte{start[:], data, end[:]} {
		if _, err := w.Write(p); err != nil {
			_ = w.Abort(f)
			return atom.Atom{}, err
		}
	}
	return w.Commit(f)
}

// ReadSysEx returns the payload between F0 and F7. The slice aliases the
// buffer.
func ReadSysEx(r *atom.Reader, a atom.Atom) ([]byte, error) {
	if err := expectEvent(r, a); err != nil {
		return nil, err
	}
	b := a.Body
	if len(b) < 2 {
		return nil, parseError(ErrTooShort, b)
	}
	if b[0] != StatusSysExStart || b[len(b)-1] != StatusSysExEnd {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformed).
			Path("sysex").
			Detail("message is not framed by f0 and f7").
			Build()
	}
	data := b[1 : len(b)-1]
	for _, d := range data {
		if d&0x80 != 0 {
			return nil, parseError(ErrInteriorStatusByte, b)
		}
	}
	return data, nil
}

func expectEvent(r *atom.Reader, a atom.Atom) error {
	t := r.Types()
	if t.MIDIEvent == 0 || a.Header.Type != t.MIDIEvent {
		return errors.TypeMismatch(errors.PhaseRead, nil, t.Name(a.Header.Type), t.Name(t.MIDIEvent))
	}
	return nil
}
