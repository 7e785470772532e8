package atom

import (
	"math"
	"strconv"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
	"github.com/wippyai/atom-runtime/internal/layout"
)

// TimeUnit is the time base shared by every event of a sequence.
type TimeUnit uint8

const (
	// TimeFrames stamps events with an unsigned audio frame count.
	TimeFrames TimeUnit = iota
	// TimeBeats stamps events with a fractional beat position.
	TimeBeats
)

func (u TimeUnit) String() string {
	switch u {
	case TimeFrames:
		return "frames"
	case TimeBeats:
		return "beats"
	default:
		return "unknown"
	}
}

// TimeStamp is an event time in either frames or beats.
type TimeStamp struct {
	Frames uint64
	Beats  float64
	Unit   TimeUnit
}

func FrameTime(frames uint64) TimeStamp {
	return TimeStamp{Frames: frames, Unit: TimeFrames}
}

func BeatTime(beats float64) TimeStamp {
	return TimeStamp{Beats: beats, Unit: TimeBeats}
}

// Less reports whether ts is strictly earlier than o. Both must share a unit.
func (ts TimeStamp) Less(o TimeStamp) bool {
	if ts.Unit == TimeBeats {
		return ts.Beats < o.Beats
	}
	return ts.Frames < o.Frames
}

func (ts TimeStamp) String() string {
	if ts.Unit == TimeBeats {
		return strconv.FormatFloat(ts.Beats, 'g', -1, 64) + " beats"
	}
	return strconv.FormatUint(ts.Frames, 10) + " frames"
}

func (ts TimeStamp) bits() uint64 {
	if ts.Unit == TimeBeats {
		return math.Float64bits(ts.Beats)
	}
	return ts.Frames
}

// SequenceWriter builds a Sequence atom of time-stamped events.
type SequenceWriter struct {
	w     *Writer
	last  TimeStamp
	frame Frame
	count int
	unit  TimeUnit
}

// BeginSequence reserves a Sequence atom whose events are stamped in unit.
func (w *Writer) BeginSequence(unit TimeUnit) (SequenceWriter, error) {
	var unitID URID
	switch unit {
	case TimeFrames:
		unitID = w.types.FrameTime
	case TimeBeats:
		unitID = w.types.BeatTime
	default:
		return SequenceWriter{}, errors.New(errors.PhaseWrite, errors.KindInvalidInput).
			Path("sequence").
			Detail("unknown time unit %d", unit).
			Build()
	}

	f, err := w.Reserve(w.types.Sequence)
	if err != nil {
		return SequenceWriter{}, err
	}
	var hdr [layout.SequenceHeaderSize]byte
	abi.PutU32(hdr[:], 0, unitID)
	if _, err := w.Write(hdr[:]); err != nil {
		_ = w.Abort(f)
		return SequenceWriter{}, err
	}
	return SequenceWriter{w: w, frame: f, unit: unit}, nil
}

func (s *SequenceWriter) Unit() TimeUnit {
	return s.unit
}

// Len returns the number of events pushed so far.
func (s *SequenceWriter) Len() int {
	return s.count
}

// PushEvent appends one event at ts whose atom is written by fn.
// A stamp earlier than the previous event fails with KindOutOfOrder; equal
// stamps are allowed. Rejected events are not added.
func (s *SequenceWriter) PushEvent(ts TimeStamp, fn func(*Writer) error) error {
	if s.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "sequence was not started")
	}
	if ts.Unit != s.unit {
		return errors.TypeMismatch(errors.PhaseWrite, []string{"sequence", strconv.Itoa(s.count)},
			ts.Unit.String(), s.unit.String())
	}
	if ts.Unit == TimeBeats && math.IsNaN(ts.Beats) {
		return errors.InvalidInput(errors.PhaseWrite, "beat time is NaN")
	}
	if s.count > 0 && ts.Less(s.last) {
		return errors.OutOfOrder(errors.PhaseWrite, []string{"sequence", strconv.Itoa(s.count)}, s.last, ts)
	}

	var prefix [layout.EventPrefixSize]byte
	abi.PutU64(prefix[:], 0, ts.bits())
	if err := s.w.pushChild(s.frame, prefix[:], fn); err != nil {
		return err
	}
	s.last = ts
	s.count++
	return nil
}

// Finish commits the sequence.
func (s *SequenceWriter) Finish() (Atom, error) {
	if s.w == nil {
		return Atom{}, errors.InvalidState(errors.PhaseWrite, "sequence was not started")
	}
	return s.w.Commit(s.frame)
}

// Abort drops the sequence and all of its events.
func (s *SequenceWriter) Abort() error {
	if s.w == nil {
		return errors.InvalidState(errors.PhaseWrite, "sequence was not started")
	}
	return s.w.Abort(s.frame)
}

// Event is one time-stamped entry of a sequence.
type Event struct {
	Atom Atom
	Time TimeStamp
}

// Sequence is a read view of a Sequence atom.
type Sequence struct {
	body []byte
	base uint32
	unit TimeUnit
}

// AsSequence interprets a as a Sequence. A unit of 0 is read as frames.
func (r *Reader) AsSequence(a Atom) (Sequence, error) {
	if err := r.expectKind(a, KindSequence, r.types.Sequence); err != nil {
		return Sequence{}, err
	}
	if bufLen(a.Body) < layout.MinBodySize(KindSequence) {
		return Sequence{}, errors.Malformed(errors.PhaseRead, []string{"sequence"}, "body shorter than sequence header")
	}

	var unit TimeUnit
	switch id := abi.U32(a.Body, 0); {
	case id == 0 || id == r.types.FrameTime:
		unit = TimeFrames
	case id == r.types.BeatTime:
		unit = TimeBeats
	default:
		return Sequence{}, errors.New(errors.PhaseRead, errors.KindMalformed).
			Path("sequence").
			Got(r.types.Name(id)).
			Want("atom#frameTime or atom#beatTime").
			Build()
	}

	return Sequence{
		body: a.Body[layout.SequenceHeaderSize:],
		base: a.Offset + HeaderSize + layout.SequenceHeaderSize,
		unit: unit,
	}, nil
}

func (s Sequence) Unit() TimeUnit {
	return s.unit
}

// Iter returns a fresh iterator over the events in stored order.
func (s Sequence) Iter() SequenceIter {
	return SequenceIter{
		walk: newWalker(s.body, s.base, layout.EventPrefixSize, KindSequence),
		unit: s.unit,
	}
}

// Len counts the events.
func (s Sequence) Len() (int, error) {
	n := 0
	it := s.Iter()
	for it.Next() {
		n++
	}
	return n, it.Err()
}

// At returns event i.
func (s Sequence) At(i int) (Event, error) {
	if i >= 0 {
		it := s.Iter()
		for n := 0; it.Next(); n++ {
			if n == i {
				return it.Event(), nil
			}
		}
		if err := it.Err(); err != nil {
			return Event{}, err
		}
	}
	n, _ := s.Len()
	return Event{}, errors.OutOfBounds(errors.PhaseRead, []string{"sequence"}, i, n)
}

// SequenceIter walks a sequence's events lazily.
type SequenceIter struct {
	err  error
	cur  Event
	walk walker
	unit TimeUnit
}

// Next advances to the next event. It returns false at the end of the
// sequence or on a malformed event; check Err afterwards.
func (it *SequenceIter) Next() bool {
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

	raw := abi.U64(prefix, 0)
	ts := TimeStamp{Unit: it.unit}
	if it.unit == TimeBeats {
		ts.Beats = math.Float64frombits(raw)
	} else {
		ts.Frames = raw
	}
	it.cur = Event{Time: ts, Atom: a}
	return true
}

// Event returns the current event.
func (it *SequenceIter) Event() Event {
	return it.cur
}

func (it *SequenceIter) Err() error {
	return it.err
}
