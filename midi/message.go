package midi

import (
	"fmt"

	"github.com/wippyai/atom-runtime/errors"
)

// Type identifies a MIDI message.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeNoteOff
	TypeNoteOn
	TypePolyKeyPressure
	TypeControlChange
	TypeProgramChange
	TypeChannelPressure
	TypePitchBend
	TypeTimeCodeQuarterFrame
	TypeSongPosition
	TypeSongSelect
	TypeTuneRequest
	TypeClock
	TypeStart
	TypeContinue
	TypeStop
	TypeActiveSensing
	TypeReset
)

// Status bytes. Channel messages carry the channel in the low nibble.
const (
	StatusNoteOff              = 0x80
	StatusNoteOn               = 0x90
	StatusPolyKeyPressure      = 0xA0
	StatusControlChange        = 0xB0
	StatusProgramChange        = 0xC0
	StatusChannelPressure      = 0xD0
	StatusPitchBend            = 0xE0
	StatusSysExStart           = 0xF0
	StatusTimeCodeQuarterFrame = 0xF1
	StatusSongPosition         = 0xF2
	StatusSongSelect           = 0xF3
	StatusTuneRequest          = 0xF6
	StatusSysExEnd             = 0xF7
	StatusClock                = 0xF8
	StatusStart                = 0xFA
	StatusContinue             = 0xFB
	StatusStop                 = 0xFC
	StatusActiveSensing        = 0xFE
	StatusReset                = 0xFF
)

// MaxMessageSize is the encoded size of the longest non-exclusive message.
const MaxMessageSize = 3

var typeInfo = [...]struct {
	name   string
	status uint8
	data   int
}{
	TypeUnknown:              {"Unknown", 0, 0},
	TypeNoteOff:              {"NoteOff", StatusNoteOff, 2},
	TypeNoteOn:               {"NoteOn", StatusNoteOn, 2},
	TypePolyKeyPressure:      {"PolyKeyPressure", StatusPolyKeyPressure, 2},
	TypeControlChange:        {"ControlChange", StatusControlChange, 2},
	TypeProgramChange:        {"ProgramChange", StatusProgramChange, 1},
	TypeChannelPressure:      {"ChannelPressure", StatusChannelPressure, 1},
	TypePitchBend:            {"PitchBend", StatusPitchBend, 2},
	TypeTimeCodeQuarterFrame: {"TimeCodeQuarterFrame", StatusTimeCodeQuarterFrame, 1},
	TypeSongPosition:         {"SongPosition", StatusSongPosition, 2},
	TypeSongSelect:           {"SongSelect", StatusSongSelect, 1},
	TypeTuneRequest:          {"TuneRequest", StatusTuneRequest, 0},
	TypeClock:                {"Clock", StatusClock, 0},
	TypeStart:                {"Start", StatusStart, 0},
	TypeContinue:             {"Continue", StatusContinue, 0},
	TypeStop:                 {"Stop", StatusStop, 0},
	TypeActiveSensing:        {"ActiveSensing", StatusActiveSensing, 0},
	TypeReset:                {"Reset", StatusReset, 0},
}

func (t Type) String() string {
	if int(t) < len(typeInfo) {
		return typeInfo[t].name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsChannel reports whether messages of this type carry a channel.
func (t Type) IsChannel() bool {
	return t >= TypeNoteOff && t <= TypePitchBend
}

// DataLen returns the number of data bytes that follow the status byte.
func (t Type) DataLen() int {
	if int(t) < len(typeInfo) {
		return typeInfo[t].data
	}
	return 0
}

// Message is a decoded non-exclusive MIDI message.
//
// Data1 and Data2 hold the raw 7-bit data bytes. Fourteen-bit values (pitch
// bend, song position) are split LSB first; use Value14.
type Message struct {
	Type    Type
	Channel uint8
	Data1   uint8
	Data2   uint8
}

func NoteOff(channel, note, velocity uint8) Message {
	return Message{Type: TypeNoteOff, Channel: channel, Data1: note, Data2: velocity}
}

func NoteOn(channel, note, velocity uint8) Message {
	return Message{Type: TypeNoteOn, Channel: channel, Data1: note, Data2: velocity}
}

func PolyKeyPressure(channel, note, pressure uint8) Message {
	return Message{Type: TypePolyKeyPressure, Channel: channel, Data1: note, Data2: pressure}
}

func ControlChange(channel, controller, value uint8) Message {
	return Message{Type: TypeControlChange, Channel: channel, Data1: controller, Data2: value}
}

func ProgramChange(channel, program uint8) Message {
	return Message{Type: TypeProgramChange, Channel: channel, Data1: program}
}

func ChannelPressure(channel, pressure uint8) Message {
	return Message{Type: TypeChannelPressure, Channel: channel, Data1: pressure}
}

// PitchBend builds a pitch bend message. 0x2000 is the centre position.
func PitchBend(channel uint8, value uint16) Message {
	return Message{Type: TypePitchBend, Channel: channel, Data1: uint8(value & 0x7F), Data2: uint8(value >> 7)}
}

// TimeCodeQuarterFrame builds an MTC quarter frame with a 3-bit piece number
// and a 4-bit value.
func TimeCodeQuarterFrame(piece, value uint8) Message {
	return Message{Type: TypeTimeCodeQuarterFrame, Data1: piece<<4 | value&0x0F}
}

func SongPosition(beats uint16) Message {
	return Message{Type: TypeSongPosition, Data1: uint8(beats & 0x7F), Data2: uint8(beats >> 7)}
}

func SongSelect(song uint8) Message {
	return Message{Type: TypeSongSelect, Data1: song}
}

func TuneRequest() Message   { return Message{Type: TypeTuneRequest} }
func Clock() Message         { return Message{Type: TypeClock} }
func Start() Message         { return Message{Type: TypeStart} }
func Continue() Message      { return Message{Type: TypeContinue} }
func Stop() Message          { return Message{Type: TypeStop} }
func ActiveSensing() Message { return Message{Type: TypeActiveSensing} }
func Reset() Message         { return Message{Type: TypeReset} }

// Value14 joins the two data bytes into a 14-bit value.
func (m Message) Value14() uint16 {
	return uint16(m.Data2&0x7F)<<7 | uint16(m.Data1&0x7F)
}

// Piece returns the piece number of a time code quarter frame.
func (m Message) Piece() uint8 {
	return (m.Data1 >> 4) & 0x07
}

// Len returns the encoded size of the message in bytes.
func (m Message) Len() int {
	return 1 + m.Type.DataLen()
}

// Status returns the status byte, including the channel for channel messages.
func (m Message) Status() uint8 {
	if int(m.Type) >= len(typeInfo) {
		return 0
	}
	s := typeInfo[m.Type].status
	if m.Type.IsChannel() {
		s |= m.Channel & 0x0F
	}
	return s
}

// Validate checks that every field fits its encoded width.
func (m Message) Validate() error {
	if m.Type == TypeUnknown || int(m.Type) >= len(typeInfo) {
		return errors.InvalidInput(errors.PhaseEncode, fmt.Sprintf("unknown message type %d", m.Type))
	}
	if m.Type.IsChannel() && m.Channel > 0x0F {
		return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			Path(m.Type.String(), "channel").
			Value(m.Channel).
			Detail("channel %d exceeds 15", m.Channel).
			Build()
	}
	n := m.Type.DataLen()
	if n >= 1 && m.Data1 > 0x7F {
		return dataRangeError(m.Type, "data1", m.Data1)
	}
	if n == 2 && m.Data2 > 0x7F {
		return dataRangeError(m.Type, "data2", m.Data2)
	}
	return nil
}

func dataRangeError(t Type, field string, v uint8) error {
	return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
		Path(t.String(), field).
		Value(v).
		Detail("data byte 0x%02x has the status bit set", v).
		Build()
}

// AppendTo appends the encoded message to dst.
func (m Message) AppendTo(dst []byte) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return dst, err
	}
	dst = append(dst, m.Status())
	switch m.Type.DataLen() {
	case 1:
		dst = append(dst, m.Data1)
	case 2:
		dst = append(dst, m.Data1, m.Data2)
	}
	return dst, nil
}

// Encode returns the encoded message.
func (m Message) Encode() ([]byte, error) {
	return m.AppendTo(make([]byte, 0, MaxMessageSize))
}

func (m Message) String() string {
	switch m.Type {
	case TypeNoteOff, TypeNoteOn, TypePolyKeyPressure:
		return fmt.Sprintf("%s ch=%d note=%d value=%d", m.Type, m.Channel, m.Data1, m.Data2)
	case TypeControlChange:
		return fmt.Sprintf("%s ch=%d controller=%d value=%d", m.Type, m.Channel, m.Data1, m.Data2)
	case TypeProgramChange, TypeChannelPressure:
		return fmt.Sprintf("%s ch=%d value=%d", m.Type, m.Channel, m.Data1)
	case TypePitchBend:
		return fmt.Sprintf("%s ch=%d value=%d", m.Type, m.Channel, m.Value14())
	case TypeTimeCodeQuarterFrame:
		return fmt.Sprintf("%s piece=%d value=%d", m.Type, m.Piece(), m.Data1&0x0F)
	case TypeSongPosition:
		return fmt.Sprintf("%s beats=%d", m.Type, m.Value14())
	case TypeSongSelect:
		return fmt.Sprintf("%s song=%d", m.Type, m.Data1)
	}
	return m.Type.String()
}
