package midi

import (
	stderrors "errors"

	"github.com/wippyai/atom-runtime/errors"
)

var (
	// ErrTooShort is returned for an empty or incomplete message.
	ErrTooShort = stderrors.New("midi: message too short")
	// ErrNoStatusByte is returned when the first byte is a data byte.
	ErrNoStatusByte = stderrors.New("midi: first byte is not a status byte")
	// ErrInteriorStatusByte is returned when a status byte follows the first.
	// An event atom carries exactly one message.
	ErrInteriorStatusByte = stderrors.New("midi: interior status byte")
	// ErrSystemExclusive is returned by Parse for F0 messages. Use ReadSysEx.
	ErrSystemExclusive = stderrors.New("midi: system exclusive message")
	// ErrUnknownMessage is returned for undefined status bytes.
	ErrUnknownMessage = stderrors.New("midi: unknown message")
	// ErrTrailingData is returned when bytes follow a complete message.
	ErrTrailingData = stderrors.New("midi: trailing data after message")
)

func typeOfStatus(status uint8) Type {
	switch status & 0xF0 {
	case StatusNoteOff:
		return TypeNoteOff
	case StatusNoteOn:
		return TypeNoteOn
	case StatusPolyKeyPressure:
		return TypePolyKeyPressure
	case StatusControlChange:
		return TypeControlChange
	case StatusProgramChange:
		return TypeProgramChange
	case StatusChannelPressure:
		return TypeChannelPressure
	case StatusPitchBend:
		return TypePitchBend
	}
	switch status {
	case StatusTimeCodeQuarterFrame:
		return TypeTimeCodeQuarterFrame
	case StatusSongPosition:
		return TypeSongPosition
	case StatusSongSelect:
		return TypeSongSelect
	case StatusTuneRequest:
		return TypeTuneRequest
	case StatusClock:
		return TypeClock
	case StatusStart:
		return TypeStart
	case StatusContinue:
		return TypeContinue
	case StatusStop:
		return TypeStop
	case StatusActiveSensing:
		return TypeActiveSensing
	case StatusReset:
		return TypeReset
	}
	return TypeUnknown
}

func parseError(cause error, b []byte) error {
	return errors.New(errors.PhaseDecode, errors.KindMalformed).
		Path("midi").
		Cause(cause).
		Detail("% x", b).
		Build()
}

// Parse decodes a single non-exclusive message.
func Parse(b []byte) (Message, error) {
	if len(b) == 0 {
		return Message{}, parseError(ErrTooShort, b)
	}
	status := b[0]
	if status&0x80 == 0 {
		return Message{}, parseError(ErrNoStatusByte, b)
	}
	for _, d := range b[1:] {
		if d&0x80 != 0 {
			return Message{}, parseError(ErrInteriorStatusByte, b)
		}
	}
	if status == StatusSysExStart {
		return Message{}, parseError(ErrSystemExclusive, b)
	}

	t := typeOfStatus(status)
	if t == TypeUnknown {
		return Message{}, parseError(ErrUnknownMessage, b)
	}
	n := t.DataLen()
	switch {
	case len(b)-1 < n:
		return Message{}, parseError(ErrTooShort, b)
	case len(b)-1 > n:
		return Message{}, parseError(ErrTrailingData, b)
	}

	m := Message{Type: t}
	if t.IsChannel() {
		m.Channel = status & 0x0F
	}
	if n >= 1 {
		m.Data1 = b[1]
	}
	if n == 2 {
		m.Data2 = b[2]
	}
	return m, nil
}
