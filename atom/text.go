package atom

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
	"github.com/wippyai/atom-runtime/internal/layout"
)

// Literal is a string tagged with either a datatype or a language.
type Literal struct {
	Text     string
	Datatype URID
	Lang     URID
}

// TextSize returns the body size of s encoded as text, NUL included.
func TextSize(s string) (uint32, bool) {
	if uint64(len(s)) >= uint64(abi.MaxBodySize) {
		return 0, false
	}
	return uint32(len(s)) + 1, true
}

func validateText(s string, kind Kind) error {
	if strings.IndexByte(s, 0) >= 0 {
		return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			Path(kind.String()).
			Detail("text contains a NUL byte").
			Build()
	}
	if !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseEncode, []string{kind.String()}, []byte(s))
	}
	return nil
}

// EncodeText writes s followed by a NUL terminator into dst.
func EncodeText(dst []byte, s string) error {
	if err := validateText(s, KindString); err != nil {
		return err
	}
	n, ok := TextSize(s)
	if !ok {
		return errors.InvalidInput(errors.PhaseEncode, "text too large")
	}
	if err := checkEncode(dst, n); err != nil {
		return err
	}
	copy(dst, s)
	dst[n-1] = 0
	return nil
}

// DecodeText validates a NUL-terminated UTF-8 body and returns the text
// without its terminator. The result aliases src.
func DecodeText(src []byte) ([]byte, error) {
	return decodeText(src, KindString)
}

func decodeText(src []byte, kind Kind) ([]byte, error) {
	path := []string{kind.String()}
	if len(src) == 0 {
		return nil, errors.Malformed(errors.PhaseDecode, path, "empty text body")
	}
	if src[len(src)-1] != 0 {
		return nil, errors.Malformed(errors.PhaseDecode, path, "text is not NUL-terminated")
	}
	text := src[:len(src)-1]
	if bytes.IndexByte(text, 0) >= 0 {
		return nil, errors.Malformed(errors.PhaseDecode, path, "text contains an interior NUL")
	}
	if !utf8.Valid(text) {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformed).
			Path(path...).
			Detail("text is not valid UTF-8").
			Cause(errors.InvalidUTF8(errors.PhaseDecode, path, text)).
			Build()
	}
	return text, nil
}

// EncodeLiteral writes a literal body {datatype, lang, text NUL} into dst.
func EncodeLiteral(dst []byte, lit Literal) error {
	if err := validateText(lit.Text, KindLiteral); err != nil {
		return err
	}
	n, ok := TextSize(lit.Text)
	if !ok {
		return errors.InvalidInput(errors.PhaseEncode, "literal too large")
	}
	if err := checkEncode(dst, layout.LiteralHeaderSize+n); err != nil {
		return err
	}
	abi.PutU32(dst, 0, lit.Datatype)
	abi.PutU32(dst, 4, lit.Lang)
	return EncodeText(dst[layout.LiteralHeaderSize:], lit.Text)
}

// DecodeLiteral reads a literal body.
func DecodeLiteral(src []byte) (Literal, error) {
	if bufLen(src) < layout.MinBodySize(KindLiteral) {
		return Literal{}, errors.Malformed(errors.PhaseDecode, []string{KindLiteral.String()}, "literal body shorter than its header and terminator")
	}
	text, err := decodeText(src[layout.LiteralHeaderSize:], KindLiteral)
	if err != nil {
		return Literal{}, err
	}
	return Literal{
		Datatype: abi.U32(src, 0),
		Lang:     abi.U32(src, 4),
		Text:     string(text),
	}, nil
}
