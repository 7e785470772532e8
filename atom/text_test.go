package atom

import (
	"testing"

	"github.com/wippyai/atom-runtime/errors"
)

func TestText_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "grüße", "日本語"} {
		n, ok := TextSize(s)
		if !ok {
			t.Fatalf("TextSize(%q) overflow", s)
		}
		buf := make([]byte, n)
		if err := EncodeText(buf, s); err != nil {
			t.Fatalf("EncodeText(%q): %v", s, err)
		}
		if buf[n-1] != 0 {
			t.Fatalf("EncodeText(%q) did not terminate with NUL", s)
		}
		got, err := DecodeText(buf)
		if err != nil {
			t.Fatalf("DecodeText(%q): %v", s, err)
		}
		if string(got) != s {
			t.Errorf("DecodeText = %q, want %q", got, s)
		}
	}
}

func TestText_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"missing NUL", []byte("abc")},
		{"interior NUL", []byte("a\x00b\x00")},
		{"invalid UTF-8", []byte{0xff, 0xfe, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeText(tt.src)
			wantKind(t, err, errors.KindMalformed)
		})
	}
}

func TestText_InvalidUTF8Cause(t *testing.T) {
	_, err := DecodeText([]byte{'a', 0xc3, 0x00})
	if !errors.IsKind(err, errors.KindInvalidUTF8) {
		t.Errorf("expected invalid_utf8 in cause chain, got %v", err)
	}
}

func TestText_EncodeRejects(t *testing.T) {
	buf := make([]byte, 16)
	wantKind(t, EncodeText(buf, "a\x00b"), errors.KindInvalidInput)
	wantKind(t, EncodeText(buf, "\xff"), errors.KindInvalidUTF8)
	wantKind(t, EncodeText(make([]byte, 3), "abc"), errors.KindBufferOverflow)
}

func TestLiteral_RoundTrip(t *testing.T) {
	lit := Literal{Text: "bonjour", Lang: 17}
	buf := make([]byte, 8+len(lit.Text)+1)
	if err := EncodeLiteral(buf, lit); err != nil {
		t.Fatalf("EncodeLiteral: %v", err)
	}
	got, err := DecodeLiteral(buf)
	if err != nil {
		t.Fatalf("DecodeLiteral: %v", err)
	}
	if got != lit {
		t.Errorf("DecodeLiteral = %+v, want %+v", got, lit)
	}

	_, err = DecodeLiteral(buf[:6])
	wantKind(t, err, errors.KindMalformed)
	_, err = DecodeLiteral(buf[:8])
	wantKind(t, err, errors.KindMalformed)
}
