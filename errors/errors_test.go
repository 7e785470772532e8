package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTypeMismatch,
				Path:   []string{"object", "gain"},
				Got:    "atom#Float",
				Want:   "atom#Int",
				Detail: "typed accessor",
			},
			contains: []string{"[decode]", "type_mismatch", "object.gain", "got atom#Float", "want atom#Int", "typed accessor"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[read]", "out_of_bounds"},
		},
		{
			name: "only want",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindTypeMismatch,
				Want:  "atom#Vector",
			},
			contains: []string{"want atom#Vector"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "parse table",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "parse table", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCapture,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseWrite,
		Kind:  KindBufferOverflow,
		Path:  []string{"vector"},
	}

	if !err.Is(&Error{Phase: PhaseWrite, Kind: KindBufferOverflow}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseRead, Kind: KindBufferOverflow}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseWrite, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseWrite, Kind: KindBufferOverflow}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestIsKind(t *testing.T) {
	base := OutOfOrder(PhaseWrite, []string{"sequence"}, 10, 5)

	if !IsKind(base, KindOutOfOrder) {
		t.Error("IsKind should match the error's own kind")
	}
	if IsKind(base, KindMalformed) {
		t.Error("IsKind should not match a different kind")
	}

	wrapped := fmt.Errorf("cycle 3: %w", base)
	if !IsKind(wrapped, KindOutOfOrder) {
		t.Error("IsKind should see through fmt wrapping")
	}

	chained := Wrap(PhasePort, KindInvalidData, base, "output port")
	if !IsKind(chained, KindOutOfOrder) {
		t.Error("IsKind should follow Cause chains")
	}
	if !IsKind(chained, KindInvalidData) {
		t.Error("IsKind should match the outer kind")
	}

	if IsKind(errors.New("plain"), KindOutOfOrder) {
		t.Error("IsKind should not match plain errors")
	}
	if IsKind(nil, KindOutOfOrder) {
		t.Error("IsKind should not match nil")
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", Truncated(PhaseRead, 0, 100, 50)))
	if !ok || kind != KindTruncated {
		t.Errorf("KindOf = %q, %v; want %q, true", kind, ok, KindTruncated)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should report false for plain errors")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTypeMismatch).
		Path("tuple", "1").
		Got("atom#Float").
		Want("atom#Int").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "int", "float").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "tuple" || err.Path[1] != "1" {
		t.Errorf("Path = %v, want [tuple 1]", err.Path)
	}
	if err.Got != "atom#Float" {
		t.Errorf("Got = %v, want 'atom#Float'", err.Got)
	}
	if err.Want != "atom#Int" {
		t.Errorf("Want = %v, want 'atom#Int'", err.Want)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected int, got float" {
		t.Errorf("Detail = %v, want 'expected int, got float'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("BufferOverflow", func(t *testing.T) {
		err := BufferOverflow(PhaseWrite, 16, 4, 16)
		if err.Kind != KindBufferOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindBufferOverflow)
		}
		if !strings.Contains(err.Detail, "capacity 16") {
			t.Errorf("Detail = %v, should contain capacity", err.Detail)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseRead, 0, 108, 50)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		err := Malformed(PhaseDecode, []string{"vector"}, "size not divisible")
		if err.Kind != KindMalformed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformed)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseDecode, []string{"root"}, "atom#Float", "atom#Int")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Got != "atom#Float" || err.Want != "atom#Int" {
			t.Errorf("Got=%v Want=%v", err.Got, err.Want)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseRead, []string{"vector"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("OutOfOrder", func(t *testing.T) {
		err := OutOfOrder(PhaseWrite, nil, uint64(10), uint64(3))
		if err.Kind != KindOutOfOrder {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfOrder)
		}
		if !strings.Contains(err.Detail, "3 precedes previous timestamp 10") {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("AlignmentViolation", func(t *testing.T) {
		err := AlignmentViolation(PhaseRead, 12, 8)
		if err.Kind != KindAlignmentViolation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAlignmentViolation)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := []byte{0xff, 0xfe}
		err := InvalidUTF8(PhaseDecode, []string{"str"}, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !strings.Contains(err.Detail, "fffe") {
			t.Errorf("Detail = %v, should contain a hex preview", err.Detail)
		}
	})

	t.Run("InvalidState", func(t *testing.T) {
		err := InvalidState(PhaseWrite, "frame already committed")
		if err.Kind != KindInvalidState {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidState)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRegistry, "urid", "7")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
	})

	t.Run("Load", func(t *testing.T) {
		err := Load("read table", errors.New("eof"))
		if err.Phase != PhaseLoad || err.Kind != KindInvalidData {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})
}
