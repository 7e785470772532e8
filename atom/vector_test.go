package atom

import (
	"encoding/binary"
	"testing"

	"github.com/wippyai/atom-runtime/errors"
)

func TestVector_RoundTrip(t *testing.T) {
	w, buf := newTestWriter(t, 64)
	vw, err := w.BeginVector(w.Types().Int, IntSize)
	if err != nil {
		t.Fatalf("BeginVector: %v", err)
	}
	values := []int32{3, -1, 4, 1, 5}
	for _, v := range values {
		if err := vw.PushInt(v); err != nil {
			t.Fatalf("PushInt(%d): %v", v, err)
		}
	}
	root, err := vw.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if root.Header.Size != 8+uint32(len(values))*IntSize {
		t.Errorf("size = %d, want %d", root.Header.Size, 8+len(values)*IntSize)
	}

	r := readerFor(t, w, buf)
	vec, err := r.AsVector(root)
	if err != nil {
		t.Fatalf("AsVector: %v", err)
	}
	if vec.Len() != len(values) || vec.ElemType != r.Types().Int || vec.ElemWidth != IntSize {
		t.Fatalf("vector = len %d type %d width %d", vec.Len(), vec.ElemType, vec.ElemWidth)
	}
	if uint32(vec.Len())*vec.ElemWidth != root.Header.Size-8 {
		t.Error("element count * width does not equal element data size")
	}
	for i, want := range values {
		got, err := vec.IntAt(i)
		if err != nil || got != want {
			t.Errorf("IntAt(%d) = %d, %v; want %d", i, got, err, want)
		}
	}

	_, err = vec.At(len(values))
	wantKind(t, err, errors.KindOutOfBounds)
	_, err = vec.At(-1)
	wantKind(t, err, errors.KindOutOfBounds)
	_, err = vec.FloatAt(0)
	wantKind(t, err, errors.KindTypeMismatch)
}

func TestVector_TypedElements(t *testing.T) {
	w, buf := newTestWriter(t, 128)
	ty := w.Types()
	tw, err := w.BeginTuple()
	if err != nil {
		t.Fatal(err)
	}

	push := func(typ URID, width uint32, fill func(*VectorWriter) error) {
		t.Helper()
		err := tw.Push(func(w *Writer) error {
			vw, err := w.BeginVector(typ, width)
			if err != nil {
				return err
			}
			if err := fill(&vw); err != nil {
				return err
			}
			_, err = vw.Finish()
			return err
		})
		if err != nil {
			t.Fatalf("push vector: %v", err)
		}
	}
	push(ty.Long, LongSize, func(v *VectorWriter) error { return v.PushLong(-9) })
	push(ty.Float, FloatSize, func(v *VectorWriter) error { return v.PushFloat(0.5) })
	push(ty.Double, DoubleSize, func(v *VectorWriter) error { return v.PushDouble(2.25) })
	push(ty.Bool, BoolSize, func(v *VectorWriter) error { return v.PushBool(true) })
	push(ty.URID, URIDSize, func(v *VectorWriter) error { return v.PushURID(12) })
	if _, err := tw.Finish(); err != nil {
		t.Fatal(err)
	}

	r := readerFor(t, w, buf)
	root, _ := r.Root()
	tuple, _ := r.AsTuple(root)
	vec := func(i int) Vector {
		a, err := tuple.At(i)
		if err != nil {
			t.Fatal(err)
		}
		v, err := r.AsVector(a)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	if v, err := vec(0).LongAt(0); err != nil || v != -9 {
		t.Errorf("LongAt = %v, %v", v, err)
	}
	if v, err := vec(1).FloatAt(0); err != nil || v != 0.5 {
		t.Errorf("FloatAt = %v, %v", v, err)
	}
	if v, err := vec(2).DoubleAt(0); err != nil || v != 2.25 {
		t.Errorf("DoubleAt = %v, %v", v, err)
	}
	if v, err := vec(3).BoolAt(0); err != nil || !v {
		t.Errorf("BoolAt = %v, %v", v, err)
	}
	if v, err := vec(4).URIDAt(0); err != nil || v != 12 {
		t.Errorf("URIDAt = %v, %v", v, err)
	}
}

func TestVector_PushChecks(t *testing.T) {
	w, _ := newTestWriter(t, 64)
	vw, err := w.BeginVector(w.Types().Int, IntSize)
	if err != nil {
		t.Fatal(err)
	}

	wantKind(t, vw.Push([]byte{1, 2, 3}), errors.KindTypeMismatch)
	wantKind(t, vw.PushFloat(1), errors.KindTypeMismatch)
	wantKind(t, vw.PushLong(1), errors.KindTypeMismatch)
	if vw.Len() != 0 {
		t.Errorf("Len = %d after rejected pushes", vw.Len())
	}
	if err := vw.Push([]byte{1, 0, 0, 0}); err != nil {
		t.Errorf("raw Push: %v", err)
	}

	_, err = w.BeginVector(w.Types().Int, 0)
	wantKind(t, err, errors.KindInvalidInput)
}

// Five Ints do not fit a 16-byte buffer: the header and the vector body
// header already fill it, so the first push overflows.
func TestVector_OverflowSixteenBytes(t *testing.T) {
	w, buf := newTestWriter(t, 16)
	vw, err := w.BeginVector(w.Types().Int, IntSize)
	if err != nil {
		t.Fatalf("BeginVector: %v", err)
	}

	pushed := 0
	var pushErr error
	for i := 0; i < 5; i++ {
		if pushErr = vw.PushInt(int32(i)); pushErr != nil {
			break
		}
		pushed++
	}
	wantKind(t, pushErr, errors.KindBufferOverflow)
	if pushed != 0 {
		t.Errorf("pushed %d elements, want 0", pushed)
	}

	if _, ok := w.Committed(); ok {
		t.Error("overflowed vector reported as committed")
	}
	r := readerFor(t, w, buf)
	_, err = r.Root()
	wantKind(t, err, errors.KindTruncated)
}

func TestVector_OverflowAtSecondElement(t *testing.T) {
	w, buf := newTestWriter(t, 20)
	vw, err := w.BeginVector(w.Types().Int, IntSize)
	if err != nil {
		t.Fatal(err)
	}

	if err := vw.PushInt(1); err != nil {
		t.Fatalf("first push: %v", err)
	}
	wantKind(t, vw.PushInt(2), errors.KindBufferOverflow)
	if vw.Len() != 1 || w.Len() != 20 {
		t.Errorf("after overflow: elements=%d cursor=%d", vw.Len(), w.Len())
	}

	r := readerFor(t, w, buf)
	_, err = r.Root()
	wantKind(t, err, errors.KindTruncated)

	root, err := vw.Finish()
	if err != nil {
		t.Fatal(err)
	}
	vec, err := r.AsVector(root)
	if err != nil {
		t.Fatal(err)
	}
	if vec.Len() != 1 {
		t.Errorf("committed vector has %d elements, want 1", vec.Len())
	}
}

func TestVector_Malformed(t *testing.T) {
	ty := newTestTypes()

	build := func(size, width uint32, dataLen int) []byte {
		buf := make([]byte, 8+8+dataLen)
		binary.NativeEndian.PutUint32(buf[0:], size)
		binary.NativeEndian.PutUint32(buf[4:], ty.Vector)
		binary.NativeEndian.PutUint32(buf[8:], width)
		binary.NativeEndian.PutUint32(buf[12:], ty.Int)
		return buf
	}

	tests := []struct {
		name string
		buf  []byte
		kind errors.Kind
	}{
		{"not divisible", build(14, 4, 6), errors.KindMalformed},
		{"zero width with data", build(12, 0, 4), errors.KindMalformed},
		{"shorter than body header", build(4, 4, 0), errors.KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.buf, uint32(len(tt.buf)), ty)
			if err != nil {
				t.Fatal(err)
			}
			a, err := r.Root()
			if err != nil {
				t.Fatalf("Root: %v", err)
			}
			_, err = r.AsVector(a)
			wantKind(t, err, tt.kind)
		})
	}

	t.Run("empty zero width", func(t *testing.T) {
		buf := build(8, 0, 0)
		r, _ := NewReader(buf, uint32(len(buf)), ty)
		a, _ := r.Root()
		vec, err := r.AsVector(a)
		if err != nil || vec.Len() != 0 {
			t.Errorf("empty vector = %d, %v", vec.Len(), err)
		}
	})

	t.Run("width disagrees with element type", func(t *testing.T) {
		buf := build(16, 8, 8)
		r, _ := NewReader(buf, uint32(len(buf)), ty)
		a, _ := r.Root()
		vec, err := r.AsVector(a)
		if err != nil {
			t.Fatal(err)
		}
		_, err = vec.IntAt(0)
		wantKind(t, err, errors.KindMalformed)
	})
}
