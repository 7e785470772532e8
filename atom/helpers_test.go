package atom

import (
	"testing"

	"github.com/wippyai/atom-runtime/errors"
)

// testMapper interns URIs from 1 in first-seen order.
type testMapper struct {
	ids map[string]URID
}

func (m *testMapper) Map(uri string) URID {
	if id, ok := m.ids[uri]; ok {
		return id
	}
	id := URID(len(m.ids) + 1)
	m.ids[uri] = id
	return id
}

func newTestTypes() *Types {
	return NewTypes(&testMapper{ids: make(map[string]URID)})
}

func newTestWriter(t *testing.T, capacity int) (*Writer, []byte) {
	t.Helper()
	buf := make([]byte, capacity)
	w, err := NewWriter(buf, uint32(capacity), newTestTypes())
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	return w, buf
}

func readerFor(t *testing.T, w *Writer, buf []byte) *Reader {
	t.Helper()
	r, err := NewReader(buf, w.Capacity(), w.Types())
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	return r
}

func wantKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if !errors.IsKind(err, kind) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}
