package urid

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/wippyai/atom-runtime/errors"
)

func TestMap_Interning(t *testing.T) {
	m := NewMap()

	tests := []struct {
		uri  string
		want URID
	}{
		{"http://lv2plug.in/ns/ext/atom#Int", 1},
		{"http://lv2plug.in/ns/ext/atom#Float", 2},
		{"http://lv2plug.in/ns/ext/atom#Int", 1},
		{"http://lv2plug.in/ns/ext/midi#MidiEvent", 3},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			if got := m.Map(tt.uri); got != tt.want {
				t.Errorf("Map(%q) = %d, want %d", tt.uri, got, tt.want)
			}
		})
	}

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestMap_Unmap(t *testing.T) {
	m := NewMap()
	id := m.Map("urn:a")

	uri, ok := m.Unmap(id)
	if !ok || uri != "urn:a" {
		t.Errorf("Unmap(%d) = %q, %v", id, uri, ok)
	}

	if _, ok := m.Unmap(0); ok {
		t.Error("Unmap(0) should fail")
	}
	if _, ok := m.Unmap(99); ok {
		t.Error("Unmap(99) should fail")
	}

	_, err := m.Resolve(99)
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("Resolve(99) error = %v, want not_found", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseRegistry || e.Value != URID(99) {
		t.Errorf("Resolve(99) error = %#v", err)
	}
	if !strings.Contains(err.Error(), `urid "99" not found`) {
		t.Errorf("Resolve(99) message = %q", err.Error())
	}
}

func TestMap_Lookup(t *testing.T) {
	m := NewMap()
	if _, ok := m.Lookup("urn:a"); ok {
		t.Fatal("Lookup should not assign ids")
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d after Lookup", m.Len())
	}
	id := m.Map("urn:a")
	if got, ok := m.Lookup("urn:a"); !ok || got != id {
		t.Errorf("Lookup = %d, %v; want %d, true", got, ok, id)
	}
}

func TestMap_Concurrent(t *testing.T) {
	m := NewMap()
	const workers = 8
	const uris = 64

	results := make([][]URID, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]URID, uris)
			for i := 0; i < uris; i++ {
				ids[i] = m.Map(fmt.Sprintf("urn:test:%d", i))
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	if m.Len() != uris {
		t.Fatalf("Len() = %d, want %d", m.Len(), uris)
	}
	seen := make(map[URID]bool)
	for i := 0; i < uris; i++ {
		id := results[0][i]
		if id == 0 {
			t.Fatalf("uri %d mapped to 0", i)
		}
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
		for w := 1; w < workers; w++ {
			if results[w][i] != id {
				t.Fatalf("worker %d saw id %d for uri %d, want %d", w, results[w][i], i, id)
			}
		}
	}
}

func TestMap_TableSnapshot(t *testing.T) {
	m := NewMap()
	m.Map("urn:c")
	m.Map("urn:a")
	m.Map("urn:b")

	table := m.Table()
	if len(table.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(table.Entries))
	}
	for i, e := range table.Entries {
		if e.ID != URID(i+1) {
			t.Errorf("entry %d has id %d, want ordered ids", i, e.ID)
		}
	}
	if table.Entries[0].URI != "urn:c" {
		t.Errorf("first entry = %q, want urn:c", table.Entries[0].URI)
	}

	restored, err := NewMapFromTable(table)
	if err != nil {
		t.Fatalf("NewMapFromTable: %v", err)
	}
	if got := restored.Map("urn:b"); got != 3 {
		t.Errorf("restored Map(urn:b) = %d, want 3", got)
	}
	if got := restored.Map("urn:d"); got != 4 {
		t.Errorf("new uri after restore = %d, want 4", got)
	}
}

func TestNewMapFromTable_SparseIDs(t *testing.T) {
	m, err := NewMapFromTable(&Table{Entries: []Entry{
		{URI: "urn:x", ID: 10},
		{URI: "urn:y", ID: 3},
	}})
	if err != nil {
		t.Fatalf("NewMapFromTable: %v", err)
	}
	if got := m.Map("urn:z"); got != 11 {
		t.Errorf("Map(urn:z) = %d, want 11", got)
	}
	if uri, ok := m.Unmap(3); !ok || uri != "urn:y" {
		t.Errorf("Unmap(3) = %q, %v", uri, ok)
	}
}

func TestNewMapFromTable_Invalid(t *testing.T) {
	_, err := NewMapFromTable(&Table{Entries: []Entry{{URI: "urn:x", ID: 0}}})
	if !errors.IsKind(err, errors.KindInvalidData) {
		t.Errorf("error = %v, want invalid_data", err)
	}
}
