package urid

import (
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/errors"
)

// URID is the integer id of a mapped URI.
type URID = atomruntime.URID

var _ atomruntime.Registry = (*Map)(nil)

// Map is a concurrent URI interning registry.
type Map struct {
	ids  map[string]URID
	uris map[URID]string
	mu   sync.RWMutex
	next URID
}

// NewMap creates an empty registry. The first mapped URI gets id 1.
func NewMap() *Map {
	return &Map{
		ids:  make(map[string]URID),
		uris: make(map[URID]string),
		next: 1,
	}
}

// NewMapFromTable creates a registry preloaded with the table's entries.
// New URIs are numbered after the highest id in the table.
func NewMapFromTable(t *Table) (*Map, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	m := NewMap()
	for _, e := range t.Entries {
		m.ids[e.URI] = e.ID
		m.uris[e.ID] = e.URI
		if e.ID >= m.next {
			m.next = e.ID + 1
		}
	}
	return m, nil
}

// Map returns the id of uri, assigning the next free id on first use.
// The empty URI maps to 0.
func (m *Map) Map(uri string) URID {
	if uri == "" {
		return 0
	}

	m.mu.RLock()
	id, ok := m.ids[uri]
	m.mu.RUnlock()
	if ok {
		return id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[uri]; ok {
		return id
	}
	if m.next == 0 {
		// id space exhausted after wrapping
		Logger().Error("urid space exhausted", zap.String("uri", uri))
		return 0
	}
	id = m.next
	m.next++
	m.ids[uri] = id
	m.uris[id] = uri
	Logger().Debug("mapped uri", zap.String("uri", uri), zap.Uint32("urid", id))
	return id
}

// Unmap returns the URI id was assigned to.
func (m *Map) Unmap(id URID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	uri, ok := m.uris[id]
	return uri, ok
}

// Lookup returns the id of uri without assigning one.
func (m *Map) Lookup(uri string) (URID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.ids[uri]
	return id, ok
}

// Resolve is like Unmap but returns a structured error for unknown ids.
func (m *Map) Resolve(id URID) (string, error) {
	uri, ok := m.Unmap(id)
	if !ok {
		err := errors.NotFound(errors.PhaseRegistry, "urid", strconv.FormatUint(uint64(id), 10))
		err.Value = id
		return "", err
	}
	return uri, nil
}

// Len returns the number of mapped URIs.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// Table returns a snapshot of the registry ordered by id.
func (m *Map) Table() *Table {
	m.mu.RLock()
	entries := make([]Entry, 0, len(m.ids))
	for uri, id := range m.ids {
		entries = append(entries, Entry{ID: id, URI: uri})
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return &Table{Entries: entries}
}
