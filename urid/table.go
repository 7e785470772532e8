package urid

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/atom-runtime/errors"
)

// Entry is one URI and its id.
type Entry struct {
	URI string `yaml:"uri"`
	ID  URID   `yaml:"id"`
}

// Table is a serializable registry snapshot.
type Table struct {
	Entries []Entry `yaml:"entries"`
}

// LoadTable decodes a YAML table and validates it. Unknown fields are
// rejected.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Load("read urid table", err)
	}

	var t Table
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil && err != io.EOF {
		return nil, errors.Load("parse urid table", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	Logger().Debug("loaded urid table")
	return &t, nil
}

// Validate checks that ids are non-zero and that ids and URIs are unique.
func (t *Table) Validate() error {
	ids := make(map[URID]string, len(t.Entries))
	uris := make(map[string]URID, len(t.Entries))
	for i, e := range t.Entries {
		switch {
		case e.ID == 0:
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path("entries", e.URI).
				Value(i).
				Detail("id 0 is reserved").
				Build()
		case e.URI == "":
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Value(i).
				Detail("entry %d has an empty uri", i).
				Build()
		}
		if prev, ok := ids[e.ID]; ok {
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path("entries", e.URI).
				Value(e.ID).
				Detail("id %d already assigned to %s", e.ID, prev).
				Build()
		}
		if prev, ok := uris[e.URI]; ok {
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path("entries", e.URI).
				Value(e.ID).
				Detail("uri already has id %d", prev).
				Build()
		}
		ids[e.ID] = e.URI
		uris[e.URI] = e.ID
	}
	return nil
}

// WriteYAML encodes the table.
func (t *Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "encode urid table")
	}
	return enc.Close()
}

// Unmap returns the URI of id in the table.
func (t *Table) Unmap(id URID) (string, bool) {
	for _, e := range t.Entries {
		if e.ID == id {
			return e.URI, true
		}
	}
	return "", false
}
