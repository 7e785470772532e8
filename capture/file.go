package capture

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/urid"
)

// Magic starts every capture file.
const Magic = "atomcap1"

// Version is the document version written by this package.
const Version = 1

// Frame is one recorded buffer.
type Frame struct {
	Port  string `cbor:"2,keyasint"`
	Data  []byte `cbor:"3,keyasint"`
	Cycle uint64 `cbor:"1,keyasint"`
}

// File is a decoded capture.
type File struct {
	Types   urid.Table `cbor:"2,keyasint"`
	Frames  []Frame    `cbor:"3,keyasint"`
	Version int        `cbor:"1,keyasint"`
}

// Load reads and validates a capture file.
func Load(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Load("read capture", err)
	}
	if len(raw) < len(Magic) || string(raw[:len(Magic)]) != Magic {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Detail("missing capture magic %q", Magic).
			Build()
	}

	doc, err := zstdDecoder.DecodeAll(raw[len(Magic):], nil)
	if err != nil {
		return nil, errors.Load("decompress capture", err)
	}
	var f File
	if err := decMode.Unmarshal(doc, &f); err != nil {
		return nil, errors.Load("decode capture", err)
	}
	if f.Version != Version {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Value(f.Version).
			Detail("unsupported capture version %d", f.Version).
			Build()
	}
	if err := f.Types.Validate(); err != nil {
		return nil, err
	}

	Logger().Info("loaded capture",
		zap.Int("frames", len(f.Frames)),
		zap.Int("types", len(f.Types.Entries)),
		zap.Int("compressed", len(raw)),
		zap.Int("size", len(doc)))
	return &f, nil
}

// WriteTo encodes f with the magic prefix.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	doc, err := encMode.Marshal(f)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "encode capture")
	}
	out := make([]byte, 0, len(Magic)+len(doc)/2)
	out = append(out, Magic...)
	out = zstdEncoder.EncodeAll(doc, out)

	n, err := io.Copy(w, bytes.NewReader(out))
	if err != nil {
		return n, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "write capture")
	}
	Logger().Info("wrote capture",
		zap.Int("frames", len(f.Frames)),
		zap.Int64("bytes", n))
	return n, nil
}

// Types rebuilds the recording process's registry and type table.
func (f *File) Types() (*atom.Types, *urid.Map, error) {
	reg, err := urid.NewMapFromTable(&f.Types)
	if err != nil {
		return nil, nil, err
	}
	return atom.NewTypes(reg), reg, nil
}

// Reader opens frame i for reading.
func (f *File) Reader(i int, types *atom.Types) (*atom.Reader, error) {
	if i < 0 || i >= len(f.Frames) {
		return nil, errors.OutOfBounds(errors.PhaseCapture, []string{"frames"}, i, len(f.Frames))
	}
	data := f.Frames[i].Data
	return atom.NewReader(data, uint32(len(data)), types)
}
