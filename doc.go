// Package atomruntime provides a Go implementation of the LV2 Atom type system.
//
// Atoms are self-describing, size-prefixed binary values tagged with a small
// integer type id (URID). Plugins and their host use them to exchange
// structured data through fixed-size shared buffers without copying or
// allocating during a processing cycle.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	atomruntime/         Root package with Memory and registry (Mapper) interfaces
//	├── atom/            Header and primitive codecs, Writer, Reader, containers
//	├── urid/            In-process URI <-> URID registry and YAML type tables
//	├── midi/            MIDI event and system-exclusive leaf atoms
//	├── port/            Per-cycle buffer handoff, guest memory regions (wazero)
//	├── inspect/         Atom tree walker for tooling
//	├── capture/         Capture files of port buffers (CBOR + zstd)
//	├── errors/          Structured error types for debugging
//	└── cmd/atomdump/    Print or browse captured atom buffers
//
// # Quick Start
//
// Write an atom into an output buffer and read it back:
//
//	reg := urid.NewMap()
//	types := atom.NewTypes(reg)
//
//	buf := make([]byte, 256)
//	w, _ := atom.NewWriter(buf, uint32(len(buf)), types)
//
//	tw, _ := w.BeginTuple()
//	_ = tw.PushInt(42)
//	_ = tw.PushFloat(3.5)
//	_, _ = tw.Finish()
//
//	r, _ := atom.NewReader(buf, uint32(len(buf)), types)
//	root, _ := r.Root()
//	tuple, _ := r.AsTuple(root)
//	for it := tuple.Iter(); it.Next(); {
//	    fmt.Println(it.Atom().Header)
//	}
//
// # Byte Layout
//
// Every atom is an 8-byte header followed by its body:
//
//	offset 0  uint32  body size in bytes (excludes header and padding)
//	offset 4  uint32  type URID
//	offset 8  body...
//
// Every atom, nested or top-level, starts on an 8-byte boundary relative to
// the buffer base. Padding is zero-filled on write and ignored on read.
//
// # Thread Safety
//
// Writer and Reader are NOT thread-safe; exactly one of them may be active
// over a buffer at a time. The per-cycle buffer handoff guarantees this.
// urid.Map is safe for concurrent use.
//
// # Memory Model
//
// No atom owns memory. Views returned by the Reader and Writer alias the
// caller's buffer and are valid only while that buffer is not reused.
package atomruntime
