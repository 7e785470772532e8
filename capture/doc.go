// Package capture records port buffers to files for offline inspection.
//
// A capture file is the magic "atomcap1" followed by a zstd-compressed CBOR
// document holding the URID table of the recording process and one Frame per
// recorded buffer. The table travels with the data so tools in another
// process can name every type.
//
//	rec := capture.NewRecorder(reg)
//	rec.Record(cycle, "notify", buf[:w.Len()])
//	_, err := rec.WriteTo(f)
//
//	file, err := capture.Load(f)
//	types, reg, err := file.Types()
package capture
