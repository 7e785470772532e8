// Package port hands atom buffers between a host and a plugin once per
// processing cycle.
//
// An Input wraps a buffer the host filled before the cycle and exposes a
// Reader over it. An Output wraps an empty buffer the plugin fills during the
// cycle and exposes a Writer; Finish checks that the plugin left exactly one
// committed top-level atom (or nothing).
//
// Buffers may live in Go memory or in a guest's linear memory. Region obtains
// a zero-copy view of a Memory, and WrapMemory adapts a wazero api.Memory:
//
//	mem := port.WrapMemory(mod.ExportedMemory("memory"))
//	buf, err := port.Region(mem, offset, 4096)
//	err = in.Connect(buf, 4096)
//
// Ports do not lock. The per-cycle contract gives a buffer exactly one user
// at a time.
package port
