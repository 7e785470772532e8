package port

import (
	"github.com/tetratelabs/wazero/api"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
)

var (
	_ atomruntime.Memory      = (*WazeroMemory)(nil)
	_ atomruntime.MemorySizer = (*WazeroMemory)(nil)
)

// Region returns a zero-copy view of capacity bytes of mem at offset.
// offset must be 8-byte aligned; atom alignment is relative to the view.
// Atom fields are stored in host byte order, which matches a wasm guest's
// little-endian loads only on little-endian hosts.
func Region(mem atomruntime.Memory, offset, capacity uint32) ([]byte, error) {
	if mem == nil {
		return nil, errors.InvalidInput(errors.PhasePort, "nil memory")
	}
	if offset%atom.Alignment != 0 {
		return nil, errors.AlignmentViolation(errors.PhasePort, offset, atom.Alignment)
	}
	if s, ok := mem.(atomruntime.MemorySizer); ok {
		size := s.Size()
		if offset > size || capacity > size-offset {
			return nil, errors.Truncated(errors.PhasePort, offset, capacity, size)
		}
	}
	buf, err := mem.Read(offset, capacity)
	if err != nil {
		return nil, errors.Wrap(errors.PhasePort, errors.KindOutOfBounds, err, "memory region")
	}
	return buf, nil
}

// WrapMemory adapts a wazero api.Memory to atomruntime.Memory. Reads return
// views of the guest memory, so a Region stays valid until the memory grows.
func WrapMemory(mem api.Memory) *WazeroMemory {
	if mem == nil {
		return nil
	}
	return &WazeroMemory{Mem: mem}
}

// WazeroMemory adapts wazero api.Memory to the atomruntime.Memory interface.
type WazeroMemory struct {
	Mem api.Memory
}

// Size returns the current memory size in bytes.
func (m *WazeroMemory) Size() uint32 {
	return m.Mem.Size()
}

func (m *WazeroMemory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds(offset, length)
	}
	return data, nil
}

func outOfBounds(offset, length uint32) error {
	return errors.New(errors.PhasePort, errors.KindOutOfBounds).
		Value(offset).
		Detail("memory access out of bounds: offset=%d, length=%d", offset, length).
		Build()
}
