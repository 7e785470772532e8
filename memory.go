package atomruntime

// URID is the integer id a registry assigns to a type URI.
// Zero is reserved and means "no type".
type URID = uint32

// Memory represents externally owned linear memory that port buffers live in.
// Read returns a view of the memory, not a copy.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
}

// MemorySizer provides the current size of the memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// Mapper resolves a type URI to its URID.
// Implementations must be stable and injective for the process lifetime.
type Mapper interface {
	Map(uri string) URID
}

// Unmapper describes a URID back to the URI it was mapped from.
type Unmapper interface {
	Unmap(id URID) (string, bool)
}

// Registry is a Mapper that can also unmap.
type Registry interface {
	Mapper
	Unmapper
}
