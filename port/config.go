package port

import (
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
)

// DefaultCapacity is the minimum buffer size ports require unless configured.
const DefaultCapacity = 4096

// Config describes a port. Use the With methods to adjust a copy.
type Config struct {
	Name string
	// Capacity is the smallest buffer the port accepts on Connect.
	Capacity uint32
}

// DefaultConfig returns a config for a port with the given name.
func DefaultConfig(name string) Config {
	return Config{Name: name, Capacity: DefaultCapacity}
}

// WithName sets the port name used in logs and errors
func (c Config) WithName(name string) Config {
	c.Name = name
	return c
}

// WithCapacity sets the minimum buffer capacity
func (c Config) WithCapacity(capacity uint32) Config {
	c.Capacity = capacity
	return c
}

// Validate checks that the port can hold at least one atom header.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.InvalidInput(errors.PhasePort, "port name is empty")
	}
	if c.Capacity < atom.HeaderSize {
		return errors.New(errors.PhasePort, errors.KindInvalidInput).
			Path(c.Name).
			Value(c.Capacity).
			Detail("capacity %d is smaller than an atom header", c.Capacity).
			Build()
	}
	return nil
}

func (c Config) checkBuffer(buf []byte, capacity uint32) error {
	if buf == nil {
		return errors.New(errors.PhasePort, errors.KindInvalidInput).
			Path(c.Name).
			Detail("nil buffer").
			Build()
	}
	if capacity < c.Capacity {
		return errors.New(errors.PhasePort, errors.KindInvalidInput).
			Path(c.Name).
			Value(capacity).
			Detail("buffer capacity %d is below the port minimum %d", capacity, c.Capacity).
			Build()
	}
	return nil
}
