package port

import (
	"go.uber.org/zap"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
)

// Input is a port the plugin reads from.
type Input struct {
	types     *atom.Types
	reader    *atom.Reader
	cfg       Config
	connected bool
}

// NewInput creates a disconnected input port.
func NewInput(cfg Config, types *atom.Types) (*Input, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if types == nil {
		return nil, errors.InvalidInput(errors.PhasePort, "nil type table")
	}
	return &Input{cfg: cfg, types: types}, nil
}

// Config returns the port configuration.
func (p *Input) Config() Config {
	return p.cfg
}

// Connect points the port at the buffer the host filled for this cycle.
func (p *Input) Connect(buf []byte, capacity uint32) error {
	if err := p.cfg.checkBuffer(buf, capacity); err != nil {
		return err
	}
	if p.reader == nil {
		r, err := atom.NewReader(buf, capacity, p.types)
		if err != nil {
			return errors.Wrap(errors.PhasePort, errors.KindInvalidInput, err, p.cfg.Name)
		}
		p.reader = r
	} else if err := p.reader.Reset(buf, capacity); err != nil {
		return errors.Wrap(errors.PhasePort, errors.KindInvalidInput, err, p.cfg.Name)
	}
	p.connected = true
	Logger().Debug("input connected", zap.String("port", p.cfg.Name), zap.Uint32("capacity", capacity))
	return nil
}

// ConnectMemory connects the port to a region of external memory.
func (p *Input) ConnectMemory(mem atomruntime.Memory, offset, capacity uint32) error {
	buf, err := Region(mem, offset, capacity)
	if err != nil {
		return err
	}
	return p.Connect(buf, capacity)
}

// Disconnect detaches the buffer. The port must be connected again before
// the next cycle.
func (p *Input) Disconnect() {
	p.connected = false
}

// Connected reports whether a buffer is attached.
func (p *Input) Connected() bool {
	return p.connected
}

// Reader returns the reader over the connected buffer.
func (p *Input) Reader() (*atom.Reader, error) {
	if !p.connected {
		return nil, p.notConnected()
	}
	return p.reader, nil
}

// Root reads the single top-level atom the host wrote.
func (p *Input) Root() (atom.Atom, error) {
	r, err := p.Reader()
	if err != nil {
		return atom.Atom{}, err
	}
	a, err := r.Root()
	if err != nil {
		Logger().Debug("dropped input", zap.String("port", p.cfg.Name), zap.Error(err))
		return atom.Atom{}, err
	}
	return a, nil
}

func (p *Input) notConnected() error {
	return errors.New(errors.PhasePort, errors.KindInvalidState).
		Path(p.cfg.Name).
		Detail("port is not connected").
		Build()
}
