package port

import (
	"go.uber.org/zap"

	atomruntime "github.com/wippyai/atom-runtime"
	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/errors"
)

// Output is a port the plugin writes to.
type Output struct {
	types     *atom.Types
	writer    *atom.Writer
	cfg       Config
	connected bool
}

// NewOutput creates a disconnected output port.
func NewOutput(cfg Config, types *atom.Types) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if types == nil {
		return nil, errors.InvalidInput(errors.PhasePort, "nil type table")
	}
	return &Output{cfg: cfg, types: types}, nil
}

// Config returns the port configuration.
func (p *Output) Config() Config {
	return p.cfg
}

// Connect points the port at an empty buffer for this cycle and resets the
// writer to its start.
func (p *Output) Connect(buf []byte, capacity uint32) error {
	if err := p.cfg.checkBuffer(buf, capacity); err != nil {
		return err
	}
	if p.writer == nil {
		w, err := atom.NewWriter(buf, capacity, p.types)
		if err != nil {
			return errors.Wrap(errors.PhasePort, errors.KindInvalidInput, err, p.cfg.Name)
		}
		p.writer = w
	} else if err := p.writer.Reset(buf, capacity); err != nil {
		return errors.Wrap(errors.PhasePort, errors.KindInvalidInput, err, p.cfg.Name)
	}
	p.connected = true
	Logger().Debug("output connected", zap.String("port", p.cfg.Name), zap.Uint32("capacity", capacity))
	return nil
}

// ConnectMemory connects the port to a region of external memory.
func (p *Output) ConnectMemory(mem atomruntime.Memory, offset, capacity uint32) error {
	buf, err := Region(mem, offset, capacity)
	if err != nil {
		return err
	}
	return p.Connect(buf, capacity)
}

// Disconnect detaches the buffer.
func (p *Output) Disconnect() {
	p.connected = false
}

// Connected reports whether a buffer is attached.
func (p *Output) Connected() bool {
	return p.connected
}

// Writer returns the writer over the connected buffer.
func (p *Output) Writer() (*atom.Writer, error) {
	if !p.connected {
		return nil, errors.New(errors.PhasePort, errors.KindInvalidState).
			Path(p.cfg.Name).
			Detail("port is not connected").
			Build()
	}
	return p.writer, nil
}

// Finish ends the cycle's writing. It returns the committed top-level atom,
// or ok == false when the plugin wrote nothing. Open frames or more than one
// top-level atom are an error.
func (p *Output) Finish() (a atom.Atom, ok bool, err error) {
	w, err := p.Writer()
	if err != nil {
		return atom.Atom{}, false, err
	}
	if d := w.Depth(); d > 0 {
		return atom.Atom{}, false, errors.New(errors.PhasePort, errors.KindInvalidState).
			Path(p.cfg.Name).
			Value(d).
			Detail("%d frame(s) still open", d).
			Build()
	}

	root, ok := w.Committed()
	if !ok {
		Logger().Debug("output empty", zap.String("port", p.cfg.Name))
		return atom.Atom{}, false, nil
	}
	if end := root.Offset + atom.HeaderSize + root.Header.Size; w.Len() > end {
		return atom.Atom{}, false, errors.New(errors.PhasePort, errors.KindInvalidState).
			Path(p.cfg.Name).
			Value(w.Len()).
			Detail("bytes written past the top-level atom ending at %d", end).
			Build()
	}

	Logger().Debug("output finished",
		zap.String("port", p.cfg.Name),
		zap.String("type", p.types.Name(root.Header.Type)),
		zap.Uint32("size", root.Header.Size))
	return root, true, nil
}
