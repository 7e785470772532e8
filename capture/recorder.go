package capture

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/atom-runtime/urid"
)

// Recorder collects frames in memory. It is not safe for concurrent use.
type Recorder struct {
	reg    *urid.Map
	frames []Frame
	limit  int
}

// NewRecorder creates a recorder that snapshots reg when written.
func NewRecorder(reg *urid.Map) *Recorder {
	return &Recorder{reg: reg}
}

// WithLimit keeps only the most recent n frames. Zero means unlimited.
func (r *Recorder) WithLimit(n int) *Recorder {
	r.limit = n
	return r
}

// Record copies buf as a frame of port for cycle.
func (r *Recorder) Record(cycle uint64, port string, buf []byte) {
	data := make([]byte, len(buf))
	copy(data, buf)
	r.frames = append(r.frames, Frame{Cycle: cycle, Port: port, Data: data})
	if r.limit > 0 && len(r.frames) > r.limit {
		dropped := len(r.frames) - r.limit
		r.frames = append(r.frames[:0], r.frames[dropped:]...)
		Logger().Debug("capture limit reached", zap.Int("dropped", dropped))
	}
}

// Len returns the number of frames held.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// File returns the capture as it would be written now.
func (r *Recorder) File() *File {
	return &File{
		Version: Version,
		Types:   *r.reg.Table(),
		Frames:  r.frames,
	}
}

// WriteTo writes the capture file.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	return r.File().WriteTo(w)
}
