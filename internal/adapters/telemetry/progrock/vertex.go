package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// Vertex is one toolchain step on the tape. A step finishes once; later
// calls to Complete are ignored.
type Vertex struct {
	name     string
	recorder *Recorder
	vertex   *progrock.VertexRecorder
	done     sync.Once
}

// Stdout receives the captured standard output of the step.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr receives the captured error output of the step.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete finishes the step. A failed step is named in the recorder summary.
func (v *Vertex) Complete(err error) {
	v.done.Do(func() {
		if err != nil {
			v.recorder.failed(v.name)
		}
		v.vertex.Done(err)
	})
}

// Cached marks a step whose executable was already up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
