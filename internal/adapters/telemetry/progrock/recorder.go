// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/jig/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by recording vertices on a progrock tape.
type Recorder struct {
	tape   *progrock.Tape
	rec    *progrock.Recorder
	logger ports.Logger

	mu     sync.Mutex
	closed bool

	stepsMu  sync.Mutex
	failures []string
}

// New creates a Recorder writing to a fresh tape. Close reports a summary
// through logger.
func New(logger ports.Logger) *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape:   tape,
		rec:    progrock.NewRecorder(tape),
		logger: logger,
	}
}

// Record starts recording a new vertex named name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{name: name, recorder: r, vertex: v}
}

func (r *Recorder) failed(name string) {
	r.stepsMu.Lock()
	defer r.stepsMu.Unlock()
	r.failures = append(r.failures, name)
}

// Summary describes the vertices recorded so far.
type Summary struct {
	Total    int
	Cached   int
	Errored  int
	Duration time.Duration
	// Failed names the failed steps in completion order.
	Failed   []string
}

func (s Summary) String() string {
	msg := fmt.Sprintf("%d steps, %d cached, %d failed in %s",
		s.Total, s.Cached, s.Errored, s.Duration.Round(time.Millisecond))
	if len(s.Failed) > 0 {
		msg += " (" + strings.Join(s.Failed, ", ") + ")"
	}
	return msg
}

// Summary returns the counts of the tape.
func (r *Recorder) Summary() Summary {
	r.stepsMu.Lock()
	failed := slices.Clone(r.failures)
	r.stepsMu.Unlock()

	return Summary{
		Total:    r.tape.TotalCount(),
		Cached:   r.tape.CachedCount(),
		Errored:  r.tape.ErroredCount(),
		Duration: r.tape.Duration(),
		Failed:   failed,
	}
}

// Close completes the recording and logs its summary. Subsequent calls do nothing.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return err
	}
	if r.tape.TotalCount() > 0 {
		r.logger.Debug(r.Summary().String())
	}
	return nil
}
