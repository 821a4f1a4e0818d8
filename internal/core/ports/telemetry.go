package ports

import (
	"context"
	"io"
)

// Telemetry records the steps of a front door invocation.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded step.
type Vertex interface {
	// Stdout returns a writer for the step's standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the step's error output.
	Stderr() io.Writer
	// Complete marks the step as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the step as satisfied without doing work.
	Cached()
}
