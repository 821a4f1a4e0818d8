// Package telemetry holds the telemetry adapters.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/jig/internal/core/ports"
)

var _ ports.Telemetry = Nop{}

// Nop is a ports.Telemetry that records nothing.
type Nop struct{}

// Record returns ctx unchanged and a vertex that discards everything.
func (Nop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

// Close does nothing.
func (Nop) Close() error { return nil }

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer { return io.Discard }
func (nopVertex) Stderr() io.Writer { return io.Discard }
func (nopVertex) Complete(error)    {}
func (nopVertex) Cached()           {}
