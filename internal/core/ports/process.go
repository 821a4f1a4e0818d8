package ports

import (
	"context"

	"go.trai.ch/jig/internal/core/domain"
)

// ProcessRunner starts subprocesses.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Capture runs the process and returns its exit code and captured output.
	// A non-zero exit code is not an error.
	Capture(ctx context.Context, spec domain.ProcessSpec) (domain.ProcessOutput, error)

	// Stream runs the process with the streams of spec and returns its exit
	// code. A non-zero exit code is not an error.
	Stream(ctx context.Context, spec domain.ProcessSpec) (int, error)
}
