package ports

import (
	"context"

	"go.trai.ch/jig/internal/core/domain"
)

// Toolchain drives the Go toolchain for a companion project.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Inspect describes the package at the root of dir.
	Inspect(ctx context.Context, dir string) (domain.PackageInfo, error)

	// Build compiles the package at dir into output with the extra build flags.
	Build(ctx context.Context, dir, output string, flags []string) error

	// Clean removes the toolchain caches of the package at dir.
	Clean(ctx context.Context, dir string) error

	// Version returns the toolchain version string.
	Version(ctx context.Context) (string, error)

	// Platform returns the target platform as GOOS_GOARCH.
	Platform(ctx context.Context) (string, error)
}
