// Package golang drives the go command for companion projects.
package golang

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

const goCommand = "go"

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain implements ports.Toolchain with the go command.
type Toolchain struct {
	runner ports.ProcessRunner
}

// New creates a Toolchain running go through runner.
func New(runner ports.ProcessRunner) *Toolchain {
	return &Toolchain{runner: runner}
}

// Inspect runs `go list -e -json .` in dir. Load errors are reported in the
// result rather than as a failure; only an unusable module or malformed
// output fails.
func (t *Toolchain) Inspect(ctx context.Context, dir string) (domain.PackageInfo, error) {
	args := []string{"list", "-e", "-json", "."}
	out, err := t.capture(ctx, dir, domain.ErrManifestUnreadable, args...)
	if err != nil {
		return domain.PackageInfo{}, err
	}

	if !gjson.Valid(out.Stdout) {
		return domain.PackageInfo{}, &domain.ToolchainError{
			Op:       domain.ErrManifestUnreadable,
			Args:     args,
			ExitCode: out.ExitCode,
			Stdout:   out.Stdout,
			Stderr:   out.Stderr,
			Err:      zerr.New("package metadata is not valid JSON"),
		}
	}

	result := gjson.Parse(out.Stdout)
	info := domain.PackageInfo{
		Name:       result.Get("Name").String(),
		ImportPath: result.Get("ImportPath").String(),
		Dir:        result.Get("Dir").String(),
		Error:      result.Get("Error.Err").String(),
		Output:     out,
	}
	for _, f := range result.Get("GoFiles").Array() {
		info.GoFiles = append(info.GoFiles, f.String())
	}

	return info, nil
}

// Build runs `go build -o output <flags> .` in dir.
func (t *Toolchain) Build(ctx context.Context, dir, output string, flags []string) error {
	args := append([]string{"build", "-o", output}, flags...)
	args = append(args, ".")
	_, err := t.capture(ctx, dir, domain.ErrFailedToBuild, args...)
	return err
}

// Clean runs `go clean .` in dir.
func (t *Toolchain) Clean(ctx context.Context, dir string) error {
	_, err := t.capture(ctx, dir, domain.ErrFailedToClean, "clean", ".")
	return err
}

// Version returns `go env GOVERSION`.
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	out, err := t.capture(ctx, "", domain.ErrToolchainVersion, "env", "GOVERSION")
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(out.Stdout)
	if version == "" {
		return "", zerr.Wrap(domain.ErrToolchainVersion, "go env GOVERSION printed nothing")
	}
	return version, nil
}

// Platform returns GOOS_GOARCH from `go env`.
func (t *Toolchain) Platform(ctx context.Context) (string, error) {
	out, err := t.capture(ctx, "", domain.ErrBinPath, "env", "GOOS", "GOARCH")
	if err != nil {
		return "", err
	}

	fields := strings.Fields(out.Stdout)
	if len(fields) != 2 {
		return "", zerr.With(zerr.Wrap(domain.ErrBinPath, "unexpected go env output"), "output", out.Stdout)
	}
	return fields[0] + "_" + fields[1], nil
}

func (t *Toolchain) capture(ctx context.Context, dir string, op error, args ...string) (domain.ProcessOutput, error) {
	out, err := t.runner.Capture(ctx, domain.ProcessSpec{Name: goCommand, Args: args, Dir: dir})
	if err != nil {
		return out, &domain.ToolchainError{Op: op, Args: args, ExitCode: out.ExitCode, Stdout: out.Stdout, Stderr: out.Stderr, Err: err}
	}
	if out.ExitCode != 0 {
		return out, &domain.ToolchainError{Op: op, Args: args, ExitCode: out.ExitCode, Stdout: out.Stdout, Stderr: out.Stderr}
	}
	return out, nil
}

// ParseBuildFlags splits a shell-quoted flag string into arguments,
// expanding environment variables.
func ParseBuildFlags(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields, err := shell.Fields(s, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidBuildFlags, err.Error()), "flags", s)
	}
	return fields, nil
}
