// Package shell provides the subprocess adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
)

// interruptGrace is how long a cancelled process may take to exit after
// receiving an interrupt before it is killed.
const interruptGrace = 5 * time.Second

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Capture runs the process and collects stdout and stderr.
func (r *Runner) Capture(ctx context.Context, spec domain.ProcessSpec) (domain.ProcessOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd := r.command(ctx, spec)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code, err := r.run(cmd, spec)
	return domain.ProcessOutput{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, err
}

// Stream runs the process attached to the streams of spec.
func (r *Runner) Stream(ctx context.Context, spec domain.ProcessSpec) (int, error) {
	cmd := r.command(ctx, spec)
	cmd.Stdin = orDefault[io.Reader](spec.Stdin, os.Stdin)
	cmd.Stdout = orDefault[io.Writer](spec.Stdout, os.Stdout)
	cmd.Stderr = orDefault[io.Writer](spec.Stderr, os.Stderr)

	return r.run(cmd, spec)
}

func (r *Runner) command(ctx context.Context, spec domain.ProcessSpec) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...) //nolint:gosec // arguments are built by the orchestrator
	cmd.Dir = spec.Dir
	cmd.Env = mergeEnvironment(os.Environ(), spec.Env)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace
	return cmd
}

func (r *Runner) run(cmd *exec.Cmd, spec domain.ProcessSpec) (int, error) {
	r.logger.Debug("exec " + spec.Name + " " + strings.Join(spec.Args, " "))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal: report the shell convention 128+N.
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
	}

	return -1, zerr.With(zerr.Wrap(err, "failed to run process"), "command", spec.Name)
}

// mergeEnvironment overlays extra KEY=VALUE pairs on base. Later entries win.
func mergeEnvironment(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}

	index := make(map[string]int, len(base)+len(extra))
	merged := make([]string, 0, len(base)+len(extra))
	for _, entry := range append(append([]string{}, base...), extra...) {
		key, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, seen := index[key]; seen {
			merged[i] = entry
			continue
		}
		index[key] = len(merged)
		merged = append(merged, entry)
	}
	return merged
}

func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
