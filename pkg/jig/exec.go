package jig

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// interruptGrace is how long a process may take to exit after its run is
// cancelled before it is killed.
var interruptGrace = 5 * time.Second

// Exec runs a program in RunDirectory with the streams of c and
// waits for it. The process is tracked by Interruption while it runs.
func (c Context) Exec(name string, args ...string) error {
	cmd := exec.CommandContext(c.ctx(), name, args...) //nolint:gosec // commands are declared by the project
	cmd.Dir = c.RunDirectory
	cmd.Env = c.environList()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = c.streams()
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start process"), "command", name)
	}

	release := func() {}
	if c.Interruption != nil {
		release = c.Interruption.Track(cmd.Process)
	}
	defer release()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "process failed"), "command", name), "exit_code", exitCode)
	}

	return nil
}

// Shell interprets script with a POSIX shell interpreter in RunDirectory.
// The context arguments are available as positional parameters.
func (c Context) Shell(script string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return zerr.Wrap(err, "failed to parse script")
	}

	opts := []interp.RunnerOption{
		interp.StdIO(c.streams()),
		interp.Env(expand.ListEnviron(c.environList()...)),
	}
	if c.RunDirectory != "" {
		opts = append(opts, interp.Dir(c.RunDirectory))
	}
	if len(c.Arguments) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, c.Arguments...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return zerr.Wrap(err, "failed to create shell interpreter")
	}

	if err := runner.Run(c.ctx(), prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return zerr.With(zerr.Wrap(err, "script failed"), "exit_code", int(status))
		}
		return zerr.Wrap(err, "script failed")
	}

	return nil
}
