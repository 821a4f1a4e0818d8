package jig

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Exit codes reported by a companion executable. The front door relays them
// unchanged.
const (
	ExitSuccess          = 0
	ExitUnexpected       = 101
	ExitCommandNotFound  = 102
	ExitRunFailed        = 103
	ExitDuplicateCommand = 104
	ExitArgumentParsing  = 105
)

var (
	// ErrCommandNotFound is returned when a name matches neither a command nor an alias.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrDuplicateCommand is returned when two groups expose the same command name.
	ErrDuplicateCommand = zerr.New("duplicate command name")

	// ErrArgumentParsing is returned when a command cannot parse its arguments.
	ErrArgumentParsing = zerr.New("failed to parse command arguments")

	// ErrRunFailed is returned when a command or one of its dependencies fails.
	ErrRunFailed = zerr.New("command failed")
)

// CommandNotFoundError reports a failed lookup together with close matches.
type CommandNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *CommandNotFoundError) Error() string {
	msg := fmt.Sprintf("command %q not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += ", did you mean " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}

// Unwrap returns ErrCommandNotFound.
func (e *CommandNotFoundError) Unwrap() error {
	return ErrCommandNotFound
}

// DuplicateCommandError names the first colliding command found while merging groups.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("duplicate command name %q", e.Name)
}

// Unwrap returns ErrDuplicateCommand.
func (e *DuplicateCommandError) Unwrap() error {
	return ErrDuplicateCommand
}

// ArgumentError marks an error raised while parsing command arguments.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return ErrArgumentParsing.Error() + ": " + e.Err.Error()
}

// Unwrap returns the parser error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is matches ErrArgumentParsing.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgumentParsing
}

// RunErrorKind discriminates failures surfaced by a command run.
type RunErrorKind int

const (
	// RunFailed is a failure of a run action or skip predicate.
	RunFailed RunErrorKind = iota
	// ArgumentParsing is a failure to parse the command arguments.
	ArgumentParsing
)

// RunError wraps the error that aborted a command run.
type RunError struct {
	Kind    RunErrorKind
	Command string
	Err     error
}

func newRunError(command string, err error) *RunError {
	kind := RunFailed
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		kind = ArgumentParsing
	}
	return &RunError{Kind: kind, Command: command, Err: err}
}

func (e *RunError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying failure.
func (e *RunError) Unwrap() error {
	return e.Err
}

// Is matches ErrRunFailed or ErrArgumentParsing according to Kind.
func (e *RunError) Is(target error) bool {
	switch e.Kind {
	case ArgumentParsing:
		return target == ErrArgumentParsing
	default:
		return target == ErrRunFailed
	}
}

// ExitCode maps an error returned by the companion to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var runErr *RunError
	if errors.As(err, &runErr) {
		if runErr.Kind == ArgumentParsing {
			return ExitArgumentParsing
		}
		return ExitRunFailed
	}

	switch {
	case errors.Is(err, ErrCommandNotFound):
		return ExitCommandNotFound
	case errors.Is(err, ErrDuplicateCommand):
		return ExitDuplicateCommand
	case errors.Is(err, ErrArgumentParsing):
		return ExitArgumentParsing
	default:
		return ExitUnexpected
	}
}
