package domain

import "io"

// ProcessSpec describes a subprocess invocation.
type ProcessSpec struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the current process environment.
	Env []string

	// Stdin, Stdout and Stderr are used by streamed invocations only.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ProcessOutput is the result of a captured invocation.
type ProcessOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
