package domain

import (
	"fmt"
	"strings"
)

// ToolchainError is a failed toolchain invocation. Stdout and Stderr hold the
// captured streams unmodified.
type ToolchainError struct {
	// Op is the sentinel describing the failed operation.
	Op       error
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ToolchainError) Error() string {
	return e.Message()
}

// Message returns the operation, exit code and captured streams.
func (e *ToolchainError) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (go %s exited with %d)", e.Op.Error(), strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimRight(e.Stdout, "\n"); s != "" {
		b.WriteString("\nstdout:\n")
		b.WriteString(s)
	}
	if s := strings.TrimRight(e.Stderr, "\n"); s != "" {
		b.WriteString("\nstderr:\n")
		b.WriteString(s)
	}
	return b.String()
}

// Unwrap exposes both the operation sentinel and the process error.
func (e *ToolchainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}
