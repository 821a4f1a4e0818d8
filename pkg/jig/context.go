package jig

import (
	"context"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Context is the environment a command runs in. It is passed by value; the
// With* methods return modified copies that share Storage and Interruption.
type Context struct {
	context.Context

	// Arguments are the arguments given after the command name.
	Arguments []string
	// Environment holds the variables passed to spawned processes.
	Environment map[string]string
	// AppDirectory is the companion project directory.
	AppDirectory string
	// RunDirectory is the directory jig was invoked from.
	RunDirectory string

	// Stdin, Stdout and Stderr are given to spawned processes.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Storage      *Storage
	Interruption *Interruption
}

// NewContext creates the root context of a run. The environment is taken
// from the current process.
func NewContext(ctx context.Context, appDir, runDir string, args []string) Context {
	return Context{
		Context:      ctx,
		Arguments:    args,
		Environment:  environ(os.Environ()),
		AppDirectory: appDir,
		RunDirectory: runDir,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Storage:      NewStorage(),
		Interruption: NewInterruption(),
	}
}

// WithArguments returns a copy of c with the given arguments.
func (c Context) WithArguments(args []string) Context {
	c.Arguments = args
	return c
}

// WithEnvironment returns a copy of c whose environment is overlaid with env.
func (c Context) WithEnvironment(env map[string]string) Context {
	merged := maps.Clone(c.Environment)
	if merged == nil {
		merged = make(map[string]string, len(env))
	}
	maps.Copy(merged, env)
	c.Environment = merged
	return c
}

// WithContext returns a copy of c bound to ctx.
func (c Context) WithContext(ctx context.Context) Context {
	c.Context = ctx
	return c
}

// ParseFlags parses the context arguments into fs. Parse failures are
// reported as *ArgumentError.
func (c Context) ParseFlags(fs *pflag.FlagSet) error {
	if err := fs.Parse(c.Arguments); err != nil {
		return &ArgumentError{Err: err}
	}
	return nil
}

func (c Context) ctx() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

func (c Context) streams() (io.Reader, io.Writer, io.Writer) {
	stdin, stdout, stderr := c.Stdin, c.Stdout, c.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdin, stdout, stderr
}

// environList renders Environment as sorted KEY=VALUE pairs.
func (c Context) environList() []string {
	keys := slices.Sorted(maps.Keys(c.Environment))
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+c.Environment[k])
	}
	return env
}

func environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if k, v, ok := strings.Cut(pair, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
