package jig

import "golang.org/x/sync/errgroup"

// RunListener observes the nodes visited by a Runner.
type RunListener interface {
	OnSkip(depth int, cmd Command)
	OnStart(depth int, cmd Command)
	OnFinish(depth int, cmd Command, err error)
}

// Runner executes a command and its dependencies.
//
// By default dependencies run one after another in declaration order. A
// dependency reachable through several paths runs once per path.
type Runner struct {
	concurrent bool
	listener   RunListener
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrentDependencies makes the runner start the dependencies of
// commands with RunDependenciesConcurrently set in parallel.
func WithConcurrentDependencies() RunnerOption {
	return func(r *Runner) {
		r.concurrent = true
	}
}

// WithListener registers a listener for node transitions.
func WithListener(l RunListener) RunnerOption {
	return func(r *Runner) {
		r.listener = l
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cmd with ctx. The first error aborts the run and is returned
// unchanged.
func (r *Runner) Run(ctx Context, cmd Command) error {
	return r.run(ctx, cmd, 0)
}

func (r *Runner) run(ctx Context, cmd Command, depth int) error {
	if err := ctx.ctx().Err(); err != nil {
		return err
	}

	if cmd.SkipIf != nil {
		skip, err := cmd.SkipIf(ctx)
		if err != nil {
			return err
		}
		if skip {
			if r.listener != nil {
				r.listener.OnSkip(depth, cmd)
			}
			return nil
		}
	}

	if r.listener != nil {
		r.listener.OnStart(depth, cmd)
	}

	err := r.runDependencies(ctx, cmd, depth)
	if err == nil && cmd.Run != nil {
		err = cmd.Run(ctx)
	}

	if r.listener != nil {
		r.listener.OnFinish(depth, cmd, err)
	}
	return err
}

func (r *Runner) runDependencies(ctx Context, cmd Command, depth int) error {
	if r.concurrent && cmd.RunDependenciesConcurrently && len(cmd.Dependencies) > 1 {
		g, gctx := errgroup.WithContext(ctx.ctx())
		for _, dep := range cmd.Dependencies {
			g.Go(func() error {
				return r.run(ctx.WithContext(gctx), dep, depth+1)
			})
		}
		return g.Wait()
	}

	for _, dep := range cmd.Dependencies {
		if err := r.run(ctx, dep, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Run executes cmd with the default sequential Runner.
func Run(ctx Context, cmd Command) error {
	return NewRunner().Run(ctx, cmd)
}
