// Package jig declares and runs project commands.
//
// A companion project builds a Catalog from its command groups and hands it
// to App, which provides the list and run entry points invoked by the jig
// front door.
package jig

// Command is a unit of work. Commands are plain values: they carry no name
// and may appear as a dependency of several other commands.
type Command struct {
	// Description is shown by list. Empty means no description.
	Description string
	// Dependencies run, in order, before Run.
	Dependencies []Command
	// RunDependenciesConcurrently allows a concurrent Runner to start the
	// dependencies in parallel.
	RunDependenciesConcurrently bool
	// SkipIf, when it returns true, skips the command and all of its dependencies.
	SkipIf func(Context) (bool, error)
	// Run is the command's own action.
	Run func(Context) error
}

// Map returns a copy of c in which the skip predicate, the run action and,
// recursively, every dependency observe transform(ctx) instead of ctx.
func (c Command) Map(transform func(Context) Context) Command {
	mapped := Command{
		Description:                 c.Description,
		RunDependenciesConcurrently: c.RunDependenciesConcurrently,
	}

	if len(c.Dependencies) > 0 {
		mapped.Dependencies = make([]Command, len(c.Dependencies))
		for i, dep := range c.Dependencies {
			mapped.Dependencies[i] = dep.Map(transform)
		}
	}

	if skip := c.SkipIf; skip != nil {
		mapped.SkipIf = func(ctx Context) (bool, error) {
			return skip(transform(ctx))
		}
	}

	if run := c.Run; run != nil {
		mapped.Run = func(ctx Context) error {
			return run(transform(ctx))
		}
	}

	return mapped
}

// MapArguments is Map with a transform that only rewrites the arguments.
func (c Command) MapArguments(transform func([]string) []string) Command {
	return c.Map(func(ctx Context) Context {
		return ctx.WithArguments(transform(ctx.Arguments))
	})
}
