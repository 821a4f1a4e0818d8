package jig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.trai.ch/jig/internal/adapters/logger"
	"go.trai.ch/jig/pkg/jig/names"
)

// App is the entry point of a companion executable.
type App struct {
	name   string
	root   *GroupBuilder
	groups []Group

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	signals func() (<-chan os.Signal, func())
}

// NewApp creates the companion application name with the given command groups.
// Commands added with Add are listed under name.
func NewApp(name string, groups ...Group) *App {
	return &App{
		name:   name,
		root:   NewGroup(name),
		groups: groups,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		signals: func() (<-chan os.Signal, func()) {
			ch := make(chan os.Signal, 1)
			signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
			return ch, func() { signal.Stop(ch) }
		},
	}
}

// Add registers a root command.
func (a *App) Add(name string, cmd Command) *App {
	a.root.Add(name, cmd)
	return a
}

// SetOutput redirects the standard streams of the application.
func (a *App) SetOutput(stdin io.Reader, stdout, stderr io.Writer) {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
}

// Main runs the application with the process arguments and exits.
func (a *App) Main() {
	os.Exit(a.Execute(context.Background(), os.Args[1:]))
}

// Execute runs the application and returns its exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	log := logger.NewWithWriter(a.stderr)

	cmd := a.command(log)
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var interrupted *interruptedError
	if errors.As(err, &interrupted) {
		return interrupted.exitCode()
	}

	log.Error(err)
	return ExitCode(err)
}

type commonFlags struct {
	strategy string
	verbose  bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.strategy, "case-converting-strategy", string(names.Keep), "command name conversion: keep, snake or kebab")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable debug logging")
}

func (a *App) command(log *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           a.name,
		Short:         "Project commands of " + a.name,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(a.listCommand(log), a.runCommand(log))
	return root
}

func (a *App) catalog(f commonFlags, log *logger.Logger) (*Catalog, error) {
	log.SetVerbose(f.verbose)
	strategy, err := names.ParseCaseStrategy(f.strategy)
	if err != nil {
		return nil, err
	}
	if dups := a.root.duplicateNames(); len(dups) > 0 {
		return nil, &DuplicateCommandError{Name: names.Convert(dups[0], strategy)}
	}
	return NewCatalog(a.name, a.root.Commands(), a.groups, strategy)
}

func (a *App) listCommand(log *logger.Logger) *cobra.Command {
	var (
		flags  commonFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog(flags, log)
			if err != nil {
				return err
			}

			listing := catalog.Listing()
			if !asJSON {
				_, err := io.WriteString(cmd.OutOrStdout(), listing.Text())
				return err
			}
			data, err := listing.JSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")
	return cmd
}

func (a *App) runCommand(log *logger.Logger) *cobra.Command {
	var (
		flags      commonFlags
		appDir     string
		runDir     string
		concurrent bool
	)
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(flags, log)
			if err != nil {
				return err
			}

			name, err := catalog.Resolve(args[0])
			if err != nil {
				return err
			}
			command, _ := catalog.Lookup(name)

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			if appDir == "" {
				appDir = wd
			}
			if runDir == "" {
				runDir = wd
			}

			opts := []RunnerOption{WithListener(&logListener{log: log})}
			if concurrent {
				opts = append(opts, WithConcurrentDependencies())
			}
			log.Debug("running " + name)
			return a.run(cmd.Context(), name, command, NewRunner(opts...), appDir, runDir, args[1:])
		},
	}
	cmd.Flags().SetInterspersed(false)
	flags.register(cmd)
	cmd.Flags().StringVar(&appDir, "app-directory", "", "companion project directory (default: working directory)")
	cmd.Flags().StringVar(&runDir, "run-directory", "", "directory jig was invoked from (default: working directory)")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "run dependencies of commands that allow it in parallel")
	return cmd
}

// run executes command on a worker goroutine while this goroutine waits for
// it or for a termination signal.
func (a *App) run(
	parent context.Context,
	name string,
	command Command,
	runner *Runner,
	appDir, runDir string,
	args []string,
) error {
	signals, stop := a.signals()
	defer stop()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jctx := NewContext(ctx, appDir, runDir, args)
	jctx.Stdin, jctx.Stdout, jctx.Stderr = a.stdin, a.stdout, a.stderr

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(jctx, command)
	}()

	select {
	case err := <-done:
		if err != nil {
			return newRunError(name, err)
		}
		return nil
	case sig := <-signals:
		cancel()
		jctx.Interruption.Interrupt()
		return &interruptedError{signal: sig}
	}
}

type interruptedError struct {
	signal os.Signal
}

func (e *interruptedError) Error() string {
	return "interrupted by " + e.signal.String()
}

func (e *interruptedError) exitCode() int {
	if s, ok := e.signal.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 128 + int(syscall.SIGINT)
}

// logListener reports the command tree at debug level.
type logListener struct {
	log *logger.Logger
}

func (l *logListener) OnSkip(depth int, cmd Command) {
	l.log.Debug(indent(depth) + "skip " + describe(cmd))
}

func (l *logListener) OnStart(depth int, cmd Command) {
	l.log.Debug(indent(depth) + "start " + describe(cmd))
}

func (l *logListener) OnFinish(depth int, cmd Command, err error) {
	if err != nil {
		l.log.Debug(fmt.Sprintf("%sfailed %s: %v", indent(depth), describe(cmd), err))
		return
	}
	l.log.Debug(indent(depth) + "done " + describe(cmd))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func describe(cmd Command) string {
	if cmd.Description == "" {
		return "(no description)"
	}
	return cmd.Description
}
