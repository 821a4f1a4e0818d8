// Package app implements the use cases of the jig front door.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/jig/internal/adapters/golang"  //nolint:depguard // Build flag syntax is owned by the toolchain adapter
	"go.trai.ch/jig/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the watcher adapter
	"go.trai.ch/jig/internal/build"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	orchestrator *orchestrator.Orchestrator
	runner       ports.ProcessRunner
	watcher      ports.Watcher
	logger       ports.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(
	orch *orchestrator.Orchestrator,
	runner ports.ProcessRunner,
	w ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		orchestrator: orch,
		runner:       runner,
		watcher:      w,
		logger:       logger,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// SetOutput replaces the streams handed to the companion executable.
func (a *App) SetOutput(stdin io.Reader, stdout, stderr io.Writer) {
	a.stdin, a.stdout, a.stderr = stdin, stdout, stderr
}

// Init scaffolds a companion project at the configured path.
func (a *App) Init(ctx context.Context, cfg domain.Config) error {
	path, err := projectPath(cfg)
	if err != nil {
		return err
	}

	project, err := a.orchestrator.Init(ctx, path, build.Version)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("initialized %s in %s", project.Module, project.Path))
	return nil
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Force rebuilds even when the executable is up to date.
	Force bool
	// Watch keeps rebuilding after every batch of source changes until ctx
	// is done.
	Watch bool
}

// Build makes sure the companion executable is up to date.
func (a *App) Build(ctx context.Context, cfg domain.Config, opts BuildOptions) error {
	if cfg.UsesPrebuiltBinary() {
		path, err := a.orchestrator.ResolvePrebuilt(cfg.PrebuiltBinaryPath)
		if err != nil {
			return err
		}
		a.logger.Info("using prebuilt executable " + path)
		return nil
	}

	path, buildOpts, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	buildOpts.Force = opts.Force

	if err := a.build(ctx, path, buildOpts); err != nil {
		if !opts.Watch {
			return err
		}
		a.logger.Error(err)
	}

	if !opts.Watch {
		return nil
	}

	buildOpts.Force = false
	return a.watch(ctx, path, buildOpts)
}

func (a *App) build(ctx context.Context, path string, opts orchestrator.BuildOptions) error {
	result, err := a.orchestrator.Build(ctx, path, opts)
	if err != nil {
		return err
	}

	if result.Built {
		a.logger.Info("built " + result.Path)
	} else {
		a.logger.Info(result.Path + " is up to date")
	}
	return nil
}

// watch rebuilds the project after every debounced batch of changes.
// Build failures are reported and watching continues.
func (a *App) watch(ctx context.Context, path string, opts orchestrator.BuildOptions) error {
	if err := a.watcher.Start(ctx, path, []string{domain.BuildDirName}); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		default:
			// A rebuild is already pending.
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching " + path + " for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			a.logger.Debug(fmt.Sprintf("%d files changed, first: %s", len(paths), paths[0]))
			if err := a.build(ctx, path, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// Clean removes the build products of the companion project.
func (a *App) Clean(ctx context.Context, cfg domain.Config) error {
	path, err := projectPath(cfg)
	if err != nil {
		return err
	}

	if err := a.orchestrator.Clean(ctx, path); err != nil {
		return err
	}

	a.logger.Info("cleaned " + path)
	return nil
}

// List prints the commands of the companion executable.
func (a *App) List(ctx context.Context, cfg domain.Config, asJSON bool) error {
	args := []string{"list", "--case-converting-strategy", cfg.CaseStrategy.String()}
	if asJSON {
		args = append(args, "--json")
	}
	if cfg.Verbose {
		args = append(args, "--verbose")
	}
	return a.invoke(ctx, cfg, args)
}

// Run invokes command in the companion executable. Arguments are passed
// through unchanged.
func (a *App) Run(ctx context.Context, cfg domain.Config, command string, args []string) error {
	appDir, err := projectPath(cfg)
	if err != nil {
		return err
	}
	runDir, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	companionArgs := []string{
		"run",
		"--case-converting-strategy", cfg.CaseStrategy.String(),
		"--app-directory", appDir,
		"--run-directory", runDir,
	}
	if cfg.Verbose {
		companionArgs = append(companionArgs, "--verbose")
	}
	companionArgs = append(companionArgs, command)
	companionArgs = append(companionArgs, args...)

	return a.invoke(ctx, cfg, companionArgs)
}

// Config writes the resolved configuration as YAML.
func (a *App) Config(cfg domain.Config) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}

// invoke runs the companion executable with args and relays its exit status.
func (a *App) invoke(ctx context.Context, cfg domain.Config, args []string) error {
	exe, err := a.companion(ctx, cfg)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	code, err := a.runner.Stream(ctx, domain.ProcessSpec{
		Name:   exe,
		Args:   args,
		Dir:    wd,
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCompanionFailed, err.Error()), "path", exe)
	}
	if code != 0 {
		return &CompanionExitError{Code: code}
	}
	return nil
}

// companion returns the executable to invoke, building it when needed.
func (a *App) companion(ctx context.Context, cfg domain.Config) (string, error) {
	if cfg.UsesPrebuiltBinary() {
		return a.orchestrator.ResolvePrebuilt(cfg.PrebuiltBinaryPath)
	}

	path, opts, err := buildOptions(cfg)
	if err != nil {
		return "", err
	}
	return a.orchestrator.ExecutablePath(ctx, path, opts)
}

func projectPath(cfg domain.Config) (string, error) {
	path, err := filepath.Abs(cfg.AppPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve companion project path"), "path", cfg.AppPath)
	}
	return path, nil
}

func buildOptions(cfg domain.Config) (string, orchestrator.BuildOptions, error) {
	path, err := projectPath(cfg)
	if err != nil {
		return "", orchestrator.BuildOptions{}, err
	}
	flags, err := golang.ParseBuildFlags(cfg.BuildFlags)
	if err != nil {
		return "", orchestrator.BuildOptions{}, err
	}
	return path, orchestrator.BuildOptions{
		Flags:                 flags,
		DetectToolchainChange: cfg.DetectToolchainChange,
	}, nil
}
