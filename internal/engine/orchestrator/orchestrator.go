// Package orchestrator validates, scaffolds, builds and cleans companion projects.
package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
	"golang.org/x/sync/singleflight"
)

// BuildOptions controls how the companion executable is produced.
type BuildOptions struct {
	// Flags are passed to go build before the package argument.
	Flags []string
	// DetectToolchainChange cleans the project when the toolchain version
	// differs from the one that produced the last build.
	DetectToolchainChange bool
	// Force rebuilds even when the executable is up to date.
	Force bool
}

// BuildResult describes the executable after Build.
type BuildResult struct {
	Path  string
	Built bool
}

// Orchestrator builds companion projects with the Go toolchain.
// Toolchain facts are probed at most once per Orchestrator.
type Orchestrator struct {
	toolchain ports.Toolchain
	files     ports.FileInspector
	logger    ports.Logger
	telemetry ports.Telemetry
	now       func() time.Time

	group    singleflight.Group
	mu       sync.Mutex
	platform string
	version  string
}

// New creates a new Orchestrator.
func New(
	toolchain ports.Toolchain,
	files ports.FileInspector,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Orchestrator {
	return &Orchestrator{
		toolchain: toolchain,
		files:     files,
		logger:    logger,
		telemetry: telemetry,
		now:       time.Now,
	}
}

// Validate checks that path holds a Go module whose root package is a command.
func (o *Orchestrator) Validate(ctx context.Context, path string) (domain.Project, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrManifestMissing, err.Error()), "path", path)
	}

	manifest := filepath.Join(dir, domain.ManifestFile)
	if !o.files.Exists(manifest) {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrManifestMissing, "no go.mod found"), "path", dir)
	}

	data, err := o.files.ReadFile(manifest)
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, err.Error()), "path", manifest)
	}
	mod, err := modfile.ParseLax(manifest, data, nil)
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, err.Error()), "path", manifest)
	}
	if mod.Module == nil {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, "missing module directive"), "path", manifest)
	}

	info, err := o.toolchain.Inspect(ctx, dir)
	if err != nil {
		return domain.Project{}, err
	}
	if !info.IsCommand() {
		var cause error
		if info.Error != "" {
			cause = zerr.New(info.Error)
		}
		return domain.Project{}, &domain.ToolchainError{
			Op:       domain.ErrExecutableProductMissing,
			Args:     []string{"list", "-e", "-json", "."},
			ExitCode: info.Output.ExitCode,
			Stdout:   info.Output.Stdout,
			Stderr:   info.Output.Stderr,
			Err:      cause,
		}
	}

	project := domain.Project{Path: dir, Module: mod.Module.Mod.Path}
	if mod.Go != nil {
		project.GoVersion = mod.Go.Version
	}
	return project, nil
}

// ExecutablePath returns the path of an up-to-date companion executable,
// building it first when it is outdated.
func (o *Orchestrator) ExecutablePath(ctx context.Context, path string, opts BuildOptions) (string, error) {
	opts.Force = false
	result, err := o.Build(ctx, path, opts)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

// Build validates the project and builds the executable when it is outdated
// or opts.Force is set.
func (o *Orchestrator) Build(ctx context.Context, path string, opts BuildOptions) (BuildResult, error) {
	project, err := o.Validate(ctx, path)
	if err != nil {
		return BuildResult{}, err
	}

	exe, err := o.executablePath(ctx, project.Path)
	if err != nil {
		return BuildResult{}, err
	}

	if !opts.Force && !o.IsOutdated(project, exe) {
		_, vertex := o.telemetry.Record(ctx, "build "+project.Module)
		vertex.Cached()
		vertex.Complete(nil)
		o.logger.Debug("companion executable is up to date: " + exe)
		return BuildResult{Path: exe}, nil
	}

	_, err, _ = o.group.Do("build:"+exe, func() (any, error) {
		return nil, o.build(ctx, project, exe, opts)
	})
	if err != nil {
		return BuildResult{}, err
	}
	return BuildResult{Path: exe, Built: true}, nil
}

func (o *Orchestrator) build(ctx context.Context, project domain.Project, exe string, opts BuildOptions) (err error) {
	var version string
	if opts.DetectToolchainChange {
		version, err = o.toolchainVersion(ctx)
		if err != nil {
			return err
		}
		if previous := o.cachedVersion(project.Path); previous != "" && previous != version {
			o.logger.Info("toolchain changed from " + previous + " to " + version + ", cleaning " + project.Module)
			if err := o.clean(ctx, project); err != nil {
				return err
			}
		}
	}

	_, vertex := o.telemetry.Record(ctx, "build "+project.Module)
	defer func() { complete(vertex, err) }()

	o.logger.Info("building " + project.Module)
	if err := o.toolchain.Build(ctx, project.Path, exe, opts.Flags); err != nil {
		return err
	}

	if err := o.files.Touch(exe, o.now()); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFailedToBuild, err.Error()), "path", exe)
	}

	if version != "" {
		marker := domain.ToolchainVersionPath(project.Path)
		if err := o.files.WriteFile(marker, []byte(version+"\n")); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrFailedToBuild, err.Error()), "path", marker)
		}
	}
	return nil
}

// IsOutdated reports whether exe must be rebuilt: it is missing, its
// modification time is unreadable, or a project file outside the build
// directory and hidden entries is strictly newer.
func (o *Orchestrator) IsOutdated(project domain.Project, exe string) bool {
	built, err := o.files.ModTime(exe)
	if err != nil {
		return true
	}

	newer, err := o.files.HasNewerFile(project.Path, domain.BuildDir(project.Path), built)
	if err != nil {
		o.logger.Debug("staleness check failed, rebuilding: " + err.Error())
		return true
	}
	return newer
}

// Clean removes the toolchain caches and the build directory of the project.
func (o *Orchestrator) Clean(ctx context.Context, path string) error {
	project, err := o.Validate(ctx, path)
	if err != nil {
		return err
	}
	return o.clean(ctx, project)
}

func (o *Orchestrator) clean(ctx context.Context, project domain.Project) (err error) {
	_, vertex := o.telemetry.Record(ctx, "clean "+project.Module)
	defer func() { complete(vertex, err) }()

	o.logger.Info("cleaning " + project.Module)
	if err := o.toolchain.Clean(ctx, project.Path); err != nil {
		return err
	}

	buildDir := domain.BuildDir(project.Path)
	if err := o.files.RemoveAll(buildDir); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFailedToClean, err.Error()), "path", buildDir)
	}
	return nil
}

// ResolvePrebuilt returns the absolute path of a prebuilt companion executable.
func (o *Orchestrator) ResolvePrebuilt(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPrebuiltBinaryNotFound, err.Error()), "path", path)
	}
	if !o.files.Exists(abs) {
		return "", zerr.With(zerr.Wrap(domain.ErrPrebuiltBinaryNotFound, "no such file"), "path", abs)
	}
	return abs, nil
}

func (o *Orchestrator) executablePath(ctx context.Context, projectPath string) (string, error) {
	platform, err := o.memo(ctx, "platform", &o.platform, o.toolchain.Platform)
	if err != nil {
		return "", err
	}
	return filepath.Join(domain.BuildDir(projectPath), platform, domain.ExecutableName), nil
}

func (o *Orchestrator) toolchainVersion(ctx context.Context) (string, error) {
	return o.memo(ctx, "version", &o.version, o.toolchain.Version)
}

func (o *Orchestrator) cachedVersion(projectPath string) string {
	data, err := o.files.ReadFile(domain.ToolchainVersionPath(projectPath))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (o *Orchestrator) memo(
	ctx context.Context,
	key string,
	slot *string,
	probe func(context.Context) (string, error),
) (string, error) {
	o.mu.Lock()
	if v := *slot; v != "" {
		o.mu.Unlock()
		return v, nil
	}
	o.mu.Unlock()

	v, err, _ := o.group.Do(key, func() (any, error) {
		value, err := probe(ctx)
		if err != nil {
			return "", err
		}
		o.mu.Lock()
		*slot = value
		o.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil //nolint:forcetypeassert // the probe always returns a string
}

// complete writes captured toolchain output to the vertex and finishes it.
func complete(vertex ports.Vertex, err error) {
	var tcErr *domain.ToolchainError
	if errors.As(err, &tcErr) {
		_, _ = vertex.Stdout().Write([]byte(tcErr.Stdout))
		_, _ = vertex.Stderr().Write([]byte(tcErr.Stderr))
	}
	vertex.Complete(err)
}
