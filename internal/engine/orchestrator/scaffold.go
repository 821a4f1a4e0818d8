package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
)

// LibraryModule is the module companion projects depend on.
const LibraryModule = "go.trai.ch/jig"

const fallbackGoVersion = "1.25"

var mainTemplate = template.Must(template.New("main.go").Parse(`package main

import (
	"fmt"

	"{{ .Library }}/pkg/jig"
)

func main() {
	jig.NewApp({{ printf "%q" .Name }}).
		Add("hello", jig.Command{
			Description: "Prints a greeting",
			Run: func(ctx jig.Context) error {
				_, err := fmt.Fprintln(ctx.Stdout, "Hello from {{ .Name }}!")
				return err
			},
		}).
		Main()
}
`))

// Init scaffolds a companion project at path and validates it. Existing
// files are kept. libraryVersion is the version of LibraryModule to require;
// a non-release version leaves the requirement to `go mod tidy`.
func (o *Orchestrator) Init(ctx context.Context, path, libraryVersion string) (domain.Project, error) {
	_, err := o.Validate(ctx, path)
	if err == nil {
		return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "nothing to do"), "path", path)
	}
	if !errors.Is(err, domain.ErrManifestMissing) && !errors.Is(err, domain.ErrExecutableProductMissing) {
		return domain.Project{}, err
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return domain.Project{}, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
	}
	name := filepath.Base(dir)

	manifest, err := o.manifest(ctx, name, libraryVersion)
	if err != nil {
		return domain.Project{}, err
	}
	source, err := renderMain(name)
	if err != nil {
		return domain.Project{}, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{domain.IgnoreFile, []byte(domain.BuildDirName + "/\n")},
		{domain.ManifestFile, manifest},
		{domain.MainFile, source},
	}
	for _, f := range files {
		target := filepath.Join(dir, f.name)
		if o.files.Exists(target) {
			o.logger.Debug("keeping existing " + target)
			continue
		}
		if err := o.files.WriteFile(target, f.data); err != nil {
			return domain.Project{}, zerr.With(zerr.Wrap(domain.ErrScaffoldFailed, err.Error()), "path", target)
		}
	}

	if !semver.IsValid(libraryVersion) {
		o.logger.Warn("run `go mod tidy` in " + dir + " to resolve " + LibraryModule)
	}

	return o.Validate(ctx, dir)
}

func (o *Orchestrator) manifest(ctx context.Context, module, libraryVersion string) ([]byte, error) {
	goVersion := fallbackGoVersion
	if v, err := o.toolchainVersion(ctx); err == nil {
		if trimmed := strings.TrimPrefix(v, "go"); semver.IsValid("v" + trimmed) {
			goVersion = trimmed
		}
	}

	f := new(modfile.File)
	if err := f.AddModuleStmt(module); err != nil {
		return nil, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
	}
	if err := f.AddGoStmt(goVersion); err != nil {
		return nil, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
	}
	if semver.IsValid(libraryVersion) {
		if err := f.AddRequire(LibraryModule, libraryVersion); err != nil {
			return nil, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
		}
	}

	data, err := f.Format()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
	}
	return data, nil
}

func renderMain(name string) ([]byte, error) {
	var buf bytes.Buffer
	err := mainTemplate.Execute(&buf, struct{ Library, Name string }{LibraryModule, name})
	if err != nil {
		return nil, zerr.Wrap(domain.ErrScaffoldFailed, err.Error())
	}
	return buf.Bytes(), nil
}
