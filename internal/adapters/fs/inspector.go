// Package fs provides the file system adapter used by the build orchestrator.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileInspector = (*Inspector)(nil)

// Inspector implements ports.FileInspector on the local file system.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Exists reports whether path exists.
func (i *Inspector) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ModTime returns the modification time of path.
func (i *Inspector) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), nil
}

// HasNewerFile walks root and stops at the first regular file modified after
// t. Hidden entries are ignored and skipDir is not descended into.
func (i *Inspector) HasNewerFile(root, skipDir string, t time.Time) (bool, error) {
	skipDir = filepath.Clean(skipDir)
	found := false

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if filepath.Clean(path) == skipDir {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(t) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to scan companion sources"), "root", root)
	}

	return found, nil
}

// Touch sets the access and modification time of path to t.
func (i *Inspector) Touch(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to touch file"), "path", path)
	}
	return nil
}

// ReadFile returns the content of path.
func (i *Inspector) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths are derived from the project directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories.
func (i *Inspector) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// RemoveAll removes path and everything below it. A missing path is not an error.
func (i *Inspector) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove"), "path", path)
	}
	return nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
