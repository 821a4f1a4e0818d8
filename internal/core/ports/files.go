package ports

import "time"

// FileInspector reads and updates the companion project on disk.
//
//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type FileInspector interface {
	// Exists reports whether path exists.
	Exists(path string) bool

	// ModTime returns the modification time of path.
	ModTime(path string) (time.Time, error)

	// HasNewerFile reports whether any non-hidden file under root, outside
	// the skipped directory, was modified strictly after t.
	HasNewerFile(root, skipDir string, t time.Time) (bool, error)

	// Touch sets the modification time of path to t.
	Touch(path string, t time.Time) error

	// ReadFile returns the content of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories.
	WriteFile(path string, data []byte) error

	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}
