package domain

import "path/filepath"

const (
	// DefaultAppPath is the companion project directory used when none is configured.
	DefaultAppPath = "jigapp"

	// BuildDirName is the build output directory inside the companion project.
	BuildDirName = ".build"

	// ToolchainVersionFile caches the toolchain version of the last successful build.
	ToolchainVersionFile = "toolchain-version"

	// ExecutableName is the base name of the companion executable.
	ExecutableName = "jigapp"

	// ManifestFile is the companion project manifest.
	ManifestFile = "go.mod"

	// IgnoreFile is the VCS ignore file scaffolded by init.
	IgnoreFile = ".gitignore"

	// MainFile is the starter source file scaffolded by init.
	MainFile = "main.go"

	// ConfigFileName is the project config file looked up in the working directory.
	ConfigFileName = ".jig.yaml"

	// EnvPrefix prefixes every environment variable read by the front door.
	EnvPrefix = "JIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuildDir returns the build output directory of the project at path.
func BuildDir(projectPath string) string {
	return filepath.Join(projectPath, BuildDirName)
}

// ToolchainVersionPath returns the version marker path of the project at path.
func ToolchainVersionPath(projectPath string) string {
	return filepath.Join(BuildDir(projectPath), ToolchainVersionFile)
}
