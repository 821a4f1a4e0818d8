package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestMissing is returned when the companion project has no go.mod.
	ErrManifestMissing = zerr.New("companion project manifest not found")

	// ErrManifestUnreadable is returned when go.mod or the package metadata cannot be read or decoded.
	ErrManifestUnreadable = zerr.New("companion project manifest could not be read")

	// ErrExecutableProductMissing is returned when the companion project root is not a main package.
	ErrExecutableProductMissing = zerr.New("companion project does not build an executable")

	// ErrAlreadyInitialized is returned by init when a valid companion project already exists.
	ErrAlreadyInitialized = zerr.New("companion project already initialized")

	// ErrFailedToBuild is returned when the toolchain fails to build the companion executable.
	ErrFailedToBuild = zerr.New("failed to build companion executable")

	// ErrFailedToClean is returned when the toolchain fails to clean the companion project.
	ErrFailedToClean = zerr.New("failed to clean companion project")

	// ErrToolchainVersion is returned when the toolchain version cannot be determined.
	ErrToolchainVersion = zerr.New("failed to determine toolchain version")

	// ErrBinPath is returned when the build output platform cannot be determined.
	ErrBinPath = zerr.New("failed to determine build output path")

	// ErrPrebuiltBinaryNotFound is returned when the configured prebuilt binary does not exist.
	ErrPrebuiltBinaryNotFound = zerr.New("prebuilt binary not found")

	// ErrMutuallyExclusiveOptions is returned when both a companion path and a prebuilt binary are configured.
	ErrMutuallyExclusiveOptions = zerr.New("app-path and app-prebuilt-binary-path cannot be used together")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrInvalidBuildFlags is returned when the configured build flags cannot be split into words.
	ErrInvalidBuildFlags = zerr.New("invalid build flags")

	// ErrScaffoldFailed is returned when init cannot write the companion project files.
	ErrScaffoldFailed = zerr.New("failed to scaffold companion project")

	// ErrCompanionFailed is returned when the companion executable cannot be started.
	ErrCompanionFailed = zerr.New("failed to run companion executable")
)
