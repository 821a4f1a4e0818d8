package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/pkg/jig/names"
)

func TestLayout(t *testing.T) {
	project := filepath.Join("work", "jigapp")

	assert.Equal(t, filepath.Join("work", "jigapp", ".build"), domain.BuildDir(project))
	assert.Equal(t, filepath.Join("work", "jigapp", ".build", "toolchain-version"), domain.ToolchainVersionPath(project))
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "jigapp", cfg.AppPath)
	assert.Equal(t, names.Keep, cfg.CaseStrategy)
	assert.True(t, cfg.DetectToolchainChange)
	assert.False(t, cfg.UsesPrebuiltBinary())

	cfg.PrebuiltBinaryPath = "bin/tasks"
	assert.True(t, cfg.UsesPrebuiltBinary())
}

func TestToolchainError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &domain.ToolchainError{
		Op:       domain.ErrFailedToBuild,
		Args:     []string{"build", "-o", "out", "."},
		ExitCode: 1,
		Stdout:   "",
		Stderr:   "./main.go:3:1: syntax error\n",
		Err:      cause,
	}

	require.ErrorIs(t, err, domain.ErrFailedToBuild)
	require.ErrorIs(t, err, cause)
	assert.Equal(t,
		"failed to build companion executable (go build -o out . exited with 1)\nstderr:\n./main.go:3:1: syntax error",
		err.Error())
	assert.Equal(t, "./main.go:3:1: syntax error\n", err.Stderr)
}

func TestToolchainError_BothStreams(t *testing.T) {
	err := &domain.ToolchainError{
		Op:       domain.ErrFailedToClean,
		Args:     []string{"clean", "."},
		ExitCode: 2,
		Stdout:   "rm -f jigapp\n",
		Stderr:   "permission denied\n",
	}

	assert.Equal(t,
		"failed to clean companion project (go clean . exited with 2)\nstdout:\nrm -f jigapp\nstderr:\npermission denied",
		err.Error())
	assert.Equal(t, []error{domain.ErrFailedToClean}, err.Unwrap())
}
