package logger_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/jig/internal/adapters/logger"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.NewWithWriter(buf)

	l.Debug("hidden")
	l.Info("building jigapp")
	l.Warn("toolchain changed")
	l.SetVerbose(true)
	l.Debug("shown")
	l.SetVerbose(false)
	l.Debug("hidden again")

	assert.Equal(t, "building jigapp\n! toolchain changed\n• shown\n", buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	l := logger.NewWithWriter(first)
	l.SetVerbose(true)

	l.Info("one")
	l.SetOutput(second)
	l.Debug("two")

	assert.Equal(t, "one\n", first.String())
	assert.Equal(t, "• two\n", second.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.NewWithWriter(buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.NewWithWriter(buf)

	err := zerr.Wrap(
		zerr.With(zerr.Wrap(errors.New("open go.mod: permission denied"), "failed to read manifest"), "path", "jigapp/go.mod"),
		"failed to resolve companion executable",
	)
	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "metadata on standard error moves to cause",
			err:  zerr.With(errors.New("exit status 2"), "command", "go"),
			want: "Error: exit status 2 (command=go)",
		},
		{
			name: "metadata sorted by key",
			err:  zerr.With(zerr.With(zerr.New("base"), "b", 2), "a", "x"),
			want: "Error: base (a=x, b=2)",
		},
		{
			name: "multi-line toolchain error",
			err: &domain.ToolchainError{
				Op:       domain.ErrFailedToBuild,
				Args:     []string{"build", "."},
				ExitCode: 1,
				Stderr:   "main.go:3: syntax error\n",
			},
			want: "Error: failed to build companion executable (go build . exited with 1)\n" +
				"       stderr:\n" +
				"       main.go:3: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}
