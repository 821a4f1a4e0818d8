package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/shell"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewRunner(log)
}

func TestRunner_Capture(t *testing.T) {
	r := newRunner(t)

	out, err := r.Capture(context.Background(), domain.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
}

func TestRunner_Capture_NonZeroExitIsNotAnError(t *testing.T) {
	r := newRunner(t)

	out, err := r.Capture(context.Background(), domain.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo broken >&2; exit 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "broken\n", out.Stderr)
}

func TestRunner_Capture_Dir(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()

	out, err := r.Capture(context.Background(), domain.ProcessSpec{
		Name: "pwd",
		Dir:  dir,
	})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(out.Stdout))
}

func TestRunner_Capture_EnvOverlay(t *testing.T) {
	t.Setenv("JIG_TEST_BASE", "base")
	t.Setenv("JIG_TEST_OVERRIDE", "old")
	r := newRunner(t)

	out, err := r.Capture(context.Background(), domain.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", `echo "$JIG_TEST_BASE $JIG_TEST_OVERRIDE $JIG_TEST_NEW"`},
		Env:  []string{"JIG_TEST_OVERRIDE=new", "JIG_TEST_NEW=added"},
	})
	require.NoError(t, err)
	assert.Equal(t, "base new added\n", out.Stdout)
}

func TestRunner_Capture_MissingExecutable(t *testing.T) {
	r := newRunner(t)

	out, err := r.Capture(context.Background(), domain.ProcessSpec{
		Name: "jig-definitely-not-a-real-binary",
	})
	require.Error(t, err)
	assert.Equal(t, -1, out.ExitCode)
}

func TestRunner_Stream(t *testing.T) {
	r := newRunner(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code, err := r.Stream(context.Background(), domain.ProcessSpec{
		Name:   "sh",
		Args:   []string{"-c", "cat; echo done >&2; exit 7"},
		Stdin:  strings.NewReader("piped\n"),
		Stdout: stdout,
		Stderr: stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Equal(t, "piped\n", stdout.String())
	assert.Equal(t, "done\n", stderr.String())
}

func TestRunner_Stream_Cancelled(t *testing.T) {
	r := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Stream(ctx, domain.ProcessSpec{
		Name:   "sleep",
		Args:   []string{"5"},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	require.Error(t, err)
}

func TestRunner_Stream_KilledBySignal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX signals")
	}

	tests := []struct {
		name   string
		signal string
		want   int
	}{
		{name: "interrupt", signal: "INT", want: 130},
		{name: "terminate", signal: "TERM", want: 143},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t)

			code, err := r.Stream(context.Background(), domain.ProcessSpec{
				Name:   "sh",
				Args:   []string{"-c", "kill -" + tt.signal + " $$"},
				Stdout: &bytes.Buffer{},
				Stderr: &bytes.Buffer{},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}
