package golang_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/golang"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newToolchain(t *testing.T) (*golang.Toolchain, *mocks.MockProcessRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	return golang.New(runner), runner
}

func expectGo(runner *mocks.MockProcessRunner, dir string, out domain.ProcessOutput, err error, args ...string) {
	runner.EXPECT().
		Capture(gomock.Any(), domain.ProcessSpec{Name: "go", Args: args, Dir: dir}).
		Return(out, err)
}

func TestInspect_MainPackage(t *testing.T) {
	tc, runner := newToolchain(t)
	stdout := `{
	"Dir": "/work/jigapp",
	"ImportPath": "example.com/jigapp",
	"Name": "main",
	"GoFiles": ["main.go", "tasks.go"]
}`
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{Stdout: stdout}, nil, "list", "-e", "-json", ".")

	info, err := tc.Inspect(t.Context(), "/work/jigapp")
	require.NoError(t, err)
	assert.Equal(t, "main", info.Name)
	assert.Equal(t, "example.com/jigapp", info.ImportPath)
	assert.Equal(t, "/work/jigapp", info.Dir)
	assert.Equal(t, []string{"main.go", "tasks.go"}, info.GoFiles)
	assert.Empty(t, info.Error)
	assert.True(t, info.IsCommand())
}

func TestInspect_LoadErrorIsReported(t *testing.T) {
	tc, runner := newToolchain(t)
	stdout := `{"Dir": "/work/jigapp", "ImportPath": ".", "Error": {"Err": "no Go files in /work/jigapp"}}`
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{Stdout: stdout}, nil, "list", "-e", "-json", ".")

	info, err := tc.Inspect(t.Context(), "/work/jigapp")
	require.NoError(t, err)
	assert.Equal(t, "no Go files in /work/jigapp", info.Error)
	assert.False(t, info.IsCommand())
}

func TestInspect_NonZeroExit(t *testing.T) {
	tc, runner := newToolchain(t)
	out := domain.ProcessOutput{ExitCode: 1, Stderr: "go: errors parsing go.mod\n"}
	expectGo(runner, "/work/jigapp", out, nil, "list", "-e", "-json", ".")

	_, err := tc.Inspect(t.Context(), "/work/jigapp")
	require.ErrorIs(t, err, domain.ErrManifestUnreadable)

	var tcErr *domain.ToolchainError
	require.ErrorAs(t, err, &tcErr)
	assert.Equal(t, 1, tcErr.ExitCode)
	assert.Equal(t, "go: errors parsing go.mod\n", tcErr.Stderr)
}

func TestInspect_InvalidJSON(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{Stdout: "not json"}, nil, "list", "-e", "-json", ".")

	_, err := tc.Inspect(t.Context(), "/work/jigapp")
	require.ErrorIs(t, err, domain.ErrManifestUnreadable)
}

func TestBuild(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{}, nil,
		"build", "-o", "/work/jigapp/.build/linux_amd64/jigapp", "-race", ".")

	err := tc.Build(t.Context(), "/work/jigapp", "/work/jigapp/.build/linux_amd64/jigapp", []string{"-race"})
	require.NoError(t, err)
}

func TestBuild_FailureCarriesOutput(t *testing.T) {
	tc, runner := newToolchain(t)
	out := domain.ProcessOutput{ExitCode: 1, Stderr: "./main.go:3:1: syntax error\n"}
	expectGo(runner, "/work/jigapp", out, nil, "build", "-o", "bin", ".")

	err := tc.Build(t.Context(), "/work/jigapp", "bin", nil)
	require.ErrorIs(t, err, domain.ErrFailedToBuild)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Contains(t, err.Error(), "exited with 1")
}

func TestBuild_StartFailure(t *testing.T) {
	tc, runner := newToolchain(t)
	cause := errors.New("executable file not found in $PATH")
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{ExitCode: -1}, cause, "build", "-o", "bin", ".")

	err := tc.Build(t.Context(), "/work/jigapp", "bin", nil)
	require.ErrorIs(t, err, domain.ErrFailedToBuild)
	require.ErrorIs(t, err, cause)
}

func TestClean(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "/work/jigapp", domain.ProcessOutput{ExitCode: 2}, nil, "clean", ".")

	err := tc.Clean(t.Context(), "/work/jigapp")
	require.ErrorIs(t, err, domain.ErrFailedToClean)
}

func TestVersion(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "", domain.ProcessOutput{Stdout: "go1.25.3\n"}, nil, "env", "GOVERSION")

	version, err := tc.Version(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "go1.25.3", version)
}

func TestVersion_Empty(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "", domain.ProcessOutput{Stdout: "\n"}, nil, "env", "GOVERSION")

	_, err := tc.Version(t.Context())
	require.ErrorIs(t, err, domain.ErrToolchainVersion)
}

func TestPlatform(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "", domain.ProcessOutput{Stdout: "linux\namd64\n"}, nil, "env", "GOOS", "GOARCH")

	platform, err := tc.Platform(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "linux_amd64", platform)
}

func TestPlatform_Malformed(t *testing.T) {
	tc, runner := newToolchain(t)
	expectGo(runner, "", domain.ProcessOutput{Stdout: "linux\n"}, nil, "env", "GOOS", "GOARCH")

	_, err := tc.Platform(t.Context())
	require.ErrorIs(t, err, domain.ErrBinPath)
}

func TestParseBuildFlags(t *testing.T) {
	t.Setenv("JIG_TEST_TAGS", "integration")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "simple", input: "-race -trimpath", want: []string{"-race", "-trimpath"}},
		{name: "quoted", input: `-ldflags "-s -w"`, want: []string{"-ldflags", "-s -w"}},
		{name: "single quoted", input: `-gcflags='all=-N -l'`, want: []string{"-gcflags=all=-N -l"}},
		{name: "expanded", input: "-tags $JIG_TEST_TAGS", want: []string{"-tags", "integration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := golang.ParseBuildFlags(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBuildFlags_Unterminated(t *testing.T) {
	_, err := golang.ParseBuildFlags(`-ldflags "-s -w`)
	require.ErrorIs(t, err, domain.ErrInvalidBuildFlags)
}
