package jig_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/pkg/jig"
)

func TestNewContext(t *testing.T) {
	t.Setenv("JIG_CONTEXT_TEST", "value")

	ctx := jig.NewContext(t.Context(), "/app", "/run", []string{"a"})
	assert.Equal(t, "/app", ctx.AppDirectory)
	assert.Equal(t, "/run", ctx.RunDirectory)
	assert.Equal(t, []string{"a"}, ctx.Arguments)
	assert.Equal(t, "value", ctx.Environment["JIG_CONTEXT_TEST"])
	assert.NotNil(t, ctx.Storage)
	assert.NotNil(t, ctx.Interruption)
}

func TestContext_CopiesShareState(t *testing.T) {
	ctx := newTestContext(t, "a")
	other := ctx.WithArguments([]string{"b"}).WithEnvironment(map[string]string{"X": "1"})

	assert.Equal(t, []string{"a"}, ctx.Arguments)
	assert.Equal(t, []string{"b"}, other.Arguments)
	assert.NotContains(t, ctx.Environment, "X")
	assert.Equal(t, "1", other.Environment["X"])
	assert.Same(t, ctx.Storage, other.Storage)
	assert.Same(t, ctx.Interruption, other.Interruption)
}

func TestContext_WithEnvironmentOnZeroContext(t *testing.T) {
	ctx := jig.Context{}.WithEnvironment(map[string]string{"X": "1"})
	assert.Equal(t, map[string]string{"X": "1"}, ctx.Environment)
}

func TestContext_ParseFlags(t *testing.T) {
	fs := pflag.NewFlagSet("deploy", pflag.ContinueOnError)
	target := fs.String("target", "staging", "")
	dryRun := fs.Bool("dry-run", false, "")

	err := newTestContext(t, "--target", "prod", "--dry-run", "extra").ParseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, "prod", *target)
	assert.True(t, *dryRun)
	assert.Equal(t, []string{"extra"}, fs.Args())

	fs = pflag.NewFlagSet("deploy", pflag.ContinueOnError)
	err = newTestContext(t, "--nope").ParseFlags(fs)
	require.ErrorIs(t, err, jig.ErrArgumentParsing)

	var argErr *jig.ArgumentError
	require.ErrorAs(t, err, &argErr)
}
