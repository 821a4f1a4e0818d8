package jig_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/pkg/jig"
)

func TestMapArguments_FiltersForSkipAndRun(t *testing.T) {
	var skipArgs, runArgs, depArgs, siblingArgs []string

	dep := jig.Command{Run: func(ctx jig.Context) error {
		depArgs = ctx.Arguments
		return nil
	}}
	cmd := jig.Command{
		Dependencies: []jig.Command{dep},
		SkipIf: func(ctx jig.Context) (bool, error) {
			skipArgs = ctx.Arguments
			return false, nil
		},
		Run: func(ctx jig.Context) error {
			runArgs = ctx.Arguments
			return nil
		},
	}
	sibling := jig.Command{Run: func(ctx jig.Context) error {
		siblingArgs = ctx.Arguments
		return nil
	}}

	dropFlags := func(args []string) []string {
		return slices.DeleteFunc(slices.Clone(args), func(a string) bool { return a == "--fast" })
	}
	root := jig.Command{Dependencies: []jig.Command{cmd.MapArguments(dropFlags), sibling}}

	require.NoError(t, jig.Run(newTestContext(t, "target", "--fast"), root))

	assert.Equal(t, []string{"target"}, skipArgs)
	assert.Equal(t, []string{"target"}, runArgs)
	assert.Equal(t, []string{"target"}, depArgs)
	assert.Equal(t, []string{"target", "--fast"}, siblingArgs)
}

func TestMap_KeepsMetadata(t *testing.T) {
	cmd := jig.Command{
		Description:                 "build everything",
		RunDependenciesConcurrently: true,
		Dependencies:                []jig.Command{{Description: "dep"}},
	}

	mapped := cmd.Map(func(ctx jig.Context) jig.Context { return ctx })

	assert.Equal(t, "build everything", mapped.Description)
	assert.True(t, mapped.RunDependenciesConcurrently)
	require.Len(t, mapped.Dependencies, 1)
	assert.Equal(t, "dep", mapped.Dependencies[0].Description)
	assert.Nil(t, mapped.Run)
	assert.Nil(t, mapped.SkipIf)
}

func TestMap_EnvironmentOverlay(t *testing.T) {
	var seen map[string]string
	cmd := jig.Command{Run: func(ctx jig.Context) error {
		seen = ctx.Environment
		return nil
	}}

	mapped := cmd.Map(func(ctx jig.Context) jig.Context {
		return ctx.WithEnvironment(map[string]string{"JIG_STAGE": "ci"})
	})

	ctx := newTestContext(t)
	require.NoError(t, jig.Run(ctx, mapped))
	assert.Equal(t, "ci", seen["JIG_STAGE"])
	assert.NotContains(t, ctx.Environment, "JIG_STAGE")
}
