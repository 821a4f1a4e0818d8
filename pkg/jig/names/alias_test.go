package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jig/pkg/jig/names"
)

func TestAliases_Example(t *testing.T) {
	phrases := []string{
		"command_aqua",
		"command_apple",
		"command_beer",
		"command_boo",
		"command_book",
		"command_duck",
		"command_car",
		"command",
		"",
	}

	got := names.Aliases(phrases)

	assert.Equal(t, map[string]string{
		"command_aqua":  "caq",
		"command_apple": "cap",
		"command_beer":  "cbe",
		"command_boo":   "cboo",
		"command_book":  "cbook",
		"command_duck":  "cd",
		"command_car":   "cc",
		"command":       "c",
	}, got)
	assert.NotContains(t, got, "")
}

func TestAliases_Deterministic(t *testing.T) {
	phrases := []string{"buildAll", "build_app", "bundle", "test", "testAll", "tidy"}
	reversed := []string{"tidy", "testAll", "test", "bundle", "build_app", "buildAll"}

	first := names.Aliases(phrases)
	for range 10 {
		assert.Equal(t, first, names.Aliases(phrases))
	}
	assert.Equal(t, first, names.Aliases(reversed))
}

func TestAliases_Unique(t *testing.T) {
	phrases := []string{
		"deploy", "deploy_staging", "deploy_production", "deployPreview",
		"db_migrate", "db_seed", "db_reset", "docs",
		"lint", "lint_fix", "format", "fmt_check",
	}

	got := names.Aliases(phrases)
	assert.Len(t, got, len(phrases))
	assertDistinct(t, got)
}

func TestAliases_FallbackDoesNotShadowAnotherAlias(t *testing.T) {
	got := names.Aliases([]string{"ab", "AB", "a_bc"})

	assert.Equal(t, map[string]string{
		"ab":   "ab",
		"AB":   "AB",
		"a_bc": "abc",
	}, got)
	assertDistinct(t, got)
}

func TestAliases_FallbackChain(t *testing.T) {
	got := names.Aliases([]string{"ab", "AB", "a_b", "abc", "ABC", "a_b_c"})

	assert.Len(t, got, 6)
	assertDistinct(t, got)
}

func assertDistinct(t *testing.T, aliases map[string]string) {
	t.Helper()
	seen := make(map[string]string)
	for phrase, alias := range aliases {
		other, dup := seen[alias]
		assert.False(t, dup, "alias %q shared by %q and %q", alias, phrase, other)
		seen[alias] = phrase
	}
}

func TestAliases_IndistinguishableWordsFallBackToPhrase(t *testing.T) {
	got := names.Aliases([]string{"runTests", "run_tests"})

	assert.Equal(t, map[string]string{
		"runTests":  "runTests",
		"run_tests": "run_tests",
	}, got)
}

func TestAliases_Empty(t *testing.T) {
	assert.Empty(t, names.Aliases(nil))
	assert.Empty(t, names.Aliases([]string{"", "__"}))
}
