package names_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/pkg/jig/names"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strategy names.CaseStrategy
		want     string
	}{
		{name: "keep", input: "commandOne", strategy: names.Keep, want: "commandOne"},
		{name: "snake", input: "commandOne", strategy: names.Snake, want: "command_one"},
		{name: "kebab", input: "commandOne", strategy: names.Kebab, want: "command-one"},
		{name: "snake normalizes dashes", input: "build-allTargets", strategy: names.Snake, want: "build_all_targets"},
		{name: "kebab normalizes underscores", input: "build_allTargets", strategy: names.Kebab, want: "build-all-targets"},
		{name: "acronym has no inner boundary", input: "runHTTPServer", strategy: names.Snake, want: "run_httpserver"},
		{name: "digits are not lowercase", input: "command3Run", strategy: names.Kebab, want: "command3run"},
		{name: "empty", input: "", strategy: names.Snake, want: ""},
		{name: "unknown strategy keeps", input: "commandOne", strategy: names.CaseStrategy("other"), want: "commandOne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Convert(tt.input, tt.strategy))
		})
	}
}

func TestParseCaseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  names.CaseStrategy
	}{
		{"keep", names.Keep},
		{"keepOriginal", names.Keep},
		{"snake", names.Snake},
		{"toSnakeCase", names.Snake},
		{"kebab", names.Kebab},
		{"toKebabCase", names.Kebab},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := names.ParseCaseStrategy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := names.ParseCaseStrategy("camel")
		require.Error(t, err)
		assert.True(t, errors.Is(err, names.ErrInvalidCaseStrategy))
	})
}
