package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jig/internal/adapters/shell"
)

func TestMergeEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		extra []string
		want  []string
	}{
		{
			name: "no extra returns base",
			base: []string{"A=1"},
			want: []string{"A=1"},
		},
		{
			name:  "extra overrides in place",
			base:  []string{"A=1", "B=2"},
			extra: []string{"A=3"},
			want:  []string{"A=3", "B=2"},
		},
		{
			name:  "extra appends new keys",
			base:  []string{"A=1"},
			extra: []string{"C=3", "D="},
			want:  []string{"A=1", "C=3", "D="},
		},
		{
			name:  "malformed entries dropped",
			base:  []string{"A=1", "junk"},
			extra: []string{"B=2"},
			want:  []string{"A=1", "B=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.MergeEnvironment(tt.base, tt.extra))
		})
	}
}
