package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesExclusion(t *testing.T) {
	patterns := []string{"django.*", "giza"}

	tests := []struct {
		name string
		want bool
	}{
		{"django.contrib.admin", true},
		{"django.contrib.auth", true},
		{"django.", true},
		{"django", false},
		{"djangoapp", false},
		{"giza", true},
		{"giza.extras", false},
		{"myapp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesExclusion(tt.name, patterns))
		})
	}
}

func TestMatchesExclusion_Edges(t *testing.T) {
	assert.False(t, MatchesExclusion("anything", nil))
	assert.True(t, MatchesExclusion("anything", []string{"*"}), "bare wildcard excludes everything")
	assert.True(t, MatchesExclusion("a.b*", []string{"a.b*"}), "exact match wins even for wildcard patterns")
}
