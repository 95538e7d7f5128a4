package rst

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading_AdornmentTable(t *testing.T) {
	tests := []struct {
		level    int
		symbol   string
		overline bool
	}{
		{1, "#", true},
		{2, "*", true},
		{3, "=", false},
		{4, "-", false},
		{5, "^", false},
		{6, `"`, false},
	}

	for _, tt := range tests {
		for _, title := range []string{"Python modules", "x", "Modulés ünicode"} {
			lines, err := Heading(tt.level, title, 1)
			require.NoError(t, err)

			rule := strings.Repeat(tt.symbol, utf8.RuneCountInString(title))
			var want []string
			if tt.overline {
				want = append(want, rule)
			}
			want = append(want, title, rule, "")
			assert.Equal(t, want, lines, "level %d title %q", tt.level, title)
		}
	}
}

func TestHeading_TrailingBreaks(t *testing.T) {
	lines, err := Heading(1, "Doc", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"###", "Doc", "###", "", ""}, lines)

	lines, err = Heading(3, "app", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "==="}, lines)

	lines, err = Heading(3, "app", -4)
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "==="}, lines)
}

func TestHeading_UnsupportedLevel(t *testing.T) {
	for _, level := range []int{0, 7, -1} {
		_, err := Heading(level, "title", 1)
		require.ErrorIs(t, err, ErrUnsupportedLevel)
	}
	assert.Panics(t, func() { MustHeading(9, "title", 1) })
}

func TestAutomodule(t *testing.T) {
	got := Automodule("blog.models", []string{"members", "show-inheritance"})
	assert.Equal(t, []string{
		".. automodule:: blog.models",
		"    :members:",
		"    :show-inheritance:",
	}, got)

	assert.Equal(t, []string{".. automodule:: blog.views"}, Automodule("blog.views", nil))
}
