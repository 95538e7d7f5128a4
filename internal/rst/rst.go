// Package rst renders the small subset of reStructuredText that giza emits:
// section headings and automodule directives.
package rst

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedLevel is returned for heading levels outside 1..6.
var ErrUnsupportedLevel = errors.New("unsupported heading level")

type adornment struct {
	symbol   string
	overline bool
}

// Levels are numbered HTML style, 1 (document title) to 6.
var adornments = map[int]adornment{
	1: {"#", true},
	2: {"*", true},
	3: {"=", false},
	4: {"-", false},
	5: {"^", false},
	6: {`"`, false},
}

// MinLevel and MaxLevel bound the supported heading levels.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Heading renders title as a section heading of the given level followed by
// trailingBreaks blank lines. The adornment is as long as the title in runes.
func Heading(level int, title string, trailingBreaks int) ([]string, error) {
	a, ok := adornments[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, level)
	}
	if trailingBreaks < 0 {
		trailingBreaks = 0
	}

	rule := strings.Repeat(a.symbol, utf8.RuneCountInString(title))
	lines := make([]string, 0, 3+trailingBreaks)
	if a.overline {
		lines = append(lines, rule)
	}
	lines = append(lines, title, rule)
	for i := 0; i < trailingBreaks; i++ {
		lines = append(lines, "")
	}
	return lines, nil
}

// MustHeading is Heading for levels known at compile time. It panics on an unsupported level.
func MustHeading(level int, title string, trailingBreaks int) []string {
	lines, err := Heading(level, title, trailingBreaks)
	if err != nil {
		panic(err)
	}
	return lines
}

// Automodule renders an automodule directive for target with one flag option per line.
func Automodule(target string, options []string) []string {
	lines := make([]string, 0, 1+len(options))
	lines = append(lines, ".. automodule:: "+target)
	for _, opt := range options {
		lines = append(lines, "    :"+opt+":")
	}
	return lines
}
