// Package settings extracts INSTALLED_APPS from a Django settings file without
// running Python. Only literal lists and tuples of string constants are understood.
package settings

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrUnterminated indicates an INSTALLED_APPS literal without a closing bracket.
var ErrUnterminated = errors.New("unterminated INSTALLED_APPS literal")

var assignment = regexp.MustCompile(`(?m)^INSTALLED_APPS\s*(\+?=)\s*([\[(])`)

// InstalledApps reads path and returns the app names from every top-level
// INSTALLED_APPS assignment or += augmentation, in source order. A plain
// assignment discards the names collected so far.
func InstalledApps(path string) ([]string, error) {
	// #nosec G304 -- path comes from the loaded configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	apps, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return apps, nil
}

// Parse is InstalledApps on already loaded source text.
func Parse(src string) ([]string, error) {
	var apps []string
	for _, m := range assignment.FindAllStringSubmatchIndex(src, -1) {
		op := src[m[2]:m[3]]
		open := src[m[4]]
		body, err := literalBody(src[m[5]:], closing(open))
		if err != nil {
			return nil, err
		}
		names := stringLiterals(body)
		if op == "=" {
			apps = names
		} else {
			apps = append(apps, names...)
		}
	}
	return apps, nil
}

func closing(open byte) byte {
	if open == '(' {
		return ')'
	}
	return ']'
}

// literalBody returns the text up to the bracket that closes the literal,
// skipping brackets inside strings and comments.
func literalBody(src string, end byte) (string, error) {
	depth := 0
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			if depth == 0 {
				if c != end {
					return "", fmt.Errorf("%w: mismatched %q", ErrUnterminated, c)
				}
				return src[:i], nil
			}
			depth--
		}
	}
	return "", ErrUnterminated
}

// stringLiterals collects every quoted string outside comments.
func stringLiterals(body string) []string {
	var out []string
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '#' {
			for i < len(body) && body[i] != '\n' {
				i++
			}
			continue
		}
		if c != '\'' && c != '"' {
			continue
		}
		var sb strings.Builder
		for i++; i < len(body) && body[i] != c; i++ {
			if body[i] == '\\' && i+1 < len(body) {
				i++
			}
			sb.WriteByte(body[i])
		}
		if name := strings.TrimSpace(sb.String()); name != "" {
			out = append(out, name)
		}
	}
	return out
}
