package discovery

import (
	"bufio"
	"bytes"
	"strings"
)

// RelevanceFunc decides whether a module's source has anything worth documenting.
type RelevanceFunc func(content []byte) bool

// SubstringRelevance reports whether content contains the literal text "def" or
// "class" anywhere. It is a textual heuristic, not a parser: a comment mentioning
// "default" is enough to keep a module.
func SubstringRelevance(content []byte) bool {
	return bytes.Contains(content, []byte("def")) || bytes.Contains(content, []byte("class"))
}

// DeclarationRelevance reports whether content has at least one line that starts,
// after indentation, with a function or class statement.
func DeclarationRelevance(content []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		for _, prefix := range []string{"def ", "async def ", "class "} {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
	}
	return false
}
