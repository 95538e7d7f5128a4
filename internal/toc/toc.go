// Package toc patches the master index document so that its toctree references
// the generated document.
package toc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/giza/internal/logfields"
)

// DefaultMarker is the toctree option line the entry is inserted after.
const DefaultMarker = ":maxdepth: 2"

// EntryIndent prefixes the inserted toctree entry.
const EntryIndent = "   "

// ErrIndexNotFound indicates the master index document does not exist.
var ErrIndexNotFound = errors.New("master index document not found")

// Result describes what Insert or Patch did.
type Result int

const (
	// ResultInserted means the entry was added.
	ResultInserted Result = iota
	// ResultAlreadyPresent means the entry text already appeared in the document.
	ResultAlreadyPresent
	// ResultMarkerNotFound means no line contained the marker, so nothing changed.
	ResultMarkerNotFound
)

func (r Result) String() string {
	switch r {
	case ResultInserted:
		return "inserted"
	case ResultAlreadyPresent:
		return "already_present"
	case ResultMarkerNotFound:
		return "marker_not_found"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Insert returns lines with entry added after the first line containing marker.
// The line before the marker is made blank if it is not, and the line after the
// entry must be blank or start with whitespace, otherwise a blank line is added.
// The input slice is not modified.
func Insert(lines []string, entry, marker string) ([]string, Result) {
	for _, line := range lines {
		if strings.Contains(line, entry) {
			return lines, ResultAlreadyPresent
		}
	}

	at := -1
	for i, line := range lines {
		if strings.Contains(line, marker) {
			at = i
			break
		}
	}
	if at < 0 {
		return lines, ResultMarkerNotFound
	}

	out := make([]string, 0, len(lines)+3)
	out = append(out, lines[:at]...)
	if at > 0 && !isBlank(lines[at-1]) {
		out = append(out, "")
	}
	out = append(out, lines[at], EntryIndent+entry)

	rest := lines[at+1:]
	if len(rest) > 0 && !isBlank(rest[0]) && !startsWithSpace(rest[0]) {
		out = append(out, "")
	}
	out = append(out, rest...)
	return out, ResultInserted
}

// Patch applies Insert to the file at path and rewrites it when something changed.
// A missing marker is reported on out and leaves the file untouched.
func Patch(path, entry, marker string, out io.Writer) (Result, error) {
	if out == nil {
		out = io.Discard
	}

	// #nosec G304 -- path comes from the loaded configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	if strings.Contains(text, entry) {
		slog.Debug("Master index already references document", logfields.Path(path), logfields.File(entry))
		return ResultAlreadyPresent, nil
	}

	doc := split(text)
	patched, result := Insert(doc.lines, entry, marker)
	switch result {
	case ResultMarkerNotFound:
		_, _ = fmt.Fprintf(out, "%s not found in %s, %s not added\n", marker, path, entry)
		slog.Warn("Toctree marker not found", logfields.Path(path), logfields.Marker(marker))
		return result, nil
	case ResultAlreadyPresent:
		return result, nil
	}

	doc.lines = patched
	// #nosec G306 -- documentation sources are not secret.
	if err := os.WriteFile(path, []byte(doc.join()), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("Master index patched", logfields.Path(path), logfields.File(entry))
	return result, nil
}

// document keeps the line-ending conventions of the original file.
type document struct {
	lines        []string
	newline      string
	finalNewline bool
}

func split(text string) document {
	doc := document{newline: "\n"}
	if strings.Contains(text, "\r\n") {
		doc.newline = "\r\n"
	}
	doc.finalNewline = strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" && !doc.finalNewline {
		return doc
	}
	doc.lines = strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return doc
}

func (d document) join() string {
	s := strings.Join(d.lines, d.newline)
	if d.finalNewline {
		s += d.newline
	}
	return s
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func startsWithSpace(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}
