package ability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntry is returned when entry text does not carry the required
// '>' header line.
var ErrInvalidEntry = errors.New("ability: entry header must start with '>'")

// Entry is a single record in an AbilityFeatures file, identified by its
// header line (e.g. ">SA 0 ~~ comment ~~"). Body lines are kept verbatim,
// blank lines and '#' comments included.
type Entry struct {
	Header string
	Body   []string
}

// NewEntry builds an entry from a header and optional body lines.
func NewEntry(header string, body ...string) *Entry {
	return &Entry{Header: header, Body: body}
}

// ParseEntry reads raw text into an Entry. The first line must start with
// '>' (leading whitespace is tolerated for the check, the line is stored
// as written); the remaining lines become the body unchanged.
func ParseEntry(raw string) (*Entry, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, fmt.Errorf("ability: entry text is empty: %w", ErrInvalidEntry)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), ">") {
		return nil, fmt.Errorf("ability: %q: %w", lines[0], ErrInvalidEntry)
	}
	return &Entry{Header: lines[0], Body: lines[1:]}, nil
}

// Text joins the header and body with newlines. For entries produced by
// ParseEntry this reproduces the input lines exactly.
func (e *Entry) Text() string {
	if len(e.Body) == 0 {
		return e.Header
	}
	return e.Header + "\n" + strings.Join(e.Body, "\n")
}

// Type extracts the target-type token from the header, e.g. "SA" from
// ">SA 12 Penetrator". Global markers keep their suffix: ">SA Global+ ..."
// yields "SA Global+".
func (e *Entry) Type() string {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(e.Header), ">"))
	if len(fields) == 0 {
		return ""
	}
	if len(fields) > 1 && strings.HasSuffix(fields[1], "+") {
		return fields[0] + " " + fields[1]
	}
	return fields[0]
}

func (e *Entry) String() string {
	return e.Header
}

// splitLines splits on newlines the way the editors expect: CRLF and lone
// CR are normalized, and a trailing newline does not produce a final
// empty element.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
