package ability

import (
	"fmt"
	"os"
	"strings"
)

// Document is the in-memory form of an AbilityFeatures file: free-text
// preamble lines followed by an ordered entry sequence. Serialization
// order equals file order. A document is owned by exactly one editor
// session; mutations never touch disk.
type Document struct {
	Preamble []string
	Entries  []*Entry
}

// Parse splits text into preamble and entries. Any line starting with '>'
// begins a new entry; everything else belongs to the preamble (before the
// first entry) or to the current entry's body, verbatim. Empty input is a
// valid zero-entry document.
func Parse(text string) *Document {
	doc := &Document{}
	var current *Entry
	for _, line := range splitLines(text) {
		switch {
		case strings.HasPrefix(line, ">"):
			if current != nil {
				doc.Entries = append(doc.Entries, current)
			}
			current = &Entry{Header: line}
		case current == nil:
			doc.Preamble = append(doc.Preamble, line)
		default:
			current.Body = append(current.Body, line)
		}
	}
	if current != nil {
		doc.Entries = append(doc.Entries, current)
	}
	return doc
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ability: load %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Text renders the document in canonical form: the preamble block (if
// any) and each entry block, trailing whitespace trimmed per block,
// blocks separated by a blank line, one trailing newline. Byte-exact
// round-trips are deliberately traded for canonical formatting; the
// entry structure always survives a Parse(Text()) cycle.
func (d *Document) Text() string {
	var sections []string
	if len(d.Preamble) > 0 {
		sections = append(sections, strings.TrimRight(strings.Join(d.Preamble, "\n"), " \t\n"))
	}
	for _, e := range d.Entries {
		sections = append(sections, strings.TrimRight(e.Text(), " \t\n"))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Save writes the canonical text to path in a single write call. The
// in-memory document is unchanged whether or not the write succeeds.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, []byte(d.Text()), 0o644); err != nil {
		return fmt.Errorf("ability: save %s: %w", path, err)
	}
	return nil
}

// Append adds an entry at the end.
func (d *Document) Append(e *Entry) {
	d.Entries = append(d.Entries, e)
}

// Insert places the entry at index, clamping out-of-range indexes to the
// nearest boundary instead of failing.
func (d *Document) Insert(index int, e *Entry) {
	index = clamp(index, 0, len(d.Entries))
	d.Entries = append(d.Entries, nil)
	copy(d.Entries[index+1:], d.Entries[index:])
	d.Entries[index] = e
}

// Move removes the entry at old and reinserts it at new, preserving the
// order of everything else. Returns false without mutating when the
// document is empty, old is out of range, or the clamped target equals
// old.
func (d *Document) Move(old, new int) bool {
	if len(d.Entries) == 0 {
		return false
	}
	if old < 0 || old >= len(d.Entries) {
		return false
	}
	new = clamp(new, 0, len(d.Entries)-1)
	if old == new {
		return false
	}
	e := d.Entries[old]
	rest := append(d.Entries[:old], d.Entries[old+1:]...)
	rest = append(rest, nil)
	copy(rest[new+1:], rest[new:])
	rest[new] = e
	d.Entries = rest
	return true
}

// Replace swaps the first entry whose header matches exactly. Headers are
// not guaranteed unique; first match wins. Returns false when no header
// matches. Callers that already know the position should prefer
// ReplaceAt.
func (d *Document) Replace(header string, e *Entry) bool {
	for i, existing := range d.Entries {
		if existing.Header == header {
			d.Entries[i] = e
			return true
		}
	}
	return false
}

// ReplaceAt swaps the entry at index. Returns false when index is out of
// range.
func (d *Document) ReplaceAt(index int, e *Entry) bool {
	if index < 0 || index >= len(d.Entries) {
		return false
	}
	d.Entries[index] = e
	return true
}

// Delete removes the entry at index. Out-of-range is reported via false,
// not an error.
func (d *Document) Delete(index int) bool {
	if index < 0 || index >= len(d.Entries) {
		return false
	}
	d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
	return true
}

// FilterPrefix returns the entries whose header starts with prefix, in
// document order.
func (d *Document) FilterPrefix(prefix string) []*Entry {
	var out []*Entry
	for _, e := range d.Entries {
		if strings.HasPrefix(e.Header, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Headers lists entry headers in document order.
func (d *Document) Headers() []string {
	out := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		out[i] = e.Header
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
