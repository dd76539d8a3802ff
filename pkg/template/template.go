// Package template holds the reusable snippet catalogs both editors
// paste from: static built-ins plus named "template sets" persisted as
// JSON.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Category groups templates inside a set. For ability templates the
// category is the target type key (SA, AA_GLOBAL, ...); for sequence
// templates it is a free label (Casting, Movement, ...). It stays a
// validated string rather than an enum because imported sets may carry
// categories this build does not ship.
type Category string

// Template is one reusable snippet with `{name}` placeholders.
type Template struct {
	ID           string            `json:"template_id"`
	Label        string            `json:"label"`
	Description  string            `json:"description"`
	Body         string            `json:"body"`
	Placeholders map[string]string `json:"placeholders"`
	Example      string            `json:"example,omitempty"`
	Notes        string            `json:"notes,omitempty"`

	// Ability templates additionally carry the scope their first line
	// opens and the block keys the body uses.
	Scope  string   `json:"scope_key,omitempty"`
	Blocks []string `json:"block_sequence,omitempty"`
}

// Clone returns a deep copy so callers can edit without aliasing the
// built-in catalogs.
func (t *Template) Clone() *Template {
	cp := *t
	cp.Placeholders = make(map[string]string, len(t.Placeholders))
	for k, v := range t.Placeholders {
		cp.Placeholders[k] = v
	}
	cp.Blocks = append([]string(nil), t.Blocks...)
	return &cp
}

// Set is a named collection of templates grouped by category.
type Set struct {
	Name      string                   `json:"name"`
	Templates map[Category][]*Template `json:"templates"`
}

// Categories lists the set's category keys sorted case-insensitively, so
// pickers and listings are deterministic.
func (s *Set) Categories() []Category {
	out := make([]Category, 0, len(s.Templates))
	for c := range s.Templates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(string(out[i])) < strings.ToLower(string(out[j]))
	})
	return out
}

// Find locates a template by id across all categories.
func (s *Set) Find(id string) (*Template, Category, bool) {
	for _, c := range s.Categories() {
		for _, t := range s.Templates[c] {
			if t.ID == id {
				return t, c, true
			}
		}
	}
	return nil, "", false
}

// Len counts templates across categories.
func (s *Set) Len() int {
	n := 0
	for _, ts := range s.Templates {
		n += len(ts)
	}
	return n
}

// normalize reimposes invariants after decoding: category keys are
// trimmed, nil groups dropped, and defaults applied the way the editors
// expect from hand-edited files.
func (s *Set) normalize() {
	cleaned := make(map[Category][]*Template, len(s.Templates))
	for category, items := range s.Templates {
		key := Category(strings.TrimSpace(string(category)))
		if key == "" {
			continue
		}
		var group []*Template
		for _, t := range items {
			if t == nil {
				continue
			}
			if t.ID == "" {
				t.ID = "custom"
			}
			if t.Label == "" {
				t.Label = "Unnamed template"
			}
			if t.Placeholders == nil {
				t.Placeholders = map[string]string{}
			}
			group = append(group, t)
		}
		if len(group) > 0 {
			cleaned[key] = group
		}
	}
	s.Templates = cleaned
}

// UnmarshalSet decodes a template-set JSON document.
func UnmarshalSet(data []byte) (*Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("template: decode set: %w", err)
	}
	s.normalize()
	return &s, nil
}

// MarshalSet encodes the set with stable indentation for diff-friendly
// files.
func MarshalSet(s *Set) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("template: encode set %q: %w", s.Name, err)
	}
	return append(data, '\n'), nil
}

// LoadSet reads a set from a JSON file.
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: load set %s: %w", path, err)
	}
	return UnmarshalSet(data)
}

// SaveSet writes the set to path in a single write call.
func SaveSet(s *Set, path string) error {
	data, err := MarshalSet(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("template: save set %s: %w", path, err)
	}
	return nil
}
