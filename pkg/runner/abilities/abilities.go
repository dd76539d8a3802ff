// Package abilities provides the CLI verbs that read and edit an
// AbilityFeatures file.
package abilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/memoria-modding/memkit/pkg/ability"
	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/printers"
)

// List prints entry headers from an ability file, optionally filtered to
// a header prefix.
type List struct {
	Path     string
	Prefix   string
	ShowBody bool
	Service  *app.Service
}

func (l *List) Do(ctx context.Context) error {
	doc, err := l.Service.OpenAbility(l.Path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowBody: l.ShowBody}
	fmt.Println("")

	entries := doc.Entries
	if l.Prefix != "" {
		entries = doc.FilterPrefix(l.Prefix)
	}
	pp.TitleWithCount(l.Path, len(entries), "entry")
	pp.Entries(entries...)
	return nil
}

// Show prints one entry in full, located by header match or index.
type Show struct {
	Path    string
	Header  string
	Index   int
	ByIndex bool
	Copy    bool
	Service *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	doc, err := s.Service.OpenAbility(s.Path)
	if err != nil {
		return err
	}

	e, _, err := locate(doc, s.Header, s.Index, s.ByIndex)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowBody: true}
	fmt.Println("")
	pp.Entries(e)

	if s.Copy {
		if err := clipboard.WriteAll(e.Text()); err != nil {
			return fmt.Errorf("copy entry: %w", err)
		}
		pp.Successf("copied %q to clipboard", e.Header)
	}
	return nil
}

// Add appends or inserts a new entry built from raw text.
type Add struct {
	Path    string
	Text    string
	Index   int
	Insert  bool
	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	if _, err := a.Service.OpenAbility(a.Path); err != nil {
		return err
	}

	e, err := ability.ParseEntry(a.Text)
	if err != nil {
		return err
	}

	if a.Insert {
		if err := a.Service.InsertEntry(a.Index, e); err != nil {
			return err
		}
	} else if err := a.Service.AppendEntry(e); err != nil {
		return err
	}

	if err := a.Service.SaveAbility(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Successf("added %q", e.Header)
	return nil
}

// Move relocates an entry from one position to another.
type Move struct {
	Path    string
	From    int
	To      int
	Service *app.Service
}

func (m *Move) Do(ctx context.Context) error {
	if _, err := m.Service.OpenAbility(m.Path); err != nil {
		return err
	}

	moved, err := m.Service.MoveEntry(m.From, m.To)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("nothing to move from %d to %d", m.From, m.To)
	}
	return m.Service.SaveAbility()
}

// Replace swaps an existing entry for one built from raw text.
type Replace struct {
	Path    string
	Header  string
	Index   int
	ByIndex bool
	Text    string
	Service *app.Service
}

func (r *Replace) Do(ctx context.Context) error {
	if _, err := r.Service.OpenAbility(r.Path); err != nil {
		return err
	}

	e, err := ability.ParseEntry(r.Text)
	if err != nil {
		return err
	}

	var replaced bool
	if r.ByIndex {
		replaced, err = r.Service.ReplaceEntryAt(r.Index, e)
	} else {
		replaced, err = r.Service.ReplaceEntry(r.Header, e)
	}
	if err != nil {
		return err
	}
	if !replaced {
		if r.ByIndex {
			return fmt.Errorf("no entry at index %d", r.Index)
		}
		return fmt.Errorf("no entry with header %q", r.Header)
	}
	return r.Service.SaveAbility()
}

// Delete removes an entry by header match or index.
type Delete struct {
	Path    string
	Header  string
	Index   int
	ByIndex bool
	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	doc, err := d.Service.OpenAbility(d.Path)
	if err != nil {
		return err
	}

	e, idx, err := locate(doc, d.Header, d.Index, d.ByIndex)
	if err != nil {
		return err
	}
	if _, err := d.Service.DeleteEntry(idx); err != nil {
		return err
	}
	if err := d.Service.SaveAbility(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Successf("deleted %q", e.Header)
	return nil
}

// Types prints the known target-type tokens with tooltips and examples.
type Types struct{}

func (t *Types) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Target types")
	for _, info := range ability.DefaultTypes() {
		fmt.Printf("  %-18s %s\n", info.Label, info.Tooltip)
	}
	fmt.Println("")
	return nil
}

func locate(doc *ability.Document, header string, index int, byIndex bool) (*ability.Entry, int, error) {
	if byIndex {
		if index < 0 || index >= len(doc.Entries) {
			return nil, 0, fmt.Errorf("no entry at index %d", index)
		}
		return doc.Entries[index], index, nil
	}
	if header == "" {
		return nil, 0, errors.New("a header or an index is required")
	}
	for i, e := range doc.Entries {
		if strings.TrimSpace(e.Header) == strings.TrimSpace(header) {
			return e, i, nil
		}
	}
	return nil, 0, fmt.Errorf("no entry with header %q", header)
}
