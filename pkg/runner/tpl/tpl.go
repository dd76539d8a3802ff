// Package tpl provides the CLI verbs for snippet templates and stored
// template sets.
package tpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/printers"
	"github.com/memoria-modding/memkit/pkg/template"
)

// List prints a catalog or a stored set.
type List struct {
	Catalog string
	Set     string
	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if l.Set != "" {
		set, err := l.Service.TemplateSet(l.Set)
		if err != nil {
			return err
		}
		pp.TitleWithCount(set.Name, set.Len(), "template")
		pp.Templates(set)
		return nil
	}

	set, err := app.Catalog(l.Catalog)
	if err != nil {
		return err
	}
	pp.TitleWithCount(set.Name, set.Len(), "template")
	pp.Templates(set)
	return nil
}

// Show prints one template in full.
type Show struct {
	Set     string
	ID      string
	Copy    bool
	Service *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	t, err := s.Service.FindTemplate(s.Set, s.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Template(t)

	if s.Copy {
		if err := clipboard.WriteAll(t.Body); err != nil {
			return fmt.Errorf("copy template: %w", err)
		}
		pp.Successf("copied %q to clipboard", t.ID)
	}
	return nil
}

// Render substitutes placeholder values into a template body.
type Render struct {
	Set     string
	ID      string
	Values  map[string]string
	Copy    bool
	Service *app.Service
}

func (r *Render) Do(ctx context.Context) error {
	text, missing, err := r.Service.RenderTemplate(r.Set, r.ID, r.Values)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Text(text)
	if len(missing) > 0 {
		pp.Warnf("unfilled placeholders: %s", strings.Join(missing, ", "))
	}

	if r.Copy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy rendered text: %w", err)
		}
		pp.Successf("copied to clipboard")
	}
	return nil
}

// Sets lists the stored template sets.
type Sets struct {
	Service *app.Service
}

func (s *Sets) Do(ctx context.Context) error {
	names, err := s.Service.TemplateSets(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Template sets", len(names), "set")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("")
	return nil
}

// Import reads a template-set JSON file into the store.
type Import struct {
	Path    string
	Name    string
	Service *app.Service
}

func (i *Import) Do(ctx context.Context) error {
	set, err := template.LoadSet(i.Path)
	if err != nil {
		return err
	}
	if i.Name != "" {
		set.Name = i.Name
	}
	if err := i.Service.StoreTemplateSet(set); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Successf("imported %q (%d templates)", set.Name, set.Len())
	return nil
}

// Export writes a stored set (or a built-in catalog) to a JSON file.
type Export struct {
	Set     string
	Catalog string
	Path    string
	Service *app.Service
}

func (e *Export) Do(ctx context.Context) error {
	var (
		set *template.Set
		err error
	)
	if e.Set != "" {
		set, err = e.Service.TemplateSet(e.Set)
	} else {
		set, err = app.Catalog(e.Catalog)
	}
	if err != nil {
		return err
	}
	if err := template.SaveSet(set, e.Path); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Successf("wrote %q to %s", set.Name, e.Path)
	return nil
}

// Delete removes a stored set.
type Delete struct {
	Set     string
	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	if err := d.Service.DeleteTemplateSet(d.Set); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Successf("deleted %q", d.Set)
	return nil
}
