package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/memoria-modding/memkit/pkg/template"
)

// Catalog returns one of the built-in template catalogs by kind
// ("ability" or "sequence").
func Catalog(kind string) (*template.Set, error) {
	switch strings.ToLower(kind) {
	case "ability", "abilities":
		return template.AbilityTemplates(), nil
	case "sequence", "sequences", "seq":
		return template.SequenceTemplates(), nil
	default:
		return nil, fmt.Errorf("app: unknown template catalog %q", kind)
	}
}

// TemplateSets lists the names of stored template sets.
func (s *Service) TemplateSets(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Sets(ctx), nil
}

// TemplateSet loads a stored template set by name.
func (s *Service) TemplateSet(name string) (*template.Set, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Get(name)
}

// StoreTemplateSet persists the set under its name.
func (s *Service) StoreTemplateSet(set *template.Set) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.Store(set)
}

// DeleteTemplateSet removes a stored set.
func (s *Service) DeleteTemplateSet(name string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.Delete(name)
}

// FindTemplate resolves a template id against a stored set when setName
// is given, otherwise against both built-in catalogs.
func (s *Service) FindTemplate(setName, id string) (*template.Template, error) {
	if setName != "" {
		set, err := s.TemplateSet(setName)
		if err != nil {
			return nil, err
		}
		if t, _, ok := set.Find(id); ok {
			return t, nil
		}
		return nil, fmt.Errorf("app: template %q not in set %q", id, setName)
	}
	for _, set := range []*template.Set{template.AbilityTemplates(), template.SequenceTemplates()} {
		if t, _, ok := set.Find(id); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("app: template %q not found", id)
}

// RenderTemplate substitutes values into the template body. Unresolved
// placeholders stay literal and are reported back.
func (s *Service) RenderTemplate(setName, id string, values map[string]string) (string, []string, error) {
	t, err := s.FindTemplate(setName, id)
	if err != nil {
		return "", nil, err
	}
	text, missing := template.Render(t, values)
	return text, missing, nil
}
