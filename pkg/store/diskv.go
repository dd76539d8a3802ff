// Package store persists named template sets under the configured base
// path and watches sequence directories for external changes.
package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/memoria-modding/memkit/pkg/template"
)

// Persistence is the storage contract for template sets.
type Persistence interface {
	Sets(ctx context.Context) []string
	Get(name string) (*template.Set, error)
	Store(set *template.Set) error
	Delete(name string) error
	Watch(ctx context.Context, root string) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Sets(ctx context.Context) []string {
	var names []string
	for key := range p.d.Keys(ctx.Done()) {
		name := fromSetKey(key)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

func (p *persistence) Get(name string) (*template.Set, error) {
	data, err := p.d.Read(toSetKey(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, fmt.Errorf("store: template set %q: %w", name, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("store: read template set %q: %w", name, err)
	}
	set, err := template.UnmarshalSet(data)
	if err != nil {
		return nil, err
	}
	if set.Name == "" {
		set.Name = name
	}
	return set, nil
}

func (p *persistence) Store(set *template.Set) error {
	if strings.TrimSpace(set.Name) == "" {
		return errors.New("store: template set name required")
	}
	data, err := template.MarshalSet(set)
	if err != nil {
		return err
	}
	if err := p.d.Write(toSetKey(set.Name), data); err != nil {
		return fmt.Errorf("store: write template set %q: %w", set.Name, err)
	}
	return nil
}

func (p *persistence) Delete(name string) error {
	if err := p.d.Erase(toSetKey(name)); err != nil {
		return fmt.Errorf("store: delete template set %q: %w", name, err)
	}
	return nil
}

const setPrefix = "sets"

// toSetKey makes "sets-<base64 name>"; base64 keeps arbitrary set names
// path-safe.
func toSetKey(name string) string {
	return setPrefix + "-" + base64.URLEncoding.EncodeToString([]byte(name))
}

func fromSetKey(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || parts[0] != setPrefix {
		return ""
	}
	name, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	return string(name)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name := strings.TrimSuffix(pathKey.FileName, ".json")
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), name)
}
