package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/memoria-modding/memkit/pkg/template"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) SequenceRoot() string { return "" }
func (t testConfig) AbilityFile() string  { return "" }
func (t testConfig) HistoryCapacity() int { return 32 }

func testSet(name string) *template.Set {
	return &template.Set{
		Name: name,
		Templates: map[template.Category][]*template.Template{
			"Damage": {
				{
					ID:    "single_hit",
					Label: "Single Hit",
					Body:  "SFX {sfx_id}\nWaitSFXLoaded\nPlaySFX",
				},
			},
		},
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Store(testSet("fire spells")); err != nil {
		t.Fatalf("store set: %v", err)
	}

	got, err := p.Get("fire spells")
	if err != nil {
		t.Fatalf("get set: %v", err)
	}
	if got.Name != "fire spells" {
		t.Errorf("name = %q, want %q", got.Name, "fire spells")
	}
	if got.Len() != 1 {
		t.Errorf("len = %d, want 1", got.Len())
	}
	tpl, cat, ok := got.Find("single_hit")
	if !ok || tpl.Label != "Single Hit" || cat != "Damage" {
		t.Errorf("Find(single_hit) = %+v, %q, %v", tpl, cat, ok)
	}
}

func TestPersistenceGetMissing(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, err := p.Get("nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestPersistenceSetsSortedCaseInsensitive(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		if err := p.Store(testSet(name)); err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
	}

	names := p.Sets(context.Background())
	want := []string{"Alpha", "beta", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("sets = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("sets[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestPersistenceDelete(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Store(testSet("temp")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Delete("temp"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get("temp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist after delete, got %v", err)
	}
}

func TestSetKeyRoundTrip(t *testing.T) {
	for _, name := range []string{"plain", "with spaces", "dash-heavy-name", "ünïcode"} {
		if got := fromSetKey(toSetKey(name)); got != name {
			t.Errorf("fromSetKey(toSetKey(%q)) = %q", name, got)
		}
	}
}

func TestPersistenceWatchEmitsFolderChanges(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "ef0001")
	if err := os.Mkdir(folder, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx, root)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(folder, "Fire.seq"), []byte("SFX 1\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTreeInvalidated {
				return
			}
			if evt.Type == EventFolderChanged {
				if evt.Folder != "ef0001" {
					t.Fatalf("expected folder 'ef0001', got %q", evt.Folder)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for folder change event")
		}
	}
}

func TestPersistenceWatchSeesNewFolders(t *testing.T) {
	root := t.TempDir()

	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx, root)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if err := os.Mkdir(filepath.Join(root, "ef0002"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTreeInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for tree invalidation event")
		}
	}
}
