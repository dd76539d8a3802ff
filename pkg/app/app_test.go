package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/memoria-modding/memkit/pkg/ability"
	"github.com/memoria-modding/memkit/pkg/store"
	"github.com/memoria-modding/memkit/pkg/template"
)

// fakePersistence keeps template sets in memory for tests.
type fakePersistence struct {
	sets map[string]*template.Set
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{sets: make(map[string]*template.Set)}
}

func (f *fakePersistence) Sets(ctx context.Context) []string {
	var names []string
	for name := range f.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *fakePersistence) Get(name string) (*template.Set, error) {
	set, ok := f.sets[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return set, nil
}

func (f *fakePersistence) Store(set *template.Set) error {
	f.sets[set.Name] = set
	return nil
}

func (f *fakePersistence) Delete(name string) error {
	delete(f.sets, name)
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context, root string) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

const sampleAbility = `// AbilityFeatures
>SA 9 AutoPotion
Ability AutoPotion

>AA 17 Fire
FireBlast
`

func writeAbilityFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "AbilityFeatures.txt")
	if err := os.WriteFile(path, []byte(sampleAbility), 0o644); err != nil {
		t.Fatalf("write ability file: %v", err)
	}
	return path
}

func TestServiceAbilityLifecycle(t *testing.T) {
	svc := NewService(newFakePersistence(), 0)

	if err := svc.SaveAbility(); !errors.Is(err, ErrNoAbilityDocument) {
		t.Fatalf("save without document: %v", err)
	}

	path := writeAbilityFile(t)
	doc, err := svc.OpenAbility(path)
	if err != nil {
		t.Fatalf("open ability: %v", err)
	}
	if svc.AbilityDirty() {
		t.Error("freshly opened document should not be dirty")
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(doc.Entries))
	}

	e := ability.NewEntry(">SA 10 AutoHaste", "Ability AutoHaste")
	if err := svc.AppendEntry(e); err != nil {
		t.Fatalf("append: %v", err)
	}
	if !svc.AbilityDirty() {
		t.Error("append should mark the document dirty")
	}

	moved, err := svc.MoveEntry(2, 0)
	if err != nil || !moved {
		t.Fatalf("move = %v, %v", moved, err)
	}

	if err := svc.SaveAbility(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if svc.AbilityDirty() {
		t.Error("save should clear the dirty flag")
	}

	reloaded, err := ability.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	headers := reloaded.Headers()
	want := []string{">SA 10 AutoHaste", ">SA 9 AutoPotion", ">AA 17 Fire"}
	if len(headers) != len(want) {
		t.Fatalf("headers = %v, want %v", headers, want)
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("headers[%d] = %q, want %q", i, headers[i], want[i])
		}
	}
}

func seedSequenceRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	folder := filepath.Join(root, "ef0001")
	if err := os.Mkdir(folder, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(folder, "Fire.seq"), []byte("SFX 1\n"), 0o644); err != nil {
		t.Fatalf("write seq: %v", err)
	}
	return root
}

func TestServiceSaveAndRevertSequence(t *testing.T) {
	svc := NewService(newFakePersistence(), 0)
	doc, err := svc.OpenSequences(seedSequenceRoot(t))
	if err != nil {
		t.Fatalf("open sequences: %v", err)
	}

	f := doc.FindFile("ef0001", "Fire.seq")
	if f == nil {
		t.Fatal("Fire.seq not found")
	}
	if svc.CanRevert(f) {
		t.Error("no snapshot should exist before the first save")
	}

	if err := svc.SaveSequence(f, "SFX 2\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !svc.CanRevert(f) {
		t.Error("save should record a snapshot")
	}

	reverted, err := svc.RevertSequence(f)
	if err != nil || !reverted {
		t.Fatalf("revert = %v, %v", reverted, err)
	}
	text, err := f.ReadText(false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "SFX 1\n" {
		t.Errorf("reverted text = %q, want %q", text, "SFX 1\n")
	}

	reverted, err = svc.RevertSequence(f)
	if err != nil || reverted {
		t.Fatalf("second revert = %v, %v; want false, nil", reverted, err)
	}
}

func TestServiceRenameSequenceAndUndo(t *testing.T) {
	svc := NewService(newFakePersistence(), 0)
	doc, err := svc.OpenSequences(seedSequenceRoot(t))
	if err != nil {
		t.Fatalf("open sequences: %v", err)
	}
	f := doc.FindFile("ef0001", "Fire.seq")

	if err := svc.SaveSequence(f, "SFX 2\n"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.RenameSequence(f, "Firaga"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if f.Filename != "Firaga.seq" {
		t.Errorf("filename = %q, want Firaga.seq", f.Filename)
	}
	if !svc.CanRevert(f) {
		t.Error("snapshots should follow the file across a rename")
	}
	if !svc.CanUndoRename() {
		t.Fatal("rename should be undoable")
	}

	act, err := svc.UndoRename()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if act == nil {
		t.Fatal("expected an undone action")
	}
	if _, err := os.Stat(act.OldPath); err != nil {
		t.Errorf("original path missing after undo: %v", err)
	}
	if svc.Sequences().FindFile("ef0001", "Fire.seq") == nil {
		t.Error("document should show the original name after undo")
	}
	if svc.CanUndoRename() {
		t.Error("stack should be empty after the only undo")
	}
}

func TestServiceRenameFolder(t *testing.T) {
	svc := NewService(newFakePersistence(), 0)
	doc, err := svc.OpenSequences(seedSequenceRoot(t))
	if err != nil {
		t.Fatalf("open sequences: %v", err)
	}

	f := doc.FindFile("ef0001", "Fire.seq")
	if err := svc.SaveSequence(f, "SFX 2\n"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.RenameFolder("ef0001", "ef0042"); err != nil {
		t.Fatalf("rename folder: %v", err)
	}
	moved := svc.Sequences().FindFile("ef0042", "Fire.seq")
	if moved == nil {
		t.Fatal("file not found under renamed folder")
	}
	if !svc.CanRevert(moved) {
		t.Error("snapshots should follow a folder rename")
	}

	if err := svc.RenameFolder("ef0042", "ef0042"); err != nil {
		t.Errorf("same-name rename should be a no-op, got %v", err)
	}

	if _, err := svc.UndoRename(); err != nil {
		t.Fatalf("undo folder rename: %v", err)
	}
	back := svc.Sequences().FindFile("ef0001", "Fire.seq")
	if back == nil {
		t.Fatal("file not restored under original folder")
	}
	if !svc.CanRevert(back) {
		t.Error("snapshots should follow the undo too")
	}
}

func TestServiceCreateFolderAndSequence(t *testing.T) {
	svc := NewService(newFakePersistence(), 0)
	if _, err := svc.OpenSequences(seedSequenceRoot(t)); err != nil {
		t.Fatalf("open sequences: %v", err)
	}

	name, err := svc.SuggestFolder("ef")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if name != "ef0002" {
		t.Errorf("suggested = %q, want ef0002", name)
	}

	if _, err := svc.CreateFolder(name); err != nil {
		t.Fatalf("create folder: %v", err)
	}
	f, err := svc.CreateSequence(name, "Blizzard", "SFX 3\n")
	if err != nil {
		t.Fatalf("create sequence: %v", err)
	}
	if f.Filename != "Blizzard.seq" {
		t.Errorf("filename = %q, want Blizzard.seq", f.Filename)
	}

	if _, err := svc.CreateSequence(name, "Blizzard.seq", ""); !errors.Is(err, fs.ErrExist) {
		t.Errorf("duplicate create: %v, want fs.ErrExist", err)
	}
}

func TestServiceTemplateFacade(t *testing.T) {
	p := newFakePersistence()
	svc := NewService(p, 0)

	set := &template.Set{
		Name: "mine",
		Templates: map[template.Category][]*template.Template{
			"Damage": {{ID: "hit", Label: "Hit", Body: "SFX {sfx_id}"}},
		},
	}
	if err := svc.StoreTemplateSet(set); err != nil {
		t.Fatalf("store set: %v", err)
	}

	names, err := svc.TemplateSets(context.Background())
	if err != nil || len(names) != 1 || names[0] != "mine" {
		t.Fatalf("sets = %v, %v", names, err)
	}

	text, missing, err := svc.RenderTemplate("mine", "hit", map[string]string{"sfx_id": "104"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if text != "SFX 104" || len(missing) != 0 {
		t.Errorf("render = %q, missing %v", text, missing)
	}

	if _, _, err := svc.RenderTemplate("mine", "nope", nil); err == nil {
		t.Error("expected error for unknown template id")
	}

	// Built-in catalogs resolve when no set name is given.
	if _, err := svc.FindTemplate("", "single_target_spell"); err != nil {
		t.Errorf("catalog lookup: %v", err)
	}

	if err := svc.DeleteTemplateSet("mine"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.TemplateSet("mine"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("get after delete: %v", err)
	}
}

func TestCatalogLookup(t *testing.T) {
	for _, kind := range []string{"ability", "sequence", "seq"} {
		if _, err := Catalog(kind); err != nil {
			t.Errorf("Catalog(%q): %v", kind, err)
		}
	}
	if _, err := Catalog("bogus"); err == nil {
		t.Error("expected error for unknown catalog kind")
	}
}
