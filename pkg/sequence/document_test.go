package sequence

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func seedRoot(t *testing.T, folders map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for folder, files := range folders {
		dir := filepath.Join(root, folder)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", folder, err)
		}
		for _, name := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("SFX 1\n"), 0o644); err != nil {
				t.Fatalf("write %s: %v", name, err)
			}
		}
	}
	return root
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing root: %v, want fs.ErrNotExist", err)
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("plain file root: %v, want ErrNotADirectory", err)
	}

	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNoFolders) {
		t.Errorf("empty root: %v, want ErrNoFolders", err)
	}
}

func TestLoadOrdersAndFilters(t *testing.T) {
	root := seedRoot(t, map[string][]string{
		"ef0002": {"b.seq", "A.SEQ", "notes.txt"},
		"EF0001": {"x.seq"},
	})

	doc, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Folders) != 2 {
		t.Fatalf("folders = %d, want 2", len(doc.Folders))
	}
	// Case-insensitive folder order.
	if doc.Folders[0].Name() != "EF0001" || doc.Folders[1].Name() != "ef0002" {
		t.Errorf("folder order = %s, %s", doc.Folders[0].Name(), doc.Folders[1].Name())
	}

	files := doc.Folders[1].Files
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2 (non-.seq filtered)", len(files))
	}
	// Uppercase suffix still counts; case-insensitive file order.
	if files[0].Filename != "A.SEQ" || files[1].Filename != "b.seq" {
		t.Errorf("file order = %s, %s", files[0].Filename, files[1].Filename)
	}
}

func TestReloadSeesNewFolders(t *testing.T) {
	root := seedRoot(t, map[string][]string{"ef0001": {"a.seq"}})
	doc, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := os.Mkdir(filepath.Join(root, "ef0002"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := doc.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(doc.Folders) != 2 {
		t.Errorf("folders after reload = %d, want 2", len(doc.Folders))
	}
}

func TestSuggestFolderName(t *testing.T) {
	tests := []struct {
		folders []string
		prefix  string
		want    string
	}{
		{[]string{"ef0001", "ef0003"}, "ef", "ef0004"},
		{[]string{"misc"}, "ef", "ef0000"},
		{[]string{"ef0001", "EF0005"}, "ef", "ef0006"},
		{[]string{"fx00010"}, "fx", "fx00011"},
		{[]string{"ef12345678"}, "ef", "ef12345679"},
	}
	for _, tc := range tests {
		seeded := make(map[string][]string, len(tc.folders))
		for _, f := range tc.folders {
			seeded[f] = nil
		}
		doc, err := Load(seedRoot(t, seeded))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got := doc.SuggestFolderName(tc.prefix); got != tc.want {
			t.Errorf("SuggestFolderName(%v, %q) = %q, want %q", tc.folders, tc.prefix, got, tc.want)
		}
	}
}

func TestCreateFolder(t *testing.T) {
	root := seedRoot(t, map[string][]string{"ef0001": nil})
	doc, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	path, err := doc.CreateFolder("ef0002")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Errorf("created folder missing: %v", err)
	}

	if _, err := doc.CreateFolder("ef0001"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("duplicate folder: %v, want fs.ErrExist", err)
	}
}

func TestCreateFile(t *testing.T) {
	root := seedRoot(t, map[string][]string{"ef0001": {"a.seq"}})
	doc, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	dir := filepath.Join(root, "ef0001")

	path, err := doc.CreateFile(dir, "Fire.seq", "SFX 2\n")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "SFX 2\n" {
		t.Errorf("created file contents = %q, %v", data, err)
	}

	if _, err := doc.CreateFile(dir, "Fire.seq", ""); !errors.Is(err, fs.ErrExist) {
		t.Errorf("duplicate file: %v, want fs.ErrExist", err)
	}
}

func TestFindFileCaseInsensitive(t *testing.T) {
	root := seedRoot(t, map[string][]string{"ef0001": {"Fire.seq"}})
	doc, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if doc.FindFile("EF0001", "fire.seq") == nil {
		t.Error("lookup should ignore case")
	}
	if doc.FindFile("ef0001", "nope.seq") != nil {
		t.Error("missing file should yield nil")
	}
	if doc.FindFile("ef9999", "Fire.seq") != nil {
		t.Error("missing folder should yield nil")
	}
}
