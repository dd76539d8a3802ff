package sequence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the sequence-script file suffix.
const Extension = ".seq"

// EnsureExtension appends the .seq suffix unless the name already
// carries it in any case.
func EnsureExtension(name string) string {
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		return name + Extension
	}
	return name
}

// File is one *.seq script inside an effect folder. The body is opaque
// instruction text; the document model never interprets it.
type File struct {
	FolderPath string
	Filename   string

	cached *string
}

// Path is the absolute location on disk.
func (f *File) Path() string {
	return filepath.Join(f.FolderPath, f.Filename)
}

// Identifier is the stable "folder/file" key used across the session. It
// is updated explicitly on rename, never derived from a stale path.
func (f *File) Identifier() string {
	return filepath.Base(f.FolderPath) + "/" + f.Filename
}

// ReadText returns the file body, serving the cached copy when present
// unless useCache is false.
func (f *File) ReadText(useCache bool) (string, error) {
	if useCache && f.cached != nil {
		return *f.cached, nil
	}
	data, err := os.ReadFile(f.Path())
	if err != nil {
		return "", fmt.Errorf("sequence: read %s: %w", f.Identifier(), err)
	}
	text := string(data)
	f.cached = &text
	return text, nil
}

// WriteText replaces the file body in a single write call and refreshes
// the cache.
func (f *File) WriteText(text string) error {
	if err := os.WriteFile(f.Path(), []byte(text), 0o644); err != nil {
		return fmt.Errorf("sequence: write %s: %w", f.Identifier(), err)
	}
	f.cached = &text
	return nil
}

// InvalidateCache drops any cached body.
func (f *File) InvalidateCache() {
	f.cached = nil
}

// Rename moves the file within its folder. The .seq suffix is appended
// when missing; renaming to the current name is a no-op. A different
// file already occupying the target fails with fs.ErrExist. On success
// the in-memory filename is updated and the cache invalidated.
func (f *File) Rename(newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", errors.New("sequence: new name must not be empty")
	}
	newName = EnsureExtension(newName)
	target := filepath.Join(f.FolderPath, newName)
	if target == f.Path() {
		return target, nil
	}
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("sequence: a sequence named %q already exists: %w", newName, fs.ErrExist)
	}
	if err := os.Rename(f.Path(), target); err != nil {
		return "", fmt.Errorf("sequence: rename %s: %w", f.Identifier(), err)
	}
	f.Filename = newName
	f.cached = nil
	return target, nil
}

// Folder groups the sequence files of one ef#### directory.
type Folder struct {
	Path  string
	Files []*File
}

// Name is the directory basename.
func (fo *Folder) Name() string {
	return filepath.Base(fo.Path)
}

// SortedFiles returns the files ordered case-insensitively by filename.
func (fo *Folder) SortedFiles() []*File {
	out := append([]*File(nil), fo.Files...)
	sortCaseInsensitive(out, func(f *File) string { return f.Filename })
	return out
}
