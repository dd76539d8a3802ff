package sequence

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoFolders is returned when a scan finds a root with no
// subdirectories at all; an SFX root without effect folders is not
// usable.
var ErrNoFolders = fmt.Errorf("sequence: no sequence folders were found")

// ErrNotADirectory is returned when the configured root is a plain file.
var ErrNotADirectory = fmt.Errorf("sequence: root is not a directory")

// Document is the loaded view of a battle-SFX directory: the root plus
// its effect folders, each holding *.seq files. Loading is always a full
// scan; dirty-edit tracking belongs to the caller.
type Document struct {
	Root    string
	Folders []*Folder
}

// Load scans root. It fails with fs.ErrNotExist when root is missing,
// ErrNotADirectory when it is not a directory, and ErrNoFolders when no
// subdirectories exist. Folders and files are ordered case-insensitively
// by name.
func Load(root string) (*Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("sequence: directory %q does not exist: %w", root, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("sequence: stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotADirectory, root)
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("sequence: read %q: %w", root, err)
	}

	var folders []*Folder
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		dir := filepath.Join(root, child.Name())
		folder := &Folder{Path: dir}
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("sequence: read %q: %w", dir, err)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), Extension) {
				continue
			}
			folder.Files = append(folder.Files, &File{FolderPath: dir, Filename: f.Name()})
		}
		sortCaseInsensitive(folder.Files, func(f *File) string { return f.Filename })
		folders = append(folders, folder)
	}
	if len(folders) == 0 {
		return nil, ErrNoFolders
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return strings.ToLower(folders[i].Name()) < strings.ToLower(folders[j].Name())
	})
	return &Document{Root: root, Folders: folders}, nil
}

// Reload re-scans the root and replaces the folder collection wholesale.
func (d *Document) Reload() error {
	refreshed, err := Load(d.Root)
	if err != nil {
		return err
	}
	d.Folders = refreshed.Folders
	return nil
}

// SuggestFolderName proposes the next free "{prefix}{number}" name:
// highest existing number plus one (zero when none match), zero-padded
// to the widest numeric width already in use, clamped between 4 and 6
// digits.
func (d *Document) SuggestFolderName(prefix string) string {
	if prefix == "" {
		prefix = "ef"
	}
	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(prefix) + `(\d+)$`)
	width := 4
	candidate := 0
	seen := false
	for _, folder := range d.Folders {
		m := pattern.FindStringSubmatch(folder.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !seen || n+1 > candidate {
			candidate = n + 1
		}
		seen = true
		if len(m[1]) > width {
			width = len(m[1])
		}
	}
	if !seen {
		candidate = 0
	}
	if w := len(strconv.Itoa(candidate)); w > width {
		width = w
	}
	if width > 6 {
		width = 6
	}
	return fmt.Sprintf("%s%0*d", prefix, width, candidate)
}

// CreateFolder makes a new effect folder directly under the root. The
// parent must already exist; an existing target fails with fs.ErrExist.
func (d *Document) CreateFolder(name string) (string, error) {
	target := filepath.Join(d.Root, name)
	if err := os.Mkdir(target, 0o755); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("sequence: folder %q already exists: %w", name, fs.ErrExist)
		}
		return "", fmt.Errorf("sequence: create folder %q: %w", name, err)
	}
	return target, nil
}

// CreateFile writes a new sequence file, creating parent directories as
// needed. An existing file fails with fs.ErrExist; nothing is
// overwritten.
func (d *Document) CreateFile(folderPath, filename, body string) (string, error) {
	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return "", fmt.Errorf("sequence: ensure folder %q: %w", folderPath, err)
	}
	target := filepath.Join(folderPath, filename)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("sequence: file %q already exists in %s: %w", filename, filepath.Base(folderPath), fs.ErrExist)
	}
	if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("sequence: create %q: %w", target, err)
	}
	return target, nil
}

// FindFile locates a file by folder and file name, case-insensitively.
func (d *Document) FindFile(folderName, filename string) *File {
	for _, folder := range d.Folders {
		if !strings.EqualFold(folder.Name(), folderName) {
			continue
		}
		for _, f := range folder.Files {
			if strings.EqualFold(f.Filename, filename) {
				return f
			}
		}
	}
	return nil
}

// FolderMap indexes folders by name.
func (d *Document) FolderMap() map[string]*Folder {
	out := make(map[string]*Folder, len(d.Folders))
	for _, folder := range d.Folders {
		out[folder.Name()] = folder
	}
	return out
}

// Files iterates every sequence file, folders in document order, files
// sorted within each folder.
func (d *Document) Files() []*File {
	var out []*File
	for _, folder := range d.Folders {
		out = append(out, folder.SortedFiles()...)
	}
	return out
}

func sortCaseInsensitive(files []*File, key func(*File) string) {
	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(key(files[i])) < strings.ToLower(key(files[j]))
	})
}
