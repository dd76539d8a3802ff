package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/memoria-modding/memkit/pkg/history"
	"github.com/memoria-modding/memkit/pkg/sequence"
)

// OpenSequences scans a battle-SFX root and makes it the session's
// sequence document. The rename history survives reopening: the stack
// tracks on-disk actions, not the in-memory view of them.
func (s *Service) OpenSequences(root string) (*sequence.Document, error) {
	doc, err := sequence.Load(root)
	if err != nil {
		return nil, err
	}
	s.sequences = doc
	return doc, nil
}

// Sequences returns the open sequence document, or nil.
func (s *Service) Sequences() *sequence.Document {
	return s.sequences
}

// ReloadSequences re-scans the open root, picking up external changes.
func (s *Service) ReloadSequences() error {
	if s.sequences == nil {
		return ErrNoSequenceDocument
	}
	return s.sequences.Reload()
}

// SuggestFolder proposes the next free folder name for the prefix.
func (s *Service) SuggestFolder(prefix string) (string, error) {
	if s.sequences == nil {
		return "", ErrNoSequenceDocument
	}
	return s.sequences.SuggestFolderName(prefix), nil
}

// CreateFolder makes a new effect folder and refreshes the document.
func (s *Service) CreateFolder(name string) (string, error) {
	if s.sequences == nil {
		return "", ErrNoSequenceDocument
	}
	path, err := s.sequences.CreateFolder(name)
	if err != nil {
		return "", err
	}
	if err := s.sequences.Reload(); err != nil {
		return path, err
	}
	return path, nil
}

// CreateSequence writes a new sequence file into the named folder. The
// .seq suffix is appended when missing.
func (s *Service) CreateSequence(folderName, filename, body string) (*sequence.File, error) {
	if s.sequences == nil {
		return nil, ErrNoSequenceDocument
	}
	filename = sequence.EnsureExtension(filename)
	folderPath := filepath.Join(s.sequences.Root, folderName)
	if _, err := s.sequences.CreateFile(folderPath, filename, body); err != nil {
		return nil, err
	}
	if err := s.sequences.Reload(); err != nil {
		return nil, err
	}
	f := s.sequences.FindFile(folderName, filename)
	if f == nil {
		return nil, fmt.Errorf("app: created sequence %s/%s not found after rescan", folderName, filename)
	}
	return f, nil
}

// SaveSequence writes text to the file and records the replaced content
// so RevertSequence can bring it back.
func (s *Service) SaveSequence(f *sequence.File, text string) error {
	previous, readErr := f.ReadText(true)
	if err := f.WriteText(text); err != nil {
		return err
	}
	if readErr == nil {
		s.snapshots.Push(f.Identifier(), previous)
	}
	return nil
}

// RevertSequence restores the most recent snapshot of the file. It
// reports false when no snapshot exists. A failed write pushes the
// snapshot back so it is not lost.
func (s *Service) RevertSequence(f *sequence.File) (bool, error) {
	id := f.Identifier()
	text, ok := s.snapshots.Pop(id)
	if !ok {
		return false, nil
	}
	if err := f.WriteText(text); err != nil {
		s.snapshots.Restore(id, text)
		return false, err
	}
	return true, nil
}

// CanRevert reports whether the file has a stored snapshot.
func (s *Service) CanRevert(f *sequence.File) bool {
	return s.snapshots.Has(f.Identifier())
}

// RenameSequence renames a file on disk, records the action for undo,
// and carries any snapshots over to the new identifier.
func (s *Service) RenameSequence(f *sequence.File, newName string) error {
	oldPath := f.Path()
	oldID := f.Identifier()
	newPath, err := f.Rename(newName)
	if err != nil {
		return err
	}
	if newPath == oldPath {
		return nil
	}
	s.renames.Push(history.RenameAction{OldPath: oldPath, NewPath: newPath})
	s.snapshots.Move(oldID, f.Identifier())
	return nil
}

// RenameFolder renames an effect folder, records the action for undo,
// rekeys snapshots, and refreshes the document.
func (s *Service) RenameFolder(oldName, newName string) error {
	if s.sequences == nil {
		return ErrNoSequenceDocument
	}
	if newName == "" {
		return errors.New("app: new folder name must not be empty")
	}
	oldPath := filepath.Join(s.sequences.Root, oldName)
	newPath := filepath.Join(s.sequences.Root, newName)
	if oldPath == newPath {
		return nil
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("app: a folder named %q already exists: %w", newName, fs.ErrExist)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("app: rename folder %q: %w", oldName, err)
	}
	s.renames.Push(history.RenameAction{OldPath: oldPath, NewPath: newPath})
	s.snapshots.Rekey(oldName, newName)
	return s.sequences.Reload()
}

// CanUndoRename reports whether the rename stack has any actions.
func (s *Service) CanUndoRename() bool {
	return s.renames.CanUndo()
}

// RenameHistoryLen returns the number of undoable renames.
func (s *Service) RenameHistoryLen() int {
	return s.renames.Len()
}

// RenameActions returns the recorded renames, oldest first.
func (s *Service) RenameActions() []history.RenameAction {
	return s.renames.Actions()
}

// UndoRename reverses the most recent recorded rename. The returned
// action is nil when the stack was empty. Snapshot identifiers follow
// the reversal, and the sequence document is re-scanned when open.
func (s *Service) UndoRename() (*history.RenameAction, error) {
	act, err := s.renames.Undo()
	if err != nil || act == nil {
		return act, err
	}
	if pathIsDir(act.OldPath) {
		s.snapshots.Rekey(baseName(act.NewPath), baseName(act.OldPath))
	} else {
		folder := baseName(filepath.Dir(act.OldPath))
		s.snapshots.Move(folder+"/"+baseName(act.NewPath), folder+"/"+baseName(act.OldPath))
	}
	if s.sequences != nil {
		if err := s.sequences.Reload(); err != nil {
			return act, err
		}
	}
	return act, nil
}
