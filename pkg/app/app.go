// Package app implements the editor session shared by the CLI commands
// and both UIs. A Service owns the open documents, the rename undo
// stack, and the template store, so every surface mutates the same
// state through the same methods.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/memoria-modding/memkit/pkg/ability"
	"github.com/memoria-modding/memkit/pkg/history"
	"github.com/memoria-modding/memkit/pkg/sequence"
	"github.com/memoria-modding/memkit/pkg/store"
)

var (
	ErrNoAbilityDocument  = errors.New("app: no ability document open")
	ErrNoSequenceDocument = errors.New("app: no sequence directory open")
	ErrNoPersistence      = errors.New("app: no persistence configured")
)

// Service provides high-level operations over the open documents. It
// wraps the document packages and persistence so UIs and CLIs can share
// logic. Methods run on the calling goroutine; the Service is not safe
// for concurrent use.
type Service struct {
	Persistence store.Persistence

	abilityDoc   *ability.Document
	abilityPath  string
	abilityDirty bool

	sequences *sequence.Document
	renames   *history.RenameHistory
	snapshots *history.SnapshotHistory
}

// NewService builds a session with the given rename undo capacity.
// Values below one fall back to history.DefaultCapacity.
func NewService(p store.Persistence, renameCapacity int) *Service {
	if renameCapacity < 1 {
		renameCapacity = history.DefaultCapacity
	}
	return &Service{
		Persistence: p,
		renames:     history.NewRenameHistory(renameCapacity),
		snapshots:   history.NewSnapshotHistory(history.DefaultSnapshotLimit),
	}
}

// OpenAbility loads an AbilityFeatures file and makes it the session's
// ability document.
func (s *Service) OpenAbility(path string) (*ability.Document, error) {
	doc, err := ability.Load(path)
	if err != nil {
		return nil, err
	}
	s.abilityDoc = doc
	s.abilityPath = path
	s.abilityDirty = false
	return doc, nil
}

// Ability returns the open ability document, or nil.
func (s *Service) Ability() *ability.Document {
	return s.abilityDoc
}

// AbilityPath returns the path the ability document was opened from.
func (s *Service) AbilityPath() string {
	return s.abilityPath
}

// AbilityDirty reports whether the ability document has unsaved edits.
func (s *Service) AbilityDirty() bool {
	return s.abilityDirty
}

// SaveAbility serializes the ability document back to its path.
func (s *Service) SaveAbility() error {
	return s.SaveAbilityAs(s.abilityPath)
}

// SaveAbilityAs writes the serialized document to path via a temp file
// and rename, so a failed write never leaves a truncated file behind.
// The in-memory document is untouched on failure.
func (s *Service) SaveAbilityAs(path string) error {
	if s.abilityDoc == nil {
		return ErrNoAbilityDocument
	}
	if path == "" {
		return errors.New("app: no ability file path")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(s.abilityDoc.Text()), 0o644); err != nil {
		return fmt.Errorf("app: write ability file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("app: replace ability file: %w", err)
	}
	s.abilityPath = path
	s.abilityDirty = false
	return nil
}

// AppendEntry adds an entry to the end of the ability document.
func (s *Service) AppendEntry(e *ability.Entry) error {
	if s.abilityDoc == nil {
		return ErrNoAbilityDocument
	}
	s.abilityDoc.Append(e)
	s.abilityDirty = true
	return nil
}

// InsertEntry inserts an entry at index, clamped to the valid range.
func (s *Service) InsertEntry(index int, e *ability.Entry) error {
	if s.abilityDoc == nil {
		return ErrNoAbilityDocument
	}
	s.abilityDoc.Insert(index, e)
	s.abilityDirty = true
	return nil
}

// MoveEntry relocates the entry at old to position new. It reports
// whether anything moved.
func (s *Service) MoveEntry(old, new int) (bool, error) {
	if s.abilityDoc == nil {
		return false, ErrNoAbilityDocument
	}
	moved := s.abilityDoc.Move(old, new)
	if moved {
		s.abilityDirty = true
	}
	return moved, nil
}

// ReplaceEntry swaps the first entry whose header matches for e.
func (s *Service) ReplaceEntry(header string, e *ability.Entry) (bool, error) {
	if s.abilityDoc == nil {
		return false, ErrNoAbilityDocument
	}
	replaced := s.abilityDoc.Replace(header, e)
	if replaced {
		s.abilityDirty = true
	}
	return replaced, nil
}

// ReplaceEntryAt swaps the entry at index for e.
func (s *Service) ReplaceEntryAt(index int, e *ability.Entry) (bool, error) {
	if s.abilityDoc == nil {
		return false, ErrNoAbilityDocument
	}
	replaced := s.abilityDoc.ReplaceAt(index, e)
	if replaced {
		s.abilityDirty = true
	}
	return replaced, nil
}

// DeleteEntry removes the entry at index.
func (s *Service) DeleteEntry(index int) (bool, error) {
	if s.abilityDoc == nil {
		return false, ErrNoAbilityDocument
	}
	deleted := s.abilityDoc.Delete(index)
	if deleted {
		s.abilityDirty = true
	}
	return deleted, nil
}

// pathIsDir reports whether path exists and is a directory.
func pathIsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// baseName is filepath.Base with "" preserved.
func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
