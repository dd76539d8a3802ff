package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCapacityFloor(t *testing.T) {
	h := NewRenameHistory(0)
	h.Push(RenameAction{OldPath: "a", NewPath: "b"})
	h.Push(RenameAction{OldPath: "c", NewPath: "d"})
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got := h.Actions()[0].OldPath; got != "c" {
		t.Errorf("survivor = %s, want newest", got)
	}
}

func TestPushEvictsOldest(t *testing.T) {
	h := NewRenameHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(RenameAction{OldPath: fmt.Sprintf("old%d", i), NewPath: fmt.Sprintf("new%d", i)})
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	got := h.Actions()
	for i, want := range []string{"old2", "old3", "old4"} {
		if got[i].OldPath != want {
			t.Errorf("Actions()[%d].OldPath = %s, want %s", i, got[i].OldPath, want)
		}
	}
}

func TestActionsReturnsCopy(t *testing.T) {
	h := NewRenameHistory(4)
	h.Push(RenameAction{OldPath: "a", NewPath: "b"})
	h.Actions()[0].OldPath = "mutated"
	if h.Actions()[0].OldPath != "a" {
		t.Error("Actions() should copy the stack")
	}
}

func TestUndoReversesNewestFirst(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "Fire.seq")
	if err := os.WriteFile(first, []byte("SFX 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewRenameHistory(8)
	second := filepath.Join(dir, "Fira.seq")
	third := filepath.Join(dir, "Firaga.seq")
	if err := os.Rename(first, second); err != nil {
		t.Fatal(err)
	}
	h.Push(RenameAction{OldPath: first, NewPath: second})
	if err := os.Rename(second, third); err != nil {
		t.Fatal(err)
	}
	h.Push(RenameAction{OldPath: second, NewPath: third})

	act, err := h.Undo()
	if err != nil || act == nil {
		t.Fatalf("undo: %v", err)
	}
	if act.NewPath != third {
		t.Errorf("undone action = %+v, want newest", act)
	}
	if _, err := os.Stat(second); err != nil {
		t.Errorf("Fira.seq should be back: %v", err)
	}

	if _, err := h.Undo(); err != nil {
		t.Fatalf("second undo: %v", err)
	}
	if _, err := os.Stat(first); err != nil {
		t.Errorf("Fire.seq should be back: %v", err)
	}
	if h.CanUndo() {
		t.Error("stack should be empty")
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	h := NewRenameHistory(4)
	act, err := h.Undo()
	if act != nil || err != nil {
		t.Errorf("Undo() on empty = %v, %v, want nil, nil", act, err)
	}
}

func TestUndoRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "Fire.seq")
	newPath := filepath.Join(dir, "Firaga.seq")
	if err := os.WriteFile(newPath, []byte("SFX 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Someone recreated the old name behind our back.
	if err := os.WriteFile(oldPath, []byte("other\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewRenameHistory(4)
	h.Push(RenameAction{OldPath: oldPath, NewPath: newPath})
	if _, err := h.Undo(); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Undo() = %v, want fs.ErrExist", err)
	}
	if h.Len() != 1 {
		t.Error("failed undo should leave the action on the stack")
	}

	// Clearing the obstruction lets the retry through.
	if err := os.Remove(oldPath); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Undo(); err != nil {
		t.Errorf("retry after clearing: %v", err)
	}
}

func TestUndoMissingSource(t *testing.T) {
	dir := t.TempDir()
	h := NewRenameHistory(4)
	h.Push(RenameAction{
		OldPath: filepath.Join(dir, "Fire.seq"),
		NewPath: filepath.Join(dir, "Gone.seq"),
	})
	if _, err := h.Undo(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Undo() = %v, want fs.ErrNotExist", err)
	}
	if !h.CanUndo() {
		t.Error("failed undo should keep the action")
	}
}
