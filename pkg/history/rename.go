// Package history tracks reversible editor actions: filesystem renames
// and saved-text snapshots. Everything here is in-memory session state;
// nothing survives a restart.
package history

import (
	"fmt"
	"io/fs"
	"os"
)

// DefaultCapacity bounds the rename stack when the caller does not pick
// a size.
const DefaultCapacity = 32

// RenameAction records one rename so it can be reversed later.
type RenameAction struct {
	OldPath string
	NewPath string
}

// Undo reverses the rename on disk. It refuses to overwrite: when the
// old path has been recreated externally it fails with fs.ErrExist, and
// when the new path has gone missing it fails with fs.ErrNotExist. Both
// signal external interference rather than editor bugs.
func (a RenameAction) Undo() error {
	if _, err := os.Stat(a.OldPath); err == nil {
		return fmt.Errorf("history: cannot undo rename, %q already exists: %w", a.OldPath, fs.ErrExist)
	}
	if _, err := os.Stat(a.NewPath); err != nil {
		return fmt.Errorf("history: cannot undo rename, %q is missing: %w", a.NewPath, fs.ErrNotExist)
	}
	if err := os.Rename(a.NewPath, a.OldPath); err != nil {
		return fmt.Errorf("history: undo rename: %w", err)
	}
	return nil
}

// RenameHistory is a bounded stack of rename actions. Eviction and undo
// are deliberately asymmetric: pushing past capacity silently drops the
// OLDEST action, while Undo pops the NEWEST.
type RenameHistory struct {
	capacity int
	stack    []RenameAction
}

// NewRenameHistory builds a history holding at most capacity actions
// (minimum 1).
func NewRenameHistory(capacity int) *RenameHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &RenameHistory{capacity: capacity}
}

// Push records an action, evicting the oldest when full.
func (h *RenameHistory) Push(a RenameAction) {
	h.stack = append(h.stack, a)
	if len(h.stack) > h.capacity {
		h.stack = h.stack[1:]
	}
}

// CanUndo reports whether any action remains.
func (h *RenameHistory) CanUndo() bool {
	return len(h.stack) > 0
}

// Len returns the number of recorded actions.
func (h *RenameHistory) Len() int {
	return len(h.stack)
}

// Actions returns a copy of the stack, oldest first.
func (h *RenameHistory) Actions() []RenameAction {
	out := make([]RenameAction, len(h.stack))
	copy(out, h.stack)
	return out
}

// Undo pops the most recent action and reverses it on disk. An empty
// stack is a no-op, not an error: (nil, nil). When the filesystem
// reversal fails the action is pushed back, leaving the stack exactly
// as it was so the user can clear the obstruction and retry.
func (h *RenameHistory) Undo() (*RenameAction, error) {
	if len(h.stack) == 0 {
		return nil, nil
	}
	a := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	if err := a.Undo(); err != nil {
		h.stack = append(h.stack, a)
		return nil, err
	}
	return &a, nil
}
