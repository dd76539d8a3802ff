package history

import "strings"

// DefaultSnapshotLimit bounds per-identifier snapshot stacks.
const DefaultSnapshotLimit = 5

// SnapshotHistory keeps bounded stacks of previously saved text, keyed
// by a stable identifier (for sequence files, "folder/name"). It backs
// the "revert to previous save" flow: every successful save pushes the
// text that was just replaced.
type SnapshotHistory struct {
	limit  int
	stacks map[string][]string
}

// NewSnapshotHistory builds a history keeping at most limit snapshots
// per identifier (minimum 1).
func NewSnapshotHistory(limit int) *SnapshotHistory {
	if limit < 1 {
		limit = 1
	}
	return &SnapshotHistory{limit: limit, stacks: make(map[string][]string)}
}

// Push records a snapshot. Consecutive identical snapshots collapse into
// one; the oldest snapshot is dropped past the limit.
func (h *SnapshotHistory) Push(id, text string) {
	stack := h.stacks[id]
	if len(stack) > 0 && stack[len(stack)-1] == text {
		return
	}
	stack = append(stack, text)
	if len(stack) > h.limit {
		stack = stack[1:]
	}
	h.stacks[id] = stack
}

// Pop removes and returns the most recent snapshot. The second result is
// false when none exist.
func (h *SnapshotHistory) Pop(id string) (string, bool) {
	stack := h.stacks[id]
	if len(stack) == 0 {
		return "", false
	}
	text := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(h.stacks, id)
	} else {
		h.stacks[id] = stack
	}
	return text, true
}

// Restore pushes a popped snapshot back without deduplication, for
// callers whose write failed after popping.
func (h *SnapshotHistory) Restore(id, text string) {
	h.stacks[id] = append(h.stacks[id], text)
}

// Has reports whether the identifier has any snapshots.
func (h *SnapshotHistory) Has(id string) bool {
	return len(h.stacks[id]) > 0
}

// Move transfers the stack for one identifier to a new identifier after
// a file rename. An existing stack at the new identifier is replaced.
func (h *SnapshotHistory) Move(oldID, newID string) {
	stack, ok := h.stacks[oldID]
	if !ok || oldID == newID {
		return
	}
	delete(h.stacks, oldID)
	h.stacks[newID] = stack
}

// Rekey moves every stack under oldFolder to newFolder after a folder
// rename, preserving file suffixes.
func (h *SnapshotHistory) Rekey(oldFolder, newFolder string) {
	prefix := oldFolder + "/"
	for id, stack := range h.stacks {
		if strings.HasPrefix(id, prefix) {
			delete(h.stacks, id)
			h.stacks[newFolder+"/"+strings.TrimPrefix(id, prefix)] = stack
		}
	}
}

// Drop discards the stack for one identifier.
func (h *SnapshotHistory) Drop(id string) {
	delete(h.stacks, id)
}

// Clear discards every stack.
func (h *SnapshotHistory) Clear() {
	h.stacks = make(map[string][]string)
}
