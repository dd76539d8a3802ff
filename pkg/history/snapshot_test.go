package history

import (
	"fmt"
	"testing"
)

func TestSnapshotPushPop(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("ef0001/Fire.seq", "v1")
	h.Push("ef0001/Fire.seq", "v2")

	if got, ok := h.Pop("ef0001/Fire.seq"); !ok || got != "v2" {
		t.Errorf("Pop() = %q, %v", got, ok)
	}
	if got, ok := h.Pop("ef0001/Fire.seq"); !ok || got != "v1" {
		t.Errorf("Pop() = %q, %v", got, ok)
	}
	if _, ok := h.Pop("ef0001/Fire.seq"); ok {
		t.Error("exhausted stack should report false")
	}
}

func TestSnapshotCollapsesConsecutiveDuplicates(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("id", "same")
	h.Push("id", "same")
	h.Push("id", "other")
	h.Push("id", "same")

	want := []string{"same", "other", "same"}
	for i := len(want) - 1; i >= 0; i-- {
		got, ok := h.Pop("id")
		if !ok || got != want[i] {
			t.Fatalf("Pop() #%d = %q, %v, want %q", len(want)-i, got, ok, want[i])
		}
	}
}

func TestSnapshotLimitDropsOldest(t *testing.T) {
	h := NewSnapshotHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push("id", fmt.Sprintf("v%d", i))
	}
	for _, want := range []string{"v5", "v4", "v3"} {
		got, ok := h.Pop("id")
		if !ok || got != want {
			t.Fatalf("Pop() = %q, %v, want %q", got, ok, want)
		}
	}
	if h.Has("id") {
		t.Error("v1 and v2 should have been evicted")
	}
}

func TestSnapshotLimitFloor(t *testing.T) {
	h := NewSnapshotHistory(0)
	h.Push("id", "v1")
	h.Push("id", "v2")
	if got, _ := h.Pop("id"); got != "v2" {
		t.Errorf("Pop() = %q, want v2", got)
	}
	if h.Has("id") {
		t.Error("limit floor is one snapshot")
	}
}

func TestSnapshotRestoreSkipsDedupe(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("id", "v1")
	text, _ := h.Pop("id")
	h.Restore("id", text)
	h.Restore("id", text)
	if got, _ := h.Pop("id"); got != "v1" {
		t.Errorf("Pop() = %q", got)
	}
	if !h.Has("id") {
		t.Error("second restored copy should remain")
	}
}

func TestSnapshotMove(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("ef0001/Fire.seq", "v1")
	h.Push("ef0001/Firaga.seq", "stale")

	h.Move("ef0001/Fire.seq", "ef0001/Firaga.seq")
	if h.Has("ef0001/Fire.seq") {
		t.Error("old identifier should be gone")
	}
	if got, _ := h.Pop("ef0001/Firaga.seq"); got != "v1" {
		t.Errorf("moved stack = %q, want v1 (existing stack replaced)", got)
	}
	if h.Has("ef0001/Firaga.seq") {
		t.Error("stale stack should not survive the move")
	}

	h.Push("id", "v1")
	h.Move("id", "id")
	if !h.Has("id") {
		t.Error("same-identifier move should be a no-op")
	}
	h.Move("missing", "elsewhere")
	if h.Has("elsewhere") {
		t.Error("moving a missing identifier should do nothing")
	}
}

func TestSnapshotRekey(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("ef0001/Fire.seq", "a")
	h.Push("ef0001/Blizzard.seq", "b")
	h.Push("ef0002/Thunder.seq", "c")

	h.Rekey("ef0001", "fx0009")
	if h.Has("ef0001/Fire.seq") || h.Has("ef0001/Blizzard.seq") {
		t.Error("old folder keys should be gone")
	}
	if !h.Has("fx0009/Fire.seq") || !h.Has("fx0009/Blizzard.seq") {
		t.Error("stacks should follow the folder rename")
	}
	if !h.Has("ef0002/Thunder.seq") {
		t.Error("other folders must be untouched")
	}
}

func TestSnapshotDropAndClear(t *testing.T) {
	h := NewSnapshotHistory(5)
	h.Push("a", "1")
	h.Push("b", "2")

	h.Drop("a")
	if h.Has("a") || !h.Has("b") {
		t.Error("Drop should only discard the named identifier")
	}
	h.Clear()
	if h.Has("b") {
		t.Error("Clear should discard everything")
	}
}
