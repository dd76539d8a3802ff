package teaui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/memoria-modding/memkit/pkg/app"
)

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	root := t.TempDir()
	for folder, files := range map[string][]string{
		"ef0001": {"Fire.seq", "Blizzard.seq"},
		"ef0002": {"Thunder.seq"},
	} {
		dir := filepath.Join(root, folder)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for _, name := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("SFX 1\n"), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}

	svc := app.NewService(nil, 0)
	if _, err := svc.OpenSequences(root); err != nil {
		t.Fatalf("open sequences: %v", err)
	}
	return svc
}

// drain runs a command tree and feeds every produced message back into
// the model, returning the final model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	switch batch := msg.(type) {
	case tea.BatchMsg:
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	default:
		if msg == nil {
			return m
		}
		next, follow := m.Update(msg)
		return drain(t, next.(Model), follow)
	}
}

func TestLoadFoldersPopulatesBothLists(t *testing.T) {
	m := New(newTestService(t))
	m = drain(t, m, m.refreshAll())

	if got := len(m.folderList.Items()); got != 2 {
		t.Fatalf("folders = %d, want 2", got)
	}
	if m.selectedFolder() != "ef0001" {
		t.Fatalf("selected folder = %q, want ef0001", m.selectedFolder())
	}
	if got := len(m.fileList.Items()); got != 2 {
		t.Fatalf("files = %d, want 2", got)
	}
	if it := m.currentFile(); it == nil || it.f.Filename != "Blizzard.seq" {
		t.Fatalf("current file = %+v, want Blizzard.seq first", it)
	}
	if !strings.Contains(m.preview, "SFX 1") {
		t.Errorf("preview = %q, want sequence text", m.preview)
	}
}

func TestFolderCursorMoveReloadsFiles(t *testing.T) {
	m := New(newTestService(t))
	m = drain(t, m, m.refreshAll())

	next, cmd := m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m = drain(t, next.(Model), cmd)

	if m.selectedFolder() != "ef0002" {
		t.Fatalf("selected folder = %q, want ef0002", m.selectedFolder())
	}
	if got := len(m.fileList.Items()); got != 1 {
		t.Fatalf("files = %d, want 1", got)
	}
}

func TestApplyInputRenamesFile(t *testing.T) {
	svc := newTestService(t)
	m := New(svc)
	m = drain(t, m, m.refreshAll())
	m.focus = 1

	var cmds []tea.Cmd
	m.enterInput(&cmds, actionRenameFile, "New sequence name", "Firaga")
	m.input.SetValue("Firaga")
	m.applyInput(&cmds)

	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if svc.Sequences().FindFile("ef0001", "Firaga.seq") == nil {
		t.Error("renamed file not found in document")
	}
	if !svc.CanUndoRename() {
		t.Error("rename should land on the undo stack")
	}
}

func TestUndoKeyRestoresName(t *testing.T) {
	svc := newTestService(t)
	m := New(svc)
	m = drain(t, m, m.refreshAll())
	m.focus = 1

	var cmds []tea.Cmd
	m.enterInput(&cmds, actionRenameFile, "New sequence name", "Firaga")
	m.input.SetValue("Firaga")
	m.applyInput(&cmds)

	next, cmd := m.Update(tea.KeyPressMsg{Code: 'u', Text: "u"})
	m = drain(t, next.(Model), cmd)

	if svc.Sequences().FindFile("ef0001", "Blizzard.seq") == nil {
		t.Error("undo should restore the original name")
	}
	if svc.CanUndoRename() {
		t.Error("undo stack should be empty")
	}
}

func TestViewShowsPanesAndStatus(t *testing.T) {
	m := New(newTestService(t))
	m = drain(t, m, m.refreshAll())

	view := m.View()
	for _, want := range []string{"Folders", "Sequences", "[NORMAL]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpModeTogglesBack(t *testing.T) {
	m := New(newTestService(t))
	m = drain(t, m, m.refreshAll())

	next, _ := m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	m = next.(Model)
	if m.mode != modeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	next, _ = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	m = next.(Model)
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
}
