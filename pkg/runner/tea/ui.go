package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/runner/tea/internal/theme"
	"github.com/memoria-modding/memkit/pkg/sequence"
	"github.com/memoria-modding/memkit/pkg/store"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeCommand
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionRenameFolder
	actionRenameFile
	actionNewFolder
	actionNewFile
)

// folder item for the left list
type folderItem struct{ name string }

func (f folderItem) Title() string       { return f.name }
func (f folderItem) Description() string { return "" }
func (f folderItem) FilterValue() string { return f.name }

// file item for the right list
type fileItem struct{ f *sequence.File }

func (it fileItem) Title() string       { return it.f.Filename }
func (it fileItem) Description() string { return "" }
func (it fileItem) FilterValue() string { return it.f.Filename }

// Model contains UI state
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode
	act  action

	focus int // 0: folders, 1: files

	folderList list.Model
	fileList   list.Model

	input   textinput.Model
	preview string

	status string

	termWidth  int
	termHeight int

	theme    theme.Theme
	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate

	events <-chan store.Event
}

// New creates a new UI model backed by the Service. The sequence
// document must already be open.
func New(svc *app.Service) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dFocus, 24, 20)
	l1.Title = "Folders"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, dBlur, 40, 20)
	l2.Title = "Sequences"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:        svc,
		ctx:        context.Background(),
		mode:       modeNormal,
		act:        actionNone,
		focus:      0,
		folderList: l1,
		fileList:   l2,
		input:      ti,
		status:     "NORMAL: h/l panes, j/k move, r rename, n new, u undo rename, v revert, y copy, ? help",
		theme:      theme.Default(),
		focusDel:   dFocus,
		blurDel:    dBlur,
	}
	m.updateFocusHeaders()
	return m
}

// Init loads initial data and starts the directory watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshAll(), m.startWatch())
}

func (m *Model) refreshAll() tea.Cmd {
	return tea.Batch(m.loadFolders(), m.loadFiles())
}

func (m *Model) loadFolders() tea.Cmd {
	return func() tea.Msg {
		doc := m.svc.Sequences()
		if doc == nil {
			return errMsg{app.ErrNoSequenceDocument}
		}
		items := make([]list.Item, 0, len(doc.Folders))
		for _, fo := range doc.Folders {
			items = append(items, folderItem{name: fo.Name()})
		}
		return foldersLoadedMsg{items}
	}
}

func (m *Model) selectedFolder() string {
	if len(m.folderList.Items()) == 0 {
		return ""
	}
	sel := m.folderList.SelectedItem()
	if sel == nil {
		return ""
	}
	return sel.(folderItem).name
}

func (m *Model) loadFiles() tea.Cmd {
	name := m.selectedFolder()
	return func() tea.Msg {
		doc := m.svc.Sequences()
		if doc == nil || name == "" {
			return filesLoadedMsg{nil}
		}
		folder, ok := doc.FolderMap()[name]
		if !ok {
			return filesLoadedMsg{nil}
		}
		files := folder.SortedFiles()
		items := make([]list.Item, 0, len(files))
		for _, f := range files {
			items = append(items, fileItem{f: f})
		}
		return filesLoadedMsg{items}
	}
}

func (m *Model) loadPreview() tea.Cmd {
	it := m.currentFile()
	return func() tea.Msg {
		if it == nil {
			return previewLoadedMsg{""}
		}
		text, err := it.f.ReadText(true)
		if err != nil {
			return errMsg{err}
		}
		return previewLoadedMsg{text}
	}
}

func (m *Model) startWatch() tea.Cmd {
	doc := m.svc.Sequences()
	if doc == nil || m.svc.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := m.svc.Persistence.Watch(m.ctx, doc.Root)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{ch}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return watchStoppedMsg{}
		}
		return watchEventMsg{evt}
	}
}

// messages
type errMsg struct{ err error }
type foldersLoadedMsg struct{ items []list.Item }
type filesLoadedMsg struct{ items []list.Item }
type previewLoadedMsg struct{ text string }
type watchStartedMsg struct{ ch <-chan store.Event }
type watchEventMsg struct{ evt store.Event }
type watchStoppedMsg struct{}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case foldersLoadedMsg:
		m.folderList.SetItems(msg.items)
		if len(msg.items) > 0 && m.folderList.Index() < 0 {
			m.folderList.Select(0)
		}
		cmds = append(cmds, m.loadFiles())
	case filesLoadedMsg:
		m.fileList.SetItems(msg.items)
		cmds = append(cmds, m.loadPreview())
	case previewLoadedMsg:
		m.preview = msg.text
	case watchStartedMsg:
		m.events = msg.ch
		cmds = append(cmds, m.waitForEvent())
	case watchEventMsg:
		if err := m.svc.ReloadSequences(); err != nil {
			m.status = "ERR: " + err.Error()
		} else if msg.evt.Type == store.EventTreeInvalidated {
			m.status = "Folders changed on disk"
		} else {
			m.status = fmt.Sprintf("%s changed on disk", msg.evt.Folder)
		}
		cmds = append(cmds, m.refreshAll(), m.waitForEvent())
	case watchStoppedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				skipListRouting = true
			}
		case modeInput:
			switch msg.String() {
			case "enter":
				m.applyInput(&cmds)
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.act = actionNone
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				switch input {
				case "q", "quit", "exit":
					cmds = append(cmds, tea.Quit)
				case "":
					// nothing
				default:
					m.status = fmt.Sprintf("Unknown command: %s", input)
				}
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case ":":
				m.enterCommandMode(&cmds)
				skipListRouting = true

			// pane focus
			case "h", "left":
				m.focus = 0
				m.updateFocusHeaders()
				cmds = append(cmds, m.loadFiles())
				skipListRouting = true
			case "l", "right":
				m.focus = 1
				m.updateFocusHeaders()
				cmds = append(cmds, m.loadFiles())
				skipListRouting = true

			// movement
			case "j":
				if m.focus == 0 {
					m.folderList.CursorDown()
					cmds = append(cmds, m.loadFiles())
				} else {
					m.fileList.CursorDown()
					cmds = append(cmds, m.loadPreview())
				}
			case "k":
				if m.focus == 0 {
					m.folderList.CursorUp()
					cmds = append(cmds, m.loadFiles())
				} else {
					m.fileList.CursorUp()
					cmds = append(cmds, m.loadPreview())
				}
			case "g":
				if m.focus == 0 {
					m.folderList.Select(0)
					cmds = append(cmds, m.loadFiles())
				} else {
					m.fileList.Select(0)
					cmds = append(cmds, m.loadPreview())
				}
			case "G":
				if m.focus == 0 {
					m.folderList.Select(len(m.folderList.Items()) - 1)
					cmds = append(cmds, m.loadFiles())
				} else {
					m.fileList.Select(len(m.fileList.Items()) - 1)
					cmds = append(cmds, m.loadPreview())
				}

			// rename
			case "r":
				if m.focus == 0 {
					if name := m.selectedFolder(); name != "" {
						m.enterInput(&cmds, actionRenameFolder, "New folder name", name)
					}
				} else if it := m.currentFile(); it != nil {
					m.enterInput(&cmds, actionRenameFile, "New sequence name", it.f.Filename)
				}
				skipListRouting = true

			// new
			case "n":
				if m.focus == 0 {
					suggested, _ := m.svc.SuggestFolder("ef")
					m.enterInput(&cmds, actionNewFolder, "New folder", suggested)
				} else if m.selectedFolder() != "" {
					m.enterInput(&cmds, actionNewFile, "New sequence file", "")
				}
				skipListRouting = true

			// undo rename
			case "u":
				act, err := m.svc.UndoRename()
				switch {
				case err != nil:
					cmds = append(cmds, func() tea.Msg { return errMsg{err} })
				case act == nil:
					m.status = "Nothing to undo"
				default:
					m.status = fmt.Sprintf("Restored %s", act.OldPath)
					cmds = append(cmds, m.refreshAll())
				}

			// revert to previous save
			case "v":
				if it := m.currentFile(); it != nil {
					reverted, err := m.svc.RevertSequence(it.f)
					switch {
					case err != nil:
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					case !reverted:
						m.status = "No earlier save to revert to"
					default:
						m.status = fmt.Sprintf("Reverted %s", it.f.Identifier())
						cmds = append(cmds, m.loadPreview())
					}
				}

			// copy the selected sequence text
			case "y":
				if it := m.currentFile(); it != nil {
					text, err := it.f.ReadText(true)
					if err == nil {
						err = clipboard.WriteAll(text)
					}
					if err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = fmt.Sprintf("Copied %s", it.f.Identifier())
					}
				}

			case "?":
				m.mode = modeHelp

			// quit/refresh
			case "R":
				if err := m.svc.ReloadSequences(); err != nil {
					cmds = append(cmds, func() tea.Msg { return errMsg{err} })
				} else {
					m.status = "Rescanned"
					cmds = append(cmds, m.refreshAll())
				}
			case "q":
				m.status = "Use :q or :exit to quit"
				skipListRouting = true
			}
		}
	}

	// route lists updates depending on focus
	if m.mode == modeNormal && !skipListRouting {
		if m.focus == 0 {
			prev := m.selectedFolder()
			var cmd tea.Cmd
			m.folderList, cmd = m.folderList.Update(msg)
			cmds = append(cmds, cmd)
			if newSel := m.selectedFolder(); newSel != prev {
				cmds = append(cmds, m.loadFiles())
			}
		} else {
			var cmd tea.Cmd
			m.fileList, cmd = m.fileList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) currentFile() *fileItem {
	if len(m.fileList.Items()) == 0 {
		return nil
	}
	sel := m.fileList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(fileItem)
	return &it
}

func (m *Model) enterInput(cmds *[]tea.Cmd, a action, placeholder, value string) {
	m.mode = modeInput
	m.act = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

// applyInput commits the pending rename or create action.
func (m *Model) applyInput(cmds *[]tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input != "" {
		switch m.act {
		case actionRenameFolder:
			if name := m.selectedFolder(); name != "" {
				if err := m.svc.RenameFolder(name, input); err != nil {
					*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				} else {
					m.status = fmt.Sprintf("Renamed %s to %s", name, input)
				}
			}
		case actionRenameFile:
			if it := m.currentFile(); it != nil {
				if err := m.svc.RenameSequence(it.f, input); err != nil {
					*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				} else {
					m.status = fmt.Sprintf("Renamed to %s", it.f.Identifier())
				}
			}
		case actionNewFolder:
			if _, err := m.svc.CreateFolder(input); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			} else {
				m.status = fmt.Sprintf("Created folder %s", input)
			}
		case actionNewFile:
			if folder := m.selectedFolder(); folder != "" {
				if f, err := m.svc.CreateSequence(folder, input, ""); err != nil {
					*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				} else {
					m.status = fmt.Sprintf("Created %s", f.Identifier())
				}
			}
		}
	}
	m.mode = modeNormal
	m.act = actionNone
	m.input.Reset()
	m.input.Blur()
	*cmds = append(*cmds, m.refreshAll())
}

// View renders the lists, the preview pane, and optional overlays
func (m Model) View() string {
	left := m.folderList.View()
	mid := m.fileList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render

	preview := ""
	if it := m.currentFile(); it != nil {
		width := m.previewWidth()
		text := wordwrap.String(m.preview, width)
		preview = m.theme.Preview.Frame.Render(
			m.theme.Preview.Title.Render(it.f.Identifier()) + "\n\n" +
				m.theme.Preview.Text.Render(text))
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInput: "INPUT", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	status := m.theme.Footer.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), mid, gap(" "), preview)

	if m.mode == modeInput {
		prompt := ""
		switch m.act {
		case actionRenameFolder, actionRenameFile:
			prompt = "Rename: "
		case actionNewFolder:
			prompt = "New folder: "
		case actionNewFile:
			prompt = "New sequence: "
		}
		body += "\n\n" + prompt + m.input.View()
	}
	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l switch panes, j/k move, g/G top/bottom, r rename, n new folder/sequence, " +
			"u undo rename, v revert to previous save, y copy sequence text, R rescan, :q quit"
		body += "\n\n" + m.theme.Footer.Help.Italic(true).Render(wordwrap.String(help, m.bodyWidth()))
	}

	return body + "\n\n" + status
}

// Program entry
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates pane sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 4
	if left < 20 {
		left = 20
	}
	if left > 32 {
		left = 32
	}
	mid := m.termWidth / 3
	if mid < 24 {
		mid = 24
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.folderList.SetSize(left, height)
	m.fileList.SetSize(mid, height)
}

func (m *Model) previewWidth() int {
	if m.termWidth == 0 {
		return 60
	}
	w := m.termWidth - m.termWidth/4 - m.termWidth/3 - 10
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) bodyWidth() int {
	if m.termWidth == 0 {
		return 80
	}
	return m.termWidth - 4
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	// Fixed-width 2-char prefix avoids layout shift when focus changes.
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.folderList.Title = on + "Folders"
		m.fileList.Title = off + "Sequences"
		m.folderList.SetDelegate(m.focusDel)
		m.fileList.SetDelegate(m.blurDel)
	} else {
		m.folderList.Title = off + "Folders"
		m.fileList.Title = on + "Sequences"
		m.folderList.SetDelegate(m.blurDel)
		m.fileList.SetDelegate(m.focusDel)
	}
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "COMMAND: type :q or :exit to quit"
}
